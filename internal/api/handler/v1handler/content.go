package v1handler

import (
	"net/http"

	"backma/internal/content"
	"backma/pkg/domain"
	"backma/pkg/storage"

	"github.com/gorilla/mux"
)

type PostRequest struct {
	Title         string `json:"title"                   validate:"required,max=300"`
	Slug          string `json:"slug,omitempty"          validate:"max=80"`
	Excerpt       string `json:"excerpt,omitempty"       validate:"max=1000"`
	Content       string `json:"content"                 validate:"required"`
	CoverImageURL string `json:"coverImageUrl,omitempty" validate:"omitempty,url"`
	Status        string `json:"status,omitempty"        validate:"omitempty,oneof=draft published"`
}

type UpdatePostRequest struct {
	Title         *string `json:"title,omitempty"         validate:"omitempty,min=1,max=300"`
	Slug          *string `json:"slug,omitempty"          validate:"omitempty,min=1,max=80"`
	Excerpt       *string `json:"excerpt,omitempty"       validate:"omitempty,max=1000"`
	Content       *string `json:"content,omitempty"`
	CoverImageURL *string `json:"coverImageUrl,omitempty" validate:"omitempty,url"`
	Status        *string `json:"status,omitempty"        validate:"omitempty,oneof=draft published"`
}

type StoryRequest struct {
	Title      string `json:"title"                validate:"required,max=300"`
	ClientName string `json:"clientName"           validate:"required,max=200"`
	WebsiteURL string `json:"websiteUrl,omitempty" validate:"omitempty,url"`
	Content    string `json:"content"              validate:"required"`
	Rating     int    `json:"rating,omitempty"     validate:"omitempty,gte=1,lte=5"`
	Status     string `json:"status,omitempty"     validate:"omitempty,oneof=draft published"`
}

type UpdateStoryRequest struct {
	Title      *string `json:"title,omitempty"      validate:"omitempty,min=1,max=300"`
	ClientName *string `json:"clientName,omitempty" validate:"omitempty,min=1,max=200"`
	WebsiteURL *string `json:"websiteUrl,omitempty" validate:"omitempty,url"`
	Content    *string `json:"content,omitempty"`
	Rating     *int    `json:"rating,omitempty"     validate:"omitempty,gte=1,lte=5"`
	Status     *string `json:"status,omitempty"     validate:"omitempty,oneof=draft published"`
}

func optStatus(s *string) *domain.PublicationStatus {
	if s == nil {
		return nil
	}
	status := domain.PublicationStatus(*s)

	return &status
}

func (h *Handler) contentFilter(r *http.Request) (storage.ContentFilter, error) {
	cursor, err := h.cursor(r)
	if err != nil {
		return storage.ContentFilter{}, err
	}

	return storage.ContentFilter{
		Status: domain.PublicationStatus(r.URL.Query().Get("status")),
		Cursor: cursor,
	}, nil
}

func (h *Handler) CreatePost(w http.ResponseWriter, r *http.Request) {
	var req PostRequest
	if !h.decode(w, r, &req) {
		return
	}

	post, err := h.Content.CreatePost(r.Context(), actorOf(r), content.PostDraft{
		Title:         req.Title,
		Slug:          req.Slug,
		Excerpt:       req.Excerpt,
		Content:       req.Content,
		CoverImageURL: req.CoverImageURL,
		Status:        domain.PublicationStatus(req.Status),
	})
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusCreated, DomainBlogPostToV1(post))
}

func (h *Handler) UpdatePost(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}
	var req UpdatePostRequest
	if !h.decode(w, r, &req) {
		return
	}

	post, err := h.Content.UpdatePost(r.Context(), actorOf(r), domain.BlogPostID(id), storage.BlogPostUpdates{
		Title:         req.Title,
		Slug:          req.Slug,
		Excerpt:       req.Excerpt,
		Content:       req.Content,
		CoverImageURL: req.CoverImageURL,
		Status:        optStatus(req.Status),
	})
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, DomainBlogPostToV1(post))
}

func (h *Handler) DeletePost(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	if err := h.Content.DeletePost(r.Context(), actorOf(r), domain.BlogPostID(id)); err != nil {
		h.writeError(w, r, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) GetPost(w http.ResponseWriter, r *http.Request) {
	post, err := h.Content.PostBySlug(r.Context(), actorOf(r), mux.Vars(r)["slug"])
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, DomainBlogPostToV1(post))
}

func (h *Handler) ListPosts(w http.ResponseWriter, r *http.Request) {
	filter, err := h.contentFilter(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	page, err := h.Content.Posts(r.Context(), actorOf(r), filter)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, toPage(page, DomainBlogPostToV1))
}

func (h *Handler) CreateStory(w http.ResponseWriter, r *http.Request) {
	var req StoryRequest
	if !h.decode(w, r, &req) {
		return
	}

	story, err := h.Content.CreateStory(r.Context(), actorOf(r), content.StoryDraft{
		Title:      req.Title,
		ClientName: req.ClientName,
		WebsiteURL: req.WebsiteURL,
		Content:    req.Content,
		Rating:     req.Rating,
		Status:     domain.PublicationStatus(req.Status),
	})
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusCreated, DomainStoryToV1(story))
}

func (h *Handler) UpdateStory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}
	var req UpdateStoryRequest
	if !h.decode(w, r, &req) {
		return
	}

	story, err := h.Content.UpdateStory(r.Context(), actorOf(r), domain.StoryID(id), storage.StoryUpdates{
		Title:      req.Title,
		ClientName: req.ClientName,
		WebsiteURL: req.WebsiteURL,
		Content:    req.Content,
		Rating:     req.Rating,
		Status:     optStatus(req.Status),
	})
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, DomainStoryToV1(story))
}

func (h *Handler) DeleteStory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	if err := h.Content.DeleteStory(r.Context(), actorOf(r), domain.StoryID(id)); err != nil {
		h.writeError(w, r, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) ListStories(w http.ResponseWriter, r *http.Request) {
	filter, err := h.contentFilter(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	page, err := h.Content.Stories(r.Context(), actorOf(r), filter)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, toPage(page, DomainStoryToV1))
}
