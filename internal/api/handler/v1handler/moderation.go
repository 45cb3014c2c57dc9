package v1handler

import (
	"net/http"

	"backma/internal/moderation"
	"backma/pkg/domain"
	"backma/pkg/storage"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type SubmitWebsiteRequest struct {
	URL             string `json:"url"                       validate:"required,url"`
	Name            string `json:"name,omitempty"            validate:"max=200"`
	Description     string `json:"description,omitempty"`
	Category        string `json:"category,omitempty"        validate:"max=100"`
	Language        string `json:"language,omitempty"        validate:"max=50"`
	DomainAuthority int    `json:"domainAuthority,omitempty" validate:"gte=0,lte=100"`
	MonthlyTraffic  int64  `json:"monthlyTraffic,omitempty"  validate:"gte=0"`
}

type ReasonRequest struct {
	Reason string `json:"reason" validate:"required,max=1000"`
}

type CreateListingRequest struct {
	WebsiteID   uuid.UUID       `json:"websiteId"             validate:"required"`
	Title       string          `json:"title"                 validate:"required,max=200"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	LinkType    string          `json:"linkType,omitempty"    validate:"omitempty,oneof=dofollow nofollow"`
}

type UpdateListingRequest struct {
	Title       *string          `json:"title,omitempty"       validate:"omitempty,min=1,max=200"`
	Description *string          `json:"description,omitempty"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	LinkType    *string          `json:"linkType,omitempty"    validate:"omitempty,oneof=dofollow nofollow"`
}

func (h *Handler) SubmitWebsite(w http.ResponseWriter, r *http.Request) {
	var req SubmitWebsiteRequest
	if !h.decode(w, r, &req) {
		return
	}

	website, err := h.Moderation.SubmitWebsite(r.Context(), actorOf(r), moderation.WebsiteDraft{
		URL:             req.URL,
		Name:            req.Name,
		Description:     req.Description,
		Category:        req.Category,
		Language:        req.Language,
		DomainAuthority: req.DomainAuthority,
		MonthlyTraffic:  req.MonthlyTraffic,
	})
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusCreated, DomainWebsiteToV1(website))
}

func (h *Handler) ListWebsites(w http.ResponseWriter, r *http.Request) {
	cursor, err := h.cursor(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}
	ownerID, err := queryUserID(r, "ownerId")
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	page, err := h.Moderation.Websites(r.Context(), actorOf(r), storage.WebsiteFilter{
		OwnerID: ownerID,
		Status:  domain.WebsiteStatus(r.URL.Query().Get("status")),
		Cursor:  cursor,
	})
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, toPage(page, DomainWebsiteToV1))
}

func (h *Handler) ApproveWebsite(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	website, err := h.Moderation.ApproveWebsite(r.Context(), actorOf(r), domain.WebsiteID(id))
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, DomainWebsiteToV1(website))
}

func (h *Handler) RejectWebsite(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}
	var req ReasonRequest
	if !h.decode(w, r, &req) {
		return
	}

	website, err := h.Moderation.RejectWebsite(r.Context(), actorOf(r), domain.WebsiteID(id), req.Reason)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, DomainWebsiteToV1(website))
}

func (h *Handler) CreateListing(w http.ResponseWriter, r *http.Request) {
	var req CreateListingRequest
	if !h.decode(w, r, &req) {
		return
	}

	listing, err := h.Moderation.CreateListing(r.Context(), actorOf(r), moderation.ListingDraft{
		WebsiteID:   domain.WebsiteID(req.WebsiteID),
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		LinkType:    domain.LinkType(req.LinkType),
	})
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusCreated, DomainListingToV1(listing))
}

func (h *Handler) UpdateListing(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}
	var req UpdateListingRequest
	if !h.decode(w, r, &req) {
		return
	}

	edit := moderation.ListingEdit{Title: req.Title, Description: req.Description, Price: req.Price}
	if req.LinkType != nil {
		linkType := domain.LinkType(*req.LinkType)
		edit.LinkType = &linkType
	}

	listing, err := h.Moderation.UpdateListing(r.Context(), actorOf(r), domain.ListingID(id), edit)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, DomainListingToV1(listing))
}

func (h *Handler) listingAction(w http.ResponseWriter, r *http.Request,
	do func(id domain.ListingID) (*domain.Listing, error)) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	listing, err := do(domain.ListingID(id))
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, DomainListingToV1(listing))
}

func (h *Handler) ApproveListing(w http.ResponseWriter, r *http.Request) {
	h.listingAction(w, r, func(id domain.ListingID) (*domain.Listing, error) {
		return h.Moderation.ApproveListing(r.Context(), actorOf(r), id) //nolint: wrapcheck
	})
}

func (h *Handler) RejectListing(w http.ResponseWriter, r *http.Request) {
	var req ReasonRequest
	if !h.decode(w, r, &req) {
		return
	}

	h.listingAction(w, r, func(id domain.ListingID) (*domain.Listing, error) {
		return h.Moderation.RejectListing(r.Context(), actorOf(r), id, req.Reason) //nolint: wrapcheck
	})
}

func (h *Handler) DeactivateListing(w http.ResponseWriter, r *http.Request) {
	h.listingAction(w, r, func(id domain.ListingID) (*domain.Listing, error) {
		return h.Moderation.DeactivateListing(r.Context(), actorOf(r), id) //nolint: wrapcheck
	})
}

func (h *Handler) GetListing(w http.ResponseWriter, r *http.Request) {
	h.listingAction(w, r, func(id domain.ListingID) (*domain.Listing, error) {
		return h.Moderation.GetListing(r.Context(), actorOf(r), id) //nolint: wrapcheck
	})
}

func (h *Handler) ListListings(w http.ResponseWriter, r *http.Request) {
	cursor, err := h.cursor(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}
	websiteID, err := queryUUID(r, "websiteId")
	if err != nil {
		h.writeError(w, r, err)

		return
	}
	publisherID, err := queryUserID(r, "publisherId")
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	filter := storage.ListingFilter{
		PublisherID: publisherID,
		Status:      domain.ListingStatus(r.URL.Query().Get("status")),
		Cursor:      cursor,
	}
	if websiteID != nil {
		id := domain.WebsiteID(*websiteID)
		filter.WebsiteID = &id
	}

	page, err := h.Moderation.Listings(r.Context(), actorOf(r), filter)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, toPage(page, DomainListingToV1))
}
