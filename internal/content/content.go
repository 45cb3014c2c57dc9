// Package content manages the blog and the success stories shown on the
// public site. Only admins write content.
package content

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"backma/pkg/domain"
	"backma/pkg/serrors"
	"backma/pkg/storage"
)

// maxSlugAttempts bounds the numeric suffixes tried for a derived slug.
const maxSlugAttempts = 50

type content struct {
	storage storage.Storage
}

func requireAdmin(actor domain.Actor) error {
	if !actor.IsAdmin() {
		return serrors.With(serrors.ErrForbidden, "only admins can manage content")
	}

	return nil
}

func validStatus(status *domain.PublicationStatus) error {
	if status == nil {
		return nil
	}
	if *status != domain.PublicationStatusDraft && *status != domain.PublicationStatusPublished {
		return serrors.With(serrors.ErrBadRequest, "unknown status %q", *status)
	}

	return nil
}

// freeSlug returns base, or base with the first free numeric suffix.
func (c *content) freeSlug(ctx context.Context, base string) (string, error) {
	slug := base
	for i := 2; i <= maxSlugAttempts+1; i++ {
		post, err := c.storage.BlogPostBySlug(ctx, slug)
		if err != nil {
			return "", fmt.Errorf("could not check slug: %w", err)
		}
		if post == nil {
			return slug, nil
		}
		slug = base + "-" + strconv.Itoa(i)
	}

	return "", serrors.With(serrors.ErrConflict, "slug already taken")
}

func (c *content) CreatePost(ctx context.Context, actor domain.Actor, draft PostDraft) (*domain.BlogPost, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	draft.Title = strings.TrimSpace(draft.Title)
	if draft.Title == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "title is required")
	}
	if draft.Status == "" {
		draft.Status = domain.PublicationStatusDraft
	}
	if err := validStatus(&draft.Status); err != nil {
		return nil, err
	}

	slug := Slugify(draft.Slug)
	if draft.Slug == "" {
		base := Slugify(draft.Title)
		if base == "" {
			return nil, serrors.With(serrors.ErrBadRequest, "a slug is required for this title")
		}

		var err error
		if slug, err = c.freeSlug(ctx, base); err != nil {
			return nil, err
		}
	}
	if slug == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "invalid slug")
	}

	post, err := c.storage.StoreBlogPost(ctx, domain.BlogPost{
		Title:         draft.Title,
		Slug:          slug,
		Excerpt:       strings.TrimSpace(draft.Excerpt),
		Content:       draft.Content,
		CoverImageURL: strings.TrimSpace(draft.CoverImageURL),
		Status:        draft.Status,
		AuthorID:      &actor.ID,
	})
	if err != nil {
		return nil, fmt.Errorf("could not store blog post: %w", err)
	}

	return post, nil
}

func (c *content) UpdatePost(ctx context.Context,
	actor domain.Actor,
	id domain.BlogPostID,
	updates storage.BlogPostUpdates) (*domain.BlogPost, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	if err := validStatus(updates.Status); err != nil {
		return nil, err
	}
	if updates.Slug != nil {
		slug := Slugify(*updates.Slug)
		if slug == "" {
			return nil, serrors.With(serrors.ErrBadRequest, "invalid slug")
		}
		updates.Slug = &slug
	}

	post, err := c.storage.UpdateBlogPost(ctx, id, updates)
	if err != nil {
		return nil, fmt.Errorf("could not update blog post: %w", err)
	}
	if post == nil {
		return nil, serrors.With(serrors.ErrNotFound, "blog post not found")
	}

	return post, nil
}

func (c *content) DeletePost(ctx context.Context, actor domain.Actor, id domain.BlogPostID) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}

	post, err := c.storage.DeleteBlogPost(ctx, id)
	if err != nil {
		return fmt.Errorf("could not delete blog post: %w", err)
	}
	if post == nil {
		return serrors.With(serrors.ErrNotFound, "blog post not found")
	}

	return nil
}

func (c *content) PostBySlug(ctx context.Context, actor domain.Actor, slug string) (*domain.BlogPost, error) {
	post, err := c.storage.BlogPostBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("could not get blog post: %w", err)
	}
	if post == nil || (post.Status != domain.PublicationStatusPublished && !actor.IsAdmin()) {
		return nil, serrors.With(serrors.ErrNotFound, "blog post not found")
	}

	return post, nil
}

func (c *content) Posts(ctx context.Context,
	actor domain.Actor,
	filter storage.ContentFilter) (storage.Page[domain.BlogPost], error) {
	if !actor.IsAdmin() {
		filter.Status = domain.PublicationStatusPublished
	}

	page, err := c.storage.BlogPosts(ctx, filter)
	if err != nil {
		return storage.Page[domain.BlogPost]{}, fmt.Errorf("could not list blog posts: %w", err)
	}

	return page, nil
}

func validRating(rating int) error {
	if rating < 1 || rating > 5 {
		return serrors.With(serrors.ErrBadRequest, "rating must be between 1 and 5")
	}

	return nil
}

func (c *content) CreateStory(ctx context.Context, actor domain.Actor, draft StoryDraft) (*domain.SuccessStory, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	draft.Title = strings.TrimSpace(draft.Title)
	if draft.Title == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "title is required")
	}
	if draft.Rating == 0 {
		draft.Rating = 5
	}
	if err := validRating(draft.Rating); err != nil {
		return nil, err
	}
	if draft.Status == "" {
		draft.Status = domain.PublicationStatusDraft
	}
	if err := validStatus(&draft.Status); err != nil {
		return nil, err
	}

	story, err := c.storage.StoreStory(ctx, domain.SuccessStory{
		Title:      draft.Title,
		ClientName: strings.TrimSpace(draft.ClientName),
		WebsiteURL: strings.TrimSpace(draft.WebsiteURL),
		Content:    draft.Content,
		Rating:     draft.Rating,
		Status:     draft.Status,
	})
	if err != nil {
		return nil, fmt.Errorf("could not store success story: %w", err)
	}

	return story, nil
}

func (c *content) UpdateStory(ctx context.Context,
	actor domain.Actor,
	id domain.StoryID,
	updates storage.StoryUpdates) (*domain.SuccessStory, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	if err := validStatus(updates.Status); err != nil {
		return nil, err
	}
	if updates.Rating != nil {
		if err := validRating(*updates.Rating); err != nil {
			return nil, err
		}
	}

	story, err := c.storage.UpdateStory(ctx, id, updates)
	if err != nil {
		return nil, fmt.Errorf("could not update success story: %w", err)
	}
	if story == nil {
		return nil, serrors.With(serrors.ErrNotFound, "success story not found")
	}

	return story, nil
}

func (c *content) DeleteStory(ctx context.Context, actor domain.Actor, id domain.StoryID) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}

	story, err := c.storage.DeleteStory(ctx, id)
	if err != nil {
		return fmt.Errorf("could not delete success story: %w", err)
	}
	if story == nil {
		return serrors.With(serrors.ErrNotFound, "success story not found")
	}

	return nil
}

func (c *content) Stories(ctx context.Context,
	actor domain.Actor,
	filter storage.ContentFilter) (storage.Page[domain.SuccessStory], error) {
	if !actor.IsAdmin() {
		filter.Status = domain.PublicationStatusPublished
	}

	page, err := c.storage.Stories(ctx, filter)
	if err != nil {
		return storage.Page[domain.SuccessStory]{}, fmt.Errorf("could not list success stories: %w", err)
	}

	return page, nil
}

// New creates a Content service.
func New(storage storage.Storage) Content {
	return &content{storage: storage}
}
