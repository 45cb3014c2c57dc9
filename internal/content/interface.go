package content

import (
	"context"

	"backma/pkg/domain"
	"backma/pkg/storage"
)

// PostDraft holds the fields of a new blog post. An empty Slug is derived
// from the title.
type PostDraft struct {
	Title         string
	Slug          string
	Excerpt       string
	Content       string
	CoverImageURL string
	Status        domain.PublicationStatus
}

// StoryDraft holds the fields of a new success story.
type StoryDraft struct {
	Title      string
	ClientName string
	WebsiteURL string
	Content    string
	Rating     int
	Status     domain.PublicationStatus
}

//go:generate mockgen -package mockcontent -source=interface.go -destination=mock/mockcontent.go *
type Content interface {
	CreatePost(ctx context.Context, actor domain.Actor, draft PostDraft) (*domain.BlogPost, error)
	UpdatePost(ctx context.Context,
		actor domain.Actor,
		id domain.BlogPostID,
		updates storage.BlogPostUpdates) (*domain.BlogPost, error)
	DeletePost(ctx context.Context, actor domain.Actor, id domain.BlogPostID) error
	// PostBySlug returns a post. Drafts are only visible to admins.
	PostBySlug(ctx context.Context, actor domain.Actor, slug string) (*domain.BlogPost, error)
	// Posts lists posts. Non-admins only see published ones.
	Posts(ctx context.Context, actor domain.Actor, filter storage.ContentFilter) (storage.Page[domain.BlogPost], error)

	CreateStory(ctx context.Context, actor domain.Actor, draft StoryDraft) (*domain.SuccessStory, error)
	UpdateStory(ctx context.Context,
		actor domain.Actor,
		id domain.StoryID,
		updates storage.StoryUpdates) (*domain.SuccessStory, error)
	DeleteStory(ctx context.Context, actor domain.Actor, id domain.StoryID) error
	Stories(ctx context.Context,
		actor domain.Actor,
		filter storage.ContentFilter) (storage.Page[domain.SuccessStory], error)
}
