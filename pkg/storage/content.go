package storage

import (
	"context"

	"backma/pkg/domain"
)

// ContentFilter narrows a blog post or success story listing.
type ContentFilter struct {
	Status domain.PublicationStatus
	Cursor
}

// BlogPostUpdates describes optional blog post fields to change. Publishing
// stamps published_at once; unpublishing clears it.
type BlogPostUpdates struct {
	Title         *string
	Slug          *string
	Excerpt       *string
	Content       *string
	CoverImageURL *string
	Status        *domain.PublicationStatus
}

// StoryUpdates describes optional success story fields to change.
type StoryUpdates struct {
	Title      *string
	ClientName *string
	WebsiteURL *string
	Content    *string
	Rating     *int
	Status     *domain.PublicationStatus
}

// ContentStorage defines persistence of blog posts and success stories. Both
// are soft-deleted and deleted rows are invisible to every read.
type ContentStorage interface {
	// StoreBlogPost inserts a post. A taken slug yields a serrors.ErrConflict error.
	StoreBlogPost(ctx context.Context, post domain.BlogPost) (*domain.BlogPost, error)
	BlogPostByID(ctx context.Context, id domain.BlogPostID) (*domain.BlogPost, error)
	BlogPostBySlug(ctx context.Context, slug string) (*domain.BlogPost, error)
	UpdateBlogPost(ctx context.Context, id domain.BlogPostID, updates BlogPostUpdates) (*domain.BlogPost, error)
	// DeleteBlogPost soft deletes a post and returns it, or nil when not found.
	DeleteBlogPost(ctx context.Context, id domain.BlogPostID) (*domain.BlogPost, error)
	BlogPosts(ctx context.Context, filter ContentFilter) (Page[domain.BlogPost], error)

	StoreStory(ctx context.Context, story domain.SuccessStory) (*domain.SuccessStory, error)
	StoryByID(ctx context.Context, id domain.StoryID) (*domain.SuccessStory, error)
	UpdateStory(ctx context.Context, id domain.StoryID, updates StoryUpdates) (*domain.SuccessStory, error)
	DeleteStory(ctx context.Context, id domain.StoryID) (*domain.SuccessStory, error)
	Stories(ctx context.Context, filter ContentFilter) (Page[domain.SuccessStory], error)
}
