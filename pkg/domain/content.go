package domain

import (
	"time"

	"github.com/google/uuid"
)

// PublicationStatus is shared by blog posts and success stories.
type PublicationStatus string

const (
	PublicationStatusDraft     PublicationStatus = "draft"
	PublicationStatusPublished PublicationStatus = "published"
)

// BlogPostID uniquely identifies a blog post.
type BlogPostID uuid.UUID

func (id BlogPostID) String() string { return uuid.UUID(id).String() }

// BlogPost is an article of the public blog. Content is markdown.
type BlogPost struct {
	ID            BlogPostID
	Title         string
	Slug          string
	Excerpt       string
	Content       string
	CoverImageURL string
	Status        PublicationStatus
	AuthorID      *UserID
	PublishedAt   time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt time.Time
}

// StoryID uniquely identifies a success story.
type StoryID uuid.UUID

func (id StoryID) String() string { return uuid.UUID(id).String() }

// SuccessStory is a customer testimonial shown on the landing pages.
type SuccessStory struct {
	ID          StoryID
	Title       string
	ClientName  string
	WebsiteURL  string
	Content     string
	Rating      int
	Status      PublicationStatus
	PublishedAt time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt time.Time
}
