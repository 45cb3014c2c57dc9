package postgres_test

import (
	"testing"

	"backma/pkg/domain"
	"backma/pkg/serrors"
	"backma/pkg/storage"

	"github.com/stretchr/testify/require"
)

func TestPgSQL_BlogPosts(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := t.Context()

	post, err := pg.StoreBlogPost(ctx, domain.BlogPost{
		Title:  "Why backlinks matter",
		Slug:   "why-backlinks-matter",
		Status: domain.PublicationStatusDraft,
	})
	require.NoError(t, err)
	require.True(t, post.PublishedAt.IsZero())

	_, err = pg.StoreBlogPost(ctx, domain.BlogPost{
		Title:  "Duplicate",
		Slug:   "why-backlinks-matter",
		Status: domain.PublicationStatusDraft,
	})
	require.ErrorIs(t, err, serrors.ErrConflict)

	published := domain.PublicationStatusPublished
	post, err = pg.UpdateBlogPost(ctx, post.ID, storage.BlogPostUpdates{Status: &published})
	require.NoError(t, err)
	require.False(t, post.PublishedAt.IsZero())
	firstPublished := post.PublishedAt

	title := "Why backlinks still matter"
	post, err = pg.UpdateBlogPost(ctx, post.ID, storage.BlogPostUpdates{Title: &title, Status: &published})
	require.NoError(t, err)
	require.True(t, firstPublished.Equal(post.PublishedAt))

	draft := domain.PublicationStatusDraft
	post, err = pg.UpdateBlogPost(ctx, post.ID, storage.BlogPostUpdates{Status: &draft})
	require.NoError(t, err)
	require.True(t, post.PublishedAt.IsZero())

	bySlug, err := pg.BlogPostBySlug(ctx, "why-backlinks-matter")
	require.NoError(t, err)
	require.Equal(t, post.ID, bySlug.ID)

	deleted, err := pg.DeleteBlogPost(ctx, post.ID)
	require.NoError(t, err)
	require.False(t, deleted.DeletedAt.IsZero())

	gone, err := pg.BlogPostByID(ctx, post.ID)
	require.NoError(t, err)
	require.Nil(t, gone)

	again, err := pg.DeleteBlogPost(ctx, post.ID)
	require.NoError(t, err)
	require.Nil(t, again)

	// a deleted post frees its slug
	_, err = pg.StoreBlogPost(ctx, domain.BlogPost{
		Title:  "Reborn",
		Slug:   "why-backlinks-matter",
		Status: domain.PublicationStatusPublished,
	})
	require.NoError(t, err)

	page, err := pg.BlogPosts(ctx, storage.ContentFilter{})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	require.Equal(t, "Reborn", page.Items[0].Title)
	require.False(t, page.Items[0].PublishedAt.IsZero())
}

func TestPgSQL_Stories(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := t.Context()

	story, err := pg.StoreStory(ctx, domain.SuccessStory{
		Title:      "Traffic doubled",
		ClientName: "Acme",
		Rating:     5,
		Status:     domain.PublicationStatusPublished,
	})
	require.NoError(t, err)

	rating := 4
	story, err = pg.UpdateStory(ctx, story.ID, storage.StoryUpdates{Rating: &rating})
	require.NoError(t, err)
	require.Equal(t, 4, story.Rating)

	published, err := pg.Stories(ctx, storage.ContentFilter{Status: domain.PublicationStatusPublished})
	require.NoError(t, err)
	require.Len(t, published.Items, 1)

	_, err = pg.DeleteStory(ctx, story.ID)
	require.NoError(t, err)

	published, err = pg.Stories(ctx, storage.ContentFilter{})
	require.NoError(t, err)
	require.Empty(t, published.Items)
}
