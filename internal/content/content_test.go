package content_test

import (
	"context"
	"strings"
	"testing"

	"backma/internal/content"
	"backma/pkg/domain"
	"backma/pkg/serrors"
	"backma/pkg/storage"
	mockstorage "backma/pkg/storage/mock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	admin  = domain.Actor{ID: domain.UserID(uuid.New()), Role: domain.RoleAdmin}
	reader = domain.Actor{}
)

func TestSlugify(t *testing.T) {
	tests := map[string]string{
		"Hello, World!":                         "hello-world",
		"  10 link-building tips  ":             "10-link-building-tips",
		"Café and --- dashes":                   "cafe-and-dashes",
		"Référencement naturel":                 "referencement-naturel",
		"Guide du netlinking : étape par étape": "guide-du-netlinking-etape-par-etape",
		"!!!":                                   "",
		"already-a-slug":                        "already-a-slug",
		"Mixed_CASE with   spaces 42":           "mixed-case-with-spaces-42",
	}
	for in, want := range tests {
		require.Equal(t, want, content.Slugify(in), in)
	}
}

func TestSlugify_NonLatinTitle(t *testing.T) {
	got := content.Slugify("دليل بناء الروابط")
	require.NotEmpty(t, got)
	require.Regexp(t, `^[a-z0-9]+(-[a-z0-9]+)*$`, got)
}

func TestSlugify_LongTitleLeavesRoomForSuffix(t *testing.T) {
	title := strings.Repeat("référencement ", 12)

	got := content.Slugify(title)
	require.LessOrEqual(t, len(got), 76)
	require.False(t, strings.HasSuffix(got, "-"))
	require.True(t, strings.HasPrefix(got, "referencement-referencement"))
	require.LessOrEqual(t, len(got+"-51"), 80)
}

func TestContent_CreatePost_DerivesFreeSlug(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	svc := content.New(st)

	gomock.InOrder(
		st.EXPECT().BlogPostBySlug(gomock.Any(), "link-building-101").Return(&domain.BlogPost{}, nil),
		st.EXPECT().BlogPostBySlug(gomock.Any(), "link-building-101-2").Return(nil, nil),
		st.EXPECT().StoreBlogPost(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p domain.BlogPost) (*domain.BlogPost, error) {
				require.Equal(t, "link-building-101-2", p.Slug)
				require.Equal(t, domain.PublicationStatusDraft, p.Status)
				require.Equal(t, &admin.ID, p.AuthorID)

				return &p, nil
			}),
	)

	post, err := svc.CreatePost(context.Background(), admin, content.PostDraft{Title: "Link building 101"})
	require.NoError(t, err)
	require.Equal(t, "link-building-101-2", post.Slug)
}

func TestContent_CreatePost_ExplicitSlug(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	svc := content.New(st)

	st.EXPECT().StoreBlogPost(gomock.Any(), gomock.Any()).Return(nil, serrors.With(serrors.ErrConflict, "slug already taken"))
	_, err := svc.CreatePost(context.Background(), admin, content.PostDraft{Title: "Any", Slug: "Taken Slug"})
	require.ErrorIs(t, err, serrors.ErrConflict)

	_, err = svc.CreatePost(context.Background(), reader, content.PostDraft{Title: "Any"})
	require.ErrorIs(t, err, serrors.ErrForbidden)

	_, err = svc.CreatePost(context.Background(), admin, content.PostDraft{Title: "Any", Status: "archived"})
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestContent_PublicReads(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	svc := content.New(st)

	draft := &domain.BlogPost{Slug: "soon", Status: domain.PublicationStatusDraft}
	st.EXPECT().BlogPostBySlug(gomock.Any(), "soon").Return(draft, nil).Times(2)
	_, err := svc.PostBySlug(context.Background(), reader, "soon")
	require.ErrorIs(t, err, serrors.ErrNotFound)
	got, err := svc.PostBySlug(context.Background(), admin, "soon")
	require.NoError(t, err)
	require.Equal(t, draft, got)

	st.EXPECT().BlogPosts(gomock.Any(), storage.ContentFilter{Status: domain.PublicationStatusPublished}).
		Return(storage.Page[domain.BlogPost]{}, nil)
	_, err = svc.Posts(context.Background(), reader, storage.ContentFilter{})
	require.NoError(t, err)

	st.EXPECT().Stories(gomock.Any(), storage.ContentFilter{Status: domain.PublicationStatusPublished}).
		Return(storage.Page[domain.SuccessStory]{}, nil)
	_, err = svc.Stories(context.Background(), reader, storage.ContentFilter{Status: domain.PublicationStatusDraft})
	require.NoError(t, err)
}

func TestContent_DeleteAndUpdate(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	svc := content.New(st)
	id := domain.BlogPostID(uuid.New())

	st.EXPECT().DeleteBlogPost(gomock.Any(), id).Return(nil, nil)
	require.ErrorIs(t, svc.DeletePost(context.Background(), admin, id), serrors.ErrNotFound)

	slug := "New Slug"
	st.EXPECT().UpdateBlogPost(gomock.Any(), id, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ domain.BlogPostID, u storage.BlogPostUpdates) (*domain.BlogPost, error) {
			require.Equal(t, "new-slug", *u.Slug)

			return &domain.BlogPost{ID: id, Slug: *u.Slug}, nil
		})
	post, err := svc.UpdatePost(context.Background(), admin, id, storage.BlogPostUpdates{Slug: &slug})
	require.NoError(t, err)
	require.Equal(t, "new-slug", post.Slug)
}

func TestContent_Stories(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	svc := content.New(st)

	_, err := svc.CreateStory(context.Background(), admin, content.StoryDraft{Title: "Case", Rating: 6})
	require.ErrorIs(t, err, serrors.ErrBadRequest)

	st.EXPECT().StoreStory(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, s domain.SuccessStory) (*domain.SuccessStory, error) { return &s, nil })
	story, err := svc.CreateStory(context.Background(), admin, content.StoryDraft{Title: "Case", ClientName: "Acme"})
	require.NoError(t, err)
	require.Equal(t, 5, story.Rating)

	id := domain.StoryID(uuid.New())
	st.EXPECT().DeleteStory(gomock.Any(), id).Return(&domain.SuccessStory{ID: id}, nil)
	require.NoError(t, svc.DeleteStory(context.Background(), admin, id))
}
