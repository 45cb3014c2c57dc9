package postgres

import (
	"context"
	"fmt"
	"time"

	"backma/pkg/domain"
	"backma/pkg/serrors"
	"backma/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	blogPostsTable = "blog_posts"
	storiesTable   = "success_stories"
)

var notDeleted = goqu.I("deleted_at").IsNull() //nolint: gochecknoglobals

// publicationColumns maps a publication status to its published_at value:
// the first publication is kept and a draft has none.
func publicationColumns(rec goqu.Record, status *domain.PublicationStatus) {
	if status == nil {
		return
	}
	rec["status"] = string(*status)
	if *status == domain.PublicationStatusPublished {
		rec["published_at"] = goqu.L("COALESCE(published_at, CURRENT_TIMESTAMP)")
	} else {
		rec["published_at"] = nil
	}
}

func (p *PgSQL) StoreBlogPost(ctx context.Context, post domain.BlogPost) (*domain.BlogPost, error) {
	var row PgBlogPost
	row.FromDomain(post)
	if post.Status == domain.PublicationStatusPublished && post.PublishedAt.IsZero() {
		row.PublishedAt.Time, row.PublishedAt.Valid = time.Now().UTC(), true
	}

	var result PgBlogPost
	if _, err := p.Builder.Insert(blogPostsTable).
		Rows(row).
		Returning(&PgBlogPost{}).
		Executor().ScanStructContext(ctx, &result); err != nil {
		if isUniqueViolation(err) {
			return nil, serrors.Wrap(serrors.ErrConflict, err, "slug already taken")
		}

		return nil, fmt.Errorf("could not store blog post into pg: %w", err)
	}

	return result.ToDomain(), nil
}

func (p *PgSQL) blogPostBy(ctx context.Context, where goqu.Expression) (*domain.BlogPost, error) {
	var row PgBlogPost
	found, err := p.Builder.From(blogPostsTable).
		Where(where, notDeleted).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch blog post: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) BlogPostByID(ctx context.Context, id domain.BlogPostID) (*domain.BlogPost, error) {
	return p.blogPostBy(ctx, goqu.I("id").Eq(uuid.UUID(id)))
}

func (p *PgSQL) BlogPostBySlug(ctx context.Context, slug string) (*domain.BlogPost, error) {
	return p.blogPostBy(ctx, goqu.I("slug").Eq(slug))
}

func (p *PgSQL) UpdateBlogPost(ctx context.Context,
	id domain.BlogPostID,
	updates storage.BlogPostUpdates) (*domain.BlogPost, error) {
	rec := goqu.Record{"updated_at": goqu.L("CURRENT_TIMESTAMP")}
	setIf(rec, "title", updates.Title)
	setIf(rec, "slug", updates.Slug)
	setIf(rec, "excerpt", updates.Excerpt)
	setIf(rec, "content", updates.Content)
	setIf(rec, "cover_image_url", updates.CoverImageURL)
	publicationColumns(rec, updates.Status)

	var row PgBlogPost
	found, err := p.Builder.Update(blogPostsTable).
		Set(rec).
		Where(goqu.I("id").Eq(uuid.UUID(id)), notDeleted).
		Returning(&PgBlogPost{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, serrors.Wrap(serrors.ErrConflict, err, "slug already taken")
		}

		return nil, fmt.Errorf("could not update blog post in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) DeleteBlogPost(ctx context.Context, id domain.BlogPostID) (*domain.BlogPost, error) {
	var row PgBlogPost
	found, err := p.Builder.Update(blogPostsTable).
		Set(goqu.Record{"deleted_at": goqu.L("CURRENT_TIMESTAMP")}).
		Where(goqu.I("id").Eq(uuid.UUID(id)), notDeleted).
		Returning(&PgBlogPost{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not delete blog post in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) BlogPosts(ctx context.Context, filter storage.ContentFilter) (storage.Page[domain.BlogPost], error) {
	w := []goqu.Expression{notDeleted}
	if filter.Status != "" {
		w = append(w, goqu.I("status").Eq(string(filter.Status)))
	}

	page, err := fetchPage(ctx, p.Builder.From(blogPostsTable).Where(w...), filter.Cursor,
		func(r *PgBlogPost) storage.Position { return storage.Position{CreatedAt: r.CreatedAt, ID: r.ID} },
		(*PgBlogPost).ToDomain)
	if err != nil {
		return storage.Page[domain.BlogPost]{}, fmt.Errorf("could not fetch blog posts from pg: %w", err)
	}

	return page, nil
}

func (p *PgSQL) StoreStory(ctx context.Context, story domain.SuccessStory) (*domain.SuccessStory, error) {
	var row PgStory
	row.FromDomain(story)
	if story.Status == domain.PublicationStatusPublished && story.PublishedAt.IsZero() {
		row.PublishedAt.Time, row.PublishedAt.Valid = time.Now().UTC(), true
	}

	var result PgStory
	if _, err := p.Builder.Insert(storiesTable).
		Rows(row).
		Returning(&PgStory{}).
		Executor().ScanStructContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store success story into pg: %w", err)
	}

	return result.ToDomain(), nil
}

func (p *PgSQL) StoryByID(ctx context.Context, id domain.StoryID) (*domain.SuccessStory, error) {
	var row PgStory
	found, err := p.Builder.From(storiesTable).
		Where(goqu.I("id").Eq(uuid.UUID(id)), notDeleted).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch success story by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) UpdateStory(ctx context.Context,
	id domain.StoryID,
	updates storage.StoryUpdates) (*domain.SuccessStory, error) {
	rec := goqu.Record{"updated_at": goqu.L("CURRENT_TIMESTAMP")}
	setIf(rec, "title", updates.Title)
	setIf(rec, "client_name", updates.ClientName)
	setIf(rec, "website_url", updates.WebsiteURL)
	setIf(rec, "content", updates.Content)
	setIf(rec, "rating", updates.Rating)
	publicationColumns(rec, updates.Status)

	var row PgStory
	found, err := p.Builder.Update(storiesTable).
		Set(rec).
		Where(goqu.I("id").Eq(uuid.UUID(id)), notDeleted).
		Returning(&PgStory{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update success story in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) DeleteStory(ctx context.Context, id domain.StoryID) (*domain.SuccessStory, error) {
	var row PgStory
	found, err := p.Builder.Update(storiesTable).
		Set(goqu.Record{"deleted_at": goqu.L("CURRENT_TIMESTAMP")}).
		Where(goqu.I("id").Eq(uuid.UUID(id)), notDeleted).
		Returning(&PgStory{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not delete success story in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) Stories(ctx context.Context, filter storage.ContentFilter) (storage.Page[domain.SuccessStory], error) {
	w := []goqu.Expression{notDeleted}
	if filter.Status != "" {
		w = append(w, goqu.I("status").Eq(string(filter.Status)))
	}

	page, err := fetchPage(ctx, p.Builder.From(storiesTable).Where(w...), filter.Cursor,
		func(r *PgStory) storage.Position { return storage.Position{CreatedAt: r.CreatedAt, ID: r.ID} },
		(*PgStory).ToDomain)
	if err != nil {
		return storage.Page[domain.SuccessStory]{}, fmt.Errorf("could not fetch success stories from pg: %w", err)
	}

	return page, nil
}
