// Package export writes ledger, purchase and user listings as CSV. Rows are
// streamed page by page so exports never hold a full table in memory.
package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"backma/pkg/domain"
	"backma/pkg/storage"
)

// DefaultPageSize is used when a filter does not set a limit.
const DefaultPageSize = 500

// Exporter exports storage listings as CSV.
type Exporter struct {
	storage storage.Storage
}

// New creates an Exporter reading from s.
func New(s storage.Storage) *Exporter {
	return &Exporter{storage: s}
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}

	return t.UTC().Format(time.RFC3339)
}

func formatUserID(id *domain.UserID) string {
	if id == nil {
		return ""
	}

	return id.String()
}

// stream writes header and then every row returned by fetch, advancing
// cursor until the last page.
func stream[T any](ctx context.Context,
	w io.Writer,
	header []string,
	cursor *storage.Cursor,
	fetch func(ctx context.Context) (storage.Page[T], error),
	row func(T) []string) (int, error) {
	if cursor.Limit == 0 {
		cursor.Limit = DefaultPageSize
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return 0, fmt.Errorf("could not write header: %w", err)
	}

	count := 0
	for {
		if err := ctx.Err(); err != nil {
			return count, err
		}

		page, err := fetch(ctx)
		if err != nil {
			return count, fmt.Errorf("could not fetch page: %w", err)
		}
		for _, item := range page.Items {
			if err := cw.Write(row(item)); err != nil {
				return count, fmt.Errorf("could not write row: %w", err)
			}
			count++
		}
		cw.Flush()
		if err := cw.Error(); err != nil {
			return count, fmt.Errorf("could not flush rows: %w", err)
		}

		if page.NextCursor == nil {
			return count, nil
		}
		cursor.After = page.NextCursor
	}
}

// Transactions writes the credit transactions matching filter and returns
// the number of rows written.
func (e *Exporter) Transactions(ctx context.Context, w io.Writer, filter storage.TransactionFilter) (int, error) {
	header := []string{
		"id", "user_id", "type", "amount", "commission", "balance_before", "balance_after",
		"reference_type", "reference_id", "description", "created_by", "created_at",
	}

	return stream(ctx, w, header, &filter.Cursor,
		func(ctx context.Context) (storage.Page[domain.Transaction], error) {
			return e.storage.Transactions(ctx, filter)
		},
		func(t domain.Transaction) []string {
			refID := ""
			if !t.Reference.IsZero() {
				refID = t.Reference.ID.String()
			}

			return []string{
				t.ID.String(), t.UserID.String(), string(t.Type),
				t.Amount.StringFixed(2), t.Commission.StringFixed(2),
				t.BalanceBefore.StringFixed(2), t.BalanceAfter.StringFixed(2),
				string(t.Reference.Type), refID, t.Description,
				formatUserID(t.CreatedBy), formatTime(t.CreatedAt),
			}
		})
}

// Purchases writes the purchase requests matching filter.
func (e *Exporter) Purchases(ctx context.Context, w io.Writer, filter storage.PurchaseFilter) (int, error) {
	header := []string{
		"id", "listing_id", "advertiser_id", "publisher_id", "status", "price", "commission",
		"target_url", "anchor_text", "article_url", "placement_url", "rejection_reason", "created_at", "updated_at",
	}

	return stream(ctx, w, header, &filter.Cursor,
		func(ctx context.Context) (storage.Page[domain.Purchase], error) {
			return e.storage.Purchases(ctx, filter)
		},
		func(p domain.Purchase) []string {
			return []string{
				p.ID.String(), p.ListingID.String(), p.AdvertiserID.String(), p.PublisherID.String(),
				string(p.Status), p.Price.StringFixed(2), p.Commission.StringFixed(2),
				p.TargetURL, p.AnchorText, p.ArticleURL, p.PlacementURL, p.RejectionReason,
				formatTime(p.CreatedAt), formatTime(p.UpdatedAt),
			}
		})
}

// Users writes the accounts matching filter. Password hashes are never exported.
func (e *Exporter) Users(ctx context.Context, w io.Writer, filter storage.UserFilter) (int, error) {
	header := []string{"id", "email", "full_name", "role", "status", "balance", "created_at"}

	return stream(ctx, w, header, &filter.Cursor,
		func(ctx context.Context) (storage.Page[domain.User], error) {
			return e.storage.Users(ctx, filter)
		},
		func(u domain.User) []string {
			return []string{
				u.ID.String(), u.Email, u.FullName, string(u.Role), string(u.Status),
				u.Balance.StringFixed(2), formatTime(u.CreatedAt),
			}
		})
}

// Kind names an exportable listing.
type Kind string

const (
	KindTransactions Kind = "transactions"
	KindPurchases    Kind = "purchases"
	KindUsers        Kind = "users"
)

// Filename returns the download name of an export taken at t.
func Filename(kind Kind, t time.Time) string {
	return string(kind) + "-" + strconv.FormatInt(t.Unix(), 10) + ".csv"
}
