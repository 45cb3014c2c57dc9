// Package orders implements the lifecycle of link purchase requests: placing
// an order, moving it through the enforced status table and settling the
// money that each status change implies.
package orders

import (
	"context"
	"fmt"
	"strings"

	"backma/internal/config"
	"backma/internal/ledger"
	"backma/internal/notify"
	"backma/pkg/domain"
	"backma/pkg/metrics"
	"backma/pkg/serrors"
	"backma/pkg/storage"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Options configure the money rules of orders.
type Options struct {
	// PublisherCommissionPercent is retained from the price when a placement completes.
	PublisherCommissionPercent decimal.Decimal
}

// NewOptions constructs an Options value from the marketplace rules.
func NewOptions(rules config.MarketplaceRules) Options {
	return Options{PublisherCommissionPercent: rules.PublisherCommissionPercent}
}

type Deps struct {
	Storage  storage.Storage
	Ledger   ledger.Ledger
	Notifier *notify.Notifier
	Recorder *metrics.Recorder
}

type orders struct {
	Deps
	options Options
}

func (o *orders) Create(ctx context.Context, actor domain.Actor, req CreateRequest) (*domain.Purchase, error) {
	if actor.Role != domain.RoleAdvertiser {
		return nil, serrors.With(serrors.ErrForbidden, "only advertisers can place orders")
	}
	req.TargetURL = strings.TrimSpace(req.TargetURL)
	req.AnchorText = strings.TrimSpace(req.AnchorText)
	if req.TargetURL == "" || req.AnchorText == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "target url and anchor text are required")
	}

	var purchase *domain.Purchase
	if err := o.Storage.WithTx(ctx, func(tx storage.AllStorage) error {
		listing, err := tx.ListingByID(ctx, req.ListingID)
		if err != nil {
			return fmt.Errorf("could not get listing: %w", err)
		}
		if listing == nil {
			return serrors.With(serrors.ErrNotFound, "listing not found")
		}
		if listing.Status != domain.ListingStatusActive {
			return serrors.With(serrors.ErrConflict, "listing is not available")
		}
		if listing.PublisherID == actor.ID {
			return serrors.With(serrors.ErrBadRequest, "cannot order your own listing")
		}

		advertiser, err := tx.UserByID(ctx, actor.ID)
		if err != nil {
			return fmt.Errorf("could not get advertiser: %w", err)
		}
		if advertiser == nil || !advertiser.IsActive() {
			return serrors.With(serrors.ErrForbidden, "account is not active")
		}

		purchase, err = tx.StorePurchase(ctx, domain.Purchase{
			ListingID:    listing.ID,
			AdvertiserID: actor.ID,
			PublisherID:  listing.PublisherID,
			TargetURL:    req.TargetURL,
			AnchorText:   req.AnchorText,
			Notes:        strings.TrimSpace(req.Notes),
			Price:        listing.Price,
			Status:       domain.PurchaseStatusPending,
		})
		if err != nil {
			return fmt.Errorf("could not store purchase: %w", err)
		}

		if _, err := o.Ledger.Post(ctx, tx, ledger.Entry{
			UserID:      actor.ID,
			Type:        domain.TransactionTypePurchase,
			Amount:      listing.Price.Neg(),
			Reference:   reference(purchase.ID),
			Description: "Purchase of " + listing.Title,
		}); err != nil {
			return fmt.Errorf("could not debit advertiser: %w", err)
		}

		return o.Notifier.EmailUser(ctx, tx, purchase.PublisherID, notify.TemplatePurchaseStatus, emailData(purchase, "new"))
	}); err != nil {
		return nil, fmt.Errorf("could not create purchase: %w", err)
	}
	o.Recorder.PurchaseTransitioned(ctx, "new", string(domain.PurchaseStatusPending))

	return purchase, nil
}

// allowed reports whether actor may move p to status to. Admins may take
// every edge of the table.
func allowed(actor domain.Actor, p *domain.Purchase, to domain.PurchaseStatus) bool {
	if actor.IsAdmin() {
		return true
	}

	switch actor.ID {
	case p.PublisherID:
		switch to {
		case domain.PurchaseStatusAccepted:
			return p.Status == domain.PurchaseStatusPending
		case domain.PurchaseStatusRejected, domain.PurchaseStatusArticleReady, domain.PurchaseStatusPlacementCompleted:
			return true
		}
	case p.AdvertiserID:
		switch to {
		case domain.PurchaseStatusCancelled, domain.PurchaseStatusPlacementPending:
			return true
		case domain.PurchaseStatusAccepted:
			return p.Status == domain.PurchaseStatusArticleReady
		}
	}

	return false
}

func (o *orders) Transition(ctx context.Context,
	actor domain.Actor,
	id domain.PurchaseID,
	to domain.PurchaseStatus,
	details Details) (*domain.Purchase, error) {
	if !to.Valid() {
		return nil, serrors.With(serrors.ErrBadRequest, "unknown status %q", to)
	}
	if to == domain.PurchaseStatusRefunded {
		return nil, serrors.With(serrors.ErrInvalidTransition, "refunds are issued through dispute resolution")
	}

	var (
		from    domain.PurchaseStatus
		updated *domain.Purchase
	)
	if err := o.Storage.WithTx(ctx, func(tx storage.AllStorage) error {
		purchase, err := tx.LockPurchase(ctx, id)
		if err != nil {
			return fmt.Errorf("could not lock purchase: %w", err)
		}
		if purchase == nil || (!actor.IsAdmin() && !purchase.Involves(actor.ID)) {
			return serrors.With(serrors.ErrNotFound, "purchase not found")
		}
		from = purchase.Status
		if !from.CanTransitionTo(to) {
			return serrors.With(serrors.ErrInvalidTransition, "cannot move purchase from %s to %s", from, to)
		}
		if !allowed(actor, purchase, to) {
			return serrors.With(serrors.ErrForbidden, "not allowed to move purchase to %s", to)
		}
		if settlesMoney(to) {
			active, err := tx.ActiveDisputeByPurchase(ctx, id)
			if err != nil {
				return fmt.Errorf("could not check active dispute: %w", err)
			}
			if active != nil {
				return serrors.With(serrors.ErrConflict, "purchase has an active dispute, resolve it first")
			}
		}

		updates, err := o.settle(ctx, tx, purchase, to, details)
		if err != nil {
			return err
		}
		if updated, err = tx.UpdatePurchase(ctx, id, updates); err != nil {
			return fmt.Errorf("could not update purchase: %w", err)
		}

		data := emailData(updated, string(from))
		for _, party := range []domain.UserID{updated.AdvertiserID, updated.PublisherID} {
			if err := o.Notifier.EmailUser(ctx, tx, party, notify.TemplatePurchaseStatus, data); err != nil {
				return err
			}
		}

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not transition purchase: %w", err)
	}
	o.Recorder.PurchaseTransitioned(ctx, string(from), string(to))

	return updated, nil
}

// settlesMoney reports whether moving to status to pays out or refunds. Such
// moves wait for any active dispute, whose resolution settles the money instead.
func settlesMoney(to domain.PurchaseStatus) bool {
	switch to {
	case domain.PurchaseStatusRejected, domain.PurchaseStatusCancelled, domain.PurchaseStatusPlacementCompleted:
		return true
	}

	return false
}

// settle validates the details required by status to, posts the money it
// implies and returns the purchase updates to write.
func (o *orders) settle(ctx context.Context,
	tx storage.AllStorage,
	p *domain.Purchase,
	to domain.PurchaseStatus,
	details Details) (storage.PurchaseUpdates, error) {
	updates := storage.PurchaseUpdates{Status: to}

	switch to {
	case domain.PurchaseStatusArticleReady:
		articleURL := strings.TrimSpace(details.ArticleURL)
		if articleURL == "" {
			return updates, serrors.With(serrors.ErrBadRequest, "article url is required")
		}
		updates.ArticleURL = &articleURL
	case domain.PurchaseStatusPlacementCompleted:
		placementURL := strings.TrimSpace(details.PlacementURL)
		if placementURL == "" {
			return updates, serrors.With(serrors.ErrBadRequest, "placement url is required")
		}
		updates.PlacementURL = &placementURL

		commission, net, err := ledger.SplitCommission(p.Price, o.options.PublisherCommissionPercent)
		if err != nil {
			return updates, err
		}
		updates.Commission = &commission
		if net.IsPositive() {
			if _, err := o.Ledger.Post(ctx, tx, ledger.Entry{
				UserID:      p.PublisherID,
				Type:        domain.TransactionTypeEarning,
				Amount:      net,
				Commission:  commission,
				Reference:   reference(p.ID),
				Description: "Earning for completed placement",
			}); err != nil {
				return updates, fmt.Errorf("could not credit publisher: %w", err)
			}
		}
	case domain.PurchaseStatusRejected, domain.PurchaseStatusCancelled:
		if to == domain.PurchaseStatusRejected {
			reason := strings.TrimSpace(details.Reason)
			if reason == "" {
				return updates, serrors.With(serrors.ErrBadRequest, "rejection reason is required")
			}
			updates.RejectionReason = &reason
		}
		if _, err := o.Ledger.Post(ctx, tx, ledger.Entry{
			UserID:      p.AdvertiserID,
			Type:        domain.TransactionTypeRefund,
			Amount:      p.Price,
			Reference:   reference(p.ID),
			Description: fmt.Sprintf("Refund for %s purchase", to),
		}); err != nil {
			return updates, fmt.Errorf("could not refund advertiser: %w", err)
		}
	}

	return updates, nil
}

func (o *orders) Get(ctx context.Context, actor domain.Actor, id domain.PurchaseID) (*domain.Purchase, error) {
	purchase, err := o.Storage.PurchaseByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get purchase: %w", err)
	}
	if purchase == nil || (!actor.IsAdmin() && !purchase.Involves(actor.ID)) {
		return nil, serrors.With(serrors.ErrNotFound, "purchase not found")
	}

	return purchase, nil
}

// List returns purchases matching filter. Non-admins only ever see requests
// they are a party to.
func (o *orders) List(ctx context.Context,
	actor domain.Actor,
	filter storage.PurchaseFilter) (storage.Page[domain.Purchase], error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return storage.Page[domain.Purchase]{}, serrors.With(serrors.ErrBadRequest, "unknown status")
	}
	if !actor.IsAdmin() {
		filter.PartyID = &actor.ID
	}

	page, err := o.Storage.Purchases(ctx, filter)
	if err != nil {
		return storage.Page[domain.Purchase]{}, fmt.Errorf("could not list purchases: %w", err)
	}

	return page, nil
}

func reference(id domain.PurchaseID) domain.Reference {
	return domain.Reference{Type: domain.ReferencePurchase, ID: uuid.UUID(id)}
}

func emailData(p *domain.Purchase, from string) map[string]string {
	return map[string]string{
		"PurchaseID":   p.ID.String(),
		"From":         from,
		"Status":       string(p.Status),
		"Reason":       p.RejectionReason,
		"ArticleURL":   p.ArticleURL,
		"PlacementURL": p.PlacementURL,
	}
}

// New creates an Orders service.
func New(deps Deps, options Options) Orders {
	return &orders{Deps: deps, options: options}
}
