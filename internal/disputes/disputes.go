// Package disputes handles disputes raised by either party of a purchase
// request and their resolution by admins.
package disputes

import (
	"context"
	"fmt"
	"strings"

	"backma/internal/ledger"
	"backma/internal/notify"
	"backma/pkg/domain"
	"backma/pkg/metrics"
	"backma/pkg/serrors"
	"backma/pkg/storage"

	"github.com/google/uuid"
)

type Deps struct {
	Storage  storage.Storage
	Ledger   ledger.Ledger
	Notifier *notify.Notifier
	Recorder *metrics.Recorder
}

type disputes struct {
	Deps
}

func (s *disputes) Open(ctx context.Context, actor domain.Actor, req OpenRequest) (*domain.Dispute, error) {
	req.Reason = strings.TrimSpace(req.Reason)
	if req.Reason == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "reason is required")
	}

	var dispute *domain.Dispute
	if err := s.Storage.WithTx(ctx, func(tx storage.AllStorage) error {
		purchase, err := tx.LockPurchase(ctx, req.PurchaseID)
		if err != nil {
			return fmt.Errorf("could not lock purchase: %w", err)
		}
		if purchase == nil || !purchase.Involves(actor.ID) {
			return serrors.With(serrors.ErrNotFound, "purchase not found")
		}
		if !purchase.Status.Disputable() {
			return serrors.With(serrors.ErrInvalidTransition, "a %s purchase cannot be disputed", purchase.Status)
		}

		active, err := tx.ActiveDisputeByPurchase(ctx, purchase.ID)
		if err != nil {
			return fmt.Errorf("could not check active dispute: %w", err)
		}
		if active != nil {
			return serrors.With(serrors.ErrConflict, "purchase already has an active dispute")
		}

		if dispute, err = tx.StoreDispute(ctx, domain.Dispute{
			PurchaseID:  purchase.ID,
			RaisedBy:    actor.ID,
			Reason:      req.Reason,
			Description: strings.TrimSpace(req.Description),
			Status:      domain.DisputeStatusOpen,
		}); err != nil {
			return fmt.Errorf("could not store dispute: %w", err)
		}

		return s.emailParties(ctx, tx, purchase, notify.TemplateDisputeOpened, map[string]string{
			"PurchaseID": purchase.ID.String(),
			"Reason":     dispute.Reason,
		})
	}); err != nil {
		return nil, fmt.Errorf("could not open dispute: %w", err)
	}

	return dispute, nil
}

func (s *disputes) Review(ctx context.Context, actor domain.Actor, id domain.DisputeID) (*domain.Dispute, error) {
	if !actor.IsAdmin() {
		return nil, serrors.With(serrors.ErrForbidden, "only admins can review disputes")
	}

	var dispute *domain.Dispute
	if err := s.Storage.WithTx(ctx, func(tx storage.AllStorage) error {
		current, err := lock(ctx, tx, id)
		if err != nil {
			return err
		}
		if current.Status != domain.DisputeStatusOpen {
			return serrors.With(serrors.ErrInvalidTransition, "cannot review a %s dispute", current.Status)
		}

		dispute, err = tx.UpdateDispute(ctx, id, storage.DisputeUpdates{Status: domain.DisputeStatusUnderReview})
		if err != nil {
			return fmt.Errorf("could not update dispute: %w", err)
		}

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not review dispute: %w", err)
	}

	return dispute, nil
}

func (s *disputes) Resolve(ctx context.Context,
	actor domain.Actor,
	id domain.DisputeID,
	outcome domain.DisputeOutcome,
	resolution string) (*domain.Dispute, error) {
	if !actor.IsAdmin() {
		return nil, serrors.With(serrors.ErrForbidden, "only admins can resolve disputes")
	}
	if !outcome.Valid() {
		return nil, serrors.With(serrors.ErrBadRequest, "unknown outcome %q", outcome)
	}

	return s.close(ctx, actor, id, domain.DisputeStatusResolved, outcome, resolution)
}

func (s *disputes) Reject(ctx context.Context,
	actor domain.Actor,
	id domain.DisputeID,
	resolution string) (*domain.Dispute, error) {
	if !actor.IsAdmin() {
		return nil, serrors.With(serrors.ErrForbidden, "only admins can reject disputes")
	}

	return s.close(ctx, actor, id, domain.DisputeStatusRejected, "", resolution)
}

func (s *disputes) close(ctx context.Context,
	actor domain.Actor,
	id domain.DisputeID,
	status domain.DisputeStatus,
	outcome domain.DisputeOutcome,
	resolution string) (*domain.Dispute, error) {
	resolution = strings.TrimSpace(resolution)

	var (
		dispute    *domain.Dispute
		transition [2]domain.PurchaseStatus
	)
	if err := s.Storage.WithTx(ctx, func(tx storage.AllStorage) error {
		current, err := lock(ctx, tx, id)
		if err != nil {
			return err
		}
		if current.Status.Closed() {
			return serrors.With(serrors.ErrInvalidTransition, "dispute is already %s", current.Status)
		}

		purchase, err := tx.LockPurchase(ctx, current.PurchaseID)
		if err != nil {
			return fmt.Errorf("could not lock purchase: %w", err)
		}
		if purchase == nil {
			return serrors.With(serrors.ErrNotFound, "purchase not found")
		}

		if outcome == domain.DisputeOutcomeRefund {
			if !purchase.Status.Disputable() {
				return serrors.With(serrors.ErrInvalidTransition, "a %s purchase cannot be refunded", purchase.Status)
			}
			to, err := s.refund(ctx, tx, actor, current, purchase)
			if err != nil {
				return err
			}
			transition = [2]domain.PurchaseStatus{purchase.Status, to}
		}

		updates := storage.DisputeUpdates{Status: status, Resolution: &resolution, ResolvedBy: &actor.ID}
		if outcome != "" {
			updates.Outcome = &outcome
		}
		if dispute, err = tx.UpdateDispute(ctx, id, updates); err != nil {
			return fmt.Errorf("could not update dispute: %w", err)
		}

		return s.emailParties(ctx, tx, purchase, notify.TemplateDisputeClosed, map[string]string{
			"PurchaseID": purchase.ID.String(),
			"Status":     string(status),
			"Outcome":    string(outcome),
			"Resolution": resolution,
		})
	}); err != nil {
		return nil, fmt.Errorf("could not close dispute: %w", err)
	}
	if transition[0] != "" {
		s.Recorder.PurchaseTransitioned(ctx, string(transition[0]), string(transition[1]))
	}

	return dispute, nil
}

// refund returns the price to the advertiser and, when the placement was
// already paid out, reverses the publisher's earning. A completed purchase
// becomes refunded and one still in progress becomes rejected.
func (s *disputes) refund(ctx context.Context,
	tx storage.AllStorage,
	actor domain.Actor,
	dispute *domain.Dispute,
	purchase *domain.Purchase) (domain.PurchaseStatus, error) {
	ref := domain.Reference{Type: domain.ReferenceDispute, ID: uuid.UUID(dispute.ID)}
	to := domain.PurchaseStatusRejected

	if purchase.Status == domain.PurchaseStatusPlacementCompleted {
		to = domain.PurchaseStatusRefunded
		earning := purchase.Price.Sub(purchase.Commission)
		if earning.IsPositive() {
			if _, err := s.Ledger.Post(ctx, tx, ledger.Entry{
				UserID:      purchase.PublisherID,
				Type:        domain.TransactionTypeChargeback,
				Amount:      earning.Neg(),
				Reference:   ref,
				Description: "Chargeback after dispute",
				CreatedBy:   &actor.ID,
			}); err != nil {
				return "", fmt.Errorf("could not charge back publisher: %w", err)
			}
		}
	}

	if _, err := s.Ledger.Post(ctx, tx, ledger.Entry{
		UserID:      purchase.AdvertiserID,
		Type:        domain.TransactionTypeRefund,
		Amount:      purchase.Price,
		Reference:   ref,
		Description: "Refund after dispute",
		CreatedBy:   &actor.ID,
	}); err != nil {
		return "", fmt.Errorf("could not refund advertiser: %w", err)
	}

	updates := storage.PurchaseUpdates{Status: to}
	if to == domain.PurchaseStatusRejected {
		reason := "Refunded after dispute"
		updates.RejectionReason = &reason
	}
	if _, err := tx.UpdatePurchase(ctx, purchase.ID, updates); err != nil {
		return "", fmt.Errorf("could not update purchase: %w", err)
	}

	return to, nil
}

func (s *disputes) emailParties(ctx context.Context,
	tx storage.AllStorage,
	purchase *domain.Purchase,
	tmpl notify.Template,
	data map[string]string) error {
	for _, party := range []domain.UserID{purchase.AdvertiserID, purchase.PublisherID} {
		if err := s.Notifier.EmailUser(ctx, tx, party, tmpl, data); err != nil {
			return err
		}
	}

	return nil
}

func (s *disputes) Get(ctx context.Context, actor domain.Actor, id domain.DisputeID) (*domain.Dispute, error) {
	dispute, err := s.Storage.DisputeByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get dispute: %w", err)
	}
	if dispute == nil {
		return nil, serrors.With(serrors.ErrNotFound, "dispute not found")
	}
	if actor.IsAdmin() {
		return dispute, nil
	}

	purchase, err := s.Storage.PurchaseByID(ctx, dispute.PurchaseID)
	if err != nil {
		return nil, fmt.Errorf("could not get purchase: %w", err)
	}
	if purchase == nil || !purchase.Involves(actor.ID) {
		return nil, serrors.With(serrors.ErrNotFound, "dispute not found")
	}

	return dispute, nil
}

// List returns disputes matching filter. Non-admins see the disputes they raised.
func (s *disputes) List(ctx context.Context,
	actor domain.Actor,
	filter storage.DisputeFilter) (storage.Page[domain.Dispute], error) {
	if !actor.IsAdmin() {
		filter.RaisedBy = &actor.ID
	}

	page, err := s.Storage.Disputes(ctx, filter)
	if err != nil {
		return storage.Page[domain.Dispute]{}, fmt.Errorf("could not list disputes: %w", err)
	}

	return page, nil
}

func lock(ctx context.Context, tx storage.AllStorage, id domain.DisputeID) (*domain.Dispute, error) {
	dispute, err := tx.LockDispute(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not lock dispute: %w", err)
	}
	if dispute == nil {
		return nil, serrors.With(serrors.ErrNotFound, "dispute not found")
	}

	return dispute, nil
}

// New creates a Disputes service.
func New(deps Deps) Disputes {
	return &disputes{Deps: deps}
}
