// Package catalog manages the marketplace's own services and the orders
// users place for them.
package catalog

import (
	"context"
	"fmt"
	"strings"

	"backma/internal/ledger"
	"backma/internal/notify"
	"backma/pkg/domain"
	"backma/pkg/serrors"
	"backma/pkg/storage"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Deps struct {
	Storage  storage.Storage
	Ledger   ledger.Ledger
	Notifier *notify.Notifier
}

type catalog struct {
	Deps
}

func requireAdmin(actor domain.Actor) error {
	if !actor.IsAdmin() {
		return serrors.With(serrors.ErrForbidden, "only admins can manage services")
	}

	return nil
}

// validPrice reports whether price is a positive amount of money.
func validPrice(price decimal.Decimal) bool {
	return price.IsPositive() && domain.IsMoney(price)
}

func (c *catalog) CreateService(ctx context.Context, actor domain.Actor, draft ServiceDraft) (*domain.Service, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	draft.Name = strings.TrimSpace(draft.Name)
	if draft.Name == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "name is required")
	}
	if !validPrice(draft.Price) {
		return nil, serrors.With(serrors.ErrBadRequest, "price must be positive with at most 2 decimals")
	}
	if draft.DeliveryDays < 0 {
		return nil, serrors.With(serrors.ErrBadRequest, "delivery days cannot be negative")
	}

	service, err := c.Storage.StoreService(ctx, domain.Service{
		Name:         draft.Name,
		Description:  strings.TrimSpace(draft.Description),
		Category:     strings.TrimSpace(draft.Category),
		Price:        draft.Price,
		DeliveryDays: draft.DeliveryDays,
		Status:       domain.ServiceStatusActive,
	})
	if err != nil {
		return nil, fmt.Errorf("could not store service: %w", err)
	}

	return service, nil
}

func (c *catalog) UpdateService(ctx context.Context,
	actor domain.Actor,
	id domain.ServiceID,
	updates storage.ServiceUpdates) (*domain.Service, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	if updates.Status != nil && !updates.Status.Valid() {
		return nil, serrors.With(serrors.ErrBadRequest, "unknown status %q", *updates.Status)
	}
	if updates.Price != nil && !validPrice(*updates.Price) {
		return nil, serrors.With(serrors.ErrBadRequest, "price must be positive with at most 2 decimals")
	}
	if updates.DeliveryDays != nil && *updates.DeliveryDays < 0 {
		return nil, serrors.With(serrors.ErrBadRequest, "delivery days cannot be negative")
	}

	service, err := c.Storage.UpdateService(ctx, id, updates)
	if err != nil {
		return nil, fmt.Errorf("could not update service: %w", err)
	}
	if service == nil {
		return nil, serrors.With(serrors.ErrNotFound, "service not found")
	}

	return service, nil
}

func (c *catalog) Services(ctx context.Context,
	actor domain.Actor,
	filter storage.ServiceFilter) (storage.Page[domain.Service], error) {
	if !actor.IsAdmin() {
		filter.Status = domain.ServiceStatusActive
	}

	page, err := c.Storage.Services(ctx, filter)
	if err != nil {
		return storage.Page[domain.Service]{}, fmt.Errorf("could not list services: %w", err)
	}

	return page, nil
}

func (c *catalog) Request(ctx context.Context,
	actor domain.Actor,
	serviceID domain.ServiceID,
	notes string) (*domain.ServiceRequest, error) {
	var request *domain.ServiceRequest
	if err := c.Storage.WithTx(ctx, func(tx storage.AllStorage) error {
		service, err := tx.ServiceByID(ctx, serviceID)
		if err != nil {
			return fmt.Errorf("could not get service: %w", err)
		}
		if service == nil || service.Status != domain.ServiceStatusActive {
			return serrors.With(serrors.ErrNotFound, "service not found")
		}

		if request, err = tx.StoreServiceRequest(ctx, domain.ServiceRequest{
			ServiceID: service.ID,
			UserID:    actor.ID,
			Price:     service.Price,
			Notes:     strings.TrimSpace(notes),
			Status:    domain.ServiceRequestStatusPending,
		}); err != nil {
			return fmt.Errorf("could not store service request: %w", err)
		}

		if _, err := c.Ledger.Post(ctx, tx, ledger.Entry{
			UserID:      actor.ID,
			Type:        domain.TransactionTypeService,
			Amount:      service.Price.Neg(),
			Reference:   reference(request.ID),
			Description: "Order of " + service.Name,
		}); err != nil {
			return fmt.Errorf("could not debit service price: %w", err)
		}

		return c.email(ctx, tx, service, request)
	}); err != nil {
		return nil, fmt.Errorf("could not request service: %w", err)
	}

	return request, nil
}

func (c *catalog) UpdateRequest(ctx context.Context,
	actor domain.Actor,
	id domain.ServiceRequestID,
	status domain.ServiceRequestStatus,
	adminNotes *string) (*domain.ServiceRequest, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}

	var updated *domain.ServiceRequest
	if err := c.Storage.WithTx(ctx, func(tx storage.AllStorage) error {
		request, err := tx.LockServiceRequest(ctx, id)
		if err != nil {
			return fmt.Errorf("could not lock service request: %w", err)
		}
		if request == nil {
			return serrors.With(serrors.ErrNotFound, "service request not found")
		}
		if !request.Status.CanTransitionTo(status) {
			return serrors.With(serrors.ErrInvalidTransition,
				"cannot move service request from %s to %s", request.Status, status)
		}

		if status == domain.ServiceRequestStatusCancelled {
			if _, err := c.Ledger.Post(ctx, tx, ledger.Entry{
				UserID:      request.UserID,
				Type:        domain.TransactionTypeRefund,
				Amount:      request.Price,
				Reference:   reference(request.ID),
				Description: "Refund for cancelled service order",
				CreatedBy:   &actor.ID,
			}); err != nil {
				return fmt.Errorf("could not refund service price: %w", err)
			}
		}

		if updated, err = tx.UpdateServiceRequest(ctx, id, status, adminNotes); err != nil {
			return fmt.Errorf("could not update service request: %w", err)
		}

		service, err := tx.ServiceByID(ctx, updated.ServiceID)
		if err != nil {
			return fmt.Errorf("could not get service: %w", err)
		}

		return c.email(ctx, tx, service, updated)
	}); err != nil {
		return nil, fmt.Errorf("could not update service request: %w", err)
	}

	return updated, nil
}

func (c *catalog) email(ctx context.Context,
	tx storage.AllStorage,
	service *domain.Service,
	request *domain.ServiceRequest) error {
	name := "service"
	if service != nil {
		name = service.Name
	}

	return c.Notifier.EmailUser(ctx, tx, request.UserID, notify.TemplateServiceRequestStatus, map[string]string{
		"Service":   name,
		"RequestID": request.ID.String(),
		"Status":    string(request.Status),
		"Notes":     request.AdminNotes,
	})
}

// Requests lists service requests. Non-admins see their own.
func (c *catalog) Requests(ctx context.Context,
	actor domain.Actor,
	filter storage.ServiceRequestFilter) (storage.Page[domain.ServiceRequest], error) {
	if !actor.IsAdmin() {
		filter.UserID = &actor.ID
	}

	page, err := c.Storage.ServiceRequests(ctx, filter)
	if err != nil {
		return storage.Page[domain.ServiceRequest]{}, fmt.Errorf("could not list service requests: %w", err)
	}

	return page, nil
}

func reference(id domain.ServiceRequestID) domain.Reference {
	return domain.Reference{Type: domain.ReferenceServiceRequest, ID: uuid.UUID(id)}
}

// New creates a Catalog service.
func New(deps Deps) Catalog {
	return &catalog{Deps: deps}
}
