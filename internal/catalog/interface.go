package catalog

import (
	"context"

	"backma/pkg/domain"
	"backma/pkg/storage"

	"github.com/shopspring/decimal"
)

// ServiceDraft holds the fields of a new catalog service.
type ServiceDraft struct {
	Name         string
	Description  string
	Category     string
	Price        decimal.Decimal
	DeliveryDays int
}

//go:generate mockgen -package mockcatalog -source=interface.go -destination=mock/mockcatalog.go *
type Catalog interface {
	CreateService(ctx context.Context, actor domain.Actor, draft ServiceDraft) (*domain.Service, error)
	UpdateService(ctx context.Context,
		actor domain.Actor,
		id domain.ServiceID,
		updates storage.ServiceUpdates) (*domain.Service, error)
	// Services lists the catalog. Non-admins only see active services.
	Services(ctx context.Context, actor domain.Actor, filter storage.ServiceFilter) (storage.Page[domain.Service], error)

	// Request orders a service and debits its price.
	Request(ctx context.Context,
		actor domain.Actor,
		serviceID domain.ServiceID,
		notes string) (*domain.ServiceRequest, error)
	// UpdateRequest moves a service request along its status table. Cancelling refunds the price.
	UpdateRequest(ctx context.Context,
		actor domain.Actor,
		id domain.ServiceRequestID,
		status domain.ServiceRequestStatus,
		adminNotes *string) (*domain.ServiceRequest, error)
	Requests(ctx context.Context,
		actor domain.Actor,
		filter storage.ServiceRequestFilter) (storage.Page[domain.ServiceRequest], error)
}
