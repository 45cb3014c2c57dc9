package storage

import (
	"context"

	"backma/pkg/domain"

	"github.com/shopspring/decimal"
)

// ServiceFilter narrows a service catalog query. Empty fields match everything.
type ServiceFilter struct {
	Status   domain.ServiceStatus
	Category string
	Cursor
}

// ServiceUpdates describes optional service fields to change.
type ServiceUpdates struct {
	Name         *string
	Description  *string
	Category     *string
	Price        *decimal.Decimal
	DeliveryDays *int
	Status       *domain.ServiceStatus
}

// ServiceRequestFilter narrows a service request query.
type ServiceRequestFilter struct {
	UserID    *domain.UserID
	ServiceID *domain.ServiceID
	Status    domain.ServiceRequestStatus
	Cursor
}

// ServiceStorage defines persistence of catalog services and orders for them.
type ServiceStorage interface {
	StoreService(ctx context.Context, service domain.Service) (*domain.Service, error)
	// ServiceByID returns nil when the service does not exist.
	ServiceByID(ctx context.Context, id domain.ServiceID) (*domain.Service, error)
	// UpdateService applies updates and returns the updated service, or nil when not found.
	UpdateService(ctx context.Context, id domain.ServiceID, updates ServiceUpdates) (*domain.Service, error)
	Services(ctx context.Context, filter ServiceFilter) (Page[domain.Service], error)

	StoreServiceRequest(ctx context.Context, request domain.ServiceRequest) (*domain.ServiceRequest, error)
	// ServiceRequestByID returns nil when the request does not exist.
	ServiceRequestByID(ctx context.Context, id domain.ServiceRequestID) (*domain.ServiceRequest, error)
	// LockServiceRequest reads the request with SELECT ... FOR UPDATE inside a transaction.
	LockServiceRequest(ctx context.Context, id domain.ServiceRequestID) (*domain.ServiceRequest, error)
	// UpdateServiceRequest sets the status and, when non-nil, the admin notes.
	UpdateServiceRequest(ctx context.Context,
		id domain.ServiceRequestID,
		status domain.ServiceRequestStatus,
		adminNotes *string) (*domain.ServiceRequest, error)
	ServiceRequests(ctx context.Context, filter ServiceRequestFilter) (Page[domain.ServiceRequest], error)
}
