package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ServiceID uniquely identifies a catalog service.
type ServiceID uuid.UUID

func (id ServiceID) String() string { return uuid.UUID(id).String() }

// ServiceStatus tells whether a service can be ordered.
type ServiceStatus string

const (
	ServiceStatusActive   ServiceStatus = "active"
	ServiceStatusInactive ServiceStatus = "inactive"
)

// Valid reports whether s is a known service status.
func (s ServiceStatus) Valid() bool { return s == ServiceStatusActive || s == ServiceStatusInactive }

// Service is an add-on the platform sells directly, such as article writing
// or an SEO audit.
type Service struct {
	ID           ServiceID
	Name         string
	Description  string
	Category     string
	Price        decimal.Decimal
	DeliveryDays int
	Status       ServiceStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ServiceRequestID uniquely identifies an order for a service.
type ServiceRequestID uuid.UUID

func (id ServiceRequestID) String() string { return uuid.UUID(id).String() }

// ServiceRequestStatus is the lifecycle state of a service request.
type ServiceRequestStatus string

const (
	ServiceRequestStatusPending    ServiceRequestStatus = "pending"
	ServiceRequestStatusInProgress ServiceRequestStatus = "in_progress"
	ServiceRequestStatusCompleted  ServiceRequestStatus = "completed"
	ServiceRequestStatusCancelled  ServiceRequestStatus = "cancelled"
)

// CanTransitionTo reports whether a service request in status s may move to status to.
func (s ServiceRequestStatus) CanTransitionTo(to ServiceRequestStatus) bool {
	switch s {
	case ServiceRequestStatusPending:
		return to == ServiceRequestStatusInProgress || to == ServiceRequestStatusCancelled
	case ServiceRequestStatusInProgress:
		return to == ServiceRequestStatusCompleted || to == ServiceRequestStatusCancelled
	case ServiceRequestStatusCompleted, ServiceRequestStatusCancelled:
		return false
	}

	return false
}

// ServiceRequest is a user's order for a catalog service. Price is captured
// at order time.
type ServiceRequest struct {
	ID         ServiceRequestID
	ServiceID  ServiceID
	UserID     UserID
	Price      decimal.Decimal
	Notes      string
	AdminNotes string
	Status     ServiceRequestStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}
