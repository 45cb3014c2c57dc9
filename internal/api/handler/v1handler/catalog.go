package v1handler

import (
	"net/http"

	"backma/internal/catalog"
	"backma/pkg/domain"
	"backma/pkg/storage"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateServiceRequest struct {
	Name         string          `json:"name"                  validate:"required,max=200"`
	Description  string          `json:"description,omitempty"`
	Category     string          `json:"category,omitempty"    validate:"max=100"`
	Price        decimal.Decimal `json:"price"`
	DeliveryDays int             `json:"deliveryDays"          validate:"gte=0,lte=365"`
}

type UpdateServiceRequest struct {
	Name         *string          `json:"name,omitempty"         validate:"omitempty,min=1,max=200"`
	Description  *string          `json:"description,omitempty"`
	Category     *string          `json:"category,omitempty"     validate:"omitempty,max=100"`
	Price        *decimal.Decimal `json:"price,omitempty"`
	DeliveryDays *int             `json:"deliveryDays,omitempty" validate:"omitempty,gte=0,lte=365"`
	Status       *string          `json:"status,omitempty"       validate:"omitempty,oneof=active inactive"`
}

type ServiceOrderRequest struct {
	ServiceID uuid.UUID `json:"serviceId"       validate:"required"`
	Notes     string    `json:"notes,omitempty" validate:"max=2000"`
}

type UpdateServiceOrderRequest struct {
	Status     string  `json:"status"               validate:"required,oneof=in_progress completed cancelled"`
	AdminNotes *string `json:"adminNotes,omitempty" validate:"omitempty,max=2000"`
}

func (h *Handler) CreateService(w http.ResponseWriter, r *http.Request) {
	var req CreateServiceRequest
	if !h.decode(w, r, &req) {
		return
	}

	service, err := h.Catalog.CreateService(r.Context(), actorOf(r), catalog.ServiceDraft{
		Name:         req.Name,
		Description:  req.Description,
		Category:     req.Category,
		Price:        req.Price,
		DeliveryDays: req.DeliveryDays,
	})
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusCreated, DomainServiceToV1(service))
}

func (h *Handler) UpdateService(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}
	var req UpdateServiceRequest
	if !h.decode(w, r, &req) {
		return
	}

	updates := storage.ServiceUpdates{
		Name:         req.Name,
		Description:  req.Description,
		Category:     req.Category,
		Price:        req.Price,
		DeliveryDays: req.DeliveryDays,
	}
	if req.Status != nil {
		status := domain.ServiceStatus(*req.Status)
		updates.Status = &status
	}

	service, err := h.Catalog.UpdateService(r.Context(), actorOf(r), domain.ServiceID(id), updates)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, DomainServiceToV1(service))
}

func (h *Handler) ListServices(w http.ResponseWriter, r *http.Request) {
	cursor, err := h.cursor(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	q := r.URL.Query()
	page, err := h.Catalog.Services(r.Context(), actorOf(r), storage.ServiceFilter{
		Status:   domain.ServiceStatus(q.Get("status")),
		Category: q.Get("category"),
		Cursor:   cursor,
	})
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, toPage(page, DomainServiceToV1))
}

func (h *Handler) RequestService(w http.ResponseWriter, r *http.Request) {
	var req ServiceOrderRequest
	if !h.decode(w, r, &req) {
		return
	}

	request, err := h.Catalog.Request(r.Context(), actorOf(r), domain.ServiceID(req.ServiceID), req.Notes)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusCreated, DomainServiceRequestToV1(request))
}

func (h *Handler) UpdateServiceRequest(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}
	var req UpdateServiceOrderRequest
	if !h.decode(w, r, &req) {
		return
	}

	request, err := h.Catalog.UpdateRequest(r.Context(), actorOf(r), domain.ServiceRequestID(id),
		domain.ServiceRequestStatus(req.Status), req.AdminNotes)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, DomainServiceRequestToV1(request))
}

func (h *Handler) ListServiceRequests(w http.ResponseWriter, r *http.Request) {
	cursor, err := h.cursor(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}
	userID, err := queryUserID(r, "userId")
	if err != nil {
		h.writeError(w, r, err)

		return
	}
	serviceID, err := queryUUID(r, "serviceId")
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	filter := storage.ServiceRequestFilter{
		UserID: userID,
		Status: domain.ServiceRequestStatus(r.URL.Query().Get("status")),
		Cursor: cursor,
	}
	if serviceID != nil {
		id := domain.ServiceID(*serviceID)
		filter.ServiceID = &id
	}

	page, err := h.Catalog.Requests(r.Context(), actorOf(r), filter)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, toPage(page, DomainServiceRequestToV1))
}
