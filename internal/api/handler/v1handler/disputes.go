package v1handler

import (
	"net/http"

	"backma/internal/disputes"
	"backma/pkg/domain"
	"backma/pkg/storage"

	"github.com/google/uuid"
)

type OpenDisputeRequest struct {
	PurchaseID  uuid.UUID `json:"purchaseId"            validate:"required"`
	Reason      string    `json:"reason"                validate:"required,max=200"`
	Description string    `json:"description,omitempty" validate:"max=5000"`
}

type ResolveDisputeRequest struct {
	Outcome    string `json:"outcome"              validate:"required,oneof=refund release"`
	Resolution string `json:"resolution,omitempty" validate:"max=5000"`
}

type RejectDisputeRequest struct {
	Resolution string `json:"resolution,omitempty" validate:"max=5000"`
}

func (h *Handler) OpenDispute(w http.ResponseWriter, r *http.Request) {
	var req OpenDisputeRequest
	if !h.decode(w, r, &req) {
		return
	}

	dispute, err := h.Disputes.Open(r.Context(), actorOf(r), disputes.OpenRequest{
		PurchaseID:  domain.PurchaseID(req.PurchaseID),
		Reason:      req.Reason,
		Description: req.Description,
	})
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusCreated, DomainDisputeToV1(dispute))
}

func (h *Handler) disputeAction(w http.ResponseWriter, r *http.Request,
	do func(id domain.DisputeID) (*domain.Dispute, error)) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	dispute, err := do(domain.DisputeID(id))
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, DomainDisputeToV1(dispute))
}

func (h *Handler) GetDispute(w http.ResponseWriter, r *http.Request) {
	h.disputeAction(w, r, func(id domain.DisputeID) (*domain.Dispute, error) {
		return h.Disputes.Get(r.Context(), actorOf(r), id) //nolint: wrapcheck
	})
}

func (h *Handler) ReviewDispute(w http.ResponseWriter, r *http.Request) {
	h.disputeAction(w, r, func(id domain.DisputeID) (*domain.Dispute, error) {
		return h.Disputes.Review(r.Context(), actorOf(r), id) //nolint: wrapcheck
	})
}

func (h *Handler) ResolveDispute(w http.ResponseWriter, r *http.Request) {
	var req ResolveDisputeRequest
	if !h.decode(w, r, &req) {
		return
	}

	h.disputeAction(w, r, func(id domain.DisputeID) (*domain.Dispute, error) {
		return h.Disputes.Resolve(r.Context(), actorOf(r), id, //nolint: wrapcheck
			domain.DisputeOutcome(req.Outcome), req.Resolution)
	})
}

func (h *Handler) RejectDispute(w http.ResponseWriter, r *http.Request) {
	var req RejectDisputeRequest
	if !h.decodeOptional(w, r, &req) {
		return
	}

	h.disputeAction(w, r, func(id domain.DisputeID) (*domain.Dispute, error) {
		return h.Disputes.Reject(r.Context(), actorOf(r), id, req.Resolution) //nolint: wrapcheck
	})
}

func (h *Handler) ListDisputes(w http.ResponseWriter, r *http.Request) {
	cursor, err := h.cursor(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}
	purchaseID, err := queryUUID(r, "purchaseId")
	if err != nil {
		h.writeError(w, r, err)

		return
	}
	raisedBy, err := queryUserID(r, "raisedBy")
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	filter := storage.DisputeFilter{
		RaisedBy: raisedBy,
		Status:   domain.DisputeStatus(r.URL.Query().Get("status")),
		Cursor:   cursor,
	}
	if purchaseID != nil {
		id := domain.PurchaseID(*purchaseID)
		filter.PurchaseID = &id
	}

	page, err := h.Disputes.List(r.Context(), actorOf(r), filter)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, toPage(page, DomainDisputeToV1))
}
