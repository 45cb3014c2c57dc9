package v1handler

import (
	"net/http"

	"backma/internal/funding"
	"backma/pkg/domain"
	"backma/pkg/serrors"
	"backma/pkg/storage"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type SubmitBalanceRequest struct {
	Type          string          `json:"type"                    validate:"required,oneof=deposit withdrawal"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod string          `json:"paymentMethod,omitempty" validate:"max=100"`
	Reference     string          `json:"reference,omitempty"     validate:"max=200"`
}

type NoteRequest struct {
	Note string `json:"note,omitempty" validate:"max=1000"`
}

type AdjustmentRequest struct {
	UserID      uuid.UUID       `json:"userId"      validate:"required"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description" validate:"required,max=500"`
}

type Balance struct {
	UserID  uuid.UUID       `json:"userId"`
	Balance decimal.Decimal `json:"balance"`
}

func (h *Handler) SubmitBalanceRequest(w http.ResponseWriter, r *http.Request) {
	var req SubmitBalanceRequest
	if !h.decode(w, r, &req) {
		return
	}

	request, err := h.Funding.Submit(r.Context(), actorOf(r), funding.SubmitRequest{
		Type:          domain.BalanceRequestType(req.Type),
		Amount:        req.Amount,
		PaymentMethod: req.PaymentMethod,
		Reference:     req.Reference,
	})
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusCreated, DomainBalanceRequestToV1(request))
}

func (h *Handler) processBalanceRequest(w http.ResponseWriter, r *http.Request,
	do func(id domain.BalanceRequestID, note string) (*domain.BalanceRequest, error)) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}
	var req NoteRequest
	if !h.decodeOptional(w, r, &req) {
		return
	}

	request, err := do(domain.BalanceRequestID(id), req.Note)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, DomainBalanceRequestToV1(request))
}

func (h *Handler) ApproveBalanceRequest(w http.ResponseWriter, r *http.Request) {
	h.processBalanceRequest(w, r, func(id domain.BalanceRequestID, note string) (*domain.BalanceRequest, error) {
		return h.Funding.Approve(r.Context(), actorOf(r), id, note) //nolint: wrapcheck
	})
}

func (h *Handler) RejectBalanceRequest(w http.ResponseWriter, r *http.Request) {
	h.processBalanceRequest(w, r, func(id domain.BalanceRequestID, note string) (*domain.BalanceRequest, error) {
		return h.Funding.Reject(r.Context(), actorOf(r), id, note) //nolint: wrapcheck
	})
}

func (h *Handler) ListBalanceRequests(w http.ResponseWriter, r *http.Request) {
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

	q := r.URL.Query()
	page, err := h.Funding.List(r.Context(), actorOf(r), storage.BalanceRequestFilter{
		UserID: userID,
		Type:   domain.BalanceRequestType(q.Get("type")),
		Status: domain.BalanceRequestStatus(q.Get("status")),
		Cursor: cursor,
	})
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, toPage(page, DomainBalanceRequestToV1))
}

func (h *Handler) transactionFilter(r *http.Request) (storage.TransactionFilter, error) {
	cursor, err := h.cursor(r)
	if err != nil {
		return storage.TransactionFilter{}, err
	}
	filter := storage.TransactionFilter{
		Type:   domain.TransactionType(r.URL.Query().Get("type")),
		Cursor: cursor,
	}
	if filter.Type != "" && !filter.Type.Valid() {
		return filter, serrors.With(serrors.ErrBadRequest, "invalid transaction type %q", filter.Type)
	}
	if filter.UserID, err = queryUserID(r, "userId"); err != nil {
		return filter, err
	}
	if filter.From, err = queryTime(r, "from"); err != nil {
		return filter, err
	}
	if filter.To, err = queryTime(r, "to"); err != nil {
		return filter, err
	}

	return filter, nil
}

// ListTransactions lists credit transactions. Non-admins only see their own.
func (h *Handler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	filter, err := h.transactionFilter(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}
	if actor := actorOf(r); !actor.IsAdmin() {
		filter.UserID = &actor.ID
	}

	page, err := h.Ledger.Transactions(r.Context(), filter)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, toPage(page, DomainTransactionToV1))
}

func (h *Handler) MyBalance(w http.ResponseWriter, r *http.Request) {
	actor := actorOf(r)
	balance, err := h.Ledger.Balance(r.Context(), actor.ID)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, Balance{UserID: uuid.UUID(actor.ID), Balance: balance})
}

func (h *Handler) AdjustBalance(w http.ResponseWriter, r *http.Request) {
	var req AdjustmentRequest
	if !h.decode(w, r, &req) {
		return
	}

	txn, err := h.Ledger.Adjust(r.Context(), actorOf(r).ID, domain.UserID(req.UserID), req.Amount, req.Description)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusCreated, DomainTransactionToV1(txn))
}
