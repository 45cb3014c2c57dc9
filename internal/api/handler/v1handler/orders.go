package v1handler

import (
	"net/http"

	"backma/internal/orders"
	"backma/pkg/domain"
	"backma/pkg/storage"

	"github.com/google/uuid"
)

type CreatePurchaseRequest struct {
	ListingID  uuid.UUID `json:"listingId"       validate:"required"`
	TargetURL  string    `json:"targetUrl"       validate:"required,url"`
	AnchorText string    `json:"anchorText"      validate:"required,max=200"`
	Notes      string    `json:"notes,omitempty" validate:"max=2000"`
}

type TransitionRequest struct {
	//nolint: lll
	Status       string `json:"status"                 validate:"required,oneof=accepted rejected cancelled article_ready placement_pending placement_completed refunded"`
	ArticleURL   string `json:"articleUrl,omitempty"   validate:"omitempty,url"`
	PlacementURL string `json:"placementUrl,omitempty" validate:"omitempty,url"`
	Reason       string `json:"reason,omitempty"       validate:"max=1000"`
}

func (h *Handler) CreatePurchase(w http.ResponseWriter, r *http.Request) {
	var req CreatePurchaseRequest
	if !h.decode(w, r, &req) {
		return
	}

	purchase, err := h.Orders.Create(r.Context(), actorOf(r), orders.CreateRequest{
		ListingID:  domain.ListingID(req.ListingID),
		TargetURL:  req.TargetURL,
		AnchorText: req.AnchorText,
		Notes:      req.Notes,
	})
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusCreated, DomainPurchaseToV1(purchase))
}

func (h *Handler) TransitionPurchase(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}
	var req TransitionRequest
	if !h.decode(w, r, &req) {
		return
	}

	purchase, err := h.Orders.Transition(r.Context(), actorOf(r), domain.PurchaseID(id),
		domain.PurchaseStatus(req.Status), orders.Details{
			ArticleURL:   req.ArticleURL,
			PlacementURL: req.PlacementURL,
			Reason:       req.Reason,
		})
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, DomainPurchaseToV1(purchase))
}

func (h *Handler) GetPurchase(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	purchase, err := h.Orders.Get(r.Context(), actorOf(r), domain.PurchaseID(id))
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, DomainPurchaseToV1(purchase))
}

func (h *Handler) purchaseFilter(r *http.Request) (storage.PurchaseFilter, error) {
	cursor, err := h.cursor(r)
	if err != nil {
		return storage.PurchaseFilter{}, err
	}
	filter := storage.PurchaseFilter{
		Status: domain.PurchaseStatus(r.URL.Query().Get("status")),
		Cursor: cursor,
	}
	if filter.AdvertiserID, err = queryUserID(r, "advertiserId"); err != nil {
		return filter, err
	}
	if filter.PublisherID, err = queryUserID(r, "publisherId"); err != nil {
		return filter, err
	}
	listingID, err := queryUUID(r, "listingId")
	if err != nil {
		return filter, err
	}
	if listingID != nil {
		id := domain.ListingID(*listingID)
		filter.ListingID = &id
	}

	return filter, nil
}

func (h *Handler) ListPurchases(w http.ResponseWriter, r *http.Request) {
	filter, err := h.purchaseFilter(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	page, err := h.Orders.List(r.Context(), actorOf(r), filter)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, toPage(page, DomainPurchaseToV1))
}
