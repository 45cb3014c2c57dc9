package v1handler

import (
	"net/http"
	"time"

	"backma/internal/export"
	"backma/pkg/domain"
	"backma/pkg/logger"
	"backma/pkg/serrors"
	"backma/pkg/storage"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// Export streams a CSV download of the listing named by the {kind} route
// variable, filtered by the same query parameters as its JSON listing. The
// limit parameter is ignored.
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	kind := export.Kind(mux.Vars(r)["kind"])

	var run func() (int, error)
	switch kind {
	case export.KindTransactions:
		filter, err := h.transactionFilter(r)
		if err != nil {
			h.writeError(w, r, err)

			return
		}
		filter.Cursor = storage.Cursor{After: filter.After}
		run = func() (int, error) { return h.Exporter.Transactions(r.Context(), w, filter) }
	case export.KindPurchases:
		filter, err := h.purchaseFilter(r)
		if err != nil {
			h.writeError(w, r, err)

			return
		}
		filter.Cursor = storage.Cursor{After: filter.After}
		run = func() (int, error) { return h.Exporter.Purchases(r.Context(), w, filter) }
	case export.KindUsers:
		q := r.URL.Query()
		filter := storage.UserFilter{
			Role:   domain.Role(q.Get("role")),
			Status: domain.UserStatus(q.Get("status")),
			Search: q.Get("search"),
		}
		run = func() (int, error) { return h.Exporter.Users(r.Context(), w, filter) }
	default:
		h.writeError(w, r, serrors.With(serrors.ErrNotFound, "unknown export %q", kind))

		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+export.Filename(kind, time.Now())+`"`)
	w.WriteHeader(http.StatusOK)

	rows, err := run()
	if err != nil {
		// headers are already sent, the client sees a truncated file.
		logger.Error(r.Context(), "could not stream export", zap.String("kind", string(kind)), zap.Error(err))

		return
	}

	logger.Info(r.Context(), "export streamed", zap.String("kind", string(kind)), zap.Int("rows", rows))
}
