package export

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/rohanmehta-dev/spendbook/internal/expense"
	"github.com/rohanmehta-dev/spendbook/internal/export"
)

type Handler struct {
	svc *export.Service
}

func NewHandler(svc *export.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.download)
}

func (h *Handler) download(w http.ResponseWriter, r *http.Request) {
	var filter expense.ListFilter

	if v := r.URL.Query().Get("start_date"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			http.Error(w, "invalid start_date", http.StatusBadRequest)
			return
		}

		filter.StartDate = &t
	}

	if v := r.URL.Query().Get("end_date"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			http.Error(w, "invalid end_date", http.StatusBadRequest)
			return
		}

		filter.EndDate = &t
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="expenses.csv"`)

	if err := h.svc.WriteCSV(r.Context(), w, filter); err != nil {
		// Headers may already be out; log instead of rewriting the status.
		slog.Error("exporting expenses", "error", err)
	}
}
