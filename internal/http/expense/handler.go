package expense

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/rohanmehta-dev/spendbook/internal/expense"
)

type Handler struct {
	svc *expense.Service
}

func NewHandler(svc *expense.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
}

type expenseResponse struct {
	ID          uuid.UUID `json:"id"`
	Amount      int64     `json:"amount"`
	Description string    `json:"description"`
	Notes       string    `json:"notes,omitempty"`
	CategoryID  uuid.UUID `json:"category_id"`
	Date        string    `json:"date"`
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	filter, err := parseFilter(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	exps, err := h.svc.List(r.Context(), filter)
	if err != nil {
		slog.Error("listing expenses", "error", err)
		http.Error(w, "failed to list expenses", http.StatusInternalServerError)

		return
	}

	resp := make([]expenseResponse, 0, len(exps))
	for _, exp := range exps {
		resp = append(resp, expenseResponse{
			ID:          exp.ID,
			Amount:      exp.Amount,
			Description: exp.Description,
			Notes:       exp.Notes,
			CategoryID:  exp.CategoryID,
			Date:        exp.Date.Format("2006-01-02"),
		})
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("encoding response", "error", err)
	}
}

func parseFilter(r *http.Request) (expense.ListFilter, error) {
	var filter expense.ListFilter

	if v := r.URL.Query().Get("start_date"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			return filter, err
		}

		filter.StartDate = &t
	}

	if v := r.URL.Query().Get("end_date"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			return filter, err
		}

		filter.EndDate = &t
	}

	if v := r.URL.Query().Get("category_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return filter, err
		}

		filter.CategoryID = &id
	}

	return filter, nil
}
