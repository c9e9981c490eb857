package category

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/rohanmehta-dev/spendbook/internal/category"
)

type Handler struct {
	svc *category.Service
}

func NewHandler(svc *category.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
}

type categoryResponse struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Color    string    `json:"color"`
	IsCustom bool      `json:"is_custom"`
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	cats, err := h.svc.List(r.Context())
	if err != nil {
		slog.Error("listing categories", "error", err)
		http.Error(w, "failed to list categories", http.StatusInternalServerError)

		return
	}

	resp := make([]categoryResponse, 0, len(cats))
	for _, cat := range cats {
		resp = append(resp, categoryResponse{
			ID:       cat.ID,
			Name:     cat.Name,
			Color:    cat.Color,
			IsCustom: cat.IsCustom,
		})
	}

	writeJSON(w, http.StatusOK, resp)
}

type createRequest struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	cat, err := h.svc.Create(r.Context(), category.CreateParams{
		Name:     req.Name,
		Color:    req.Color,
		IsCustom: true,
	})
	if err != nil {
		slog.Error("creating category", "error", err)
		http.Error(w, "failed to create category", http.StatusInternalServerError)

		return
	}

	writeJSON(w, http.StatusCreated, categoryResponse{
		ID:       cat.ID,
		Name:     cat.Name,
		Color:    cat.Color,
		IsCustom: cat.IsCustom,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encoding response", "error", err)
	}
}
