package importfile

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/rohanmehta-dev/spendbook/internal/category"
	"github.com/rohanmehta-dev/spendbook/internal/expense"
	"github.com/rohanmehta-dev/spendbook/internal/importer"
)

const maxUploadBytes = 10 << 20

type Handler struct {
	importSvc  *importer.Service
	categories *category.Service
	expenses   *expense.Service
}

func NewHandler(importSvc *importer.Service, categories *category.Service, expenses *expense.Service) *Handler {
	return &Handler{
		importSvc:  importSvc,
		categories: categories,
		expenses:   expenses,
	}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/preview", h.preview)
	r.Post("/confirm", h.confirm)
}

type categoryDTO struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Color    string    `json:"color"`
	IsCustom bool      `json:"is_custom"`
}

type expenseDTO struct {
	Amount      int64     `json:"amount"`
	Description string    `json:"description"`
	Notes       string    `json:"notes,omitempty"`
	CategoryID  uuid.UUID `json:"category_id"`
	Date        string    `json:"date"`
}

type previewResponse struct {
	Expenses      []expenseDTO  `json:"expenses"`
	NewCategories []categoryDTO `json:"new_categories"`
}

// preview runs the import pipeline on an uploaded file and returns the
// normalized result without storing anything.
func (h *Handler) preview(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		http.Error(w, "failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	file, fileHeader, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "missing file: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer file.Close() //nolint:errcheck

	existing, err := h.categories.List(r.Context())
	if err != nil {
		slog.Error("listing categories for preview", "error", err)
		http.Error(w, "failed to load categories", http.StatusInternalServerError)

		return
	}

	result, err := h.importSvc.Preview(r.Context(), file, fileHeader.Filename, existing)
	if err != nil {
		http.Error(w, "could not read file: "+err.Error(), http.StatusUnprocessableEntity)
		return
	}

	resp := previewResponse{
		Expenses:      make([]expenseDTO, 0, len(result.Expenses)),
		NewCategories: make([]categoryDTO, 0, len(result.NewCategories)),
	}

	for _, exp := range result.Expenses {
		resp.Expenses = append(resp.Expenses, expenseDTO{
			Amount:      exp.Amount,
			Description: exp.Description,
			Notes:       exp.Notes,
			CategoryID:  exp.CategoryID,
			Date:        exp.Date.Format("2006-01-02"),
		})
	}

	for _, cat := range result.NewCategories {
		resp.NewCategories = append(resp.NewCategories, categoryDTO{
			ID:       cat.ID,
			Name:     cat.Name,
			Color:    cat.Color,
			IsCustom: cat.IsCustom,
		})
	}

	writeJSON(w, http.StatusOK, resp)
}

type confirmRequest struct {
	Expenses      []expenseDTO  `json:"expenses"`
	NewCategories []categoryDTO `json:"new_categories"`
}

type confirmResponse struct {
	ImportedExpenses  int `json:"imported_expenses"`
	CreatedCategories int `json:"created_categories"`
}

// confirm persists a (possibly user-edited) preview: new categories first,
// then the expenses referencing them.
func (h *Handler) confirm(w http.ResponseWriter, r *http.Request) {
	var req confirmRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	cats := make([]category.Category, 0, len(req.NewCategories))

	for _, dto := range req.NewCategories {
		if dto.ID == uuid.Nil || dto.Name == "" {
			http.Error(w, "new categories need an id and a name", http.StatusBadRequest)
			return
		}

		cats = append(cats, category.Category{
			ID:       dto.ID,
			Name:     dto.Name,
			Color:    dto.Color,
			IsCustom: dto.IsCustom,
		})
	}

	params := make([]expense.CreateParams, 0, len(req.Expenses))

	for _, dto := range req.Expenses {
		date, err := time.Parse("2006-01-02", dto.Date)
		if err != nil {
			http.Error(w, "invalid expense date: "+dto.Date, http.StatusBadRequest)
			return
		}

		params = append(params, expense.CreateParams{
			Amount:      dto.Amount,
			Description: dto.Description,
			Notes:       dto.Notes,
			CategoryID:  dto.CategoryID,
			Date:        date,
		})
	}

	if err := h.categories.BulkCreate(r.Context(), cats); err != nil {
		slog.Error("persisting imported categories", "error", err)
		http.Error(w, "failed to save categories", http.StatusInternalServerError)

		return
	}

	created, err := h.expenses.BulkCreate(r.Context(), params)
	if err != nil {
		slog.Error("persisting imported expenses", "error", err)
		http.Error(w, "failed to save expenses", http.StatusInternalServerError)

		return
	}

	writeJSON(w, http.StatusCreated, confirmResponse{
		ImportedExpenses:  len(created),
		CreatedCategories: len(cats),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encoding response", "error", err)
	}
}
