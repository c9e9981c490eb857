package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	categoryHandler "github.com/rohanmehta-dev/spendbook/internal/http/category"
	expenseHandler "github.com/rohanmehta-dev/spendbook/internal/http/expense"
	exportHandler "github.com/rohanmehta-dev/spendbook/internal/http/export"
	"github.com/rohanmehta-dev/spendbook/internal/http/importfile"
)

func New(
	importV1 *importfile.Handler,
	categoriesV1 *categoryHandler.Handler,
	expensesV1 *expenseHandler.Handler,
	exportV1 *exportHandler.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/import", importV1.Routes)

		r.Route("/categories", func(r chi.Router) {
			categoriesV1.Routes(r)
		})

		r.Route("/expenses", func(r chi.Router) {
			expensesV1.Routes(r)
		})

		r.Route("/export", exportV1.Routes)
	})

	return router
}
