package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/rohanmehta-dev/spendbook/internal/category"
	categoryStore "github.com/rohanmehta-dev/spendbook/internal/category/store"
	"github.com/rohanmehta-dev/spendbook/internal/config"
	"github.com/rohanmehta-dev/spendbook/internal/database"
	"github.com/rohanmehta-dev/spendbook/internal/expense"
	expenseStore "github.com/rohanmehta-dev/spendbook/internal/expense/store"
	"github.com/rohanmehta-dev/spendbook/internal/export"
	"github.com/rohanmehta-dev/spendbook/internal/gemini"
	spendbookHttp "github.com/rohanmehta-dev/spendbook/internal/http"
	categoryHandler "github.com/rohanmehta-dev/spendbook/internal/http/category"
	expenseHandler "github.com/rohanmehta-dev/spendbook/internal/http/expense"
	exportHandler "github.com/rohanmehta-dev/spendbook/internal/http/export"
	importHandler "github.com/rohanmehta-dev/spendbook/internal/http/importfile"
	"github.com/rohanmehta-dev/spendbook/internal/importer"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if cfg.Gemini.APIKey == "" {
		slog.Warn("GEMINI_API_KEY not set, imports will rely on local category heuristics")
	}

	var (
		categoryService = category.NewService(categoryStore.New(db))
		expenseService  = expense.NewService(expenseStore.New(db))
		classifier      = gemini.NewClassifier(cfg.Gemini.APIKey, cfg.Gemini.Model, cfg.Gemini.Timeout)
		importService   = importer.NewService(classifier)
		exportService   = export.NewService(expenseService, categoryService)
	)

	var (
		importH   = importHandler.NewHandler(importService, categoryService, expenseService)
		categoryH = categoryHandler.NewHandler(categoryService)
		expenseH  = expenseHandler.NewHandler(expenseService)
		exportH   = exportHandler.NewHandler(exportService)
	)

	router := spendbookHttp.New(importH, categoryH, expenseH, exportH)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "app", cfg.App.Name, "addr", addr)

	server := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
	}

	if err := server.ListenAndServe(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
