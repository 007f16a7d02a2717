package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/Mondre/Gresilda/internal/config"
	"github.com/Mondre/Gresilda/internal/routes"
	"github.com/Mondre/Gresilda/internal/store"
	"github.com/Mondre/Gresilda/internal/store/sheets"
	"github.com/Mondre/Gresilda/internal/store/sqlite"
)

func main() {

	cfg := config.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// The local database always opens: the service catalog lives there
	// even when the spreadsheet serves everything else.
	db, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		logger.Error("failed to open database", "path", cfg.DBPath, "error", err)
		os.Exit(1)
	}

	var sheetsStore *sheets.Store
	if cfg.SheetsConfigured() {
		sheetsStore, err = sheets.Connect(
			context.Background(),
			cfg.SheetsClientEmail,
			cfg.SheetsPrivateKey,
			cfg.SheetsProjectID,
			cfg.SheetsSpreadsheetID,
		)
		if err != nil {
			logger.Error("failed to connect to google sheets", "error", err)
			os.Exit(1)
		}
	}

	// Backend selection happens exactly once; every handler receives the
	// same store for the whole process lifetime.
	var primary store.Store = db
	backend := "sqlite"
	if cfg.UseSheets {
		primary = sheetsStore
		backend = "google-sheets"
	}
	logger.Info("backend selected", "backend", backend)

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "backend": backend})
	})

	routes.RegisterRoutes(r, routes.Deps{
		Store:    primary,
		Services: db,
		Sheets:   sheetsStore,
		Config:   cfg,
		Logger:   logger,
	})

	logger.Info("server starting", "addr", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
