package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/wyvernhall/snackcupboard/internal/auth"
	"github.com/wyvernhall/snackcupboard/internal/config"
	"github.com/wyvernhall/snackcupboard/internal/database"
	cupboardHttp "github.com/wyvernhall/snackcupboard/internal/http"
	authHandler "github.com/wyvernhall/snackcupboard/internal/http/auth"
	itemHandler "github.com/wyvernhall/snackcupboard/internal/http/item"
	purchaseHandler "github.com/wyvernhall/snackcupboard/internal/http/purchase"
	resetHandler "github.com/wyvernhall/snackcupboard/internal/http/reset"
	settingsHandler "github.com/wyvernhall/snackcupboard/internal/http/settings"
	staffHandler "github.com/wyvernhall/snackcupboard/internal/http/staff"
	"github.com/wyvernhall/snackcupboard/internal/item"
	itemStore "github.com/wyvernhall/snackcupboard/internal/item/store"
	"github.com/wyvernhall/snackcupboard/internal/logging"
	"github.com/wyvernhall/snackcupboard/internal/purchase"
	purchaseStore "github.com/wyvernhall/snackcupboard/internal/purchase/store"
	"github.com/wyvernhall/snackcupboard/internal/reset"
	resetStore "github.com/wyvernhall/snackcupboard/internal/reset/store"
	"github.com/wyvernhall/snackcupboard/internal/staff"
	staffStore "github.com/wyvernhall/snackcupboard/internal/staff/store"
	"github.com/wyvernhall/snackcupboard/internal/term"
	termStore "github.com/wyvernhall/snackcupboard/internal/term/store"
)

func main() {
	logging.Setup()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.DB.Path)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	authService := auth.NewService(cfg.Admin.PasswordHash, cfg.Admin.JWTSecret, cfg.Admin.TokenDuration)

	var (
		staffService    = staff.NewService(staffStore.New(db))
		itemService     = item.NewService(itemStore.New(db))
		termService     = term.NewService(termStore.New(db))
		purchaseService = purchase.NewService(purchaseStore.New(db), staffService, itemService, termService)
		resetService    = reset.NewService(resetStore.New(db), authService)
	)

	var (
		authH     = authHandler.NewHandler(authService)
		staffH    = staffHandler.NewHandler(staffService)
		itemH     = itemHandler.NewHandler(itemService)
		purchaseH = purchaseHandler.NewHandler(purchaseService)
		settingsH = settingsHandler.NewHandler(termService)
		resetH    = resetHandler.NewHandler(resetService)
	)

	router := cupboardHttp.New(authService, cfg.CORS.AllowedOrigins,
		authH, staffH, itemH, purchaseH, settingsH, resetH)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "app", cfg.App.Name, "port", port, "db", cfg.DB.Path)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
