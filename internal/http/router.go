package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/wyvernhall/snackcupboard/internal/auth"
	authHandler "github.com/wyvernhall/snackcupboard/internal/http/auth"
	itemHandler "github.com/wyvernhall/snackcupboard/internal/http/item"
	purchaseHandler "github.com/wyvernhall/snackcupboard/internal/http/purchase"
	resetHandler "github.com/wyvernhall/snackcupboard/internal/http/reset"
	settingsHandler "github.com/wyvernhall/snackcupboard/internal/http/settings"
	staffHandler "github.com/wyvernhall/snackcupboard/internal/http/staff"
)

func New(
	authSvc *auth.Service,
	allowedOrigins []string,
	authH *authHandler.Handler,
	staffH *staffHandler.Handler,
	itemH *itemHandler.Handler,
	purchaseH *purchaseHandler.Handler,
	settingsH *settingsHandler.Handler,
	resetH *resetHandler.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	router.Route("/api", func(r chi.Router) {
		r.Get("/health", health)

		r.Route("/auth", authH.Routes)
		r.Route("/staff", staffH.Routes)
		r.Route("/items", itemH.Routes)
		r.Route("/purchases", purchaseH.Routes)
		r.Route("/settings", settingsH.Routes)

		// The reset surface is destructive and sits behind the admin session.
		r.Route("/reset", func(r chi.Router) {
			r.Use(authSvc.Middleware)
			resetH.Routes(r)
		})
	})

	return router
}

func health(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
