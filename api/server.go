/*
server.go - HTTP router and middleware configuration

PURPOSE:
  Configures the chi router, middleware stack, and route definitions.
  This is the wiring layer that connects URLs to handlers.

MIDDLEWARE STACK:
  1. Logger:     Request logging
  2. Recoverer:  Panic recovery (500 instead of crash)
  3. RequestID:  Unique ID per request for tracing
  4. CORS:       Cross-origin requests for the Vite dev server

ROUTE GROUPS:
  /api/health       Liveness
  /api/auth/*       Login and registration
  /api/ledger/*     Accessors and action operations
  /api/favorites/*  Saved shortcuts
  /api/receipts     Receipt download

SEE ALSO:
  - handlers.go: Handler implementations
  - cmd/server/main.go: Server startup
*/
package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter creates a new router with all routes configured.
func NewRouter(h *Handler) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173", "http://localhost:8080"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", h.Health)

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Login)
			r.Post("/register", h.Register)
		})

		r.Route("/ledger", func(r chi.Router) {
			r.Get("/transactions", h.GetTransactions)
			r.Get("/rewards", h.GetRewards)
			r.Get("/points", h.GetPoints)
			r.Get("/balance", h.GetBalance)
			r.Post("/bill-payments", h.RecordBillPayment)
			r.Post("/load-purchases", h.RecordBuyLoad)
			r.Post("/transfers", h.RecordTransfer)
			r.Post("/redemptions", h.RedeemVoucher)
		})

		r.Route("/favorites", func(r chi.Router) {
			r.Get("/billers", h.ListFavoriteBillers)
			r.Post("/billers", h.SaveFavoriteBiller)
			r.Get("/recipients", h.ListFavoriteRecipients)
			r.Post("/recipients", h.SaveFavoriteRecipient)
			r.Get("/contacts", h.ListFavoriteContacts)
			r.Post("/contacts", h.SaveFavoriteContact)
		})

		r.Post("/receipts", h.DownloadReceipt)
	})

	return r
}
