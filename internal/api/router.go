// Package api provides the HTTP surface of the billing service: the menu
// catalog, the bill ledger, raw file downloads and the embedded UI page.
package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/pigeonworks-llc/tempura/internal/config"
	"github.com/pigeonworks-llc/tempura/internal/store"
)

// NewRouter assembles the chi router serving every endpoint.
func NewRouter(cfg *config.Config, catalog *store.CatalogStore, ledger *store.LedgerStore) *chi.Mux {
	indexHandler := NewIndexHandler(cfg)
	menuHandler := NewMenuHandler(catalog)
	billsHandler := NewBillsHandler(ledger)
	exportHandler := NewExportHandler(catalog, ledger)

	r := chi.NewRouter()

	// Middleware.
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Get("/", indexHandler.Serve)

	r.Route("/api", func(r chi.Router) {
		r.Route("/menu", func(r chi.Router) {
			r.Get("/", menuHandler.List)
			r.Post("/", menuHandler.Add)
		})
		r.Get("/next_bill_no", billsHandler.NextNumber)
		r.Route("/bills", func(r chi.Router) {
			r.Get("/", billsHandler.List)
			r.Post("/", billsHandler.Create)
		})
	})

	r.Get("/download/{name}", exportHandler.Download)

	// Health check endpoint.
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	return r
}
