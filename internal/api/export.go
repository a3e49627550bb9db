package api

import (
	"fmt"
	"net/http"
	"path/filepath"

	"github.com/go-chi/chi/v5"

	"github.com/pigeonworks-llc/tempura/internal/store"
)

// ExportHandler serves raw downloads of the two backing files.
type ExportHandler struct {
	catalog *store.CatalogStore
	ledger  *store.LedgerStore
}

// NewExportHandler creates a new ExportHandler.
func NewExportHandler(catalog *store.CatalogStore, ledger *store.LedgerStore) *ExportHandler {
	return &ExportHandler{catalog: catalog, ledger: ledger}
}

// Download handles GET /download/{name}. Only the catalog and ledger file
// names are allowed; anything else is forbidden. An absent file is created
// with its empty schema before being served.
func (h *ExportHandler) Download(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	var data []byte
	var err error
	switch name {
	case filepath.Base(h.catalog.Path()):
		data, err = h.catalog.Export()
	case filepath.Base(h.ledger.Path()):
		data, err = h.ledger.Export()
	default:
		writeJSONError(w, http.StatusForbidden, "forbidden", "Unknown file")
		return
	}
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, "server_error", "Failed to read file")
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
