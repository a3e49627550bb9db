package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/pigeonworks-llc/tempura/internal/store"
)

// MenuHandler handles menu catalog endpoints.
type MenuHandler struct {
	catalog *store.CatalogStore
}

// NewMenuHandler creates a new MenuHandler.
func NewMenuHandler(catalog *store.CatalogStore) *MenuHandler {
	return &MenuHandler{catalog: catalog}
}

// AddMenuItemRequest represents the request to add a menu item. Price is
// kept raw so that non-numeric input can default to zero instead of
// failing the decode.
type AddMenuItemRequest struct {
	Category string          `json:"category"`
	Name     string          `json:"name"`
	Price    json.RawMessage `json:"price"`
}

// List handles GET /api/menu. It returns the full catalog as a
// {category: [items]} mapping.
func (h *MenuHandler) List(w http.ResponseWriter, r *http.Request) {
	catalog, err := h.catalog.Load()
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, "server_error", "Failed to load menu")
		return
	}
	writeJSON(w, http.StatusOK, catalog)
}

// Add handles POST /api/menu. A blank item name is rejected; a price that
// does not parse as a number defaults to zero.
func (h *MenuHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req AddMenuItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid_request", "Failed to parse request body")
		return
	}

	err := h.catalog.AddItem(req.Category, req.Name, coercePrice(req.Price))
	if err != nil {
		if errors.Is(err, store.ErrBlankName) {
			writeJSONError(w, http.StatusBadRequest, "missing_name", "Missing name")
			return
		}
		writeJSONError(w, http.StatusInternalServerError, "server_error", "Failed to save menu")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// coercePrice parses a raw JSON price value, accepting numbers and numeric
// strings. Anything else coerces to zero.
func coercePrice(raw json.RawMessage) decimal.Decimal {
	s := strings.TrimSpace(string(raw))
	s = strings.Trim(s, `"`)
	s = strings.TrimSpace(s)
	if s == "" || s == "null" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
