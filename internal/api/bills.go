package api

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/pigeonworks-llc/tempura/internal/models"
	"github.com/pigeonworks-llc/tempura/internal/store"
)

// BillsHandler handles bill ledger endpoints.
type BillsHandler struct {
	ledger *store.LedgerStore
}

// NewBillsHandler creates a new BillsHandler.
func NewBillsHandler(ledger *store.LedgerStore) *BillsHandler {
	return &BillsHandler{ledger: ledger}
}

// List handles GET /api/bills. Bills are returned grouped from the ledger
// rows and ordered by bill number where the numbers allow it.
func (h *BillsHandler) List(w http.ResponseWriter, r *http.Request) {
	bills, err := h.ledger.Load()
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, "server_error", "Failed to load bills")
		return
	}
	writeJSON(w, http.StatusOK, bills)
}

// NextNumber handles GET /api/next_bill_no.
func (h *BillsHandler) NextNumber(w http.ResponseWriter, r *http.Request) {
	n, err := h.ledger.NextBillNo()
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, "server_error", "Failed to read ledger")
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"next": n})
}

// SaveBillRequest represents the request to save a bill. Items is kept raw
// so that an explicit null can be told apart from an absent field: only
// absence defaults to an empty bill.
type SaveBillRequest struct {
	BillNo   models.BillNo   `json:"billNo"`
	DateTime string          `json:"dateTime"`
	Table    string          `json:"table"`
	Payment  string          `json:"payment"`
	Total    decimal.Decimal `json:"total"`
	Items    json.RawMessage `json:"items"`
}

// Create handles POST /api/bills. The bill number and timestamp default
// when absent; the total is accepted as given and not checked against the
// line amounts. A payload whose items field is not an array (null
// included) is rejected.
func (h *BillsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req SaveBillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid_request", "Failed to parse request body")
		return
	}

	var items []models.BillLine
	if req.Items != nil {
		if bytes.Equal(bytes.TrimSpace(req.Items), []byte("null")) {
			writeJSONError(w, http.StatusBadRequest, "invalid_items", "Invalid items")
			return
		}
		if err := json.Unmarshal(req.Items, &items); err != nil {
			writeJSONError(w, http.StatusBadRequest, "invalid_items", "Invalid items")
			return
		}
	}

	bill := models.Bill{
		BillNo:   req.BillNo,
		DateTime: req.DateTime,
		Table:    req.Table,
		Payment:  req.Payment,
		Total:    req.Total,
		Items:    items,
	}

	no, err := h.ledger.Append(&bill)
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, "server_error", "Failed to save bill")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]models.BillNo{"billNo": no})
}
