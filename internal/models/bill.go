package models

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// BillNo is a bill identifier as stored in the ledger file. Values are
// normally decimal integers, but the file may carry arbitrary text and the
// ledger tolerates that (see LedgerStore.Load).
type BillNo string

// Int parses the bill number as a base-10 integer.
func (n BillNo) Int() (int64, error) {
	return strconv.ParseInt(strings.TrimSpace(string(n)), 10, 64)
}

// IsZero reports whether the bill number is absent or zero, i.e. whether a
// new number should be assigned on append.
func (n BillNo) IsZero() bool {
	s := strings.TrimSpace(string(n))
	return s == "" || s == "0"
}

// MarshalJSON renders numeric bill numbers as JSON numbers and anything
// else as a string.
func (n BillNo) MarshalJSON() ([]byte, error) {
	if v, err := n.Int(); err == nil {
		return []byte(strconv.FormatInt(v, 10)), nil
	}
	return json.Marshal(string(n))
}

// UnmarshalJSON accepts a JSON number, string or null.
func (n *BillNo) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*n = BillNo(s)
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return err
	}
	*n = BillNo(num.String())
	return nil
}

// BillLine is one line item within a bill.
type BillLine struct {
	Name   string          `json:"name"`
	Qty    decimal.Decimal `json:"qty"`
	Rate   decimal.Decimal `json:"rate"`
	Amount decimal.Decimal `json:"amount"`
}

// Bill is one entry in the bill ledger. Total is caller-supplied and is not
// validated against the sum of the line amounts.
type Bill struct {
	BillNo   BillNo          `json:"billNo"`
	DateTime string          `json:"dateTime"`
	Table    string          `json:"table"`
	Payment  string          `json:"payment"`
	Total    decimal.Decimal `json:"total"`
	Items    []BillLine      `json:"items"`
}
