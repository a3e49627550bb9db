package store

import (
	"sort"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pigeonworks-llc/tempura/internal/models"
)

// ledgerHeader is the fixed schema of the bill ledger file. Each row is one
// bill line; the bill-level fields repeat on every row of the same bill.
var ledgerHeader = []string{
	"Bill No", "Date & Time", "Item Name", "Qty", "Rate", "Amount",
	"Total", "Payment Method", "Table",
}

// LedgerStore persists the bill ledger in a single CSV file. The ledger is
// append-only: rows are never mutated or deleted.
type LedgerStore struct {
	t table
}

// NewLedgerStore creates a ledger store backed by the file at path. The
// file is created lazily on first access.
func NewLedgerStore(path string) *LedgerStore {
	return &LedgerStore{t: table{path: path, header: ledgerHeader}}
}

// Ensure creates the backing file with its header if it does not exist.
func (s *LedgerStore) Ensure() error {
	s.t.mu.Lock()
	defer s.t.mu.Unlock()
	return s.t.ensure()
}

// NextBillNo scans the ledger and returns one more than the highest bill
// number that parses as an integer, or 1 when none do. Unparsable values
// are ignored, not errors.
func (s *LedgerStore) NextBillNo() (int64, error) {
	s.t.mu.Lock()
	defer s.t.mu.Unlock()
	rows, err := s.t.read()
	if err != nil {
		return 0, err
	}
	return nextBillNo(rows), nil
}

func nextBillNo(rows [][]string) int64 {
	var max int64
	for _, row := range rows {
		if len(row) == 0 {
			continue
		}
		if n, err := models.BillNo(row[0]).Int(); err == nil && n > max {
			max = n
		}
	}
	return max + 1
}

// Append writes one row per line item of the bill, repeating the bill-level
// fields on each row, and returns the bill number used. A zero or absent
// BillNo is assigned from the ledger's next number, and an empty DateTime
// defaults to the current time, both within the same critical section as
// the write. A bill with no items appends zero rows and will therefore not
// appear in subsequent loads.
func (s *LedgerStore) Append(bill *models.Bill) (models.BillNo, error) {
	s.t.mu.Lock()
	defer s.t.mu.Unlock()

	rows, err := s.t.read()
	if err != nil {
		return "", err
	}
	no := bill.BillNo
	if no.IsZero() {
		no = models.BillNo(strconv.FormatInt(nextBillNo(rows), 10))
	}
	dt := bill.DateTime
	if dt == "" {
		dt = time.Now().Format(time.RFC3339)
	}
	for _, it := range bill.Items {
		rows = append(rows, []string{
			string(no), dt, it.Name,
			it.Qty.String(), it.Rate.String(), it.Amount.String(),
			bill.Total.String(), bill.Payment, bill.Table,
		})
	}
	if err := s.t.write(rows); err != nil {
		return "", err
	}
	return no, nil
}

// Load reconstructs bills from the ledger rows. Rows are grouped by their
// raw bill-number value in first-seen order; bill-level fields come from
// the first row of each group. Fully blank rows are skipped and short rows
// are padded with empty fields. The result is sorted ascending by bill
// number parsed as an integer, except that if any bill number is neither
// empty nor an integer the sort is skipped entirely and grouping order is
// kept.
func (s *LedgerStore) Load() ([]models.Bill, error) {
	s.t.mu.Lock()
	defer s.t.mu.Unlock()

	rows, err := s.t.read()
	if err != nil {
		return nil, err
	}
	groups := make(map[string]*models.Bill)
	var order []string
	for _, row := range rows {
		if blank(row) {
			continue
		}
		row = pad(row, 9)
		key := row[0]
		b, ok := groups[key]
		if !ok {
			b = &models.Bill{
				BillNo:   models.BillNo(row[0]),
				DateTime: row[1],
				Table:    row[8],
				Payment:  row[7],
				Total:    parseDecimal(row[6]),
			}
			groups[key] = b
			order = append(order, key)
		}
		b.Items = append(b.Items, models.BillLine{
			Name:   row[2],
			Qty:    parseDecimal(row[3]),
			Rate:   parseDecimal(row[4]),
			Amount: parseDecimal(row[5]),
		})
	}

	bills := make([]models.Bill, 0, len(order))
	for _, key := range order {
		bills = append(bills, *groups[key])
	}
	sortBills(bills)
	return bills, nil
}

// sortBills sorts ascending by integer bill number. An empty bill number
// sorts as zero; a non-integer one aborts the sort for the whole list.
func sortBills(bills []models.Bill) {
	type keyed struct {
		key  int64
		bill models.Bill
	}
	ks := make([]keyed, len(bills))
	for i, b := range bills {
		var n int64
		if b.BillNo != "" {
			v, err := b.BillNo.Int()
			if err != nil {
				return
			}
			n = v
		}
		ks[i] = keyed{key: n, bill: b}
	}
	sort.SliceStable(ks, func(i, j int) bool { return ks[i].key < ks[j].key })
	for i := range ks {
		bills[i] = ks[i].bill
	}
}

// Export returns the raw bytes of the backing file, creating the empty
// schema first if absent.
func (s *LedgerStore) Export() ([]byte, error) {
	s.t.mu.Lock()
	defer s.t.mu.Unlock()
	return s.t.raw()
}

// Path returns the backing file path.
func (s *LedgerStore) Path() string {
	return s.t.path
}

// parseDecimal parses a numeric cell, returning zero for anything that does
// not parse.
func parseDecimal(cell string) decimal.Decimal {
	d, err := decimal.NewFromString(cell)
	if err != nil {
		return decimal.Zero
	}
	return d
}
