package store

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/pigeonworks-llc/tempura/internal/models"
)

// catalogHeader is the fixed schema of the menu catalog file.
var catalogHeader = []string{"Category", "Item Name", "Price"}

// CatalogStore persists the menu catalog in a single CSV file.
type CatalogStore struct {
	t table
}

// NewCatalogStore creates a catalog store backed by the file at path. The
// file is created lazily on first access.
func NewCatalogStore(path string) *CatalogStore {
	return &CatalogStore{t: table{path: path, header: catalogHeader}}
}

// Ensure creates the backing file with its header if it does not exist.
func (s *CatalogStore) Ensure() error {
	s.t.mu.Lock()
	defer s.t.mu.Unlock()
	return s.t.ensure()
}

// Load reads the whole catalog from disk. Malformed rows are dropped, never
// fatal: rows with fewer than two fields, a blank item name, or a non-empty
// price that does not parse as a number are all skipped. A blank category
// falls back to models.DefaultCategory. An empty price defaults to zero.
func (s *CatalogStore) Load() (*models.Catalog, error) {
	s.t.mu.Lock()
	defer s.t.mu.Unlock()
	return s.load()
}

func (s *CatalogStore) load() (*models.Catalog, error) {
	rows, err := s.t.read()
	if err != nil {
		return nil, err
	}
	catalog := models.NewCatalog()
	for _, row := range rows {
		if len(row) > 3 {
			row = row[:3]
		}
		if len(row) < 2 {
			continue
		}
		row = pad(row, 3)
		category := strings.TrimSpace(row[0])
		name := strings.TrimSpace(row[1])
		if name == "" {
			continue
		}
		price := decimal.Zero
		if cell := strings.TrimSpace(row[2]); cell != "" {
			price, err = decimal.NewFromString(cell)
			if err != nil {
				continue
			}
		}
		catalog.Add(category, models.MenuItem{Name: name, Price: price})
	}
	return catalog, nil
}

// Save overwrites the backing file with the given catalog, one row per
// (category, item) pair in catalog iteration order.
func (s *CatalogStore) Save(catalog *models.Catalog) error {
	s.t.mu.Lock()
	defer s.t.mu.Unlock()
	return s.save(catalog)
}

func (s *CatalogStore) save(catalog *models.Catalog) error {
	var rows [][]string
	for _, cat := range catalog.Categories() {
		for _, item := range catalog.Items(cat) {
			rows = append(rows, []string{cat, item.Name, item.Price.String()})
		}
	}
	return s.t.write(rows)
}

// AddItem loads the catalog, appends one item and rewrites the file, all
// under the store lock. A name that is blank after trimming is rejected
// with ErrBlankName and the file is left untouched.
func (s *CatalogStore) AddItem(category, name string, price decimal.Decimal) error {
	category = strings.TrimSpace(category)
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrBlankName
	}
	s.t.mu.Lock()
	defer s.t.mu.Unlock()
	catalog, err := s.load()
	if err != nil {
		return err
	}
	catalog.Add(category, models.MenuItem{Name: name, Price: price})
	return s.save(catalog)
}

// Export returns the raw bytes of the backing file, creating the empty
// schema first if absent.
func (s *CatalogStore) Export() ([]byte, error) {
	s.t.mu.Lock()
	defer s.t.mu.Unlock()
	return s.t.raw()
}

// Path returns the backing file path.
func (s *CatalogStore) Path() string {
	return s.t.path
}
