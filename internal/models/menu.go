package models

import (
	"bytes"
	"encoding/json"

	"github.com/shopspring/decimal"
)

func init() {
	// Money fields render as JSON numbers, matching the client's payloads.
	decimal.MarshalJSONWithoutQuotes = true
}

// DefaultCategory is the fallback label for items stored without a category.
const DefaultCategory = "Uncategorized"

// MenuItem represents a single sellable item on the menu.
type MenuItem struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// Catalog maps category names to their menu items. Category order and item
// order within a category follow insertion order, which for a loaded catalog
// is file order.
type Catalog struct {
	order []string
	items map[string][]MenuItem
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{items: make(map[string][]MenuItem)}
}

// Add appends an item under the given category. A blank category falls back
// to DefaultCategory. Duplicate item names are permitted and accumulate.
func (c *Catalog) Add(category string, item MenuItem) {
	if category == "" {
		category = DefaultCategory
	}
	if _, ok := c.items[category]; !ok {
		c.order = append(c.order, category)
	}
	c.items[category] = append(c.items[category], item)
}

// Categories returns the category names in insertion order.
func (c *Catalog) Categories() []string {
	return c.order
}

// Items returns the items of a category in insertion order.
func (c *Catalog) Items(category string) []MenuItem {
	return c.items[category]
}

// MarshalJSON renders the catalog as a {category: [items]} object with
// categories in insertion order. An empty catalog marshals as {}.
func (c *Catalog) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, cat := range c.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(cat)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(c.items[cat])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
