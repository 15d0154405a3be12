// Package catalog holds the immutable mock data tables backing the
// specialist handlers: product records, customer purchase records, and
// warranty records keyed by serial number. The tables stand in for a
// real product/customer database; they are built once at startup and
// injected, never mutated.
package catalog

import "strings"

type Catalog struct {
	products   []ProductRecord
	customers  map[string]CustomerRecord
	warranties map[string]WarrantyRecord
}

// New builds the catalog from the built-in mock tables.
func New() *Catalog {
	customers := make(map[string]CustomerRecord, len(mockCustomers))
	for _, c := range mockCustomers {
		customers[strings.ToLower(c.Email)] = c
	}
	warranties := make(map[string]WarrantyRecord, len(mockWarranties))
	for _, w := range mockWarranties {
		warranties[strings.ToUpper(w.SerialNumber)] = w
	}
	return &Catalog{
		products:   mockProducts,
		customers:  customers,
		warranties: warranties,
	}
}

// FindProduct matches a free-text product description against the known
// models. Matching is case-insensitive keyword containment, the same
// alias sets the support team maintains; absence is a normal outcome.
func (c *Catalog) FindProduct(query string) (ProductRecord, bool) {
	q := strings.ToLower(query)
	for _, p := range c.products {
		for _, alias := range p.aliases {
			if strings.Contains(q, alias) {
				return p, true
			}
		}
	}
	return ProductRecord{}, false
}

// ProductForSerial resolves a serial number to its product model via the
// serial prefix (for example "H6-2024-001234" -> "Zoom H6").
func (c *Catalog) ProductForSerial(serial string) (ProductRecord, bool) {
	prefix, _, ok := strings.Cut(strings.TrimSpace(serial), "-")
	if !ok || prefix == "" {
		return ProductRecord{}, false
	}
	return c.FindProduct(prefix)
}

// Customer looks up a customer record by exact email match (case folded,
// no fuzzy matching).
func (c *Catalog) Customer(email string) (CustomerRecord, bool) {
	rec, ok := c.customers[strings.ToLower(strings.TrimSpace(email))]
	return rec, ok
}

// Warranty looks up a warranty record by serial number.
func (c *Catalog) Warranty(serial string) (WarrantyRecord, bool) {
	rec, ok := c.warranties[strings.ToUpper(strings.TrimSpace(serial))]
	return rec, ok
}

// Products returns the known product records in catalog order.
func (c *Catalog) Products() []ProductRecord {
	out := make([]ProductRecord, len(c.products))
	copy(out, c.products)
	return out
}
