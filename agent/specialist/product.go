// Package specialist implements the three support handlers the
// coordinator can route a query to: product lookup, gear compatibility,
// and customer support (purchase verification, registration, warranty).
// Handlers are pure lookups over the injected catalog; a missing record
// is a normal, reportable outcome, never an error.
package specialist

import (
	"fmt"
	"strings"

	catalogx "github.com/jirasak/zoom-support-agent/agent/catalog"
)

type ProductHandler struct {
	cat *catalogx.Catalog
}

func NewProductHandler(cat *catalogx.Catalog) *ProductHandler {
	return &ProductHandler{cat: cat}
}

// Lookup resolves a free-text product description to a specification
// block, or a not-found message listing the known models.
func (h *ProductHandler) Lookup(query string) string {
	rec, ok := h.cat.FindProduct(query)
	if !ok {
		return h.notFound(query)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s (%s)\n\n", rec.Model, rec.Category)
	b.WriteString("Specifications:\n")
	for _, spec := range rec.Specs {
		fmt.Fprintf(&b, "- %s: %s\n", spec.Name, spec.Value)
	}
	b.WriteString("\nFeatures:\n")
	for _, feature := range rec.Features {
		fmt.Fprintf(&b, "- %s\n", feature)
	}
	fmt.Fprintf(&b, "\nPrice range: %s", rec.PriceRange)
	return b.String()
}

func (h *ProductHandler) notFound(query string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "I couldn't identify a specific Zoom product from your description: %q. Could you provide more details about the product you're referring to?\n\nKnown models:\n", query)
	for _, p := range h.cat.Products() {
		fmt.Fprintf(&b, "- %s (%s)\n", p.Model, strings.ToLower(p.Category))
	}
	return strings.TrimRight(b.String(), "\n")
}
