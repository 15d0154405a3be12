package specialist

import (
	"fmt"
	"strings"
	"sync"
	"time"

	catalogx "github.com/jirasak/zoom-support-agent/agent/catalog"
)

const supportContactBlock = "Zoom support: support@zoom-na.com | 1-800-662-6266 | Monday-Friday, 9AM-6PM EST"

// CustomerConfig controls customer-handler policy.
type CustomerConfig struct {
	// WarrantyExpiryInclusive counts the expiry day itself as covered.
	// The default matches the historical behavior: coverage ends at
	// midnight at the start of the expiry date.
	WarrantyExpiryInclusive bool `envconfig:"WARRANTY_EXPIRY_INCLUSIVE" split_words:"true" default:"false"`
}

// CustomerHandler handles purchase verification, product registration,
// and warranty checks against the mock customer tables. Registrations
// are appended in memory only; nothing is persisted.
type CustomerHandler struct {
	cat             *catalogx.Catalog
	expiryInclusive bool
	now             func() time.Time

	mu            sync.Mutex
	registrations []RegistrationNote
}

type RegistrationNote struct {
	Email  string
	Serial string
	At     time.Time
}

func NewCustomerHandler(cat *catalogx.Catalog, cfg CustomerConfig) *CustomerHandler {
	return &CustomerHandler{
		cat:             cat,
		expiryInclusive: cfg.WarrantyExpiryInclusive,
		now:             time.Now,
	}
}

// VerifyPurchase looks up the customer's purchase records by exact email
// match and reports the purchase matching the product query.
func (h *CustomerHandler) VerifyPurchase(email, productQuery string) string {
	customer, ok := h.cat.Customer(email)
	if !ok {
		return fmt.Sprintf("No purchase records found for email: %s.\n"+
			"Please check your email address, or contact support if you purchased with a different email. "+
			"Providing your order number lets us do a manual lookup.\n%s",
			email, supportContactBlock)
	}

	purchase, ok := matchPurchase(customer, productQuery)
	if !ok {
		var b strings.Builder
		fmt.Fprintf(&b, "No matching product found for: %s.\n", productQuery)
		fmt.Fprintf(&b, "Products on record for %s:\n", customer.Name)
		for _, p := range customer.Purchases {
			fmt.Fprintf(&b, "- %s (serial %s)\n", p.Product, p.SerialNumber)
		}
		b.WriteString("Please provide the exact product name or serial number from your purchase confirmation email.")
		return b.String()
	}

	status, daysRemaining := h.warrantyWindow(purchase.WarrantyExpires)

	var b strings.Builder
	fmt.Fprintf(&b, "Purchase verified for %s:\n", customer.Name)
	fmt.Fprintf(&b, "- Product: %s (serial %s)\n", purchase.Product, purchase.SerialNumber)
	fmt.Fprintf(&b, "- Purchased %s from %s (order %s)\n", purchase.PurchaseDate, purchase.Retailer, purchase.OrderNumber)
	fmt.Fprintf(&b, "- Warranty: %s, expires %s", status, purchase.WarrantyExpires)
	if status == "active" {
		fmt.Fprintf(&b, " (%d days remaining)", daysRemaining)
	}
	b.WriteString("\n- Product is registered; download the latest firmware from zoom-na.com\n")
	b.WriteString(supportContactBlock)
	return b.String()
}

// HandleRegistration registers a product by serial number. It succeeds
// for every serial that resolves to a known product; the registration
// note is kept in memory only.
func (h *CustomerHandler) HandleRegistration(email, serial string) string {
	serial = strings.TrimSpace(serial)
	_, known := h.cat.ProductForSerial(serial)
	if !known {
		_, known = h.cat.Warranty(serial)
	}
	if !known {
		return fmt.Sprintf("Registration failed - serial number %s does not match a known Zoom product.\n"+
			"Verify the serial number is correct, or contact support for manual registration.\n%s",
			serial, supportContactBlock)
	}

	now := h.now().UTC()
	h.mu.Lock()
	h.registrations = append(h.registrations, RegistrationNote{
		Email:  strings.TrimSpace(email),
		Serial: serial,
		At:     now,
	})
	h.mu.Unlock()

	var b strings.Builder
	fmt.Fprintf(&b, "Product successfully registered.\n")
	fmt.Fprintf(&b, "- Serial: %s\n", serial)
	fmt.Fprintf(&b, "- Registered to: %s on %s\n", email, now.Format("2006-01-02"))
	b.WriteString("- Warranty activated for 3 years from purchase date\n")
	b.WriteString("- Check your email for confirmation; download the user manual and firmware from zoom-na.com\n")
	b.WriteString("Benefits: extended warranty coverage, priority technical support, firmware update notifications.")
	return b.String()
}

// CheckWarranty reports warranty status for a serial number.
func (h *CustomerHandler) CheckWarranty(serial string) string {
	w, ok := h.cat.Warranty(serial)
	if !ok {
		return fmt.Sprintf("Serial number %s not found in the warranty database.\n"+
			"Verify the serial number is correct, or provide your purchase receipt for manual verification.\n%s",
			serial, supportContactBlock)
	}

	status, daysRemaining := h.warrantyWindow(w.WarrantyExpires)

	var b strings.Builder
	fmt.Fprintf(&b, "Warranty status for %s (serial %s): %s\n", w.Product, w.SerialNumber, status)
	fmt.Fprintf(&b, "- Type: %s\n", w.WarrantyType)
	fmt.Fprintf(&b, "- Coverage: %s\n", w.Coverage)
	fmt.Fprintf(&b, "- Purchased %s, expires %s", w.PurchaseDate, w.WarrantyExpires)
	if status == "active" {
		fmt.Fprintf(&b, " (%d days remaining)\n", daysRemaining)
		b.WriteString("Contact support for service requests; keep the original receipt for warranty claims.\n")
	} else {
		b.WriteString("\nThe warranty has expired - consider extended warranty options.\n")
	}
	b.WriteString(supportContactBlock)
	return b.String()
}

// Registrations returns a snapshot of the in-memory registration notes.
func (h *CustomerHandler) Registrations() []RegistrationNote {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]RegistrationNote, len(h.registrations))
	copy(out, h.registrations)
	return out
}

// warrantyWindow computes active/expired for a stored expiry date. The
// expiry day itself is covered only under the inclusive policy.
func (h *CustomerHandler) warrantyWindow(expires string) (string, int) {
	expiry, err := time.Parse("2006-01-02", expires)
	if err != nil {
		return "unknown", 0
	}

	cutoff := expiry
	if h.expiryInclusive {
		cutoff = expiry.AddDate(0, 0, 1)
	}

	now := h.now().UTC()
	if !now.Before(cutoff) {
		return "expired", 0
	}
	return "active", int(expiry.Sub(now).Hours() / 24)
}

func matchPurchase(customer catalogx.CustomerRecord, productQuery string) (catalogx.PurchaseRecord, bool) {
	q := strings.ToLower(strings.TrimSpace(productQuery))
	if q == "" {
		if len(customer.Purchases) == 1 {
			return customer.Purchases[0], true
		}
		return catalogx.PurchaseRecord{}, false
	}
	for _, p := range customer.Purchases {
		if strings.Contains(strings.ToLower(p.Product), q) || strings.Contains(strings.ToLower(p.SerialNumber), q) {
			return p, true
		}
	}
	return catalogx.PurchaseRecord{}, false
}
