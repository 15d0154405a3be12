package specialist

import (
	"strings"
	"testing"
	"time"

	catalogx "github.com/jirasak/zoom-support-agent/agent/catalog"
)

func newTestCustomerHandler(cfg CustomerConfig, now time.Time) *CustomerHandler {
	h := NewCustomerHandler(catalogx.New(), cfg)
	h.now = func() time.Time { return now }
	return h
}

func TestVerifyPurchaseVerifiedBlock(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	h := newTestCustomerHandler(CustomerConfig{}, now)

	out := h.VerifyPurchase("john.doe@email.com", "H6")
	for _, want := range []string{
		"Purchase verified for John Doe:",
		"Zoom H6 (serial H6-2024-001234)",
		"Purchased 2024-01-15 from Sweetwater (order SW-12345)",
		"Warranty: active, expires 2027-01-15",
		"days remaining",
		supportContactBlock,
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("verification output missing %q:\n%s", want, out)
		}
	}
}

func TestVerifyPurchaseUnknownEmail(t *testing.T) {
	t.Parallel()

	h := newTestCustomerHandler(CustomerConfig{}, time.Now())

	out := h.VerifyPurchase("stranger@example.com", "H6")
	if !strings.Contains(out, "No purchase records found for email: stranger@example.com") {
		t.Fatalf("unexpected output:\n%s", out)
	}
	if !strings.Contains(out, supportContactBlock) {
		t.Fatal("missing support contact block")
	}
}

func TestVerifyPurchaseNoMatchingProductListsRecords(t *testing.T) {
	t.Parallel()

	h := newTestCustomerHandler(CustomerConfig{}, time.Now())

	out := h.VerifyPurchase("john.doe@email.com", "PodTrak")
	if !strings.Contains(out, "No matching product found for: PodTrak") {
		t.Fatalf("unexpected output:\n%s", out)
	}
	if !strings.Contains(out, "Zoom H6 (serial H6-2024-001234)") {
		t.Fatalf("expected products on record listing:\n%s", out)
	}
}

func TestVerifyPurchaseEmptyProductUsesSinglePurchase(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	h := newTestCustomerHandler(CustomerConfig{}, now)

	out := h.VerifyPurchase("jane.smith@email.com", "")
	if !strings.Contains(out, "Zoom PodTrak P4") {
		t.Fatalf("expected the single purchase to match:\n%s", out)
	}
}

func TestHandleRegistrationKnownSerial(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 2, 10, 9, 0, 0, 0, time.UTC)
	h := newTestCustomerHandler(CustomerConfig{}, now)

	out := h.HandleRegistration("new.user@example.com", "H6-2025-042000")
	if !strings.Contains(out, "Product successfully registered.") {
		t.Fatalf("unexpected output:\n%s", out)
	}
	if !strings.Contains(out, "Registered to: new.user@example.com on 2026-02-10") {
		t.Fatalf("missing registration line:\n%s", out)
	}

	notes := h.Registrations()
	if len(notes) != 1 {
		t.Fatalf("expected one registration note, got %d", len(notes))
	}
	if notes[0].Serial != "H6-2025-042000" {
		t.Fatalf("unexpected serial: %s", notes[0].Serial)
	}
}

func TestHandleRegistrationRepeatIsDeterministic(t *testing.T) {
	t.Parallel()

	h := newTestCustomerHandler(CustomerConfig{}, time.Now())

	first := h.HandleRegistration("a@example.com", "P4-2026-000001")
	second := h.HandleRegistration("a@example.com", "P4-2026-000001")
	if first != second {
		t.Fatal("registration outcome must not vary between identical calls")
	}
	if len(h.Registrations()) != 2 {
		t.Fatalf("expected 2 notes, got %d", len(h.Registrations()))
	}
}

func TestHandleRegistrationUnknownSerial(t *testing.T) {
	t.Parallel()

	h := newTestCustomerHandler(CustomerConfig{}, time.Now())

	out := h.HandleRegistration("a@example.com", "XX-0000-999999")
	if !strings.Contains(out, "Registration failed") {
		t.Fatalf("unexpected output:\n%s", out)
	}
	if len(h.Registrations()) != 0 {
		t.Fatal("failed registration must not be recorded")
	}
}

func TestCheckWarrantyActive(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	h := newTestCustomerHandler(CustomerConfig{}, now)

	out := h.CheckWarranty("H6-2024-001234")
	for _, want := range []string{
		"Warranty status for Zoom H6 (serial H6-2024-001234): active",
		"Type: 3-year limited warranty",
		"Coverage: Parts and labor for manufacturing defects",
		"days remaining",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("warranty output missing %q:\n%s", want, out)
		}
	}
}

func TestCheckWarrantyExpired(t *testing.T) {
	t.Parallel()

	now := time.Date(2028, 1, 1, 0, 0, 0, 0, time.UTC)
	h := newTestCustomerHandler(CustomerConfig{}, now)

	out := h.CheckWarranty("H6-2024-001234")
	if !strings.Contains(out, ": expired") {
		t.Fatalf("expected expired status:\n%s", out)
	}
	if !strings.Contains(out, "warranty has expired") {
		t.Fatalf("expected expiry guidance:\n%s", out)
	}
}

func TestCheckWarrantyUnknownSerial(t *testing.T) {
	t.Parallel()

	h := newTestCustomerHandler(CustomerConfig{}, time.Now())

	out := h.CheckWarranty("Z9-1111-222222")
	if !strings.Contains(out, "not found in the warranty database") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestWarrantyWindowExpiryDayPolicy(t *testing.T) {
	t.Parallel()

	expiryDay := time.Date(2027, 1, 15, 0, 0, 0, 0, time.UTC)

	// Default policy: coverage ends at midnight at the start of the
	// expiry date.
	exclusive := newTestCustomerHandler(CustomerConfig{}, expiryDay)
	status, _ := exclusive.warrantyWindow("2027-01-15")
	if status != "expired" {
		t.Fatalf("exclusive policy on expiry day = %q, want expired", status)
	}

	inclusive := newTestCustomerHandler(CustomerConfig{WarrantyExpiryInclusive: true}, expiryDay)
	status, _ = inclusive.warrantyWindow("2027-01-15")
	if status != "active" {
		t.Fatalf("inclusive policy on expiry day = %q, want active", status)
	}

	dayAfter := newTestCustomerHandler(CustomerConfig{WarrantyExpiryInclusive: true}, expiryDay.AddDate(0, 0, 1))
	status, _ = dayAfter.warrantyWindow("2027-01-15")
	if status != "expired" {
		t.Fatalf("inclusive policy day after expiry = %q, want expired", status)
	}

	dayBefore := newTestCustomerHandler(CustomerConfig{}, expiryDay.AddDate(0, 0, -1))
	status, days := dayBefore.warrantyWindow("2027-01-15")
	if status != "active" {
		t.Fatalf("day before expiry = %q, want active", status)
	}
	if days != 1 {
		t.Fatalf("days remaining = %d, want 1", days)
	}
}

func TestWarrantyWindowUnparseableDate(t *testing.T) {
	t.Parallel()

	h := newTestCustomerHandler(CustomerConfig{}, time.Now())
	status, _ := h.warrantyWindow("not-a-date")
	if status != "unknown" {
		t.Fatalf("status = %q, want unknown", status)
	}
}
