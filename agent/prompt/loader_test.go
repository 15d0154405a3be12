package prompt

import (
	"strings"
	"testing"
)

func TestCoordinatorPromptLoads(t *testing.T) {
	t.Parallel()

	p, err := Coordinator()
	if err != nil {
		t.Fatalf("Coordinator() error = %v", err)
	}
	if p == "" {
		t.Fatal("expected non-empty prompt")
	}
	for _, want := range []string{
		"product.lookup",
		"gear.search",
		"customer.verify_purchase",
		"customer.register",
		"customer.check_warranty",
	} {
		if !strings.Contains(p, want) {
			t.Fatalf("prompt missing tool name %q", want)
		}
	}
}
