package suggest

import (
	"testing"

	"dsatrack/internal/models"
)

func TestForVariant_ReturnsIndependentCopies(t *testing.T) {
	first := ForVariant(models.VariantTopic)
	if len(first) != 3 {
		t.Fatalf("expected 3 suggestions, got %d", len(first))
	}

	first[0].Name = "mutated"
	second := ForVariant(models.VariantTopic)
	if second[0].Name == "mutated" {
		t.Fatal("catalog leaked a mutable reference")
	}
}

func TestForVariant_ListsDiffer(t *testing.T) {
	a := ForVariant(models.VariantDifficulty)
	b := ForVariant(models.VariantTopic)
	if a[0].Name == b[0].Name {
		t.Fatalf("variants serve the same list: %q", a[0].Name)
	}
}

func TestAssignVariant_AlwaysValid(t *testing.T) {
	seen := map[models.Variant]bool{}
	for i := 0; i < 200; i++ {
		v := AssignVariant()
		if !v.Valid() {
			t.Fatalf("assigned invalid variant %q", v)
		}
		seen[v] = true
	}
	if len(seen) != 2 {
		t.Fatalf("200 assignments hit only %d variant(s)", len(seen))
	}
}
