package catalog

import (
	"math"
	"testing"
)

func TestQuoteFullBuild(t *testing.T) {
	ids := []string{"case_skx007", "dial_black", "hands_standard", "bezel_dive"}
	quote := Quote(Default(), ids)

	if math.Abs(quote.Total-219.96) > 1e-9 {
		t.Fatalf("expected total 219.96, got %v", quote.Total)
	}
	if len(quote.Breakdown) != 4 {
		t.Fatalf("expected 4 breakdown lines, got %d", len(quote.Breakdown))
	}
	if quote.Breakdown[0].Name != "SKX007 Classic Case" || quote.Breakdown[3].Name != "Dive Timing Bezel" {
		t.Fatalf("breakdown must preserve input order, got %v", quote.Breakdown)
	}
}

func TestQuoteAdditivity(t *testing.T) {
	c := Default()
	ids := []string{"case_skx007", "dial_black", "hands_standard", "bezel_dive"}

	sum := 0.0
	for _, id := range ids {
		sum += Quote(c, []string{id}).Total
	}

	if combined := Quote(c, ids).Total; combined != sum {
		t.Fatalf("combined total %v differs from sum of singles %v", combined, sum)
	}
}

func TestQuoteDropsUnknownIDs(t *testing.T) {
	c := Default()

	with := Quote(c, []string{"case_skx007", "nonexistent_id"})
	without := Quote(c, []string{"case_skx007"})

	if with.Total != without.Total || len(with.Breakdown) != len(without.Breakdown) {
		t.Fatalf("unknown IDs must not change the quote for resolved ones")
	}
}

func TestQuoteEmptySelection(t *testing.T) {
	quote := Quote(Default(), nil)
	if quote.Total != 0 || len(quote.Breakdown) != 0 {
		t.Fatalf("empty selection should yield a zero quote, got %+v", quote)
	}
}
