package catalog

import "testing"

func TestCheckCompatibilitySymmetricLookup(t *testing.T) {
	// case_skx007 lists dial_blue; dial_blue lists nothing. The pairing
	// must count regardless of which side declared it or which ID comes
	// first in the selection.
	c := Default()

	forward := CheckCompatibility(c, []string{"case_skx007", "dial_blue"})
	reverse := CheckCompatibility(c, []string{"dial_blue", "case_skx007"})

	if !forward.Compatible {
		t.Fatalf("case_skx007 + dial_blue should be compatible, issues: %v", forward.Issues)
	}
	if forward.Compatible != reverse.Compatible {
		t.Fatalf("compatibility verdict must not depend on selection order")
	}

	// hands_standard lists dial_black, the dial does not list the hands.
	oneSided := CheckCompatibility(c, []string{"dial_black", "hands_standard"})
	if !oneSided.Compatible {
		t.Fatalf("one-sided declaration should still count, issues: %v", oneSided.Issues)
	}
}

func TestCheckCompatibilityReportsIssues(t *testing.T) {
	c := Default()

	// Neither bezel_gold nor dial_black names the other.
	result := CheckCompatibility(c, []string{"dial_black", "bezel_gold"})
	if result.Compatible {
		t.Fatalf("dial_black + bezel_gold should report an issue")
	}
	if len(result.Issues) != 1 {
		t.Fatalf("expected exactly 1 issue, got %d: %v", len(result.Issues), result.Issues)
	}
	want := "Black Sunburst Dial may not be fully compatible with Gold Bezel"
	if result.Issues[0] != want {
		t.Fatalf("issue text mismatch:\n got %q\nwant %q", result.Issues[0], want)
	}
	if len(result.Recommendations) != 2 {
		t.Fatalf("incompatible selections get exactly 2 advisory strings, got %d", len(result.Recommendations))
	}
}

func TestCheckCompatibilityCompatibleSelection(t *testing.T) {
	result := CheckCompatibility(Default(), []string{"case_skx007", "dial_black", "hands_standard"})
	if !result.Compatible {
		t.Fatalf("demo selection should be compatible, issues: %v", result.Issues)
	}
	if len(result.Issues) != 0 {
		t.Fatalf("expected no issues, got %v", result.Issues)
	}
	if len(result.Recommendations) != 1 {
		t.Fatalf("compatible selections get a single confirmation, got %d", len(result.Recommendations))
	}
}

func TestCheckCompatibilityToleratesUnknownIDs(t *testing.T) {
	c := Default()

	with := CheckCompatibility(c, []string{"case_skx007", "dial_blue", "nonexistent_id"})
	without := CheckCompatibility(c, []string{"case_skx007", "dial_blue"})

	if with.Compatible != without.Compatible || len(with.Issues) != len(without.Issues) {
		t.Fatalf("unknown IDs must not change the verdict for resolved ones")
	}
}

func TestCheckCompatibilityVacuousCases(t *testing.T) {
	c := Default()

	for _, ids := range [][]string{nil, {"case_skx007"}, {"nonexistent_id"}} {
		result := CheckCompatibility(c, ids)
		if !result.Compatible || len(result.Issues) != 0 {
			t.Fatalf("selection %v should be vacuously compatible", ids)
		}
	}
}
