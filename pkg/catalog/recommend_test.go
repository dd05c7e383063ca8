package catalog

import "testing"

func TestRecommendWithTypeContext(t *testing.T) {
	recs := Recommend(Default(), "dials")
	if len(recs) != 2 {
		t.Fatalf("expected first 2 dials, got %d components", len(recs))
	}
	for _, component := range recs {
		if component.Type != TypeDial {
			t.Fatalf("expected only dials, got %q", component.Type)
		}
	}
	if recs[0].ID != "dial_black" || recs[1].ID != "dial_blue" {
		t.Fatalf("recommendations should follow declaration order, got %q then %q", recs[0].ID, recs[1].ID)
	}
}

func TestRecommendDefaultSpread(t *testing.T) {
	for _, context := range []string{"", "shipping", "general_help"} {
		recs := Recommend(Default(), context)
		if len(recs) != 4 {
			t.Fatalf("context %q: expected one component per type, got %d", context, len(recs))
		}
		for i, componentType := range ComponentTypes {
			if recs[i].Type != componentType {
				t.Fatalf("context %q: position %d should be %q, got %q", context, i, componentType, recs[i].Type)
			}
		}
	}
}

func TestRecommendSkipsEmptyBucketDefensively(t *testing.T) {
	c := New([]Component{
		{ID: "case_a", Name: "Case A", Type: TypeCase, Price: 10},
		{ID: "dial_a", Name: "Dial A", Type: TypeDial, Price: 10},
	})
	recs := Recommend(c, "")
	if len(recs) != 2 {
		t.Fatalf("missing buckets are dropped, expected 2 components, got %d", len(recs))
	}
}
