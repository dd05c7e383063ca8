package catalog

import "fmt"

type CompatibilityResult struct {
	Compatible      bool     `json:"compatible"`
	Issues          []string `json:"issues"`
	Recommendations []string `json:"recommendations"`
}

// CheckCompatibility verifies every unordered pair among the selected
// components. Compatibility entries are authored one-directionally in the
// catalog data, so a pair counts as compatible when either side lists the
// other. Unknown IDs are dropped before pairing.
func CheckCompatibility(c *Catalog, componentIDs []string) CompatibilityResult {
	components := c.Resolve(componentIDs)

	issues := make([]string, 0)
	for i := 0; i < len(components); i++ {
		for j := i + 1; j < len(components); j++ {
			first := components[i]
			second := components[j]

			if !listsID(first.Compatibility, second.ID) && !listsID(second.Compatibility, first.ID) {
				issues = append(issues, fmt.Sprintf("%s may not be fully compatible with %s", first.Name, second.Name))
			}
		}
	}

	recommendations := make([]string, 0, 2)
	if len(issues) == 0 {
		recommendations = append(recommendations, "Great combination! All selected components work perfectly together.")
	} else {
		recommendations = append(recommendations, "Consider checking our compatibility guide for alternative options.")
		recommendations = append(recommendations, "Our experts can suggest compatible alternatives that maintain your design vision.")
	}

	return CompatibilityResult{
		Compatible:      len(issues) == 0,
		Issues:          issues,
		Recommendations: recommendations,
	}
}

func listsID(compatibility []string, id string) bool {
	for _, candidate := range compatibility {
		if candidate == id {
			return true
		}
	}
	return false
}
