package checks

import (
	"strings"

	"github.com/shashankpendyala3549-commits/backend/internal/models"
)

// StructureValidation probes the text for the expected offer-letter
// sections. The base score is the fraction of the six required sections
// found, scaled to 100; a missing address costs another 10 and missing
// company registration IDs cost 5.
func StructureValidation(rawText string) models.StructureResult {
	text := strings.ToLower(rawText)

	found := make(map[string]bool, len(offerSections))
	var missing []string
	requiredTotal, requiredFound := 0, 0

	for _, sec := range offerSections {
		present := false
		for _, kw := range sec.Keywords {
			if strings.Contains(text, kw) {
				present = true
				break
			}
		}
		found[sec.Name] = present

		if sec.Required {
			requiredTotal++
			if present {
				requiredFound++
			} else {
				missing = append(missing, sec.Name)
			}
		}
	}

	score := int(float64(requiredFound) / float64(requiredTotal) * 100)
	if !found["address"] {
		score -= 10
	}
	if !found["company_ids"] {
		score -= 5
	}

	return models.StructureResult{
		Score:           clampScore(score),
		SectionsFound:   found,
		MissingSections: missing,
	}
}
