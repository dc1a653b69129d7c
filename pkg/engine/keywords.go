package engine

import (
	"strings"

	"github.com/Sanl2005/citizen-dna-app/models"
)

// Keyword sets used by the eligibility filter and the ranker. Kept as named
// variables (not inline literals) so the lists stay unit-testable and easy to
// extend when new scheme wording shows up in the catalog.
var (
	// WomenKeywords flags schemes aimed at women even when required_gender is
	// not set on the row (mislabeled catalog data is common).
	WomenKeywords = []string{
		"women", "woman", "female", "girl", "daughter", "maternity",
		"widow", "mahila", "nari", "sister", "mother",
	}

	FarmerSchemeKeywords = []string{"kisan", "farmer", "agriculture", "krishi", "crop insurance"}
	FarmerOccupations    = []string{"farmer", "agriculture", "cultivator"}

	VendorSchemeKeywords = []string{"street vendor", "svanidhi"}
	VendorOccupations    = []string{"vendor", "hawker"}

	StudentSchemeKeywords = []string{"student", "scholarship", "fellowship", "matric", "university", "college"}

	// Trailing spaces on the short caste tags keep "sc" from matching inside
	// ordinary words like "scheme".
	SCKeywords       = []string{"sc ", "scheduled caste"}
	STKeywords       = []string{"st ", "scheduled tribe"}
	OBCKeywords      = []string{"obc", "backward class"}
	MinorityKeywords = []string{"minority"}

	// Occupation keyword lists feeding the risk scorer.
	InformalLabourKeywords = []string{
		"daily wage", "labour", "laborer", "construction", "domestic",
		"maid", "rickshaw", "coolie", "vendor", "hawker",
	}
	HazardousOccupationKeywords = []string{
		"miner", "mining", "construction", "sanitation", "chemical",
		"quarry", "welder", "factory",
	}
)

// containsAny reports whether text contains any of the given lowercase keywords.
func containsAny(text string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}

// schemeText is the lowercase haystack the occupation/student/social-category
// checks match against: name + description + eligibility rules.
func schemeText(s *models.Scheme) string {
	return strings.ToLower(s.SchemeName + " " + s.Description + " " + s.EligibilityRules)
}

// genderNetText is the narrower haystack for the women-keyword safety net:
// category + name only, so a scheme merely mentioning mothers in its long
// description is not blanket-excluded for men.
func genderNetText(s *models.Scheme) string {
	return strings.ToLower(s.Category + " " + s.SchemeName)
}
