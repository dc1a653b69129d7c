package engine

import (
	"fmt"
	"strings"

	"github.com/Sanl2005/citizen-dna-app/models"
)

// ExclusionReason identifies which hard filter knocked a scheme out.
type ExclusionReason string

const (
	ExcludedGender         ExclusionReason = "gender"
	ExcludedAge            ExclusionReason = "age"
	ExcludedIncome         ExclusionReason = "income"
	ExcludedOccupation     ExclusionReason = "occupation"
	ExcludedStudent        ExclusionReason = "student"
	ExcludedSocialCategory ExclusionReason = "social_category"
)

// Exclusion records why a scheme was filtered out. Diagnostic only: a nil
// exclusion means the scheme passed every hard filter.
type Exclusion struct {
	Reason ExclusionReason
	Detail string
}

func exclude(r ExclusionReason, format string, args ...any) (bool, *Exclusion) {
	return false, &Exclusion{Reason: r, Detail: fmt.Sprintf(format, args...)}
}

// Eligible applies the hard exclusion filters in order. The ordering only
// matters for early exit; the checks are conjunctive. Unset scheme bounds mean
// "no constraint", never an error.
func Eligible(p *models.CitizenProfile, s *models.Scheme) (bool, *Exclusion) {
	userGender := strings.ToLower(p.Gender)
	requiredGender := ""
	if s.RequiredGender != nil {
		requiredGender = strings.ToLower(*s.RequiredGender)
	}

	// 1. Gender. Beyond the explicit field, male profiles are screened against
	// women-oriented wording in category+name: a safety net for rows where
	// required_gender was never filled in.
	if userGender == "male" {
		switch requiredGender {
		case "female", "woman", "women":
			return exclude(ExcludedGender, "scheme requires %s", *s.RequiredGender)
		}
		if containsAny(genderNetText(s), WomenKeywords) {
			return exclude(ExcludedGender, "scheme wording targets women")
		}
	}
	if userGender == "female" {
		switch requiredGender {
		case "male", "man", "men":
			return exclude(ExcludedGender, "scheme requires %s", *s.RequiredGender)
		}
	}

	// 2. Age bounds.
	if s.MinAge != nil && p.Age < *s.MinAge {
		return exclude(ExcludedAge, "age %d below minimum %d", p.Age, *s.MinAge)
	}
	if s.MaxAge != nil && p.Age > *s.MaxAge {
		return exclude(ExcludedAge, "age %d above maximum %d", p.Age, *s.MaxAge)
	}

	// 3. Income ceiling.
	if s.MaxIncome != nil && p.Income > *s.MaxIncome {
		return exclude(ExcludedIncome, "income %.0f above limit %.0f", p.Income, *s.MaxIncome)
	}

	// 4. Occupation heuristics over the scheme's free text.
	text := schemeText(s)
	occupation := strings.ToLower(p.Occupation)
	if containsAny(text, FarmerSchemeKeywords) && !containsAny(occupation, FarmerOccupations) {
		return exclude(ExcludedOccupation, "farmer scheme, occupation %q", p.Occupation)
	}
	if containsAny(text, VendorSchemeKeywords) && !containsAny(occupation, VendorOccupations) {
		return exclude(ExcludedOccupation, "street vendor scheme, occupation %q", p.Occupation)
	}

	// 5. Student-only schemes.
	if containsAny(text, StudentSchemeKeywords) && !p.IsStudent {
		return exclude(ExcludedStudent, "student scheme, profile is not a student")
	}

	// 6. Social category / minority wording.
	community := strings.ToLower(p.SocialCategory)
	if community == "" {
		community = "general"
	}
	if containsAny(text, SCKeywords) && !strings.Contains(community, "sc") {
		return exclude(ExcludedSocialCategory, "scheme reserved for SC")
	}
	if containsAny(text, STKeywords) && !strings.Contains(community, "st") {
		return exclude(ExcludedSocialCategory, "scheme reserved for ST")
	}
	if containsAny(text, OBCKeywords) && !strings.Contains(community, "obc") {
		return exclude(ExcludedSocialCategory, "scheme reserved for OBC")
	}
	if containsAny(text, MinorityKeywords) && !p.MinorityStatus {
		return exclude(ExcludedSocialCategory, "scheme reserved for minorities")
	}

	return true, nil
}
