package engine

import (
	"fmt"
	"strings"

	"github.com/Sanl2005/citizen-dna-app/models"
)

// Categories that auto-match for high-need profiles.
var highPriorityCategories = map[string]bool{
	"Health":            true,
	"Pension":           true,
	"Housing":           true,
	"Rural Development": true,
}

// Broadly-applicable categories that stay recommendable even when no
// individual signal fires.
var generalCategories = map[string]bool{
	"Skill Development": true,
	"Health":            true,
	"Employment":        true,
}

// Match is the ranker's verdict for a scheme that already passed the hard
// filters: whether to recommend it, the collected justifications, and a
// confidence in [0.8, 0.99].
type Match struct {
	Matched    bool
	Reasons    []string
	Confidence float64
}

// Evaluate decides whether a filter-passing scheme is worth recommending.
// A scheme matches when any positive signal fires; signals deliberately
// overlap and are not a single weighted formula.
func Evaluate(p *models.CitizenProfile, s *models.Scheme, scores Scores) Match {
	var matched bool
	var reasons []string

	// The declared bounds already passed the filter; restating them gives the
	// citizen a concrete justification even when a stronger signal fires later.
	if s.MinAge != nil && p.Age >= *s.MinAge {
		reasons = append(reasons, fmt.Sprintf("Eligible for age %d", p.Age))
	}
	if s.MaxIncome != nil && p.Income <= *s.MaxIncome {
		reasons = append(reasons, fmt.Sprintf("Income ₹%.0f fits limit", p.Income))
	}

	if s.RequiredGender != nil && strings.EqualFold(p.Gender, *s.RequiredGender) {
		matched = true
		reasons = append(reasons, fmt.Sprintf("Dedicated benefit for %s", p.Gender))
	}

	if strings.Contains(strings.ToLower(s.Description), "rural") && p.AreaOfResidence == "Rural" {
		matched = true
		reasons = append(reasons, "Rural area support")
	}

	// Case-sensitive on purpose: the uppercase "SC"/"ST"/"OBC" tags must not
	// match inside ordinary words ("scheme", "statutory").
	if p.SocialCategory != "" &&
		(strings.Contains(s.SchemeName, p.SocialCategory) || strings.Contains(s.Description, p.SocialCategory)) {
		matched = true
		reasons = append(reasons, fmt.Sprintf("Targeted for %s category", p.SocialCategory))
	}

	text := schemeText(s)
	if strings.Contains(text, "student") && p.IsStudent {
		matched = true
		reasons = append(reasons, "Student benefit")
	}
	if strings.Contains(text, "agriculture") && strings.Contains(strings.ToLower(p.Occupation), "farmer") {
		matched = true
		reasons = append(reasons, "Farmer benefit")
	}

	average := scores.Average()
	if average > 0.6 && highPriorityCategories[s.Category] {
		matched = true
		reasons = append(reasons, "High priority welfare match")
	}

	if !matched && generalCategories[s.Category] {
		matched = true
		reasons = append(reasons, fmt.Sprintf("General eligibility for %s", s.Category))
	}

	confidence := 0.8 + average*0.1
	if confidence > 0.99 {
		confidence = 0.99
	}

	return Match{Matched: matched, Reasons: reasons, Confidence: confidence}
}

// ReasonText joins the first two collected reasons; passing the hard filter
// with no individual justification still deserves an explanation.
func ReasonText(reasons []string) string {
	if len(reasons) == 0 {
		return "AI predicted match based on profile"
	}
	if len(reasons) > 2 {
		reasons = reasons[:2]
	}
	return strings.Join(reasons, " and ")
}
