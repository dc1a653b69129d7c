package engine

import (
	"strings"

	"github.com/Sanl2005/citizen-dna-app/models"
)

// Scores holds the two derived need estimates for a profile. Both are kept in
// [0.05, 0.99]: never exactly 0 or 1, reflecting irreducible uncertainty.
type Scores struct {
	Health    float64
	Financial float64
}

// Average blends the two components; the ranker uses it for its high-priority
// boost and the confidence nudge.
func (s Scores) Average() float64 {
	return (s.Health + s.Financial) / 2
}

// Scorer maps a citizen profile to need scores. Implementations must be total:
// they never return an error, degrading internally instead.
type Scorer interface {
	Score(p *models.CitizenProfile) Scores
}

// RuleScorer is the rule-based scoring path. It is the fallback behind the
// model path and the only path when no artifact is available.
type RuleScorer struct{}

func (RuleScorer) Score(p *models.CitizenProfile) Scores {
	return Scores{
		Health:    healthScore(p),
		Financial: financialScore(p),
	}
}

func financialScore(p *models.CitizenProfile) float64 {
	score := 0.1

	// Income-tier penalty, steeper for lower income. Exclusive bands.
	switch {
	case p.Income <= 0:
		score += 0.5
	case p.Income < 50000:
		score += 0.4
	case p.Income < 150000:
		score += 0.25
	case p.Income < 300000:
		score += 0.1
	}

	if strings.EqualFold(p.EmploymentStatus, "Unemployed") && !p.IsStudent {
		score += 0.2
	}

	occ := strings.ToLower(p.Occupation)
	if containsAny(occ, InformalLabourKeywords) {
		score += 0.15
	}
	if strings.Contains(occ, "farmer") {
		score += 0.1
	}

	if p.FamilySize > 4 {
		score += 0.1
	}
	if p.SingleParentChild {
		score += 0.15
	}

	return clampScore(score)
}

func healthScore(p *models.CitizenProfile) float64 {
	score := 0.1

	// Age bands form a priority chain: first match wins, not cumulative.
	switch {
	case p.Age > 70:
		score += 0.6
	case p.Age > 60:
		score += 0.4
	case p.Age > 50:
		score += 0.2
	case p.Age < 5:
		score += 0.3
	case p.Age < 18:
		score += 0.1
	}

	if p.DisabilityStatus {
		score += 0.4
	}
	if containsAny(strings.ToLower(p.Occupation), HazardousOccupationKeywords) {
		score += 0.2
	}
	if p.Income < 100000 {
		score += 0.1
	}

	return clampScore(score)
}

func clampScore(v float64) float64 {
	if v < 0.05 {
		return 0.05
	}
	if v > 0.99 {
		return 0.99
	}
	return v
}
