package engine

import (
	"github.com/Sanl2005/citizen-dna-app/models"
)

// Builder orchestrates filter and ranker over the whole scheme catalog for one
// profile. The scorer is injected so tests can pin deterministic scores.
type Builder struct {
	Scorer Scorer
}

func NewBuilder(s Scorer) *Builder {
	return &Builder{Scorer: s}
}

// Rebuild computes both need scores, writes them onto the profile, and returns
// the full replacement recommendation set in catalog order. No cap and no
// sorting beyond catalog order; presentation ordering belongs to the consumer.
// The caller persists the result as one atomic delete-then-insert so readers
// never observe a partially rebuilt set.
func (b *Builder) Rebuild(p *models.CitizenProfile, catalog []models.Scheme) []models.Recommendation {
	scores := b.Scorer.Score(p)
	p.RiskScoreHealth = scores.Health
	p.RiskScoreFinancial = scores.Financial

	recs := make([]models.Recommendation, 0, len(catalog))
	for i := range catalog {
		s := &catalog[i]
		if ok, _ := Eligible(p, s); !ok {
			continue
		}
		m := Evaluate(p, s, scores)
		if !m.Matched {
			continue
		}
		recs = append(recs, models.Recommendation{
			ProfileID:  p.ID,
			SchemeID:   s.ID,
			Confidence: m.Confidence,
			Reason:     ReasonText(m.Reasons),
		})
	}
	return recs
}
