package engine

import (
	"reflect"
	"testing"

	"github.com/Sanl2005/citizen-dna-app/models"
)

// fixedScorer pins deterministic scores so builder tests are independent of
// the rule tables.
type fixedScorer struct{ s Scores }

func (f fixedScorer) Score(_ *models.CitizenProfile) Scores { return f.s }

func testCatalog() []models.Scheme {
	return []models.Scheme{
		{ID: 1, SchemeName: "Old Age Pension (NSAP)", MinAge: intp(60), MaxIncome: floatp(60000), Category: "Pension"},
		{ID: 2, SchemeName: "Sukanya Samriddhi Yojana", Category: "Women Welfare"},
		{ID: 3, SchemeName: "Skill India Mission", Description: "Training for youth.", Category: "Skill Development"},
		{ID: 4, SchemeName: "PM-KISAN", Description: "Direct income support for farmers.", Category: "Agriculture"},
	}
}

func TestRebuildEmptyCatalog(t *testing.T) {
	b := NewBuilder(RuleScorer{})
	p := &models.CitizenProfile{ID: 7, Age: 30, Gender: "Male", Income: 50000}
	recs := b.Rebuild(p, nil)
	if len(recs) != 0 {
		t.Fatalf("expected empty set got %d", len(recs))
	}
}

func TestRebuildExcludedNeverRecommended(t *testing.T) {
	b := NewBuilder(fixedScorer{Scores{Health: 0.9, Financial: 0.9}})
	p := &models.CitizenProfile{ID: 7, Age: 65, Gender: "Male", Income: 40000, EmploymentStatus: "Unemployed"}
	catalog := testCatalog()
	recs := b.Rebuild(p, catalog)
	for i := range catalog {
		s := &catalog[i]
		if ok, _ := Eligible(p, s); ok {
			continue
		}
		for _, r := range recs {
			if r.SchemeID == s.ID {
				t.Fatalf("excluded scheme %d surfaced in recommendations", s.ID)
			}
		}
	}
	// The women scheme and the farmer scheme must be out, the pension in.
	ids := map[uint]bool{}
	for _, r := range recs {
		ids[r.SchemeID] = true
	}
	if ids[2] || ids[4] {
		t.Fatalf("filtered schemes recommended: %v", ids)
	}
	if !ids[1] {
		t.Fatalf("pension should be recommended: %v", ids)
	}
}

func TestRebuildIdempotent(t *testing.T) {
	b := NewBuilder(RuleScorer{})
	p := &models.CitizenProfile{ID: 3, Age: 65, Gender: "Male", Income: 40000, EmploymentStatus: "Unemployed", AreaOfResidence: "Rural"}
	catalog := testCatalog()
	first := b.Rebuild(p, catalog)
	second := b.Rebuild(p, catalog)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("rebuild not idempotent:\n%v\n%v", first, second)
	}
}

func TestRebuildWritesScoresOntoProfile(t *testing.T) {
	b := NewBuilder(fixedScorer{Scores{Health: 0.42, Financial: 0.33}})
	p := &models.CitizenProfile{ID: 1, Age: 30, Gender: "Male"}
	b.Rebuild(p, nil)
	if p.RiskScoreHealth != 0.42 || p.RiskScoreFinancial != 0.33 {
		t.Fatalf("scores not written: %+v", p)
	}
}

func TestRebuildRowsCarryProfileAndConfidence(t *testing.T) {
	b := NewBuilder(fixedScorer{Scores{Health: 0.5, Financial: 0.5}})
	p := &models.CitizenProfile{ID: 11, Age: 30, Gender: "Female", Income: 20000}
	recs := b.Rebuild(p, testCatalog())
	if len(recs) == 0 {
		t.Fatalf("expected at least one recommendation")
	}
	for _, r := range recs {
		if r.ProfileID != 11 {
			t.Fatalf("wrong profile id on row: %+v", r)
		}
		if r.Confidence < 0.8 || r.Confidence > 0.99 {
			t.Fatalf("confidence out of band: %+v", r)
		}
		if r.Reason == "" {
			t.Fatalf("empty reason on row: %+v", r)
		}
	}
}
