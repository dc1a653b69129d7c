package engine

import (
	"math"
	"strings"
	"testing"

	"github.com/Sanl2005/citizen-dna-app/models"
)

func TestPensionerHighPriorityMatch(t *testing.T) {
	p := &models.CitizenProfile{
		Age: 65, Gender: "Male", Income: 40000,
		AreaOfResidence: "Rural", Occupation: "Retired", EmploymentStatus: "Unemployed",
		FamilySize: 2,
	}
	s := &models.Scheme{
		SchemeName: "Old Age Pension (NSAP)",
		MinAge:     intp(60),
		MaxIncome:  floatp(60000),
		Category:   "Pension",
	}
	if ok, ex := Eligible(p, s); !ok {
		t.Fatalf("expected eligible, got %+v", ex)
	}
	scores := RuleScorer{}.Score(p)
	m := Evaluate(p, s, scores)
	if !m.Matched {
		t.Fatalf("expected match, scores=%+v reasons=%v", scores, m.Reasons)
	}
	if m.Confidence < 0.8 || m.Confidence > 0.99 {
		t.Fatalf("confidence out of band: %.3f", m.Confidence)
	}
}

func TestGenderTargetedMatch(t *testing.T) {
	p := &models.CitizenProfile{Age: 25, Gender: "Female", Income: 40000}
	s := &models.Scheme{SchemeName: "Ujjwala Yojana", RequiredGender: strp("Female"), Category: "Women"}
	m := Evaluate(p, s, Scores{Health: 0.2, Financial: 0.2})
	if !m.Matched {
		t.Fatalf("expected gender-targeted match")
	}
	if !containsReason(m.Reasons, "Dedicated benefit for Female") {
		t.Fatalf("missing gender reason: %v", m.Reasons)
	}
}

func TestRuralSupportMatch(t *testing.T) {
	p := &models.CitizenProfile{Age: 30, Gender: "Male", AreaOfResidence: "Rural"}
	s := &models.Scheme{SchemeName: "PMGDISHA", Description: "Making citizens in rural India digitally literate.", Category: "Education"}
	m := Evaluate(p, s, Scores{Health: 0.2, Financial: 0.2})
	if !m.Matched || !containsReason(m.Reasons, "Rural area support") {
		t.Fatalf("expected rural match: %+v", m)
	}
}

func TestGeneralCategoryFallback(t *testing.T) {
	p := &models.CitizenProfile{Age: 28, Gender: "Male", AreaOfResidence: "Urban"}
	s := &models.Scheme{SchemeName: "Skill India Mission", Description: "Training for youth.", Category: "Skill Development"}
	m := Evaluate(p, s, Scores{Health: 0.1, Financial: 0.1})
	if !m.Matched {
		t.Fatalf("general category should stay recommendable")
	}
	if !containsReason(m.Reasons, "General eligibility for Skill Development") {
		t.Fatalf("missing fallback reason: %v", m.Reasons)
	}
}

func TestNoSignalNoMatch(t *testing.T) {
	p := &models.CitizenProfile{Age: 28, Gender: "Male", AreaOfResidence: "Urban"}
	s := &models.Scheme{SchemeName: "Agri-Business Centres", Description: "Subsidy for entrepreneurs.", Category: "Agriculture"}
	m := Evaluate(p, s, Scores{Health: 0.1, Financial: 0.1})
	if m.Matched {
		t.Fatalf("expected no match, reasons=%v", m.Reasons)
	}
}

func TestHighPriorityNeedsHighAverage(t *testing.T) {
	p := &models.CitizenProfile{Age: 40, Gender: "Male", AreaOfResidence: "Urban"}
	s := &models.Scheme{SchemeName: "National Health Mission", Description: "Healthcare for all.", Category: "Pension"}
	if m := Evaluate(p, s, Scores{Health: 0.55, Financial: 0.55}); m.Matched {
		t.Fatalf("average 0.55 must not trigger the high-priority boost")
	}
	if m := Evaluate(p, s, Scores{Health: 0.7, Financial: 0.7}); !m.Matched {
		t.Fatalf("average 0.7 should trigger the high-priority boost")
	}
}

func TestConfidenceBandAndClamp(t *testing.T) {
	p := &models.CitizenProfile{Age: 30, Gender: "Female"}
	s := &models.Scheme{SchemeName: "Anything", RequiredGender: strp("Female")}
	low := Evaluate(p, s, Scores{Health: 0.05, Financial: 0.05})
	high := Evaluate(p, s, Scores{Health: 0.99, Financial: 0.99})
	if math.Abs(low.Confidence-0.805) > 1e-9 {
		t.Fatalf("expected 0.805 got %.3f", low.Confidence)
	}
	if high.Confidence > 0.99 {
		t.Fatalf("confidence must clamp at 0.99 got %.3f", high.Confidence)
	}
}

func TestReasonText(t *testing.T) {
	if got := ReasonText(nil); got != "AI predicted match based on profile" {
		t.Fatalf("unexpected fallback reason %q", got)
	}
	got := ReasonText([]string{"Eligible for age 65", "Rural area support", "Student benefit"})
	if got != "Eligible for age 65 and Rural area support" {
		t.Fatalf("expected first two reasons joined, got %q", got)
	}
	if strings.Contains(got, "Student") {
		t.Fatalf("third reason leaked into %q", got)
	}
}

func containsReason(reasons []string, want string) bool {
	for _, r := range reasons {
		if r == want {
			return true
		}
	}
	return false
}
