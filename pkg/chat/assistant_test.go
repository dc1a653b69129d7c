package chat

import (
	"strings"
	"testing"

	"github.com/Sanl2005/citizen-dna-app/models"
)

func testSchemes() []models.Scheme {
	female := "Female"
	return []models.Scheme{
		{SchemeName: "PM-KISAN", Ministry: "Ministry of Agriculture", Description: "Direct income support for farmers.", Benefits: "₹6000 per year"},
		{SchemeName: "Sukanya Samriddhi Yojana", Ministry: "Ministry of Women & Child Development", Description: "Savings scheme for girl child.", Benefits: "High interest rate", RequiredGender: &female},
		{SchemeName: "Post Matric Scholarship for SC Students", Ministry: "Ministry of Social Justice", Description: "Financial assistance to SC students.", Benefits: "Tuition fee waiver"},
	}
}

func TestReplyFarmingSynonymFindsKisan(t *testing.T) {
	reply := Reply("any schemes for farming?", testSchemes())
	if !strings.Contains(reply, "PM-KISAN") {
		t.Fatalf("expected PM-KISAN in reply, got %q", reply)
	}
}

func TestReplyStudyFindsScholarship(t *testing.T) {
	reply := Reply("I want to study further", testSchemes())
	if !strings.Contains(reply, "Scholarship") {
		t.Fatalf("expected scholarship match, got %q", reply)
	}
}

func TestReplyAppKnowledgeBeatsSearch(t *testing.T) {
	reply := Reply("what is my risk score", testSchemes())
	if !strings.Contains(reply, "DNA Assistant") {
		t.Fatalf("expected knowledge-base answer, got %q", reply)
	}
}

func TestReplyGreetingFallback(t *testing.T) {
	reply := Reply("hello", testSchemes())
	if !strings.Contains(reply, "Namaste") {
		t.Fatalf("expected greeting, got %q", reply)
	}
}

func TestReplyEncouragingFallback(t *testing.T) {
	reply := Reply("xyzzy", nil)
	if !strings.Contains(reply, "I'm here to help") {
		t.Fatalf("expected fallback, got %q", reply)
	}
}
