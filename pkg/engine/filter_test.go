package engine

import (
	"testing"

	"github.com/Sanl2005/citizen-dna-app/models"
)

func intp(v int) *int             { return &v }
func floatp(v float64) *float64   { return &v }
func strp(v string) *string       { return &v }

func TestNonStudentExcludedFromScholarship(t *testing.T) {
	p := &models.CitizenProfile{Age: 22, Gender: "Male", Income: 10000, Occupation: "Software Engineer", SocialCategory: "SC"}
	s := &models.Scheme{
		SchemeName:       "Post Matric Scholarship for SC Students",
		Description:      "Financial assistance to SC students for post-matric studies.",
		EligibilityRules: "Continuous education, SC community",
		MinAge:           intp(16),
		Category:         "Education",
	}
	ok, ex := Eligible(p, s)
	if ok {
		t.Fatalf("expected exclusion for non-student")
	}
	if ex.Reason != ExcludedStudent {
		t.Fatalf("expected student exclusion got %s (%s)", ex.Reason, ex.Detail)
	}
}

func TestWomenKeywordSafetyNet(t *testing.T) {
	// No explicit required_gender, but the wording targets women.
	p := &models.CitizenProfile{Age: 30, Gender: "Male"}
	s := &models.Scheme{SchemeName: "Sukanya Samriddhi Yojana", Category: "Women Welfare"}
	ok, ex := Eligible(p, s)
	if ok || ex.Reason != ExcludedGender {
		t.Fatalf("expected gender exclusion got ok=%v ex=%+v", ok, ex)
	}
	// The net applies to male profiles only.
	p.Gender = "Female"
	if ok, _ := Eligible(p, s); !ok {
		t.Fatalf("female profile should pass the women-keyword net")
	}
}

func TestExplicitGenderConflict(t *testing.T) {
	p := &models.CitizenProfile{Age: 30, Gender: "Female"}
	s := &models.Scheme{SchemeName: "Some Scheme", RequiredGender: strp("Male")}
	ok, ex := Eligible(p, s)
	if ok || ex.Reason != ExcludedGender {
		t.Fatalf("expected gender exclusion got ok=%v ex=%+v", ok, ex)
	}
}

func TestIncomeCeilingBeatsEverything(t *testing.T) {
	p := &models.CitizenProfile{Age: 30, Gender: "Male", Income: 5000000, Occupation: "Software Engineer"}
	s := &models.Scheme{SchemeName: "Some Benefit", MaxIncome: floatp(300000), Category: "Employment"}
	ok, ex := Eligible(p, s)
	if ok || ex.Reason != ExcludedIncome {
		t.Fatalf("expected income exclusion got ok=%v ex=%+v", ok, ex)
	}
}

func TestAgeBounds(t *testing.T) {
	young := &models.CitizenProfile{Age: 15, Gender: "Male"}
	old := &models.CitizenProfile{Age: 70, Gender: "Male"}
	s := &models.Scheme{SchemeName: "Working Age Benefit", MinAge: intp(18), MaxAge: intp(60)}
	if ok, ex := Eligible(young, s); ok || ex.Reason != ExcludedAge {
		t.Fatalf("expected min-age exclusion got ok=%v ex=%+v", ok, ex)
	}
	if ok, ex := Eligible(old, s); ok || ex.Reason != ExcludedAge {
		t.Fatalf("expected max-age exclusion got ok=%v ex=%+v", ok, ex)
	}
}

func TestUnsetBoundsMeanNoConstraint(t *testing.T) {
	p := &models.CitizenProfile{Age: 95, Gender: "Other", Income: 9000000}
	s := &models.Scheme{SchemeName: "Universal Benefit", Description: "Open to all citizens."}
	if ok, ex := Eligible(p, s); !ok {
		t.Fatalf("unset bounds must not exclude: %+v", ex)
	}
}

func TestFarmerSchemeRequiresFarmerOccupation(t *testing.T) {
	s := &models.Scheme{SchemeName: "PM-KISAN", Description: "Direct income support for farmers."}
	clerk := &models.CitizenProfile{Age: 40, Gender: "Male", Occupation: "Clerk"}
	if ok, ex := Eligible(clerk, s); ok || ex.Reason != ExcludedOccupation {
		t.Fatalf("expected occupation exclusion got ok=%v ex=%+v", ok, ex)
	}
	farmer := &models.CitizenProfile{Age: 40, Gender: "Male", Occupation: "Marginal farmer"}
	if ok, _ := Eligible(farmer, s); !ok {
		t.Fatalf("farmer should pass the farmer-keyword gate")
	}
}

func TestVendorSchemeRequiresVendor(t *testing.T) {
	s := &models.Scheme{SchemeName: "PM SVANidhi", Description: "Working capital for street vendors."}
	p := &models.CitizenProfile{Age: 35, Gender: "Female", Occupation: "Teacher"}
	if ok, ex := Eligible(p, s); ok || ex.Reason != ExcludedOccupation {
		t.Fatalf("expected vendor exclusion got ok=%v ex=%+v", ok, ex)
	}
	p.Occupation = "Vegetable vendor"
	if ok, _ := Eligible(p, s); !ok {
		t.Fatalf("vendor should pass")
	}
}

func TestSocialCategoryWording(t *testing.T) {
	s := &models.Scheme{
		SchemeName:  "Van Dhan Yojana",
		Description: "Livelihood generation for Scheduled Tribe communities.",
	}
	general := &models.CitizenProfile{Age: 30, Gender: "Female", SocialCategory: "General"}
	if ok, ex := Eligible(general, s); ok || ex.Reason != ExcludedSocialCategory {
		t.Fatalf("expected ST exclusion got ok=%v ex=%+v", ok, ex)
	}
	tribal := &models.CitizenProfile{Age: 30, Gender: "Female", SocialCategory: "ST"}
	if ok, _ := Eligible(tribal, s); !ok {
		t.Fatalf("ST profile should pass")
	}
}

func TestMinorityWording(t *testing.T) {
	s := &models.Scheme{SchemeName: "Minority Welfare Grant", Description: "Support for minority households."}
	p := &models.CitizenProfile{Age: 30, Gender: "Male"}
	if ok, ex := Eligible(p, s); ok || ex.Reason != ExcludedSocialCategory {
		t.Fatalf("expected minority exclusion got ok=%v ex=%+v", ok, ex)
	}
	p.MinorityStatus = true
	if ok, _ := Eligible(p, s); !ok {
		t.Fatalf("minority profile should pass")
	}
}
