package ocr

import "testing"

func TestBestIncomeIncomeContextPriority(t *testing.T) {
	// The bigger bare number loses to the labeled income figure.
	matches := []string{"9,50,000", "annual income Rs. 1,20,000"}
	amt, raw, ok := BestIncomeFromMatches(matches)
	if !ok {
		t.Fatalf("no income chosen")
	}
	if amt != 120000 {
		t.Fatalf("expected 120000 (income context) got %d raw=%s", amt, raw)
	}
}

func TestPlausibilityRejectsIdentifiers(t *testing.T) {
	cases := map[string]bool{
		"Rs 48,000":    true,  // currency hint
		"1,20,000":     true,  // grouped
		"48000":        true,  // round figure
		"984512349876": false, // Aadhaar-length run
		"9876543210":   false, // phone-length run
		"023456":       false, // leading zero
		"250903":       false, // serial-like, not round
	}
	for s, want := range cases {
		if got := isPlausibleIncome(s); got != want {
			t.Fatalf("isPlausibleIncome(%q)=%v want %v", s, got, want)
		}
	}
}
