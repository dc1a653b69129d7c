package ocr

import "testing"

func TestParseIncomeIndianGrouping(t *testing.T) {
	amt, err := ParseIncomeFromMatch("1,50,000")
	if err != nil || amt != 150000 {
		t.Fatalf("expected 150000 got %d err=%v", amt, err)
	}
	amt2, err2 := ParseIncomeFromMatch("Rs. 2,40,000.00")
	if err2 != nil || amt2 != 240000 {
		t.Fatalf("expected 240000 got %d err=%v", amt2, err2)
	}
}

func TestParseIncomeWesternGrouping(t *testing.T) {
	amt, err := ParseIncomeFromMatch("150,000")
	if err != nil || amt != 150000 {
		t.Fatalf("expected 150000 got %d err=%v", amt, err)
	}
}

func TestExtractLakh(t *testing.T) {
	amt, raw := extractLakh("certified that the annual income is 1.5 lakh only")
	if amt != 150000 {
		t.Fatalf("expected 150000 got %d raw=%q", amt, raw)
	}
	if amt, _ := extractLakh("no figure here"); amt != 0 {
		t.Fatalf("expected no lakh match got %d", amt)
	}
}

func TestFormatIndian(t *testing.T) {
	if got := formatIndian("150000"); got != "1,50,000" {
		t.Fatalf("expected 1,50,000 got %s", got)
	}
	if got := formatIndian("999"); got != "999" {
		t.Fatalf("expected 999 got %s", got)
	}
}
