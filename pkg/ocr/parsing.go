package ocr

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var paiseRE = regexp.MustCompile(`[.,]\d{2}$`)

// ParseIncomeFromMatch normalizes a matched substring into whole rupees.
// Both Indian (1,50,000) and western (150,000) grouping collapse the same way
// once separators are stripped; a trailing two-digit decimal part (paise) is
// dropped first so "1,50,000.00" parses as 150000.
func ParseIncomeFromMatch(found string) (int64, error) {
	trimmed := strings.TrimSpace(found)
	if trimmed == "" {
		return 0, fmt.Errorf("empty match")
	}
	if paiseRE.MatchString(trimmed) {
		cut := strings.LastIndexAny(trimmed, ".,")
		trimmed = trimmed[:cut]
	}
	digits := onlyDigits(trimmed)
	if digits == "" {
		return 0, fmt.Errorf("no digits in %q", found)
	}
	v, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse income %q: %w", digits, err)
	}
	if v < 0 {
		v = -v
	}
	return v, nil
}

var lakhRE = regexp.MustCompile(`(?i)\b([0-9]{1,3}(?:\.[0-9]{1,2})?)\s*(?:lakh|lakhs|lac|lacs)\b`)

// extractLakh handles written-out amounts like "1.5 lakh" or "2 lakhs"
// (1 lakh = 100000). Returns (amount, raw) or (0, "").
func extractLakh(text string) (int64, string) {
	m := lakhRE.FindStringSubmatch(text)
	if len(m) < 2 {
		return 0, ""
	}
	f, err := strconv.ParseFloat(m[1], 64)
	if err != nil || f <= 0 || f > 100 {
		return 0, ""
	}
	return int64(f * 100000), m[0]
}
