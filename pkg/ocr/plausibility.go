package ocr

import "strings"

// isPlausibleIncome decides whether a matched numeric substring likely
// represents an annual income rather than an Aadhaar number, phone number,
// certificate serial, or date fragment. Conservative on purpose: prefer
// strings carrying a currency hint or grouping separators, reject long
// digit-only runs (Aadhaar is 12 digits, phones 10) and leading zeros.
func isPlausibleIncome(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	low := strings.ToLower(s)
	if strings.Contains(low, "rs") || strings.Contains(low, "inr") || strings.Contains(s, "₹") {
		return true
	}
	d := onlyDigits(s)
	if d == "" || d[0] == '0' {
		return false
	}
	if strings.ContainsAny(s, ".,") {
		return len(d) >= 4 && len(d) <= 8
	}
	if len(d) < 4 || len(d) > 7 {
		return false
	}
	// Bare mid-size digit runs are usually serials unless they end on a round
	// figure the way declared incomes do.
	if len(d) >= 6 && !strings.HasSuffix(d, "00") {
		return false
	}
	return true
}
