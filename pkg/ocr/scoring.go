package ocr

import "strings"

// BestIncomeFromMatches selects the best income candidate using context
// priorities: explicit currency markers and "annual/total income" wording beat
// bare numbers, grouped figures beat plain digit runs.
func BestIncomeFromMatches(matches []string) (int64, string, bool) {
	type cand struct {
		amt   int64
		raw   string
		score int
	}
	scoreFor := func(raw string) int {
		s := 0
		low := strings.ToLower(raw)
		if strings.Contains(low, "rs") || strings.Contains(low, "inr") || strings.Contains(raw, "₹") {
			s += 10
		}
		if strings.Contains(low, "annual") || strings.Contains(low, "total") {
			s += 8
		}
		if strings.Contains(low, "income") {
			s += 6
		}
		if strings.ContainsAny(raw, ".,") {
			s += 5
		}
		if len(onlyDigits(raw)) >= 5 {
			s += 1
		}
		return s
	}
	var cands []cand
	for _, m := range matches {
		amt, err := ParseIncomeFromMatch(m)
		if err != nil || amt <= 0 {
			continue
		}
		cands = append(cands, cand{amt: amt, raw: m, score: scoreFor(m)})
	}
	if len(cands) == 0 {
		return 0, "", false
	}
	best := cands[0]
	for _, c := range cands[1:] {
		switch {
		case c.score > best.score:
			best = c
		case c.score == best.score && c.amt > best.amt:
			best = c
		}
	}
	return best.amt, best.raw, true
}
