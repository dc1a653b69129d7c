// Package chat implements the keyword-search scheme assistant: typo/synonym
// normalization, a small app knowledge base, and a scored search over the
// scheme catalog. It is deliberately free of any model call.
package chat

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Sanl2005/citizen-dna-app/models"
)

// keywordMap folds common typos and synonyms onto the vocabulary the catalog
// actually uses, by appending the target term to the query.
var keywordMap = map[string]string{
	"educatinal": "education", "educatn": "education", "study": "education",
	"scholarship": "education", "student": "education",
	"farmer": "kisan", "farming": "kisan", "crop": "kisan", "agriculture": "kisan",
	"woman": "female", "women": "female", "girl": "female", "mothr": "female",
	"mother": "female", "lady": "female",
	"health": "medical", "hospital": "medical", "illness": "medical",
	"sick": "medical", "doctor": "medical",
	"money": "income", "cash": "income", "pension": "income", "finance": "income",
	"old": "senior", "elderly": "senior",
	"house": "awas", "housing": "awas", "home": "awas",
	"startup": "entrepreneur", "business": "entrepreneur", "loan": "entrepreneur",
	"job": "skill", "training": "skill", "work": "skill",
}

// appKnowledge answers questions about the app itself before any catalog search.
var appKnowledge = map[string]string{
	"digital dna":       "Digital DNA is our unique system that creates a socio-economic profile of you based on age, income, and community to match you with government schemes accurately.",
	"welfare stability": "The Welfare Stability Index (Risk Score) is an AI-calculated metric that indicates your level of need for government support. A higher score means you are a high priority for welfare programs.",
	"risk score":        "Your Risk Score is calculated using a machine learning model trained on citizen records to predict welfare need levels.",
	"apply":             "You can check eligibility details for any scheme in the 'Schemes' tab. Once you see a 'Match', click on it to see the specific benefits and requirements.",
	"profile":           "Your profile is the heart of the app. By providing accurate details about your education, occupation, and family, our AI can find schemes you didn't even know existed.",
	"who made this":     "This app was developed as an AI governance platform to ensure no citizen is left behind in the digital welfare era.",
}

var greetings = []string{"hello", "hi", "hey", "namaste"}

// Reply answers a free-text message against the scheme catalog.
func Reply(message string, schemes []models.Scheme) string {
	query := normalize(message)

	for key, answer := range appKnowledge {
		if strings.Contains(query, key) {
			return "**DNA Assistant:** " + answer
		}
	}

	if top := search(query, schemes); len(top) > 0 {
		var b strings.Builder
		fmt.Fprintf(&b, "I found **%d** relevant matches based on your interest. Our AI matching engine suggests:\n\n", len(top))
		for _, s := range top {
			desc := s.Description
			if len(desc) > 180 {
				desc = desc[:180] + "..."
			}
			fmt.Fprintf(&b, "🏆 **%s**\n_%s_\n📍 %s\n💰 **Benefit:** %s\n\n", s.SchemeName, s.Ministry, desc, s.Benefits)
		}
		b.WriteString("Check your personalized **DNA Match Percentage** for these in the **Schemes tab**.")
		return b.String()
	}

	for _, g := range greetings {
		if strings.Contains(query, g) {
			return "Namaste! I am your AI Citizen DNA Assistant. I can answer questions about Education, Health, Farming, Women's schemes, or how this app works. How can I guide you?"
		}
	}
	if strings.Contains(query, "how do you work") || strings.Contains(query, "how does it work") {
		return "I analyze your 'Digital DNA' (profile) and match it against government eligibility rules. It's fully automated and personalized."
	}
	return "I'm here to help! While I focus on schemes available in our DNA database (like PM-KISAN, Awas Yojana, Health Mission, etc.), I can find more specific gems if you ask about 'Health', 'Farming', or 'Education'. What are you looking for?"
}

// normalize lowercases, fixes "abt", and appends canonical terms for any
// synonym/typo present so downstream matching sees both forms.
func normalize(message string) string {
	q := strings.ToLower(strings.TrimSpace(message))
	q = strings.ReplaceAll(q, "abt ", "about ")
	for term, target := range keywordMap {
		if strings.Contains(q, term) {
			q += " " + target
		}
	}
	return q
}

// search scores every scheme against the query and returns the top three.
func search(query string, schemes []models.Scheme) []models.Scheme {
	type scored struct {
		score  int
		scheme models.Scheme
	}
	words := make([]string, 0, 8)
	for _, w := range strings.Fields(query) {
		if len(w) > 2 {
			words = append(words, w)
		}
	}

	var results []scored
	for _, s := range schemes {
		score := 0
		name := strings.ToLower(s.SchemeName)
		desc := strings.ToLower(s.Description)
		ministry := strings.ToLower(s.Ministry)

		if strings.Contains(query, name) || strings.Contains(name, query) {
			score += 100
		}
		for _, w := range words {
			if strings.Contains(name, w) {
				score += 40
			}
			if strings.Contains(desc, w) {
				score += 20
			}
			if strings.Contains(ministry, w) {
				score += 15
			}
		}
		if strings.Contains(query, "female") && s.RequiredGender != nil && *s.RequiredGender == "Female" {
			score += 50
		}
		if strings.Contains(query, "kisan") && strings.Contains(desc, "farmer") {
			score += 50
		}
		if strings.Contains(query, "education") && (strings.Contains(desc, "student") || strings.Contains(name, "scholarship")) {
			score += 50
		}
		if score > 0 {
			results = append(results, scored{score, s})
		}
	}
	sort.SliceStable(results, func(i, j int) bool { return results[i].score > results[j].score })
	if len(results) > 3 {
		results = results[:3]
	}
	out := make([]models.Scheme, len(results))
	for i, r := range results {
		out[i] = r.scheme
	}
	return out
}
