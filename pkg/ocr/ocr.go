package ocr

import (
	"fmt"
	"log"
	"os"
	"regexp"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/otiai10/gosseract/v2"
)

// candidate patterns, tried in order of specificity. The labeled patterns keep
// their label in the match so scoring can prioritize "annual income" context.
var incomePatterns = []string{
	`(?i)((?:annual|total|yearly)?\s*income[:\s]*(?:rs\.?|inr|₹)?\s*[0-9][0-9.,]*)`,
	`(?i)((?:rs\.?|inr|₹)\s*[0-9][0-9.,]*)`,
	`([0-9]{1,3}(?:,[0-9]{2,3})+(?:\.[0-9]{2})?)`,
	`([0-9]{5,})`,
}

// ExtractIncomeFromImage OCRs an income-certificate scan and extracts the
// declared annual income in whole rupees, with a rough confidence in [0,1].
// The raw matched substring is returned for audit logging.
func ExtractIncomeFromImage(path string) (int64, float64, string, error) {
	text, err := recognize(path)
	if err != nil {
		return 0, 0, "", err
	}
	text = normalizeText(text)
	log.Printf("income OCR %s snippet=%q", path, snippet(text, 180))

	var matches []string
	seen := map[string]struct{}{}
	for _, p := range incomePatterns {
		re := regexp.MustCompile(p)
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			if len(m) < 2 {
				continue
			}
			s := strings.TrimSpace(m[1])
			if s == "" {
				continue
			}
			if _, ok := seen[s]; ok {
				continue
			}
			seen[s] = struct{}{}
			if isPlausibleIncome(s) {
				matches = append(matches, s)
			}
		}
	}

	if amt, raw, ok := BestIncomeFromMatches(matches); ok {
		conf := 0.4
		low := strings.ToLower(raw)
		if strings.Contains(low, "rs") || strings.Contains(low, "inr") || strings.Contains(raw, "₹") {
			conf = 0.75
		}
		if strings.Contains(low, "income") {
			conf = 0.9
		}
		return amt, conf, raw, nil
	}

	// Certificates sometimes spell the figure out ("annual income 1.5 lakh").
	if amt, raw := extractLakh(text); amt > 0 {
		return amt, 0.5, raw, nil
	}
	return 0, 0, "", ErrNoIncome
}

// recognize runs Tesseract over a preprocessed copy of the image.
func recognize(path string) (string, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return "", fmt.Errorf("open image: %w", err)
	}
	prepared := prepare(img)

	tmp := path
	if f, err := os.CreateTemp("", "income-*.png"); err == nil {
		tmp = f.Name()
		_ = f.Close()
		if err := imaging.Save(prepared, tmp); err != nil {
			tmp = path
		}
		defer func() {
			if tmp != path {
				_ = os.Remove(tmp)
			}
		}()
	}

	client := gosseract.NewClient()
	defer client.Close()
	_ = client.SetLanguage("eng")
	client.SetImage(tmp)
	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("tesseract: %w", err)
	}
	return text, nil
}
