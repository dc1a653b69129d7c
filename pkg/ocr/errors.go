package ocr

import "errors"

// ErrNoIncome is returned when no plausible annual income figure can be extracted.
var ErrNoIncome = errors.New("no income figure detected")
