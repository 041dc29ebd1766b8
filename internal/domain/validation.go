package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	pricePattern = regexp.MustCompile(`^(\d+)(?:\.(\d{1,2}))?$`)
)

// ValidEmail reports whether s looks like an email address
func ValidEmail(s string) bool {
	return emailPattern.MatchString(strings.TrimSpace(s))
}

// Blank reports whether s is empty after trimming
func Blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// PriceCents parses a non-negative decimal price with at most two fraction digits
func PriceCents(s string) (int64, bool) {
	m := pricePattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return 0, false
	}
	whole, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return 0, false
	}
	frac := m[2]
	for len(frac) < 2 {
		frac += "0"
	}
	cents, _ := strconv.ParseInt(frac, 10, 64)
	return whole*100 + cents, true
}

// FormatCents renders cents as a decimal with two fraction digits
func FormatCents(cents int64) string {
	return fmt.Sprintf("%d.%02d", cents/100, cents%100)
}

// NormalizePrice returns the price with exactly two fraction digits
func NormalizePrice(s string) (string, bool) {
	cents, ok := PriceCents(s)
	if !ok {
		return "", false
	}
	return FormatCents(cents), true
}

// ValidateWorkingHours records problems with a working-hours block under the given field prefix
func ValidateWorkingHours(w *WorkingHours, field string, v *ValidationError) {
	if w == nil {
		return
	}
	if err := w.Start.Validate(); err != nil {
		v.Add(field+".start", "must be HH:MM")
	}
	if err := w.End.Validate(); err != nil {
		v.Add(field+".end", "must be HH:MM")
	}
	if w.Start.Validate() == nil && w.End.Validate() == nil && !w.End.IsAfter(w.Start) {
		v.Add(field+".end", "must be after start")
	}
	for _, d := range w.Days {
		if d < 0 || d > 6 {
			v.Add(field+".days", "must contain weekdays 0..6")
			break
		}
	}
}
