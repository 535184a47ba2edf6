// Package normalize canonicalizes semi-structured catalog and selection
// records: date ranges to "Mon YYYY - Mon YYYY" form, legacy field names to
// renderer field names, and contact links to prefixed URLs. Functions are
// total; input that cannot be parsed is returned unchanged with a logged
// warning, never an error.
package normalize

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

var monthAbbrev = map[string]string{
	"january": "Jan", "february": "Feb", "march": "Mar", "april": "Apr",
	"may": "May", "june": "Jun", "july": "Jul", "august": "Aug",
	"september": "Sep", "october": "Oct", "november": "Nov", "december": "Dec",
	"jan": "Jan", "feb": "Feb", "mar": "Mar", "apr": "Apr",
	"jun": "Jun", "jul": "Jul", "aug": "Aug", "sep": "Sep",
	"oct": "Oct", "nov": "Nov", "dec": "Dec",
}

var monthNames = [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

var (
	reCanonical    = regexp.MustCompile(`^[A-Z][a-z]{2} \d{4} - ([A-Z][a-z]{2} \d{4}|Present)$`)
	reCurrentWord  = regexp.MustCompile(`\b[Cc]urrent\b`)
	reYearRange    = regexp.MustCompile(`^(\d{4})\s*-\s*(\d{4})$`)
	reYearPresent  = regexp.MustCompile(`(?i)^(\d{4})\s*-\s*present`)
	reMonthRange   = regexp.MustCompile(`^([A-Za-z]+)\s+(\d{4})\s*-\s*([A-Za-z]+)\s+(\d{4})$`)
	reMonthPresent = regexp.MustCompile(`(?i)^([A-Za-z]+)\s+(\d{4})\s*-\s*present`)
	reNumericRange = regexp.MustCompile(`^(\d{1,2})/(\d{4})\s*-\s*(\d{1,2})/(\d{4})$`)
	reBareYear     = regexp.MustCompile(`^\d{4}$`)
	reMonthYear    = regexp.MustCompile(`^([A-Za-z]+)\s+(\d{4})$`)
	reFourDigits   = regexp.MustCompile(`\d{4}`)
	rePresentWord  = regexp.MustCompile(`\b([Pp]resent|[Cc]urrent)\b`)
)

// FormatDateRange converts a date range in any of the accepted input forms to
// the renderer form "Mon YYYY - Mon YYYY" or "Mon YYYY - Present". A bare
// year stays a bare year and a bare month-year becomes "Mon YYYY". Anything
// else is returned unchanged.
func FormatDateRange(s string) string {
	if s == "" {
		return ""
	}
	s = strings.TrimSpace(s)

	if reCanonical.MatchString(s) {
		return s
	}

	s = reCurrentWord.ReplaceAllString(s, "Present")
	s = strings.NewReplacer("–", "-", "—", "-", "−", "-").Replace(s)

	if m := reYearRange.FindStringSubmatch(s); m != nil {
		return fmt.Sprintf("Jan %s - Dec %s", m[1], m[2])
	}
	if m := reYearPresent.FindStringSubmatch(s); m != nil {
		return fmt.Sprintf("Jan %s - Present", m[1])
	}
	if m := reMonthRange.FindStringSubmatch(s); m != nil {
		return fmt.Sprintf("%s %s - %s %s", abbrevMonth(m[1]), m[2], abbrevMonth(m[3]), m[4])
	}
	if m := reMonthPresent.FindStringSubmatch(s); m != nil {
		return fmt.Sprintf("%s %s - Present", abbrevMonth(m[1]), m[2])
	}
	if m := reNumericRange.FindStringSubmatch(s); m != nil {
		start, okStart := monthName(m[1])
		end, okEnd := monthName(m[3])
		if okStart && okEnd {
			return fmt.Sprintf("%s %s - %s %s", start, m[2], end, m[4])
		}
	}
	if reBareYear.MatchString(s) {
		return s
	}
	if m := reMonthYear.FindStringSubmatch(s); m != nil {
		return fmt.Sprintf("%s %s", abbrevMonth(m[1]), m[2])
	}

	zap.L().Warn("could not standardize date format", zap.String("date", s))
	return s
}

// ExtractYear returns the first four-digit run in the string, or "".
func ExtractYear(s string) string {
	return reFourDigits.FindString(s)
}

// IsPresent reports whether the date string indicates current employment.
func IsPresent(s string) bool {
	return rePresentWord.MatchString(s)
}

func abbrevMonth(name string) string {
	if abbr, ok := monthAbbrev[strings.ToLower(name)]; ok {
		return abbr
	}
	if len(name) > 3 {
		name = name[:3]
	}
	return strings.ToUpper(name[:1]) + strings.ToLower(name[1:])
}

func monthName(num string) (string, bool) {
	n, err := strconv.Atoi(num)
	if err != nil || n < 1 || n > 12 {
		return "", false
	}
	return monthNames[n-1], true
}
