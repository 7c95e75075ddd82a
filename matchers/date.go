package matchers

import (
	"math"
	"regexp"
	"strconv"

	"github.com/katalvlaran/entropass/conf"
	"github.com/katalvlaran/entropass/match"
)

// Year window recognized by the date and year matchers.
const (
	minYear      = 1900
	maxYear      = 2029
	yearSpan     = maxYear - minYear + 1
	twoDigitSpan = 100
)

var (
	// day-month-year or month-day-year with separators
	dmySepPattern = regexp.MustCompile(`\d{1,2}([-/._ ])\d{1,2}([-/._ ])\d{2,4}`)
	// year-first with separators
	ymdSepPattern = regexp.MustCompile(`\d{4}([-/._ ])\d{1,2}([-/._ ])\d{1,2}`)
	// compact eight- and six-digit shapes
	digits8Pattern = regexp.MustCompile(`\d{8}`)
	digits6Pattern = regexp.MustCompile(`\d{6}`)
)

// DateMatcher finds calendar-date shapes: separated forms like
// "13.01.1997" or "1997-01-13" and compact forms like "13011997" or
// "130197". A shape is a candidate only if some day/month/year split is
// plausible (day 1–31, month 1–12, year in the recognized window or any
// two-digit year).
//
// Entropy: log2(31 · 12 · yearSpan) for the date choice (a span of 100
// for two-digit years), plus two bits when separators are present.
type DateMatcher struct{}

// Match implements conf.Matcher.
func (DateMatcher) Match(_ *conf.Configuration, password string) ([]match.Match, error) {
	toRune := byteToRune(password)

	var out []match.Match
	emit := func(b0, b1 int, token string, fourDigitYear, separated bool) {
		span := twoDigitSpan
		if fourDigitYear {
			span = yearSpan
		}
		entropy := math.Log2(31 * 12 * float64(span))
		if separated {
			entropy += 2
		}
		out = append(out, match.Match{
			Kind:    match.KindDate,
			Start:   toRune[b0],
			End:     toRune[b1] - 1,
			Token:   token,
			Entropy: entropy,
		})
	}

	for _, loc := range dmySepPattern.FindAllStringIndex(password, -1) {
		token := password[loc[0]:loc[1]]
		if four, ok := validSeparatedDate(token, false); ok {
			emit(loc[0], loc[1], token, four, true)
		}
	}
	for _, loc := range ymdSepPattern.FindAllStringIndex(password, -1) {
		token := password[loc[0]:loc[1]]
		if four, ok := validSeparatedDate(token, true); ok {
			emit(loc[0], loc[1], token, four, true)
		}
	}
	for _, loc := range digits8Pattern.FindAllStringIndex(password, -1) {
		token := password[loc[0]:loc[1]]
		if validCompactDate(token, true) {
			emit(loc[0], loc[1], token, true, false)
		}
	}
	for _, loc := range digits6Pattern.FindAllStringIndex(password, -1) {
		token := password[loc[0]:loc[1]]
		if validCompactDate(token, false) {
			emit(loc[0], loc[1], token, false, false)
		}
	}

	return out, nil
}

// validSeparatedDate splits token on its separators and checks whether any
// day/month assignment of the two small fields is plausible. yearFirst
// selects the yyyy-m-d shape. The bool result reports a four-digit year.
func validSeparatedDate(token string, yearFirst bool) (bool, bool) {
	fields := splitDateFields(token)
	if len(fields) != 3 {
		return false, false
	}
	var yearField string
	var a, b int
	if yearFirst {
		yearField = fields[0]
		a, b = atoi(fields[1]), atoi(fields[2])
	} else {
		yearField = fields[2]
		a, b = atoi(fields[0]), atoi(fields[1])
	}
	four := len(yearField) == 4
	if four {
		y := atoi(yearField)
		if y < minYear || y > maxYear {
			return false, false
		}
	}

	return four, dayMonthPlausible(a, b)
}

// validCompactDate checks the all-digit shapes: ddmmyyyy, mmddyyyy and
// yyyymmdd for eight digits; ddmmyy, mmddyy and yymmdd for six.
func validCompactDate(token string, fourDigitYear bool) bool {
	if fourDigitYear {
		head, tail := atoi(token[0:4]), atoi(token[4:8])
		if head >= minYear && head <= maxYear && dayMonthPlausible(atoi(token[4:6]), atoi(token[6:8])) {
			return true
		}
		if tail >= minYear && tail <= maxYear && dayMonthPlausible(atoi(token[0:2]), atoi(token[2:4])) {
			return true
		}

		return false
	}

	return dayMonthPlausible(atoi(token[0:2]), atoi(token[2:4])) ||
		dayMonthPlausible(atoi(token[2:4]), atoi(token[4:6]))
}

// dayMonthPlausible reports whether (a, b) reads as day/month in either
// order.
func dayMonthPlausible(a, b int) bool {
	return (a >= 1 && a <= 31 && b >= 1 && b <= 12) || (a >= 1 && a <= 12 && b >= 1 && b <= 31)
}

func splitDateFields(token string) []string {
	var fields []string
	start := 0
	for i, r := range token {
		switch r {
		case '-', '/', '.', '_', ' ':
			fields = append(fields, token[start:i])
			start = i + 1
		}
	}
	fields = append(fields, token[start:])

	return fields
}

func atoi(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return -1
	}

	return n
}
