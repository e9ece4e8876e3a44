// Package format turns raw configuration values into display strings.
package format

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"bundesland.at/internal/models"
)

const (
	currencySuffix = "€"
	areaSuffix     = " km²"

	// maxFractionDigits mirrors the default of a plain decimal number format.
	maxFractionDigits = 3

	// Largest float64 range in which every integer is exact.
	maxExactInteger = 1 << 53
)

// printer is safe for concurrent use once created.
var printer = message.NewPrinter(language.English)

// FormatField renders the raw value of a field for display. GDP, Population and
// Area are formatted as grouped numbers; every other label passes through unchanged.
func FormatField(label, raw string) string {
	switch label {
	case models.LabelGDP:
		return FormatNumber(raw) + currencySuffix
	case models.LabelPopulation:
		return FormatNumber(raw)
	case models.LabelArea:
		return FormatNumber(raw) + areaSuffix
	default:
		return raw
	}
}

// FormatNumber parses raw with ParseNumber and formats it with thousands grouping.
// Values that are not numbers render as "NaN".
func FormatNumber(raw string) string {
	return formatFloat(ParseNumber(raw))
}

// ParseNumber converts a configuration value into a number. Surrounding
// whitespace is ignored and an empty value is zero. Anything that is not a
// decimal number (or "Infinity") yields NaN instead of an error.
func ParseNumber(raw string) float64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0
	}

	unsigned := s
	if s[0] == '+' || s[0] == '-' {
		unsigned = s[1:]
	}
	if unsigned == "Infinity" {
		if s[0] == '-' {
			return math.Inf(-1)
		}
		return math.Inf(1)
	}
	// ParseFloat also accepts "inf", "nan" and hex mantissas; only plain decimals are numbers here.
	if unsigned == "" || !(isDigit(unsigned[0]) || unsigned[0] == '.') || strings.ContainsAny(unsigned, "xXpP_") {
		return math.NaN()
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		if numErr, ok := err.(*strconv.NumError); ok && numErr.Err == strconv.ErrRange {
			return f
		}
		return math.NaN()
	}
	return f
}

// IsNumeric reports whether raw parses to a finite number or an infinity.
func IsNumeric(raw string) bool {
	return !math.IsNaN(ParseNumber(raw))
}

func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "∞"
	case math.IsInf(f, -1):
		return "-∞"
	}

	if f == 0 && math.Signbit(f) {
		return "-0"
	}
	if math.Abs(f) >= maxExactInteger {
		// Every float64 this large is an integer. The printer would spell out
		// its exact binary value, so use the shortest digits that round-trip.
		digits := strconv.FormatFloat(math.Abs(f), 'f', -1, 64)
		if f < 0 {
			return "-" + groupThousands(digits)
		}
		return groupThousands(digits)
	}
	if f == math.Trunc(f) {
		return printer.Sprintf("%d", int64(f))
	}
	return printer.Sprint(number.Decimal(f, number.MaxFractionDigits(maxFractionDigits)))
}

// groupThousands inserts English group separators into a string of digits.
func groupThousands(digits string) string {
	var b strings.Builder
	b.Grow(len(digits) + len(digits)/3)
	for i := 0; i < len(digits); i++ {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteByte(digits[i])
	}
	return b.String()
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
