// Package format renders values for display in the terminal client.
package format

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const (
	InvalidDate = "Invalid Date"
	// DateLayout renders "May 23, 2025, 12:30 PM".
	DateLayout = "Jan 2, 2006, 03:04 PM"
)

// Date formats t in the local time zone. The zero time is reported as
// InvalidDate.
func Date(t time.Time) string {
	if t.IsZero() {
		return InvalidDate
	}
	return t.Local().Format(DateLayout)
}

func printer(locale string) *message.Printer {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.AmericanEnglish
	}
	return message.NewPrinter(tag)
}

// Number formats v with locale grouping and at most maxFrac fraction digits.
// An unknown locale falls back to en-US.
func Number(v float64, locale string, maxFrac int) string {
	return printer(locale).Sprint(number.Decimal(v, number.MaxFractionDigits(maxFrac)))
}

// Currency formats v as an amount of the ISO 4217 currency code. An unknown
// code is rendered with a dollar sign.
func Currency(v float64, code, locale string) string {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return fmt.Sprintf("$%.2f", v)
	}
	return printer(locale).Sprint(currency.Symbol(unit.Amount(v)))
}

// Truncate shortens text to maxLen characters and appends ellipsis when
// anything was cut.
func Truncate(text string, maxLen int, ellipsis string) string {
	if utf8.RuneCountInString(text) <= maxLen {
		return text
	}
	r := []rune(text)
	return string(r[:maxLen]) + ellipsis
}

// TitleCase upper-cases the first letter of each word and lower-cases the
// rest.
func TitleCase(s string) string {
	return cases.Title(language.Und).String(s)
}

// Duration renders d as "1d 2h 3m 4s", omitting zero parts. Negative values
// render as "0s".
func Duration(d time.Duration) string {
	if d < 0 {
		return "0s"
	}
	days := d / (24 * time.Hour)
	hours := (d / time.Hour) % 24
	minutes := (d / time.Minute) % 60
	seconds := (d / time.Second) % 60

	var parts []string
	if days > 0 {
		parts = append(parts, fmt.Sprintf("%dd", days))
	}
	if hours > 0 {
		parts = append(parts, fmt.Sprintf("%dh", hours))
	}
	if minutes > 0 {
		parts = append(parts, fmt.Sprintf("%dm", minutes))
	}
	if seconds > 0 || len(parts) == 0 {
		parts = append(parts, fmt.Sprintf("%ds", seconds))
	}
	return strings.Join(parts, " ")
}
