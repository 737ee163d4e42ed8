// Package util provides shared text helpers for terminal rendering.
package util

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// TruncateANSI truncates a string to maxWidth visual columns, adding "..." if truncated.
// ANSI escape codes and wide characters are accounted for.
func TruncateANSI(s string, maxWidth int) string {
	if maxWidth <= 3 {
		return "..."
	}
	if lipgloss.Width(s) <= maxWidth {
		return s
	}
	// ansi.Truncate includes the tail in the final width calculation
	return ansi.Truncate(s, maxWidth, "...")
}

// Wrap word-wraps s to width columns, preserving ANSI styling.
// A non-positive width returns s unchanged.
func Wrap(s string, width int) string {
	if width <= 0 {
		return s
	}
	return ansi.Wordwrap(s, width, "")
}

// StripANSI removes all escape sequences from s.
func StripANSI(s string) string {
	return ansi.Strip(s)
}

// moneyPrinter formats amounts with English digit grouping.
var moneyPrinter = message.NewPrinter(language.English)

// FormatMoney renders an amount with its currency code, e.g. "EUR 1,427".
// Amounts are rounded to cents and whole amounts drop the cents. Codes are
// canonicalized through ISO 4217; an unrecognized code is shown as given.
func FormatMoney(amount float64, currency string) string {
	code := currencyCode(currency)
	cents := math.Round(amount * 100)
	if cents == 0 {
		cents = 0 // normalizes -0
	}
	if math.Mod(cents, 100) == 0 {
		return moneyPrinter.Sprintf("%s %.0f", code, cents/100)
	}
	return moneyPrinter.Sprintf("%s %.2f", code, cents/100)
}

func currencyCode(code string) string {
	code = strings.TrimSpace(code)
	if code == "" {
		return currency.USD.String()
	}
	unit, err := currency.ParseISO(code)
	if err != nil {
		return code
	}
	return unit.String()
}
