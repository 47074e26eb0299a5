// Package render implements the variable-substitution layer used by letter
// templates: locale-fixed formatters, the per-render variable context built
// from a superbill, and the {{dotted.path}} template processor.
package render

import (
	"fmt"
	"time"
)

// FormatShortDate renders MM/dd/yyyy, the format used throughout cover
// letters and the services table.
func FormatShortDate(t time.Time) string {
	return t.Format("01/02/2006")
}

// FormatLongDate renders the long month-name form ("January 5, 2025"), used
// only for dates.today in processed templates.
func FormatLongDate(t time.Time) string {
	return t.Format("January 2, 2006")
}

// FormatCurrency renders a dollar amount with exactly two decimals and no
// thousands separators.
func FormatCurrency(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}
