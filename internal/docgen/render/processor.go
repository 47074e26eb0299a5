package render

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var placeholderRe = regexp.MustCompile(`\{\{([^{}]*)\}\}`)

// Process substitutes every {{dotted.path}} placeholder in tpl with the
// value resolved from ctx. A path that cannot be resolved — a missing
// segment, a non-map midway through the walk, or a nil leaf — leaves the
// placeholder text untouched; templates must round-trip unknown variables
// verbatim rather than erroring or emitting empty strings.
//
// Process never mutates ctx. Time-dependent fields (dates.today,
// superbill.totalFee) are populated once by BuildContext.
func Process(tpl string, ctx Context) string {
	return placeholderRe.ReplaceAllStringFunc(tpl, func(match string) string {
		path := strings.TrimSpace(match[2 : len(match)-2])
		if path == "" {
			return match
		}
		value, ok := resolve(ctx, path)
		if !ok || value == nil {
			return match
		}
		return formatValue(path, value)
	})
}

// resolve walks ctx following the dot-separated path. Segment names are
// case-sensitive.
func resolve(ctx Context, path string) (interface{}, bool) {
	segments := strings.Split(path, ".")
	var current interface{} = map[string]interface{}(ctx)
	for _, seg := range segments {
		m, ok := current.(map[string]interface{})
		if !ok {
			return nil, false
		}
		current, ok = m[seg]
		if !ok {
			return nil, false
		}
	}
	return current, true
}

// formatValue applies the type-specific formatting policy: dates.today gets
// the long form, any other date MM/dd/yyyy; numerics on fee-like paths get
// currency formatting, other numerics are stringified as-is.
func formatValue(path string, value interface{}) string {
	switch v := value.(type) {
	case time.Time:
		if path == "dates.today" {
			return FormatLongDate(v)
		}
		return FormatShortDate(v)
	case float64:
		if isFeePath(path) {
			return FormatCurrency(v)
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		if isFeePath(path) {
			return FormatCurrency(float64(v))
		}
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case int:
		if isFeePath(path) {
			return FormatCurrency(float64(v))
		}
		return strconv.Itoa(v)
	case int64:
		if isFeePath(path) {
			return FormatCurrency(float64(v))
		}
		return strconv.FormatInt(v, 10)
	case string:
		return v
	default:
		return fmt.Sprintf("%v", v)
	}
}

// isFeePath reports whether a resolved numeric should render as currency:
// any path segment equal to fee/totalFee, or charge/cost appearing anywhere
// in the path (case-insensitive).
func isFeePath(path string) bool {
	for _, seg := range strings.Split(path, ".") {
		if seg == "fee" || seg == "totalFee" {
			return true
		}
	}
	lower := strings.ToLower(path)
	return strings.Contains(lower, "charge") || strings.Contains(lower, "cost")
}
