package render

import (
	"testing"
	"time"
)

func testContext() Context {
	return Context{
		"patient": map[string]interface{}{
			"name":      "Jane Ann Doe",
			"firstName": "Jane",
		},
		"superbill": map[string]interface{}{
			"totalFee":  float64(125),
			"visits":    3,
			"issueDate": time.Date(2025, time.January, 5, 0, 0, 0, 0, time.UTC),
		},
		"billing": map[string]interface{}{
			"copayCharge": float64(20),
			"visitCost":   15.5,
			"empty":       nil,
		},
		"dates": map[string]interface{}{
			"today": time.Date(2025, time.January, 5, 0, 0, 0, 0, time.UTC),
		},
	}
}

func TestProcessUnknownPathRoundTrips(t *testing.T) {
	got := Process("{{nope.path}}", testContext())
	if got != "{{nope.path}}" {
		t.Errorf("got %q, want placeholder preserved verbatim", got)
	}
}

func TestProcessPartialPathRoundTrips(t *testing.T) {
	// patient.name resolves to a string; walking further must not panic and
	// must preserve the literal text.
	got := Process("{{patient.name.first}}", testContext())
	if got != "{{patient.name.first}}" {
		t.Errorf("got %q", got)
	}
}

func TestProcessNilLeafRoundTrips(t *testing.T) {
	got := Process("{{billing.empty}}", testContext())
	if got != "{{billing.empty}}" {
		t.Errorf("got %q", got)
	}
}

func TestProcessCurrencyFormatting(t *testing.T) {
	cases := map[string]string{
		"{{superbill.totalFee}}":  "$125.00",
		"{{billing.copayCharge}}": "$20.00",
		"{{billing.visitCost}}":   "$15.50",
	}
	ctx := testContext()
	for tpl, want := range cases {
		if got := Process(tpl, ctx); got != want {
			t.Errorf("Process(%q) = %q, want %q", tpl, got, want)
		}
	}
}

func TestProcessDateFormatting(t *testing.T) {
	ctx := testContext()
	if got := Process("{{dates.today}}", ctx); got != "January 5, 2025" {
		t.Errorf("dates.today = %q, want long form", got)
	}
	if got := Process("{{superbill.issueDate}}", ctx); got != "01/05/2025" {
		t.Errorf("issueDate = %q, want MM/dd/yyyy", got)
	}
}

func TestProcessPlainNumberNoSeparators(t *testing.T) {
	if got := Process("{{superbill.visits}}", testContext()); got != "3" {
		t.Errorf("visits = %q, want 3", got)
	}
}

func TestProcessTrimsWhitespaceInsideBraces(t *testing.T) {
	if got := Process("{{ patient.firstName }}", testContext()); got != "Jane" {
		t.Errorf("got %q", got)
	}
}

func TestProcessMixedTemplate(t *testing.T) {
	tpl := "Dear {{patient.firstName}}, your total is {{superbill.totalFee}} ({{unknown.var}})."
	want := "Dear Jane, your total is $125.00 ({{unknown.var}})."
	if got := Process(tpl, testContext()); got != want {
		t.Errorf("got %q\nwant %q", got, want)
	}
}

func TestProcessDoesNotMutateContext(t *testing.T) {
	ctx := testContext()
	before := len(ctx)
	dates := ctx["dates"].(map[string]interface{})
	today := dates["today"].(time.Time)

	Process("{{dates.today}} {{superbill.totalFee}} {{nope}}", ctx)

	if len(ctx) != before {
		t.Error("top-level keys changed")
	}
	if got := ctx["dates"].(map[string]interface{})["today"].(time.Time); !got.Equal(today) {
		t.Error("dates.today was rewritten")
	}
}

func TestProcessCaseSensitiveSegments(t *testing.T) {
	got := Process("{{patient.FirstName}}", testContext())
	if got != "{{patient.FirstName}}" {
		t.Errorf("segment match must be case-sensitive, got %q", got)
	}
}
