package render

import (
	"testing"
	"time"

	"github.com/superbill/superbill/internal/domain/superbill"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestBuildContextNameSplitting(t *testing.T) {
	cases := []struct {
		full, first, last string
	}{
		{"Jane Doe", "Jane", "Doe"},
		{"Jane van der Berg", "Jane", "van der Berg"},
		{"Cher", "Cher", ""},
		{"  Jane Doe  ", "Jane", "Doe"},
	}
	for _, c := range cases {
		sb := &superbill.Superbill{PatientName: c.full}
		ctx := BuildContextAt(sb, date(2025, time.March, 1))
		patient := ctx["patient"].(map[string]interface{})
		if patient["firstName"] != c.first || patient["lastName"] != c.last {
			t.Errorf("%q: got (%v, %v), want (%q, %q)",
				c.full, patient["firstName"], patient["lastName"], c.first, c.last)
		}
		if patient["salutation_name"] != c.first {
			t.Errorf("%q: salutation_name = %v", c.full, patient["salutation_name"])
		}
	}
}

func TestBuildContextEmptyVisitsFallsBackToNow(t *testing.T) {
	now := date(2025, time.March, 1)
	sb := &superbill.Superbill{PatientName: "Jane Doe"}
	ctx := BuildContextAt(sb, now)
	s := ctx["superbill"].(map[string]interface{})
	if !s["earliestDate"].(time.Time).Equal(now) || !s["latestDate"].(time.Time).Equal(now) {
		t.Errorf("empty visits: earliest=%v latest=%v, want both %v",
			s["earliestDate"], s["latestDate"], now)
	}
	if s["visits"] != 0 {
		t.Errorf("visits = %v", s["visits"])
	}
}

func TestBuildContextVisitAggregates(t *testing.T) {
	sb := &superbill.Superbill{
		PatientName: "Jane Doe",
		Visits: []*superbill.Visit{
			{Date: date(2025, time.February, 10), Fee: 90},
			{Date: date(2025, time.January, 5), Lines: []superbill.ServiceLine{
				{Code: "98940", Fee: 45},
				{Code: "97110", Fee: 15},
			}},
		},
	}
	ctx := BuildContextAt(sb, date(2025, time.March, 1))
	s := ctx["superbill"].(map[string]interface{})

	if s["totalFee"] != float64(150) {
		t.Errorf("totalFee = %v, want 150", s["totalFee"])
	}
	if !s["earliestDate"].(time.Time).Equal(date(2025, time.January, 5)) {
		t.Errorf("earliestDate = %v", s["earliestDate"])
	}
	if !s["latestDate"].(time.Time).Equal(date(2025, time.February, 10)) {
		t.Errorf("latestDate = %v", s["latestDate"])
	}
	if s["visitDates"] != "02/10/2025, 01/05/2025" {
		t.Errorf("visitDates = %q", s["visitDates"])
	}
}

func TestBuildContextDOBOmittedWhenNil(t *testing.T) {
	sb := &superbill.Superbill{PatientName: "Jane Doe"}
	ctx := BuildContextAt(sb, date(2025, time.March, 1))
	patient := ctx["patient"].(map[string]interface{})
	if _, ok := patient["dob"]; ok {
		t.Error("dob key present for nil DOB")
	}

	dob := date(1990, time.June, 15)
	sb.PatientDOB = &dob
	ctx = BuildContextAt(sb, date(2025, time.March, 1))
	if got := Process("{{patient.dob}}", ctx); got != "06/15/1990" {
		t.Errorf("patient.dob = %q", got)
	}
}

func TestBuildContextTodayLongForm(t *testing.T) {
	sb := &superbill.Superbill{PatientName: "Jane Doe"}
	ctx := BuildContextAt(sb, date(2025, time.March, 1))
	if got := Process("{{dates.today}}", ctx); got != "March 1, 2025" {
		t.Errorf("dates.today = %q", got)
	}
}
