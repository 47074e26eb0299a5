package letter

import (
	"strings"
	"testing"
	"time"

	"github.com/superbill/superbill/internal/domain/superbill"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

var testClinic = superbill.Clinic{
	Name:     "Back In Line Chiropractic",
	Address:  "100 Main St, Springfield, IL 62701",
	Phone:    "(555) 010-0100",
	Email:    "billing@backinline.example",
	Provider: "Dr. Sam Rivera, DC",
	EIN:      "12-3456789",
	NPI:      "1234567890",
}

func TestOptionsFromSuperbillSortsCopyOfVisits(t *testing.T) {
	sb := &superbill.Superbill{
		PatientName: "Jane Doe",
		Clinic:      testClinic,
		IssueDate:   day(2025, time.March, 1),
		Visits: []*superbill.Visit{
			{Date: day(2025, time.February, 10), Fee: 75},
			{Date: day(2025, time.January, 5), Fee: 50},
		},
	}
	opts := OptionsFromSuperbill(sb, false)

	if opts.DateRange != "01/05/2025 - 02/10/2025" {
		t.Errorf("DateRange = %q", opts.DateRange)
	}
	if opts.TotalFee != 125 {
		t.Errorf("TotalFee = %v", opts.TotalFee)
	}
	if !sb.Visits[0].Date.Equal(day(2025, time.February, 10)) {
		t.Error("record's visit order was mutated")
	}
}

func TestOptionsFromSuperbillEmptyVisitsUsesNow(t *testing.T) {
	sb := &superbill.Superbill{PatientName: "Jane Doe", Clinic: testClinic}
	opts := optionsAt(sb, false, day(2025, time.March, 1))
	if opts.DateRange != "03/01/2025 - 03/01/2025" {
		t.Errorf("DateRange = %q", opts.DateRange)
	}
}

func TestGenerateInvoiceNoteGating(t *testing.T) {
	sb := &superbill.Superbill{
		PatientName: "Jane Doe",
		Clinic:      testClinic,
		IssueDate:   day(2025, time.March, 1),
		Visits:      []*superbill.Visit{{Date: day(2025, time.January, 5), Fee: 50}},
	}
	const note = "paid for these services in full"

	with := Generate(OptionsFromSuperbill(sb, true))
	if !strings.Contains(with, note) {
		t.Error("invoice note missing when requested")
	}
	without := Generate(OptionsFromSuperbill(sb, false))
	if strings.Contains(without, note) {
		t.Error("invoice note present when not requested")
	}
}

func TestGenerateInterpolatesAggregates(t *testing.T) {
	sb := &superbill.Superbill{
		PatientName: "Jane Doe",
		Clinic:      testClinic,
		IssueDate:   day(2025, time.March, 1),
		Visits: []*superbill.Visit{
			{Date: day(2025, time.January, 5), Fee: 50},
			{Date: day(2025, time.February, 10), Fee: 75},
		},
	}
	html := Generate(OptionsFromSuperbill(sb, false))

	for _, want := range []string{
		"<strong>Jane Doe</strong>",
		"<strong>2 visit(s)</strong>",
		"<strong>$125.00</strong>",
		"March 1, 2025",
		testClinic.EIN,
		testClinic.NPI,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("cover letter missing %q", want)
		}
	}
}

func TestGenerateGroupedEmptyInput(t *testing.T) {
	if got := GenerateGrouped(nil, false); got != "" {
		t.Errorf("got %q, want empty string", got)
	}
	if got := GenerateGrouped([]*superbill.Superbill{}, true); got != "" {
		t.Errorf("got %q, want empty string", got)
	}
}

func TestGenerateGroupedPatientTotals(t *testing.T) {
	records := []*superbill.Superbill{
		{
			PatientName: "Jane Doe",
			Clinic:      testClinic,
			Visits: []*superbill.Visit{
				{Date: day(2025, time.January, 5), Fee: 50},
				{Date: day(2025, time.January, 12), Fee: 75},
			},
		},
		{
			PatientName: "Jane Doe",
			Clinic:      testClinic,
			Visits: []*superbill.Visit{
				{Date: day(2025, time.February, 3), Fee: 25},
			},
		},
	}
	html := generateGroupedAt(records, false, day(2025, time.March, 1))

	for _, want := range []string{
		"Total visits: 3",
		"Total charges: $150.00",
		"01/05/2025 - 02/03/2025",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("grouped letter missing %q", want)
		}
	}
}

func TestGenerateGroupedFirstSeenOrderAndFirstClinic(t *testing.T) {
	otherClinic := testClinic
	otherClinic.Name = "Other Clinic"

	records := []*superbill.Superbill{
		{PatientName: "Bob Ray", Clinic: testClinic},
		{PatientName: "Ann Lee", Clinic: otherClinic},
		{PatientName: "Bob Ray", Clinic: otherClinic},
	}
	html := generateGroupedAt(records, false, day(2025, time.March, 1))

	bob := strings.Index(html, "Bob Ray")
	ann := strings.Index(html, "Ann Lee")
	if bob == -1 || ann == -1 || bob > ann {
		t.Errorf("groups not in first-seen order (bob=%d ann=%d)", bob, ann)
	}
	if strings.Contains(html, "Other Clinic") {
		t.Error("header should use the first record's clinic only")
	}
	if strings.Count(html, "2 Patient(s)") != 1 {
		t.Error("subject line should count distinct patients")
	}
}

func TestReimbursementGuideSumsLegacyFees(t *testing.T) {
	sb := &superbill.Superbill{
		PatientName: "Jane Doe",
		Clinic:      testClinic,
		Visits: []*superbill.Visit{
			// Itemized lines disagree with the legacy fee; the guide trusts
			// the legacy field.
			{Date: day(2025, time.January, 5), Fee: 50, Lines: []superbill.ServiceLine{{Code: "98940", Fee: 999}}},
			{Date: day(2025, time.February, 10), Fee: 75},
		},
	}
	html := generateReimbursementGuideAt(sb, day(2025, time.March, 1))

	if !strings.Contains(html, "Total charges: $125.00") {
		t.Error("guide total should sum legacy visit fees")
	}
	if !strings.Contains(html, "1/5/2025 - 2/10/2025") {
		t.Errorf("guide date range should be unpadded, got:\n%s", snippet(html, "Dates of service"))
	}
}

func TestReimbursementGuideSingleVisitSingleDate(t *testing.T) {
	sb := &superbill.Superbill{
		PatientName: "Jane Doe",
		Clinic:      testClinic,
		Visits:      []*superbill.Visit{{Date: day(2025, time.January, 5), Fee: 50}},
	}
	html := generateReimbursementGuideAt(sb, day(2025, time.March, 1))
	if !strings.Contains(html, "Dates of service: 1/5/2025</li>") {
		t.Errorf("single visit should show one date, got:\n%s", snippet(html, "Dates of service"))
	}
}

func TestReimbursementGuideFixedSections(t *testing.T) {
	sb := &superbill.Superbill{PatientName: "Jane Doe", Clinic: testClinic}
	html := generateReimbursementGuideAt(sb, day(2025, time.March, 1))

	for _, want := range []string{
		"Five Steps to Reimbursement",
		"Important Reminders",
		"Clinic Information for Your Claim Form",
		"Before You Mail It, Check:",
		"Need Help?",
		signatureImagePath,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("guide missing section %q", want)
		}
	}
}

func snippet(html, around string) string {
	i := strings.Index(html, around)
	if i == -1 {
		return "(marker not found)"
	}
	end := i + 120
	if end > len(html) {
		end = len(html)
	}
	return html[i:end]
}
