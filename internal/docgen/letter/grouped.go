package letter

import (
	"fmt"
	"strings"
	"time"

	"github.com/superbill/superbill/internal/docgen/render"
	"github.com/superbill/superbill/internal/domain/superbill"
)

type patientGroup struct {
	name      string
	visits    int
	total     float64
	dateRange string
}

// GenerateGrouped renders one cover letter covering several records, with a
// bordered sub-section per distinct patient. An empty input yields an empty
// string. Records group by exact patient-name match, preserving the order in
// which each distinct name first appears. The header and trailer use the
// first record's clinic fields; clinic agreement across records is assumed,
// not checked.
func GenerateGrouped(records []*superbill.Superbill, includeInvoiceNote bool) string {
	return generateGroupedAt(records, includeInvoiceNote, time.Now())
}

func generateGroupedAt(records []*superbill.Superbill, includeInvoiceNote bool, now time.Time) string {
	if len(records) == 0 {
		return ""
	}

	groups := groupByPatient(records, now)
	clinic := records[0].Clinic

	var b strings.Builder
	b.WriteString(`<div style="font-family: Georgia, 'Times New Roman', serif; font-size: 14px; line-height: 1.6; color: #1a1a1a; max-width: 680px;">`)

	writeLetterhead(&b, clinic)

	fmt.Fprintf(&b, `<p style="margin: 24px 0 8px 0;">%s</p>`, render.FormatLongDate(now))
	fmt.Fprintf(&b, `<p style="margin: 0 0 24px 0; font-weight: bold;">Re: Insurance Reimbursement Claims for %d Patient(s)</p>`, len(groups))

	b.WriteString(`<p style="margin: 0 0 16px 0;">To Whom It May Concern:</p>`)
	b.WriteString(`<p style="margin: 0 0 16px 0;">Please find enclosed superbills for the patients listed below. All services were medically necessary and were performed in our office; diagnostic and procedure codes are itemized on the attached superbills.</p>`)

	for _, g := range groups {
		b.WriteString(`<div style="border: 1px solid #c8d4db; border-radius: 4px; padding: 12px 16px; margin: 0 0 12px 0;">`)
		fmt.Fprintf(&b, `<div style="font-weight: bold; color: #2c5f7c; margin-bottom: 4px;">%s</div>`, g.name)
		b.WriteString(`<ul style="margin: 0; padding-left: 18px; font-size: 13px;">`)
		fmt.Fprintf(&b, `<li>Total visits: %d</li>`, g.visits)
		fmt.Fprintf(&b, `<li>Dates of service: %s</li>`, g.dateRange)
		fmt.Fprintf(&b, `<li>Total charges: %s</li>`, render.FormatCurrency(g.total))
		b.WriteString(`</ul></div>`)
	}

	if includeInvoiceNote {
		b.WriteString(`<p style="margin: 16px 0; font-style: italic;">Please note: the patients have paid for these services in full. These submissions are for patient reimbursement only; no payment to the provider is requested.</p>`)
	}

	writeClinicInfo(&b, clinic)
	writeSignature(&b, clinic)

	b.WriteString(`</div>`)
	return b.String()
}

// groupByPatient buckets records by exact patient-name match in first-seen
// order. Per group it sums visit counts and visit fees and computes the
// min/max date across the union of the group's visits, falling back to now
// when the group has no visits at all.
func groupByPatient(records []*superbill.Superbill, now time.Time) []patientGroup {
	index := make(map[string]int)
	var groups []patientGroup
	visitsByName := make(map[string][]*superbill.Visit)

	for _, rec := range records {
		i, ok := index[rec.PatientName]
		if !ok {
			i = len(groups)
			index[rec.PatientName] = i
			groups = append(groups, patientGroup{name: rec.PatientName})
		}
		groups[i].visits += len(rec.Visits)
		for _, v := range rec.Visits {
			groups[i].total += v.TotalFee()
		}
		visitsByName[rec.PatientName] = append(visitsByName[rec.PatientName], rec.Visits...)
	}

	for i := range groups {
		groups[i].dateRange = visitDateRange(visitsByName[groups[i].name], now)
	}
	return groups
}
