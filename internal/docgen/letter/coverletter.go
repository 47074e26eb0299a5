// Package letter holds the fixed document generators: the single-patient
// insurance cover letter, the grouped multi-patient variant, and the patient
// reimbursement guide. These build HTML by direct interpolation from typed
// options and do not use the {{...}} placeholder mechanism.
package letter

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/superbill/superbill/internal/docgen/render"
	"github.com/superbill/superbill/internal/domain/superbill"
)

// CoverLetterOptions carries every value the single-patient cover letter
// interpolates. Building the struct first keeps missing fields a compile
// error instead of a silently malformed document.
type CoverLetterOptions struct {
	PatientName        string
	VisitCount         int
	DateRange          string
	TotalFee           float64
	Clinic             superbill.Clinic
	IssueDate          time.Time
	IncludeInvoiceNote bool
}

// OptionsFromSuperbill derives cover-letter options from a record. The visit
// date range sorts a copy of the visits ascending by date; the record's own
// visit order is left alone. With zero visits both range endpoints fall back
// to the current date.
func OptionsFromSuperbill(sb *superbill.Superbill, includeInvoiceNote bool) CoverLetterOptions {
	return optionsAt(sb, includeInvoiceNote, time.Now())
}

func optionsAt(sb *superbill.Superbill, includeInvoiceNote bool, now time.Time) CoverLetterOptions {
	return CoverLetterOptions{
		PatientName:        sb.PatientName,
		VisitCount:         len(sb.Visits),
		DateRange:          visitDateRange(sb.Visits, now),
		TotalFee:           sb.TotalFee(),
		Clinic:             sb.Clinic,
		IssueDate:          sb.IssueDate,
		IncludeInvoiceNote: includeInvoiceNote,
	}
}

func visitDateRange(visits []*superbill.Visit, now time.Time) string {
	if len(visits) == 0 {
		d := render.FormatShortDate(now)
		return d + " - " + d
	}
	sorted := make([]*superbill.Visit, len(visits))
	copy(sorted, visits)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})
	return render.FormatShortDate(sorted[0].Date) + " - " + render.FormatShortDate(sorted[len(sorted)-1].Date)
}

// Generate renders the cover letter as an inline-styled HTML fragment:
// letterhead, date, subject line, a three-paragraph body, an optional
// invoice note, a clinic-info list, and a signature block.
func Generate(opts CoverLetterOptions) string {
	var b strings.Builder

	b.WriteString(`<div style="font-family: Georgia, 'Times New Roman', serif; font-size: 14px; line-height: 1.6; color: #1a1a1a; max-width: 680px;">`)

	writeLetterhead(&b, opts.Clinic)

	fmt.Fprintf(&b, `<p style="margin: 24px 0 8px 0;">%s</p>`, render.FormatLongDate(opts.IssueDate))
	fmt.Fprintf(&b, `<p style="margin: 0 0 24px 0; font-weight: bold;">Re: Insurance Reimbursement Claim for %s</p>`, opts.PatientName)

	b.WriteString(`<p style="margin: 0 0 16px 0;">To Whom It May Concern:</p>`)

	fmt.Fprintf(&b,
		`<p style="margin: 0 0 16px 0;">Please find enclosed a superbill for <strong>%s</strong>, covering <strong>%d visit(s)</strong> rendered between <strong>%s</strong>. The total amount charged for these services is <strong>%s</strong>.</p>`,
		opts.PatientName, opts.VisitCount, opts.DateRange, render.FormatCurrency(opts.TotalFee))

	b.WriteString(`<p style="margin: 0 0 16px 0;">All services listed were medically necessary and were performed in our office. Diagnostic and procedure codes are itemized on the attached superbill for your review.</p>`)

	b.WriteString(`<p style="margin: 0 0 16px 0;">We kindly request that reimbursement be issued directly to the patient. Should you require any additional documentation to process this claim, please contact our office.</p>`)

	if opts.IncludeInvoiceNote {
		b.WriteString(`<p style="margin: 0 0 16px 0; font-style: italic;">Please note: the patient has paid for these services in full. This submission is for patient reimbursement only; no payment to the provider is requested.</p>`)
	}

	writeClinicInfo(&b, opts.Clinic)
	writeSignature(&b, opts.Clinic)

	b.WriteString(`</div>`)
	return b.String()
}

func writeLetterhead(b *strings.Builder, c superbill.Clinic) {
	b.WriteString(`<div style="text-align: center; border-bottom: 2px solid #2c5f7c; padding-bottom: 12px;">`)
	fmt.Fprintf(b, `<div style="font-size: 20px; font-weight: bold; color: #2c5f7c;">%s</div>`, c.Name)
	fmt.Fprintf(b, `<div style="font-size: 12px; color: #555;">%s</div>`, c.Address)
	fmt.Fprintf(b, `<div style="font-size: 12px; color: #555;">%s &bull; %s</div>`, c.Phone, c.Email)
	b.WriteString(`</div>`)
}

func writeClinicInfo(b *strings.Builder, c superbill.Clinic) {
	b.WriteString(`<div style="margin: 24px 0; padding: 12px 16px; background: #f4f7f9; border-left: 3px solid #2c5f7c;">`)
	b.WriteString(`<div style="font-weight: bold; margin-bottom: 6px;">Provider Information</div>`)
	b.WriteString(`<ul style="margin: 0; padding-left: 18px; font-size: 13px;">`)
	fmt.Fprintf(b, `<li>Provider: %s</li>`, c.Provider)
	fmt.Fprintf(b, `<li>Clinic: %s</li>`, c.Name)
	fmt.Fprintf(b, `<li>Tax ID (EIN): %s</li>`, c.EIN)
	fmt.Fprintf(b, `<li>NPI: %s</li>`, c.NPI)
	fmt.Fprintf(b, `<li>Phone: %s</li>`, c.Phone)
	b.WriteString(`</ul></div>`)
}

func writeSignature(b *strings.Builder, c superbill.Clinic) {
	b.WriteString(`<div style="margin-top: 32px;">`)
	b.WriteString(`<p style="margin: 0 0 4px 0;">Sincerely,</p>`)
	fmt.Fprintf(b, `<p style="margin: 24px 0 0 0; font-weight: bold;">%s</p>`, c.Provider)
	fmt.Fprintf(b, `<p style="margin: 0; font-size: 13px; color: #555;">%s</p>`, c.Name)
	b.WriteString(`</div>`)
}
