// Package printable assembles the full printable document: cover letter plus
// itemized superbill, as class-based HTML paired with screen and print style
// sheets. The same combined document feeds both the print view and the PDF
// export, so the two paths stay visually equivalent.
package printable

import (
	"fmt"
	"strings"

	"github.com/superbill/superbill/internal/docgen/letter"
	"github.com/superbill/superbill/internal/docgen/render"
	"github.com/superbill/superbill/internal/domain/superbill"
)

// Document holds the two generated fragments so callers can embed them
// separately or as one combined page.
type Document struct {
	CoverLetterHTML string
	SuperbillHTML   string
}

// Options controls printable assembly.
type Options struct {
	IncludeInvoiceNote bool
}

// Generate builds the printable fragments for one record.
func Generate(sb *superbill.Superbill, opts Options) Document {
	return Document{
		CoverLetterHTML: letter.Generate(letter.OptionsFromSuperbill(sb, opts.IncludeInvoiceNote)),
		SuperbillHTML:   superbillHTML(sb),
	}
}

// Combined wraps both fragments in a complete HTML page carrying the screen
// and print style sheets, with a forced page break between the letter and
// the superbill.
func (d Document) Combined() string {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<title>Superbill</title>\n<style>\n")
	b.WriteString(ScreenCSS)
	b.WriteString("\n")
	b.WriteString(PrintCSS)
	b.WriteString("\n</style>\n</head>\n<body>\n")
	b.WriteString(`<div class="document-page">`)
	b.WriteString(d.CoverLetterHTML)
	b.WriteString(`</div>`)
	b.WriteString(`<div class="page-break"></div>`)
	b.WriteString(`<div class="document-page">`)
	b.WriteString(d.SuperbillHTML)
	b.WriteString(`</div>`)
	b.WriteString("\n</body>\n</html>\n")
	return b.String()
}

// superbillHTML renders the itemized superbill: header, patient block, one
// section per visit with its diagnosis codes and service rows, and a grand
// total.
func superbillHTML(sb *superbill.Superbill) string {
	var b strings.Builder

	b.WriteString(`<div class="superbill">`)

	b.WriteString(`<div class="sb-header">`)
	fmt.Fprintf(&b, `<div class="sb-clinic-name">%s</div>`, sb.Clinic.Name)
	fmt.Fprintf(&b, `<div class="sb-clinic-meta">%s</div>`, sb.Clinic.Address)
	fmt.Fprintf(&b, `<div class="sb-clinic-meta">%s &bull; %s</div>`, sb.Clinic.Phone, sb.Clinic.Email)
	fmt.Fprintf(&b, `<div class="sb-clinic-meta">Provider: %s &bull; EIN: %s &bull; NPI: %s</div>`,
		sb.Clinic.Provider, sb.Clinic.EIN, sb.Clinic.NPI)
	b.WriteString(`</div>`)

	b.WriteString(`<div class="sb-patient">`)
	fmt.Fprintf(&b, `<div><span class="sb-label">Patient:</span> %s</div>`, sb.PatientName)
	if sb.PatientDOB != nil {
		fmt.Fprintf(&b, `<div><span class="sb-label">Date of birth:</span> %s</div>`, render.FormatShortDate(*sb.PatientDOB))
	}
	fmt.Fprintf(&b, `<div><span class="sb-label">Statement date:</span> %s</div>`, render.FormatShortDate(sb.IssueDate))
	b.WriteString(`</div>`)

	for _, v := range sb.Visits {
		writeVisit(&b, v)
	}

	fmt.Fprintf(&b, `<div class="sb-grand-total">Total charges: %s</div>`, render.FormatCurrency(sb.TotalFee()))

	b.WriteString(`</div>`)
	return b.String()
}

func writeVisit(b *strings.Builder, v *superbill.Visit) {
	b.WriteString(`<div class="sb-visit">`)
	fmt.Fprintf(b, `<div class="sb-visit-date">Date of service: %s</div>`, render.FormatShortDate(v.Date))

	if len(v.ICDCodes) > 0 {
		fmt.Fprintf(b, `<div class="sb-codes">Diagnosis (ICD-10): %s</div>`, strings.Join(v.ICDCodes, ", "))
	}
	if len(v.Complaints) > 0 {
		fmt.Fprintf(b, `<div class="sb-codes">Complaints: %s</div>`, strings.Join(v.Complaints, ", "))
	}

	rows := v.ServiceRows()
	if len(rows) > 0 {
		b.WriteString(`<table class="sb-services"><thead><tr><th>CPT Code</th><th>Description</th><th class="sb-fee">Fee</th></tr></thead><tbody>`)
		for _, r := range rows {
			fmt.Fprintf(b, `<tr><td>%s</td><td>%s</td><td class="sb-fee">%s</td></tr>`,
				r.Code, r.Description, render.FormatCurrency(r.Fee))
		}
		b.WriteString(`</tbody></table>`)
	}

	fmt.Fprintf(b, `<div class="sb-visit-total">Visit total: %s</div>`, render.FormatCurrency(v.TotalFee()))

	if v.Notes != "" {
		fmt.Fprintf(b, `<div class="sb-notes">Notes: %s</div>`, v.Notes)
	}
	b.WriteString(`</div>`)
}
