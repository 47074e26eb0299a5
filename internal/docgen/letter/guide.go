package letter

import (
	"fmt"
	"strings"
	"time"

	"github.com/superbill/superbill/internal/docgen/render"
	"github.com/superbill/superbill/internal/domain/superbill"
)

// signatureImagePath is the fixed image reference embedded in the guide's
// signature block.
const signatureImagePath = "/assets/provider-signature.png"

// formatGuideDate renders dates the way the reimbursement guide historically
// has: unpadded month and day ("1/5/2025"). This deliberately differs from
// FormatShortDate; the two documents' outputs are kept byte-stable
// independently, so do not unify them.
func formatGuideDate(t time.Time) string {
	return t.Format("1/2/2006")
}

// guideDateRange renders a single date for one visit, otherwise
// "earliest - latest" over the unsorted visit list.
func guideDateRange(visits []*superbill.Visit, now time.Time) string {
	switch len(visits) {
	case 0:
		return formatGuideDate(now)
	case 1:
		return formatGuideDate(visits[0].Date)
	}
	earliest, latest := visits[0].Date, visits[0].Date
	for _, v := range visits[1:] {
		if v.Date.Before(earliest) {
			earliest = v.Date
		}
		if v.Date.After(latest) {
			latest = v.Date
		}
	}
	return formatGuideDate(earliest) + " - " + formatGuideDate(latest)
}

// GenerateReimbursementGuide renders the step-by-step patient reimbursement
// guide for a single record. Total charges sum each visit's legacy fee field
// directly, trusting it over the itemized entries when the two disagree.
func GenerateReimbursementGuide(sb *superbill.Superbill) string {
	return generateReimbursementGuideAt(sb, time.Now())
}

func generateReimbursementGuideAt(sb *superbill.Superbill, now time.Time) string {
	var total float64
	for _, v := range sb.Visits {
		total += v.Fee
	}

	var b strings.Builder
	b.WriteString(`<div style="font-family: Georgia, 'Times New Roman', serif; font-size: 14px; line-height: 1.7; color: #1a1a1a; max-width: 720px;">`)

	b.WriteString(`<h1 style="font-size: 22px; color: #2c5f7c; text-align: center; margin: 0 0 4px 0;">How to Submit Your Superbill for Insurance Reimbursement</h1>`)
	fmt.Fprintf(&b, `<p style="text-align: center; color: #555; font-size: 13px; margin: 0 0 24px 0;">Prepared by %s</p>`, sb.Clinic.Name)

	b.WriteString(`<div style="background: #f4f7f9; border: 1px solid #c8d4db; border-radius: 4px; padding: 12px 16px; margin: 0 0 24px 0;">`)
	b.WriteString(`<div style="font-weight: bold; margin-bottom: 6px;">Your Superbill Summary</div>`)
	b.WriteString(`<ul style="margin: 0; padding-left: 18px; font-size: 13px;">`)
	fmt.Fprintf(&b, `<li>Patient: %s</li>`, sb.PatientName)
	fmt.Fprintf(&b, `<li>Dates of service: %s</li>`, guideDateRange(sb.Visits, now))
	fmt.Fprintf(&b, `<li>Number of visits: %d</li>`, len(sb.Visits))
	fmt.Fprintf(&b, `<li>Total charges: %s</li>`, render.FormatCurrency(total))
	b.WriteString(`</ul></div>`)

	b.WriteString(`<h2 style="font-size: 17px; color: #2c5f7c; margin: 0 0 8px 0;">Five Steps to Reimbursement</h2>`)
	b.WriteString(`<ol style="margin: 0 0 24px 0; padding-left: 22px;">`)
	b.WriteString(`<li style="margin-bottom: 10px;"><strong>Call your insurance company.</strong> Use the member-services number on the back of your insurance card and ask whether your plan covers out-of-network chiropractic care, what your deductible is, and what percentage is reimbursed.</li>`)
	b.WriteString(`<li style="margin-bottom: 10px;"><strong>Request a claim form.</strong> Most insurers use a standard member claim form (often called a CMS-1500 or a member reimbursement form). Many plans let you download it from the member portal.</li>`)
	b.WriteString(`<li style="margin-bottom: 10px;"><strong>Complete the claim form.</strong> Copy the diagnosis (ICD-10) and procedure (CPT) codes, dates of service, and charges exactly as they appear on the attached superbill. Our clinic, tax ID, and provider NPI are listed below.</li>`)
	b.WriteString(`<li style="margin-bottom: 10px;"><strong>Mail or upload your claim.</strong> Attach this superbill and the enclosed cover letter to the claim form and submit it by mail or through your insurer's member portal.</li>`)
	b.WriteString(`<li style="margin-bottom: 10px;"><strong>Track your claim.</strong> Claims are typically processed in 30 to 45 days. If you have not heard back after 45 days, call member services and ask for the claim status.</li>`)
	b.WriteString(`</ol>`)

	b.WriteString(`<h2 style="font-size: 17px; color: #2c5f7c; margin: 0 0 8px 0;">Important Reminders</h2>`)
	b.WriteString(`<ul style="margin: 0 0 24px 0; padding-left: 22px;">`)
	b.WriteString(`<li style="margin-bottom: 6px;">Keep a copy of everything you submit.</li>`)
	b.WriteString(`<li style="margin-bottom: 6px;">You have already paid for these services; reimbursement goes directly to you.</li>`)
	b.WriteString(`<li style="margin-bottom: 6px;">Submission deadlines vary by plan; many require claims within 90 to 180 days of service.</li>`)
	b.WriteString(`<li style="margin-bottom: 6px;">If a claim is denied, you have the right to appeal. Ask your insurer for its appeal process in writing.</li>`)
	b.WriteString(`</ul>`)

	b.WriteString(`<h2 style="font-size: 17px; color: #2c5f7c; margin: 0 0 8px 0;">Clinic Information for Your Claim Form</h2>`)
	b.WriteString(`<div style="background: #f4f7f9; border-left: 3px solid #2c5f7c; padding: 12px 16px; margin: 0 0 24px 0;">`)
	b.WriteString(`<ul style="margin: 0; padding-left: 18px; font-size: 13px;">`)
	fmt.Fprintf(&b, `<li>Clinic: %s</li>`, sb.Clinic.Name)
	fmt.Fprintf(&b, `<li>Address: %s</li>`, sb.Clinic.Address)
	fmt.Fprintf(&b, `<li>Provider: %s</li>`, sb.Clinic.Provider)
	fmt.Fprintf(&b, `<li>Tax ID (EIN): %s</li>`, sb.Clinic.EIN)
	fmt.Fprintf(&b, `<li>NPI: %s</li>`, sb.Clinic.NPI)
	fmt.Fprintf(&b, `<li>Phone: %s</li>`, sb.Clinic.Phone)
	fmt.Fprintf(&b, `<li>Email: %s</li>`, sb.Clinic.Email)
	b.WriteString(`</ul></div>`)

	b.WriteString(`<h2 style="font-size: 17px; color: #2c5f7c; margin: 0 0 8px 0;">Before You Mail It, Check:</h2>`)
	b.WriteString(`<ul style="margin: 0 0 24px 0; padding-left: 22px; list-style: none;">`)
	b.WriteString(`<li style="margin-bottom: 6px;">&#9744; Claim form is completely filled out and signed</li>`)
	b.WriteString(`<li style="margin-bottom: 6px;">&#9744; Superbill is attached</li>`)
	b.WriteString(`<li style="margin-bottom: 6px;">&#9744; Cover letter is attached</li>`)
	b.WriteString(`<li style="margin-bottom: 6px;">&#9744; You kept copies of all documents</li>`)
	b.WriteString(`</ul>`)

	b.WriteString(`<h2 style="font-size: 17px; color: #2c5f7c; margin: 0 0 8px 0;">Need Help?</h2>`)
	fmt.Fprintf(&b, `<p style="margin: 0 0 24px 0;">If your insurer has questions about the services or codes on your superbill, or if you need additional documentation for an appeal, call our office at %s or email %s and we will be glad to assist.</p>`,
		sb.Clinic.Phone, sb.Clinic.Email)

	b.WriteString(`<div style="margin-top: 32px;">`)
	b.WriteString(`<p style="margin: 0 0 4px 0;">Wishing you a smooth reimbursement,</p>`)
	fmt.Fprintf(&b, `<img src="%s" alt="Provider signature" style="height: 48px; margin: 8px 0;" />`, signatureImagePath)
	fmt.Fprintf(&b, `<p style="margin: 0; font-weight: bold;">%s</p>`, sb.Clinic.Provider)
	fmt.Fprintf(&b, `<p style="margin: 0; font-size: 13px; color: #555;">%s</p>`, sb.Clinic.Name)
	b.WriteString(`</div>`)

	b.WriteString(`</div>`)
	return b.String()
}
