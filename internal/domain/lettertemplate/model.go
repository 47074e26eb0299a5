// Package lettertemplate manages user-editable letter templates: free text
// carrying {{dotted.path}} placeholders resolved against a superbill at
// render time.
package lettertemplate

import (
	"time"

	"github.com/google/uuid"
)

const (
	CategoryCoverLetter  = "cover_letter"
	CategoryAppealLetter = "appeal_letter"
	CategoryGeneral      = "general"
)

type LetterTemplate struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Title     string    `json:"title" db:"title"`
	Category  string    `json:"category" db:"category"`
	Content   string    `json:"content" db:"content"`
	IsDefault bool      `json:"is_default" db:"is_default"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// DefaultTemplates returns the seed set installed on first run.
func DefaultTemplates() []*LetterTemplate {
	return []*LetterTemplate{
		{
			Title:     "Standard Cover Letter",
			Category:  CategoryCoverLetter,
			IsDefault: true,
			Content: `{{dates.today}}

Re: Insurance Reimbursement Claim for {{patient.name}}

To Whom It May Concern:

Please find enclosed a superbill for {{patient.name}}, covering {{superbill.visits}} visit(s) between {{superbill.earliestDate}} and {{superbill.latestDate}}. The total amount charged for these services is {{superbill.totalFee}}.

All services were medically necessary and performed at {{clinic.name}}. Should you require additional documentation, please contact our office at {{clinic.phone}}.

Sincerely,
{{clinic.provider}}
{{clinic.name}}
Tax ID: {{clinic.ein}} | NPI: {{clinic.npi}}`,
		},
		{
			Title:     "Claim Appeal Letter",
			Category:  CategoryAppealLetter,
			IsDefault: true,
			Content: `{{dates.today}}

Re: Appeal of Denied Claim for {{patient.name}}

To Whom It May Concern:

We are writing to appeal the denial of the claim submitted for {{patient.name}} for services rendered between {{superbill.earliestDate}} and {{superbill.latestDate}}, totaling {{superbill.totalFee}}.

The services in question were medically necessary and are documented on the attached superbill. We respectfully request that this claim be reviewed and reprocessed.

Sincerely,
{{clinic.provider}}
{{clinic.name}}`,
		},
		{
			Title:     "Patient Balance Reminder",
			Category:  CategoryGeneral,
			IsDefault: true,
			Content: `{{dates.today}}

Dear {{patient.salutation_name}},

This is a friendly reminder that your account with {{clinic.name}} shows an outstanding balance of {{superbill.totalFee}} for {{superbill.visits}} visit(s).

If you have already submitted payment, please disregard this notice. Questions are welcome at {{clinic.phone}} or {{clinic.email}}.

Warm regards,
{{clinic.provider}}`,
		},
	}
}
