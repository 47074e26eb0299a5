package superbill

import (
	"time"

	"github.com/google/uuid"
)

// Superbill statuses form a small fixed lifecycle. Transitions are validated
// in the service; the set itself never grows at runtime.
const (
	StatusDraft      = "draft"
	StatusReady      = "ready"
	StatusSubmitted  = "submitted"
	StatusReimbursed = "reimbursed"
)

// Clinic holds the practice/provider identity printed on every generated
// document. Stored denormalized on each superbill so past documents keep the
// letterhead they were issued under.
type Clinic struct {
	Name     string `db:"clinic_name" json:"name"`
	Address  string `db:"clinic_address" json:"address"`
	Phone    string `db:"clinic_phone" json:"phone"`
	Email    string `db:"clinic_email" json:"email"`
	Provider string `db:"provider_name" json:"provider"`
	EIN      string `db:"ein" json:"ein"`
	NPI      string `db:"npi" json:"npi"`
}

// Superbill maps to the superbills table. PatientName is a snapshot taken at
// issue time; it may be the empty string but is never NULL.
type Superbill struct {
	ID         uuid.UUID  `db:"id" json:"id"`
	PatientID  *uuid.UUID `db:"patient_id" json:"patient_id,omitempty"`
	PatientName string    `db:"patient_name" json:"patient_name"`
	PatientDOB *time.Time `db:"patient_dob" json:"patient_dob,omitempty"`
	Clinic     Clinic     `json:"clinic"`
	IssueDate  time.Time  `db:"issue_date" json:"issue_date"`
	Status     string     `db:"status" json:"status"`
	Visits     []*Visit   `json:"visits"`
	CreatedAt  time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time  `db:"updated_at" json:"updated_at"`
}

// Visit maps to the visits table. ICDCodes/CPTCodes plus the flat Fee are the
// legacy shape; Lines is the itemized replacement. Position preserves
// insertion order for display — totals never depend on it.
type Visit struct {
	ID          uuid.UUID     `db:"id" json:"id"`
	SuperbillID uuid.UUID     `db:"superbill_id" json:"superbill_id"`
	Date        time.Time     `db:"visit_date" json:"date"`
	ICDCodes    []string      `db:"icd_codes" json:"icd_codes"`
	CPTCodes    []string      `db:"cpt_codes" json:"cpt_codes"`
	Lines       []ServiceLine `json:"lines"`
	Fee         float64       `db:"fee" json:"fee"`
	Notes       string        `db:"notes" json:"notes"`
	Complaints  []string      `db:"complaints" json:"complaints"`
	Status      string        `db:"status" json:"status"`
	Position    int           `db:"position" json:"position"`
	CreatedAt   time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time     `db:"updated_at" json:"updated_at"`
}

// Visit statuses.
const (
	VisitStatusDraft    = "draft"
	VisitStatusComplete = "complete"
	VisitStatusBilled   = "billed"
)

// ServiceLine is one itemized (code, description, fee) entry within a visit.
type ServiceLine struct {
	ID          uuid.UUID `db:"id" json:"id"`
	VisitID     uuid.UUID `db:"visit_id" json:"visit_id"`
	Sequence    int       `db:"sequence" json:"sequence"`
	Code        string    `db:"code" json:"code"`
	Description string    `db:"description" json:"description"`
	Fee         float64   `db:"fee" json:"fee"`
}

// ServiceRow is a display row in the itemized services table. Unlike
// ServiceLine it is derived, never persisted.
type ServiceRow struct {
	Date        time.Time `json:"date"`
	Code        string    `json:"code"`
	Description string    `json:"description"`
	Fee         float64   `json:"fee"`
}

// TotalFee returns the visit's charge: the sum of itemized line fees, or the
// legacy flat fee when no lines exist.
func (v *Visit) TotalFee() float64 {
	if len(v.Lines) == 0 {
		return v.Fee
	}
	var total float64
	for _, l := range v.Lines {
		total += l.Fee
	}
	return total
}

// ServiceRows returns the itemized rows for the services table. When a visit
// has no service lines but carries legacy CPT codes, the legacy fee is split
// evenly across those codes so old records still itemize.
func (v *Visit) ServiceRows() []ServiceRow {
	if len(v.Lines) > 0 {
		rows := make([]ServiceRow, 0, len(v.Lines))
		for _, l := range v.Lines {
			rows = append(rows, ServiceRow{
				Date:        v.Date,
				Code:        l.Code,
				Description: l.Description,
				Fee:         l.Fee,
			})
		}
		return rows
	}
	if len(v.CPTCodes) == 0 {
		return nil
	}
	split := v.Fee / float64(len(v.CPTCodes))
	rows := make([]ServiceRow, 0, len(v.CPTCodes))
	for _, code := range v.CPTCodes {
		rows = append(rows, ServiceRow{
			Date:        v.Date,
			Code:        code,
			Description: "Chiropractic service",
			Fee:         split,
		})
	}
	return rows
}

// TotalFee sums the derived visit fees. Order-independent.
func (s *Superbill) TotalFee() float64 {
	var total float64
	for _, v := range s.Visits {
		total += v.TotalFee()
	}
	return total
}

// VisitDates returns each visit's date in stored display order.
func (s *Superbill) VisitDates() []time.Time {
	dates := make([]time.Time, 0, len(s.Visits))
	for _, v := range s.Visits {
		dates = append(dates, v.Date)
	}
	return dates
}

// DateRange returns the earliest and latest visit dates. With no visits both
// endpoints fall back to the current time; callers render a degenerate range
// rather than failing.
func (s *Superbill) DateRange() (earliest, latest time.Time) {
	if len(s.Visits) == 0 {
		now := time.Now()
		return now, now
	}
	earliest = s.Visits[0].Date
	latest = s.Visits[0].Date
	for _, v := range s.Visits[1:] {
		if v.Date.Before(earliest) {
			earliest = v.Date
		}
		if v.Date.After(latest) {
			latest = v.Date
		}
	}
	return earliest, latest
}
