package render

import (
	"strings"
	"time"

	"github.com/superbill/superbill/internal/domain/superbill"
)

// Context is the nested key-value mapping a template is resolved against.
// It is derived, read-only after construction, and never persisted.
type Context map[string]interface{}

// BuildContext projects a superbill into a fresh Context. dates.today is
// captured at call time, so two builds at different instants differ in that
// field alone.
func BuildContext(sb *superbill.Superbill) Context {
	return BuildContextAt(sb, time.Now())
}

// BuildContextAt is BuildContext with an explicit clock.
func BuildContextAt(sb *superbill.Superbill, now time.Time) Context {
	firstName, lastName := splitName(sb.PatientName)

	earliest, latest := now, now
	if len(sb.Visits) > 0 {
		earliest, latest = sb.DateRange()
	}

	visitDates := make([]string, 0, len(sb.Visits))
	for _, v := range sb.Visits {
		visitDates = append(visitDates, FormatShortDate(v.Date))
	}

	patient := map[string]interface{}{
		"name":            sb.PatientName,
		"firstName":       firstName,
		"lastName":        lastName,
		"salutation_name": firstName,
	}
	if sb.PatientDOB != nil {
		patient["dob"] = *sb.PatientDOB
	}

	return Context{
		"patient": patient,
		"superbill": map[string]interface{}{
			"issueDate":    sb.IssueDate,
			"visits":       len(sb.Visits),
			"totalFee":     sb.TotalFee(),
			"visitDates":   strings.Join(visitDates, ", "),
			"earliestDate": earliest,
			"latestDate":   latest,
		},
		"clinic": map[string]interface{}{
			"name":     sb.Clinic.Name,
			"address":  sb.Clinic.Address,
			"phone":    sb.Clinic.Phone,
			"email":    sb.Clinic.Email,
			"provider": sb.Clinic.Provider,
			"ein":      sb.Clinic.EIN,
			"npi":      sb.Clinic.NPI,
		},
		"dates": map[string]interface{}{
			"today": now,
		},
	}
}

// splitName breaks a full name on the first space: everything before it is
// the first name, the remainder (which may itself contain spaces) the last.
func splitName(full string) (first, last string) {
	full = strings.TrimSpace(full)
	if full == "" {
		return "", ""
	}
	parts := strings.SplitN(full, " ", 2)
	if len(parts) == 1 {
		return parts[0], ""
	}
	return parts[0], parts[1]
}
