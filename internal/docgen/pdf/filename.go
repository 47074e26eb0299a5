package pdf

import (
	"fmt"
	"strings"

	"github.com/superbill/superbill/internal/domain/superbill"
)

// ExportFilename builds the download filename for a superbill export:
// "Superbill-<patient name, spaces as dashes>-<MM-dd-yyyy issue date>.pdf".
// The date uses dashes rather than slashes so the name stays path-safe.
func ExportFilename(sb *superbill.Superbill) string {
	name := strings.ReplaceAll(strings.TrimSpace(sb.PatientName), " ", "-")
	return fmt.Sprintf("Superbill-%s-%s.pdf", name, sb.IssueDate.Format("01-02-2006"))
}
