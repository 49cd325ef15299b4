package extract

import (
	"fmt"
	"strings"
)

// ResolutionReport summarizes a batch of resolutions.
type ResolutionReport struct {
	TotalReferences int `json:"total_references"`

	Resolved   int `json:"resolved"`
	Ignored    int `json:"ignored"`
	Unresolved int `json:"unresolved"`

	// ResolutionRate is Resolved / (Total - Ignored).
	ResolutionRate float64 `json:"resolution_rate"`

	UnresolvedRefs []*Resolution `json:"unresolved_refs,omitempty"`
}

// GenerateReport counts the outcomes of resolutions. Nil entries are
// skipped.
func GenerateReport(resolutions []*Resolution) *ResolutionReport {
	report := &ResolutionReport{}

	for _, res := range resolutions {
		if res == nil {
			continue
		}
		report.TotalReferences++
		switch res.Status {
		case ResolutionResolved:
			report.Resolved++
		case ResolutionIgnored:
			report.Ignored++
		default:
			report.Unresolved++
			report.UnresolvedRefs = append(report.UnresolvedRefs, res)
		}
	}

	if counted := report.TotalReferences - report.Ignored; counted > 0 {
		report.ResolutionRate = float64(report.Resolved) / float64(counted)
	}
	return report
}

// String returns a human-readable summary of the report.
func (r *ResolutionReport) String() string {
	var sb strings.Builder

	sb.WriteString("Reference Resolution Report\n")
	sb.WriteString("===========================\n\n")

	sb.WriteString(fmt.Sprintf("Total references: %d\n\n", r.TotalReferences))

	sb.WriteString("Resolution Status:\n")
	sb.WriteString(fmt.Sprintf("  Resolved:   %d\n", r.Resolved))
	sb.WriteString(fmt.Sprintf("  Ignored:    %d\n", r.Ignored))
	sb.WriteString(fmt.Sprintf("  Unresolved: %d\n\n", r.Unresolved))

	sb.WriteString(fmt.Sprintf("Resolution rate: %.1f%%\n", r.ResolutionRate*100))

	if len(r.UnresolvedRefs) > 0 {
		sb.WriteString("\nUnresolved References:\n")
		for _, res := range r.UnresolvedRefs {
			reason := "unknown"
			if res.Err != nil {
				reason = res.Err.Error()
			}
			sb.WriteString(fmt.Sprintf("  - %q: %s\n", res.Reference.Original, reason))
		}
	}

	return sb.String()
}
