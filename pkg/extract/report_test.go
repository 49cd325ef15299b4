package extract

import (
	"errors"
	"strings"
	"testing"
)

func TestGenerateReport(t *testing.T) {
	resolutions := []*Resolution{
		{Reference: &CrossReference{Original: "Gen 1:1"}, Status: ResolutionResolved},
		{Reference: &CrossReference{Original: "John 3"}, Status: ResolutionResolved},
		{Reference: &CrossReference{Original: "; and ", Ignore: true}, Status: ResolutionIgnored},
		{Reference: &CrossReference{Original: "Xyz 1:1"}, Status: ResolutionUnresolved, Err: errors.New("no book")},
		nil,
	}

	report := GenerateReport(resolutions)
	if report.TotalReferences != 4 {
		t.Errorf("TotalReferences = %d, want 4", report.TotalReferences)
	}
	if report.Resolved != 2 || report.Ignored != 1 || report.Unresolved != 1 {
		t.Errorf("counts = %d/%d/%d, want 2/1/1", report.Resolved, report.Ignored, report.Unresolved)
	}
	if want := 2.0 / 3.0; report.ResolutionRate != want {
		t.Errorf("ResolutionRate = %v, want %v", report.ResolutionRate, want)
	}
	if len(report.UnresolvedRefs) != 1 {
		t.Fatalf("UnresolvedRefs = %d, want 1", len(report.UnresolvedRefs))
	}

	s := report.String()
	for _, want := range []string{"Total references: 4", "Resolved:   2", `"Xyz 1:1": no book`, "66.7%"} {
		if !strings.Contains(s, want) {
			t.Errorf("String() missing %q:\n%s", want, s)
		}
	}
}

func TestGenerateReport_Empty(t *testing.T) {
	report := GenerateReport(nil)
	if report.TotalReferences != 0 || report.ResolutionRate != 0 {
		t.Errorf("empty report = %+v", report)
	}
	if strings.Contains(report.String(), "Unresolved References") {
		t.Error("empty report should not list unresolved references")
	}
}
