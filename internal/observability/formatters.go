// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/AlenSaijo/career-roadmap-generator/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintProfile outputs a human-readable summary of an analyzed candidate profile.
func (p *Printer) PrintProfile(profile *types.Profile) {
	if profile == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Level:       %s\n", profile.Skills.Level))
	sb.WriteString(fmt.Sprintf("Experience:  %.1f years\n", profile.ExperienceYears))
	sb.WriteString(fmt.Sprintf("Programming: %s\n", joinOrNone(profile.Skills.Programming)))
	sb.WriteString(fmt.Sprintf("Frameworks:  %s\n", joinOrNone(profile.Skills.Frameworks)))
	sb.WriteString(fmt.Sprintf("Tools:       %s\n", joinOrNone(profile.Skills.Tools)))
	sb.WriteString(fmt.Sprintf("Soft skills: %s", joinOrNone(profile.Skills.SoftSkills)))

	p.printBox("Candidate Profile", sb.String())
}

// PrintGaps outputs a human-readable summary of a gap report.
func (p *Printer) PrintGaps(gaps *types.GapReport) {
	if gaps == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString("Critical Missing:\n")
	appendList(&sb, gaps.CriticalMissing)
	if len(gaps.NiceToHave) > 0 {
		sb.WriteString("Nice to Have:\n")
		appendList(&sb, gaps.NiceToHave)
	}
	sb.WriteString("Future Proof:\n")
	appendList(&sb, gaps.FutureProof)

	p.printBox("Gap Analysis", strings.TrimRight(sb.String(), "\n"))
}

// PrintReport outputs the headline figures of a generated report along
// with the first days of the roadmap.
func (p *Printer) PrintReport(report *types.Report) {
	if report == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Role:        %s\n", report.TargetRole.Title))
	sb.WriteString(fmt.Sprintf("Match:       %d%%\n", report.TargetRole.MatchPercentage))
	sb.WriteString(fmt.Sprintf("Skill gaps:  %d\n", report.GapAnalysis.SkillGapsCount))
	sb.WriteString(fmt.Sprintf("Points:      %d\n", report.Gamification.TotalPoints))
	sb.WriteString(fmt.Sprintf("Verdict:     %s (%d)\n", report.ExtraFeatures.ResumeAnalysis.Status,
		report.ExtraFeatures.ResumeAnalysis.Score))
	sb.WriteString(fmt.Sprintf("Salary:      %s - %s\n", report.ExtraFeatures.Salary.Min,
		report.ExtraFeatures.Salary.Max))
	sb.WriteString("\nFirst days:\n")
	count := min(len(report.Roadmap), maxItemsToShow)
	for i := 0; i < count; i++ {
		entry := report.Roadmap[i]
		sb.WriteString(fmt.Sprintf("  Day %d: %s\n", entry.Day, entry.Task))
	}
	if len(report.Roadmap) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more days", len(report.Roadmap)-maxItemsToShow))
	}

	p.printBox("Career Roadmap", strings.TrimRight(sb.String(), "\n"))
}

func appendList(sb *strings.Builder, items []string) {
	if len(items) == 0 {
		sb.WriteString("  (none)\n")
		return
	}
	count := min(len(items), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", items[i]))
	}
	if len(items) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-maxItemsToShow))
	}
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "(none)"
	}
	return strings.Join(items, ", ")
}
