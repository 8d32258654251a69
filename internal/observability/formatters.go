// Package observability provides logging setup and formatted console output for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/fractionalquest/fractional-quest/internal/db"
	"github.com/fractionalquest/fractional-quest/internal/importer"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted console output
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

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens s to at most n runes, marking the cut with "...".
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n-3]) + "..."
}

// PrintImportReport outputs the counts of an import run and its first few errors.
func (p *Printer) PrintImportReport(report *importer.Report) {
	if report == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Records:     %d\n", report.Total))
	sb.WriteString(fmt.Sprintf("Fractional:  %d\n", report.Filtered))
	sb.WriteString(fmt.Sprintf("Inserted:    %d\n", report.Inserted))
	sb.WriteString(fmt.Sprintf("Updated:     %d", report.Updated))
	if report.Merged > 0 {
		sb.WriteString(fmt.Sprintf(" (%d slug merges)", report.Merged))
	}
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Skipped:     %d\n", report.Skipped))

	if len(report.Errors) > 0 {
		sb.WriteString("\nErrors:\n")
		count := min(len(report.Errors), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", report.Errors[i].Error()))
		}
		if more := report.Skipped - count; more > 0 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", more))
		}
	}

	p.printBox("IMPORT SUMMARY", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintJobList outputs one line per job: title, company, city and slug.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintJobList(jobs []db.JobPosting) {
	if len(jobs) == 0 {
		fmt.Fprintln(p.out, "No jobs found.")
		return
	}

	for _, job := range jobs {
		city := "-"
		if job.City != nil {
			city = *job.City
		}
		fmt.Fprintf(p.out, "%s  %s · %s · %s\n",
			job.PostedDate.Format("2006-01-02"), job.Title, job.CompanyName, city)
		fmt.Fprintf(p.out, "            %s\n", job.Slug)
	}
	fmt.Fprintf(p.out, "\n%d jobs\n", len(jobs))
}

// PrintJobDetail outputs every stored attribute of one job.
func (p *Printer) PrintJobDetail(job *db.JobPosting) {
	if job == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Company:     %s\n", job.CompanyName))
	writeOptional(&sb, "Domain:      ", job.CompanyDomain)
	writeOptional(&sb, "Location:    ", job.Location)
	writeOptional(&sb, "City:        ", job.City)
	writeOptional(&sb, "Country:     ", job.Country)
	sb.WriteString(fmt.Sprintf("Workplace:   %s\n", job.WorkplaceType))
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("Category:    %s\n", job.RoleCategory))
	if job.ExecutiveTitle != nil {
		sb.WriteString(fmt.Sprintf("Title:       %s\n", *job.ExecutiveTitle))
	}
	if job.SeniorityLevel != nil {
		sb.WriteString(fmt.Sprintf("Seniority:   %s\n", *job.SeniorityLevel))
	}
	sb.WriteString(fmt.Sprintf("Employment:  %s\n", job.EmploymentType))
	writeOptional(&sb, "Salary:      ", job.Compensation)
	sb.WriteString("\n")

	status := "active"
	if !job.IsActive {
		status = "inactive"
	}
	sb.WriteString(fmt.Sprintf("Status:      %s\n", status))
	sb.WriteString(fmt.Sprintf("Posted:      %s\n", job.PostedDate.Format("2006-01-02")))
	if job.ApplicationDeadline != nil {
		sb.WriteString(fmt.Sprintf("Closes:      %s\n", job.ApplicationDeadline.Format("2006-01-02")))
	}
	sb.WriteString(fmt.Sprintf("Last seen:   %s\n", job.LastSeenAt.Format("2006-01-02 15:04")))
	writeOptional(&sb, "Apply:       ", job.URL)

	if job.DescriptionSnippet != nil {
		sb.WriteString("\n")
		for _, line := range wrap(*job.DescriptionSnippet, boxWidth-4) {
			sb.WriteString(line + "\n")
		}
	}

	p.printBox(job.Title, strings.TrimSuffix(sb.String(), "\n"))
}

func writeOptional(sb *strings.Builder, label string, value *string) {
	if value == nil || *value == "" {
		return
	}
	sb.WriteString(label + *value + "\n")
}

// wrap breaks text into lines of at most width runes on word boundaries.
func wrap(text string, width int) []string {
	var lines []string
	var line strings.Builder
	for _, word := range strings.Fields(text) {
		if line.Len() > 0 && utf8.RuneCountInString(line.String())+1+utf8.RuneCountInString(word) > width {
			lines = append(lines, line.String())
			line.Reset()
		}
		if line.Len() > 0 {
			line.WriteByte(' ')
		}
		line.WriteString(word)
	}
	if line.Len() > 0 {
		lines = append(lines, line.String())
	}
	return lines
}
