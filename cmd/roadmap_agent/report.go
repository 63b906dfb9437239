package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/AlenSaijo/career-roadmap-generator/internal/config"
	"github.com/AlenSaijo/career-roadmap-generator/internal/extraction"
	"github.com/AlenSaijo/career-roadmap-generator/internal/fetch"
	"github.com/AlenSaijo/career-roadmap-generator/internal/gaps"
	"github.com/AlenSaijo/career-roadmap-generator/internal/ingestion"
	"github.com/AlenSaijo/career-roadmap-generator/internal/observability"
	"github.com/AlenSaijo/career-roadmap-generator/internal/parsing"
	"github.com/AlenSaijo/career-roadmap-generator/internal/report"
	"github.com/AlenSaijo/career-roadmap-generator/internal/schemas"
	"github.com/spf13/cobra"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate a career-development report",
	Long:  "Generate a full career-development report from a resume and a job description, printed as JSON on stdout.",
	RunE:  runReport,
}

var (
	resumePath       string
	jobFile          string
	jobURL           string
	jobTitle         string
	hoursPerDay      int
	reportConfigPath string
	outFile          string
	verbose          bool
)

func init() {
	reportCmd.Flags().StringVarP(&resumePath, "resume", "r", "", "Path to resume file: .pdf, .docx or plain text (required)")
	reportCmd.Flags().StringVarP(&jobFile, "job-file", "j", "", "Path to text file containing the job description")
	reportCmd.Flags().StringVarP(&jobURL, "job-url", "u", "", "URL to fetch the job description from")
	reportCmd.Flags().StringVar(&jobTitle, "job-title", "", "Target role title (required)")
	reportCmd.Flags().IntVar(&hoursPerDay, "hours", 0, "Study hours per roadmap day")
	reportCmd.Flags().StringVarP(&reportConfigPath, "config", "c", "", "Path to JSON config file")
	reportCmd.Flags().StringVarP(&outFile, "out", "o", "", "Write the report JSON to a file instead of stdout")
	reportCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Print formatted report summaries to stderr")

	reportCmd.MarkFlagRequired("resume")
	reportCmd.MarkFlagRequired("job-title")

	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, _ []string) error {
	// Validate mutually exclusive flags
	if jobFile == "" && jobURL == "" {
		return fmt.Errorf("either --job-file or --job-url must be provided")
	}
	if jobFile != "" && jobURL != "" {
		return fmt.Errorf("--job-file and --job-url are mutually exclusive; provide only one")
	}

	fileCfg := &config.Config{}
	if reportConfigPath != "" {
		loaded, err := config.LoadConfig(reportConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := loaded.Validate(); err != nil {
			return err
		}
		fileCfg = loaded
	}
	merged := fileCfg.MergeWithDefaults(config.Config{HoursPerDay: hoursPerDay})
	if cmd.Flags().Changed("hours") {
		merged.HoursPerDay = hoursPerDay
	}

	resumeText, err := readResume(resumePath)
	if err != nil {
		return err
	}

	jobDescription, err := readJobDescription(cmd.Context())
	if err != nil {
		return err
	}

	rep := report.Generate(report.Options{
		Resume:         resumeText,
		JobDescription: jobDescription,
		JobTitle:       jobTitle,
		HoursPerDay:    merged.HoursPerDay,
		FutureCategory: merged.FutureSkillsCategory,
	})

	data, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	if err := validateReport(data, merged.ReportSchema); err != nil {
		return err
	}

	if verbose || merged.Verbose {
		printer := observability.NewPrinter(os.Stderr)
		profile := extraction.AnalyzeProfile(resumeText, "", "")
		printer.PrintProfile(profile)
		printer.PrintGaps(gaps.IdentifyWithCategory(profile, parsing.AnalyzeJob(jobDescription), merged.FutureSkillsCategory))
		printer.PrintReport(rep)
	}

	if outFile != "" {
		if err := os.WriteFile(outFile, data, 0o644); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		fmt.Fprintf(os.Stdout, "Report written to %s\n", outFile)
		return nil
	}

	fmt.Fprintln(os.Stdout, string(data))
	return nil
}

// readResume loads resume text from disk. PDF and DOCX files go
// through text extraction; anything else is read verbatim.
func readResume(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read resume: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf", ".docx":
		text, err := ingestion.ExtractText(path, data)
		if err != nil {
			return "", fmt.Errorf("failed to extract resume text: %w", err)
		}
		return text, nil
	default:
		return string(data), nil
	}
}

func readJobDescription(ctx context.Context) (string, error) {
	if jobFile != "" {
		data, err := os.ReadFile(jobFile)
		if err != nil {
			return "", fmt.Errorf("failed to read job description: %w", err)
		}
		return string(data), nil
	}
	text, err := fetch.JobPosting(ctx, jobURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to fetch job posting: %w", err)
	}
	return text, nil
}

// validateReport checks the marshaled report against the JSON Schema
// when one can be located. A missing schema at the default location is
// tolerated so the binary works from any directory.
func validateReport(data []byte, schemaPath string) error {
	if schemaPath == "" {
		schemaPath = schemas.ResolveSchemaPath(schemas.ReportSchemaPath)
		if schemaPath == "" {
			return nil
		}
	}
	if err := schemas.ValidateBytes(schemaPath, data); err != nil {
		return fmt.Errorf("generated report failed schema validation: %w", err)
	}
	return nil
}
