package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mathieu/cv-analyzer/internal/extraction"
	"github.com/mathieu/cv-analyzer/internal/fetch"
	"github.com/mathieu/cv-analyzer/internal/matching"
	"github.com/mathieu/cv-analyzer/internal/report"
	"github.com/mathieu/cv-analyzer/internal/types"
)

var (
	analyzeCV      string
	analyzeJob     string
	analyzeJobURL  string
	analyzeSenior  bool
	analyzePDF     string
	analyzeBrowser bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a CV against a job posting",
	Long:  `Extract text from a CV (pdf, docx or txt), compare it to a job posting given as a file or a URL, and print the compatibility report.`,
	RunE:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeCV, "cv", "", "Path to the CV file (pdf, docx or txt)")
	analyzeCmd.Flags().StringVar(&analyzeJob, "job", "", "Path to the job posting text file")
	analyzeCmd.Flags().StringVar(&analyzeJobURL, "job-url", "", "URL of the job posting")
	analyzeCmd.Flags().BoolVar(&analyzeSenior, "senior", false, "Use the senior profile (no interpretation bands defined yet)")
	analyzeCmd.Flags().StringVar(&analyzePDF, "pdf", "", "Write the report as PDF to this path")
	analyzeCmd.Flags().BoolVar(&analyzeBrowser, "browser", false, "Render JavaScript-heavy job boards in a headless browser")
	_ = analyzeCmd.MarkFlagRequired("cv")
	analyzeCmd.MarkFlagsMutuallyExclusive("job", "job-url")
	analyzeCmd.MarkFlagsOneRequired("job", "job-url")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	data, err := os.ReadFile(analyzeCV)
	if err != nil {
		return fmt.Errorf("failed to read CV file: %w", err)
	}

	cvText, err := extraction.Text(filepath.Base(analyzeCV), data)
	if err != nil {
		return err
	}

	jobText, err := resolveJobText(cmd.Context())
	if err != nil {
		return err
	}

	req := types.AnalyzeRequest{CVText: cvText, JobText: jobText, Junior: !analyzeSenior}
	if err := req.Validate(); err != nil {
		return fmt.Errorf("documents too short for a meaningful analysis (minimum %d characters each)", types.MinTextLength)
	}

	result := matching.Analyze(req.CVText, req.JobText, req.Junior)

	printer := report.NewPrinter(os.Stdout)
	printer.PrintResult(filepath.Base(analyzeCV), result)

	if analyzePDF != "" {
		pdf, err := report.PDF(cmd.Context(), report.DefaultTitle, filepath.Base(analyzeCV), result)
		if err != nil {
			return err
		}
		if err := os.WriteFile(analyzePDF, pdf, 0644); err != nil {
			return fmt.Errorf("failed to write PDF report: %w", err)
		}
		fmt.Printf("Rapport PDF écrit : %s\n", analyzePDF)
	}

	return nil
}

func resolveJobText(ctx context.Context) (string, error) {
	if analyzeJob != "" {
		data, err := os.ReadFile(analyzeJob)
		if err != nil {
			return "", fmt.Errorf("failed to read job posting file: %w", err)
		}
		return string(data), nil
	}

	opts := fetch.DefaultOptions()
	opts.UseBrowser = analyzeBrowser
	return fetch.JobPosting(ctx, analyzeJobURL, opts)
}
