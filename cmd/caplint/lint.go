package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/mediadesk/caplint/internal/diag"
	"github.com/mediadesk/caplint/internal/document"
	"github.com/mediadesk/caplint/internal/report"
)

// errFindings signals exit code 1: the lint ran fine but found errors.
var errFindings = fmt.Errorf("findings with error severity")

var (
	lintFormat string
	lintPDF    string
)

var lintCmd = &cobra.Command{
	Use:   "lint [files...]",
	Short: "Lint caption documents and print findings",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if lintFormat != "" {
			cfg.Format = lintFormat
		}
		if lintPDF != "" {
			cfg.PDFReport = lintPDF
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		hadErrors := false
		results := make([]report.FileResult, 0, len(args))
		for _, path := range args {
			b, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("read %s: %w", path, err)
			}
			diags := document.Validate(string(b), cfg.MaxNumberOfProblems)
			log.Debug().Str("path", path).Int("findings", len(diags)).Msg("linted")
			for _, d := range diags {
				if d.Severity == diag.Error {
					hadErrors = true
				}
			}
			results = append(results, report.FromDiagnostics(path, diags))
		}

		out := cmd.OutOrStdout()
		switch cfg.Format {
		case "json":
			err = report.JSON(out, results)
		default:
			err = report.Text(out, results)
		}
		if err != nil {
			return err
		}

		if cfg.PDFReport != "" {
			if err := report.WritePDF(results, cfg.PDFReport); err != nil {
				return fmt.Errorf("write pdf report: %w", err)
			}
			log.Info().Str("path", cfg.PDFReport).Msg("wrote pdf report")
		}

		if hadErrors {
			return errFindings
		}
		return nil
	},
}

func init() {
	lintCmd.Flags().StringVar(&lintFormat, "format", "", "output format: text or json (overrides config)")
	lintCmd.Flags().StringVar(&lintPDF, "pdf", "", "also write a PDF report to this path")
}
