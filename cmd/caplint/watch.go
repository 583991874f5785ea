package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/mediadesk/caplint/internal/document"
	"github.com/mediadesk/caplint/internal/report"
	"github.com/mediadesk/caplint/internal/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch [files...]",
	Short: "Re-lint caption documents whenever they change on disk",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		relint := func(path string) {
			b, err := os.ReadFile(path)
			if err != nil {
				log.Warn().Err(err).Str("path", path).Msg("read failed")
				return
			}
			diags := document.Validate(string(b), cfg.MaxNumberOfProblems)
			res := report.FromDiagnostics(path, diags)
			if err := report.Text(os.Stdout, []report.FileResult{res}); err != nil {
				log.Warn().Err(err).Msg("write findings")
			}
			log.Info().Str("path", path).Int("findings", len(diags)).Msg("linted")
		}

		w, err := watch.New(args, 200*time.Millisecond, relint)
		if err != nil {
			return err
		}
		defer w.Close()

		for _, p := range args {
			relint(p)
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		log.Info().Int("files", len(args)).Msg("watching")
		return w.Run(ctx)
	},
}
