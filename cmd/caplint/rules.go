package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mediadesk/caplint/internal/pattern"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Print the rank abbreviation dictionary",
	Run: func(cmd *cobra.Command, args []string) {
		w := cmd.OutOrStdout()
		for _, r := range pattern.Ranks() {
			fmt.Fprintf(w, "%-14s rewrites: %s\n", r.Canonical, strings.Join(r.Spellings, ", "))
		}
	},
}
