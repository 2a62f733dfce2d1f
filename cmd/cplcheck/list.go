package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/orenbenkiki/cpl"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the built-in lifetime-bug scenarios",
	RunE: func(cmd *cobra.Command, args []string) error {
		setupColor(cmd, defaultConfig())
		out := cmd.OutOrStdout()
		name := color.New(color.Bold)
		for _, s := range scenarios {
			name.Fprintf(out, "%-16s", s.Name)
			fmt.Fprintf(out, " %s", s.Desc)
			if s.Want != 0 {
				fmt.Fprintf(out, " (expects %s)", s.Want)
			}
			fmt.Fprintln(out)
		}
		if cpl.Variant != "safe" {
			fmt.Fprintln(out, "\nnote: detection scenarios are skipped under the fast variant")
		}
		return nil
	},
}
