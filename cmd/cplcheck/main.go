package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/orenbenkiki/cpl"
	"github.com/orenbenkiki/cpl/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "cplcheck",
	Short: "Exercise the cpl lifetime checks",
	Long: `cplcheck runs built-in scenarios against the compiled cpl variant
("` + cpl.Variant + `") and reports which lifetime violations the variant detects.`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Bool("timings", false, "show timing information")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
