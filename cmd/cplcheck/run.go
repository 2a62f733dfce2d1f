package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/orenbenkiki/cpl"
	"github.com/orenbenkiki/cpl/internal/observ"
)

var runCmd = &cobra.Command{
	Use:   "run [scenario...]",
	Short: "Run lifetime-bug scenarios against the compiled variant",
	Long: `Run executes the named scenarios (all of them by default), each under a
capturing assert handler, and reports whether the expected violation was
detected. Detection scenarios are skipped under the fast variant, which
performs no checks.`,
	RunE: runScenarios,
}

func init() {
	runCmd.Flags().String("config", "", "TOML file selecting scenarios and output")
	runCmd.Flags().String("trace-out", "", "write the lifetime event log to this file")
}

type scenarioResult struct {
	scenario
	detected   bool
	skipped    bool
	violations []*cpl.Violation
}

func runScenarios(cmd *cobra.Command, args []string) error {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("failed to get config flag: %w", err)
	}
	traceOut, err := cmd.Flags().GetString("trace-out")
	if err != nil {
		return fmt.Errorf("failed to get trace-out flag: %w", err)
	}
	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	timings, _ := cmd.Root().PersistentFlags().GetBool("timings")

	cfg := defaultConfig()
	if configPath != "" {
		cfg, err = loadConfig(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
	}
	if traceOut != "" {
		cfg.TraceOut = traceOut
	}
	if len(args) > 0 {
		cfg.Scenarios = args
	}
	setupColor(cmd, cfg)

	selected, err := selectScenarios(cfg.Scenarios)
	if err != nil {
		return err
	}

	tracer := cpl.NewTracer(nil)
	prevTracer := cpl.SetTracer(tracer)
	defer cpl.SetTracer(prevTracer)

	timer := observ.NewTimer()
	failures := 0
	for _, s := range selected {
		res := execute(s, timer)
		report(cmd.OutOrStdout(), res, quiet)
		if !res.skipped && !res.detected {
			failures++
		}
	}

	if timings {
		fmt.Fprint(cmd.OutOrStdout(), timer.Summary())
	}
	if cfg.TraceOut != "" {
		if err := tracer.WriteLog(cfg.TraceOut); err != nil {
			return fmt.Errorf("failed to write trace log: %w", err)
		}
	}
	if failures > 0 {
		return fmt.Errorf("%d scenario(s) not detected under the %s variant", failures, cpl.Variant)
	}
	return nil
}

func selectScenarios(names []string) ([]scenario, error) {
	if len(names) == 0 {
		return scenarios, nil
	}
	selected := make([]scenario, 0, len(names))
	for _, name := range names {
		s, ok := findScenario(name)
		if !ok {
			return nil, fmt.Errorf("unknown scenario: %s", name)
		}
		selected = append(selected, s)
	}
	return selected, nil
}

// execute runs one scenario under a capturing assert handler. The
// handler records instead of panicking, so the scenario body continues
// past the violation the way buggy production code would.
func execute(s scenario, timer *observ.Timer) scenarioResult {
	res := scenarioResult{scenario: s}
	if s.Want != 0 && cpl.Variant != "safe" {
		res.skipped = true
		return res
	}

	prev := cpl.SetAssertHandler(func(v *cpl.Violation) {
		res.violations = append(res.violations, v)
	})
	defer cpl.SetAssertHandler(prev)

	idx := timer.Begin(s.Name)
	s.Run()

	if s.Want == 0 {
		res.detected = len(res.violations) == 0
	} else {
		for _, v := range res.violations {
			if v.Code == s.Want {
				res.detected = true
				break
			}
		}
	}
	note := "detected"
	if !res.detected {
		note = "missed"
	}
	timer.End(idx, note)
	return res
}

func report(w io.Writer, res scenarioResult, quiet bool) {
	switch {
	case res.skipped:
		color.New(color.FgYellow).Fprintf(w, "skip %-16s (fast variant performs no checks)\n", res.Name)
	case res.detected:
		color.New(color.FgGreen).Fprintf(w, "ok   %-16s", res.Name)
		if !quiet {
			fmt.Fprintf(w, " %s", res.Desc)
			if len(res.violations) > 0 {
				fmt.Fprintf(w, " -> %s", res.violations[0].Error())
			}
		}
		fmt.Fprintln(w)
	default:
		color.New(color.FgRed).Fprintf(w, "FAIL %-16s expected %s, got %d violation(s)\n",
			res.Name, res.Want, len(res.violations))
	}
}

func setupColor(cmd *cobra.Command, cfg config) {
	mode := cfg.Color
	if flag, err := cmd.Root().PersistentFlags().GetString("color"); err == nil && flag != "auto" {
		mode = flag
	}
	switch mode {
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	default:
		color.NoColor = !isTerminal(os.Stdout)
	}
}
