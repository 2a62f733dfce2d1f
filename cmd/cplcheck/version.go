package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/orenbenkiki/cpl"
	"github.com/orenbenkiki/cpl/internal/version"
)

type versionPayload struct {
	Tool      string `json:"tool"`
	Version   string `json:"version"`
	Variant   string `json:"variant"`
	GitCommit string `json:"git_commit,omitempty"`
	BuildDate string `json:"build_date,omitempty"`
}

var (
	versionFormat   string
	versionShowFull bool
)

func init() {
	versionCmd.Flags().StringVar(&versionFormat, "format", "pretty", "output format (pretty|json)")
	versionCmd.Flags().BoolVar(&versionShowFull, "full", false, "include commit hash and build timestamp")
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show cplcheck build fingerprints",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		switch strings.ToLower(versionFormat) {
		case "pretty":
			if versionShowFull {
				fmt.Fprintf(out, "%s (variant %s)\n", version.Full(), cpl.Variant)
			} else {
				fmt.Fprintf(out, "%s (variant %s)\n", version.Pretty(), cpl.Variant)
			}
			return nil
		case "json":
			payload := versionPayload{
				Tool:    "cplcheck",
				Version: version.Version,
				Variant: cpl.Variant,
			}
			if versionShowFull {
				payload.GitCommit = valueOrUnknown(version.GitCommit)
				payload.BuildDate = valueOrUnknown(version.BuildDate)
			}
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(payload)
		default:
			return fmt.Errorf("unsupported format %q (must be pretty or json)", versionFormat)
		}
	},
}

func valueOrUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}
