package cli

import (
	"github.com/spf13/cobra"

	"github.com/tOgg1/nativetheme/internal/platform"
)

type probeReport struct {
	Platform platform.Tag `json:"platform" yaml:"platform"`
	Probe    string       `json:"probe" yaml:"probe"`
	DarkMode bool         `json:"dark_mode" yaml:"dark_mode"`
	Accent   string       `json:"accent" yaml:"accent"`
}

func newProbeCmd(a *app) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "probe",
		Short: "Print the system preferences the theme is built from",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := parseOutputFormat(output)
			if err != nil {
				return err
			}

			prefs := a.resolver.Preferences(cmd.Context())
			report := probeReport{
				Platform: a.resolver.Platform(),
				Probe:    a.resolver.ProbeName(),
				DarkMode: prefs.DarkMode,
				Accent:   "unknown",
			}
			if prefs.HasAccent() {
				report.Accent = prefs.Accent.String()
			}

			if format != formatTable {
				return writeStructured(cmd.OutOrStdout(), format, report)
			}
			return writeTable(cmd.OutOrStdout(), []string{"PLATFORM", "PROBE", "DARK", "ACCENT"}, [][]string{{
				report.Platform.String(),
				report.Probe,
				formatYesNo(report.DarkMode),
				report.Accent,
			}})
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", string(formatTable), "output format: table|json|yaml")
	return cmd
}
