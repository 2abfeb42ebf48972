package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/tOgg1/nativetheme/internal/palette"
	"github.com/tOgg1/nativetheme/internal/platform"
	"github.com/tOgg1/nativetheme/internal/probe"
)

type platformEntry struct {
	Platform       platform.Tag `json:"platform" yaml:"platform"`
	DefaultAccent  string       `json:"default_accent" yaml:"default_accent"`
	TitlebarHeight float64      `json:"titlebar_height" yaml:"titlebar_height"`
	Host           bool         `json:"host" yaml:"host"`
}

func platformEntries() []platformEntry {
	host := platform.Detect()
	entries := make([]platformEntry, 0, len(platform.All()))
	for _, tag := range platform.All() {
		theme := palette.Build(tag, probe.Preferences{})
		entries = append(entries, platformEntry{
			Platform:       tag,
			DefaultAccent:  palette.DefaultAccent(tag).String(),
			TitlebarHeight: theme.TitlebarHeight,
			Host:           tag == host,
		})
	}
	return entries
}

func newPlatformsCmd(a *app) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "platforms",
		Short: "List the built-in platform profiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := parseOutputFormat(output)
			if err != nil {
				return err
			}

			entries := platformEntries()
			if format != formatTable {
				return writeStructured(cmd.OutOrStdout(), format, entries)
			}

			rows := make([][]string, 0, len(entries))
			for _, e := range entries {
				rows = append(rows, []string{
					e.Platform.String(),
					e.DefaultAccent,
					strconv.FormatFloat(e.TitlebarHeight, 'f', -1, 64),
					formatYesNo(e.Host),
				})
			}
			return writeTable(cmd.OutOrStdout(), []string{"PLATFORM", "DEFAULT ACCENT", "TITLEBAR", "HOST"}, rows)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", string(formatTable), "output format: table|json|yaml")
	return cmd
}
