package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/tOgg1/nativetheme/internal/palette"
)

func newResolveCmd(a *app) *cobra.Command {
	var (
		output string
		strict bool
	)
	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Print the resolved theme",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := parseOutputFormat(output)
			if err != nil {
				return err
			}
			return a.runResolve(cmd.Context(), cmd.OutOrStdout(), format, strict)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", string(formatTable), "output format: table|json|yaml")
	cmd.Flags().BoolVar(&strict, "strict", false, "fail when any theme field is unset")
	return cmd
}

func (a *app) runResolve(ctx context.Context, out io.Writer, format outputFormat, strict bool) error {
	theme := a.resolver.Resolve(ctx)
	if strict {
		if err := theme.Validate(); err != nil {
			return fmt.Errorf("theme incomplete: %w", err)
		}
	}

	if format != formatTable {
		return writeStructured(out, format, theme)
	}
	return writeTable(out, []string{"FIELD", "VALUE"}, themeRows(theme))
}

func themeRows(theme palette.Theme) [][]string {
	rows := [][]string{
		{"platform", theme.Platform.String()},
		{"appearance", appearanceName(theme.Dark)},
		{"accent", theme.Accent.String()},
		{"titlebar_height", strconv.FormatFloat(theme.TitlebarHeight, 'f', -1, 64)},
	}
	for _, c := range theme.Colors() {
		rows = append(rows, []string{c.Name, c.Color.String()})
	}
	return rows
}

func appearanceName(dark bool) string {
	if dark {
		return "dark"
	}
	return "light"
}
