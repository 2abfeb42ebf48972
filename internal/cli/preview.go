package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/tOgg1/nativetheme/internal/palette"
	"github.com/tOgg1/nativetheme/internal/platform"
	"github.com/tOgg1/nativetheme/internal/rgb"
)

const previewWidth = 44

func newPreviewCmd(a *app) *cobra.Command {
	var plain bool
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Render the resolved theme as a window mockup",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			theme := a.resolver.Resolve(cmd.Context())
			out := cmd.OutOrStdout()
			if plain || !isTerminal(out) {
				return writeTable(out, []string{"FIELD", "VALUE"}, themeRows(theme))
			}
			_, err := fmt.Fprintln(out, renderPreview(lipgloss.NewRenderer(out), theme))
			return err
		},
	}
	cmd.Flags().BoolVar(&plain, "plain", false, "print a plain table even on a terminal")
	return cmd
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func color(c rgb.Color) lipgloss.Color {
	return lipgloss.Color(c.String())
}

// renderPreview draws a title bar with window controls and a content area
// holding an input, both button kinds and the three text roles.
func renderPreview(r *lipgloss.Renderer, t palette.Theme) string {
	bar := r.NewStyle().Background(color(t.TitlebarBg)).Foreground(color(t.TextPrimary))
	title := fmt.Sprintf("%s %s", t.Platform, appearanceName(t.Dark))

	controls := renderControls(r, t)
	gap := previewWidth - lipgloss.Width(controls) - lipgloss.Width(title) - 2
	if gap < 1 {
		gap = 1
	}
	var titlebar string
	if t.Platform == platform.MacLike {
		titlebar = bar.Width(previewWidth).Render(" " + controls + strings.Repeat(" ", gap) + title + " ")
	} else {
		titlebar = bar.Width(previewWidth).Render(" " + title + strings.Repeat(" ", gap) + controls + " ")
	}
	border := r.NewStyle().Foreground(color(t.TitlebarBorder)).Background(color(t.Background)).
		Render(strings.Repeat("▁", previewWidth))

	input := func(focused bool) string {
		edge := t.InputBorder
		if focused {
			edge = t.InputBorderFocused
		}
		return r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(color(edge)).
			BorderBackground(color(t.Background)).
			Background(color(t.InputBg)).
			Foreground(color(t.InputText)).
			Width(previewWidth - 4).
			Render("1990-01-01")
	}

	button := func(bg, fg rgb.Color, label string) string {
		return r.NewStyle().Background(color(bg)).Foreground(color(fg)).Padding(0, 2).Render(label)
	}
	spacer := r.NewStyle().Background(color(t.Background)).Render(" ")
	buttons := lipgloss.JoinHorizontal(lipgloss.Top,
		button(t.ButtonPrimaryBg, t.ButtonPrimaryText, "OK"), spacer,
		button(t.ButtonPrimaryBgHover, t.ButtonPrimaryText, "Hover"), spacer,
		button(t.ButtonSecondaryBg, t.ButtonSecondaryText, "Cancel"), spacer,
		button(t.ButtonSecondaryBgHover, t.ButtonSecondaryText, "Hover"),
	)

	text := func(c rgb.Color, s string) string {
		return r.NewStyle().Foreground(color(c)).Background(color(t.Background)).Render(s)
	}
	body := r.NewStyle().Background(color(t.Background)).Width(previewWidth).Padding(1, 1).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			text(t.TextPrimary, "Primary text"),
			text(t.TextSecondary, "Secondary text"),
			input(false),
			input(true),
			buttons,
			text(t.TextError, "Error text"),
		),
	)

	return lipgloss.JoinVertical(lipgloss.Left, titlebar, border, body)
}

func renderControls(r *lipgloss.Renderer, t palette.Theme) string {
	type control struct {
		bg, corner rgb.Color
		glyph      string
	}
	controls := []control{
		{t.CloseButtonBg, t.CloseButtonCorner, "✕"},
		{t.MinimizeButtonBg, t.MinimizeButtonCorner, "─"},
		{t.MaximizeButtonBg, t.MaximizeButtonCorner, "□"},
	}

	parts := make([]string, 0, len(controls))
	switch t.Platform {
	case platform.MacLike:
		for _, c := range controls {
			parts = append(parts, r.NewStyle().Foreground(color(c.bg)).Background(color(t.TitlebarBg)).Render("●"))
		}
		return strings.Join(parts, r.NewStyle().Background(color(t.TitlebarBg)).Render(" "))
	default:
		// Minimize, maximize, close from left to right.
		order := []control{controls[1], controls[2], controls[0]}
		for _, c := range order {
			parts = append(parts, r.NewStyle().
				Background(color(c.bg)).
				Foreground(color(t.TextPrimary)).
				Padding(0, 1).
				Render(c.glyph))
		}
		return strings.Join(parts, "")
	}
}
