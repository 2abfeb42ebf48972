package palette

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
	"pgregory.net/rapid"

	"github.com/tOgg1/nativetheme/internal/platform"
	"github.com/tOgg1/nativetheme/internal/probe"
	"github.com/tOgg1/nativetheme/internal/rgb"
)

func drawPreferences(rt *rapid.T) probe.Preferences {
	prefs := probe.Preferences{DarkMode: rapid.Bool().Draw(rt, "dark")}
	if rapid.Bool().Draw(rt, "hasAccent") {
		prefs.Accent = rgb.Hex(rapid.Uint32Range(0, 0xFFFFFF).Draw(rt, "accent"))
	}
	return prefs
}

func TestBuildIsTotal(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		tag := rapid.SampledFrom(platform.All()).Draw(rt, "platform")
		prefs := drawPreferences(rt)

		theme := Build(tag, prefs)
		if err := theme.Validate(); err != nil {
			rt.Fatalf("Build(%s, %+v): %v", tag, prefs, err)
		}
		if theme.Platform != tag || theme.Dark != prefs.DarkMode {
			rt.Fatalf("metadata mismatch: %s/%v", theme.Platform, theme.Dark)
		}
	})
}

func TestBuildAccentPropagation(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		tag := rapid.SampledFrom(platform.All()).Draw(rt, "platform")
		prefs := drawPreferences(rt)

		theme := Build(tag, prefs)
		accent := prefs.AccentOr(DefaultAccent(tag))

		if theme.InputBorderFocused != accent || theme.ButtonPrimaryBg != accent || theme.Accent != accent {
			rt.Fatalf("accent fields %s/%s/%s, want %s",
				theme.InputBorderFocused, theme.ButtonPrimaryBg, theme.Accent, accent)
		}
		if want := rgb.Darken(accent, 0.9); theme.ButtonPrimaryBgHover != want {
			rt.Fatalf("hover %s, want %s", theme.ButtonPrimaryBgHover, want)
		}
	})
}

func TestBuildAccentDoesNotTouchTable(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		tag := rapid.SampledFrom(platform.All()).Draw(rt, "platform")
		dark := rapid.Bool().Draw(rt, "dark")
		a := rgb.Hex(rapid.Uint32Range(0, 0xFFFFFF).Draw(rt, "a"))
		b := rgb.Hex(rapid.Uint32Range(0, 0xFFFFFF).Draw(rt, "b"))

		ta := Build(tag, probe.Preferences{DarkMode: dark, Accent: a})
		tb := Build(tag, probe.Preferences{DarkMode: dark, Accent: b})

		accentFields := map[string]bool{
			"input_border_focused":    true,
			"button_primary_bg":       true,
			"button_primary_bg_hover": true,
		}
		ca, cb := ta.Colors(), tb.Colors()
		for i := range ca {
			if accentFields[ca[i].Name] {
				continue
			}
			if ca[i] != cb[i] {
				rt.Fatalf("%s depends on accent: %s vs %s", ca[i].Name, ca[i].Color, cb[i].Color)
			}
		}
	})
}

func TestDefaultAccents(t *testing.T) {
	require.Equal(t, rgb.Hex(0x007AFF), DefaultAccent(platform.MacLike))
	require.Equal(t, rgb.Hex(0x0078D4), DefaultAccent(platform.WindowsLike))
	require.Equal(t, rgb.Hex(0x3584E4), DefaultAccent(platform.LinuxLike))
	require.Equal(t, rgb.Hex(0x3584E4), DefaultAccent(platform.Tag(99)))
}

func TestBuildUnknownTagFallsBackToLinux(t *testing.T) {
	theme := Build(platform.Tag(99), probe.Preferences{})
	require.NoError(t, theme.Validate())
	require.Equal(t, platform.LinuxLike, theme.Platform)
	require.Equal(t, Build(platform.LinuxLike, probe.Preferences{}), theme)
}

func TestDarkAndLightTablesDiffer(t *testing.T) {
	for _, tag := range platform.All() {
		t.Run(tag.String(), func(t *testing.T) {
			dark := Build(tag, probe.Preferences{DarkMode: true})
			light := Build(tag, probe.Preferences{DarkMode: false})

			require.NotEqual(t, dark.Background, light.Background)
			require.NotEqual(t, dark.TextPrimary, light.TextPrimary)
			require.NotEqual(t, dark.TitlebarBg, light.TitlebarBg)
			require.Equal(t, dark.TitlebarHeight, light.TitlebarHeight)
		})
	}
}

func TestWindowControlRules(t *testing.T) {
	macDark := Build(platform.MacLike, probe.Preferences{DarkMode: true})
	macLight := Build(platform.MacLike, probe.Preferences{DarkMode: false})
	require.Equal(t, rgb.Hex(0xFF5F57), macDark.CloseButtonBg)
	require.Equal(t, macDark.CloseButtonBg, macLight.CloseButtonBg)
	require.Equal(t, macDark.MinimizeButtonBg, macLight.MinimizeButtonBg)
	require.Equal(t, macDark.MaximizeButtonCorner, macLight.MaximizeButtonCorner)

	winDark := Build(platform.WindowsLike, probe.Preferences{DarkMode: true})
	winLight := Build(platform.WindowsLike, probe.Preferences{DarkMode: false})
	require.Equal(t, winDark.CloseButtonBg, winLight.CloseButtonBg)
	require.NotEqual(t, winDark.MinimizeButtonBg, winLight.MinimizeButtonBg)
	require.Equal(t, winDark.TitlebarBg, winDark.MaximizeButtonBg)
	require.Equal(t, winLight.TitlebarBorder, winLight.MinimizeButtonCorner)
}

func TestScenarioMacDarkWithSystemBlue(t *testing.T) {
	theme := Build(platform.MacLike, probe.Preferences{DarkMode: true, Accent: rgb.Hex(0x007AFF)})

	require.Equal(t, rgb.Hex(0x007AFF), theme.ButtonPrimaryBg)
	require.Equal(t, rgb.Darken(rgb.Hex(0x007AFF), 0.9), theme.ButtonPrimaryBgHover)
	require.Equal(t, rgb.Hex(0x006DE5), theme.ButtonPrimaryBgHover)
	require.Equal(t, rgb.Hex(0x1E1E1E), theme.Background)
	require.Equal(t, 22.0, theme.TitlebarHeight)
}

func TestScenarioWindowsLightDefaultAccent(t *testing.T) {
	theme := Build(platform.WindowsLike, probe.Preferences{DarkMode: false})

	require.Equal(t, rgb.Hex(0x0078D4), theme.ButtonPrimaryBg)
	require.Equal(t, rgb.Hex(0x0078D4), theme.InputBorderFocused)
	require.Equal(t, rgb.Hex(0x006CBE), theme.ButtonPrimaryBgHover)
	require.Equal(t, 32.0, theme.TitlebarHeight)
	require.Equal(t, rgb.Hex(0xFFFFFF), theme.Background)
}

func TestScenarioLinuxDarkAdwaita(t *testing.T) {
	accent := rgb.Hex(0x3584E4)
	theme := Build(platform.LinuxLike, probe.Preferences{DarkMode: true, Accent: accent})

	want := linuxTable(true)
	want.Platform = platform.LinuxLike
	want.Dark = true
	want.Accent = accent
	want.InputBorderFocused = accent
	want.ButtonPrimaryBg = accent
	want.ButtonPrimaryBgHover = rgb.Hex(0x2F76CD)

	require.Equal(t, want, theme)
}

func TestColorsOrderAndNames(t *testing.T) {
	colors := Build(platform.MacLike, probe.Preferences{}).Colors()

	require.Len(t, colors, 23)
	require.Equal(t, "titlebar_bg", colors[0].Name)
	require.Equal(t, "titlebar_border", colors[1].Name)
	require.Equal(t, "close_button_bg", colors[2].Name)
	require.Equal(t, "text_error", colors[len(colors)-1].Name)
	for _, c := range colors {
		require.NotEqual(t, "accent", c.Name)
	}
}

func TestValidateReportsUnsetField(t *testing.T) {
	require.ErrorContains(t, Theme{}.Validate(), "titlebar_height")

	theme := Build(platform.LinuxLike, probe.Preferences{})
	theme.TextError = 0
	require.ErrorContains(t, theme.Validate(), "text_error is unset")
}

func TestThemeEncoding(t *testing.T) {
	theme := Build(platform.WindowsLike, probe.Preferences{})

	data, err := json.Marshal(theme)
	require.NoError(t, err)
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, "windows", decoded["platform"])
	require.Equal(t, "#0078D4", decoded["button_primary_bg"])
	require.Equal(t, 32.0, decoded["titlebar_height"])

	out, err := yaml.Marshal(theme)
	require.NoError(t, err)
	require.Contains(t, string(out), "button_primary_bg_hover:")
	require.Contains(t, string(out), "#006CBE")
	require.Contains(t, string(out), "platform: windows")
}
