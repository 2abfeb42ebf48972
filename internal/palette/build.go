package palette

import (
	"github.com/tOgg1/nativetheme/internal/platform"
	"github.com/tOgg1/nativetheme/internal/probe"
	"github.com/tOgg1/nativetheme/internal/rgb"
)

// HoverFactor darkens the accent into the primary-button hover color.
const HoverFactor = 0.9

var defaultAccents = map[platform.Tag]rgb.Color{
	platform.MacLike:     rgb.Hex(0x007AFF),
	platform.WindowsLike: rgb.Hex(0x0078D4),
	platform.LinuxLike:   rgb.Hex(0x3584E4),
}

// DefaultAccent is the accent a platform uses when the host reports none.
func DefaultAccent(tag platform.Tag) rgb.Color {
	if accent, ok := defaultAccents[tag]; ok {
		return accent
	}
	return defaultAccents[platform.LinuxLike]
}

// Build returns the complete theme for tag under prefs.
func Build(tag platform.Tag, prefs probe.Preferences) Theme {
	accent := prefs.AccentOr(DefaultAccent(tag))

	var table Theme
	switch tag {
	case platform.MacLike:
		table = macOSTable(prefs.DarkMode)
	case platform.WindowsLike:
		table = windowsTable(prefs.DarkMode)
	default:
		tag = platform.LinuxLike
		table = linuxTable(prefs.DarkMode)
	}

	table.Platform = tag
	table.Dark = prefs.DarkMode
	return withAccent(table, accent)
}

// withAccent fills the accent-driven fields from a single accent value.
func withAccent(t Theme, accent rgb.Color) Theme {
	t.Accent = accent
	t.InputBorderFocused = accent
	t.ButtonPrimaryBg = accent
	t.ButtonPrimaryBgHover = rgb.Darken(accent, HoverFactor)
	return t
}
