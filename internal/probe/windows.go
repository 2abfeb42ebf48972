package probe

import (
	"context"

	"github.com/tOgg1/nativetheme/internal/rgb"
)

// Windows reads the DWM colorization color.
type Windows struct {
	opts         options
	colorization func() (uint32, error)
}

// NewWindows creates the Windows probe.
func NewWindows(opts ...Option) *Windows {
	return newWindows(newOptions(opts))
}

func newWindows(o options) *Windows {
	return &Windows{opts: o, colorization: dwmColorization}
}

func (w *Windows) Name() string { return "windows" }

// Probe returns the colorization color as accent. Dark mode is always
// reported as off.
// TODO: read AppsUseLightTheme under HKCU\Software\Microsoft\Windows\CurrentVersion\Themes\Personalize.
func (w *Windows) Probe(context.Context) Preferences {
	prefs := Preferences{DarkMode: false}

	value, err := w.colorization()
	if err != nil {
		w.opts.unavailable(w.Name(), "accent", err)
		return prefs
	}
	// DWM returns 0xAARRGGBB; Hex drops the alpha byte.
	prefs.Accent = rgb.Hex(value)
	return prefs
}
