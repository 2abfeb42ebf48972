package probe

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/tOgg1/nativetheme/internal/rgb"
)

// macAccents maps the AppleAccentColor index to the sRGB value of
// NSColor.controlAccentColor for that choice.
var macAccents = map[int]rgb.Color{
	-1: rgb.Hex(0x989898), // graphite
	0:  rgb.Hex(0xE0383E), // red
	1:  rgb.Hex(0xF7821B), // orange
	2:  rgb.Hex(0xFCB827), // yellow
	3:  rgb.Hex(0x62BA46), // green
	4:  rgb.Hex(0x007AFF), // blue
	5:  rgb.Hex(0x953D96), // purple
	6:  rgb.Hex(0xF74F9E), // pink
}

// Darwin reads appearance and accent color from the macOS global domain.
type Darwin struct {
	opts options
}

// NewDarwin creates the macOS probe.
func NewDarwin(opts ...Option) *Darwin {
	return newDarwin(newOptions(opts))
}

func newDarwin(o options) *Darwin {
	return &Darwin{opts: o}
}

func (d *Darwin) Name() string { return "darwin" }

// Probe queries appearance and accent independently.
func (d *Darwin) Probe(ctx context.Context) Preferences {
	var prefs Preferences

	dark, err := d.darkMode(ctx)
	if err != nil {
		d.opts.unavailable(d.Name(), "appearance", err)
	} else {
		prefs.DarkMode = dark
	}

	accent, err := d.accent(ctx)
	if err != nil {
		d.opts.unavailable(d.Name(), "accent", err)
	} else {
		prefs.Accent = accent
	}

	return prefs
}

func (d *Darwin) darkMode(ctx context.Context) (bool, error) {
	out, err := d.opts.run(ctx, "defaults", "read", "-g", "AppleInterfaceStyle")
	if err != nil {
		// The key only exists while dark appearance is active.
		if isMissingDefault(err) {
			return false, nil
		}
		return false, err
	}
	return strings.EqualFold(out, "Dark"), nil
}

func (d *Darwin) accent(ctx context.Context) (rgb.Color, error) {
	out, err := d.opts.run(ctx, "defaults", "read", "-g", "AppleAccentColor")
	if err != nil {
		// Missing means "multicolor": no explicit accent.
		if isMissingDefault(err) {
			return 0, nil
		}
		return 0, err
	}

	index, err := strconv.Atoi(out)
	if err != nil {
		return 0, fmt.Errorf("parse AppleAccentColor %q: %w", out, err)
	}
	accent, ok := macAccents[index]
	if !ok {
		return 0, fmt.Errorf("%w: unknown AppleAccentColor %d", ErrUnavailable, index)
	}
	return accent, nil
}

// isMissingDefault reports whether err is `defaults read` exiting 1 for an
// absent key.
func isMissingDefault(err error) bool {
	var execErr *ExecError
	return errors.As(err, &execErr) && execErr.ExitCode == 1
}
