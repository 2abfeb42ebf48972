package probe

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/ini.v1"

	"github.com/tOgg1/nativetheme/internal/rgb"
)

const (
	gsettingsBinary    = "gsettings"
	gnomeInterface     = "org.gnome.desktop.interface"
	settingThemeName   = "gtk-theme-name"
	settingPreferDark  = "gtk-application-prefer-dark-theme"
	colorSchemeDark    = "prefer-dark"
	settingsINISection = "Settings"
)

// gtkThemeAccents maps theme-name substrings to the theme's accent.
// Order matters: the first match wins.
var gtkThemeAccents = []struct {
	substr string
	accent rgb.Color
}{
	{substr: "Adwaita", accent: rgb.Hex(0x3584E4)},
	{substr: "elementary", accent: rgb.Hex(0x3689E6)},
	{substr: "Yaru", accent: rgb.Hex(0xE95420)},
	{substr: "Breeze", accent: rgb.Hex(0x3DAEE9)},
}

// GTKThemeAccent returns the known accent for a GTK theme name.
func GTKThemeAccent(themeName string) (rgb.Color, bool) {
	for _, entry := range gtkThemeAccents {
		if strings.Contains(themeName, entry.substr) {
			return entry.accent, true
		}
	}
	return 0, false
}

// gtkToolkit is the settings service the GTK probe reads. It is loaded
// once; later calls return the first result.
type gtkToolkit struct {
	once      sync.Once
	err       error
	configDir string
	settings  *ini.Section
	gsettings string
}

var sharedToolkit = &gtkToolkit{}

func (t *gtkToolkit) init(runner Runner) error {
	t.once.Do(func() {
		dir := t.configDir
		if dir == "" {
			dir = defaultConfigDir()
		}

		file, iniErr := readSettingsINI(filepath.Join(dir, "gtk-3.0", "settings.ini"))
		if iniErr == nil {
			t.settings = file.Section(settingsINISection)
		}
		path, lookErr := runner.LookPath(gsettingsBinary)
		if lookErr == nil {
			t.gsettings = path
		}

		if iniErr != nil && lookErr != nil {
			t.err = fmt.Errorf("%w: %w", ErrToolkitUnavailable, errors.Join(iniErr, lookErr))
		}
	})
	return t.err
}

// setting returns the [Settings] key, or nil when settings.ini is absent
// or does not set it.
func (t *gtkToolkit) setting(key string) *ini.Key {
	if t.settings == nil || !t.settings.HasKey(key) {
		return nil
	}
	return t.settings.Key(key)
}

func defaultConfigDir() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config")
}

// readSettingsINI loads a GTK keyfile. Section names match case-insensitively
// and lines that are not key=value pairs are skipped, as GTK does.
func readSettingsINI(path string) (*ini.File, error) {
	file, err := ini.LoadSources(ini.LoadOptions{
		InsensitiveSections:     true,
		SkipUnrecognizableLines: true,
	}, path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return file, nil
}

// GTK reads theme name and dark preference from the GTK settings service.
type GTK struct {
	opts    options
	toolkit *gtkToolkit
}

// NewGTK creates the Linux probe.
func NewGTK(opts ...Option) *GTK {
	return newGTK(newOptions(opts))
}

func newGTK(o options) *GTK {
	toolkit := sharedToolkit
	if o.isolated {
		toolkit = &gtkToolkit{configDir: o.gtkDir}
	}
	return &GTK{opts: o, toolkit: toolkit}
}

func (g *GTK) Name() string { return "gtk" }

// Probe initializes the toolkit on first use, then reads both preferences.
func (g *GTK) Probe(ctx context.Context) Preferences {
	var prefs Preferences

	if err := g.toolkit.init(g.opts.runner); err != nil {
		g.opts.unavailable(g.Name(), "toolkit", err)
		return prefs
	}

	dark, err := g.darkMode(ctx)
	if err != nil {
		g.opts.unavailable(g.Name(), "prefer-dark", err)
	} else {
		prefs.DarkMode = dark
	}

	theme, err := g.themeName(ctx)
	if err != nil {
		g.opts.unavailable(g.Name(), "theme-name", err)
		return prefs
	}
	if accent, ok := GTKThemeAccent(theme); ok {
		prefs.Accent = accent
	} else {
		g.opts.logger.Debug().Str("theme", theme).Msg("no known accent for gtk theme")
	}
	return prefs
}

func (g *GTK) darkMode(ctx context.Context) (bool, error) {
	if key := g.toolkit.setting(settingPreferDark); key != nil {
		dark, err := key.Bool()
		if err != nil {
			return false, fmt.Errorf("parse %s %q: %w", settingPreferDark, key.String(), err)
		}
		return dark, nil
	}

	out, err := g.gsettings(ctx, "color-scheme")
	if err != nil {
		return false, err
	}
	return out == colorSchemeDark, nil
}

func (g *GTK) themeName(ctx context.Context) (string, error) {
	if key := g.toolkit.setting(settingThemeName); key != nil && key.String() != "" {
		return key.String(), nil
	}
	return g.gsettings(ctx, "gtk-theme")
}

func (g *GTK) gsettings(ctx context.Context, key string) (string, error) {
	if g.toolkit.gsettings == "" {
		return "", fmt.Errorf("%w: %s not found", ErrUnavailable, gsettingsBinary)
	}
	out, err := g.opts.run(ctx, g.toolkit.gsettings, "get", gnomeInterface, key)
	if err != nil {
		return "", err
	}
	out = strings.Trim(out, `'"`)
	if out == "" {
		return "", fmt.Errorf("%w: empty %s", ErrUnavailable, key)
	}
	return out, nil
}
