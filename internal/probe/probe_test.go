package probe

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/tOgg1/nativetheme/internal/platform"
	"github.com/tOgg1/nativetheme/internal/rgb"
)

type fakeResult struct {
	out string
	err error
}

type fakeRunner struct {
	results map[string]fakeResult
	paths   map[string]string
	calls   []string
}

func (f *fakeRunner) Run(_ context.Context, name string, args ...string) ([]byte, error) {
	key := strings.Join(append([]string{name}, args...), " ")
	f.calls = append(f.calls, key)
	result, ok := f.results[key]
	if !ok {
		return nil, &ExecError{Command: key, ExitCode: 127, Err: errors.New("not found")}
	}
	return []byte(result.out), result.err
}

func (f *fakeRunner) LookPath(name string) (string, error) {
	if path, ok := f.paths[name]; ok {
		return path, nil
	}
	return "", errors.New("executable file not found in $PATH")
}

func missingKey(cmd string) fakeResult {
	return fakeResult{err: &ExecError{Command: cmd, ExitCode: 1, Err: errors.New("exit status 1")}}
}

func TestPreferencesAccentOr(t *testing.T) {
	fallback := rgb.Hex(0x0078D4)

	require.Equal(t, fallback, Preferences{}.AccentOr(fallback))
	require.False(t, Preferences{}.HasAccent())

	prefs := Preferences{Accent: rgb.Hex(0x000000)}
	require.True(t, prefs.HasAccent(), "black accent is still an accent")
	require.Equal(t, rgb.Hex(0x000000), prefs.AccentOr(fallback))
}

func TestUnavailableErrorUnwrap(t *testing.T) {
	cause := errors.New("boom")
	err := &UnavailableError{Query: "accent", Err: cause}

	require.True(t, errors.Is(err, ErrUnavailable))
	require.True(t, errors.Is(err, cause))
	require.Equal(t, "accent: boom", err.Error())
}

func TestForRoutesByPlatform(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		host platform.Tag
		tag  platform.Tag
		want string
	}{
		{host: platform.MacLike, tag: platform.MacLike, want: "darwin"},
		{host: platform.WindowsLike, tag: platform.WindowsLike, want: "windows"},
		{host: platform.LinuxLike, tag: platform.LinuxLike, want: "gtk"},
		{host: platform.LinuxLike, tag: platform.MacLike, want: "unavailable"},
		{host: platform.MacLike, tag: platform.WindowsLike, want: "unavailable"},
	}

	for _, tt := range tests {
		t.Run(tt.tag.String()+"_on_"+tt.host.String(), func(t *testing.T) {
			p := For(tt.tag, WithHost(tt.host), WithRunner(&fakeRunner{}), WithGTKConfigDir(dir))
			require.Equal(t, tt.want, p.Name())
		})
	}
}

func TestUnavailableAndStatic(t *testing.T) {
	require.Equal(t, Preferences{}, Unavailable{}.Probe(context.Background()))

	prefs := Preferences{DarkMode: true, Accent: rgb.Hex(0x3584E4)}
	require.Equal(t, prefs, Static(prefs).Probe(context.Background()))
}

func TestDarwinProbe(t *testing.T) {
	const (
		style  = "defaults read -g AppleInterfaceStyle"
		accent = "defaults read -g AppleAccentColor"
	)

	tests := []struct {
		name    string
		results map[string]fakeResult
		want    Preferences
	}{
		{
			name: "dark with purple accent",
			results: map[string]fakeResult{
				style:  {out: "Dark\n"},
				accent: {out: "5\n"},
			},
			want: Preferences{DarkMode: true, Accent: rgb.Hex(0x953D96)},
		},
		{
			name: "light with graphite accent",
			results: map[string]fakeResult{
				style:  missingKey(style),
				accent: {out: "-1"},
			},
			want: Preferences{DarkMode: false, Accent: rgb.Hex(0x989898)},
		},
		{
			name: "multicolor has no accent",
			results: map[string]fakeResult{
				style:  {out: "Dark"},
				accent: missingKey(accent),
			},
			want: Preferences{DarkMode: true},
		},
		{
			name: "unknown accent index",
			results: map[string]fakeResult{
				style:  {out: "Dark"},
				accent: {out: "42"},
			},
			want: Preferences{DarkMode: true},
		},
		{
			name: "garbage accent",
			results: map[string]fakeResult{
				style:  missingKey(style),
				accent: {out: "blue"},
			},
			want: Preferences{},
		},
		{
			name:    "defaults binary missing",
			results: map[string]fakeResult{},
			want:    Preferences{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := &fakeRunner{results: tt.results}
			p := NewDarwin(WithRunner(runner), WithLogger(zerolog.Nop()))
			require.Equal(t, tt.want, p.Probe(context.Background()))
			require.Len(t, runner.calls, 2, "appearance and accent are queried independently")
		})
	}
}

func TestWindowsProbeStripsAlpha(t *testing.T) {
	p := NewWindows(WithLogger(zerolog.Nop()))
	p.colorization = func() (uint32, error) { return 0xC40078D4, nil }

	prefs := p.Probe(context.Background())
	require.False(t, prefs.DarkMode)
	require.Equal(t, rgb.Hex(0x0078D4), prefs.Accent)
}

func TestWindowsProbeDegrades(t *testing.T) {
	var buf bytes.Buffer
	p := NewWindows(WithLogger(zerolog.New(&buf)))
	p.colorization = func() (uint32, error) { return 0, ErrUnavailable }

	require.Equal(t, Preferences{}, p.Probe(context.Background()))
	require.Contains(t, buf.String(), "preference unavailable")
	require.Contains(t, buf.String(), `"probe":"windows"`)
}

func TestGTKThemeAccent(t *testing.T) {
	tests := []struct {
		theme string
		want  rgb.Color
		ok    bool
	}{
		{theme: "Adwaita", want: rgb.Hex(0x3584E4), ok: true},
		{theme: "Adwaita-dark", want: rgb.Hex(0x3584E4), ok: true},
		{theme: "io.elementary.stylesheet.blueberry", want: rgb.Hex(0x3689E6), ok: true},
		{theme: "Yaru-dark", want: rgb.Hex(0xE95420), ok: true},
		{theme: "Breeze", want: rgb.Hex(0x3DAEE9), ok: true},
		{theme: "adwaita", ok: false},
		{theme: "Arc-Dark", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.theme, func(t *testing.T) {
			got, ok := GTKThemeAccent(tt.theme)
			require.Equal(t, tt.ok, ok)
			require.Equal(t, tt.want, got)
		})
	}
}

func writeSettingsINI(t *testing.T, dir, content string) {
	t.Helper()
	path := filepath.Join(dir, "gtk-3.0", "settings.ini")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestGTKProbeFromSettingsINI(t *testing.T) {
	dir := t.TempDir()
	writeSettingsINI(t, dir, `# written by gnome-tweaks
[Settings]
gtk-theme-name = Adwaita-dark
gtk-application-prefer-dark-theme=1
gtk-icon-theme-name=Papirus
`)

	runner := &fakeRunner{}
	p := NewGTK(WithRunner(runner), WithGTKConfigDir(dir), WithLogger(zerolog.Nop()))

	prefs := p.Probe(context.Background())
	require.Equal(t, Preferences{DarkMode: true, Accent: rgb.Hex(0x3584E4)}, prefs)
	require.Empty(t, runner.calls, "settings.ini answers both queries")
}

func TestGTKProbeFallsBackToGSettings(t *testing.T) {
	runner := &fakeRunner{
		paths: map[string]string{"gsettings": "/usr/bin/gsettings"},
		results: map[string]fakeResult{
			"/usr/bin/gsettings get org.gnome.desktop.interface color-scheme": {out: "'prefer-dark'\n"},
			"/usr/bin/gsettings get org.gnome.desktop.interface gtk-theme":    {out: "'elementary'\n"},
		},
	}
	p := NewGTK(WithRunner(runner), WithGTKConfigDir(t.TempDir()), WithLogger(zerolog.Nop()))

	prefs := p.Probe(context.Background())
	require.Equal(t, Preferences{DarkMode: true, Accent: rgb.Hex(0x3689E6)}, prefs)
}

func TestGTKProbeUnknownTheme(t *testing.T) {
	dir := t.TempDir()
	writeSettingsINI(t, dir, "[Settings]\ngtk-theme-name=Arc-Dark\ngtk-application-prefer-dark-theme=false\n")

	p := NewGTK(WithRunner(&fakeRunner{}), WithGTKConfigDir(dir), WithLogger(zerolog.Nop()))
	require.Equal(t, Preferences{}, p.Probe(context.Background()))
}

func TestGTKProbeToolkitUnavailable(t *testing.T) {
	var buf bytes.Buffer
	runner := &fakeRunner{}
	p := NewGTK(WithRunner(runner), WithGTKConfigDir(t.TempDir()), WithLogger(zerolog.New(&buf)))

	require.Equal(t, Preferences{DarkMode: false}, p.Probe(context.Background()))
	require.Empty(t, runner.calls)
	require.Contains(t, buf.String(), "toolkit")

	// Initialization is idempotent: the failure is remembered.
	err := p.toolkit.init(runner)
	require.True(t, errors.Is(err, ErrToolkitUnavailable))
	require.Equal(t, Preferences{}, p.Probe(context.Background()))
}

func TestGTKProbeBadPreferDarkValue(t *testing.T) {
	dir := t.TempDir()
	writeSettingsINI(t, dir, "[Settings]\ngtk-theme-name=Adwaita\ngtk-application-prefer-dark-theme=maybe\n")

	p := NewGTK(WithRunner(&fakeRunner{}), WithGTKConfigDir(dir), WithLogger(zerolog.Nop()))
	require.Equal(t, Preferences{Accent: rgb.Hex(0x3584E4)}, p.Probe(context.Background()))
}

func TestReadSettingsINI(t *testing.T) {
	dir := t.TempDir()
	writeSettingsINI(t, dir, "; comment\n[settings]\ngtk-theme-name=\"Yaru\"\nbroken line\ngtk-application-prefer-dark-theme=yes\n[Other]\nkey=value\n")

	file, err := readSettingsINI(filepath.Join(dir, "gtk-3.0", "settings.ini"))
	require.NoError(t, err)

	settings := file.Section(settingsINISection)
	require.Equal(t, "Yaru", settings.Key(settingThemeName).String())
	dark, err := settings.Key(settingPreferDark).Bool()
	require.NoError(t, err)
	require.True(t, dark)
	require.False(t, settings.HasKey("broken line"))
	require.Equal(t, "value", file.Section("other").Key("key").String())

	_, err = readSettingsINI(filepath.Join(dir, "missing.ini"))
	require.Error(t, err)
}

func TestGTKProbeLowercaseSettingsSection(t *testing.T) {
	dir := t.TempDir()
	writeSettingsINI(t, dir, "[settings]\ngtk-theme-name = \"Breeze\"\ngtk-application-prefer-dark-theme = true\n")

	runner := &fakeRunner{}
	p := NewGTK(WithRunner(runner), WithGTKConfigDir(dir), WithLogger(zerolog.Nop()))

	require.Equal(t, Preferences{DarkMode: true, Accent: rgb.Hex(0x3DAEE9)}, p.Probe(context.Background()))
	require.Empty(t, runner.calls)
}
