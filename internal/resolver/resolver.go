// Package resolver is the entry point of the theme engine: it detects the
// platform, probes system preferences and builds the palette.
package resolver

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/tOgg1/nativetheme/internal/logging"
	"github.com/tOgg1/nativetheme/internal/palette"
	"github.com/tOgg1/nativetheme/internal/platform"
	"github.com/tOgg1/nativetheme/internal/probe"
	"github.com/tOgg1/nativetheme/internal/rgb"
)

// Appearance overrides the probed dark-mode flag.
type Appearance string

const (
	AppearanceAuto  Appearance = "auto"
	AppearanceLight Appearance = "light"
	AppearanceDark  Appearance = "dark"
)

// ParseAppearance validates an appearance name. Empty means auto.
func ParseAppearance(s string) (Appearance, error) {
	switch a := Appearance(strings.ToLower(strings.TrimSpace(s))); a {
	case "", AppearanceAuto:
		return AppearanceAuto, nil
	case AppearanceLight, AppearanceDark:
		return a, nil
	default:
		return "", fmt.Errorf("unknown appearance %q (want auto, light or dark)", s)
	}
}

// Resolver runs one detect, probe, build pass per Resolve call. It holds
// no state between calls.
type Resolver struct {
	tag        platform.Tag
	probe      probe.Probe
	appearance Appearance
	accent     rgb.Color
	timeout    time.Duration
	logger     zerolog.Logger
	logSet     bool
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithPlatform resolves for tag instead of the host platform. Native
// preferences are only reachable for the host; other tags use defaults.
func WithPlatform(tag platform.Tag) Option {
	return func(r *Resolver) {
		r.tag = tag
	}
}

// WithProbe replaces the platform probe.
func WithProbe(p probe.Probe) Option {
	return func(r *Resolver) {
		r.probe = p
	}
}

// WithAppearance forces light or dark mode after probing.
func WithAppearance(a Appearance) Option {
	return func(r *Resolver) {
		r.appearance = a
	}
}

// WithAccent forces the accent color after probing.
func WithAccent(c rgb.Color) Option {
	return func(r *Resolver) {
		r.accent = c
	}
}

// WithProbeTimeout bounds each native query.
func WithProbeTimeout(d time.Duration) Option {
	return func(r *Resolver) {
		r.timeout = d
	}
}

// WithLogger sets the resolver and probe logger.
func WithLogger(l zerolog.Logger) Option {
	return func(r *Resolver) {
		r.logger = l
		r.logSet = true
	}
}

// New creates a Resolver for the host platform unless overridden.
func New(opts ...Option) *Resolver {
	r := &Resolver{
		tag:        platform.Detect(),
		appearance: AppearanceAuto,
		timeout:    probe.DefaultTimeout,
		logger:     logging.Component("resolver"),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.probe == nil {
		popts := []probe.Option{probe.WithTimeout(r.timeout)}
		if r.logSet {
			popts = append(popts, probe.WithLogger(r.logger))
		}
		r.probe = probe.For(r.tag, popts...)
	}
	return r
}

// Platform returns the platform this resolver builds for.
func (r *Resolver) Platform() platform.Tag {
	return r.tag
}

// ProbeName names the probe strategy in use.
func (r *Resolver) ProbeName() string {
	return r.probe.Name()
}

// Preferences probes the host and applies the configured overrides.
func (r *Resolver) Preferences(ctx context.Context) probe.Preferences {
	prefs := r.probe.Probe(ctx)

	switch r.appearance {
	case AppearanceDark:
		prefs.DarkMode = true
	case AppearanceLight:
		prefs.DarkMode = false
	}
	if r.accent.Valid() {
		prefs.Accent = r.accent
	}
	return prefs
}

// Resolve returns the theme for the current preferences. It cannot fail.
// A logger attached with logging.WithContext takes precedence over the
// resolver's own.
func (r *Resolver) Resolve(ctx context.Context) palette.Theme {
	prefs := r.Preferences(ctx)
	theme := palette.Build(r.tag, prefs)

	logger := r.logger
	if logging.HasLogger(ctx) {
		logger = logging.FromContext(ctx)
	}
	logger.Debug().
		Stringer("platform", theme.Platform).
		Str("probe", r.probe.Name()).
		Bool("dark", theme.Dark).
		Bool("explicit_accent", prefs.HasAccent()).
		Stringer("accent", theme.Accent).
		Msg("theme resolved")
	return theme
}

// Resolve detects the host platform, probes its preferences and returns
// the resulting theme.
func Resolve() palette.Theme {
	return New().Resolve(context.Background())
}
