// Package probe queries the host for the system preferences that drive
// theming: dark mode and accent color.
//
// Probes never fail. Any query that cannot be answered is logged at debug
// level and replaced by its default (light mode, no accent).
package probe

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/tOgg1/nativetheme/internal/logging"
	"github.com/tOgg1/nativetheme/internal/platform"
	"github.com/tOgg1/nativetheme/internal/rgb"
)

// DefaultTimeout bounds each native query.
const DefaultTimeout = 2 * time.Second

var (
	// ErrUnavailable marks a preference the host could not provide.
	ErrUnavailable = errors.New("preference unavailable")

	// ErrToolkitUnavailable indicates the desktop toolkit settings could not be loaded.
	ErrToolkitUnavailable = errors.New("desktop toolkit unavailable")
)

// UnavailableError records which query failed and why.
type UnavailableError struct {
	Query string
	Err   error
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("%s: %v", e.Query, e.Err)
}

func (e *UnavailableError) Unwrap() []error {
	return []error{ErrUnavailable, e.Err}
}

// Preferences is a point-in-time snapshot of the host's theme preferences.
type Preferences struct {
	DarkMode bool `json:"dark_mode" yaml:"dark_mode"`

	// Accent is the zero Color when the host reported none.
	Accent rgb.Color `json:"accent,omitempty" yaml:"accent,omitempty"`
}

// HasAccent reports whether the host supplied an accent color.
func (p Preferences) HasAccent() bool {
	return p.Accent.Valid()
}

// AccentOr returns the host accent, or fallback when there is none.
func (p Preferences) AccentOr(fallback rgb.Color) rgb.Color {
	if p.HasAccent() {
		return p.Accent
	}
	return fallback
}

// Probe reads system preferences for one platform.
type Probe interface {
	// Name identifies the strategy, e.g. "darwin" or "gtk".
	Name() string

	// Probe returns the current preferences. It never fails; unknown
	// fields keep their zero value.
	Probe(ctx context.Context) Preferences
}

// Option configures a probe.
type Option func(*options)

type options struct {
	runner   Runner
	timeout  time.Duration
	logger   zerolog.Logger
	host     platform.Tag
	gtkDir   string
	isolated bool
}

// WithRunner replaces the command runner used for native queries.
func WithRunner(r Runner) Option {
	return func(o *options) {
		if r != nil {
			o.runner = r
			o.isolated = true
		}
	}
}

// WithTimeout bounds each native query.
func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.timeout = d
		}
	}
}

// WithLogger sets the logger that receives unavailable-preference events.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithHost overrides the platform considered native by For.
func WithHost(tag platform.Tag) Option {
	return func(o *options) {
		o.host = tag
	}
}

// WithGTKConfigDir points the GTK probe at an alternate config directory
// (the one containing gtk-3.0/settings.ini).
func WithGTKConfigDir(dir string) Option {
	return func(o *options) {
		o.gtkDir = dir
		o.isolated = true
	}
}

func newOptions(opts []Option) options {
	o := options{
		runner:  SystemRunner{},
		timeout: DefaultTimeout,
		logger:  logging.Component("probe"),
		host:    platform.Detect(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// run executes one bounded query and returns its trimmed stdout.
func (o *options) run(ctx context.Context, name string, args ...string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	out, err := o.runner.Run(ctx, name, args...)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

func (o *options) unavailable(probe, query string, err error) {
	o.logger.Debug().
		Str("probe", probe).
		Err(&UnavailableError{Query: query, Err: err}).
		Msg("preference unavailable, using default")
}

// For returns the probe strategy for tag. Only the host platform's native
// APIs are reachable, so any other tag gets Unavailable.
func For(tag platform.Tag, opts ...Option) Probe {
	o := newOptions(opts)
	if tag != o.host {
		return Unavailable{}
	}
	switch tag {
	case platform.MacLike:
		return newDarwin(o)
	case platform.WindowsLike:
		return newWindows(o)
	case platform.LinuxLike:
		return newGTK(o)
	default:
		return Unavailable{}
	}
}

// Unavailable is the probe for platforms whose native APIs are not
// reachable from this process. It always reports the defaults.
type Unavailable struct{}

func (Unavailable) Name() string { return "unavailable" }

func (Unavailable) Probe(context.Context) Preferences { return Preferences{} }

// Static reports a fixed snapshot. It is useful for callers that already
// know the preferences and in tests.
type Static Preferences

func (Static) Name() string { return "static" }

func (s Static) Probe(context.Context) Preferences { return Preferences(s) }
