// Package platform identifies the host operating-system family for theming.
package platform

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownPlatform is returned by Parse for names that map to no tag.
var ErrUnknownPlatform = errors.New("unknown platform")

// Tag identifies an operating-system family.
type Tag int

const (
	MacLike Tag = iota
	WindowsLike
	LinuxLike
)

// Detect returns the tag of the platform this binary was built for.
// The value is fixed at compile time; see the GOOS-specific host files.
func Detect() Tag {
	return host
}

// All returns every known tag in declaration order.
func All() []Tag {
	return []Tag{MacLike, WindowsLike, LinuxLike}
}

func (t Tag) String() string {
	switch t {
	case MacLike:
		return "macos"
	case WindowsLike:
		return "windows"
	case LinuxLike:
		return "linux"
	default:
		return fmt.Sprintf("platform(%d)", int(t))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (t Tag) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Tag) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Parse converts a platform name into a Tag.
func Parse(name string) (Tag, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "macos", "mac", "darwin", "osx":
		return MacLike, nil
	case "windows", "win":
		return WindowsLike, nil
	case "linux", "gtk":
		return LinuxLike, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownPlatform, name)
	}
}
