// Package rgb holds the opaque 24-bit color type used by the theme engine
// and the per-channel transforms derived colors are computed with.
package rgb

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

const opaque = 0xFF000000

// Color is an opaque 24-bit RGB color stored as 0xAARRGGBB.
//
// Every constructor sets the alpha byte, so the zero Color is not black:
// it is "unset" and reports Valid() == false.
type Color uint32

// Hex builds a color from a 0xRRGGBB literal. Bits above the low 24 are
// discarded, which also strips an alpha channel from 0xAARRGGBB input.
func Hex(v uint32) Color {
	return Color(opaque | v&0xFFFFFF)
}

// New builds a color from its three channels.
func New(r, g, b uint8) Color {
	return Color(opaque | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// Parse reads a "#RRGGBB" string.
func Parse(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	if len(s) != 7 && len(s) != 4 {
		return 0, fmt.Errorf("parse color %q: want #RRGGBB or #RGB", s)
	}
	// colorful.Hex stops scanning at the first non-hex rune.
	if _, err := strconv.ParseUint(s[1:], 16, 32); err != nil {
		return 0, fmt.Errorf("parse color %q: not a hex value", s)
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return 0, fmt.Errorf("parse color %q: %w", s, err)
	}
	return New(c.RGB255()), nil
}

// Valid reports whether c was produced by a constructor.
func (c Color) Valid() bool {
	return uint32(c)&opaque == opaque
}

func (c Color) R() uint8 { return uint8(c >> 16) }
func (c Color) G() uint8 { return uint8(c >> 8) }
func (c Color) B() uint8 { return uint8(c) }

// Uint24 returns the color as 0xRRGGBB.
func (c Color) Uint24() uint32 {
	return uint32(c) & 0xFFFFFF
}

// String returns "#RRGGBB", or "unset" for the zero color.
func (c Color) String() string {
	if !c.Valid() {
		return "unset"
	}
	return fmt.Sprintf("#%06X", c.Uint24())
}

// MarshalText implements encoding.TextMarshaler.
func (c Color) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("marshal unset color")
	}
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Darken scales every channel of c by factor and truncates toward zero.
//
// factor must be in [0, 1]; larger values are not guarded and may wrap.
func Darken(c Color, factor float64) Color {
	scale := func(v uint8) uint8 {
		return uint8(uint32(float64(v) * factor))
	}
	return Color(uint32(c)&opaque | uint32(scale(c.R()))<<16 | uint32(scale(c.G()))<<8 | uint32(scale(c.B())))
}
