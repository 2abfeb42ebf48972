// Package palette builds the complete set of chrome and control colors for
// a platform from its fixed design tables and the probed preferences.
package palette

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/tOgg1/nativetheme/internal/platform"
	"github.com/tOgg1/nativetheme/internal/rgb"
)

// Theme is the resolved palette. It is a value: rebuild it instead of
// editing a copy in place.
type Theme struct {
	Platform platform.Tag `json:"platform" yaml:"platform"`
	Dark     bool         `json:"dark" yaml:"dark"`
	Accent   rgb.Color    `json:"accent" yaml:"accent"`

	// Window chrome
	TitlebarBg     rgb.Color `json:"titlebar_bg" yaml:"titlebar_bg"`
	TitlebarBorder rgb.Color `json:"titlebar_border" yaml:"titlebar_border"`
	TitlebarHeight float64   `json:"titlebar_height" yaml:"titlebar_height"`

	// Window controls (traffic lights on macOS)
	CloseButtonBg        rgb.Color `json:"close_button_bg" yaml:"close_button_bg"`
	CloseButtonCorner    rgb.Color `json:"close_button_corner" yaml:"close_button_corner"`
	MinimizeButtonBg     rgb.Color `json:"minimize_button_bg" yaml:"minimize_button_bg"`
	MinimizeButtonCorner rgb.Color `json:"minimize_button_corner" yaml:"minimize_button_corner"`
	MaximizeButtonBg     rgb.Color `json:"maximize_button_bg" yaml:"maximize_button_bg"`
	MaximizeButtonCorner rgb.Color `json:"maximize_button_corner" yaml:"maximize_button_corner"`

	// Content area
	Background rgb.Color `json:"background" yaml:"background"`

	// Inputs
	InputBg            rgb.Color `json:"input_bg" yaml:"input_bg"`
	InputBorder        rgb.Color `json:"input_border" yaml:"input_border"`
	InputBorderFocused rgb.Color `json:"input_border_focused" yaml:"input_border_focused"`
	InputText          rgb.Color `json:"input_text" yaml:"input_text"`

	// Buttons
	ButtonPrimaryBg        rgb.Color `json:"button_primary_bg" yaml:"button_primary_bg"`
	ButtonPrimaryBgHover   rgb.Color `json:"button_primary_bg_hover" yaml:"button_primary_bg_hover"`
	ButtonPrimaryText      rgb.Color `json:"button_primary_text" yaml:"button_primary_text"`
	ButtonSecondaryBg      rgb.Color `json:"button_secondary_bg" yaml:"button_secondary_bg"`
	ButtonSecondaryBgHover rgb.Color `json:"button_secondary_bg_hover" yaml:"button_secondary_bg_hover"`
	ButtonSecondaryText    rgb.Color `json:"button_secondary_text" yaml:"button_secondary_text"`
	ButtonSecondaryBorder  rgb.Color `json:"button_secondary_border" yaml:"button_secondary_border"`

	// Text
	TextPrimary   rgb.Color `json:"text_primary" yaml:"text_primary"`
	TextSecondary rgb.Color `json:"text_secondary" yaml:"text_secondary"`
	TextError     rgb.Color `json:"text_error" yaml:"text_error"`
}

// NamedColor is one color field of a Theme.
type NamedColor struct {
	Name  string
	Color rgb.Color
}

var colorType = reflect.TypeOf(rgb.Color(0))

// Colors lists the palette's color fields in declaration order, named by
// their snake_case key. The resolved Accent is not included.
func (t Theme) Colors() []NamedColor {
	v := reflect.ValueOf(t)
	typ := v.Type()

	colors := make([]NamedColor, 0, typ.NumField())
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if field.Type != colorType || field.Name == "Accent" {
			continue
		}
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		colors = append(colors, NamedColor{Name: name, Color: v.Field(i).Interface().(rgb.Color)})
	}
	return colors
}

// Validate reports the first field left unset.
func (t Theme) Validate() error {
	if t.TitlebarHeight <= 0 {
		return fmt.Errorf("titlebar_height must be positive, got %v", t.TitlebarHeight)
	}
	if !t.Accent.Valid() {
		return fmt.Errorf("accent is unset")
	}
	for _, c := range t.Colors() {
		if !c.Color.Valid() {
			return fmt.Errorf("%s is unset", c.Name)
		}
	}
	return nil
}
