package palette

import "github.com/tOgg1/nativetheme/internal/rgb"

// The tables below leave InputBorderFocused, ButtonPrimaryBg and
// ButtonPrimaryBgHover empty; withAccent fills them.

func macOSTable(dark bool) Theme {
	if dark {
		return Theme{
			TitlebarBg:     rgb.Hex(0x202020),
			TitlebarBorder: rgb.Hex(0x1E1E1E),
			TitlebarHeight: 22.0,

			CloseButtonBg:        rgb.Hex(0xFF5F57),
			CloseButtonCorner:    rgb.Hex(0xE04943),
			MinimizeButtonBg:     rgb.Hex(0xFF8D2E),
			MinimizeButtonCorner: rgb.Hex(0xDEA123),
			MaximizeButtonBg:     rgb.Hex(0x28C940),
			MaximizeButtonCorner: rgb.Hex(0x1AAB29),

			Background: rgb.Hex(0x1E1E1E),

			InputBg:     rgb.Hex(0x2D2D2D),
			InputBorder: rgb.Hex(0x404040),
			InputText:   rgb.Hex(0xFFFFFF),

			ButtonPrimaryText:      rgb.Hex(0xFFFFFF),
			ButtonSecondaryBg:      rgb.Hex(0x2D2D2D),
			ButtonSecondaryBgHover: rgb.Hex(0x383838),
			ButtonSecondaryText:    rgb.Hex(0xFFFFFF),
			ButtonSecondaryBorder:  rgb.Hex(0x505050),

			TextPrimary:   rgb.Hex(0xFFFFFF),
			TextSecondary: rgb.Hex(0xA0A0A0),
			TextError:     rgb.Hex(0xFF6B6B),
		}
	}

	return Theme{
		TitlebarBg:     rgb.Hex(0xE8E8E8),
		TitlebarBorder: rgb.Hex(0xD0D0D0),
		TitlebarHeight: 22.0,

		CloseButtonBg:        rgb.Hex(0xFF5F57),
		CloseButtonCorner:    rgb.Hex(0xE04943),
		MinimizeButtonBg:     rgb.Hex(0xFF8D2E),
		MinimizeButtonCorner: rgb.Hex(0xDEA123),
		MaximizeButtonBg:     rgb.Hex(0x28C940),
		MaximizeButtonCorner: rgb.Hex(0x1AAB29),

		Background: rgb.Hex(0xEFEFEF),

		InputBg:     rgb.Hex(0xFFFFFF),
		InputBorder: rgb.Hex(0xCCCCCC),
		InputText:   rgb.Hex(0x000000),

		ButtonPrimaryText:      rgb.Hex(0xFFFFFF),
		ButtonSecondaryBg:      rgb.Hex(0xFFFFFF),
		ButtonSecondaryBgHover: rgb.Hex(0xF8F8F8),
		ButtonSecondaryText:    rgb.Hex(0x000000),
		ButtonSecondaryBorder:  rgb.Hex(0xB8B8B8),

		TextPrimary:   rgb.Hex(0x000000),
		TextSecondary: rgb.Hex(0x666666),
		TextError:     rgb.Hex(0xCC0000),
	}
}

// Windows minimize/maximize share the title bar colors; only close is red.
func windowsTable(dark bool) Theme {
	if dark {
		return Theme{
			TitlebarBg:     rgb.Hex(0x202020),
			TitlebarBorder: rgb.Hex(0x1A1A1A),
			TitlebarHeight: 32.0,

			CloseButtonBg:        rgb.Hex(0xE81123),
			CloseButtonCorner:    rgb.Hex(0xC50F1F),
			MinimizeButtonBg:     rgb.Hex(0x202020),
			MinimizeButtonCorner: rgb.Hex(0x1A1A1A),
			MaximizeButtonBg:     rgb.Hex(0x202020),
			MaximizeButtonCorner: rgb.Hex(0x1A1A1A),

			Background: rgb.Hex(0x1E1E1E),

			InputBg:     rgb.Hex(0x2D2D2D),
			InputBorder: rgb.Hex(0x404040),
			InputText:   rgb.Hex(0xFFFFFF),

			ButtonPrimaryText:      rgb.Hex(0xFFFFFF),
			ButtonSecondaryBg:      rgb.Hex(0x2D2D2D),
			ButtonSecondaryBgHover: rgb.Hex(0x383838),
			ButtonSecondaryText:    rgb.Hex(0xFFFFFF),
			ButtonSecondaryBorder:  rgb.Hex(0x505050),

			TextPrimary:   rgb.Hex(0xFFFFFF),
			TextSecondary: rgb.Hex(0xA0A0A0),
			TextError:     rgb.Hex(0xFF6B6B),
		}
	}

	return Theme{
		TitlebarBg:     rgb.Hex(0xF0F0F0),
		TitlebarBorder: rgb.Hex(0xDFDFDF),
		TitlebarHeight: 32.0,

		CloseButtonBg:        rgb.Hex(0xE81123),
		CloseButtonCorner:    rgb.Hex(0xC50F1F),
		MinimizeButtonBg:     rgb.Hex(0xF0F0F0),
		MinimizeButtonCorner: rgb.Hex(0xDFDFDF),
		MaximizeButtonBg:     rgb.Hex(0xF0F0F0),
		MaximizeButtonCorner: rgb.Hex(0xDFDFDF),

		Background: rgb.Hex(0xFFFFFF),

		InputBg:     rgb.Hex(0xFFFFFF),
		InputBorder: rgb.Hex(0x8A8A8A),
		InputText:   rgb.Hex(0x000000),

		ButtonPrimaryText:      rgb.Hex(0xFFFFFF),
		ButtonSecondaryBg:      rgb.Hex(0xFFFFFF),
		ButtonSecondaryBgHover: rgb.Hex(0xF5F5F5),
		ButtonSecondaryText:    rgb.Hex(0x000000),
		ButtonSecondaryBorder:  rgb.Hex(0x8A8A8A),

		TextPrimary:   rgb.Hex(0x000000),
		TextSecondary: rgb.Hex(0x605E5C),
		TextError:     rgb.Hex(0xA80000),
	}
}

// Linux follows Adwaita: a tall header bar with flat grey window buttons.
func linuxTable(dark bool) Theme {
	if dark {
		return Theme{
			TitlebarBg:     rgb.Hex(0x303030),
			TitlebarBorder: rgb.Hex(0x1F1F1F),
			TitlebarHeight: 46.0,

			CloseButtonBg:        rgb.Hex(0x454545),
			CloseButtonCorner:    rgb.Hex(0x3A3A3A),
			MinimizeButtonBg:     rgb.Hex(0x454545),
			MinimizeButtonCorner: rgb.Hex(0x3A3A3A),
			MaximizeButtonBg:     rgb.Hex(0x454545),
			MaximizeButtonCorner: rgb.Hex(0x3A3A3A),

			Background: rgb.Hex(0x242424),

			InputBg:     rgb.Hex(0x383838),
			InputBorder: rgb.Hex(0x4A4A4A),
			InputText:   rgb.Hex(0xFFFFFF),

			ButtonPrimaryText:      rgb.Hex(0xFFFFFF),
			ButtonSecondaryBg:      rgb.Hex(0x383838),
			ButtonSecondaryBgHover: rgb.Hex(0x454545),
			ButtonSecondaryText:    rgb.Hex(0xFFFFFF),
			ButtonSecondaryBorder:  rgb.Hex(0x4A4A4A),

			TextPrimary:   rgb.Hex(0xFFFFFF),
			TextSecondary: rgb.Hex(0x9A9996),
			TextError:     rgb.Hex(0xFF7B63),
		}
	}

	return Theme{
		TitlebarBg:     rgb.Hex(0xEBEBEB),
		TitlebarBorder: rgb.Hex(0xD5D5D5),
		TitlebarHeight: 46.0,

		CloseButtonBg:        rgb.Hex(0xDADADA),
		CloseButtonCorner:    rgb.Hex(0xC8C8C8),
		MinimizeButtonBg:     rgb.Hex(0xDADADA),
		MinimizeButtonCorner: rgb.Hex(0xC8C8C8),
		MaximizeButtonBg:     rgb.Hex(0xDADADA),
		MaximizeButtonCorner: rgb.Hex(0xC8C8C8),

		Background: rgb.Hex(0xFAFAFA),

		InputBg:     rgb.Hex(0xFFFFFF),
		InputBorder: rgb.Hex(0xCDC7C2),
		InputText:   rgb.Hex(0x2E3436),

		ButtonPrimaryText:      rgb.Hex(0xFFFFFF),
		ButtonSecondaryBg:      rgb.Hex(0xF6F5F4),
		ButtonSecondaryBgHover: rgb.Hex(0xE8E6E3),
		ButtonSecondaryText:    rgb.Hex(0x2E3436),
		ButtonSecondaryBorder:  rgb.Hex(0xCDC7C2),

		TextPrimary:   rgb.Hex(0x2E3436),
		TextSecondary: rgb.Hex(0x5E5C64),
		TextError:     rgb.Hex(0xC01C28),
	}
}
