package services

import (
	"techhelp-dashboard/pkg/types"
	"techhelp-dashboard/pkg/validation"
)

// Theme is the only user-controlled view state. It lives for one request.
type Theme struct {
	Dark bool
}

var (
	DarkTheme  = Theme{Dark: true}
	LightTheme = Theme{Dark: false}

	// DefaultTheme is used when neither the request nor the configuration picks one.
	DefaultTheme = DarkTheme
)

// ParseTheme maps "dark"/"light" to a Theme and anything else to fallback.
func ParseTheme(name string, fallback Theme) Theme {
	switch name {
	case validation.ThemeDark:
		return DarkTheme
	case validation.ThemeLight:
		return LightTheme
	default:
		return fallback
	}
}

func (t Theme) Name() string {
	if t.Dark {
		return validation.ThemeDark
	}
	return validation.ThemeLight
}

func (t Theme) Toggled() Theme {
	return Theme{Dark: !t.Dark}
}

// ToggleGlyph is the icon of the control that switches to the other theme.
func (t Theme) ToggleGlyph() string {
	if t.Dark {
		return "☀"
	}
	return "☾"
}

func (t Theme) ToggleLabel() string {
	if t.Dark {
		return "Mudar para o tema claro"
	}
	return "Mudar para o tema escuro"
}

// Tokens derives every color of the page from the single Dark flag.
func (t Theme) Tokens() types.ThemeTokens {
	if t.Dark {
		return types.ThemeTokens{
			Background:        "#000000",
			BackgroundAccent:  "#1c1917",
			Card:              "#00000066",
			CardBorder:        "#ffffff1a",
			Text:              "#ffffff",
			SubtleText:        "#d1d5db",
			MutedText:         "#9ca3af",
			Watermark:         "#ffffff1a",
			GridLine:          "#1f2937",
			AxisLabel:         "#9ca3af",
			TooltipBackground: "#111827",
			TooltipBorder:     "#374151",
			TooltipText:       "#ffffff",
			Danger:            "#ef4444",
		}
	}
	return types.ThemeTokens{
		Background:        "#f9fafb",
		BackgroundAccent:  "#fff7ed",
		Card:              "#ffffff",
		CardBorder:        "#e5e7eb",
		Text:              "#111827",
		SubtleText:        "#374151",
		MutedText:         "#6b7280",
		Watermark:         "#1118271a",
		GridLine:          "#e5e7eb",
		AxisLabel:         "#4b5563",
		TooltipBackground: "#ffffff",
		TooltipBorder:     "#d1d5db",
		TooltipText:       "#111827",
		Danger:            "#dc2626",
	}
}
