package style

import (
	"github.com/charmbracelet/lipgloss"
)

// Palette holds the adaptive colors a theme is built from. Each color picks
// its Light or Dark variant from the terminal background.
type Palette struct {
	Primary   lipgloss.AdaptiveColor
	Secondary lipgloss.AdaptiveColor
	Success   lipgloss.AdaptiveColor
	Error     lipgloss.AdaptiveColor
	Warning   lipgloss.AdaptiveColor
	Info      lipgloss.AdaptiveColor
	Heading   lipgloss.AdaptiveColor
	Text      lipgloss.AdaptiveColor
	Muted     lipgloss.AdaptiveColor
	Surface   lipgloss.AdaptiveColor
}

// DefaultPalette is the palette used by NewBackend.
var DefaultPalette = Palette{
	Primary: lipgloss.AdaptiveColor{
		Light: "#007ACC", // Blue
		Dark:  "#3D9EFF",
	},
	Secondary: lipgloss.AdaptiveColor{
		Light: "#6C757D", // Gray
		Dark:  "#A0A8B0",
	},
	Success: lipgloss.AdaptiveColor{
		Light: "#28A745", // Green
		Dark:  "#4CDD76",
	},
	Error: lipgloss.AdaptiveColor{
		Light: "#DC3545", // Red
		Dark:  "#FF6B7D",
	},
	Warning: lipgloss.AdaptiveColor{
		Light: "#FFC107", // Amber
		Dark:  "#FFD54F",
	},
	Info: lipgloss.AdaptiveColor{
		Light: "#17A2B8", // Cyan
		Dark:  "#4DD0E1",
	},
	Heading: lipgloss.AdaptiveColor{
		Light: "#212529", // Almost black
		Dark:  "#F8F9FA", // Almost white
	},
	Text: lipgloss.AdaptiveColor{
		Light: "#495057",
		Dark:  "#E9ECEF",
	},
	Muted: lipgloss.AdaptiveColor{
		Light: "#6C757D",
		Dark:  "#ADB5BD",
	},
	Surface: lipgloss.AdaptiveColor{
		Light: "#F8F9FA",
		Dark:  "#24253A",
	},
}
