package tui

import (
	"github.com/amiigood/folio/internal/canvas"
	"github.com/charmbracelet/lipgloss"
)

var (
	Regular        = lipgloss.NewStyle()
	RoundedBorders = Regular.Border(lipgloss.RoundedBorder())
	Bold           = Regular.Bold(true)
)

// Canvas styles, each an index into Palette.
const (
	DesktopStyle canvas.Style = iota
	NavbarStyle
	NavbarBoldStyle
	NavbarLinkStyle
	DockStyle
	DockItemStyle
	DockDisabledStyle
	DockBorderStyle
	BorderStyle
	ActiveBorderStyle
	CloseStyle
	TitleStyle
	BodyStyle
	HeadingStyle
	SubtleStyle
	AccentStyle
	LinkStyle
	SelectedStyle
	AlertStyle
	ErrorStyle
	InfoStyle
	// WeightStyle is the lightest of the hover weight styles; heavier
	// weights follow it in ascending order.
	WeightStyle
)

// WeightLevels is the number of distinct hover weight styles.
const WeightLevels = 4

// Weight returns the style for the hover weight level, 0 being the lightest.
// Levels in the upper half are rendered bold.
func Weight(level int) canvas.Style {
	return WeightStyle + canvas.Style(max(0, min(WeightLevels-1, level)))
}

// Palette returns the lipgloss style for each canvas style.
func Palette() []lipgloss.Style {
	desktop := Regular.Background(DesktopBackground).Foreground(DesktopForeground)
	navbar := Regular.Background(NavbarBackground).Foreground(NavbarForeground)
	dock := Regular.Background(DockBackground).Foreground(NavbarForeground)
	body := Regular.Background(WindowBackground).Foreground(WindowForeground)

	palette := []lipgloss.Style{
		DesktopStyle:      desktop,
		NavbarStyle:       navbar,
		NavbarBoldStyle:   navbar.Bold(true),
		NavbarLinkStyle:   navbar.Underline(true),
		DockStyle:         dock,
		DockItemStyle:     dock.Bold(true),
		DockDisabledStyle: dock.Foreground(DockDisabled),
		DockBorderStyle:   desktop.Foreground(DockBorderColour),
		BorderStyle:       body.Foreground(InactiveBorder),
		ActiveBorderStyle: body.Foreground(ActiveBorder),
		CloseStyle:        body.Foreground(CloseButton),
		TitleStyle:        body.Bold(true),
		BodyStyle:         body,
		HeadingStyle:      body.Bold(true).Foreground(AccentForeground),
		SubtleStyle:       body.Foreground(SubtleForeground),
		AccentStyle:       body.Foreground(AccentForeground),
		LinkStyle:         body.Foreground(LinkForeground).Underline(true),
		SelectedStyle:     body.Background(SelectedBackground).Foreground(SelectedForeground),
		AlertStyle:        body.Foreground(ErrorForeground),
		ErrorStyle:        navbar.Foreground(ErrorForeground),
		InfoStyle:         navbar.Foreground(InfoForeground),
	}
	for i, color := range WeightColors {
		style := desktop.Foreground(color)
		if i >= WeightLevels/2 {
			style = style.Bold(true)
		}
		palette = append(palette, style)
	}
	return palette
}
