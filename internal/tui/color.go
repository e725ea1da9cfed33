package tui

import "github.com/charmbracelet/lipgloss"

const (
	Black           = lipgloss.Color("#000000")
	Red             = lipgloss.Color("#FF5353")
	Orange          = lipgloss.Color("214")
	Yellow          = lipgloss.Color("#DBBD70")
	Green           = lipgloss.Color("34")
	LightGreen      = lipgloss.Color("86")
	DeepBlue        = lipgloss.Color("39")
	LightBlue       = lipgloss.Color("81")
	Blue            = lipgloss.Color("63")
	Grey            = lipgloss.Color("#737373")
	LightGrey       = lipgloss.Color("245")
	LighterGrey     = lipgloss.Color("250")
	EvenLighterGrey = lipgloss.Color("253")
	DarkGrey        = lipgloss.Color("#606362")
	White           = lipgloss.Color("#ffffff")
)

var (
	DesktopBackground = lipgloss.AdaptiveColor{Dark: "236", Light: "254"}
	DesktopForeground = lipgloss.AdaptiveColor{Dark: string(LighterGrey), Light: string(DarkGrey)}

	NavbarBackground = lipgloss.AdaptiveColor{Dark: "238", Light: string(EvenLighterGrey)}
	NavbarForeground = lipgloss.AdaptiveColor{Dark: string(White), Light: string(Black)}

	WindowBackground = lipgloss.AdaptiveColor{Dark: "234", Light: string(White)}
	WindowForeground = lipgloss.AdaptiveColor{Dark: string(EvenLighterGrey), Light: string(Black)}

	InactiveBorder = lipgloss.AdaptiveColor{Dark: "244", Light: "250"}
	ActiveBorder   = lipgloss.AdaptiveColor{Dark: string(LightBlue), Light: string(Blue)}

	CloseButton = Red

	SubtleForeground = lipgloss.AdaptiveColor{Dark: string(LightGrey), Light: string(Grey)}
	AccentForeground = lipgloss.AdaptiveColor{Dark: string(LightGreen), Light: string(Green)}
	LinkForeground   = lipgloss.AdaptiveColor{Dark: string(DeepBlue), Light: string(Blue)}

	SelectedBackground = lipgloss.Color("110")
	SelectedForeground = Black

	ErrorForeground = Red
	InfoForeground  = lipgloss.AdaptiveColor{Dark: string(LightGreen), Light: string(Green)}

	DockBackground   = lipgloss.AdaptiveColor{Dark: "238", Light: string(EvenLighterGrey)}
	DockDisabled     = lipgloss.AdaptiveColor{Dark: string(DarkGrey), Light: string(LightGrey)}
	DockBorderColour = lipgloss.AdaptiveColor{Dark: "244", Light: "250"}

	// Hover weights, lightest first.
	WeightColors = []lipgloss.TerminalColor{
		lipgloss.AdaptiveColor{Dark: "242", Light: "248"},
		lipgloss.AdaptiveColor{Dark: "248", Light: "243"},
		lipgloss.AdaptiveColor{Dark: "253", Light: "238"},
		lipgloss.AdaptiveColor{Dark: string(White), Light: string(Black)},
	}
)
