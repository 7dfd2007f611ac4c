package ui

import "github.com/charmbracelet/lipgloss"

// Palette used by the theme. Gray shades are inverted for light terminals.
var (
	GreenBase  = lipgloss.Color("#2D9C5A")
	GreenLight = lipgloss.Color("#6ECF96")
	GreenSoft  = lipgloss.Color("#E4F5EA")
	RedBase    = lipgloss.Color("#F24D4D")
	RedLight   = lipgloss.Color("#F98888")
)

type grayScale struct {
	g100, g200, g300, g400, g500, g600 lipgloss.Color
}

var (
	darkGrays = grayScale{
		g100: "#1C1C1C", g200: "#2E2E2E", g300: "#4A4A4A",
		g400: "#8F8F8F", g500: "#C9C9C9", g600: "#F2F2F2",
	}
	lightGrays = grayScale{
		g100: "#F2F2F2", g200: "#E4E6EC", g300: "#CFCFCF",
		g400: "#A1A2A4", g500: "#676767", g600: "#3B3B3B",
	}
)

// Theme is the immutable set of styles shared by every screen.
// It is built once at the composition root and passed down by value.
type Theme struct {
	Dark bool

	Title   lipgloss.Style
	Caption lipgloss.Style
	Status  lipgloss.Style
	Error   lipgloss.Style
	Loading lipgloss.Style

	// Category chips
	ChipActive   lipgloss.Style
	ChipInactive lipgloss.Style

	// Map
	MapFrame    lipgloss.Style
	MapGrid     lipgloss.Style
	UserMarker  lipgloss.Style
	PlaceMarker lipgloss.Style
	FocusMarker lipgloss.Style
	Callout     lipgloss.Style

	// Places sheet
	Sheet            lipgloss.Style
	SheetHandle      lipgloss.Style
	ItemName         lipgloss.Style
	ItemNameSelected lipgloss.Style
	ItemMeta         lipgloss.Style
	ItemCoupons      lipgloss.Style
	ItemDistance     lipgloss.Style
	ItemMarker       lipgloss.Style

	// Market detail
	Cover        lipgloss.Style
	CoverCaption lipgloss.Style
	DetailTitle  lipgloss.Style
	DetailText   lipgloss.Style
	SectionTitle lipgloss.Style
	Bullet       lipgloss.Style

	// Alert dialog
	AlertBox          lipgloss.Style
	AlertTitle        lipgloss.Style
	AlertMessage      lipgloss.Style
	AlertButton       lipgloss.Style
	AlertButtonActive lipgloss.Style

	// Help
	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style
}

// NewTheme builds the theme for a dark or light terminal background
func NewTheme(dark bool) Theme {
	g := lightGrays
	if dark {
		g = darkGrays
	}

	return Theme{
		Dark: dark,

		Title: lipgloss.NewStyle().
			Foreground(g.g600).
			Bold(true).
			Padding(0, 1),
		Caption: lipgloss.NewStyle().
			Foreground(g.g600).
			Bold(true),
		Status: lipgloss.NewStyle().
			Foreground(g.g400),
		Error: lipgloss.NewStyle().
			Foreground(RedBase),
		Loading: lipgloss.NewStyle().
			Foreground(GreenBase),

		ChipActive: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(GreenBase).
			Bold(true).
			Padding(0, 1).
			MarginRight(1),
		ChipInactive: lipgloss.NewStyle().
			Foreground(g.g500).
			Background(g.g200).
			Padding(0, 1).
			MarginRight(1),

		MapFrame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(g.g300),
		MapGrid: lipgloss.NewStyle().
			Foreground(g.g300),
		UserMarker: lipgloss.NewStyle().
			Foreground(GreenBase).
			Bold(true),
		PlaceMarker: lipgloss.NewStyle().
			Foreground(RedLight),
		FocusMarker: lipgloss.NewStyle().
			Foreground(RedBase).
			Bold(true),
		Callout: lipgloss.NewStyle().
			Foreground(g.g600).
			Background(g.g200).
			Padding(0, 1),

		Sheet: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder(), true, true, false, true).
			BorderForeground(g.g300).
			Padding(0, 1),
		SheetHandle: lipgloss.NewStyle().
			Foreground(g.g300),
		ItemName: lipgloss.NewStyle().
			Foreground(g.g600),
		ItemNameSelected: lipgloss.NewStyle().
			Foreground(GreenBase).
			Bold(true),
		ItemMeta: lipgloss.NewStyle().
			Foreground(g.g500),
		ItemCoupons: lipgloss.NewStyle().
			Foreground(RedBase),
		ItemDistance: lipgloss.NewStyle().
			Foreground(g.g400),
		ItemMarker: lipgloss.NewStyle().
			Foreground(GreenBase).
			Bold(true),

		Cover: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(GreenLight).
			Foreground(g.g500).
			Padding(1, 2),
		CoverCaption: lipgloss.NewStyle().
			Foreground(GreenBase).
			Bold(true),
		DetailTitle: lipgloss.NewStyle().
			Foreground(g.g600).
			Bold(true),
		DetailText: lipgloss.NewStyle().
			Foreground(g.g500),
		SectionTitle: lipgloss.NewStyle().
			Foreground(g.g500).
			Bold(true).
			Underline(true),
		Bullet: lipgloss.NewStyle().
			Foreground(GreenBase),

		AlertBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(RedBase).
			Padding(1, 2).
			Width(44),
		AlertTitle: lipgloss.NewStyle().
			Foreground(g.g600).
			Bold(true),
		AlertMessage: lipgloss.NewStyle().
			Foreground(g.g500),
		AlertButton: lipgloss.NewStyle().
			Foreground(g.g500).
			Padding(0, 2),
		AlertButtonActive: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(GreenBase).
			Bold(true).
			Padding(0, 2),

		HelpKey: lipgloss.NewStyle().
			Foreground(GreenBase).
			Bold(true),
		HelpDesc: lipgloss.NewStyle().
			Foreground(g.g400),
	}
}

// DetectTheme queries the terminal background once and builds the theme.
func DetectTheme() Theme {
	return NewTheme(lipgloss.HasDarkBackground())
}
