package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/qyinm/nearby/types"
)

// Sheet snap heights in rows. The max snap leaves SheetMaxReserve rows
// of the screen above the panel.
const (
	SheetMinHeight  = 12
	SheetMaxReserve = 4
)

// SheetCaption is the static list header
const SheetCaption = "Explore places near you"

// Snap is the index into the sheet's snap points
type Snap int

const (
	SnapMin Snap = iota
	SnapMax
)

// PlacesSheet is a panel with two snap heights holding the place list
type PlacesSheet struct {
	theme        Theme
	list         list.Model
	snap         Snap
	width        int
	screenHeight int
	origin       types.Location
}

func NewPlacesSheet(theme Theme) PlacesSheet {
	l := list.New([]list.Item{}, PlaceDelegate{theme: theme}, 0, 0)
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()
	l.SetStatusBarItemName("place", "places")

	return PlacesSheet{theme: theme, list: l}
}

// SnapPoints returns the min and max heights for the current screen.
// Min never exceeds the screen and max never drops below min.
func (s PlacesSheet) SnapPoints() (int, int) {
	min := SheetMinHeight
	if min > s.screenHeight {
		min = s.screenHeight
	}
	max := s.screenHeight - SheetMaxReserve
	if max < min {
		max = min
	}
	return min, max
}

// Height is the rendered height at the current snap
func (s PlacesSheet) Height() int {
	min, max := s.SnapPoints()
	if s.snap == SnapMax {
		return max
	}
	return min
}

func (s PlacesSheet) Snap() Snap { return s.snap }

// Toggle switches between the two snap points
func (s *PlacesSheet) Toggle() {
	if s.snap == SnapMin {
		s.snap = SnapMax
	} else {
		s.snap = SnapMin
	}
	s.resizeList()
}

// SetSize keeps the current snap index and recomputes its height
func (s *PlacesSheet) SetSize(width, screenHeight int) {
	s.width = width
	s.screenHeight = screenHeight
	s.resizeList()
}

func (s *PlacesSheet) resizeList() {
	// border, handle and caption
	chrome := s.theme.Sheet.GetVerticalFrameSize() + 2
	h := s.Height() - chrome
	if h < 0 {
		h = 0
	}
	w := s.width - s.theme.Sheet.GetHorizontalFrameSize()
	if w < 0 {
		w = 0
	}
	s.list.SetSize(w, h)
}

// SetPlaces replaces the listed places and resets the cursor
func (s *PlacesSheet) SetPlaces(places []types.Place) {
	items := make([]list.Item, len(places))
	for i, p := range places {
		items[i] = p
	}
	s.list.SetItems(items)
	s.list.ResetSelected()
}

// SetOrigin sets the coordinate distances are measured from
func (s *PlacesSheet) SetOrigin(loc types.Location) {
	s.origin = loc
	s.list.SetDelegate(PlaceDelegate{theme: s.theme, origin: loc})
}

// Selected returns the place under the cursor
func (s PlacesSheet) Selected() (types.Place, bool) {
	p, ok := s.list.SelectedItem().(types.Place)
	return p, ok
}

func (s PlacesSheet) Len() int { return len(s.list.Items()) }

// Update forwards navigation keys to the list
func (s *PlacesSheet) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	s.list, cmd = s.list.Update(msg)
	return cmd
}

func (s PlacesSheet) View() string {
	if s.Height() == 0 {
		return ""
	}
	handleWidth := 6
	pad := (s.width - s.theme.Sheet.GetHorizontalFrameSize() - handleWidth) / 2
	if pad < 0 {
		pad = 0
	}

	var b strings.Builder
	b.WriteString(strings.Repeat(" ", pad))
	b.WriteString(s.theme.SheetHandle.Render(strings.Repeat("━", handleWidth)))
	b.WriteString("\n")
	b.WriteString(s.theme.Caption.Render(SheetCaption))
	b.WriteString("\n")
	if s.Len() == 0 {
		b.WriteString(s.theme.Status.Render("No places in this category"))
	} else {
		b.WriteString(s.list.View())
	}

	// lipgloss sizes exclude the border
	w := s.width - s.theme.Sheet.GetHorizontalBorderSize()
	if w < 0 {
		w = 0
	}
	h := s.Height() - s.theme.Sheet.GetVerticalBorderSize()
	if h < 0 {
		h = 0
	}
	return s.theme.Sheet.Width(w).Height(h).MaxHeight(s.Height()).Render(b.String())
}
