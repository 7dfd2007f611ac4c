package ui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/qyinm/nearby/types"
)

// Fixed zoom of the map region around the user
const (
	LatitudeDelta  = 0.01
	LongitudeDelta = 0.01
)

const (
	userGlyph  = "◉"
	placeGlyph = "●"
	focusGlyph = "◆"
	gridGlyph  = "·"
)

// MapView projects the user and the places onto a character grid
type MapView struct {
	theme   Theme
	center  types.Location
	places  []types.Place
	focused string
	width   int
	height  int
}

func NewMapView(theme Theme) MapView {
	return MapView{theme: theme}
}

func (m *MapView) SetCenter(loc types.Location) { m.center = loc }
func (m *MapView) SetPlaces(p []types.Place)    { m.places = p }

// Focus shows the callout of the given place
func (m *MapView) Focus(id string) { m.focused = id }

// SetSize sets the outer size, frame included
func (m *MapView) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m MapView) Center() types.Location { return m.center }

func (m MapView) gridSize() (int, int) {
	w := m.width - m.theme.MapFrame.GetHorizontalFrameSize()
	h := m.height - m.theme.MapFrame.GetVerticalFrameSize()
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return w, h
}

// Project maps a coordinate to a grid cell. ok is false outside the region.
func (m MapView) Project(loc types.Location) (col, row int, ok bool) {
	w, h := m.gridSize()
	if w == 0 || h == 0 {
		return 0, 0, false
	}

	minLon := m.center.Longitude - LongitudeDelta/2
	maxLat := m.center.Latitude + LatitudeDelta/2

	x := (loc.Longitude - minLon) / LongitudeDelta * float64(w)
	y := (maxLat - loc.Latitude) / LatitudeDelta * float64(h)
	if x < 0 || y < 0 {
		return 0, 0, false
	}
	col, row = int(x), int(y)
	if col >= w || row >= h {
		return 0, 0, false
	}
	return col, row, true
}

// Visible returns the places inside the current region
func (m MapView) Visible() []types.Place {
	var out []types.Place
	for _, p := range m.places {
		if _, _, ok := m.Project(p.Location()); ok {
			out = append(out, p)
		}
	}
	return out
}

func (m MapView) View() string {
	w, h := m.gridSize()
	if w == 0 || h == 0 {
		return ""
	}

	cells := make([][]string, h)
	for r := range cells {
		cells[r] = make([]string, w)
		for c := range cells[r] {
			if r%2 == 1 && c%4 == 2 {
				cells[r][c] = m.theme.MapGrid.Render(gridGlyph)
			} else {
				cells[r][c] = " "
			}
		}
	}

	var callout *types.Place
	for i, p := range m.places {
		col, row, ok := m.Project(p.Location())
		if !ok {
			continue
		}
		if p.ID() == m.focused {
			callout = &m.places[i]
			cells[row][col] = m.theme.FocusMarker.Render(focusGlyph)
			continue
		}
		cells[row][col] = m.theme.PlaceMarker.Render(placeGlyph)
	}

	// The user marker is drawn last so it is never hidden
	if col, row, ok := m.Project(m.center); ok {
		cells[row][col] = m.theme.UserMarker.Render(userGlyph)
	}

	if callout != nil {
		m.drawCallout(cells, *callout)
	}

	rows := make([]string, h)
	for r := range cells {
		rows[r] = strings.Join(cells[r], "")
	}
	return m.theme.MapFrame.Render(strings.Join(rows, "\n"))
}

// drawCallout writes the place name on the row above its marker, or below
// when the marker sits on the first row.
func (m MapView) drawCallout(cells [][]string, p types.Place) {
	col, row, ok := m.Project(p.Location())
	if !ok {
		return
	}
	w, h := m.gridSize()
	target := row - 1
	if target < 0 {
		target = row + 1
	}
	if target >= h {
		return
	}

	label := " " + p.Name() + " › "
	label = ansi.Truncate(label, w, "…")
	lw := ansi.StringWidth(label)
	start := col - lw/2
	if start+lw > w {
		start = w - lw
	}
	if start < 0 {
		start = 0
	}

	cells[target][start] = m.theme.Callout.UnsetPadding().Render(label)
	for c := start + 1; c < start+lw && c < w; c++ {
		cells[target][c] = ""
	}
}
