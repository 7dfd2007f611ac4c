package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/qyinm/nearby/types"
)

// PlaceDelegate is a custom list delegate for rendering Place items
type PlaceDelegate struct {
	theme  Theme
	origin types.Location
}

// Height returns the height of a list item (3 lines)
func (d PlaceDelegate) Height() int {
	return 3
}

// Spacing returns the spacing between list items
func (d PlaceDelegate) Spacing() int {
	return 1
}

// Update handles updates for the delegate (no-op for places)
func (d PlaceDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd {
	return nil
}

// Render renders a single place item
func (d PlaceDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	place, ok := item.(types.Place)
	if !ok {
		return
	}

	isSelected := index == m.Index()

	// Line 1: marker + name + distance
	// Format: "▌ Sabor Grill                              350 m"
	marker := "  "
	nameStyle := d.theme.ItemName
	if isSelected {
		marker = d.theme.ItemMarker.Render("▌") + " "
		nameStyle = d.theme.ItemNameSelected
	}

	distance := ""
	if !d.origin.IsZero() {
		distance = formatDistance(types.Distance(d.origin, place.Location()))
	}

	available := m.Width() - 2 - ansi.StringWidth(distance) - 1
	if available < 1 {
		available = 1
	}
	name := ansi.Truncate(place.Name(), available, "…")
	name += strings.Repeat(" ", available-ansi.StringWidth(name))
	line1 := marker + nameStyle.Render(name) + " " + d.theme.ItemDistance.Render(distance)

	// Line 2: address
	indent := "  "
	addrWidth := m.Width() - len(indent)
	if addrWidth < 1 {
		addrWidth = 1
	}
	line2 := indent + d.theme.ItemMeta.Render(ansi.Truncate(place.Address(), addrWidth, "…"))

	// Line 3: coupons
	line3 := indent + d.theme.ItemCoupons.Render(formatCoupons(place.Coupons()))

	fmt.Fprint(w, line1+"\n"+line2+"\n"+line3)
}

// formatDistance formats kilometers as meters below 1 km
// 0.35 -> "350 m", 1.26 -> "1.3 km"
func formatDistance(km float64) string {
	if km < 1 {
		return fmt.Sprintf("%d m", int(km*1000+0.5))
	}
	return fmt.Sprintf("%.1f km", km)
}

func formatCoupons(n int) string {
	switch n {
	case 0:
		return "no coupons available"
	case 1:
		return "1 coupon available"
	default:
		return fmt.Sprintf("%d coupons available", n)
	}
}
