package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/qyinm/nearby/types"
)

// CategoryBar renders the categories as a horizontal row of chips
type CategoryBar struct {
	theme      Theme
	categories []types.Category
	selected   string
	width      int
}

func NewCategoryBar(theme Theme) CategoryBar {
	return CategoryBar{theme: theme}
}

func (c *CategoryBar) SetCategories(categories []types.Category) {
	c.categories = categories
}

func (c *CategoryBar) Select(id string) {
	c.selected = id
}

func (c *CategoryBar) SetWidth(width int) {
	c.width = width
}

func (c CategoryBar) Selected() string { return c.selected }

func (c CategoryBar) index() int {
	for i, cat := range c.categories {
		if cat.ID() == c.selected {
			return i
		}
	}
	return -1
}

// Next returns the id after the selected one, wrapping around.
// It returns "" when there are no categories.
func (c CategoryBar) Next() string {
	if len(c.categories) == 0 {
		return ""
	}
	i := c.index()
	return c.categories[(i+1)%len(c.categories)].ID()
}

// Prev returns the id before the selected one, wrapping around.
func (c CategoryBar) Prev() string {
	if len(c.categories) == 0 {
		return ""
	}
	i := c.index()
	if i <= 0 {
		return c.categories[len(c.categories)-1].ID()
	}
	return c.categories[i-1].ID()
}

// View renders the chips. When they overflow the width, chips are dropped
// from the left until the selected one fits.
func (c CategoryBar) View() string {
	if len(c.categories) == 0 {
		return c.theme.Status.Render("No categories")
	}

	chips := make([]string, len(c.categories))
	for i, cat := range c.categories {
		style := c.theme.ChipInactive
		if cat.ID() == c.selected {
			style = c.theme.ChipActive
		}
		chips[i] = style.Render(cat.Name())
	}

	start := 0
	sel := c.index()
	if c.width > 0 && sel > 0 {
		for start < sel && lipgloss.Width(lipgloss.JoinHorizontal(lipgloss.Top, chips[start:sel+1]...)) > c.width {
			start++
		}
	}

	row := lipgloss.JoinHorizontal(lipgloss.Top, chips[start:]...)
	if c.width > 0 {
		row = lipgloss.NewStyle().MaxWidth(c.width).Render(row)
	}
	return row
}
