package ui

import (
	"context"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/qyinm/nearby/location"
	"github.com/qyinm/nearby/types"
)

// Message types for async operations

type themeMsg struct {
	theme Theme
}

type categoriesMsg struct {
	categories []types.Category
	err        error
}

type marketsMsg struct {
	requestID  int
	categoryID string
	markets    []types.Place
	err        error
}

type locationMsg struct {
	loc     types.Location
	granted bool
	err     error
}

type marketDetailMsg struct {
	screen    int
	requestID int
	id        string
	detail    *types.PlaceDetail
	err       error
}

type clipboardMsg struct {
	err error
}

// writeClipboard is swapped out in tests
var writeClipboard = clipboard.WriteAll

func loadTheme(loader func() Theme) tea.Cmd {
	return func() tea.Msg {
		return themeMsg{theme: loader()}
	}
}

// fetchCategories returns a tea.Cmd that fetches the category collection asynchronously
func fetchCategories(source types.MarketSource) tea.Cmd {
	return func() tea.Msg {
		categories, err := source.GetCategories(context.Background())
		return categoriesMsg{categories: categories, err: err}
	}
}

// fetchMarkets returns a tea.Cmd that fetches the places of one category, tagged with requestID
func fetchMarkets(source types.MarketSource, categoryID string, requestID int) tea.Cmd {
	return func() tea.Msg {
		markets, err := source.GetMarketsByCategory(context.Background(), categoryID)
		return marketsMsg{requestID: requestID, categoryID: categoryID, markets: markets, err: err}
	}
}

// fetchMarketDetail returns a tea.Cmd that fetches one place for the given screen
func fetchMarketDetail(source types.MarketSource, screen int, id string, requestID int) tea.Cmd {
	return func() tea.Msg {
		detail, err := source.GetMarket(context.Background(), id)
		return marketDetailMsg{screen: screen, requestID: requestID, id: id, detail: detail, err: err}
	}
}

func requestLocation(p location.Provider) tea.Cmd {
	return func() tea.Msg {
		loc, granted, err := location.Request(context.Background(), p)
		return locationMsg{loc: loc, granted: granted, err: err}
	}
}

func copyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		return clipboardMsg{err: writeClipboard(text)}
	}
}

// centerOverlay places content in the middle of a width x height area
func centerOverlay(width, height int, content string) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
