package ui

import (
	"fmt"
	"net/url"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// RouteKind identifies a screen
type RouteKind int

const (
	HomeRoute RouteKind = iota
	MarketRoute
)

// Route addresses a screen and its parameters
type Route struct {
	Kind RouteKind
	ID   string
}

// Home is the /home route
var Home = Route{Kind: HomeRoute}

// Market returns the /market/{id} route
func Market(id string) Route {
	return Route{Kind: MarketRoute, ID: id}
}

// Path renders the route as a client-side path
func (r Route) Path() string {
	switch r.Kind {
	case MarketRoute:
		return "/market/" + url.PathEscape(r.ID)
	default:
		return "/home"
	}
}

func (r Route) String() string { return r.Path() }

// ParseRoute parses "/home" or "/market/{id}"
func ParseRoute(path string) (Route, error) {
	p := strings.TrimSpace(path)
	if p == "/" || p == "/home" {
		return Home, nil
	}
	if rest, ok := strings.CutPrefix(p, "/market/"); ok {
		id, err := url.PathUnescape(rest)
		if err != nil {
			return Route{}, fmt.Errorf("invalid market id in %q: %w", path, err)
		}
		if id == "" || strings.Contains(rest, "/") {
			return Route{}, fmt.Errorf("invalid route %q", path)
		}
		return Market(id), nil
	}
	return Route{}, fmt.Errorf("unknown route %q", path)
}

// NavigateMsg pushes a route, or updates the top screen's params when it
// already shows the same kind of route.
type NavigateMsg struct{ Route Route }

// BackMsg pops the top screen
type BackMsg struct{}

// RedirectMsg replaces the top screen with a route
type RedirectMsg struct{ Route Route }

func Navigate(r Route) tea.Cmd {
	return func() tea.Msg { return NavigateMsg{Route: r} }
}

func Back() tea.Cmd {
	return func() tea.Msg { return BackMsg{} }
}

func Redirect(r Route) tea.Cmd {
	return func() tea.Msg { return RedirectMsg{Route: r} }
}
