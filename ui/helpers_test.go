package ui

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/qyinm/nearby/location"
	"github.com/qyinm/nearby/types"
)

type fakeSource struct {
	mu          sync.Mutex
	categories  []types.Category
	markets     map[string][]types.Place
	details     map[string]*types.PlaceDetail
	failCat     bool
	failMarkets bool
	failDetail  bool
	requests    []string
}

func newFakeSource() *fakeSource {
	grill := types.NewPlace("m1", "c1", "Sabor Grill", "Churrascaria", "Av. Paulista - Bela Vista", "(11) 94567-1212", "https://img.example/m1.png", 10, -23.559457, -46.658180)
	cafe := types.NewPlace("m2", "c1", "Café Aroma", "Cafeteria", "Rua Haddock Lobo", "(12) 3456-7890", "https://img.example/m2.png", 5, -23.561523, -46.663470)
	shop := types.NewPlace("m3", "c2", "Mercado Central", "Mercado", "Rua da Cantareira", "(11) 3313-3365", "https://img.example/m3.png", 3, -23.541600, -46.629800)
	detail := types.NewPlaceDetail(grill, []types.Rule{types.NewRule("r1", "Valid for on-site consumption only")})
	cafeDetail := types.NewPlaceDetail(cafe, nil)

	return &fakeSource{
		categories: []types.Category{types.NewCategory("c1", "Food"), types.NewCategory("c2", "Shopping")},
		markets: map[string][]types.Place{
			"c1": {grill, cafe},
			"c2": {shop},
		},
		details: map[string]*types.PlaceDetail{"m1": &detail, "m2": &cafeDetail},
	}
}

func (f *fakeSource) record(path string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = append(f.requests, path)
}

func (f *fakeSource) Requests() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.requests...)
}

func (f *fakeSource) GetCategories(context.Context) ([]types.Category, error) {
	f.record("/categories")
	if f.failCat {
		return nil, errors.New("upstream categories error")
	}
	return f.categories, nil
}

func (f *fakeSource) GetMarketsByCategory(_ context.Context, categoryID string) ([]types.Place, error) {
	f.record("/markets/category/" + categoryID)
	if f.failMarkets {
		return nil, errors.New("upstream markets error")
	}
	return f.markets[categoryID], nil
}

func (f *fakeSource) GetMarket(_ context.Context, id string) (*types.PlaceDetail, error) {
	f.record("/markets/" + id)
	if f.failDetail {
		return nil, errors.New("upstream market error")
	}
	return f.details[id], nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testTheme() Theme {
	return NewTheme(true)
}

func deniedLocator() location.Provider {
	return location.NewStatic(nil)
}

func grantedLocator(loc types.Location) location.Provider {
	return location.NewStatic(&loc)
}

// collect runs cmd and returns the messages it produces, expanding batches
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

// findMsg returns the first message of type T
func findMsg[T any](msgs []tea.Msg) (T, bool) {
	for _, m := range msgs {
		if v, ok := m.(T); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// containsPlain reports whether the rendered view contains want once styles are stripped
func containsPlain(view, want string) bool {
	return strings.Contains(ansi.Strip(view), want)
}
