package ui

import (
	"log/slog"
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/qyinm/nearby/location"
	"github.com/qyinm/nearby/types"
)

// HomeState tracks the home screen data lifecycle
type HomeState int

const (
	HomeInitial HomeState = iota
	CategoriesLoading
	CategoriesLoaded
	MarketsLoading
	MarketsLoaded
)

func (s HomeState) String() string {
	switch s {
	case CategoriesLoading:
		return "categoriesLoading"
	case CategoriesLoaded:
		return "categoriesLoaded"
	case MarketsLoading:
		return "marketsLoading"
	case MarketsLoaded:
		return "marketsLoaded"
	default:
		return "initial"
	}
}

// Alert texts shown by the home screen
const (
	categoriesAlertTitle = "Categories"
	categoriesAlertText  = "Unable to load categories"
	marketsAlertTitle    = "Places"
	marketsAlertText     = "Unable to load places"
)

// HomeModel composes the category bar, the map and the places sheet
type HomeModel struct {
	source  types.MarketSource
	locator location.Provider
	log     *slog.Logger
	theme   Theme

	state      HomeState
	categories []types.Category
	selected   string
	markets    []types.Place
	location   types.Location
	// marketsGen tags market fetches; only the latest one is applied
	marketsGen int
	// active is false while another screen covers this one
	active bool

	bar    CategoryBar
	mapv   MapView
	sheet  PlacesSheet
	width  int
	height int
}

func NewHome(source types.MarketSource, locator location.Provider, theme Theme, log *slog.Logger) *HomeModel {
	return &HomeModel{
		source:  source,
		locator: locator,
		log:     log,
		theme:   theme,
		active:  true,
		bar:     NewCategoryBar(theme),
		mapv:    NewMapView(theme),
		sheet:   NewPlacesSheet(theme),
	}
}

func (m *HomeModel) Route() Route { return Home }

// SetActive is called by the root model when the screen gains or loses the top of the stack
func (m *HomeModel) SetActive(active bool) { m.active = active }

// Mount requests the location and the categories concurrently
func (m *HomeModel) Mount() tea.Cmd {
	m.state = CategoriesLoading
	return tea.Batch(requestLocation(m.locator), fetchCategories(m.source))
}

// Getters used by the root model and tests
func (m *HomeModel) State() HomeState            { return m.state }
func (m *HomeModel) Categories() []types.Category { return m.categories }
func (m *HomeModel) Selected() string             { return m.selected }
func (m *HomeModel) Markets() []types.Place       { return m.markets }
func (m *HomeModel) Location() types.Location     { return m.location }
func (m *HomeModel) Map() MapView                 { return m.mapv }
func (m *HomeModel) Sheet() *PlacesSheet          { return &m.sheet }

// SelectCategory makes id the current filter and fetches its places.
// An empty id sends no request and ids outside the loaded categories are ignored.
func (m *HomeModel) SelectCategory(id string) tea.Cmd {
	if id != "" && !types.HasCategory(m.categories, id) {
		m.log.Warn("ignore unknown category", "category", id)
		return nil
	}
	m.selected = id
	m.bar.Select(id)
	if id == "" {
		return nil
	}
	m.marketsGen++
	m.state = MarketsLoading
	m.log.Debug("fetch markets", "category", id, "request_id", m.marketsGen)
	return fetchMarkets(m.source, id, m.marketsGen)
}

func (m *HomeModel) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case categoriesMsg:
		return m.handleCategories(msg)
	case marketsMsg:
		return m.handleMarkets(msg)
	case locationMsg:
		m.handleLocation(msg)
		return nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return nil
}

func (m *HomeModel) handleCategories(msg categoriesMsg) tea.Cmd {
	m.state = CategoriesLoaded
	if msg.err != nil {
		m.log.Error("fetch categories failed", "error", msg.err)
		return m.alert(categoriesAlertTitle, categoriesAlertText)
	}

	m.categories = msg.categories
	m.bar.SetCategories(msg.categories)
	m.log.Info("categories loaded", "count", len(msg.categories))
	return m.SelectCategory(types.DefaultCategory(msg.categories))
}

func (m *HomeModel) handleMarkets(msg marketsMsg) tea.Cmd {
	if msg.requestID != m.marketsGen {
		m.log.Debug("discard stale markets response",
			"category", msg.categoryID,
			"request_id", msg.requestID,
			"current", m.marketsGen,
		)
		return nil
	}

	m.state = MarketsLoaded
	if msg.err != nil {
		m.log.Error("fetch markets failed", "category", msg.categoryID, "error", msg.err)
		return m.alert(marketsAlertTitle, marketsAlertText)
	}

	m.markets = msg.markets
	m.sheet.SetPlaces(msg.markets)
	m.mapv.SetPlaces(msg.markets)
	m.syncFocus()
	return nil
}

// alert opens a dialog only while the home screen is visible
func (m *HomeModel) alert(title, text string) tea.Cmd {
	if !m.active {
		m.log.Debug("suppress alert behind another screen", "title", title)
		return nil
	}
	return ShowAlert(title, text)
}

func (m *HomeModel) handleLocation(msg locationMsg) {
	if msg.err != nil {
		m.log.Warn("read location failed", "error", msg.err)
		return
	}
	if !msg.granted {
		m.log.Info("location permission denied")
		return
	}
	m.location = msg.loc
	m.mapv.SetCenter(msg.loc)
	m.sheet.SetOrigin(msg.loc)
}

func (m *HomeModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.NextCategory):
		return m.changeCategory(m.bar.Next())
	case key.Matches(msg, keys.PrevCategory):
		return m.changeCategory(m.bar.Prev())
	case key.Matches(msg, keys.Refresh):
		return m.SelectCategory(m.selected)
	case key.Matches(msg, keys.Sheet):
		m.sheet.Toggle()
		m.layout()
		return nil
	case key.Matches(msg, keys.Enter):
		if p, ok := m.sheet.Selected(); ok {
			return Navigate(Market(p.ID()))
		}
		return nil
	case key.Matches(msg, keys.Up), key.Matches(msg, keys.Down):
		cmd := m.sheet.Update(msg)
		m.syncFocus()
		return cmd
	}
	return nil
}

// changeCategory only refetches when the selection actually moves
func (m *HomeModel) changeCategory(id string) tea.Cmd {
	if id == m.selected {
		return nil
	}
	return m.SelectCategory(id)
}

// syncFocus shows the callout for the place under the list cursor
func (m *HomeModel) syncFocus() {
	if p, ok := m.sheet.Selected(); ok {
		m.mapv.Focus(p.ID())
		return
	}
	m.mapv.Focus("")
}

func (m *HomeModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.layout()
}

func (m *HomeModel) layout() {
	m.bar.SetWidth(m.width)
	// the sheet and the map share the rows below the header
	body := m.height - m.headerHeight()
	if body < 0 {
		body = 0
	}
	m.sheet.SetSize(m.width, body)
	mapHeight := body - m.sheet.Height()
	if mapHeight < 3 {
		mapHeight = 0
	}
	m.mapv.SetSize(m.width, mapHeight)
}

func (m *HomeModel) headerHeight() int {
	return 2
}

func (m *HomeModel) View() string {
	header := m.theme.Title.Render("nearby") + " " + m.statusLine()
	sections := []string{header, m.bar.View()}
	if mv := m.mapv.View(); mv != "" {
		sections = append(sections, mv)
	}
	if sv := m.sheet.View(); sv != "" {
		sections = append(sections, sv)
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *HomeModel) statusLine() string {
	switch m.state {
	case CategoriesLoading:
		return m.theme.Status.Render("loading categories…")
	case MarketsLoading:
		return m.theme.Status.Render("loading places…")
	case MarketsLoaded:
		text := formatPlaceCount(len(m.markets))
		if m.mapv.height > 0 {
			text += " · " + strconv.Itoa(len(m.mapv.Visible())) + " on map"
		}
		return m.theme.Status.Render(text)
	}
	return ""
}

func formatPlaceCount(n int) string {
	if n == 1 {
		return "1 place"
	}
	return strconv.Itoa(n) + " places"
}
