package ui

import (
	"io"
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/qyinm/nearby/location"
	"github.com/qyinm/nearby/types"
)

// screen is a routed view owned by the navigation stack
type screen interface {
	Mount() tea.Cmd
	Update(msg tea.Msg) tea.Cmd
	View() string
	SetSize(width, height int)
	Route() Route
}

// activator is implemented by screens that need to know when they are covered
type activator interface {
	SetActive(active bool)
}

// Options configures the root model
type Options struct {
	Log *slog.Logger
	// LoadTheme resolves the theme before any screen renders. Defaults to DetectTheme.
	LoadTheme func() Theme
}

// Model is the root layout: it resolves the theme, then hosts the screen stack
type Model struct {
	source  types.MarketSource
	locator location.Provider
	log     *slog.Logger
	loader  func() Theme

	theme    *Theme
	sized    bool
	spinner  spinner.Model
	help     help.Model
	stack    []screen
	alert    *Alert
	nextKey  int
	width    int
	height   int
	showHelp bool
}

// NewModel creates the root model for the given data source and location provider
func NewModel(source types.MarketSource, locator location.Provider, opts Options) Model {
	log := opts.Log
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	loader := opts.LoadTheme
	if loader == nil {
		loader = DetectTheme
	}

	s := spinner.New()
	s.Spinner = spinner.Dot

	return Model{
		source:  source,
		locator: locator,
		log:     log,
		loader:  loader,
		spinner: s,
		help:    help.New(),
	}
}

// Init starts resolving the theme
func (m Model) Init() tea.Cmd {
	return tea.Batch(loadTheme(m.loader), m.spinner.Tick)
}

// Ready reports whether screens are being rendered
func (m Model) Ready() bool { return len(m.stack) > 0 }

// Top returns the visible screen's route
func (m Model) Top() (Route, bool) {
	if len(m.stack) == 0 {
		return Route{}, false
	}
	return m.stack[len(m.stack)-1].Route(), true
}

// Alert returns the open dialog, if any
func (m Model) Alert() (Alert, bool) {
	if m.alert == nil {
		return Alert{}, false
	}
	return *m.alert, true
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.alert != nil {
			done, cmd := m.alert.HandleKey(msg)
			if done {
				m.alert = nil
			}
			return m, cmd
		}
		if !m.Ready() {
			return m, nil
		}
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Help):
			m.showHelp = !m.showHelp
			m.help.ShowAll = m.showHelp
			for _, s := range m.stack {
				s.SetSize(m.screenSize())
			}
			return m, nil
		}
		return m, m.top().Update(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.sized = true
		for _, s := range m.stack {
			s.SetSize(m.screenSize())
		}
		return m, m.mountIfReady()

	case themeMsg:
		theme := msg.theme
		m.theme = &theme
		m.spinner.Style = theme.Loading
		m.help.Styles.ShortKey = theme.HelpKey
		m.help.Styles.ShortDesc = theme.HelpDesc
		m.help.Styles.FullKey = theme.HelpKey
		m.help.Styles.FullDesc = theme.HelpDesc
		return m, m.mountIfReady()

	case spinner.TickMsg:
		var cmds []tea.Cmd
		if !m.Ready() {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}
		cmds = append(cmds, m.broadcast(msg))
		return m, tea.Batch(cmds...)

	case AlertMsg:
		a := msg.Alert
		m.alert = &a
		return m, nil

	case NavigateMsg:
		return m, m.navigate(msg.Route)

	case BackMsg:
		m.back()
		return m, nil

	case RedirectMsg:
		m.back()
		return m, m.navigate(msg.Route)
	}

	return m, m.broadcast(msg)
}

// mountIfReady mounts the home screen once the theme and the size are known
func (m *Model) mountIfReady() tea.Cmd {
	if m.Ready() || m.theme == nil || !m.sized {
		return nil
	}
	m.log.Info("mounting home screen")
	return m.push(NewHome(m.source, m.locator, *m.theme, m.log))
}

func (m *Model) push(s screen) tea.Cmd {
	s.SetSize(m.screenSize())
	m.stack = append(m.stack, s)
	m.syncActive()
	return s.Mount()
}

func (m *Model) top() screen {
	return m.stack[len(m.stack)-1]
}

// navigate pushes a route. /home pops back to the root screen and a market
// route on top of a market screen only changes its id. Routes whose path
// does not parse back are dropped.
func (m *Model) navigate(to Route) tea.Cmd {
	if !m.Ready() {
		return nil
	}
	r, err := ParseRoute(to.Path())
	if err != nil {
		m.log.Warn("ignore invalid route", "error", err)
		return nil
	}
	m.log.Debug("navigate", "path", r.Path())
	switch r.Kind {
	case HomeRoute:
		m.stack = m.stack[:1]
		m.syncActive()
		return nil
	case MarketRoute:
		if top, ok := m.top().(*MarketModel); ok {
			return top.SetID(r.ID)
		}
		m.nextKey++
		return m.push(NewMarket(m.nextKey, r.ID, m.source, *m.theme, m.log))
	}
	return nil
}

// back pops the top screen. The root screen is never popped.
func (m *Model) back() {
	if len(m.stack) > 1 {
		m.stack = m.stack[:len(m.stack)-1]
		m.syncActive()
	}
}

// syncActive marks the top screen as the only active one
func (m *Model) syncActive() {
	for i, s := range m.stack {
		if a, ok := s.(activator); ok {
			a.SetActive(i == len(m.stack)-1)
		}
	}
}

// broadcast delivers a message to every mounted screen
func (m *Model) broadcast(msg tea.Msg) tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(m.stack))
	for _, s := range m.stack {
		cmds = append(cmds, s.Update(msg))
	}
	return tea.Batch(cmds...)
}

// screenSize is the window minus the help lines
func (m Model) screenSize() (int, int) {
	helpHeight := 1
	if m.showHelp {
		helpHeight = 3
	}
	h := m.height - helpHeight
	if h < 0 {
		h = 0
	}
	return m.width, h
}

// View renders the current view
func (m Model) View() string {
	if !m.Ready() {
		return centerOverlay(m.width, m.height, m.spinner.View()+" Loading…")
	}

	if m.alert != nil {
		return centerOverlay(m.width, m.height, m.alert.View(*m.theme))
	}

	var helpView string
	switch m.top().(type) {
	case *MarketModel:
		helpView = m.help.View(marketKeys{keys})
	default:
		helpView = m.help.View(homeKeys{keys})
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.top().View(), helpView)
}
