package ui

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/qyinm/nearby/types"
)

const (
	marketAlertTitle = "Error"
	marketAlertText  = "Unable to load the data"
	coverHeight      = 6
)

// MarketModel is the detail screen for one place
type MarketModel struct {
	key    int
	id     string
	source types.MarketSource
	log    *slog.Logger
	theme  Theme

	gen     int
	loading bool
	data    *types.PlaceDetail
	status  string

	spinner  spinner.Model
	viewport viewport.Model
	width    int
	height   int
}

// NewMarket creates the detail screen. key distinguishes screen instances
// so that responses reach the screen that asked for them.
func NewMarket(key int, id string, source types.MarketSource, theme Theme, log *slog.Logger) *MarketModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = theme.Loading

	return &MarketModel{
		key:      key,
		id:       id,
		source:   source,
		log:      log,
		theme:    theme,
		loading:  true,
		spinner:  s,
		viewport: viewport.New(0, 0),
	}
}

func (m *MarketModel) Route() Route { return Market(m.id) }

func (m *MarketModel) Mount() tea.Cmd {
	return tea.Batch(m.fetch(), m.spinner.Tick)
}

// SetID re-fetches when the route parameter changes
func (m *MarketModel) SetID(id string) tea.Cmd {
	if id == m.id {
		return nil
	}
	m.id = id
	m.loading = true
	m.data = nil
	m.status = ""
	return tea.Batch(m.fetch(), m.spinner.Tick)
}

func (m *MarketModel) fetch() tea.Cmd {
	m.gen++
	m.log.Debug("fetch market", "id", m.id, "request_id", m.gen)
	return fetchMarketDetail(m.source, m.key, m.id, m.gen)
}

func (m *MarketModel) ID() string               { return m.id }
func (m *MarketModel) Loading() bool            { return m.loading }
func (m *MarketModel) Data() *types.PlaceDetail { return m.data }

func (m *MarketModel) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case marketDetailMsg:
		if msg.screen != m.key || msg.requestID != m.gen {
			return nil
		}
		if msg.err != nil {
			m.log.Error("fetch market failed", "id", msg.id, "error", msg.err)
			// loading stays set; the screen is left through the alert action
			return ShowAlert(marketAlertTitle, marketAlertText, AlertAction{Label: "OK", Cmd: Back()})
		}
		m.data = msg.detail
		m.loading = false
		if m.data == nil {
			m.log.Info("market has no data, redirecting home", "id", msg.id)
			return Redirect(Home)
		}
		m.refreshContent()
		return nil

	case spinner.TickMsg:
		if !m.loading {
			return nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return cmd

	case clipboardMsg:
		if msg.err != nil {
			m.log.Warn("copy address failed", "error", msg.err)
			m.status = "Unable to copy the address"
			return nil
		}
		m.status = "Address copied"
		return nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Back):
			return Back()
		case key.Matches(msg, keys.Copy):
			if m.data != nil && m.data.Place().Address() != "" {
				return copyToClipboard(m.data.Place().Address())
			}
			return nil
		}
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return cmd
	}
	return nil
}

func (m *MarketModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = height - coverHeight - 1
	if m.viewport.Height < 0 {
		m.viewport.Height = 0
	}
	m.refreshContent()
}

func (m *MarketModel) refreshContent() {
	if m.data == nil {
		return
	}
	m.viewport.SetContent(renderDetails(m.theme, *m.data, m.width))
	m.viewport.GotoTop()
}

func (m *MarketModel) View() string {
	if m.loading {
		return centerOverlay(m.width, m.height, m.spinner.View()+" Loading…")
	}
	if m.data == nil {
		return ""
	}

	status := ""
	if m.status != "" {
		status = m.theme.Status.Render(m.status)
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		renderCover(m.theme, m.data.Place().Cover(), m.width),
		m.viewport.View(),
		status,
	)
}

// renderCover stands in for the cover image with its URL
func renderCover(theme Theme, uri string, width int) string {
	inner := width - theme.Cover.GetHorizontalFrameSize()
	if inner < 1 {
		inner = 1
	}
	caption := theme.CoverCaption.Render("▣ cover")
	if uri == "" {
		uri = "no image"
	}
	body := caption + "\n" + ansi.Truncate(uri, inner, "…")
	return theme.Cover.Width(width - theme.Cover.GetHorizontalBorderSize()).Render(body)
}

// renderDetails lays out the detail panel: name, description, coupons,
// rules and contact information.
func renderDetails(theme Theme, detail types.PlaceDetail, width int) string {
	place := detail.Place()
	wrap := lipgloss.NewStyle().Width(max(width-2, 1))

	var b strings.Builder
	b.WriteString(theme.DetailTitle.Render(place.Name()))
	b.WriteString("\n")
	if place.About() != "" {
		b.WriteString(wrap.Inherit(theme.DetailText).Render(place.About()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(theme.SectionTitle.Render("Coupons"))
	b.WriteString("\n")
	b.WriteString(theme.ItemCoupons.Render(fmt.Sprintf("▼ %s", formatCoupons(place.Coupons()))))
	b.WriteString("\n")

	if rules := detail.Rules(); len(rules) > 0 {
		b.WriteString("\n")
		b.WriteString(theme.SectionTitle.Render("Rules"))
		b.WriteString("\n")
		for _, r := range rules {
			b.WriteString(theme.Bullet.Render("• "))
			b.WriteString(theme.DetailText.Render(r.Description()))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(theme.SectionTitle.Render("Information"))
	b.WriteString("\n")
	if place.Address() != "" {
		b.WriteString(theme.Bullet.Render("⌂ "))
		b.WriteString(theme.DetailText.Render(place.Address()))
		b.WriteString("\n")
	}
	if place.Phone() != "" {
		b.WriteString(theme.Bullet.Render("☎ "))
		b.WriteString(theme.DetailText.Render(place.Phone()))
		b.WriteString("\n")
	}
	return b.String()
}
