package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// AlertAction is a dialog button. Cmd runs after the dialog closes.
type AlertAction struct {
	Label string
	Cmd   tea.Cmd
}

// Alert is a blocking dialog. While it is open it receives every key.
type Alert struct {
	Title   string
	Message string
	Actions []AlertAction
	focus   int
}

// AlertMsg asks the root model to open an alert
type AlertMsg struct{ Alert Alert }

// ShowAlert opens a dialog. Without actions a plain "OK" is shown.
func ShowAlert(title, message string, actions ...AlertAction) tea.Cmd {
	if len(actions) == 0 {
		actions = []AlertAction{{Label: "OK"}}
	}
	a := Alert{Title: title, Message: message, Actions: actions}
	return func() tea.Msg { return AlertMsg{Alert: a} }
}

// HandleKey moves the focus or confirms the focused action.
// It reports whether the dialog closed, with the action's command.
func (a *Alert) HandleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Left):
		if a.focus > 0 {
			a.focus--
		}
	case key.Matches(msg, keys.Right):
		if a.focus < len(a.Actions)-1 {
			a.focus++
		}
	case key.Matches(msg, keys.Enter):
		if len(a.Actions) == 0 {
			return true, nil
		}
		return true, a.Actions[a.focus].Cmd
	}
	return false, nil
}

func (a Alert) View(theme Theme) string {
	buttons := make([]string, 0, len(a.Actions))
	for i, action := range a.Actions {
		style := theme.AlertButton
		if i == a.focus {
			style = theme.AlertButtonActive
		}
		buttons = append(buttons, style.Render(action.Label))
	}

	var b strings.Builder
	b.WriteString(theme.AlertTitle.Render(a.Title))
	b.WriteString("\n\n")
	b.WriteString(theme.AlertMessage.Render(a.Message))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, buttons...))
	return theme.AlertBox.Render(b.String())
}
