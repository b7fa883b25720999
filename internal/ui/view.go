package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"focustoday/internal/goals"
)

const barWidth = 30

var (
	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	tabStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).PaddingLeft(1).PaddingRight(1)
	activeTabStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).PaddingLeft(1).PaddingRight(1)

	doneStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("82")).Strikethrough(true)
	placeholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	timerStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	expiredStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)

	barStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	barErrorStyle = barStyle.BorderForeground(lipgloss.Color("196"))
	fillStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	trackStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Focus Today"))
	b.WriteString("  ")
	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	if m.page == pageAbout {
		b.WriteString(aboutText)
	} else {
		b.WriteString(m.renderProgress())
		b.WriteString("\n\n")
		b.WriteString(m.renderGoalList())
	}

	b.WriteString("\n")
	b.WriteString(m.status)
	b.WriteString("\n")
	if m.mode == modeEdit {
		b.WriteString(m.help.ShortHelpView(m.keys.editHelp()))
	} else {
		b.WriteString(m.help.View(m.keys))
	}
	return b.String()
}

const aboutText = `Focus Today keeps a short list of goals for the day.

Each goal gets 24 hours from the moment you first write it down.
You can only tick goals off once every slot is filled in, so decide
what matters before you start crossing things out.
`

func (m Model) renderTabs() string {
	home, about := tabStyle, tabStyle
	if m.page == pageHome {
		home = activeTabStyle
	} else {
		about = activeTabStyle
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		home.Render(m.cfg.Keys.Home+" Home"),
		about.Render(m.cfg.Keys.About+" About"),
	)
}

func (m Model) renderProgress() string {
	p := m.goals.Progress()
	filled := int(p.Percent() / 100 * barWidth)
	bar := fillStyle.Render(strings.Repeat("█", filled)) +
		trackStyle.Render(strings.Repeat("░", barWidth-filled))
	content := bar + " " + p.Label()

	if m.goals.ErrorSignal() {
		return barErrorStyle.Render(content) + "\n" + errorStyle.Render("Please set all goals first!")
	}
	return barStyle.Render(content)
}

func (m Model) renderGoalList() string {
	var b strings.Builder
	for i, g := range m.goals.Goals() {
		cursor := " "
		if m.cursor == i {
			cursor = ">"
		}
		checkbox := "[ ]"
		if g.Completed {
			checkbox = "[x]"
		}

		var text string
		switch {
		case m.mode == modeEdit && m.cursor == i:
			text = m.input.View()
		case !g.Filled():
			text = placeholderStyle.Render("Add new goal...")
		case g.Completed:
			text = doneStyle.Render(g.Text)
		default:
			text = g.Text
		}

		b.WriteString(fmt.Sprintf("%s %s %s", cursor, checkbox, text))
		if timer := renderCountdown(g); timer != "" {
			b.WriteString("  ")
			b.WriteString(timer)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func renderCountdown(g goals.Goal) string {
	switch g.Countdown {
	case "":
		return ""
	case goals.ExpiredText:
		return expiredStyle.Render(g.Countdown)
	default:
		return timerStyle.Render(g.Countdown)
	}
}
