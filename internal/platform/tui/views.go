package tui

import (
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))

	subtleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("15")).
			Blink(true)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(1, 4)

	invaderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	winStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	loseStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
)

// titleView renders the start screen. The prompt only appears once a
// confirm would actually start a session.
func (m Model) titleView(now time.Time) string {
	prompt := subtleStyle.Render("get ready...")
	if m.game.StartReady(now) {
		prompt = promptStyle.Render("press enter to start")
	}

	row := strings.Repeat(invaders.InvaderSprite+"  ", 4)
	body := lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render("S P A C E   I N V A D E R S"),
		"",
		invaderStyle.Render(strings.TrimSpace(row)),
		"",
		prompt,
	)

	return m.place(lipgloss.JoinVertical(lipgloss.Center,
		boxStyle.Render(body),
		"",
		m.help.FullHelpView(m.keys.FullHelp()),
	))
}

// gameOverView renders the end-of-session summary.
func (m Model) gameOverView() string {
	headline := loseStyle.Render("YOUR SHIP WAS DESTROYED")
	if m.game.Outcome() == invaders.OutcomeCleared {
		headline = winStyle.Render("ALL INVADERS DESTROYED")
	}

	summary := summaryTable(m.game)
	body := lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render("GAME OVER"),
		"",
		headline,
		"",
		summary.View(),
		"",
		subtleStyle.Render("press enter to continue"),
	)
	return m.place(boxStyle.Render(body))
}

// playingView renders the field. While the control hint is active it
// replaces the bottom row.
func (m Model) playingView() string {
	m.game.Render(m.screen)
	out := RenderScreen(m.screen)
	if !m.game.ShowControls() {
		return out
	}

	hint := subtleStyle.Render(m.help.ShortHelpView(m.keys.ShortHelp()))
	lines := strings.Split(out, "\n")
	lines[len(lines)-1] = lipgloss.PlaceHorizontal(m.screen.Width(), lipgloss.Center, hint)
	return strings.Join(lines, "\n")
}

// place centers content in the terminal.
func (m Model) place(content string) string {
	return lipgloss.Place(m.screen.Width(), m.screen.Height(), lipgloss.Center, lipgloss.Center, content)
}

// summaryTable builds the session statistics table.
func summaryTable(g *invaders.Game) table.Model {
	rows := []table.Row{
		{"Score", strconv.Itoa(g.Score())},
		{"Invaders", strconv.Itoa(g.Kills())},
		{"Frames", strconv.Itoa(g.Frames())},
	}

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Stat", Width: 10},
			{Title: "Value", Width: 8},
		}),
		table.WithRows(rows),
		table.WithHeight(len(rows)+2),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	// Nothing to select; keep the first row unhighlighted
	s.Selected = s.Cell
	t.SetStyles(s)

	return t
}
