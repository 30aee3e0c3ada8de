package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"qtsetup/internal/model"
	"qtsetup/internal/report"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	normalStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	okStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	badStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))

	adviceStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("208")) // Orange
)

const helpText = `qtsetup keys

  ↑/↓, j/k   Move through the action list
  enter      Run the selected action
  r          Refresh detection
  s          Set the environment variable (process + user)
  e          Open the installation root
  i          Open the custom indicators directory
  m          Toggle explore suppression
  d          Show the full report (v toggles verbose)
  ?          This help
  q          Quit

The user-scope variable is only seen by programs started after it is set.
Restart any IDE that was already running.`

func (m AppModel) View() string {
	if m.ShowHelp {
		return m.renderDialog("Help", helpText, "63")
	}
	if m.ShowReport {
		return m.renderDialog("Report", report.Generate(m.Status, m.Verbose), "208")
	}
	if m.Loading && m.Status.ProcessName == "" {
		return fmt.Sprintf("\n  %s Looking for Quantower... please wait.\n", m.Spinner.View())
	}

	width := m.WindowSize.Width
	height := m.WindowSize.Height

	netWidth := width - 6
	if netWidth < 40 {
		netWidth = 40
	}
	leftWidth := netWidth / 3
	rightWidth := netWidth - leftWidth

	interiorHeight := height - 8
	if interiorHeight < 10 {
		interiorHeight = 10
	}

	// LEFT PANEL: actions
	var leftView strings.Builder
	leftView.WriteString(titleStyle.Render("Actions"))
	leftView.WriteString("\n\n")
	for i, a := range Actions {
		line := a.Label()
		if i == m.SelectedIdx {
			leftView.WriteString(selectedStyle.Render("> " + line))
		} else {
			leftView.WriteString(normalStyle.Render("  " + line))
		}
		leftView.WriteString("\n")
	}

	left := lipgloss.NewStyle().
		Width(leftWidth).
		Height(interiorHeight).
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("205")).
		Render(strings.TrimSuffix(leftView.String(), "\n"))

	// RIGHT PANEL: status
	right := lipgloss.NewStyle().
		Width(rightWidth).
		Height(interiorHeight).
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("63")).
		Render(m.statusPanel(rightWidth))

	footer := "\n"
	switch {
	case m.Loading:
		footer += m.Spinner.View() + " working..."
	case m.Err != nil:
		footer += badStyle.Render("Error: " + m.Err.Error())
	case m.Message != "":
		footer += adviceStyle.Render(m.Message)
	}
	footer += "\n" + dimStyle.Render("↑/↓: Navigate • enter: Run • r/s/e/i/m: Shortcuts • d: Report • ?: Help • q: Quit")

	return lipgloss.JoinHorizontal(lipgloss.Top, left, right) + footer
}

func (m AppModel) statusPanel(width int) string {
	st := m.Status
	var b strings.Builder

	b.WriteString(titleStyle.Render("Quantower"))
	b.WriteString("\n\n")

	if pid, ok := st.PID.Get(); ok {
		b.WriteString(okStyle.Render(fmt.Sprintf("%s %s running (pid %d)", model.IconOK, st.ProcessName, pid)))
	} else {
		b.WriteString(badStyle.Render(fmt.Sprintf("%s %s not running", model.IconMissing, st.ProcessName)))
	}
	b.WriteString("\n\n")

	row := func(label string, v model.Optional[string], exists bool) {
		icon := model.IconMissing
		style := badStyle
		if v.IsPresent() && exists {
			icon, style = model.IconOK, okStyle
		}
		text := truncate(v.OrElse("(not detected)"), width-16)
		b.WriteString(fmt.Sprintf("%s %-12s %s\n", style.Render(icon), label, text))
	}
	row("Executable", st.ProcessPath, st.ProcessPath.IsPresent())
	row("Root", st.Root, st.RootExists)
	row("Indicators", st.Indicators, st.IndicatorsExists)

	b.WriteString("\n")
	env := func(scope string, v model.Optional[string]) {
		val, ok := v.Get()
		switch {
		case !ok:
			b.WriteString(fmt.Sprintf("%s %-12s unset\n", badStyle.Render(model.IconMissing), scope))
		case st.Root.IsPresent() && val != st.Root.OrElse(""):
			b.WriteString(fmt.Sprintf("%s %-12s %s\n", adviceStyle.Render(model.IconStale), scope, truncate(val, width-16)))
		default:
			b.WriteString(fmt.Sprintf("%s %-12s %s\n", okStyle.Render(model.IconOK), scope, truncate(val, width-16)))
		}
	}
	b.WriteString(dimStyle.Render(st.EnvKey))
	b.WriteString("\n")
	env("process", st.EnvProcess)
	env("user", st.EnvUser)

	if st.ExploreMuted {
		b.WriteString("\n" + adviceStyle.Render(model.IconMuted+" explore suppressed"))
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func (m AppModel) renderDialog(title, body, color string) string {
	w, h := m.WindowSize.Width, m.WindowSize.Height
	if w < 20 || h < 10 {
		return "Window too small"
	}

	dialogWidth := w * 80 / 100
	if dialogWidth < 40 {
		dialogWidth = 40
	}
	if dialogWidth > w-4 {
		dialogWidth = w - 4
	}

	footer := dimStyle.Render("\nEsc to close")
	dialog := lipgloss.NewStyle().
		Width(dialogWidth).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(color)).
		Padding(0, 1).
		Render(titleStyle.Render(title) + "\n\n" + body + footer)

	return lipgloss.Place(w, h,
		lipgloss.Center, lipgloss.Center,
		dialog,
	)
}

// truncate keeps the tail of s within max runes.
func truncate(s string, max int) string {
	r := []rune(s)
	if max < 8 || len(r) <= max {
		return s
	}
	return "..." + string(r[len(r)-max+3:])
}

func (m AppModel) Init() tea.Cmd {
	return tea.Batch(m.Spinner.Tick, StatusCmd(m.Bridge))
}
