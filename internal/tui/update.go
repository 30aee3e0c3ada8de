package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"qtsetup/internal/model"
	"qtsetup/internal/quantower"
)

// MsgStatus carries a fresh detection snapshot.
type MsgStatus model.Status

// MsgActionDone reports the outcome of a menu action.
type MsgActionDone struct {
	Text string
	Err  error
}

// Update handles events.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.WindowSize = msg
		return m, nil

	case MsgStatus:
		m.Loading = false
		m.Status = model.Status(msg)
		return m, nil

	case MsgActionDone:
		m.Message = msg.Text
		m.Err = msg.Err
		m.Loading = true
		return m, tea.Batch(m.Spinner.Tick, StatusCmd(m.Bridge))

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.Loading {
		var cmd tea.Cmd
		m.Spinner, cmd = m.Spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m AppModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.ShowHelp || m.ShowReport {
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "v":
			if m.ShowReport {
				m.Verbose = !m.Verbose
			}
		case "esc", "?", "d":
			m.ShowHelp = false
			m.ShowReport = false
		}
		return m, nil
	}

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "up", "k":
		if m.SelectedIdx > 0 {
			m.SelectedIdx--
		}
	case "down", "j":
		if m.SelectedIdx < len(Actions)-1 {
			m.SelectedIdx++
		}
	case "enter", " ":
		return m.run(Actions[m.SelectedIdx])
	case "r":
		return m.run(ActionRefresh)
	case "s":
		return m.run(ActionSetup)
	case "e":
		return m.run(ActionExploreRoot)
	case "i":
		return m.run(ActionExploreIndicators)
	case "m":
		return m.run(ActionToggleMute)
	case "d":
		m.ShowReport = true
	case "?":
		m.ShowHelp = true
	}
	return m, nil
}

func (m AppModel) run(a Action) (tea.Model, tea.Cmd) {
	if m.Bridge == nil {
		return m, nil
	}
	m.Loading = true
	return m, tea.Batch(m.Spinner.Tick, ActionCmd(m.Bridge, a))
}

// StatusCmd takes a detection snapshot in the background.
func StatusCmd(b *quantower.Bridge) tea.Cmd {
	return func() tea.Msg {
		return MsgStatus(b.Status())
	}
}

// ActionCmd performs a against the bridge.
func ActionCmd(b *quantower.Bridge, a Action) tea.Cmd {
	return func() tea.Msg {
		switch a {
		case ActionRefresh:
			return MsgActionDone{Text: "Detection refreshed."}
		case ActionSetup:
			ok, err := b.SetupRootEnvironmentVariable()
			if err != nil {
				return MsgActionDone{Err: err}
			}
			if !ok {
				return MsgActionDone{Text: "Quantower is not running; environment left unchanged."}
			}
			return MsgActionDone{Text: fmt.Sprintf("%s set. Restart open IDEs to pick it up.", b.EnvKey())}
		case ActionExploreRoot:
			return exploreResult("root", b.ExploreRoot)
		case ActionExploreIndicators:
			return exploreResult("custom indicators", b.ExploreCustomIndicators)
		case ActionToggleMute:
			b.SetSuppressExplore(!b.ExploreSuppressed())
			if b.ExploreSuppressed() {
				return MsgActionDone{Text: "Explore requests suppressed."}
			}
			return MsgActionDone{Text: "Explore requests enabled."}
		}
		return MsgActionDone{}
	}
}

func exploreResult(what string, explore func() (bool, error)) tea.Msg {
	ok, err := explore()
	switch {
	case err != nil:
		return MsgActionDone{Err: err}
	case ok:
		return MsgActionDone{Text: fmt.Sprintf("Opened %s.", what)}
	default:
		return MsgActionDone{Text: fmt.Sprintf("Nothing opened: %s not found or explore suppressed.", what)}
	}
}
