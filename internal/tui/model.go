package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"qtsetup/internal/model"
	"qtsetup/internal/quantower"
)

// Action is one entry in the left-hand menu.
type Action int

const (
	ActionRefresh Action = iota
	ActionSetup
	ActionExploreRoot
	ActionExploreIndicators
	ActionToggleMute
)

// Actions lists the menu in display order.
var Actions = []Action{
	ActionRefresh,
	ActionSetup,
	ActionExploreRoot,
	ActionExploreIndicators,
	ActionToggleMute,
}

func (a Action) Label() string {
	switch a {
	case ActionRefresh:
		return "Refresh detection"
	case ActionSetup:
		return "Set environment variable"
	case ActionExploreRoot:
		return "Explore installation root"
	case ActionExploreIndicators:
		return "Explore custom indicators"
	case ActionToggleMute:
		return "Toggle explore suppression"
	}
	return "?"
}

// AppModel holds the TUI state.
type AppModel struct {
	Bridge *quantower.Bridge

	// Data
	Status  model.Status
	Loading bool
	Err     error
	Message string // Result of the last action

	// UI State
	SelectedIdx int
	WindowSize  tea.WindowSizeMsg
	ShowHelp    bool
	ShowReport  bool
	Verbose     bool // Verbose report popup

	// Components
	Spinner spinner.Model
}

// InitialModel returns the initial state.
func InitialModel(b *quantower.Bridge) AppModel {
	s := spinner.New()
	s.Spinner = spinner.Dot

	return AppModel{
		Bridge:  b,
		Loading: true,
		Spinner: s,
	}
}
