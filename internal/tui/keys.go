package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"tritris/internal/domain"
)

type keyMap struct {
	Left       key.Binding
	Right      key.Binding
	SoftDrop   key.Binding
	HardDrop   key.Binding
	Rotate     key.Binding
	SwitchBack key.Binding
	SwitchFwd  key.Binding
	Quit       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Left: key.NewBinding(
			key.WithKeys("a", "A", "h", "left"),
			key.WithHelp("a/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("d", "D", "l", "right"),
			key.WithHelp("d/l", "right"),
		),
		SoftDrop: key.NewBinding(
			key.WithKeys("s", "S", "j", "down"),
			key.WithHelp("s/j", "down"),
		),
		HardDrop: key.NewBinding(
			key.WithKeys("f", "F", " "),
			key.WithHelp("f/space", "drop"),
		),
		Rotate: key.NewBinding(
			key.WithKeys("w", "W", "k", "r", "up"),
			key.WithHelp("w/k/r", "rotate"),
		),
		SwitchBack: key.NewBinding(
			key.WithKeys("q", "Q"),
			key.WithHelp("q", "board <"),
		),
		SwitchFwd: key.NewBinding(
			key.WithKeys("e", "E"),
			key.WithHelp("e", "board >"),
		),
		Quit: key.NewBinding(
			key.WithKeys("x", "X", "ctrl+c"),
			key.WithHelp("x", "quit"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.SoftDrop, k.HardDrop, k.Rotate, k.SwitchBack, k.SwitchFwd, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// command maps a key press to a game command. Unbound keys yield CmdNone.
func (k keyMap) command(msg tea.KeyMsg) domain.Command {
	switch {
	case key.Matches(msg, k.Left):
		return domain.CmdMoveLeft
	case key.Matches(msg, k.Right):
		return domain.CmdMoveRight
	case key.Matches(msg, k.SoftDrop):
		return domain.CmdSoftDrop
	case key.Matches(msg, k.HardDrop):
		return domain.CmdHardDrop
	case key.Matches(msg, k.Rotate):
		return domain.CmdRotate
	case key.Matches(msg, k.SwitchBack):
		return domain.CmdSwitchBackward
	case key.Matches(msg, k.SwitchFwd):
		return domain.CmdSwitchForward
	case key.Matches(msg, k.Quit):
		return domain.CmdQuit
	}
	return domain.CmdNone
}
