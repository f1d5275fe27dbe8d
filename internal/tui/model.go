package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"tritris/internal/domain"
)

// maxQueued bounds the key presses buffered between ticks.
const maxQueued = 8

type tickMsg time.Time

type Model struct {
	sess *domain.Session
	keys keyMap
	help help.Model
	log  zerolog.Logger

	poll  time.Duration
	queue []domain.Command

	width  int
	height int
}

func NewModel(sess *domain.Session, poll time.Duration, log zerolog.Logger) Model {
	return Model{
		sess: sess,
		keys: defaultKeyMap(),
		help: help.New(),
		log:  log,
		poll: poll,
	}
}

func (m Model) Session() *domain.Session { return m.sess }

func (m Model) Init() tea.Cmd { return tickCmd(m.poll) }

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		cmd := m.keys.command(msg)
		switch cmd {
		case domain.CmdNone:
			return m, nil
		case domain.CmdQuit:
			m.sess.Step(domain.CmdQuit)
			return m, tea.Quit
		}
		if len(m.queue) >= maxQueued {
			m.log.Debug().Str("cmd", cmd.String()).Msg("input queue full, key dropped")
			return m, nil
		}
		m.queue = append(m.queue, cmd)
		return m, nil

	case tickMsg:
		cmd := domain.CmdNone
		if len(m.queue) > 0 {
			cmd, m.queue = m.queue[0], m.queue[1:]
		}
		m.sess.Step(cmd)
		if m.sess.Over() {
			return m, tea.Quit
		}
		return m, tickCmd(m.poll)
	}
	return m, nil
}

func (m Model) View() string {
	return renderView(m.sess.Snapshot(), m.width, m.help.View(m.keys))
}
