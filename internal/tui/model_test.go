package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tritris/internal/domain"
)

type stillClock struct{}

func (stillClock) Now() time.Duration { return 0 }

// oRand always draws the O piece and the Left board.
type oRand struct{}

func (oRand) IntN(n int) int { return 1 % n }

func newTestModel(t *testing.T) Model {
	t.Helper()
	sess := domain.NewSession(domain.DefaultRules(), stillClock{}, oRand{}, zerolog.Nop())
	require.Equal(t, domain.StateFalling, sess.State())
	return NewModel(sess, 50*time.Millisecond, zerolog.Nop())
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok)
	return nm, cmd
}

func TestKeyMap_Commands(t *testing.T) {
	keys := defaultKeyMap()
	tests := []struct {
		msg  tea.KeyMsg
		want domain.Command
	}{
		{keyRunes("a"), domain.CmdMoveLeft},
		{keyRunes("h"), domain.CmdMoveLeft},
		{tea.KeyMsg{Type: tea.KeyLeft}, domain.CmdMoveLeft},
		{keyRunes("d"), domain.CmdMoveRight},
		{keyRunes("s"), domain.CmdSoftDrop},
		{keyRunes("f"), domain.CmdHardDrop},
		{keyRunes("w"), domain.CmdRotate},
		{keyRunes("r"), domain.CmdRotate},
		{keyRunes("q"), domain.CmdSwitchBackward},
		{keyRunes("e"), domain.CmdSwitchForward},
		{keyRunes("x"), domain.CmdQuit},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, domain.CmdQuit},
		{keyRunes("z"), domain.CmdNone},
		{keyRunes("7"), domain.CmdNone},
	}
	for _, tt := range tests {
		t.Run(tt.msg.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, keys.command(tt.msg))
		})
	}
}

func TestUpdate_KeysWaitForTick(t *testing.T) {
	m := newTestModel(t)

	m, _ = update(t, m, keyRunes("a"))
	m, _ = update(t, m, keyRunes("a"))
	assert.Equal(t, 4, m.sess.Piece().X, "keys are applied on ticks only")

	m, cmd := update(t, m, tickMsg(time.Now()))
	assert.NotNil(t, cmd)
	assert.Equal(t, 3, m.sess.Piece().X, "one command per tick")

	m, _ = update(t, m, tickMsg(time.Now()))
	assert.Equal(t, 2, m.sess.Piece().X)

	m, _ = update(t, m, tickMsg(time.Now()))
	assert.Equal(t, 2, m.sess.Piece().X)
}

func TestUpdate_UnknownKeyIgnored(t *testing.T) {
	m := newTestModel(t)
	m, cmd := update(t, m, keyRunes("z"))
	assert.Nil(t, cmd)
	assert.Empty(t, m.queue)
}

func TestUpdate_QueueBounded(t *testing.T) {
	m := newTestModel(t)
	for range maxQueued + 5 {
		m, _ = update(t, m, keyRunes("d"))
	}
	assert.Len(t, m.queue, maxQueued)
}

func TestUpdate_QuitIsImmediate(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, keyRunes("d"))

	m, cmd := update(t, m, keyRunes("x"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Equal(t, domain.StateQuit, m.sess.State())
}

func TestUpdate_GameOverQuits(t *testing.T) {
	m := newTestModel(t)
	m.sess.Board(domain.Right).Set(4, 0, domain.Filled)

	m, _ = update(t, m, keyRunes("e"))
	m, cmd := update(t, m, tickMsg(time.Now()))

	assert.Equal(t, domain.StateGameOver, m.sess.State())
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Contains(t, m.View(), "Game Over!")
}

func TestUpdate_WindowSize(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.Equal(t, 120, m.width)
	assert.Equal(t, 120, m.help.Width)
}

func TestView_ShowsStatus(t *testing.T) {
	m := newTestModel(t)
	v := m.View()
	assert.Contains(t, v, "tritris")
	assert.Contains(t, v, "Score: 0")
	assert.Contains(t, v, "Board: center")
	assert.NotContains(t, v, "Game Over")
}

func TestInit_StartsTicking(t *testing.T) {
	m := newTestModel(t)
	assert.NotNil(t, m.Init())
}
