package tui

import (
	"errors"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"golang.org/x/term"

	"tritris/internal/domain"
	"tritris/internal/render"
)

var ErrNotTerminal = errors.New("stdin is not a terminal")

// Run plays sess in the alternate screen until the player quits or loses.
// The terminal is restored before Run returns. A lost game leaves the final
// board and score on the normal screen.
func Run(sess *domain.Session, poll time.Duration, log zerolog.Logger) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return ErrNotTerminal
	}

	m := NewModel(sess, poll, log)
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		m.width, m.height = w, h
		m.help.Width = w
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("run program: %w", err)
	}

	if fm, ok := final.(Model); ok && fm.sess.State() == domain.StateGameOver {
		fmt.Print(render.Render(fm.sess.Snapshot()).String())
	}
	return nil
}
