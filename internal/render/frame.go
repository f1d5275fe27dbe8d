// Package render turns a session snapshot into plain text blocks. It has no
// terminal side effects; the tui package styles and prints the result.
package render

import (
	"fmt"
	"strings"

	"tritris/internal/domain"
)

const (
	boardGap  = "   "
	indicator = "\\/"
)

type Frame struct {
	Active  domain.BoardID
	Boards  [3][]string
	Preview []string
	Status  []string
	Banner  string // set only when the game was lost
}

// Render builds the frame for s. The active piece is drawn on the active
// board only.
func Render(s domain.Snapshot) Frame {
	f := Frame{
		Active:  s.Active,
		Preview: Preview(s.Next.Matrix),
		Status: []string{
			fmt.Sprintf("Score: %d", s.Score),
			fmt.Sprintf("Lines: %d", s.Lines),
			fmt.Sprintf("Board: %s", s.Active),
		},
	}

	for _, id := range domain.Boards() {
		var p *domain.Piece
		if id == s.Active && s.Piece.Matrix != nil {
			piece := s.Piece
			p = &piece
		}
		f.Boards[id] = Board(s.Boards[id], s.Width, p)
	}

	if s.State == domain.StateGameOver {
		f.Banner = GameOverBanner(s)
	}
	return f
}

// GameOverBanner is the message shown when a game is lost.
func GameOverBanner(s domain.Snapshot) string {
	msg := "Game Over!"
	if r := s.Reason.String(); r != "" {
		msg += " (" + r + ")"
	}
	return fmt.Sprintf("%s Final Score: %d", msg, s.Score)
}

// BoardWidth is the printed width of one bordered board.
func (f Frame) BoardWidth() int {
	if len(f.Boards[0]) == 0 {
		return 0
	}
	return len(f.Boards[0][0])
}

// Indicator returns the line that marks the active board with "\/".
func (f Frame) Indicator() string {
	w := f.BoardWidth()
	pos := int(f.Active)*(w+len(boardGap)) + w/2 - 1
	return strings.Repeat(" ", max(pos, 0)) + indicator
}

// String lays the frame out as plain text, boards side by side.
func (f Frame) String() string {
	lines := []string{f.Indicator()}
	for i := range f.Boards[0] {
		lines = append(lines, f.Boards[0][i]+boardGap+f.Boards[1][i]+boardGap+f.Boards[2][i])
	}
	lines = append(lines, "", "Next:")
	lines = append(lines, f.Preview...)
	lines = append(lines, f.Status...)
	if f.Banner != "" {
		lines = append(lines, "", f.Banner)
	}
	return strings.Join(lines, "\n") + "\n"
}
