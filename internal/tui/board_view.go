package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"tritris/internal/domain"
	"tritris/internal/render"
)

var (
	titleStyle     = lipgloss.NewStyle().Bold(true)
	activeStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)
	inactiveStyle  = lipgloss.NewStyle().Faint(true)
	indicatorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	bannerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	sideStyle      = lipgloss.NewStyle().PaddingLeft(2)
)

// renderView styles a rendered frame and centres it in width columns. A
// width of 0 leaves the frame left aligned.
func renderView(snap domain.Snapshot, width int, helpLine string) string {
	f := render.Render(snap)

	boards := make([]string, 0, 5)
	for _, id := range domain.Boards() {
		if id > 0 {
			boards = append(boards, "   ")
		}
		block := strings.Join(f.Boards[id], "\n")
		if id == f.Active {
			block = activeStyle.Render(block)
		} else {
			block = inactiveStyle.Render(block)
		}
		boards = append(boards, block)
	}
	field := lipgloss.JoinVertical(lipgloss.Left,
		indicatorStyle.Render(f.Indicator()),
		lipgloss.JoinHorizontal(lipgloss.Top, boards...),
	)

	side := sideStyle.Render(strings.Join(append(append([]string{"Next:"}, f.Preview...), f.Status...), "\n"))
	body := lipgloss.JoinHorizontal(lipgloss.Bottom, field, side)

	parts := []string{titleStyle.Render("tritris"), body}
	if f.Banner != "" {
		parts = append(parts, bannerStyle.Render(f.Banner))
	}
	parts = append(parts, helpLine)
	view := lipgloss.JoinVertical(lipgloss.Left, parts...)

	if width > 0 {
		view = lipgloss.PlaceHorizontal(width, lipgloss.Center, view)
	}
	return view
}
