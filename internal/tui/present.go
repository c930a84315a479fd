package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"georaster/internal/pixel"
)

// presentHalfBlocks shows buf two pixel rows per terminal line using the
// upper half block, foreground for the top pixel and background for the
// bottom one. Transparent pixels leave the terminal background visible.
func presentHalfBlocks(buf *pixel.Buffer, order pixel.Order) string {
	cells := map[[2]pixel.Color]string{}
	var sb strings.Builder
	for y := 0; y < buf.Height(); y += 2 {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < buf.Width(); x++ {
			top, _ := buf.Get(x, y)
			bot := pixel.Transparent
			if y+1 < buf.Height() {
				bot, _ = buf.Get(x, y+1)
			}
			key := [2]pixel.Color{top, bot}
			s, ok := cells[key]
			if !ok {
				s = halfBlock(top, bot, order)
				cells[key] = s
			}
			sb.WriteString(s)
		}
	}
	return sb.String()
}

func halfBlock(top, bot pixel.Color, order pixel.Order) string {
	switch {
	case top[3] == 0 && bot[3] == 0:
		return " "
	case bot[3] == 0:
		return lipgloss.NewStyle().Foreground(termColor(top, order)).Render("▀")
	case top[3] == 0:
		return lipgloss.NewStyle().Foreground(termColor(bot, order)).Render("▄")
	default:
		return lipgloss.NewStyle().Foreground(termColor(top, order)).Background(termColor(bot, order)).Render("▀")
	}
}

// termColor drops alpha; terminals have no per-cell transparency.
func termColor(c pixel.Color, order pixel.Order) lipgloss.Color {
	r, g, b, _ := c.RGBA(order)
	return lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", r, g, b))
}
