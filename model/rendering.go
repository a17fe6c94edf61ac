package model

import (
	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
)

const (
	gridPosBlock = '█'
	gridPosEmpty = ' '
)

var (
	aliveStyle  = tcell.StyleDefault.Foreground(tcell.ColorGreen).Background(tcell.ColorBlack)
	deadStyle   = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorBlack)
	statusStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
)

// TerminalRenderer draws boards onto a tcell screen, two columns per cell
type TerminalRenderer struct {
	screen tcell.Screen
}

// NewTerminalRenderer initializes the screen and wraps it in a renderer
func NewTerminalRenderer(screen tcell.Screen) (*TerminalRenderer, error) {
	if err := screen.Init(); err != nil {
		return nil, errors.Wrap(err, "[NewTerminalRenderer] failed to initialize screen")
	}
	screen.SetStyle(deadStyle)
	screen.Clear()
	return &TerminalRenderer{screen: screen}, nil
}

// Screen exposes the underlying screen for event polling
func (r *TerminalRenderer) Screen() tcell.Screen {
	return r.screen
}

// Display renders the status lines followed by the board
func (r *TerminalRenderer) Display(b *Board, status ...string) {
	for row, line := range status {
		r.drawText(0, row, line)
	}

	top := len(status)
	for y := range b.height {
		for x := range b.width {
			style, ch := deadStyle, gridPosEmpty
			if b.cells[y*b.width+x] {
				style, ch = aliveStyle, gridPosBlock
			}
			r.screen.SetContent(x*2, top+y, ch, nil, style)
			r.screen.SetContent(x*2+1, top+y, ch, nil, style)
		}
	}
	r.screen.Show()
}

// drawText writes text on row y and blanks the rest of the row, so a shorter
// line fully replaces a longer one from the previous frame
func (r *TerminalRenderer) drawText(x, y int, text string) {
	width, _ := r.screen.Size()
	for _, ch := range text {
		r.screen.SetContent(x, y, ch, nil, statusStyle)
		x++
	}
	for ; x < width; x++ {
		r.screen.SetContent(x, y, gridPosEmpty, nil, statusStyle)
	}
}

// Clear blanks the terminal screen
func (r *TerminalRenderer) Clear() {
	r.screen.Clear()
	r.screen.Show()
}

// Close restores the terminal
func (r *TerminalRenderer) Close() {
	r.screen.Fini()
}
