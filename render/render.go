// Package render paints the namesprout screen: title bar, name field, and
// the garden of stem letters. Every Draw is a full clear-and-repaint; the
// previous garden is always discarded wholesale.
package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/seedbed/namesprout/flower"
	"github.com/seedbed/namesprout/stem"
)

const (
	gardenLeft = 2 // first letter column
	fieldRow   = 2 // name field row
	stalkRune  = '│'
	groundRune = '▁'
)

// State is everything a single frame needs.
type State struct {
	Name    string // raw editor contents, shown in the field
	Cursor  int    // rune index into Name
	Letters []stem.Letter
	Flower  flower.Flower
	Month   string
	SoundOn bool
}

// Renderer draws frames onto one screen.
type Renderer struct {
	screen tcell.Screen
}

func New(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Draw clears the screen and repaints the whole frame from st.
func (r *Renderer) Draw(st State) {
	r.screen.Clear()
	width, height := r.screen.Size()

	r.drawTitle(st, width)
	r.drawField(st)
	r.drawGarden(st, width, height)

	r.screen.Show()
}

func (r *Renderer) drawTitle(st State, width int) {
	titleStyle := tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	x := printText(r.screen, gardenLeft, 0, titleStyle, "namesprout")
	if st.SoundOn {
		printText(r.screen, x+1, 0, tcell.StyleDefault.Foreground(tcell.ColorTeal), "♪")
	}

	month := st.Month
	if month == "" {
		month = "any month"
	}
	label := month + " · " + st.Flower.Name
	dimStyle := tcell.StyleDefault.Foreground(tcell.ColorGray)
	printText(r.screen, width-runewidth.StringWidth(label)-2, 0, dimStyle, label)
}

func (r *Renderer) drawField(st State) {
	promptStyle := tcell.StyleDefault.Foreground(tcell.ColorTeal)
	x := printText(r.screen, gardenLeft, fieldRow, promptStyle, "name> ")
	printText(r.screen, x, fieldRow, tcell.StyleDefault, st.Name)

	cursorX := x
	for i, rn := range []rune(st.Name) {
		if i >= st.Cursor {
			break
		}
		cursorX += cellWidth(rn)
	}
	r.screen.ShowCursor(cursorX, fieldRow)
}

// drawGarden lays the letters out left to right above the ground line. The
// anchor letter carries the blossom glyph and color; the rest shade along the
// stem gradient. An empty name leaves the garden bare.
func (r *Renderer) drawGarden(st State, width, height int) {
	ground := groundRow(height)
	letterY := ground - 2

	groundStyle := tcell.StyleDefault.Foreground(tcell.ColorOlive)
	for x := 0; x < width; x++ {
		r.screen.SetContent(x, ground, groundRune, nil, groundStyle)
	}

	if len(st.Letters) == 0 {
		return
	}

	x := gardenLeft
	for i, l := range st.Letters {
		style := letterStyle(st.Flower, i, len(st.Letters))
		r.screen.SetContent(x, letterY, l.Rune, nil, style)
		r.screen.SetContent(x, letterY+1, stalkRune, nil, stalkStyle(st.Flower))
		if l.Anchor {
			r.screen.SetContent(x, letterY-1, st.Flower.Glyph, nil, blossomStyle(st.Flower))
		}
		x += cellWidth(l.Rune) + 1
	}
}

// groundRow is the garden baseline for a screen of the given height.
func groundRow(height int) int {
	row := height - 3
	if row < fieldRow+4 {
		row = fieldRow + 4
	}
	return row
}

// letterRow is where the stem letters land; exposed for layout checks.
func letterRow(height int) int {
	return groundRow(height) - 2
}

func cellWidth(r rune) int {
	w := runewidth.RuneWidth(r)
	if w < 1 {
		w = 1
	}
	return w
}

// printText draws s from (x, y) and returns the column after the last cell.
func printText(s tcell.Screen, x, y int, style tcell.Style, text string) int {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x += cellWidth(r)
	}
	return x
}
