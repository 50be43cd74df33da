// Package app wires the name field to the garden. One handler runs to
// completion per terminal event; every change to the field's value triggers
// a full redraw of the garden from the current value, nothing incremental.
package app

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/seedbed/namesprout/audio"
	"github.com/seedbed/namesprout/flower"
	"github.com/seedbed/namesprout/input"
	"github.com/seedbed/namesprout/logging"
	"github.com/seedbed/namesprout/render"
	"github.com/seedbed/namesprout/stem"
)

// Options configure a new App.
type Options struct {
	Month string       // starting month, may be empty
	Chime *audio.Chime // nil when sound is off
}

// App owns the editor state and the render loop.
type App struct {
	screen   tcell.Screen
	renderer *render.Renderer
	editor   input.Editor
	month    string
	chime    *audio.Chime
	log      zerolog.Logger
}

func New(screen tcell.Screen, opts Options) *App {
	return &App{
		screen:   screen,
		renderer: render.New(screen),
		month:    opts.Month,
		chime:    opts.Chime,
		log:      logging.Component("app"),
	}
}

// Run draws the initial frame and processes events until quit.
func (a *App) Run() {
	a.draw()
	for {
		ev := a.screen.PollEvent()
		if ev == nil {
			return
		}
		if !a.handleEvent(ev) {
			return
		}
		a.draw()
	}
}

// handleEvent applies one event to the editor. Returns false on quit.
func (a *App) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.handleKey(ev)
	case *tcell.EventResize:
		a.screen.Sync()
	}
	return true
}

func (a *App) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		a.log.Info().Str("name", a.editor.Get()).Msg("quit")
		return false
	case tcell.KeyRune:
		a.editor.Write(ev.Rune())
		a.playPlantChime()
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if a.editor.Erase() && a.chime != nil {
			a.chime.Erase()
		}
	case tcell.KeyDelete:
		if a.editor.Delete() && a.chime != nil {
			a.chime.Erase()
		}
	case tcell.KeyLeft:
		a.editor.Back()
	case tcell.KeyRight:
		a.editor.Next()
	case tcell.KeyHome, tcell.KeyCtrlA:
		a.editor.Home()
	case tcell.KeyEnd, tcell.KeyCtrlE:
		a.editor.End()
	case tcell.KeyCtrlU:
		a.editor.Clear()
	case tcell.KeyTab:
		a.month = flower.Next(a.month)
		a.log.Debug().Str("month", a.month).Msg("month cycled")
	}
	return true
}

func (a *App) playPlantChime() {
	if a.chime == nil {
		return
	}
	if a.editor.Len() == 1 {
		a.chime.Anchor()
		return
	}
	a.chime.Letter()
}

// draw rebuilds the frame from the current value. The letters are derived
// fresh on every call, so the garden always matches the field exactly.
func (a *App) draw() {
	name := a.editor.Get()
	a.renderer.Draw(render.State{
		Name:    name,
		Cursor:  a.editor.Cursor(),
		Letters: stem.Build(name),
		Flower:  flower.ForMonth(a.month),
		Month:   a.month,
		SoundOn: a.chime != nil && a.chime.Enabled(),
	})
}

// Month returns the currently selected month.
func (a *App) Month() string {
	return a.month
}
