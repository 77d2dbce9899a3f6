package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// Run opens the terminal screen and drives the editor until quit.
func Run(a *App) error {
	s, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("tui: create screen: %w", err)
	}
	if err := s.Init(); err != nil {
		return fmt.Errorf("tui: init screen: %w", err)
	}
	defer s.Fini()
	a.loop(s)
	return nil
}

// loop is the event loop, separate from Run so tests can drive a
// simulation screen through it.
func (a *App) loop(s tcell.Screen) {
	for {
		a.draw(s)
		ev := s.PollEvent()
		if ev == nil {
			return
		}
		switch ev := ev.(type) {
		case *tcell.EventResize:
			s.Sync()
		case *tcell.EventKey:
			if a.HandleKey(translateKey(ev, a.mode)) {
				return
			}
		}
	}
}

// translateKey flattens a tcell key event to the rune codes the mode
// handlers switch on. Arrows become hjkl outside the typing modes.
func translateKey(ev *tcell.EventKey, mode Mode) rune {
	moving := mode == ModeNormal || mode == ModeDraw
	switch ev.Key() {
	case tcell.KeyEscape:
		return 27
	case tcell.KeyEnter:
		return 13
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return 127
	case tcell.KeyCtrlC:
		return 3
	case tcell.KeyUp:
		if moving {
			return 'k'
		}
	case tcell.KeyDown:
		if moving {
			return 'j'
		}
	case tcell.KeyLeft:
		if moving {
			return 'h'
		}
	case tcell.KeyRight:
		if moving {
			return 'l'
		}
	case tcell.KeyRune:
		return ev.Rune()
	}
	return 0
}
