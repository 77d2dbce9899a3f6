package tui

// Mode represents the current editing mode.
type Mode int

const (
	ModeNormal  Mode = iota // Normal navigation mode
	ModeDraw                // Rectangle drawing in progress
	ModeText                // Entering a location name
	ModeCommand             // Command input mode
)

// String returns the mode name for display.
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "NORMAL"
	case ModeDraw:
		return "DRAW"
	case ModeText:
		return "TEXT"
	case ModeCommand:
		return "COMMAND"
	default:
		return "UNKNOWN"
	}
}

// DraftKind is what a two-press rectangle becomes when committed.
type DraftKind int

const (
	DraftWall  DraftKind = iota // Solid wall
	DraftShelf                  // Shelf footprint
	DraftZone                   // Restricted zone
)

// String returns the draft name for the status bar.
func (k DraftKind) String() string {
	switch k {
	case DraftWall:
		return "WALL"
	case DraftShelf:
		return "SHELF"
	case DraftZone:
		return "ZONE"
	default:
		return "UNKNOWN"
	}
}

// key returns the normal-mode key that starts this draft. Pressing it a
// second time commits the rectangle.
func (k DraftKind) key() rune {
	switch k {
	case DraftWall:
		return 'w'
	case DraftShelf:
		return 'S'
	case DraftZone:
		return 'z'
	default:
		return 0
	}
}

// SetMode changes the editor mode.
func (a *App) SetMode(mode Mode) {
	a.mode = mode

	// Clear the draft anchor when leaving draw mode
	if mode != ModeDraw {
		a.draftActive = false
	}

	// Clear text buffers when entering input modes
	if mode == ModeText {
		a.textBuffer = []rune{}
	}
	if mode == ModeCommand {
		a.commandBuffer = []rune{}
	}
}
