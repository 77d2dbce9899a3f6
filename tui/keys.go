package tui

import (
	"strings"
	"unicode"
)

// HandleKey processes one key press and reports whether the app should
// quit. Arrow keys arrive already translated to hjkl by the event loop.
func (a *App) HandleKey(key rune) bool {
	switch a.mode {
	case ModeNormal:
		return a.handleNormalKey(key)
	case ModeDraw:
		return a.handleDrawKey(key)
	case ModeText:
		return a.handleTextKey(key)
	case ModeCommand:
		return a.handleCommandKey(key)
	}
	return false
}

// handleNormalKey processes keys in normal mode.
func (a *App) handleNormalKey(key rune) bool {
	a.statusMsg = ""
	switch key {
	case 'q', 3: // q or Ctrl+C to quit
		if a.dirty {
			a.statusMsg = "unsaved changes (:q! to discard, :wq to save)"
			return false
		}
		return true

	case 'h':
		a.moveCursor(-1, 0)
	case 'j':
		a.moveCursor(0, 1)
	case 'k':
		a.moveCursor(0, -1)
	case 'l':
		a.moveCursor(1, 0)

	case 's': // Place route start
		a.placeStart()
	case 'e': // Place route end
		a.placeEnd()
	case 'c': // Clear markers
		a.clearMarkers()

	case 'w': // Draw wall
		a.startDraft(DraftWall)
	case 'S': // Draw shelf
		a.startDraft(DraftShelf)
	case 'z': // Draw restricted zone
		a.startDraft(DraftZone)

	case 'x': // Delete obstacle under cursor
		a.deleteAtCursor()

	case 'L': // Place named location
		a.SetMode(ModeText)

	case 'u': // Undo last edit
		a.undoEdit()

	case 'g': // Toggle walkable-cell overlay
		a.showGrid = !a.showGrid

	case '?': // Help
		a.showHelp = !a.showHelp

	case ':': // Command mode
		a.SetMode(ModeCommand)
	}
	return false
}

// handleDrawKey processes keys while a rectangle draft is active. The
// cursor stretches the rectangle; the draft key or Enter commits it.
func (a *App) handleDrawKey(key rune) bool {
	switch key {
	case 27: // ESC - cancel draft
		a.SetMode(ModeNormal)
		a.statusMsg = "draft cancelled"

	case 'h':
		a.moveCursor(-1, 0)
	case 'j':
		a.moveCursor(0, 1)
	case 'k':
		a.moveCursor(0, -1)
	case 'l':
		a.moveCursor(1, 0)

	case 13, 10: // Enter - commit rectangle
		a.commitDraft()

	default:
		if key == a.draftKind.key() {
			a.commitDraft()
		}
	}
	return false
}

// handleTextKey processes keys while naming a location.
func (a *App) handleTextKey(key rune) bool {
	switch key {
	case 27: // ESC - cancel
		a.SetMode(ModeNormal)
		a.statusMsg = ""

	case 127, 8: // Backspace
		if len(a.textBuffer) > 0 {
			a.textBuffer = a.textBuffer[:len(a.textBuffer)-1]
		}

	case 13, 10: // Enter - commit location
		a.commitLocation()
		a.SetMode(ModeNormal)

	default:
		if unicode.IsPrint(key) {
			a.textBuffer = append(a.textBuffer, key)
		}
	}
	return false
}

// handleCommandKey processes keys in command mode.
func (a *App) handleCommandKey(key rune) bool {
	switch key {
	case 27: // ESC - cancel command
		a.SetMode(ModeNormal)

	case 127, 8: // Backspace
		if len(a.commandBuffer) > 0 {
			a.commandBuffer = a.commandBuffer[:len(a.commandBuffer)-1]
		}

	case 13, 10: // Enter - execute command
		cmd := string(a.commandBuffer)
		a.SetMode(ModeNormal)
		a.executeCommand(cmd)
		return a.quitting

	default:
		if unicode.IsPrint(key) {
			a.commandBuffer = append(a.commandBuffer, key)
		}
	}
	return false
}

// executeCommand runs a command-line command.
func (a *App) executeCommand(cmd string) {
	parts := strings.Fields(cmd)
	if len(parts) == 0 {
		return
	}

	arg := ""
	if len(parts) > 1 {
		arg = parts[1]
	}

	switch parts[0] {
	case "w", "write", "save":
		a.save(arg)

	case "q", "quit":
		if a.dirty {
			a.statusMsg = "unsaved changes (:q! to discard)"
			return
		}
		a.quitting = true

	case "q!":
		a.quitting = true

	case "wq":
		a.save(arg)
		if !a.dirty {
			a.quitting = true
		}

	default:
		a.statusMsg = "unknown command: " + parts[0]
	}
}
