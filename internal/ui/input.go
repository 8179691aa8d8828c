package ui

import (
	"github.com/gdamore/tcell/v2"
)

// KeyStep is how far one arrow key press moves the pointer, in field units
const KeyStep = 20

// KeyToNudge converts a key event to a pointer displacement.
// Up is negative; keys that don't move return 0.
func KeyToNudge(key tcell.Key, r rune) float64 {
	switch key {
	case tcell.KeyUp:
		return -KeyStep
	case tcell.KeyDown:
		return KeyStep
	case tcell.KeyRune:
		switch r {
		case 'w', 'W':
			return -KeyStep
		case 's', 'S':
			return KeyStep
		}
	}
	return 0
}

// IsQuitKey returns true if the key should quit the application
func IsQuitKey(key tcell.Key, r rune) bool {
	if key == tcell.KeyEscape || key == tcell.KeyCtrlC {
		return true
	}
	if key == tcell.KeyRune && (r == 'q' || r == 'Q') {
		return true
	}
	return false
}

// IsStartKey returns true if the key should start a session
func IsStartKey(key tcell.Key, r rune) bool {
	return key == tcell.KeyEnter || (key == tcell.KeyRune && r == ' ')
}

// IsRestartKey returns true if the key should restart the session
func IsRestartKey(key tcell.Key, r rune) bool {
	return key == tcell.KeyRune && (r == 'r' || r == 'R')
}
