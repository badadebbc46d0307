package config

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionMoveUp
	ActionMoveDown
	ActionShoot
	ActionCount // Must be last - used for array sizing
)

// MaxPlayers is the number of local player slots.
const MaxPlayers = 2

var keyNames = map[string]ebiten.Key{
	"LEFT":   ebiten.KeyArrowLeft,
	"RIGHT":  ebiten.KeyArrowRight,
	"UP":     ebiten.KeyArrowUp,
	"DOWN":   ebiten.KeyArrowDown,
	"SPACE":  ebiten.KeySpace,
	"ENTER":  ebiten.KeyEnter,
	"TAB":    ebiten.KeyTab,
	"SHIFT":  ebiten.KeyShift,
	"LSHIFT": ebiten.KeyShiftLeft,
	"RSHIFT": ebiten.KeyShiftRight,
	"CTRL":   ebiten.KeyControl,
	"LCTRL":  ebiten.KeyControlLeft,
	"RCTRL":  ebiten.KeyControlRight,
	"ALT":    ebiten.KeyAlt,

	"A": ebiten.KeyA,
	"B": ebiten.KeyB,
	"C": ebiten.KeyC,
	"D": ebiten.KeyD,
	"E": ebiten.KeyE,
	"F": ebiten.KeyF,
	"G": ebiten.KeyG,
	"H": ebiten.KeyH,
	"I": ebiten.KeyI,
	"J": ebiten.KeyJ,
	"K": ebiten.KeyK,
	"L": ebiten.KeyL,
	"M": ebiten.KeyM,
	"N": ebiten.KeyN,
	"O": ebiten.KeyO,
	"P": ebiten.KeyP,
	"Q": ebiten.KeyQ,
	"R": ebiten.KeyR,
	"S": ebiten.KeyS,
	"T": ebiten.KeyT,
	"U": ebiten.KeyU,
	"V": ebiten.KeyV,
	"W": ebiten.KeyW,
	"X": ebiten.KeyX,
	"Y": ebiten.KeyY,
	"Z": ebiten.KeyZ,

	"0": ebiten.KeyDigit0,
	"1": ebiten.KeyDigit1,
	"2": ebiten.KeyDigit2,
	"3": ebiten.KeyDigit3,
	"4": ebiten.KeyDigit4,
	"5": ebiten.KeyDigit5,
	"6": ebiten.KeyDigit6,
	"7": ebiten.KeyDigit7,
	"8": ebiten.KeyDigit8,
	"9": ebiten.KeyDigit9,
}

// KeyByName resolves a binding name such as "LEFT", "A" or "SPACE".
// Names are case-insensitive.
func KeyByName(name string) (ebiten.Key, bool) {
	k, ok := keyNames[strings.ToUpper(strings.TrimSpace(name))]
	return k, ok
}

// BindingName returns the Settings name for a logical action.
func (a ActionID) BindingName(b KeyBinding) string {
	switch a {
	case ActionMoveLeft:
		return b.Left
	case ActionMoveRight:
		return b.Right
	case ActionMoveUp:
		return b.Up
	case ActionMoveDown:
		return b.Down
	case ActionShoot:
		return b.Shoot
	}
	return ""
}

// MenuKeys are fixed; they are not part of the tunable bindings.
var MenuKeys = struct {
	OnePlayer ebiten.Key
	TwoPlayer ebiten.Key
	Start     ebiten.Key
	Quit      ebiten.Key
	Pause     ebiten.Key
	Restart   ebiten.Key
	Menu      ebiten.Key
	Debug     ebiten.Key
}{
	OnePlayer: ebiten.KeyDigit1,
	TwoPlayer: ebiten.KeyDigit2,
	Start:     ebiten.KeyEnter,
	Quit:      ebiten.KeyEscape,
	Pause:     ebiten.KeyP,
	Restart:   ebiten.KeyR,
	Menu:      ebiten.KeyM,
	Debug:     ebiten.KeyF3,
}
