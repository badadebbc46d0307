package components

import (
	cfg "github.com/automoto/skybreaker/config"
	"github.com/yohamta/donburi"
)

// PlayerInputData stores the held state of every action for one player.
type PlayerInputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
}

// Held reports whether an action is held this tick.
func (p *PlayerInputData) Held(action cfg.ActionID) bool {
	return p.Current[action]
}

var PlayerInput = donburi.NewComponentType[PlayerInputData]()
