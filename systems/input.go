package systems

import (
	"github.com/automoto/skybreaker/components"
	cfg "github.com/automoto/skybreaker/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// InputSource answers whether a logical action is held for a player slot.
type InputSource interface {
	IsHeld(slot int, action cfg.ActionID) bool
}

// NewInputSystem returns the system copying held actions from src into each
// player's PlayerInput before the players update.
func NewInputSystem(src InputSource) func(ecs *ecs.ECS) {
	return func(ecs *ecs.ECS) {
		components.PlayerInput.Each(ecs.World, func(e *donburi.Entry) {
			input := components.PlayerInput.Get(e)
			slot := components.Player.Get(e).Slot
			input.Previous = input.Current
			for action := cfg.ActionID(1); action < cfg.ActionCount; action++ {
				input.Current[action] = src != nil && src.IsHeld(slot, action)
			}
		})
	}
}

// KeyboardInput resolves key-binding names from Settings to ebiten keys.
type KeyboardInput struct {
	keys   [cfg.MaxPlayers][cfg.ActionCount]ebiten.Key
	bound  [cfg.MaxPlayers][cfg.ActionCount]bool
	logger zerolog.Logger
	warned map[string]bool
}

func NewKeyboardInput(bindings cfg.KeyBindings, logger zerolog.Logger) *KeyboardInput {
	k := &KeyboardInput{
		logger: logger,
		warned: map[string]bool{},
	}
	k.Rebind(bindings)
	return k
}

// Rebind resolves a new set of bindings. Unknown names fall back to the
// default key for that slot and action.
func (k *KeyboardInput) Rebind(bindings cfg.KeyBindings) {
	defaults := cfg.DefaultSettings().KeyBindings
	for slot := 0; slot < cfg.MaxPlayers; slot++ {
		for action := cfg.ActionID(1); action < cfg.ActionCount; action++ {
			name := action.BindingName(bindings.Slot(slot))
			key, ok := cfg.KeyByName(name)
			if !ok {
				if !k.warned[name] {
					k.warned[name] = true
					k.logger.Warn().Str("key", name).Int("slot", slot).Msg("unknown key binding, using default")
				}
				key, ok = cfg.KeyByName(action.BindingName(defaults.Slot(slot)))
			}
			k.keys[slot][action] = key
			k.bound[slot][action] = ok
		}
	}
}

func (k *KeyboardInput) IsHeld(slot int, action cfg.ActionID) bool {
	if slot < 0 || slot >= cfg.MaxPlayers || action <= cfg.ActionNone || action >= cfg.ActionCount {
		return false
	}
	return k.bound[slot][action] && ebiten.IsKeyPressed(k.keys[slot][action])
}

// ScriptedInput is an InputSource driven by code, used by tests and demos.
type ScriptedInput struct {
	held [cfg.MaxPlayers][cfg.ActionCount]bool
}

func (s *ScriptedInput) Hold(slot int, actions ...cfg.ActionID) {
	for _, a := range actions {
		s.held[slot][a] = true
	}
}

func (s *ScriptedInput) Release(slot int, actions ...cfg.ActionID) {
	for _, a := range actions {
		s.held[slot][a] = false
	}
}

func (s *ScriptedInput) ReleaseAll() {
	s.held = [cfg.MaxPlayers][cfg.ActionCount]bool{}
}

func (s *ScriptedInput) IsHeld(slot int, action cfg.ActionID) bool {
	if slot < 0 || slot >= cfg.MaxPlayers || action < 0 || action >= cfg.ActionCount {
		return false
	}
	return s.held[slot][action]
}
