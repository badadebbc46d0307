package config

import (
	"errors"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrInvalidSettings wraps every settings validation failure.
var ErrInvalidSettings = errors.New("invalid settings")

// KeyBinding names the keys for one player slot.
type KeyBinding struct {
	Left  string `yaml:"left"`
	Right string `yaml:"right"`
	Up    string `yaml:"up"`
	Down  string `yaml:"down"`
	Shoot string `yaml:"shoot"`
}

// KeyBindings holds the bindings of both local slots.
type KeyBindings struct {
	Player1 KeyBinding `yaml:"player1"`
	Player2 KeyBinding `yaml:"player2"`
}

// Slot returns the binding for a zero-based player slot.
func (k KeyBindings) Slot(slot int) KeyBinding {
	if slot == 1 {
		return k.Player2
	}
	return k.Player1
}

// PlayerSettings are the user-tunable player stats.
type PlayerSettings struct {
	Lives        int     `yaml:"lives"`
	MaxSpeed     float64 `yaml:"max_speed"`
	Acceleration float64 `yaml:"acceleration"`
}

// EnemyStats are the user-tunable stats of one enemy kind.
type EnemyStats struct {
	Speed  float64 `yaml:"speed"`
	Score  int     `yaml:"score"`
	Health int     `yaml:"health"`
}

// EnemySettings keeps the key names used by existing settings files.
type EnemySettings struct {
	Normal EnemyStats `yaml:"enemy_normal"`
	Elite  EnemyStats `yaml:"enemy_special"`
	Boss   EnemyStats `yaml:"enemy_boss"`
}

// Kind returns the stats for an enemy kind.
func (e EnemySettings) Kind(kind EnemyKind) EnemyStats {
	switch kind {
	case EnemyElite:
		return e.Elite
	case EnemyBoss:
		return e.Boss
	}
	return e.Normal
}

// DropChances is the per-kind probability of dropping an item.
type DropChances struct {
	Normal float64 `yaml:"normal"`
	Elite  float64 `yaml:"elite"`
	Boss   float64 `yaml:"boss"`
}

// Kind returns the drop chance for an enemy kind.
func (d DropChances) Kind(kind EnemyKind) float64 {
	switch kind {
	case EnemyElite:
		return d.Elite
	case EnemyBoss:
		return d.Boss
	}
	return d.Normal
}

// DropWeights are relative weights; they need not sum to 1.
type DropWeights struct {
	Health float64 `yaml:"health"`
	Weapon float64 `yaml:"weapon"`
	Shield float64 `yaml:"shield"`
}

// Kind returns the weight for an item kind.
func (d DropWeights) Kind(kind ItemKind) float64 {
	switch kind {
	case ItemHealth:
		return d.Health
	case ItemWeapon:
		return d.Weapon
	case ItemShield:
		return d.Shield
	}
	return 0
}

// DropSettings tunes item drops.
type DropSettings struct {
	Chance  DropChances `yaml:"chance"`
	Weights DropWeights `yaml:"weights"`
}

// Settings is the user-tunable configuration snapshot. The simulation only
// ever sees a value copy; reloading produces a new snapshot.
type Settings struct {
	ScreenWidth    int            `yaml:"screen_width"`
	ScreenHeight   int            `yaml:"screen_height"`
	Volume         float64        `yaml:"volume"`
	EnemySpawnRate float64        `yaml:"enemy_spawn_rate"` // seconds between routine spawns
	Player         PlayerSettings `yaml:"player"`
	Enemies        EnemySettings  `yaml:"enemies"`
	Drops          DropSettings   `yaml:"drops"`
	KeyBindings    KeyBindings    `yaml:"key_bindings"`
}

// DefaultSettings returns the built-in snapshot used for missing keys.
func DefaultSettings() Settings {
	return Settings{
		ScreenWidth:    800,
		ScreenHeight:   600,
		Volume:         0.5,
		EnemySpawnRate: 1.0,
		Player: PlayerSettings{
			Lives:        3,
			MaxSpeed:     5,
			Acceleration: 0.2,
		},
		Enemies: EnemySettings{
			Normal: EnemyStats{Speed: 2, Score: 100, Health: 1},
			Elite:  EnemyStats{Speed: 3, Score: 200, Health: 2},
			Boss:   EnemyStats{Speed: 1, Score: 1000, Health: 10},
		},
		Drops: DropSettings{
			Chance: DropChances{
				Normal: Enemy.Types[EnemyNormal].DropChance,
				Elite:  Enemy.Types[EnemyElite].DropChance,
				Boss:   Enemy.Types[EnemyBoss].DropChance,
			},
			Weights: DropWeights{
				Health: Enemy.DropWeight[ItemHealth],
				Weapon: Enemy.DropWeight[ItemWeapon],
				Shield: Enemy.DropWeight[ItemShield],
			},
		},
		KeyBindings: KeyBindings{
			Player1: KeyBinding{Left: "LEFT", Right: "RIGHT", Up: "UP", Down: "DOWN", Shoot: "SPACE"},
			Player2: KeyBinding{Left: "A", Right: "D", Up: "W", Down: "S", Shoot: "F"},
		},
	}
}

// ParseSettings decodes YAML on top of the defaults so absent keys keep
// their default value, then validates the result.
func ParseSettings(data []byte) (Settings, error) {
	s := DefaultSettings()
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("failed to parse settings: %w", err)
	}
	s.fillBindings()
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// MarshalSettings encodes a snapshot as YAML.
func MarshalSettings(s Settings) ([]byte, error) {
	data, err := yaml.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("failed to encode settings: %w", err)
	}
	return data, nil
}

// fillBindings restores defaults for binding names left empty, which yaml
// produces for keys present with no value.
func (s *Settings) fillBindings() {
	def := DefaultSettings().KeyBindings
	fill := func(b *KeyBinding, d KeyBinding) {
		if b.Left == "" {
			b.Left = d.Left
		}
		if b.Right == "" {
			b.Right = d.Right
		}
		if b.Up == "" {
			b.Up = d.Up
		}
		if b.Down == "" {
			b.Down = d.Down
		}
		if b.Shoot == "" {
			b.Shoot = d.Shoot
		}
	}
	fill(&s.KeyBindings.Player1, def.Player1)
	fill(&s.KeyBindings.Player2, def.Player2)
}

// Validate reports values that would produce incorrect gameplay. Every
// error wraps ErrInvalidSettings.
func (s Settings) Validate() error {
	invalid := func(format string, args ...any) error {
		return fmt.Errorf("%w: %s", ErrInvalidSettings, fmt.Sprintf(format, args...))
	}

	if s.ScreenWidth <= 0 || s.ScreenHeight <= 0 {
		return invalid("screen size %dx%d must be positive", s.ScreenWidth, s.ScreenHeight)
	}
	if s.Volume < 0 || s.Volume > 1 {
		return invalid("volume %.2f outside [0,1]", s.Volume)
	}
	if s.EnemySpawnRate <= 0 {
		return invalid("enemy_spawn_rate %.2f must be positive", s.EnemySpawnRate)
	}
	if s.Player.Lives <= 0 {
		return invalid("player lives %d must be positive", s.Player.Lives)
	}
	if s.Player.MaxSpeed <= 0 || s.Player.Acceleration <= 0 {
		return invalid("player max_speed and acceleration must be positive")
	}

	for _, kind := range []EnemyKind{EnemyNormal, EnemyElite, EnemyBoss} {
		stats := s.Enemies.Kind(kind)
		if stats.Health <= 0 {
			return invalid("%s health %d must be positive", kind, stats.Health)
		}
		if stats.Score < 0 || stats.Speed < 0 {
			return invalid("%s speed and score must not be negative", kind)
		}
		chance := s.Drops.Chance.Kind(kind)
		if chance < 0 || chance > 1 {
			return invalid("%s drop chance %.2f outside [0,1]", kind, chance)
		}
	}

	for kind := ItemKind(0); kind < ItemKindCount; kind++ {
		if s.Drops.Weights.Kind(kind) < 0 {
			return invalid("%s drop weight must not be negative", kind)
		}
	}
	return nil
}

// SpawnInterval is the time between routine normal spawns.
func (s Settings) SpawnInterval() time.Duration {
	return time.Duration(s.EnemySpawnRate * float64(time.Second))
}
