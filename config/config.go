package config

import (
	"image/color"
	"time"

	"github.com/yohamta/donburi/ecs"
)

// Default is the only render layer; every archetype spawns into it.
const Default ecs.LayerID = 0

// TickRate is the fixed simulation rate.
const TickRate = 60

// EnemyKind is the closed set of enemy types.
type EnemyKind int

const (
	EnemyNormal EnemyKind = iota
	EnemyElite
	EnemyBoss
)

func (k EnemyKind) String() string {
	switch k {
	case EnemyNormal:
		return "normal"
	case EnemyElite:
		return "elite"
	case EnemyBoss:
		return "boss"
	}
	return "unknown"
}

// BossPattern is the closed set of boss movement and attack patterns.
type BossPattern int

const (
	PatternNormal BossPattern = iota
	PatternCircle
	PatternZigzag
	PatternCount // Must be last - used for random selection
)

func (p BossPattern) String() string {
	switch p {
	case PatternNormal:
		return "normal"
	case PatternCircle:
		return "circle"
	case PatternZigzag:
		return "zigzag"
	}
	return "unknown"
}

// ItemKind is the closed set of collectible types.
type ItemKind int

const (
	ItemHealth ItemKind = iota
	ItemWeapon
	ItemShield
	ItemKindCount // Must be last - used for weight tables
)

func (k ItemKind) String() string {
	switch k {
	case ItemHealth:
		return "health"
	case ItemWeapon:
		return "weapon"
	case ItemShield:
		return "shield"
	}
	return "unknown"
}

// Side separates player-fired from enemy-fired projectiles.
type Side int

const (
	SidePlayer Side = iota
	SideEnemy
)

// PlayerConfig contains the fixed player tuning. Lives, max speed and
// acceleration come from Settings.
type PlayerConfig struct {
	// Dimensions
	Width        float64
	Height       float64
	HitboxWidth  float64
	HitboxHeight float64

	// Spawn, relative to the playfield
	SpawnBottomMargin float64
	SecondSlotOffsetX float64

	// Drag applied to an axis already at its target velocity
	Drag float64

	// Weapon
	ShootCooldown  time.Duration
	MaxWeaponLevel int
	FanInset       float64 // horizontal inset of the outer bullets

	// Buffs
	ShieldDuration      time.Duration
	ShieldWarning       time.Duration
	InvincibleDuration  time.Duration
	ShieldRadiusPadding float64
}

// PulseConfig configures a ping-pong alpha.
type PulseConfig struct {
	Min   float64
	Max   float64
	Speed float64
}

// PulsesConfig holds the overlay pulses used by player buffs.
type PulsesConfig struct {
	Shield        PulseConfig
	ShieldWarning PulseConfig
	Invincible    PulseConfig
}

// BulletConfig contains projectile dimensions and speeds.
type BulletConfig struct {
	Width        float64
	Height       float64
	PlayerSpeed  float64
	EnemyWidth   float64
	EnemyHeight  float64
	EliteSpeed   float64
	BossSpeed    float64
	BossSpeedP2  float64
	BossFastShot float64 // straight volley speed in phase 1
}

// EnemyTypeConfig contains the fixed per-kind values. Speed, score and
// health come from Settings.
type EnemyTypeConfig struct {
	Size          float64
	ShootCooldown time.Duration // zero means the kind never shoots
	DropChance    float64
}

// EnemyConfig holds spawning constants shared by all kinds.
type EnemyConfig struct {
	SpawnY           float64
	SpawnRightMargin float64 // spawn x runs from 0 to width minus this
	Types      map[EnemyKind]EnemyTypeConfig
	DropWeight map[ItemKind]float64
}

// BossConfig contains the boss state machine tuning.
type BossConfig struct {
	SpawnY           float64
	MaxSpeed         float64
	Acceleration     float64
	Drag             float64
	AttackInterval   time.Duration
	AttackIntervalP2 time.Duration
	ShootCooldownP2  time.Duration
	PhaseThreshold   float64 // fraction of max health
	PhaseMultiplier  float64

	// Movement bounds
	MinY float64
	MaxY float64

	// normal pattern
	SweepMinY       float64
	SweepMaxY       float64
	SweepYSpeed     float64 // fraction of max speed
	VerticalDamping float64

	// circle pattern, orbiting the playfield's horizontal centre
	AnchorY     float64
	OrbitRadius float64
	OrbitSquash float64 // vertical radius
	OrbitStep   float64

	// zigzag pattern
	ZigzagWidth  float64
	ZigzagHeight float64
	ZigzagStep   float64

	// Health bar
	BarWidth  float64
	BarHeight float64
	BarY      float64
}

// DirectorConfig paces the encounter.
type DirectorConfig struct {
	StageThreshold int
	BossEvery      int
	EliteInterval  time.Duration
}

// ItemConfig contains collectible tuning.
type ItemConfig struct {
	Size      float64
	FallSpeed float64
}

// EffectsConfig contains transient effect tuning.
type EffectsConfig struct {
	ExplosionFrames int
	BackgroundSpeed float64
}

// SpaceConfig sizes the collision space cells.
type SpaceConfig struct {
	CellSize int
}

// UIConfig contains HUD layout.
type UIConfig struct {
	Margin          float64
	LineHeight      float64
	SecondSlotInset float64
	TextColor       color.RGBA
}

var Player PlayerConfig
var Pulses PulsesConfig
var Bullet BulletConfig
var Enemy EnemyConfig
var Boss BossConfig
var Director DirectorConfig
var Item ItemConfig
var Effects EffectsConfig
var Space SpaceConfig
var UI UIConfig

func init() {
	Player = PlayerConfig{
		Width:               64,
		Height:              64,
		HitboxWidth:         40,
		HitboxHeight:        40,
		SpawnBottomMargin:   100,
		SecondSlotOffsetX:   100,
		Drag:                0.9,
		ShootCooldown:       200 * time.Millisecond,
		MaxWeaponLevel:      3,
		FanInset:            10,
		ShieldDuration:      5000 * time.Millisecond,
		ShieldWarning:       1000 * time.Millisecond,
		InvincibleDuration:  2000 * time.Millisecond,
		ShieldRadiusPadding: 8,
	}

	Pulses = PulsesConfig{
		Shield:        PulseConfig{Min: 100, Max: 255, Speed: 5},
		ShieldWarning: PulseConfig{Min: 50, Max: 255, Speed: 25},
		Invincible:    PulseConfig{Min: 50, Max: 255, Speed: 10},
	}

	Bullet = BulletConfig{
		Width:        5,
		Height:       15,
		PlayerSpeed:  8,
		EnemyWidth:   5,
		EnemyHeight:  15,
		EliteSpeed:   4,
		BossSpeed:    2,
		BossSpeedP2:  3,
		BossFastShot: 4,
	}

	Enemy = EnemyConfig{
		SpawnY:           -50,
		SpawnRightMargin: 100,
		Types: map[EnemyKind]EnemyTypeConfig{
			EnemyNormal: {Size: 64, DropChance: 1.0},
			EnemyElite:  {Size: 80, ShootCooldown: 2000 * time.Millisecond, DropChance: 0.3},
			EnemyBoss:   {Size: 128, ShootCooldown: 1000 * time.Millisecond, DropChance: 1.0},
		},
		DropWeight: map[ItemKind]float64{
			ItemHealth: 0.4,
			ItemWeapon: 0.3,
			ItemShield: 1,
		},
	}

	Boss = BossConfig{
		SpawnY:           50,
		MaxSpeed:         2,
		Acceleration:     0.1,
		Drag:             0.95,
		AttackInterval:   3000 * time.Millisecond,
		AttackIntervalP2: 2000 * time.Millisecond,
		ShootCooldownP2:  800 * time.Millisecond,
		PhaseThreshold:   0.5,
		PhaseMultiplier:  1.5,
		MinY:             50,
		MaxY:             200,
		SweepMinY:        80,
		SweepMaxY:        120,
		SweepYSpeed:      0.3,
		VerticalDamping:  0.3,
		AnchorY:          100,
		OrbitRadius:      100,
		OrbitSquash:      30,
		OrbitStep:        0.01,
		ZigzagWidth:      150,
		ZigzagHeight:     30,
		ZigzagStep:       0.02,
		BarWidth:         200,
		BarHeight:        20,
		BarY:             10,
	}

	Director = DirectorConfig{
		StageThreshold: 100,
		BossEvery:      3,
		EliteInterval:  6000 * time.Millisecond,
	}

	Item = ItemConfig{
		Size:      32,
		FallSpeed: 2,
	}

	Effects = EffectsConfig{
		ExplosionFrames: 15,
		BackgroundSpeed: 1,
	}

	Space = SpaceConfig{
		CellSize: 32,
	}

	UI = UIConfig{
		Margin:          10,
		LineHeight:      40,
		SecondSlotInset: 200,
		TextColor:       White,
	}
}

// Shared RGBA color constants
var (
	White       = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black       = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Red         = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green       = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Blue        = color.RGBA{R: 0, G: 0, B: 255, A: 255}
	Yellow      = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange      = color.RGBA{R: 255, G: 100, B: 0, A: 255}
	Gray        = color.RGBA{R: 100, G: 100, B: 100, A: 255}
	DarkSky     = color.RGBA{R: 10, G: 10, B: 30, A: 255}
	ShieldCyan  = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	EliteOrange = color.RGBA{R: 255, G: 165, B: 0, A: 255}
	PlayerTeal  = color.RGBA{R: 0, G: 200, B: 180, A: 255}
	ExplosionFx = color.RGBA{R: 255, G: 180, B: 40, A: 255}
)
