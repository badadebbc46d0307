package systems

import (
	"math"
	"time"

	"github.com/automoto/skybreaker/components"
	cfg "github.com/automoto/skybreaker/config"
	"github.com/automoto/skybreaker/systems/factory"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
	"github.com/yohamta/donburi/ecs"
)

// bossVolley describes one shot pattern: either straight bullets at
// horizontal offsets, or angled bullets at a fixed speed.
type bossVolley struct {
	offsets []float64
	angles  []float64 // degrees from straight down
	speed   float64
}

var bossVolleys = map[int]map[cfg.BossPattern]bossVolley{
	1: {
		cfg.PatternNormal: {offsets: []float64{-20, 0, 20}, speed: cfg.Bullet.BossFastShot},
		cfg.PatternCircle: {angles: []float64{0, 90, 180, 270}, speed: cfg.Bullet.BossSpeed},
		cfg.PatternZigzag: {angles: []float64{-30, 30}, speed: cfg.Bullet.BossSpeed},
	},
	2: {
		cfg.PatternNormal: {angles: []float64{-45, -22.5, 0, 22.5, 45}, speed: cfg.Bullet.BossSpeedP2},
		cfg.PatternCircle: {angles: []float64{0, 45, 90, 135, 180, 225, 270, 315}, speed: cfg.Bullet.BossSpeedP2},
		cfg.PatternZigzag: {angles: []float64{-45, 0, 45}, speed: cfg.Bullet.BossSpeedP2},
	},
}

func updateBoss(ecs *ecs.ECS, e *donburi.Entry, t time.Duration) {
	boss := components.Boss.Get(e)
	physics := components.Physics.Get(e)
	obj := components.Object.Get(e)
	width, _ := playfield(ecs)

	if t-boss.PatternStarted >= boss.AttackInterval {
		switchPattern(ecs, e, cfg.BossPattern(random(ecs).Intn(int(cfg.PatternCount))), t)
	}

	steerBoss(boss, physics, obj, width)
	stepVelocity(physics)

	obj.X = clamp(obj.X+physics.SpeedX, 0, width-obj.W)
	obj.Y = clamp(obj.Y+physics.SpeedY, cfg.Boss.MinY, cfg.Boss.MaxY)
	obj.Update()

	checkBossPhase(ecs, e)

	enemy := components.Enemy.Get(e)
	if shooterReady(enemy, t) {
		bossShoot(ecs, e, boss)
		enemy.LastShot = t
		PlaySFX(ecs, cfg.SoundEnemyShoot)
	}
}

// switchPattern enters a pattern and re-seeds its state from the boss's
// current position.
func switchPattern(ecs *ecs.ECS, e *donburi.Entry, pattern cfg.BossPattern, t time.Duration) {
	boss := components.Boss.Get(e)
	physics := components.Physics.Get(e)
	obj := components.Object.Get(e)
	width, _ := playfield(ecs)

	boss.Pattern = pattern
	boss.PatternStarted = t
	physics.TargetX, physics.TargetY = 0, 0

	switch pattern {
	case cfg.PatternNormal:
		boss.Sweep.Direction = 1
		if obj.CenterX() >= width/2 {
			boss.Sweep.Direction = -1
		}
		physics.TargetX = boss.Sweep.Direction * physics.MaxSpeed
	case cfg.PatternCircle:
		boss.Orbit.Angle = math.Atan2(obj.CenterY()-cfg.Boss.AnchorY, obj.CenterX()-width/2)
	case cfg.PatternZigzag:
		boss.Zigzag.Angle = 0
	}
}

// steerBoss sets the target velocity for the active pattern.
func steerBoss(boss *components.BossData, physics *components.PhysicsData, obj *components.ObjectData, width float64) {
	switch boss.Pattern {
	case cfg.PatternNormal:
		if obj.X+obj.W >= width {
			boss.Sweep.Direction = -1
			physics.TargetX = -physics.MaxSpeed
		} else if obj.X <= 0 {
			boss.Sweep.Direction = 1
			physics.TargetX = physics.MaxSpeed
		}
		if obj.Y > cfg.Boss.SweepMaxY {
			physics.TargetY = -physics.MaxSpeed * cfg.Boss.SweepYSpeed
		} else if obj.Y < cfg.Boss.SweepMinY {
			physics.TargetY = physics.MaxSpeed * cfg.Boss.SweepYSpeed
		}
	case cfg.PatternCircle:
		boss.Orbit.Angle += cfg.Boss.OrbitStep
		target := dmath.NewVec2(
			width/2+math.Cos(boss.Orbit.Angle)*cfg.Boss.OrbitRadius,
			cfg.Boss.AnchorY+math.Sin(boss.Orbit.Angle)*cfg.Boss.OrbitSquash,
		)
		seek(physics, obj, target)
	case cfg.PatternZigzag:
		boss.Zigzag.Angle += boss.Zigzag.Step
		target := dmath.NewVec2(
			width/2+math.Sin(boss.Zigzag.Angle)*cfg.Boss.ZigzagWidth,
			cfg.Boss.AnchorY+math.Sin(boss.Zigzag.Angle*2)*cfg.Boss.ZigzagHeight,
		)
		seek(physics, obj, target)
	}
}

// seek points the target velocity at a point at max speed, with the
// vertical component damped.
func seek(physics *components.PhysicsData, obj *components.ObjectData, target dmath.Vec2) {
	delta := target.Sub(dmath.NewVec2(obj.CenterX(), obj.CenterY()))
	if delta.Magnitude() == 0 {
		return
	}
	dir := delta.Normalized().MulScalar(physics.MaxSpeed)
	physics.TargetX = dir.X
	physics.TargetY = dir.Y * cfg.Boss.VerticalDamping
}

// checkBossPhase enters phase 2 once health drops below the threshold.
// The transition is one-way and its multipliers apply exactly once.
func checkBossPhase(ecs *ecs.ECS, e *donburi.Entry) {
	boss := components.Boss.Get(e)
	if boss.Phase != 1 {
		return
	}
	health := components.Health.Get(e)
	if float64(health.Current) >= float64(health.Max)*cfg.Boss.PhaseThreshold {
		return
	}

	physics := components.Physics.Get(e)
	m := cfg.Boss.PhaseMultiplier
	boss.Phase = 2
	physics.MaxSpeed *= m
	physics.Acceleration *= m
	boss.Zigzag.Step *= m
	boss.AttackInterval = cfg.Boss.AttackIntervalP2
	components.Enemy.Get(e).ShootCooldown = cfg.Boss.ShootCooldownP2

	GetEncounter(ecs).Logger.Info().
		Int("health", health.Current).
		Str("pattern", boss.Pattern.String()).
		Msg("boss entered phase 2")
}

func bossShoot(ecs *ecs.ECS, e *donburi.Entry, boss *components.BossData) {
	obj := components.Object.Get(e)
	x, y := obj.CenterX(), obj.Y+obj.H
	volley := bossVolleys[boss.Phase][boss.Pattern]

	for _, off := range volley.offsets {
		factory.CreateEnemyBullet(ecs, e, x+off, y, 0, volley.speed)
	}
	for _, deg := range volley.angles {
		rad := deg * math.Pi / 180
		factory.CreateEnemyBullet(ecs, e, x, y, math.Sin(rad)*volley.speed, math.Cos(rad)*volley.speed)
	}
}

// BossVolleySize returns how many bullets one boss shot fires.
func BossVolleySize(phase int, pattern cfg.BossPattern) int {
	v := bossVolleys[phase][pattern]
	return len(v.offsets) + len(v.angles)
}
