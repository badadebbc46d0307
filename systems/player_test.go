package systems

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/automoto/skybreaker/components"
	cfg "github.com/automoto/skybreaker/config"
	"github.com/automoto/skybreaker/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayerEasesTowardTarget(t *testing.T) {
	w := newTestWorld(t)
	p := w.player(0)
	w.hold(p, cfg.ActionMoveRight)

	obj := components.Object.Get(p)
	startX := obj.X
	w.run(UpdatePlayers)

	physics := components.Physics.Get(p)
	assert.InDelta(t, 0.2, physics.SpeedX, 1e-9, "velocity is smoothed, never snapped")
	assert.InDelta(t, startX+0.2, obj.X, 1e-9)

	for i := 0; i < 50; i++ {
		w.run(UpdatePlayers)
		assert.LessOrEqual(t, physics.SpeedX, 5.0+1e-9)
	}
	assert.GreaterOrEqual(t, physics.SpeedX, 4.5-1e-9, "held input hovers just under max speed")

	w.hold(p)
	for i := 0; i < 30; i++ {
		w.run(UpdatePlayers)
	}
	assert.Equal(t, 0.0, physics.SpeedX)
}

func TestPlayerDiagonalSpeedIsCapped(t *testing.T) {
	w := newTestWorld(t)
	p := w.player(0)
	w.hold(p, cfg.ActionMoveLeft, cfg.ActionMoveUp)

	physics := components.Physics.Get(p)
	for i := 0; i < 200; i++ {
		w.run(UpdatePlayers)
		assert.LessOrEqual(t, math.Hypot(physics.SpeedX, physics.SpeedY), physics.MaxSpeed+1e-9)
	}
}

func TestStepVelocityNeverExceedsMaxSpeed(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	span := func(r float64) float64 { return (rng.Float64()*2 - 1) * r }

	for i := 0; i < 2000; i++ {
		p := &components.PhysicsData{
			SpeedX:       span(20),
			SpeedY:       span(20),
			TargetX:      span(20),
			TargetY:      span(20),
			Acceleration: rng.Float64() * 3,
			Drag:         rng.Float64(),
			MaxSpeed:     0.1 + rng.Float64()*10,
		}
		for step := 0; step < 5; step++ {
			stepVelocity(p)
			require.LessOrEqual(t, math.Hypot(p.SpeedX, p.SpeedY), p.MaxSpeed+1e-9, "case %d step %d", i, step)
		}
	}
}

func TestPlayerStaysInPlayfield(t *testing.T) {
	w := newTestWorld(t)
	p := w.player(0)
	obj := components.Object.Get(p)
	hb := components.Player.Get(p).Hitbox

	for _, dir := range [][]cfg.ActionID{
		{cfg.ActionMoveRight, cfg.ActionMoveDown},
		{cfg.ActionMoveLeft, cfg.ActionMoveUp},
	} {
		w.hold(p, dir...)
		for i := 0; i < 600; i++ {
			w.run(UpdatePlayers)
			require.GreaterOrEqual(t, obj.X, 0.0)
			require.LessOrEqual(t, obj.X, 800-obj.W)
			require.GreaterOrEqual(t, obj.Y, 0.0)
			require.LessOrEqual(t, obj.Y, 600-obj.H)
		}
		assert.InDelta(t, obj.CenterX(), hb.X+hb.W/2, 1e-9, "hitbox follows the sprite")
		assert.InDelta(t, obj.CenterY(), hb.Y+hb.H/2, 1e-9)
	}
}

func TestPlayerShootCooldownAndFan(t *testing.T) {
	w := newTestWorld(t)
	p := w.player(0)
	w.hold(p, cfg.ActionShoot)
	obj := components.Object.Get(p)

	w.run(UpdatePlayers, UpdateAudio)
	assert.Equal(t, 1, w.count(tags.PlayerBullet))
	assert.Equal(t, 1, w.audio.count("player_shoot"))

	w.at(100 * time.Millisecond)
	w.run(UpdatePlayers)
	assert.Equal(t, 1, w.count(tags.PlayerBullet), "cooldown blocks the second shot")

	w.at(200 * time.Millisecond)
	w.run(UpdatePlayers)
	assert.Equal(t, 2, w.count(tags.PlayerBullet))

	assert.Equal(t, []float64{obj.CenterX()}, bulletFan(obj, 1))
	assert.Equal(t, []float64{obj.X + 10, obj.X + obj.W - 10}, bulletFan(obj, 2))
	assert.Equal(t, []float64{obj.X + 10, obj.CenterX(), obj.X + obj.W - 10}, bulletFan(obj, 3))

	components.Player.Get(p).WeaponLevel = 3
	w.at(400 * time.Millisecond)
	w.run(UpdatePlayers)
	assert.Equal(t, 5, w.count(tags.PlayerBullet))
}

func TestPlayerBulletLeavesFromTheNose(t *testing.T) {
	w := newTestWorld(t)
	p := w.player(0)
	w.hold(p, cfg.ActionShoot)
	w.run(UpdatePlayers)

	obj := components.Object.Get(p)
	b, ok := tags.PlayerBullet.First(w.ecs.World)
	require.True(t, ok)
	bobj := components.Object.Get(b)
	assert.InDelta(t, obj.CenterX(), bobj.CenterX(), 1e-9)
	assert.InDelta(t, obj.Y, bobj.CenterY(), 1e-9)
	assert.Equal(t, p.Entity(), components.Bullet.Get(b).Owner)
	assert.Equal(t, -8.0, components.Velocity.Get(b).Y)
}

func TestDamageOrder(t *testing.T) {
	w := newTestWorld(t)
	p := w.player(0)
	lives := components.Lives.Get(p)

	assert.True(t, DamagePlayer(w.ecs, p))
	assert.Equal(t, 2, lives.Lives)
	assert.True(t, components.Invincible.Get(p).Active)

	w.at(time.Second)
	assert.False(t, DamagePlayer(w.ecs, p), "invincibility ignores the hit")
	assert.Equal(t, 2, lives.Lives)

	w.at(2001 * time.Millisecond)
	assert.True(t, DamagePlayer(w.ecs, p))
	assert.Equal(t, 1, lives.Lives)

	w.at(10 * time.Second)
	ApplyPickup(w.ecs, p, cfg.ItemShield)
	w.at(10500 * time.Millisecond)
	assert.False(t, DamagePlayer(w.ecs, p), "shield absorbs the hit")
	assert.Equal(t, 1, lives.Lives)
	assert.False(t, components.Shield.Get(p).Active)
	assert.True(t, components.Invincible.Get(p).Covers(11*time.Second))

	w.at(11 * time.Second)
	assert.False(t, DamagePlayer(w.ecs, p))

	w.at(12600 * time.Millisecond)
	assert.True(t, DamagePlayer(w.ecs, p))
	assert.Equal(t, 0, lives.Lives)
	assert.False(t, PlayerAlive(p))
}

func TestInvincibilityWindowIsExact(t *testing.T) {
	w := newTestWorld(t)
	p := w.player(0)
	require.True(t, DamagePlayer(w.ecs, p))

	w.at(2000 * time.Millisecond)
	assert.False(t, DamagePlayer(w.ecs, p))
	w.at(2001 * time.Millisecond)
	assert.True(t, DamagePlayer(w.ecs, p))
}

func TestWeaponPickupIsIdempotentAtMax(t *testing.T) {
	w := newTestWorld(t)
	p := w.player(0)

	for i := 0; i < 5; i++ {
		ApplyPickup(w.ecs, p, cfg.ItemWeapon)
	}
	w.run(UpdateAudio)

	assert.Equal(t, 3, components.Player.Get(p).WeaponLevel)
	assert.Equal(t, 2, w.audio.count("player_shoot"), "only real upgrades play a cue")
}

func TestHealthPickupCapsAtMaxLives(t *testing.T) {
	w := newTestWorld(t)
	p := w.player(0)
	lives := components.Lives.Get(p)

	ApplyPickup(w.ecs, p, cfg.ItemHealth)
	assert.Equal(t, 3, lives.Lives)

	DamagePlayer(w.ecs, p)
	ApplyPickup(w.ecs, p, cfg.ItemHealth)
	assert.Equal(t, 3, lives.Lives)

	w.run(UpdateAudio)
	assert.Equal(t, 2, w.audio.count("pickup"))
}

func TestShieldExpiry(t *testing.T) {
	w := newTestWorld(t)
	p := w.player(0)
	ApplyPickup(w.ecs, p, cfg.ItemShield)
	shield := components.Shield.Get(p)

	w.at(4500 * time.Millisecond)
	w.run(UpdatePlayers)
	assert.True(t, shield.Active)
	assert.Equal(t, 230.0, shield.Warning.Alpha, "warning flicker near expiry")
	assert.Equal(t, 230.0, shield.Alpha(4500*time.Millisecond))

	w.at(5000 * time.Millisecond)
	w.run(UpdatePlayers)
	assert.True(t, shield.Active)

	w.at(5001 * time.Millisecond)
	w.run(UpdatePlayers)
	assert.False(t, shield.Active)
}

func TestDeadPlayersAreNotUpdated(t *testing.T) {
	w := newTestWorld(t)
	p := w.player(0)
	components.Lives.Get(p).Lives = 0
	w.hold(p, cfg.ActionMoveRight, cfg.ActionShoot)

	x := components.Object.Get(p).X
	w.run(UpdatePlayers)
	assert.Equal(t, x, components.Object.Get(p).X)
	assert.Equal(t, 0, w.count(tags.PlayerBullet))
}

func TestPlayersFollowReloadedSettings(t *testing.T) {
	w := newTestWorld(t)
	p := w.player(0)
	w.enc.Settings.Player.MaxSpeed = 2
	w.hold(p, cfg.ActionMoveRight)

	for i := 0; i < 100; i++ {
		w.run(UpdatePlayers)
		require.LessOrEqual(t, components.Physics.Get(p).SpeedX, 2.0+1e-9)
	}
	assert.GreaterOrEqual(t, components.Physics.Get(p).SpeedX, 1.8-1e-9)
}

func TestDragAppliesOnTarget(t *testing.T) {
	p := components.PhysicsData{SpeedX: 5, TargetX: 5, MaxSpeed: 5, Acceleration: 0.2, Drag: 0.9}
	stepVelocity(&p)
	assert.InDelta(t, 4.5, p.SpeedX, 1e-9)
	assert.Equal(t, 0.0, p.SpeedY)

	stepVelocity(&p)
	assert.InDelta(t, 4.7, p.SpeedX, 1e-9, "below target it accelerates again")

	assert.Equal(t, 0.0, easeAxis(0, 0, 0.2, 0.9))
	assert.InDelta(t, 1.9, easeAxis(2, 2, 0.1, 0.95), 1e-9)
}

func TestInputSystemCopiesHeldActions(t *testing.T) {
	w := newTestWorld(t)
	p1 := w.player(0)
	p2 := w.player(1)

	src := &ScriptedInput{}
	src.Hold(1, cfg.ActionShoot, cfg.ActionMoveLeft)
	w.run(NewInputSystem(src))

	assert.False(t, components.PlayerInput.Get(p1).Held(cfg.ActionShoot))
	assert.True(t, components.PlayerInput.Get(p2).Held(cfg.ActionShoot))
	assert.True(t, components.PlayerInput.Get(p2).Held(cfg.ActionMoveLeft))

	src.ReleaseAll()
	w.run(NewInputSystem(src))
	assert.False(t, components.PlayerInput.Get(p2).Held(cfg.ActionShoot))
	assert.True(t, components.PlayerInput.Get(p2).Previous[cfg.ActionShoot])
}
