package systems

import (
	"time"

	"github.com/automoto/skybreaker/components"
	cfg "github.com/automoto/skybreaker/config"
	"github.com/automoto/skybreaker/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayers moves, animates and fires every living player.
func UpdatePlayers(ecs *ecs.ECS) {
	t := tickTime(ecs)
	s := currentSettings(ecs)
	width, height := playfield(ecs)

	for _, e := range sortedEntries(ecs, components.Player) {
		lives := components.Lives.Get(e)
		if !lives.Alive() {
			continue
		}
		lives.MaxLives = s.Player.Lives

		physics := components.Physics.Get(e)
		physics.MaxSpeed = s.Player.MaxSpeed
		physics.Acceleration = s.Player.Acceleration

		input := components.PlayerInput.Get(e)
		physics.TargetX, physics.TargetY = targetVelocity(input, physics.MaxSpeed)
		stepVelocity(physics)

		obj := components.Object.Get(e)
		obj.X = clamp(obj.X+physics.SpeedX, 0, width-obj.W)
		obj.Y = clamp(obj.Y+physics.SpeedY, 0, height-obj.H)
		obj.Update()
		syncHitbox(e)

		updateBuffs(e, t)

		if input.Held(cfg.ActionShoot) {
			playerShoot(ecs, e, t)
		}
	}
}

// targetVelocity builds the desired velocity from held directions. Right
// wins over left and down over up; diagonals are normalized to max.
func targetVelocity(input *components.PlayerInputData, max float64) (float64, float64) {
	var x, y float64
	if input.Held(cfg.ActionMoveLeft) {
		x = -max
	}
	if input.Held(cfg.ActionMoveRight) {
		x = max
	}
	if input.Held(cfg.ActionMoveUp) {
		y = -max
	}
	if input.Held(cfg.ActionMoveDown) {
		y = max
	}
	return clampMagnitude(x, y, max)
}

// syncHitbox re-centres the hitbox on the sprite footprint.
func syncHitbox(e *donburi.Entry) {
	obj := components.Object.Get(e)
	hb := components.Player.Get(e).Hitbox
	if hb == nil {
		return
	}
	hb.X = obj.CenterX() - hb.W/2
	hb.Y = obj.CenterY() - hb.H/2
	hb.Update()
}

func updateBuffs(e *donburi.Entry, t time.Duration) {
	shield := components.Shield.Get(e)
	if shield.Active {
		if shield.Remaining(t) <= cfg.Player.ShieldWarning {
			shield.Warning.Step()
		} else {
			shield.Pulse.Step()
		}
		if !shield.Covers(t) {
			shield.Active = false
			shield.Pulse.Reset()
			shield.Warning.Reset()
		}
	}

	inv := components.Invincible.Get(e)
	if inv.Active {
		inv.Pulse.Step()
		if !inv.Covers(t) {
			inv.Active = false
			inv.Pulse.Reset()
		}
	}
}

func playerShoot(ecs *ecs.ECS, e *donburi.Entry, t time.Duration) {
	player := components.Player.Get(e)
	if t-player.LastShot < cfg.Player.ShootCooldown {
		return
	}
	obj := components.Object.Get(e)
	for _, x := range bulletFan(obj, player.WeaponLevel) {
		factory.CreatePlayerBullet(ecs, e, x, obj.Y)
	}
	player.LastShot = t
	PlaySFX(ecs, cfg.SoundPlayerShoot)
}

// bulletFan returns the x positions bullets leave from for a weapon tier.
func bulletFan(obj *components.ObjectData, level int) []float64 {
	left := obj.X + cfg.Player.FanInset
	right := obj.X + obj.W - cfg.Player.FanInset
	center := obj.CenterX()

	switch {
	case level <= 1:
		return []float64{center}
	case level == 2:
		return []float64{left, right}
	}
	return []float64{left, center, right}
}

func grantInvincibility(inv *components.InvincibleData, t time.Duration) {
	inv.Active = true
	inv.Started = t
	inv.Pulse.Reset()
}

// DamagePlayer applies one hit and reports whether a life was lost.
// Invincibility ignores the hit; a shield absorbs it and grants
// invincibility instead.
func DamagePlayer(ecs *ecs.ECS, e *donburi.Entry) bool {
	t := tickTime(ecs)
	inv := components.Invincible.Get(e)
	if inv.Covers(t) {
		return false
	}

	shield := components.Shield.Get(e)
	if shield.Covers(t) {
		shield.Active = false
		shield.Pulse.Reset()
		shield.Warning.Reset()
		grantInvincibility(inv, t)
		return false
	}

	lives := components.Lives.Get(e)
	if lives.Lives > 0 {
		lives.Lives--
	}
	grantInvincibility(inv, t)
	PlaySFX(ecs, cfg.SoundExplosion)

	if lives.Lives == 0 {
		player := components.Player.Get(e)
		GetEncounter(ecs).Logger.Info().
			Int("slot", player.Slot).
			Int("score", player.Score).
			Msg("player down")
	}
	return true
}

// ApplyPickup applies a collectible's effect to a player.
func ApplyPickup(ecs *ecs.ECS, e *donburi.Entry, kind cfg.ItemKind) {
	switch kind {
	case cfg.ItemHealth:
		lives := components.Lives.Get(e)
		if lives.Lives < lives.MaxLives {
			lives.Lives++
		}
		PlaySFX(ecs, cfg.SoundPickup)
	case cfg.ItemWeapon:
		player := components.Player.Get(e)
		if player.WeaponLevel < cfg.Player.MaxWeaponLevel {
			player.WeaponLevel++
			PlaySFX(ecs, cfg.SoundPlayerShoot)
		}
	case cfg.ItemShield:
		shield := components.Shield.Get(e)
		shield.Active = true
		shield.Started = tickTime(ecs)
		shield.Pulse.Reset()
		shield.Warning.Reset()
		PlaySFX(ecs, cfg.SoundShield)
	}
}

// PlayerAlive reports whether a player entry still has lives.
func PlayerAlive(e *donburi.Entry) bool {
	return e != nil && e.Valid() && components.Lives.Get(e).Alive()
}
