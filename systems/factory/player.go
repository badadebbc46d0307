package factory

import (
	"image/color"

	"github.com/automoto/skybreaker/archetypes"
	"github.com/automoto/skybreaker/components"
	cfg "github.com/automoto/skybreaker/config"
	"github.com/automoto/skybreaker/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var playerSprites = [cfg.MaxPlayers]struct {
	key string
	clr color.RGBA
}{
	{key: "player1", clr: cfg.Green},
	{key: "player2", clr: cfg.PlayerTeal},
}

// CreatePlayer spawns the player for a slot with its sprite centred on
// (cx, cy).
func CreatePlayer(ecs *ecs.ECS, slot int, cx, cy float64, settings cfg.Settings) *donburi.Entry {
	p := archetypes.Player.Spawn(ecs)

	w, h := cfg.Player.Width, cfg.Player.Height
	obj := attachObject(ecs, p, cx-w/2, cy-h/2, w, h, tags.ResolvPlayer)

	hw, hh := cfg.Player.HitboxWidth, cfg.Player.HitboxHeight
	hitbox := resolv.NewObject(obj.X+(w-hw)/2, obj.Y+(h-hh)/2, hw, hh, tags.ResolvPlayerHitbox)
	hitbox.SetShape(resolv.NewRectangle(0, 0, hw, hh))
	hitbox.Data = p
	if obj.Space != nil {
		obj.Space.Add(hitbox)
	}

	components.Player.SetValue(p, components.PlayerData{
		Slot:        slot,
		WeaponLevel: 1,
		LastShot:    -cfg.Player.ShootCooldown,
		Hitbox:      hitbox,
	})

	components.Physics.SetValue(p, components.PhysicsData{
		MaxSpeed:     settings.Player.MaxSpeed,
		Acceleration: settings.Player.Acceleration,
		Drag:         cfg.Player.Drag,
	})

	components.Lives.SetValue(p, components.LivesData{
		Lives:    settings.Player.Lives,
		MaxLives: settings.Player.Lives,
	})

	components.Shield.SetValue(p, components.ShieldData{
		Pulse:   components.NewPulse(cfg.Pulses.Shield),
		Warning: components.NewPulse(cfg.Pulses.ShieldWarning),
	})
	components.Invincible.SetValue(p, components.InvincibleData{
		Pulse: components.NewPulse(cfg.Pulses.Invincible),
	})

	look := playerSprites[slot%cfg.MaxPlayers]
	components.Sprite.SetValue(p, components.SpriteData{
		Key:      look.key,
		Fallback: look.clr,
	})

	return p
}
