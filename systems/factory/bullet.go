package factory

import (
	"github.com/automoto/skybreaker/archetypes"
	"github.com/automoto/skybreaker/components"
	cfg "github.com/automoto/skybreaker/config"
	"github.com/automoto/skybreaker/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayerBullet spawns an upward bullet centred on (cx, cy).
func CreatePlayerBullet(ecs *ecs.ECS, owner *donburi.Entry, cx, cy float64) *donburi.Entry {
	b := archetypes.PlayerBullet.Spawn(ecs)

	w, h := cfg.Bullet.Width, cfg.Bullet.Height
	attachObject(ecs, b, cx-w/2, cy-h/2, w, h, tags.ResolvPlayerBullet)

	components.Bullet.SetValue(b, components.BulletData{
		Owner: owner.Entity(),
		Side:  cfg.SidePlayer,
	})
	components.Velocity.SetValue(b, components.VelocityData{Y: -cfg.Bullet.PlayerSpeed})
	components.Sprite.SetValue(b, components.SpriteData{Key: "bullet", Fallback: cfg.Yellow})
	return b
}

// CreateEnemyBullet spawns an enemy bullet centred on (cx, cy) moving by
// (vx, vy) per tick.
func CreateEnemyBullet(ecs *ecs.ECS, owner *donburi.Entry, cx, cy, vx, vy float64) *donburi.Entry {
	b := archetypes.EnemyBullet.Spawn(ecs)

	w, h := cfg.Bullet.EnemyWidth, cfg.Bullet.EnemyHeight
	attachObject(ecs, b, cx-w/2, cy-h/2, w, h, tags.ResolvEnemyBullet)

	components.Bullet.SetValue(b, components.BulletData{
		Owner: owner.Entity(),
		Side:  cfg.SideEnemy,
	})
	components.Velocity.SetValue(b, components.VelocityData{X: vx, Y: vy})
	components.Sprite.SetValue(b, components.SpriteData{Key: "enemy_bullet", Fallback: cfg.Red})
	return b
}
