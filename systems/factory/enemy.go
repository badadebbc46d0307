package factory

import (
	"image/color"
	"time"

	"github.com/automoto/skybreaker/archetypes"
	"github.com/automoto/skybreaker/components"
	cfg "github.com/automoto/skybreaker/config"
	"github.com/automoto/skybreaker/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var enemySprites = map[cfg.EnemyKind]struct {
	key string
	clr color.RGBA
}{
	cfg.EnemyNormal: {key: "enemy_normal", clr: cfg.Yellow},
	cfg.EnemyElite:  {key: "enemy_special", clr: cfg.EliteOrange},
	cfg.EnemyBoss:   {key: "enemy_boss", clr: cfg.Red},
}

// CreateEnemy spawns a normal or elite enemy with its top-left at (x, y).
// Shooters are ready to fire immediately.
func CreateEnemy(ecs *ecs.ECS, kind cfg.EnemyKind, x, y float64, stats cfg.EnemyStats, now time.Duration) *donburi.Entry {
	e := archetypes.Enemy.Spawn(ecs)
	setupEnemy(ecs, e, kind, x, y, stats, now)
	return e
}

// CreateBoss spawns the boss in phase 1 running the normal pattern.
func CreateBoss(ecs *ecs.ECS, x, y float64, stats cfg.EnemyStats, now time.Duration, playfieldWidth float64) *donburi.Entry {
	b := archetypes.Boss.Spawn(ecs)
	obj := setupEnemy(ecs, b, cfg.EnemyBoss, x, y, stats, now)

	components.Physics.SetValue(b, components.PhysicsData{
		MaxSpeed:     cfg.Boss.MaxSpeed,
		Acceleration: cfg.Boss.Acceleration,
		Drag:         cfg.Boss.Drag,
	})

	direction := 1.0
	if obj.X+obj.W/2 >= playfieldWidth/2 {
		direction = -1
	}
	components.Boss.SetValue(b, components.BossData{
		Phase:          1,
		Pattern:        cfg.PatternNormal,
		PatternStarted: now,
		AttackInterval: cfg.Boss.AttackInterval,
		Sweep:          components.SweepState{Direction: direction},
		Zigzag:         components.ZigzagState{Step: cfg.Boss.ZigzagStep},
	})
	components.Physics.Get(b).TargetX = direction * cfg.Boss.MaxSpeed

	return b
}

func setupEnemy(ecs *ecs.ECS, e *donburi.Entry, kind cfg.EnemyKind, x, y float64, stats cfg.EnemyStats, now time.Duration) *components.ObjectData {
	typ := cfg.Enemy.Types[kind]
	attachObject(ecs, e, x, y, typ.Size, typ.Size, tags.ResolvEnemy)

	components.Enemy.SetValue(e, components.EnemyData{
		Kind:          kind,
		Score:         stats.Score,
		Speed:         stats.Speed,
		ShootCooldown: typ.ShootCooldown,
		LastShot:      now - typ.ShootCooldown,
	})
	components.Health.SetValue(e, components.HealthData{
		Current: stats.Health,
		Max:     stats.Health,
	})

	look := enemySprites[kind]
	components.Sprite.SetValue(e, components.SpriteData{
		Key:      look.key,
		Fallback: look.clr,
		Outline:  true,
	})
	return components.Object.Get(e)
}
