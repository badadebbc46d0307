package systems

import (
	"time"

	"github.com/automoto/skybreaker/components"
	cfg "github.com/automoto/skybreaker/config"
	"github.com/automoto/skybreaker/systems/factory"
	"github.com/automoto/skybreaker/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEnemies advances every enemy's behaviour one tick and prunes those
// that left the bottom of the playfield.
func UpdateEnemies(ecs *ecs.ECS) {
	t := tickTime(ecs)
	_, height := playfield(ecs)

	var toRemove []*donburi.Entry
	for _, e := range sortedEntries(ecs, components.Enemy) {
		enemy := components.Enemy.Get(e)

		switch enemy.Kind {
		case cfg.EnemyNormal:
			descend(e, enemy)
		case cfg.EnemyElite:
			descend(e, enemy)
			if shooterReady(enemy, t) {
				eliteShoot(ecs, e)
				enemy.LastShot = t
				PlaySFX(ecs, cfg.SoundEnemyShoot)
			}
		case cfg.EnemyBoss:
			updateBoss(ecs, e, t)
			continue
		}

		if components.Object.Get(e).Y > height {
			toRemove = append(toRemove, e)
		}
	}

	for _, e := range toRemove {
		DestroyEnemy(ecs, e)
	}
}

func descend(e *donburi.Entry, enemy *components.EnemyData) {
	obj := components.Object.Get(e)
	obj.Y += enemy.Speed
	obj.Update()
}

func eliteShoot(ecs *ecs.ECS, e *donburi.Entry) {
	obj := components.Object.Get(e)
	factory.CreateEnemyBullet(ecs, e, obj.CenterX(), obj.Y+obj.H, 0, cfg.Bullet.EliteSpeed)
}

// DamageEnemy removes one health point and reports whether the enemy is
// destroyed. The explosion cue plays on the fatal hit.
func DamageEnemy(ecs *ecs.ECS, e *donburi.Entry) bool {
	destroyed := components.Health.Get(e).Damage()
	if destroyed {
		PlaySFX(ecs, cfg.SoundExplosion)
	}
	return destroyed
}

// RollDrop decides whether a destroyed enemy drops a collectible and which
// one. ok is false when no drop occurs, including when every weight is zero.
func RollDrop(ecs *ecs.ECS, kind cfg.EnemyKind) (cfg.ItemKind, bool) {
	s := currentSettings(ecs)
	rng := random(ecs)

	if rng.Float64() >= s.Drops.Chance.Kind(kind) {
		return 0, false
	}

	var total float64
	for k := cfg.ItemKind(0); k < cfg.ItemKindCount; k++ {
		total += s.Drops.Weights.Kind(k)
	}
	if total <= 0 {
		return 0, false
	}

	pick := rng.Float64() * total
	for k := cfg.ItemKind(0); k < cfg.ItemKindCount; k++ {
		w := s.Drops.Weights.Kind(k)
		if w <= 0 {
			continue
		}
		if pick < w {
			return k, true
		}
		pick -= w
	}
	// Rounding left pick at the very top of the range.
	for k := cfg.ItemKindCount - 1; k >= 0; k-- {
		if s.Drops.Weights.Kind(k) > 0 {
			return k, true
		}
	}
	return 0, false
}

// DropItem rolls a drop for e and spawns it at the enemy's centre.
func DropItem(ecs *ecs.ECS, e *donburi.Entry) *donburi.Entry {
	enemy := components.Enemy.Get(e)
	kind, ok := RollDrop(ecs, enemy.Kind)
	if !ok {
		return nil
	}
	obj := components.Object.Get(e)
	return factory.CreateItem(ecs, kind, obj.CenterX(), obj.CenterY())
}

// DestroyEnemy removes an enemy together with the bullets it owns.
func DestroyEnemy(ecs *ecs.ECS, e *donburi.Entry) {
	if e == nil || !e.Valid() {
		return
	}
	owner := e.Entity()

	var owned []*donburi.Entry
	tags.EnemyBullet.Each(ecs.World, func(b *donburi.Entry) {
		if components.Bullet.Get(b).Owner == owner {
			owned = append(owned, b)
		}
	})
	for _, b := range owned {
		factory.Destroy(ecs, b)
	}

	enc := GetEncounter(ecs)
	if enc.Boss != nil && enc.Boss.Entity() == owner {
		enc.Boss = nil
	}
	factory.Destroy(ecs, e)
}

// EnemyCount returns the number of live enemies of a kind.
func EnemyCount(ecs *ecs.ECS, kind cfg.EnemyKind) int {
	n := 0
	components.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		if components.Enemy.Get(e).Kind == kind {
			n++
		}
	})
	return n
}

// shooterReady is shared by every enemy kind with a cooldown.
func shooterReady(enemy *components.EnemyData, t time.Duration) bool {
	return enemy.ShootCooldown > 0 && t-enemy.LastShot >= enemy.ShootCooldown
}
