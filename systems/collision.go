package systems

import (
	"github.com/automoto/skybreaker/components"
	cfg "github.com/automoto/skybreaker/config"
	"github.com/automoto/skybreaker/systems/factory"
	"github.com/automoto/skybreaker/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// collisionPass tracks what was consumed during one resolution pass.
// Removals are applied only after every pair has been checked.
type collisionPass struct {
	bullets map[donburi.Entity]bool
	enemies map[donburi.Entity]bool
	removed []*donburi.Entry
}

func newCollisionPass() *collisionPass {
	return &collisionPass{
		bullets: map[donburi.Entity]bool{},
		enemies: map[donburi.Entity]bool{},
	}
}

func (c *collisionPass) consumeBullet(e *donburi.Entry) {
	c.bullets[e.Entity()] = true
	c.removed = append(c.removed, e)
}

// UpdateCollisions resolves player bullets against enemies, enemy bullets
// against player hitboxes and enemy bodies against player hitboxes, in that
// order.
func UpdateCollisions(ecs *ecs.ECS) {
	pass := newCollisionPass()

	resolvePlayerBullets(ecs, pass)
	resolveEnemyBullets(ecs, pass)
	resolveBodyContact(ecs, pass)

	for _, e := range pass.removed {
		if pass.enemies[e.Entity()] {
			DestroyEnemy(ecs, e)
			continue
		}
		factory.Destroy(ecs, e)
	}
}

// resolvePlayerBullets lets each enemy take at most one player bullet per
// tick. The lowest entity wins when several bullets overlap it.
func resolvePlayerBullets(ecs *ecs.ECS, pass *collisionPass) {
	var bullets []*donburi.Entry
	tags.PlayerBullet.Each(ecs.World, func(e *donburi.Entry) {
		bullets = append(bullets, e)
	})
	sortByEntity(bullets)

	hitThisTick := map[donburi.Entity]bool{}
	for _, b := range bullets {
		obj := components.Object.Get(b)
		for _, enemy := range overlapping(obj.Object, tags.ResolvEnemy) {
			if hitThisTick[enemy.Entity()] || pass.enemies[enemy.Entity()] {
				continue
			}
			hitThisTick[enemy.Entity()] = true
			pass.consumeBullet(b)

			if DamageEnemy(ecs, enemy) {
				killEnemy(ecs, pass, enemy, ownerOf(ecs, b))
			}
			break
		}
	}
}

// resolveEnemyBullets damages the lowest slot whose hitbox a bullet touches.
func resolveEnemyBullets(ecs *ecs.ECS, pass *collisionPass) {
	var bullets []*donburi.Entry
	tags.EnemyBullet.Each(ecs.World, func(e *donburi.Entry) {
		bullets = append(bullets, e)
	})
	sortByEntity(bullets)

	players := livingPlayers(ecs)
	for _, b := range bullets {
		if pass.bullets[b.Entity()] {
			continue
		}
		obj := components.Object.Get(b)
		for _, p := range players {
			if !PlayerAlive(p) {
				continue
			}
			if components.Overlaps(obj.Object, components.Player.Get(p).Hitbox) {
				DamagePlayer(ecs, p)
				pass.consumeBullet(b)
				break
			}
		}
	}
}

// resolveBodyContact damages players touching an enemy. Non-boss enemies
// are destroyed by the contact and score for the player they hit.
func resolveBodyContact(ecs *ecs.ECS, pass *collisionPass) {
	for _, p := range livingPlayers(ecs) {
		hb := components.Player.Get(p).Hitbox
		for _, enemy := range overlapping(hb, tags.ResolvEnemy) {
			if pass.enemies[enemy.Entity()] {
				continue
			}
			if !PlayerAlive(p) {
				break
			}
			DamagePlayer(ecs, p)
			if enemy.HasComponent(tags.Boss) {
				continue
			}
			PlaySFX(ecs, cfg.SoundExplosion)
			killEnemy(ecs, pass, enemy, p)
		}
	}
}

// killEnemy resolves an enemy's destruction: explosion, item roll and score
// for the credited player. Destroying the boss ends the encounter.
func killEnemy(ecs *ecs.ECS, pass *collisionPass, enemy, credited *donburi.Entry) {
	pass.enemies[enemy.Entity()] = true
	pass.removed = append(pass.removed, enemy)

	obj := components.Object.Get(enemy)
	factory.CreateExplosion(ecs, obj.CenterX(), obj.CenterY())
	DropItem(ecs, enemy)

	data := components.Enemy.Get(enemy)
	if credited != nil && credited.Valid() && credited.HasComponent(components.Player) {
		components.Player.Get(credited).Score += data.Score
	}

	if data.Kind != cfg.EnemyBoss {
		return
	}
	enc := GetEncounter(ecs)
	enc.BossActive = false
	enc.BossDefeated = true
	enc.Outcome = components.OutcomeVictory
	PlaySFX(ecs, cfg.SoundVictory)
	enc.Logger.Info().Int("stage", enc.Stage).Msg("boss defeated")
}

// overlapping returns the entries behind objects with the tag that exactly
// overlap obj, in entity order.
func overlapping(obj *resolv.Object, tag string) []*donburi.Entry {
	if obj == nil {
		return nil
	}
	check := obj.Check(0, 0, tag)
	if check == nil {
		return nil
	}
	var entries []*donburi.Entry
	for _, o := range check.ObjectsByTags(tag) {
		e, ok := o.Data.(*donburi.Entry)
		if !ok || !e.Valid() || !components.Overlaps(obj, o) {
			continue
		}
		entries = append(entries, e)
	}
	sortByEntity(entries)
	return entries
}

// ownerOf returns the entry that fired a bullet, or nil once it is gone.
func ownerOf(ecs *ecs.ECS, bullet *donburi.Entry) *donburi.Entry {
	owner := components.Bullet.Get(bullet).Owner
	if !ecs.World.Valid(owner) {
		return nil
	}
	return ecs.World.Entry(owner)
}
