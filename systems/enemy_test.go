package systems

import (
	"testing"
	"time"

	"github.com/automoto/skybreaker/components"
	cfg "github.com/automoto/skybreaker/config"
	"github.com/automoto/skybreaker/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalEnemyDescendsAndLeaves(t *testing.T) {
	w := newTestWorld(t)
	e := w.enemy(cfg.EnemyNormal, 100, 0)

	w.run(UpdateEnemies)
	assert.Equal(t, 2.0, components.Object.Get(e).Y)

	components.Object.Get(e).Y = 599
	w.run(UpdateEnemies)
	assert.False(t, e.Valid())
	assert.Equal(t, 0, EnemyCount(w.ecs, cfg.EnemyNormal))
}

func TestNormalEnemyNeverFires(t *testing.T) {
	w := newTestWorld(t)
	w.enemy(cfg.EnemyNormal, 100, 0)
	for i := 0; i < 120; i++ {
		w.at(tickAt(i))
		w.run(UpdateEnemies)
	}
	assert.Equal(t, 0, w.count(tags.EnemyBullet))
}

func TestEliteFiresOnCooldown(t *testing.T) {
	w := newTestWorld(t)
	e := w.enemy(cfg.EnemyElite, 100, 0)

	w.run(UpdateEnemies, UpdateAudio)
	require.Equal(t, 1, w.count(tags.EnemyBullet), "ready to fire at spawn")
	assert.Equal(t, 1, w.audio.count("enemy_shoot"))

	b, _ := tags.EnemyBullet.First(w.ecs.World)
	assert.Equal(t, e.Entity(), components.Bullet.Get(b).Owner)
	assert.Equal(t, components.VelocityData{Y: 4}, *components.Velocity.Get(b))

	w.at(time.Second)
	w.run(UpdateEnemies)
	assert.Equal(t, 1, w.count(tags.EnemyBullet))

	w.at(2 * time.Second)
	w.run(UpdateEnemies)
	assert.Equal(t, 2, w.count(tags.EnemyBullet))
}

func TestDestroyEnemyRemovesOwnedBullets(t *testing.T) {
	w := newTestWorld(t)
	a := w.enemy(cfg.EnemyElite, 100, 0)
	w.enemy(cfg.EnemyElite, 400, 0)
	w.run(UpdateEnemies)
	require.Equal(t, 2, w.count(tags.EnemyBullet))

	DestroyEnemy(w.ecs, a)
	assert.False(t, a.Valid())
	assert.Equal(t, 1, w.count(tags.EnemyBullet))

	assert.NotPanics(t, func() { DestroyEnemy(w.ecs, a) })
}

func TestDamageEnemy(t *testing.T) {
	w := newTestWorld(t)
	e := w.enemy(cfg.EnemyElite, 100, 100)

	assert.False(t, DamageEnemy(w.ecs, e))
	assert.True(t, DamageEnemy(w.ecs, e))
	assert.True(t, DamageEnemy(w.ecs, e), "health stays clamped at zero")
	assert.Equal(t, 0, components.Health.Get(e).Current)
}

func TestRollDrop(t *testing.T) {
	t.Run("certain single kind", func(t *testing.T) {
		w := newTestWorld(t, func(s *cfg.Settings) {
			s.Drops.Chance.Normal = 1
			s.Drops.Weights = cfg.DropWeights{Shield: 1}
		})
		for i := 0; i < 50; i++ {
			kind, ok := RollDrop(w.ecs, cfg.EnemyNormal)
			require.True(t, ok)
			assert.Equal(t, cfg.ItemShield, kind)
		}
	})

	t.Run("zero chance", func(t *testing.T) {
		w := newTestWorld(t, func(s *cfg.Settings) { s.Drops.Chance.Elite = 0 })
		for i := 0; i < 50; i++ {
			_, ok := RollDrop(w.ecs, cfg.EnemyElite)
			assert.False(t, ok)
		}
	})

	t.Run("all weights zero skips the drop", func(t *testing.T) {
		w := newTestWorld(t, func(s *cfg.Settings) {
			s.Drops.Chance.Boss = 1
			s.Drops.Weights = cfg.DropWeights{}
		})
		_, ok := RollDrop(w.ecs, cfg.EnemyBoss)
		assert.False(t, ok)
	})

	t.Run("weights pick only positive kinds", func(t *testing.T) {
		w := newTestWorld(t, func(s *cfg.Settings) {
			s.Drops.Chance.Normal = 1
			s.Drops.Weights = cfg.DropWeights{Health: 1, Weapon: 1}
		})
		seen := map[cfg.ItemKind]int{}
		for i := 0; i < 2000; i++ {
			kind, ok := RollDrop(w.ecs, cfg.EnemyNormal)
			require.True(t, ok)
			seen[kind]++
		}
		assert.Zero(t, seen[cfg.ItemShield])
		assert.Greater(t, seen[cfg.ItemHealth], 800)
		assert.Greater(t, seen[cfg.ItemWeapon], 800)
	})
}

func TestDropItemSpawnsAtEnemyCentre(t *testing.T) {
	w := newTestWorld(t)
	e := w.enemy(cfg.EnemyNormal, 100, 100)

	item := DropItem(w.ecs, e)
	require.NotNil(t, item, "normal enemies always drop by default")
	obj := components.Object.Get(item)
	assert.Equal(t, 132.0, obj.CenterX())
	assert.Equal(t, 132.0, obj.CenterY())
}
