package systems

import (
	"testing"
	"time"

	"github.com/automoto/skybreaker/components"
	cfg "github.com/automoto/skybreaker/config"
	"github.com/automoto/skybreaker/systems/factory"
	"github.com/automoto/skybreaker/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOneBulletScoresPerEnemy(t *testing.T) {
	w := newTestWorld(t)
	p := w.player(0)
	e := w.enemy(cfg.EnemyNormal, 268, 300)

	factory.CreatePlayerBullet(w.ecs, p, 300, 332)
	factory.CreatePlayerBullet(w.ecs, p, 300, 332)
	w.run(UpdateCollisions)

	assert.False(t, e.Valid())
	assert.Equal(t, 100, components.Player.Get(p).Score)
	assert.Equal(t, 1, w.count(tags.PlayerBullet), "the second bullet flies on")
	assert.Equal(t, 1, w.count(tags.Explosion))
	assert.Equal(t, 1, w.count(tags.Item), "normal enemies always drop")
}

func TestKillIsCreditedToTheShooter(t *testing.T) {
	w := newTestWorld(t)
	p1 := w.player(0)
	p2 := w.player(1)
	w.enemy(cfg.EnemyNormal, 468, 100)

	factory.CreatePlayerBullet(w.ecs, p2, 500, 132)
	w.run(UpdateCollisions)

	assert.Equal(t, 0, components.Player.Get(p1).Score)
	assert.Equal(t, 100, components.Player.Get(p2).Score)
}

func TestEliteTakesOneBulletPerTick(t *testing.T) {
	w := newTestWorld(t)
	p := w.player(0)
	e := w.enemy(cfg.EnemyElite, 260, 100)

	factory.CreatePlayerBullet(w.ecs, p, 300, 140)
	factory.CreatePlayerBullet(w.ecs, p, 300, 140)
	w.run(UpdateCollisions)
	require.True(t, e.Valid())
	assert.Equal(t, 1, components.Health.Get(e).Current)
	assert.Equal(t, 1, w.count(tags.PlayerBullet))

	w.run(UpdateCollisions)
	assert.False(t, e.Valid())
	assert.Equal(t, 200, components.Player.Get(p).Score)
	assert.Equal(t, 0, w.count(tags.PlayerBullet))
}

func TestBodyContactKillsNormalEnemy(t *testing.T) {
	w := newTestWorld(t)
	p := w.player(0)
	e := w.enemy(cfg.EnemyNormal, 268, 468)

	w.run(UpdateCollisions, UpdateAudio)

	assert.False(t, e.Valid())
	assert.Equal(t, 2, components.Lives.Get(p).Lives)
	assert.Equal(t, 100, components.Player.Get(p).Score)
	assert.Equal(t, 1, w.count(tags.Explosion))
	assert.GreaterOrEqual(t, w.audio.count("explosion"), 1)
}

func TestBossSurvivesBodyContact(t *testing.T) {
	w := newTestWorld(t)
	p := w.player(0)
	b := SpawnBoss(w.ecs)
	obj := components.Object.Get(b)
	obj.X, obj.Y = 236, 400
	obj.Update()

	w.run(UpdateCollisions)

	assert.True(t, b.Valid())
	assert.Equal(t, 10, components.Health.Get(b).Current)
	assert.Equal(t, 2, components.Lives.Get(p).Lives)
	assert.True(t, w.enc.BossActive)
}

func TestEnemyBulletsShareTheInvincibilityWindow(t *testing.T) {
	w := newTestWorld(t)
	p := w.player(0)
	shooter := w.enemy(cfg.EnemyElite, 0, 0)

	factory.CreateEnemyBullet(w.ecs, shooter, 300, 500, 0, 4)
	factory.CreateEnemyBullet(w.ecs, shooter, 305, 505, 0, 4)
	w.run(UpdateCollisions)

	assert.Equal(t, 2, components.Lives.Get(p).Lives)
	assert.Equal(t, 0, w.count(tags.EnemyBullet), "both bullets are consumed")
}

func TestEnemyBulletMissesOutsideTheHitbox(t *testing.T) {
	w := newTestWorld(t)
	p := w.player(0)
	shooter := w.enemy(cfg.EnemyElite, 0, 0)

	// Inside the 64x64 sprite, left of the 40x40 hitbox.
	factory.CreateEnemyBullet(w.ecs, shooter, 272, 500, 0, 4)
	w.run(UpdateCollisions)

	assert.Equal(t, 3, components.Lives.Get(p).Lives)
	assert.Equal(t, 1, w.count(tags.EnemyBullet))
}

func TestDeadPlayersAreNotHit(t *testing.T) {
	w := newTestWorld(t)
	p := w.player(0)
	components.Lives.Get(p).Lives = 0
	shooter := w.enemy(cfg.EnemyElite, 0, 0)

	factory.CreateEnemyBullet(w.ecs, shooter, 300, 500, 0, 4)
	e := w.enemy(cfg.EnemyNormal, 268, 468)
	w.run(UpdateCollisions)

	assert.Equal(t, 1, w.count(tags.EnemyBullet))
	assert.True(t, e.Valid())
}

func TestDestroyingTheBossWinsTheRound(t *testing.T) {
	w := newTestWorld(t)
	p := w.player(0)
	b := SpawnBoss(w.ecs)
	components.Health.Get(b).Current = 1

	w.run(UpdateEnemies)
	require.Equal(t, 3, w.count(tags.EnemyBullet))

	w.at(16 * time.Millisecond)
	obj := components.Object.Get(b)
	factory.CreatePlayerBullet(w.ecs, p, obj.CenterX(), obj.CenterY())
	w.run(UpdateCollisions, UpdateAudio)

	assert.False(t, b.Valid())
	assert.Equal(t, components.OutcomeVictory, w.enc.Outcome)
	assert.False(t, w.enc.BossActive)
	assert.True(t, w.enc.BossDefeated)
	assert.Nil(t, w.enc.Boss)
	assert.Equal(t, 1000, components.Player.Get(p).Score)
	assert.Equal(t, 1, w.audio.count("victory"))
	assert.Equal(t, 0, w.count(tags.EnemyBullet), "the boss's bullets go with it")
	assert.Equal(t, 1, w.count(tags.Item))
}
