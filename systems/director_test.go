package systems

import (
	"math"
	"testing"
	"time"

	"github.com/automoto/skybreaker/components"
	cfg "github.com/automoto/skybreaker/config"
	"github.com/automoto/skybreaker/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirectorRoutinePacing(t *testing.T) {
	w := newTestWorld(t)
	w.player(0)

	for i := 0; i <= 600; i++ {
		w.at(tickAt(i))
		w.run(UpdateDirector)
	}

	assert.Equal(t, 10, EnemyCount(w.ecs, cfg.EnemyNormal))
	assert.Equal(t, 1, EnemyCount(w.ecs, cfg.EnemyElite))
	assert.Equal(t, 1, w.enc.Stage)
}

func TestDirectorFollowsSpawnRate(t *testing.T) {
	w := newTestWorld(t, func(s *cfg.Settings) { s.EnemySpawnRate = 0.5 })
	w.player(0)

	for i := 0; i <= 120; i++ {
		w.at(tickAt(i))
		w.run(UpdateDirector)
	}
	assert.Equal(t, 4, EnemyCount(w.ecs, cfg.EnemyNormal))
}

func TestStageAdvanceSpawnsEliteThenBoss(t *testing.T) {
	w := newTestWorld(t)
	p := w.player(0)
	player := components.Player.Get(p)

	player.Score = 99
	w.run(UpdateDirector)
	assert.Equal(t, 1, w.enc.Stage)

	player.Score = 100
	w.at(100 * time.Millisecond)
	w.run(UpdateDirector)
	assert.Equal(t, 2, w.enc.Stage)
	assert.Equal(t, 100, w.enc.StageScore)
	assert.Equal(t, 1, EnemyCount(w.ecs, cfg.EnemyElite))
	assert.Equal(t, 100*time.Millisecond, w.enc.LastEliteSpawn)
	assert.False(t, w.enc.BossActive)

	player.Score = 200
	w.at(200 * time.Millisecond)
	w.run(UpdateDirector)
	assert.Equal(t, 3, w.enc.Stage)
	require.True(t, w.enc.BossActive)
	require.NotNil(t, w.enc.Boss)
	obj := components.Object.Get(w.enc.Boss)
	assert.Equal(t, 336.0, obj.X)
	assert.Equal(t, 50.0, obj.Y)
	assert.Equal(t, 1, w.count(tags.Boss))
}

func TestDirectorPausesDuringBoss(t *testing.T) {
	w := newTestWorld(t)
	p := w.player(0)
	SpawnBoss(w.ecs)
	components.Player.Get(p).Score = 5000

	for i := 0; i <= 1200; i++ {
		w.at(tickAt(i))
		w.run(UpdateDirector)
	}

	assert.Equal(t, 1, w.enc.Stage, "no stage advance while the boss is up")
	assert.Equal(t, 0, EnemyCount(w.ecs, cfg.EnemyNormal))
	assert.Equal(t, 0, EnemyCount(w.ecs, cfg.EnemyElite))
}

func TestLowestLivingSlotAdvancesStages(t *testing.T) {
	w := newTestWorld(t)
	w.player(0)
	p2 := w.player(1)
	components.Player.Get(p2).Score = 500

	w.run(UpdateDirector)
	assert.Equal(t, 1, w.enc.Stage, "slot 1 does not drive stages while slot 0 is alive")
}

func TestSecondPlayerAdvancesStagesOnceFirstIsDown(t *testing.T) {
	w := newTestWorld(t)
	p1 := w.player(0)
	p2 := w.player(1)
	components.Player.Get(p1).Score = 50
	components.Lives.Get(p1).Lives = 0
	components.Player.Get(p2).Score = 400

	w.run(UpdateDirector)
	assert.Equal(t, 2, w.enc.Stage, "at most one stage per tick")
	assert.Equal(t, 400, w.enc.StageScore)
	assert.Same(t, p2, StagePlayer(w.ecs))

	w.at(tickAt(1))
	w.run(UpdateDirector)
	assert.Equal(t, 2, w.enc.Stage)

	components.Lives.Get(p2).Lives = 0
	assert.Nil(t, StagePlayer(w.ecs))
}

func TestSpawnEnemyStaysWithinTheSpawnBand(t *testing.T) {
	w := newTestWorld(t)
	for i := 0; i < 200; i++ {
		e := SpawnEnemy(w.ecs, cfg.EnemyNormal)
		obj := components.Object.Get(e)
		require.GreaterOrEqual(t, obj.X, 0.0)
		require.LessOrEqual(t, obj.X, 700.0)
		require.Equal(t, -50.0, obj.Y)
	}
}

func TestSpawnBandFollowsScreenWidth(t *testing.T) {
	w := newTestWorld(t, func(s *cfg.Settings) { s.ScreenWidth = 600 })
	maxX := 0.0
	for i := 0; i < 500; i++ {
		obj := components.Object.Get(SpawnEnemy(w.ecs, cfg.EnemyNormal))
		require.LessOrEqual(t, obj.X, 500.0)
		maxX = math.Max(maxX, obj.X)
	}
	assert.Greater(t, maxX, 400.0, "spawns reach the right side of a narrow field")

	assert.Equal(t, 0, spawnMaxX(50))
}
