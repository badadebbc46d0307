package systems

import (
	"github.com/automoto/skybreaker/components"
	cfg "github.com/automoto/skybreaker/config"
	"github.com/automoto/skybreaker/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDirector advances the stage and performs routine spawns. Both are
// suspended while a boss is active.
func UpdateDirector(ecs *ecs.ECS) {
	enc := GetEncounter(ecs)
	if enc.BossActive {
		return
	}

	if leader := StagePlayer(ecs); leader != nil {
		score := components.Player.Get(leader).Score
		if score >= enc.StageScore+cfg.Director.StageThreshold {
			advanceStage(ecs, enc, score)
		}
	}
	if enc.BossActive {
		return
	}

	if enc.Now-enc.LastSpawn >= enc.Settings.SpawnInterval() {
		SpawnEnemy(ecs, cfg.EnemyNormal)
		enc.LastSpawn = enc.Now
	}
	if enc.Now-enc.LastEliteSpawn >= cfg.Director.EliteInterval {
		SpawnEnemy(ecs, cfg.EnemyElite)
		enc.LastEliteSpawn = enc.Now
	}
}

func advanceStage(ecs *ecs.ECS, enc *components.EncounterData, score int) {
	enc.Stage++
	enc.StageScore = score

	if enc.Stage%cfg.Director.BossEvery == 0 {
		SpawnBoss(ecs)
	} else {
		SpawnEnemy(ecs, cfg.EnemyElite)
		enc.LastEliteSpawn = enc.Now
	}

	enc.Logger.Info().
		Int("stage", enc.Stage).
		Int("score", score).
		Bool("boss", enc.BossActive).
		Msg("stage advanced")
}

// SpawnEnemy spawns a normal or elite enemy at a random x above the
// playfield.
func SpawnEnemy(ecs *ecs.ECS, kind cfg.EnemyKind) *donburi.Entry {
	enc := GetEncounter(ecs)
	x := float64(enc.Rand.Intn(spawnMaxX(enc.Settings.ScreenWidth) + 1))
	return factory.CreateEnemy(ecs, kind, x, cfg.Enemy.SpawnY, enc.Settings.Enemies.Kind(kind), enc.Now)
}

// SpawnBoss spawns the boss centred at the top and marks it active.
func SpawnBoss(ecs *ecs.ECS) *donburi.Entry {
	enc := GetEncounter(ecs)
	width := float64(enc.Settings.ScreenWidth)
	size := cfg.Enemy.Types[cfg.EnemyBoss].Size

	b := factory.CreateBoss(ecs, width/2-size/2, cfg.Boss.SpawnY, enc.Settings.Enemies.Boss, enc.Now, width)
	enc.Boss = b
	enc.BossActive = true

	enc.Logger.Info().Int("stage", enc.Stage).Msg("boss spawned")
	return b
}

func spawnMaxX(width int) int {
	return max(width-int(cfg.Enemy.SpawnRightMargin), 0)
}

// StagePlayer returns the lowest living slot, whose score drives stage
// advance. It is nil once every player is down.
func StagePlayer(ecs *ecs.ECS) *donburi.Entry {
	var leader *donburi.Entry
	for _, e := range sortedEntries(ecs, components.Player) {
		if !PlayerAlive(e) {
			continue
		}
		if leader == nil || components.Player.Get(e).Slot < components.Player.Get(leader).Slot {
			leader = e
		}
	}
	return leader
}
