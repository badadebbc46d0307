package factory

import (
	"math/rand"
	"time"

	"github.com/automoto/skybreaker/archetypes"
	"github.com/automoto/skybreaker/components"
	cfg "github.com/automoto/skybreaker/config"
	"github.com/rs/zerolog"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateEncounter spawns the director singleton at stage 1 with both spawn
// timers starting at now.
func CreateEncounter(ecs *ecs.ECS, runID string, settings cfg.Settings, now time.Duration, rng *rand.Rand, logger zerolog.Logger) *donburi.Entry {
	e := archetypes.Encounter.Spawn(ecs)
	components.Encounter.SetValue(e, components.EncounterData{
		RunID:          runID,
		Stage:          1,
		LastSpawn:      now,
		LastEliteSpawn: now,
		Now:            now,
		Settings:       settings,
		Rand:           rng,
		Logger:         logger,
	})
	return e
}

// CreateBackground spawns the scrolling background for a playfield height.
func CreateBackground(ecs *ecs.ECS, height float64) *donburi.Entry {
	bg := archetypes.Background.Spawn(ecs)
	components.Background.SetValue(bg, components.BackgroundData{
		Y1:     0,
		Y2:     -height,
		Speed:  cfg.Effects.BackgroundSpeed,
		Height: height,
	})
	return bg
}
