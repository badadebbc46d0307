package components

import (
	"math/rand"
	"time"

	cfg "github.com/automoto/skybreaker/config"
	"github.com/rs/zerolog"
	"github.com/yohamta/donburi"
)

// Outcome is the round-ending signal reported by a tick.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeVictory
)

func (o Outcome) String() string {
	if o == OutcomeVictory {
		return "victory"
	}
	return "none"
}

// EncounterData is the director state (singleton component).
type EncounterData struct {
	RunID string

	Stage          int
	StageScore     int // primary player's score when the current stage began
	BossActive     bool
	BossDefeated   bool
	Boss           *donburi.Entry
	LastSpawn      time.Duration
	LastEliteSpawn time.Duration

	// Per-tick inputs, written once before the systems run.
	Now      time.Duration
	Settings cfg.Settings

	Outcome Outcome
	Rand    *rand.Rand
	Logger  zerolog.Logger
}

var Encounter = donburi.NewComponentType[EncounterData]()
