// Package encounter runs one round of the shooter: the players, the enemy
// waves and the boss fights that end it.
//
// An Encounter owns a donburi world. Update advances it by one tick at the
// time read from its clock; Draw emits the frame to a render sink.
package encounter

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/automoto/skybreaker/clock"
	"github.com/automoto/skybreaker/components"
	cfg "github.com/automoto/skybreaker/config"
	"github.com/automoto/skybreaker/render"
	"github.com/automoto/skybreaker/systems"
	"github.com/automoto/skybreaker/systems/factory"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var ErrNoClock = errors.New("encounter requires a clock")

// Options configure a new Encounter.
type Options struct {
	Settings cfg.Settings
	Clock    clock.Clock

	// Rand overrides Seed when set.
	Seed int64
	Rand *rand.Rand

	Players int // 1 or 2; zero means 1
	Input   systems.InputSource
	Audio   components.AudioSink
	Logger  zerolog.Logger
}

// Encounter is a running round.
type Encounter struct {
	ecs     *ecs.ECS
	clock   clock.Clock
	logger  zerolog.Logger
	runID   string
	players []*donburi.Entry

	lastNow      time.Duration
	defeatLogged bool
}

// New validates the options and builds the world: collision space,
// director, background and one entity per player slot.
func New(opts Options) (*Encounter, error) {
	if opts.Clock == nil {
		return nil, ErrNoClock
	}
	if err := opts.Settings.Validate(); err != nil {
		return nil, fmt.Errorf("failed to create encounter: %w", err)
	}
	if opts.Players == 0 {
		opts.Players = 1
	}
	if opts.Players < 1 || opts.Players > cfg.MaxPlayers {
		return nil, fmt.Errorf("failed to create encounter: %d players, want 1 to %d", opts.Players, cfg.MaxPlayers)
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(opts.Seed))
	}

	runID := uuid.NewString()
	logger := opts.Logger.With().Str("run", runID).Logger()

	e := &Encounter{
		ecs:    ecs.NewECS(donburi.NewWorld()),
		clock:  opts.Clock,
		logger: logger,
		runID:  runID,
	}
	e.configure(opts.Input)

	s := opts.Settings
	width, height := float64(s.ScreenWidth), float64(s.ScreenHeight)
	now := opts.Clock.Now()
	e.lastNow = now

	factory.CreateSpace(e.ecs, s.ScreenWidth, s.ScreenHeight, cfg.Space.CellSize, cfg.Space.CellSize)
	factory.CreateEncounter(e.ecs, runID, s, now, rng, logger)
	factory.CreateBackground(e.ecs, height)
	systems.SetAudioSink(e.ecs, opts.Audio)

	cy := height - cfg.Player.SpawnBottomMargin
	for slot := 0; slot < opts.Players; slot++ {
		cx := width/2 - cfg.Player.SecondSlotOffsetX
		if slot == 1 {
			cx = width/2 + cfg.Player.SecondSlotOffsetX
		}
		e.players = append(e.players, factory.CreatePlayer(e.ecs, slot, cx, cy, s))
	}

	logger.Info().Int("players", opts.Players).Msg("encounter started")
	return e, nil
}

func (e *Encounter) configure(input systems.InputSource) {
	e.ecs.AddSystem(systems.NewInputSystem(input))
	e.ecs.AddSystem(systems.UpdateBullets)
	e.ecs.AddSystem(systems.UpdatePlayers)
	e.ecs.AddSystem(systems.UpdateDirector)
	e.ecs.AddSystem(systems.UpdateEnemies)
	e.ecs.AddSystem(systems.UpdateCollisions)
	e.ecs.AddSystem(systems.UpdateItems)
	e.ecs.AddSystem(systems.UpdateEffects)
	e.ecs.AddSystem(systems.UpdateAudio)
}

// Update advances the round by one tick using settings for this tick. An
// invalid snapshot is ignored and the previous one kept; a new screen size
// waits for the next round. It returns
// OutcomeVictory on the tick the boss is destroyed.
func (e *Encounter) Update(settings cfg.Settings) components.Outcome {
	enc := systems.GetEncounter(e.ecs)

	now := e.clock.Now()
	if now < e.lastNow {
		now = e.lastNow
	}
	e.lastNow = now
	enc.Now = now
	enc.Outcome = components.OutcomeNone

	if settings != enc.Settings {
		e.adopt(enc, settings)
	}

	e.ecs.Update()

	if enc.Outcome == components.OutcomeVictory {
		e.logger.Info().Ints("scores", e.Scores()).Msg("victory")
	}
	if !e.defeatLogged && e.AllPlayersDown() {
		e.defeatLogged = true
		e.logger.Info().Ints("scores", e.Scores()).Int("stage", enc.Stage).Msg("defeat")
	}
	return enc.Outcome
}

// adopt takes a new snapshot for the next tick. The collision space is
// sized once in New, so the playfield size stays fixed for the round.
func (e *Encounter) adopt(enc *components.EncounterData, settings cfg.Settings) {
	if err := settings.Validate(); err != nil {
		e.logger.Warn().Err(err).Msg("ignoring invalid settings")
		return
	}
	if settings.ScreenWidth != enc.Settings.ScreenWidth || settings.ScreenHeight != enc.Settings.ScreenHeight {
		e.logger.Warn().
			Int("width", settings.ScreenWidth).
			Int("height", settings.ScreenHeight).
			Msg("screen size applies from the next round")
		settings.ScreenWidth = enc.Settings.ScreenWidth
		settings.ScreenHeight = enc.Settings.ScreenHeight
	}
	enc.Settings = settings
}

// Draw emits the current frame.
func (e *Encounter) Draw(sink render.Sink) {
	systems.Draw(e.ecs, sink)
}

// DrawDebug outlines every collision footprint.
func (e *Encounter) DrawDebug(sink render.Sink) {
	systems.DrawDebug(e.ecs, sink)
}

// RunID identifies this round in logs.
func (e *Encounter) RunID() string {
	return e.runID
}

// Now is the simulation time of the last tick.
func (e *Encounter) Now() time.Duration {
	return e.lastNow
}

func (e *Encounter) Stage() int {
	return systems.GetEncounter(e.ecs).Stage
}

func (e *Encounter) BossActive() bool {
	return systems.GetEncounter(e.ecs).BossActive
}

func (e *Encounter) BossDefeated() bool {
	return systems.GetEncounter(e.ecs).BossDefeated
}

// Settings returns the snapshot the last tick ran with.
func (e *Encounter) Settings() cfg.Settings {
	return systems.GetEncounter(e.ecs).Settings
}

// AllPlayersDown reports defeat: every player has run out of lives.
func (e *Encounter) AllPlayersDown() bool {
	for _, p := range e.players {
		if systems.PlayerAlive(p) {
			return false
		}
	}
	return true
}

// Scores returns each slot's score in slot order.
func (e *Encounter) Scores() []int {
	scores := make([]int, len(e.players))
	for i, p := range e.players {
		scores[i] = components.Player.Get(p).Score
	}
	return scores
}

// PlayerCount is the number of slots in the round.
func (e *Encounter) PlayerCount() int {
	return len(e.players)
}

// PlayerState is a read-only view of one player for HUDs and callers.
type PlayerState struct {
	Slot        int
	Score       int
	Lives       int
	WeaponLevel int
	X, Y        float64 // sprite centre
	Shielded    bool
	Invincible  bool
}

// Player returns the state of a slot.
func (e *Encounter) Player(slot int) (PlayerState, bool) {
	if slot < 0 || slot >= len(e.players) {
		return PlayerState{}, false
	}
	p := e.players[slot]
	player := components.Player.Get(p)
	obj := components.Object.Get(p)
	return PlayerState{
		Slot:        player.Slot,
		Score:       player.Score,
		Lives:       components.Lives.Get(p).Lives,
		WeaponLevel: player.WeaponLevel,
		X:           obj.CenterX(),
		Y:           obj.CenterY(),
		Shielded:    components.Shield.Get(p).Covers(e.lastNow),
		Invincible:  components.Invincible.Get(p).Covers(e.lastNow),
	}, true
}
