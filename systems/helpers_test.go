package systems

import (
	"math/rand"
	"testing"
	"time"

	"github.com/automoto/skybreaker/components"
	cfg "github.com/automoto/skybreaker/config"
	"github.com/automoto/skybreaker/systems/factory"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type recordingSink struct {
	cues []string
}

func (r *recordingSink) Play(cue string) {
	r.cues = append(r.cues, cue)
}

func (r *recordingSink) count(cue string) int {
	n := 0
	for _, c := range r.cues {
		if c == cue {
			n++
		}
	}
	return n
}

type testWorld struct {
	ecs   *ecs.ECS
	enc   *components.EncounterData
	audio *recordingSink
}

func newTestWorld(t *testing.T, tweaks ...func(*cfg.Settings)) *testWorld {
	t.Helper()
	s := cfg.DefaultSettings()
	for _, tweak := range tweaks {
		tweak(&s)
	}
	require.NoError(t, s.Validate())

	w := ecs.NewECS(donburi.NewWorld())
	factory.CreateSpace(w, s.ScreenWidth, s.ScreenHeight, cfg.Space.CellSize, cfg.Space.CellSize)
	factory.CreateEncounter(w, "test", s, 0, rand.New(rand.NewSource(1)), zerolog.Nop())
	sink := &recordingSink{}
	SetAudioSink(w, sink)

	return &testWorld{ecs: w, enc: GetEncounter(w), audio: sink}
}

func (w *testWorld) at(t time.Duration) {
	w.enc.Now = t
}

func (w *testWorld) run(systems ...func(*ecs.ECS)) {
	for _, s := range systems {
		s(w.ecs)
	}
}

// player spawns a slot at the standard spawn point for that slot.
func (w *testWorld) player(slot int) *donburi.Entry {
	cx := 300.0 + float64(slot)*200
	return factory.CreatePlayer(w.ecs, slot, cx, 500, w.enc.Settings)
}

func (w *testWorld) enemy(kind cfg.EnemyKind, x, y float64) *donburi.Entry {
	return factory.CreateEnemy(w.ecs, kind, x, y, w.enc.Settings.Enemies.Kind(kind), w.enc.Now)
}

func (w *testWorld) count(tag *donburi.ComponentType[donburi.Tag]) int {
	n := 0
	tag.Each(w.ecs.World, func(*donburi.Entry) { n++ })
	return n
}

func (w *testWorld) hold(e *donburi.Entry, actions ...cfg.ActionID) {
	input := components.PlayerInput.Get(e)
	input.Current = [cfg.ActionCount]bool{}
	for _, a := range actions {
		input.Current[a] = true
	}
}

func tickAt(i int) time.Duration {
	return time.Duration(int64(i) * int64(time.Second) / cfg.TickRate)
}
