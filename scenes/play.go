package scenes

import (
	"image/color"
	"time"

	"github.com/automoto/skybreaker/clock"
	"github.com/automoto/skybreaker/components"
	cfg "github.com/automoto/skybreaker/config"
	"github.com/automoto/skybreaker/encounter"
	"github.com/automoto/skybreaker/fonts"
	"github.com/automoto/skybreaker/records"
	"github.com/automoto/skybreaker/render"
	"github.com/automoto/skybreaker/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// settingsReloadTicks is how often the settings source is re-read.
const settingsReloadTicks = cfg.TickRate

// PlayScene runs one encounter.
type PlayScene struct {
	sceneChanger SceneChanger
	deps         *Deps
	players      int

	encounter *encounter.Encounter
	ticker    *clock.Ticker
	keyboard  *systems.KeyboardInput
	paused    bool
	debug     bool
}

// NewPlayScene starts a round for the given number of players. A round
// that cannot start drops back to the menu.
func NewPlayScene(sc SceneChanger, deps *Deps, players int) interface{} {
	settings := deps.Settings.Current()
	ps := &PlayScene{
		sceneChanger: sc,
		deps:         deps,
		players:      players,
		ticker:       clock.NewTicker(cfg.TickRate),
		keyboard:     systems.NewKeyboardInput(settings.KeyBindings, deps.Logger),
	}

	seed := deps.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	var sink components.AudioSink
	if deps.Sounds != nil {
		deps.Sounds.SetVolume(settings.Volume)
		sink = deps.Sounds
	}

	enc, err := encounter.New(encounter.Options{
		Settings: settings,
		Clock:    ps.ticker,
		Seed:     seed,
		Players:  players,
		Input:    ps.keyboard,
		Audio:    sink,
		Logger:   deps.Logger,
	})
	if err != nil {
		deps.Logger.Error().Err(err).Msg("could not start encounter")
		return NewMenuScene(sc, deps)
	}
	ps.encounter = enc
	return ps
}

func (ps *PlayScene) Update() {
	if inpututil.IsKeyJustPressed(cfg.MenuKeys.Pause) {
		ps.paused = !ps.paused
	}
	if inpututil.IsKeyJustPressed(cfg.MenuKeys.Debug) {
		ps.debug = !ps.debug
	}
	if ps.paused {
		return
	}

	ps.ticker.Advance()
	if ps.ticker.Ticks()%settingsReloadTicks == 0 {
		ps.reloadSettings()
	}

	outcome := ps.encounter.Update(ps.deps.Settings.Current())
	victory := outcome == components.OutcomeVictory
	if victory || ps.encounter.AllPlayersDown() {
		result := records.Result{
			Scores:  ps.encounter.Scores(),
			Stage:   ps.encounter.Stage(),
			Victory: victory,
		}
		ps.sceneChanger.ChangeScene(NewResultScene(ps.sceneChanger, ps.deps, ps.players, result))
	}
}

// reloadSettings picks up edits to the settings source. Bindings and
// volume apply here; the encounter adopts the rest on its next tick.
func (ps *PlayScene) reloadSettings() {
	s, changed, err := ps.deps.Settings.Reload()
	if err != nil || !changed {
		return
	}
	ps.keyboard.Rebind(s.KeyBindings)
	if ps.deps.Sounds != nil {
		ps.deps.Sounds.SetVolume(s.Volume)
	}
	ps.deps.Logger.Info().Float64("spawn_rate", s.EnemySpawnRate).Msg("settings reloaded")
}

func (ps *PlayScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	sink := render.NewScreen(screen, ps.deps.Images, fonts.HUD.Get())
	ps.encounter.Draw(sink)
	if ps.debug {
		ps.encounter.DrawDebug(sink)
	}

	if ps.paused {
		w, h := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())
		sink.FillRect(0, 0, w, h, render.WithAlpha(cfg.Black, 0.5))
		sink.DrawText("PAUSED", w/2-45, h/2-12, cfg.White)
	}
}
