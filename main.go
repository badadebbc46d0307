package main

import (
	"errors"
	"flag"
	"io/fs"
	"os"

	"github.com/automoto/skybreaker/assets"
	"github.com/automoto/skybreaker/config"
	"github.com/automoto/skybreaker/fonts"
	"github.com/automoto/skybreaker/records"
	"github.com/automoto/skybreaker/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/rs/zerolog"
)

const appName = "skybreaker"

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene         Scene
	width, height int
	quit          bool
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

// Quit ends the game loop after the current update.
func (g *Game) Quit() {
	g.quit = true
}

func (g *Game) Update() error {
	g.scene.Update()
	if g.quit {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

// Layout keeps the startup size; a reloaded screen size takes effect on
// the next launch.
func (g *Game) Layout(width, height int) (int, int) {
	return g.width, g.height
}

// openSources picks where settings and records live. An explicit settings
// path keeps records in memory only.
func openSources(path string, logger zerolog.Logger) (settings, recs config.Source) {
	if path != "" {
		return config.FileSource{Path: path}, &config.MemorySource{}
	}
	store, err := config.OpenStore(appName)
	if err != nil {
		logger.Warn().Err(err).Msg("settings store unavailable, using defaults")
		return &config.MemorySource{}, &config.MemorySource{}
	}
	return store, store.Item(records.Item)
}

func main() {
	configPath := flag.String("config", "", "settings file (default: per-user store)")
	assetDir := flag.String("assets", "assets", "directory holding images/ and sounds/")
	players := flag.Int("players", 1, "number of players when skipping the menu (1 or 2)")
	skipMenu := flag.Bool("skip-menu", false, "start a round immediately")
	seed := flag.Int64("seed", 0, "random seed (0 picks one per round)")
	flag.Parse()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	settingsSrc, recordsSrc := openSources(*configPath, logger)
	settings, err := config.NewLoader(settingsSrc, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load settings")
	}

	if err := fonts.LoadDefaults(); err != nil {
		logger.Fatal().Err(err).Msg("failed to load fonts")
	}

	var assetFS fs.FS
	if info, err := os.Stat(*assetDir); err == nil && info.IsDir() {
		assetFS = os.DirFS(*assetDir)
	} else {
		logger.Warn().Str("dir", *assetDir).Msg("asset directory missing, drawing placeholders")
	}

	current := settings.Current()
	sounds := assets.NewSoundBank(audio.NewContext(config.Audio.SampleRate), assetFS, current.Volume, logger)
	sounds.Preload()

	deps := &scenes.Deps{
		Settings: settings,
		Images:   assets.LoadImages(assetFS, logger),
		Sounds:   sounds,
		Records:  records.Open(recordsSrc, logger),
		Logger:   logger,
		Seed:     *seed,
	}

	g := &Game{width: current.ScreenWidth, height: current.ScreenHeight}
	if *skipMenu {
		g.scene = scenes.NewPlayScene(g, deps, *players).(Scene)
	} else {
		g.scene = scenes.NewMenuScene(g, deps)
	}

	ebiten.SetWindowSize(current.ScreenWidth, current.ScreenHeight)
	ebiten.SetWindowTitle("Skybreaker")
	ebiten.SetTPS(config.TickRate)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Fatal().Err(err).Msg("game exited")
	}
}
