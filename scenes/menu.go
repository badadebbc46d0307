package scenes

import (
	"image/color"

	cfg "github.com/automoto/skybreaker/config"
	"github.com/automoto/skybreaker/fonts"
	"github.com/automoto/skybreaker/render"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// MenuScene picks the number of players
type MenuScene struct {
	sceneChanger SceneChanger
	deps         *Deps
	players      int
}

// NewMenuScene creates a new menu scene
func NewMenuScene(sc SceneChanger, deps *Deps) *MenuScene {
	return &MenuScene{sceneChanger: sc, deps: deps, players: 1}
}

func (ms *MenuScene) Update() {
	switch {
	case inpututil.IsKeyJustPressed(cfg.MenuKeys.OnePlayer):
		ms.players = 1
	case inpututil.IsKeyJustPressed(cfg.MenuKeys.TwoPlayer):
		ms.players = 2
	case inpututil.IsKeyJustPressed(cfg.MenuKeys.Start):
		ms.sceneChanger.ChangeScene(NewPlayScene(ms.sceneChanger, ms.deps, ms.players))
	case inpututil.IsKeyJustPressed(cfg.MenuKeys.Quit):
		ms.sceneChanger.Quit()
	}
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	w := float64(screen.Bounds().Dx())
	title := render.NewScreen(screen, nil, fonts.Title.Get())
	title.DrawText("SKYBREAKER", w/2-150, 120, cfg.White)

	body := render.NewScreen(screen, nil, fonts.HUD.Get())
	options := []string{"1  One player", "2  Two players"}
	for i, label := range options {
		clr := cfg.Gray
		if ms.players == i+1 {
			clr = cfg.Yellow
		}
		body.DrawText(label, w/2-100, 240+float64(i)*cfg.UI.LineHeight, clr)
	}
	body.DrawText("Enter to start, Esc to quit", w/2-150, 360, cfg.White)
}
