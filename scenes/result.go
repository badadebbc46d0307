package scenes

import (
	"fmt"
	"image/color"

	cfg "github.com/automoto/skybreaker/config"
	"github.com/automoto/skybreaker/fonts"
	"github.com/automoto/skybreaker/records"
	"github.com/automoto/skybreaker/render"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// ResultScene shows how the round ended
type ResultScene struct {
	sceneChanger SceneChanger
	deps         *Deps
	players      int
	result       records.Result

	best    records.Records
	newBest bool
	tracked bool
}

// NewResultScene records the round, when a records store is configured,
// and shows the outcome.
func NewResultScene(sc SceneChanger, deps *Deps, players int, result records.Result) *ResultScene {
	rs := &ResultScene{
		sceneChanger: sc,
		deps:         deps,
		players:      players,
		result:       result,
	}
	if deps.Records != nil {
		best, newBest, err := deps.Records.Add(result)
		if err != nil {
			deps.Logger.Warn().Err(err).Msg("could not save records")
		}
		rs.best, rs.newBest, rs.tracked = best, newBest, true
	}
	return rs
}

func (rs *ResultScene) Update() {
	switch {
	case inpututil.IsKeyJustPressed(cfg.MenuKeys.Restart):
		rs.sceneChanger.ChangeScene(NewPlayScene(rs.sceneChanger, rs.deps, rs.players))
	case inpututil.IsKeyJustPressed(cfg.MenuKeys.Menu):
		rs.sceneChanger.ChangeScene(NewMenuScene(rs.sceneChanger, rs.deps))
	case inpututil.IsKeyJustPressed(cfg.MenuKeys.Quit):
		rs.sceneChanger.Quit()
	}
}

func (rs *ResultScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	w := float64(screen.Bounds().Dx())

	headline, clr := "GAME OVER", cfg.Red
	if rs.result.Victory {
		headline, clr = "VICTORY", cfg.Yellow
	}
	render.NewScreen(screen, nil, fonts.Title.Get()).DrawText(headline, w/2-120, 140, clr)

	body := render.NewScreen(screen, nil, fonts.HUD.Get())
	y := 240.0
	for i, score := range rs.result.Scores {
		body.DrawText(fmt.Sprintf("P%d Score: %d", i+1, score), w/2-100, y, cfg.White)
		y += cfg.UI.LineHeight
	}
	if rs.tracked {
		best := fmt.Sprintf("Best: %d", rs.best.BestScore)
		if rs.newBest {
			best += "  NEW BEST"
		}
		body.DrawText(best, w/2-100, y, cfg.Yellow)
		y += cfg.UI.LineHeight
	}
	body.DrawText("R restart, M menu, Esc quit", w/2-150, y+20, cfg.White)
}
