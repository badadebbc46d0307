package scenes

import (
	"github.com/automoto/skybreaker/assets"
	cfg "github.com/automoto/skybreaker/config"
	"github.com/automoto/skybreaker/records"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
	Quit()
}

// Deps are the long-lived collaborators shared by every scene.
type Deps struct {
	Settings *cfg.Loader
	Images   map[string]*ebiten.Image
	Sounds   *assets.SoundBank
	Records  *records.Store // nil disables best-score tracking
	Logger   zerolog.Logger
	Seed     int64 // zero picks a seed per round
}
