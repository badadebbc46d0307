package components

import (
	"image/color"

	"github.com/yohamta/donburi"
)

// SpriteData names the image drawn for an entity and the colour used when
// that image is missing.
type SpriteData struct {
	Key      string
	Fallback color.RGBA
	Outline  bool
}

var Sprite = donburi.NewComponentType[SpriteData]()
