package assets

import (
	"bytes"
	"fmt"
	"io/fs"
	"path"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/rs/zerolog"
)

// ImageDir is the directory under the asset root holding sprite images.
const ImageDir = "images"

// ImageKeys lists the sprite keys the simulation draws with.
var ImageKeys = []string{
	"background",
	"player1",
	"player2",
	"enemy_normal",
	"enemy_special",
	"enemy_boss",
	"bullet",
	"enemy_bullet",
	"item_health",
	"item_weapon",
	"item_shield",
	"explosion",
}

// ImagePath returns the file an image key is read from.
func ImagePath(key string) string {
	return path.Join(ImageDir, key+".png")
}

// LoadImages reads every known sprite from fsys. Missing or undecodable
// images are skipped with a warning; the renderer draws a coloured
// rectangle in their place.
func LoadImages(fsys fs.FS, logger zerolog.Logger) map[string]*ebiten.Image {
	images := make(map[string]*ebiten.Image, len(ImageKeys))
	if fsys == nil {
		return images
	}

	for _, key := range ImageKeys {
		img, err := loadImage(fsys, ImagePath(key))
		if err != nil {
			logger.Warn().Err(err).Str("image", key).Msg("using fallback sprite")
			continue
		}
		images[key] = img
	}
	return images
}

func loadImage(fsys fs.FS, name string) (*ebiten.Image, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("failed to read image file %s: %w", name, err)
	}
	img, _, err := ebitenutil.NewImageFromReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", name, err)
	}
	return img, nil
}
