package fonts

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	HUD   FontName = "hud"
	Title FontName = "title"
)

const (
	hudSize   = 24
	titleSize = 48
)

func (f FontName) Get() font.Face {
	return getFont(f)
}

var (
	fonts = map[FontName]font.Face{}
)

// LoadDefaults registers the built-in faces.
func LoadDefaults() error {
	if err := LoadFontWithSize(HUD, goregular.TTF, hudSize); err != nil {
		return err
	}
	return LoadFontWithSize(Title, goregular.TTF, titleSize)
}

func LoadFontWithSize(name FontName, ttf []byte, size float64) error {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("failed to parse font %s: %w", name, err)
	}
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
	return nil
}

// Loaded reports whether a face has been registered.
func Loaded(name FontName) bool {
	_, ok := fonts[name]
	return ok
}

func getFont(name FontName) font.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}
