package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// AutoDestroyData marks entities that should be destroyed after a number of ticks
type AutoDestroyData struct {
	FramesRemaining int
}

var AutoDestroy = donburi.NewComponentType[AutoDestroyData]()

// ExplosionData fades an explosion out over its lifetime.
type ExplosionData struct {
	Fade  *gween.Tween
	Alpha float64
}

var Explosion = donburi.NewComponentType[ExplosionData]()

// BackgroundData holds two stacked copies that scroll downward and wrap.
type BackgroundData struct {
	Y1, Y2 float64
	Speed  float64
	Height float64
}

var Background = donburi.NewComponentType[BackgroundData]()
