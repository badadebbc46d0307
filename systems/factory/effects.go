package factory

import (
	"github.com/automoto/skybreaker/archetypes"
	"github.com/automoto/skybreaker/components"
	cfg "github.com/automoto/skybreaker/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const explosionSize = 64

// CreateExplosion spawns a short-lived explosion centred on (cx, cy). It
// has a footprint for drawing only; nothing collides with it.
func CreateExplosion(ecs *ecs.ECS, cx, cy float64) *donburi.Entry {
	ex := archetypes.Explosion.Spawn(ecs)
	attachObject(ecs, ex, cx-explosionSize/2, cy-explosionSize/2, explosionSize, explosionSize)

	frames := cfg.Effects.ExplosionFrames
	components.Explosion.SetValue(ex, components.ExplosionData{
		Fade:  gween.New(1, 0, float32(frames), ease.InQuad),
		Alpha: 1,
	})
	components.AutoDestroy.SetValue(ex, components.AutoDestroyData{
		FramesRemaining: frames,
	})
	components.Sprite.SetValue(ex, components.SpriteData{
		Key:      "explosion",
		Fallback: cfg.ExplosionFx,
	})
	return ex
}
