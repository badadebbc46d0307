package systems

import (
	"image/color"

	"github.com/automoto/skybreaker/components"
	cfg "github.com/automoto/skybreaker/config"
	"github.com/automoto/skybreaker/render"
	"github.com/automoto/skybreaker/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi/ecs"
)

// debugColor picks the outline for a collision footprint by its tag.
func debugColor(obj *resolv.Object) color.RGBA {
	switch {
	case obj.HasTags(tags.ResolvPlayerHitbox):
		return cfg.White
	case obj.HasTags(tags.ResolvPlayer):
		return cfg.Blue
	case obj.HasTags(tags.ResolvEnemy):
		return cfg.Red
	case obj.HasTags(tags.ResolvPlayerBullet) || obj.HasTags(tags.ResolvEnemyBullet):
		return cfg.Yellow
	case obj.HasTags(tags.ResolvItem):
		return cfg.Green
	}
	return cfg.ShieldCyan
}

// DrawDebug outlines every footprint registered in the collision space,
// player hitboxes included.
func DrawDebug(ecs *ecs.ECS, sink render.Sink) {
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	for _, obj := range components.Space.Get(spaceEntry).Objects() {
		sink.StrokeRect(obj.X, obj.Y, obj.W, obj.H, 1, debugColor(obj))
	}
}
