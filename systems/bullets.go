package systems

import (
	"github.com/automoto/skybreaker/components"
	cfg "github.com/automoto/skybreaker/config"
	"github.com/automoto/skybreaker/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateBullets moves every projectile and removes those that left the
// playfield.
func UpdateBullets(ecs *ecs.ECS) {
	width, height := playfield(ecs)
	var toRemove []*donburi.Entry

	components.Bullet.Each(ecs.World, func(e *donburi.Entry) {
		vel := components.Velocity.Get(e)
		obj := components.Object.Get(e)

		obj.X += vel.X
		obj.Y += vel.Y
		obj.Update()

		if bulletOffScreen(components.Bullet.Get(e).Side, obj, width, height) {
			toRemove = append(toRemove, e)
		}
	})

	for _, e := range toRemove {
		factory.Destroy(ecs, e)
	}
}

// Player bullets only travel up, so they expire through the top edge.
func bulletOffScreen(side cfg.Side, obj *components.ObjectData, width, height float64) bool {
	if side == cfg.SidePlayer {
		return obj.Y+obj.H < 0
	}
	return obj.Y > height || obj.Y+obj.H < 0 || obj.X > width || obj.X+obj.W < 0
}
