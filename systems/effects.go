package systems

import (
	"github.com/automoto/skybreaker/components"
	"github.com/automoto/skybreaker/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects processes transient visual state (explosion fades, auto-destroy, background scroll)
func UpdateEffects(ecs *ecs.ECS) {
	updateExplosions(ecs)
	updateAutoDestroy(ecs)
	updateBackground(ecs)
}

func updateExplosions(ecs *ecs.ECS) {
	components.Explosion.Each(ecs.World, func(e *donburi.Entry) {
		ex := components.Explosion.Get(e)
		if ex.Fade == nil {
			return
		}
		alpha, _ := ex.Fade.Update(1)
		ex.Alpha = float64(alpha)
	})
}

// updateAutoDestroy removes entities whose lifetime ran out
func updateAutoDestroy(ecs *ecs.ECS) {
	var toDestroy []*donburi.Entry

	components.AutoDestroy.Each(ecs.World, func(e *donburi.Entry) {
		ad := components.AutoDestroy.Get(e)
		ad.FramesRemaining--
		if ad.FramesRemaining <= 0 {
			toDestroy = append(toDestroy, e)
		}
	})

	for _, e := range toDestroy {
		factory.Destroy(ecs, e)
	}
}

func updateBackground(ecs *ecs.ECS) {
	components.Background.Each(ecs.World, func(e *donburi.Entry) {
		bg := components.Background.Get(e)
		bg.Y1 += bg.Speed
		bg.Y2 += bg.Speed
		if bg.Y1 >= bg.Height {
			bg.Y1 = -bg.Height
		}
		if bg.Y2 >= bg.Height {
			bg.Y2 = -bg.Height
		}
	})
}
