package factory

import (
	"github.com/automoto/skybreaker/archetypes"
	"github.com/automoto/skybreaker/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateSpace(ecs *ecs.ECS, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	spaceData := resolv.NewSpace(width, height, cellWidth, cellHeight)
	components.Space.Set(space, spaceData)
	return space
}

// attachObject creates a footprint for e, registers it in the space and
// stores it on the Object component.
func attachObject(ecs *ecs.ECS, e *donburi.Entry, x, y, w, h float64, tags ...string) *resolv.Object {
	obj := resolv.NewObject(x, y, w, h, tags...)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = e
	components.Object.Set(e, &components.ObjectData{Object: obj})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
	return obj
}

// Destroy unregisters every collision object owned by e and removes it from
// the world. Invalid entries are ignored.
func Destroy(ecs *ecs.ECS, e *donburi.Entry) {
	if e == nil || !e.Valid() {
		return
	}
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		space := components.Space.Get(spaceEntry)
		if obj := components.Object.Get(e); obj != nil && obj.Object != nil {
			space.Remove(obj.Object)
		}
		if e.HasComponent(components.Player) {
			if hb := components.Player.Get(e).Hitbox; hb != nil {
				space.Remove(hb)
			}
		}
	}
	ecs.World.Remove(e.Entity())
}
