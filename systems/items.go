package systems

import (
	"github.com/automoto/skybreaker/components"
	"github.com/automoto/skybreaker/systems/factory"
	"github.com/automoto/skybreaker/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateItems advances falling collectibles. An item touching a living
// player's hitbox is applied to the lowest slot touching it.
func UpdateItems(ecs *ecs.ECS) {
	_, height := playfield(ecs)
	players := livingPlayers(ecs)

	var toRemove []*donburi.Entry
	for _, e := range sortedEntries(ecs, components.Item) {
		item := components.Item.Get(e)
		obj := components.Object.Get(e)
		obj.Y += item.FallSpeed
		obj.Update()

		if p := touchingPlayer(obj, players); p != nil {
			ApplyPickup(ecs, p, item.Kind)
			toRemove = append(toRemove, e)
			continue
		}
		if obj.Y > height {
			toRemove = append(toRemove, e)
		}
	}

	for _, e := range toRemove {
		factory.Destroy(ecs, e)
	}
}

func touchingPlayer(obj *components.ObjectData, players []*donburi.Entry) *donburi.Entry {
	check := obj.Check(0, 0, tags.ResolvPlayerHitbox)
	if check == nil {
		return nil
	}
	for _, p := range players {
		hb := components.Player.Get(p).Hitbox
		for _, o := range check.Objects {
			if o == hb && components.Overlaps(obj.Object, hb) {
				return p
			}
		}
	}
	return nil
}

// livingPlayers returns players with lives left, ordered by slot.
func livingPlayers(ecs *ecs.ECS) []*donburi.Entry {
	var players []*donburi.Entry
	for _, e := range sortedEntries(ecs, components.Player) {
		if components.Lives.Get(e).Alive() {
			players = append(players, e)
		}
	}
	return players
}
