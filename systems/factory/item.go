package factory

import (
	"image/color"

	"github.com/automoto/skybreaker/archetypes"
	"github.com/automoto/skybreaker/components"
	cfg "github.com/automoto/skybreaker/config"
	"github.com/automoto/skybreaker/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var itemColors = map[cfg.ItemKind]color.RGBA{
	cfg.ItemHealth: cfg.Red,
	cfg.ItemShield: cfg.Green,
	cfg.ItemWeapon: cfg.Blue,
}

// CreateItem spawns a falling collectible centred on (cx, cy).
func CreateItem(ecs *ecs.ECS, kind cfg.ItemKind, cx, cy float64) *donburi.Entry {
	it := archetypes.Item.Spawn(ecs)

	size := cfg.Item.Size
	attachObject(ecs, it, cx-size/2, cy-size/2, size, size, tags.ResolvItem)

	components.Item.SetValue(it, components.ItemData{
		Kind:      kind,
		FallSpeed: cfg.Item.FallSpeed,
	})
	components.Sprite.SetValue(it, components.SpriteData{
		Key:      "item_" + kind.String(),
		Fallback: itemColors[kind],
		Outline:  true,
	})
	return it
}
