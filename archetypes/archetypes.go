package archetypes

import (
	"github.com/automoto/skybreaker/components"
	cfg "github.com/automoto/skybreaker/config"
	"github.com/automoto/skybreaker/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.Physics,
		components.Lives,
		components.Shield,
		components.Invincible,
		components.PlayerInput,
		components.Sprite,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.Object,
		components.Health,
		components.Sprite,
	)
	Boss = newArchetype(
		tags.Enemy,
		tags.Boss,
		components.Enemy,
		components.Boss,
		components.Object,
		components.Health,
		components.Physics,
		components.Sprite,
	)
	PlayerBullet = newArchetype(
		tags.PlayerBullet,
		components.Bullet,
		components.Object,
		components.Velocity,
		components.Sprite,
	)
	EnemyBullet = newArchetype(
		tags.EnemyBullet,
		components.Bullet,
		components.Object,
		components.Velocity,
		components.Sprite,
	)
	Item = newArchetype(
		tags.Item,
		components.Item,
		components.Object,
		components.Sprite,
	)
	Explosion = newArchetype(
		tags.Explosion,
		components.Explosion,
		components.AutoDestroy,
		components.Object,
		components.Sprite,
	)
	Space = newArchetype(
		components.Space,
	)
	Encounter = newArchetype(
		components.Encounter,
	)
	Background = newArchetype(
		components.Background,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
