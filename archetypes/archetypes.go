package archetypes

import (
	"github.com/automoto/sketchbook/components"
	cfg "github.com/automoto/sketchbook/config"
	"github.com/automoto/sketchbook/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Block = newArchetype(
		tags.Block,
		components.Block,
		components.Object,
	)
	Floor = newArchetype(
		tags.Floor,
		components.Object,
	)
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.Physics,
	)
	Mover = newArchetype(
		tags.Mover,
		components.Mover,
		components.Trail,
	)
	Attractor = newArchetype(
		tags.Attractor,
		components.Attractor,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
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
