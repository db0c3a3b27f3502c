package factory

import (
	"github.com/automoto/sketchbook/archetypes"
	"github.com/automoto/sketchbook/assets"
	"github.com/automoto/sketchbook/components"
	cfg "github.com/automoto/sketchbook/config"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel registers an already-loaded level and builds its world:
// collision space, floor, blocks and the player.
func CreateLevel(ecs *ecs.ECS, level assets.Level) *donburi.Entry {
	entry := archetypes.Level.Spawn(ecs)
	components.Level.Set(entry, &components.LevelData{CurrentLevel: &level})

	cell := cfg.Platformer.CellSize
	// Pad by whole cells so the right edge and the floor below the ground
	// line are indexed.
	CreateSpace(ecs, level.Width+cell, level.Height+2*cell, cell, cell)

	CreateFloor(ecs, float64(level.Height), float64(level.Width), cfg.Platformer.FloorThickness)

	for _, b := range level.Blocks {
		c := cfg.Platformer.BlockColor
		if b.HasColor {
			c = b.Color
		}
		CreateBlock(ecs, b.X, b.Y, b.Width, b.Height, c)
	}

	spawn := level.PlayerSpawn
	if !level.HasSpawn {
		log.Warn("level has no player spawn, using origin", "level", level.Name)
	}
	CreatePlayer(ecs, spawn.X, spawn.Y)

	log.Debug("level created", "level", level.Name, "blocks", len(level.Blocks),
		"width", level.Width, "height", level.Height)
	return entry
}

// CreateLevelFromFile loads an embedded level by path and builds it.
func CreateLevelFromFile(ecs *ecs.ECS, path string) *donburi.Entry {
	return CreateLevel(ecs, assets.MustLoadLevel(path))
}
