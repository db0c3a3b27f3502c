package factory

import (
	"testing"

	"github.com/automoto/sketchbook/components"
	cfg "github.com/automoto/sketchbook/config"
	"github.com/automoto/sketchbook/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func TestCreateLevelFromFile(t *testing.T) {
	cfg.Reset()
	t.Cleanup(cfg.Reset)
	e := ecs.NewECS(donburi.NewWorld())

	CreateLevelFromFile(e, cfg.Platformer.Level)

	spaceEntry, ok := components.Space.First(e.World)
	require.True(t, ok)
	space := components.Space.Get(spaceEntry)
	// four blocks, the floor and the player
	assert.Len(t, space.Objects(), 6)

	var colors []uint8
	tags.Block.Each(e.World, func(entry *donburi.Entry) {
		colors = append(colors, components.Block.Get(entry).Color.A)
	})
	assert.Len(t, colors, 4)

	floorEntry, ok := tags.Floor.First(e.World)
	require.True(t, ok)
	floor := components.Object.Get(floorEntry)
	assert.Equal(t, 500.0, floor.Y)
	assert.Equal(t, 500.0, floor.W)
	assert.True(t, floor.HasTags(tags.ResolvSolid))

	playerEntry, ok := tags.Player.First(e.World)
	require.True(t, ok)
	player := components.Object.Get(playerEntry)
	assert.Equal(t, 30.0, player.X)
	assert.Equal(t, 20.0, player.Y)
	assert.Equal(t, cfg.Platformer.PlayerWidth, player.W)

	physics := components.Physics.Get(playerEntry)
	assert.Equal(t, cfg.Platformer.InitialSpeedX, physics.Speed.X)
	assert.Equal(t, cfg.Platformer.Gravity, physics.Gravity)
}

func TestCreateMover(t *testing.T) {
	cfg.Reset()
	t.Cleanup(cfg.Reset)
	e := ecs.NewECS(donburi.NewWorld())

	entry := CreateMover(e, 1, 2)

	mover := components.Mover.Get(entry)
	assert.Equal(t, 1.0, mover.Position.X)
	assert.Equal(t, mover.Position, mover.Start)
	assert.Equal(t, cfg.Attraction.TrailLength, components.Trail.Get(entry).Length)
}
