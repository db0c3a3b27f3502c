package scenes

import (
	"fmt"
	"sync"

	"github.com/automoto/sketchbook/assets"
	cfg "github.com/automoto/sketchbook/config"
	"github.com/automoto/sketchbook/systems"
	"github.com/automoto/sketchbook/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const platformerHints = "Arrows: move/jump   R: reset   P: pause\nF3: debug   Esc: menu"

// PlatformerScene runs the red block platformer at the level's own size.
type PlatformerScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	level        assets.Level
	once         sync.Once
}

// NewPlatformerScene loads the configured level up front so Layout knows
// the world size before the first update.
func NewPlatformerScene(sc SceneChanger) (*PlatformerScene, error) {
	level, err := assets.LoadLevel(cfg.Platformer.Level)
	if err != nil {
		return nil, fmt.Errorf("platformer scene: %w", err)
	}
	for _, b := range level.Blocks {
		if err := cfg.Platformer.CheckSolidExtent(b.Name, b.Width, b.Height); err != nil {
			return nil, fmt.Errorf("platformer scene %s: %w", level.Name, err)
		}
	}
	return &PlatformerScene{sceneChanger: sc, level: level}, nil
}

func (ps *PlatformerScene) Update() {
	ps.once.Do(ps.configure)
	ps.ecs.Update()
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	if ps.ecs == nil {
		screen.Fill(cfg.Platformer.BackgroundColor)
		return
	}
	ps.ecs.Draw(screen)
}

func (ps *PlatformerScene) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ps.level.Width, ps.level.Height
}

func (ps *PlatformerScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdatePause)
	ecs.AddSystem(systems.UpdateDebugToggle)
	ecs.AddSystem(systems.UpdateFullscreenToggle)
	ecs.AddSystem(systems.NewUpdateBack(func() { backToMenu(ps.sceneChanger) }))

	// Gameplay systems (skipped while paused)
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdatePlayer))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdatePhysics))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateCollisions))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateObjects))

	ecs.AddRenderer(cfg.Default, systems.DrawLevel)
	ecs.AddRenderer(cfg.Default, systems.DrawPlayer)
	ecs.AddRenderer(cfg.Default, systems.NewDrawHints(platformerHints, cfg.White))
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ecs.AddRenderer(cfg.Overlay, systems.DrawPause)

	ps.ecs = ecs

	factory.CreateLevel(ps.ecs, ps.level)
}
