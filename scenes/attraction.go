package scenes

import (
	"sync"

	cfg "github.com/automoto/sketchbook/config"
	"github.com/automoto/sketchbook/systems"
	"github.com/automoto/sketchbook/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const attractionHints = "Move the pointer to attract   R: reset   P: pause   F3: debug   Esc: menu"

// AttractionScene runs the gravitational attraction sketch. The canvas
// follows the window size.
type AttractionScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	once         sync.Once

	width, height int
}

func NewAttractionScene(sc SceneChanger) *AttractionScene {
	return &AttractionScene{
		sceneChanger: sc,
		width:        cfg.C.Width,
		height:       cfg.C.Height,
	}
}

func (as *AttractionScene) Update() {
	as.once.Do(as.configure)
	as.ecs.Update()
}

func (as *AttractionScene) Draw(screen *ebiten.Image) {
	if as.ecs == nil {
		screen.Fill(cfg.Attraction.BackgroundColor)
		return
	}
	as.ecs.Draw(screen)
}

func (as *AttractionScene) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 {
		as.width, as.height = outsideWidth, outsideHeight
	}
	return as.width, as.height
}

func (as *AttractionScene) bounds() (float64, float64) {
	return float64(as.width), float64(as.height)
}

func (as *AttractionScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdatePause)
	ecs.AddSystem(systems.UpdateDebugToggle)
	ecs.AddSystem(systems.UpdateFullscreenToggle)
	ecs.AddSystem(systems.NewUpdateBack(func() { backToMenu(as.sceneChanger) }))

	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateMoverReset))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateAttractor))
	ecs.AddSystem(systems.WithPauseCheck(systems.NewUpdateMovers(as.bounds)))

	ecs.AddRenderer(cfg.Default, systems.DrawAttractionBackground)
	ecs.AddRenderer(cfg.Default, systems.DrawTrails)
	ecs.AddRenderer(cfg.Default, systems.DrawField)
	ecs.AddRenderer(cfg.Default, systems.DrawMovers)
	ecs.AddRenderer(cfg.Default, systems.DrawPointer)
	ecs.AddRenderer(cfg.Default, systems.NewDrawHints(attractionHints, cfg.Attraction.StrokeColor))
	ecs.AddRenderer(cfg.Default, systems.DrawAttractionDebug)
	ecs.AddRenderer(cfg.Overlay, systems.DrawPause)

	as.ecs = ecs

	factory.CreateAttractor(as.ecs)
	factory.CreateMover(as.ecs, cfg.Attraction.StartX, cfg.Attraction.StartY)
}
