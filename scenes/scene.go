package scenes

import (
	"fmt"

	cfg "github.com/automoto/sketchbook/config"
	"github.com/automoto/sketchbook/systems"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
	Quit()
}

// Scene is one screen of the game.
type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
	Layout(outsideWidth, outsideHeight int) (int, int)
}

// rememberDemo records a launched demo for the menu's continue button.
var rememberDemo = systems.RememberDemo

// NewStartScene builds the first scene: the menu, or the given demo
// when one is named on the command line.
func NewStartScene(sc SceneChanger, id cfg.DemoID) (Scene, error) {
	if id == cfg.DemoNone {
		return NewMenuScene(sc), nil
	}
	scene, err := NewDemoScene(sc, id)
	if err != nil {
		return nil, err
	}
	rememberDemo(id)
	return scene, nil
}

// NewDemoScene builds the scene for a demo.
func NewDemoScene(sc SceneChanger, id cfg.DemoID) (Scene, error) {
	switch id {
	case cfg.DemoAttraction:
		return NewAttractionScene(sc), nil
	case cfg.DemoPlatformer:
		return NewPlatformerScene(sc)
	}
	return nil, fmt.Errorf("%w: %q", cfg.ErrUnknownDemo, id)
}

// launchDemo switches to a demo and remembers it for the continue button.
func launchDemo(sc SceneChanger, id cfg.DemoID) {
	scene, err := NewDemoScene(sc, id)
	if err != nil {
		log.Error("cannot launch demo", "demo", id, "err", err)
		return
	}
	log.Debug("scene change", "demo", id)
	rememberDemo(id)
	sc.ChangeScene(scene)
}

// backToMenu returns to the main menu.
func backToMenu(sc SceneChanger) {
	log.Debug("scene change", "scene", "menu")
	sc.ChangeScene(NewMenuScene(sc))
}
