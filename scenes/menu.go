package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/automoto/sketchbook/config"
	"github.com/automoto/sketchbook/systems"
	"github.com/automoto/sketchbook/ui"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// MenuScene displays the main menu
type MenuScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	menuUI       *ui.MenuUI
	once         sync.Once

	// Set by UI callbacks, applied after the UI update finishes.
	pendingDemo cfg.DemoID
	shouldExit  bool
}

// NewMenuScene creates a new menu scene
func NewMenuScene(sc SceneChanger) *MenuScene {
	return &MenuScene{sceneChanger: sc}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.ecs.Update()
	if ms.menuUI != nil {
		ms.menuUI.Update()
	}

	switch {
	case ms.shouldExit:
		ms.sceneChanger.Quit()
	case ms.pendingDemo != cfg.DemoNone:
		id := ms.pendingDemo
		ms.pendingDemo = cfg.DemoNone
		launchDemo(ms.sceneChanger, id)
	}
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.menuUI != nil {
		ms.menuUI.Draw(screen)
	}
}

func (ms *MenuScene) Layout(outsideWidth, outsideHeight int) (int, int) {
	return cfg.C.Width, cfg.C.Height
}

func (ms *MenuScene) configure() {
	ms.ecs = ecs.NewECS(donburi.NewWorld())

	onSelect := func(id cfg.DemoID) { ms.pendingDemo = id }
	onExit := func() { ms.shouldExit = true }

	// Minimal systems for menu
	ms.ecs.AddSystem(systems.UpdateInput)
	ms.ecs.AddSystem(systems.UpdateFullscreenToggle)
	ms.ecs.AddSystem(systems.NewUpdateMenuShortcuts(onSelect, onExit))

	menuUI, err := ui.NewMenuUI(lastDemo(), onSelect, onExit)
	if err != nil {
		// Keyboard shortcuts still work without the buttons.
		log.Error("menu UI unavailable", "err", err)
		return
	}
	ms.menuUI = menuUI
}

// lastDemo returns the saved demo if it still names a known one.
func lastDemo() cfg.DemoID {
	saved, _ := systems.LoadSettings()
	if saved == nil {
		return cfg.DemoNone
	}
	id, err := cfg.ParseDemo(string(saved.LastDemo))
	if err != nil {
		log.Warn("ignoring saved demo", "err", err)
		return cfg.DemoNone
	}
	return id
}
