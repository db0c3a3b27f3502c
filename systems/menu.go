package systems

import (
	cfg "github.com/automoto/sketchbook/config"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateMenuShortcuts creates the menu keyboard system: digit keys
// launch a demo, back exits.
func NewUpdateMenuShortcuts(onSelect func(cfg.DemoID), onExit func()) ecs.System {
	return func(e *ecs.ECS) {
		input := getOrCreateInput(e)

		switch {
		case GetAction(input, cfg.ActionSelectAttraction).JustPressed:
			onSelect(cfg.DemoAttraction)
		case GetAction(input, cfg.ActionSelectPlatformer).JustPressed:
			onSelect(cfg.DemoPlatformer)
		case GetAction(input, cfg.ActionBack).JustPressed:
			log.Debug("exit requested from menu")
			onExit()
		}
	}
}

// NewUpdateBack creates a system that calls onBack when the back action
// is pressed. Demo scenes use it to return to the menu.
func NewUpdateBack(onBack func()) ecs.System {
	return func(e *ecs.ECS) {
		input := getOrCreateInput(e)
		if GetAction(input, cfg.ActionBack).JustPressed {
			onBack()
		}
	}
}
