package ui

import (
	"bytes"
	"fmt"

	cfg "github.com/automoto/sketchbook/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// MenuUI is the demo picker shown at startup.
type MenuUI struct {
	UI *ebitenui.UI

	OnSelect func(id cfg.DemoID)
	OnExit   func()

	// LastDemo adds a continue button when set.
	LastDemo cfg.DemoID

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

func NewMenuUI(lastDemo cfg.DemoID, onSelect func(id cfg.DemoID), onExit func()) (*MenuUI, error) {
	ui := &MenuUI{
		OnSelect: onSelect,
		OnExit:   onExit,
		LastDemo: lastDemo,
	}
	if err := ui.loadFonts(); err != nil {
		return nil, err
	}
	ui.buildUI()
	return ui, nil
}

func (ui *MenuUI) loadFonts() error {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return fmt.Errorf("load UI font: %w", err)
	}

	ui.titleFace = &text.GoTextFace{Source: fontSource, Size: 32}
	ui.normalFace = &text.GoTextFace{Source: fontSource, Size: 16}
	ui.smallFace = &text.GoTextFace{Source: fontSource, Size: 11}
	return nil
}

// menuEntry is one button in the menu column.
type menuEntry struct {
	label   string
	onClick func()
}

// entries lists the buttons in display order.
func (ui *MenuUI) entries() []menuEntry {
	var out []menuEntry
	if ui.LastDemo != cfg.DemoNone {
		last := ui.LastDemo
		out = append(out, menuEntry{
			label:   "Continue: " + last.Title(),
			onClick: func() { ui.selectDemo(last) },
		})
	}
	for _, id := range cfg.Demos {
		id := id
		out = append(out, menuEntry{
			label:   id.Title(),
			onClick: func() { ui.selectDemo(id) },
		})
	}
	out = append(out, menuEntry{
		label: "Exit",
		onClick: func() {
			if ui.OnExit != nil {
				ui.OnExit()
			}
		},
	})
	return out
}

func (ui *MenuUI) selectDemo(id cfg.DemoID) {
	if ui.OnSelect != nil {
		ui.OnSelect(id)
	}
}

func (ui *MenuUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.Menu.BackgroundColor)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(12)),
			widget.RowLayoutOpts.Spacing(10),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	titleLabel := widget.NewLabel(
		widget.LabelOpts.Text(cfg.Menu.Title, &ui.titleFace, &widget.LabelColor{
			Idle: cfg.Menu.TitleColor,
		}),
	)
	contentContainer.AddChild(titleLabel)

	for _, entry := range ui.entries() {
		contentContainer.AddChild(ui.buildButton(entry))
	}

	hintLabel := widget.NewLabel(
		widget.LabelOpts.Text("1 / 2: launch demo   Esc: exit", &ui.smallFace, &widget.LabelColor{
			Idle: cfg.Menu.TitleColor,
		}),
	)
	contentContainer.AddChild(hintLabel)

	rootContainer.AddChild(contentContainer)

	ui.UI = &ebitenui.UI{Container: rootContainer}
}

func (ui *MenuUI) buildButton(entry menuEntry) *widget.Button {
	onClick := entry.onClick
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(260, 34)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    image.NewNineSliceColor(cfg.Menu.ButtonIdle),
			Hover:   image.NewNineSliceColor(cfg.Menu.ButtonHover),
			Pressed: image.NewNineSliceColor(cfg.Menu.ButtonPressed),
		}),
		widget.ButtonOpts.Text(entry.label, &ui.normalFace, &widget.ButtonTextColor{
			Idle:    cfg.Menu.ButtonText,
			Hover:   cfg.Menu.ButtonText,
			Pressed: cfg.Menu.ButtonText,
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func (ui *MenuUI) Update() {
	ui.UI.Update()
}

func (ui *MenuUI) Draw(screen *ebiten.Image) {
	ui.UI.Draw(screen)
}
