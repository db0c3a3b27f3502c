package config

import "image/color"

// Config holds general window configuration
type Config struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	TPS    int    `yaml:"tps"`
	Title  string `yaml:"title"`
}

// EdgeMode controls what happens when a mover leaves the canvas
type EdgeMode string

const (
	EdgeNone EdgeMode = "none" // keep going, possibly off screen
	EdgeWrap EdgeMode = "wrap" // re-enter from the opposite edge
)

// AttractionConfig contains all values for the gravitational attraction sketch
type AttractionConfig struct {
	// Field
	FieldRadius float64 `yaml:"field_radius"`
	Strength    float64 `yaml:"strength"`

	// Mover
	MaxSpeed    float64  `yaml:"max_speed"` // 0 = FieldRadius / 10
	StartX      float64  `yaml:"start_x"`
	StartY      float64  `yaml:"start_y"`
	TrailLength int      `yaml:"trail_length"`
	EdgeMode    EdgeMode `yaml:"edge_mode"`

	// Drawing
	MoverDiameter   float64 `yaml:"mover_diameter"`
	PointerDiameter float64 `yaml:"pointer_diameter"`
	StrokeWidth     float64 `yaml:"stroke_width"`

	BackgroundColor color.RGBA `yaml:"-"`
	FieldColor      color.RGBA `yaml:"-"`
	MoverColor      color.RGBA `yaml:"-"`
	PointerColor    color.RGBA `yaml:"-"`
	StrokeColor     color.RGBA `yaml:"-"`
}

// EffectiveMaxSpeed returns the velocity limit applied to movers.
func (a AttractionConfig) EffectiveMaxSpeed() float64 {
	if a.MaxSpeed > 0 {
		return a.MaxSpeed
	}
	return a.FieldRadius / 10
}

// PlatformerConfig contains all values for the red block platformer
type PlatformerConfig struct {
	// Physics
	Gravity   float64 `yaml:"gravity"`
	MoveAccel float64 `yaml:"move_accel"`
	JumpSpeed float64 `yaml:"jump_speed"`
	FrictionX float64 `yaml:"friction_x"` // multiplier per frame, 1 = none
	FrictionY float64 `yaml:"friction_y"`
	MaxSpeedX float64 `yaml:"max_speed_x"` // at most the floor thickness and cell size
	MaxSpeedY float64 `yaml:"max_speed_y"`

	// Player
	PlayerWidth   float64 `yaml:"player_width"`
	PlayerHeight  float64 `yaml:"player_height"`
	InitialSpeedX float64 `yaml:"initial_speed_x"`
	InitialSpeedY float64 `yaml:"initial_speed_y"`

	// World
	Level           string  `yaml:"level"`
	FloorThickness  float64 `yaml:"floor_thickness"`
	ClampHorizontal bool    `yaml:"clamp_horizontal"`
	CellSize        int     `yaml:"cell_size"`

	BackgroundColor color.RGBA `yaml:"-"`
	PlayerColor     color.RGBA `yaml:"-"`
	BlockColor      color.RGBA `yaml:"-"` // used when a block has no color property
}

// PauseConfig contains pause overlay configuration values
type PauseConfig struct {
	OverlayColor color.RGBA
	TextColor    color.RGBA
	HintColor    color.RGBA
	FadeSeconds  float32
	TitleY       float64
}

// MenuConfig contains main menu configuration values
type MenuConfig struct {
	BackgroundColor color.RGBA
	TitleColor      color.RGBA
	ButtonIdle      color.RGBA
	ButtonHover     color.RGBA
	ButtonPressed   color.RGBA
	ButtonText      color.RGBA
	Title           string
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Demo           DemoID // Skip menu and go directly to this demo
	ShowCollisions bool
	TextColor      color.RGBA
	OutlineColor   color.RGBA
	PlayerColor    color.RGBA
}

// Global configuration instances
var C *Config
var Attraction AttractionConfig
var Platformer PlatformerConfig
var Pause PauseConfig
var Menu MenuConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black        = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Grey         = color.RGBA{R: 127, G: 127, B: 127, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Amber        = color.RGBA{R: 255, G: 200, B: 0, A: 255}
	Cyan         = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	Teal         = color.RGBA{R: 0x1a, G: 0xa7, B: 0xc7, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
)

func init() {
	Reset()
}

// Reset restores every global to its built-in default.
func Reset() {
	C = &Config{
		Width:  1024,
		Height: 768,
		TPS:    60,
		Title:  "Sketchbook",
	}

	Attraction = AttractionConfig{
		FieldRadius: 300,
		Strength:    0.3,

		MaxSpeed:    0,
		StartX:      500,
		StartY:      599,
		TrailLength: 50,
		EdgeMode:    EdgeNone,

		MoverDiameter:   10,
		PointerDiameter: 20,
		StrokeWidth:     2,

		BackgroundColor: White,
		FieldColor:      color.RGBA{R: 255, G: 0, B: 0, A: 30},
		MoverColor:      Grey,
		PointerColor:    Amber,
		StrokeColor:     Black,
	}

	Platformer = PlatformerConfig{
		Gravity:   0.6,
		MoveAccel: 1,
		JumpSpeed: 12,
		FrictionX: 0.9,
		FrictionY: 1,
		MaxSpeedX: 12,
		MaxSpeedY: 16,

		PlayerWidth:   10,
		PlayerHeight:  10,
		InitialSpeedX: 10,
		InitialSpeedY: 0,

		Level:           "levels/blocks.tmx",
		FloorThickness:  16,
		ClampHorizontal: true,
		CellSize:        16,

		BackgroundColor: Teal,
		PlayerColor:     Red,
		BlockColor:      Black,
	}

	Pause = PauseConfig{
		OverlayColor: BlackOverlay,
		TextColor:    White,
		HintColor:    LightBlue,
		FadeSeconds:  0.2,
		TitleY:       0.4,
	}

	Menu = MenuConfig{
		BackgroundColor: color.RGBA{R: 20, G: 20, B: 30, A: 255},
		TitleColor:      White,
		ButtonIdle:      color.RGBA{R: 60, G: 60, B: 80, A: 255},
		ButtonHover:     color.RGBA{R: 80, G: 80, B: 120, A: 255},
		ButtonPressed:   color.RGBA{R: 40, G: 40, B: 60, A: 255},
		ButtonText:      White,
		Title:           "SKETCHBOOK",
	}

	Debug = DebugConfig{
		TextColor:    White,
		OutlineColor: Cyan,
		PlayerColor:  color.RGBA{R: 0, G: 0, B: 255, A: 255},
	}
}
