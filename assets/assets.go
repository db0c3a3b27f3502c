package assets

import (
	"embed"
	"fmt"
	"image/color"
	"strings"

	"github.com/lafriks/go-tiled"
)

var (
	//go:embed all:levels
	assetFS embed.FS
)

// BlockSpawn is a static block rectangle, top-left origin.
type BlockSpawn struct {
	Name                string
	X, Y, Width, Height float64
	Color               color.RGBA
	HasColor            bool // false when the map leaves the color to config
}

type PlayerSpawn struct {
	X float64
	Y float64
}

type Level struct {
	Blocks      []BlockSpawn
	PlayerSpawn PlayerSpawn
	HasSpawn    bool
	Name        string
	Width       int
	Height      int
}

// MustLoadLevel loads an embedded level and panics on failure. Embedded
// levels ship with the binary, so a failure here is a build defect.
func MustLoadLevel(levelPath string) Level {
	level, err := LoadLevel(levelPath)
	if err != nil {
		panic(err)
	}
	return level
}

// LoadLevel parses an embedded Tiled map into a Level.
func LoadLevel(levelPath string) (Level, error) {
	levelMap, err := tiled.LoadFile(levelPath, tiled.WithFileSystem(assetFS))
	if err != nil {
		return Level{}, fmt.Errorf("failed to load level %s: %w", levelPath, err)
	}
	return levelFromMap(levelPath, levelMap)
}

func levelFromMap(name string, levelMap *tiled.Map) (Level, error) {
	level := Level{
		Blocks: []BlockSpawn{},
		Name:   name,
		Width:  levelMap.Width * levelMap.TileWidth,
		Height: levelMap.Height * levelMap.TileHeight,
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case "Blocks":
			for _, o := range og.Objects {
				block := BlockSpawn{
					Name:   o.Name,
					X:      o.X,
					Y:      o.Y,
					Width:  o.Width,
					Height: o.Height,
				}
				if raw := o.Properties.GetString("color"); raw != "" {
					c, err := ParseHexColor(raw)
					if err != nil {
						return Level{}, fmt.Errorf("block %q in %s: %w", o.Name, name, err)
					}
					block.Color = c
					block.HasColor = true
				}
				level.Blocks = append(level.Blocks, block)
			}
		case "PlayerSpawn":
			// Only the first spawn is used; there is a single player.
			if len(og.Objects) > 0 && !level.HasSpawn {
				level.PlayerSpawn = PlayerSpawn{X: og.Objects[0].X, Y: og.Objects[0].Y}
				level.HasSpawn = true
			}
		}
	}

	if level.Width <= 0 || level.Height <= 0 {
		return Level{}, fmt.Errorf("level %s has no size", name)
	}
	return level, nil
}

// ParseHexColor accepts Tiled's #RGB, #ARGB, #RRGGBB and #AARRGGBB forms.
// Tiled stores straight alpha; the result is premultiplied.
func ParseHexColor(s string) (color.RGBA, error) {
	hc, err := tiled.ParseHexColor(strings.TrimSpace(s))
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	r, g, b, a := hc.RGBA()
	straight := color.NRGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
	return color.RGBAModel.Convert(straight).(color.RGBA), nil
}
