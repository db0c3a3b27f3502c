package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

const (
	userConfigDir  = ".sketchbook"
	configFileName = "sketchbook.yaml"
	localConfigDir = "configs"
)

// fileConfig mirrors the YAML layout. Sections left out of the file keep
// their current values.
type fileConfig struct {
	Window     *Config           `yaml:"window"`
	Attraction *AttractionConfig `yaml:"attraction"`
	Platformer *PlatformerConfig `yaml:"platformer"`
}

// Load overlays a YAML config file onto the current globals.
// Search order: customPath -> ~/.sketchbook/sketchbook.yaml -> ./configs/sketchbook.yaml -> defaults.
// It returns the path that was applied, or "" when only defaults are in use.
// Only a failing customPath is an error; the other locations are best-effort.
func Load(customPath string) (string, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return "", fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := Apply(data); err != nil {
			return "", fmt.Errorf("failed to apply config %s: %w", customPath, err)
		}
		return customPath, nil
	}

	for _, path := range searchPaths() {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if err := Apply(data); err != nil {
			log.Warn("ignoring config file", "path", path, "err", err)
			continue
		}
		return path, nil
	}

	return "", nil
}

// Apply decodes YAML onto copies of the globals, validates the result and
// only then commits it.
func Apply(data []byte) error {
	window := *C
	attraction := Attraction
	platformer := Platformer

	fc := fileConfig{
		Window:     &window,
		Attraction: &attraction,
		Platformer: &platformer,
	}
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}
	if err := validate(&window, &attraction, &platformer); err != nil {
		return err
	}

	C = &window
	Attraction = attraction
	Platformer = platformer
	return nil
}

// Validate checks the current globals.
func Validate() error {
	return validate(C, &Attraction, &Platformer)
}

func validate(c *Config, a *AttractionConfig, p *PlatformerConfig) error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
		}
	}

	check(c.Width > 0 && c.Height > 0, "window size must be positive, got %dx%d", c.Width, c.Height)
	check(c.TPS > 0, "tps must be positive, got %d", c.TPS)

	check(a.FieldRadius > 0, "attraction.field_radius must be positive, got %v", a.FieldRadius)
	check(a.MaxSpeed >= 0, "attraction.max_speed must not be negative, got %v", a.MaxSpeed)
	check(a.TrailLength >= 0, "attraction.trail_length must not be negative, got %d", a.TrailLength)
	check(a.EdgeMode == EdgeNone || a.EdgeMode == EdgeWrap, "attraction.edge_mode must be %q or %q, got %q", EdgeNone, EdgeWrap, a.EdgeMode)

	check(p.PlayerWidth > 0 && p.PlayerHeight > 0, "platformer player size must be positive")
	check(p.FrictionX >= 0 && p.FrictionX <= 1, "platformer.friction_x must be within [0, 1], got %v", p.FrictionX)
	check(p.FrictionY >= 0 && p.FrictionY <= 1, "platformer.friction_y must be within [0, 1], got %v", p.FrictionY)
	check(p.CellSize > 0, "platformer.cell_size must be positive, got %d", p.CellSize)
	check(p.FloorThickness > 0, "platformer.floor_thickness must be positive, got %v", p.FloorThickness)
	// Overlap is only checked at the end of a step, so a step longer than
	// the thinnest solid could pass through it.
	limit := min(p.FloorThickness, float64(p.CellSize))
	check(p.MaxSpeedX > 0 && p.MaxSpeedX <= limit,
		"platformer.max_speed_x must be within (0, %v], got %v", limit, p.MaxSpeedX)
	check(p.MaxSpeedY > 0 && p.MaxSpeedY <= limit,
		"platformer.max_speed_y must be within (0, %v], got %v", limit, p.MaxSpeedY)
	check(p.Level != "", "platformer.level must be set")

	return errors.Join(errs...)
}

// CheckSolidExtent reports a solid the player could pass through in a
// single capped step.
func (p PlatformerConfig) CheckSolidExtent(name string, width, height float64) error {
	if width < p.MaxSpeedX || height < p.MaxSpeedY {
		return fmt.Errorf("%w: solid %q is %vx%v, thinner than the %vx%v speed cap",
			ErrInvalidConfig, name, width, height, p.MaxSpeedX, p.MaxSpeedY)
	}
	return nil
}

func searchPaths() []string {
	var paths []string
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, userConfigDir, configFileName))
	}
	return append(paths, filepath.Join(localConfigDir, configFileName))
}
