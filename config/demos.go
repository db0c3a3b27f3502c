package config

import (
	"errors"
	"fmt"
	"strings"
)

// DemoID names one of the runnable demos
type DemoID string

const (
	DemoNone       DemoID = ""
	DemoAttraction DemoID = "attraction"
	DemoPlatformer DemoID = "platformer"
)

// ErrUnknownDemo is returned when a demo name does not match any demo.
var ErrUnknownDemo = errors.New("unknown demo")

// Demos lists every demo in menu order.
var Demos = []DemoID{DemoAttraction, DemoPlatformer}

// Title returns the human readable name shown in menus.
func (d DemoID) Title() string {
	switch d {
	case DemoAttraction:
		return "Gravitational Attraction"
	case DemoPlatformer:
		return "Red Block Platformer"
	}
	return string(d)
}

// ParseDemo resolves a demo name, case-insensitively. The empty string
// parses to DemoNone.
func ParseDemo(name string) (DemoID, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return DemoNone, nil
	}
	for _, d := range Demos {
		if string(d) == name {
			return d, nil
		}
	}
	return DemoNone, fmt.Errorf("%w: %q", ErrUnknownDemo, name)
}
