package tags

import "github.com/yohamta/donburi"

var (
	Player    = donburi.NewTag().SetName("Player")
	Block     = donburi.NewTag().SetName("Block")
	Floor     = donburi.NewTag().SetName("Floor")
	Mover     = donburi.NewTag().SetName("Mover")
	Attractor = donburi.NewTag().SetName("Attractor")
)

// Resolv tags for physics collision
const (
	ResolvSolid  = "solid"
	ResolvBlock  = "block"
	ResolvFloor  = "floor"
	ResolvPlayer = "Player"
)
