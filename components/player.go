package components

import "github.com/yohamta/donburi"

// Vector represents a 2D vector.
type Vector struct {
	X, Y float64
}

// PlayerData holds the player square's absolute top-left position in
// window coordinates. The persisted form is resolution-relative; the
// conversion happens in the persistence layer.
type PlayerData struct {
	Pos Vector
}

var Player = donburi.NewComponentType[PlayerData]()
