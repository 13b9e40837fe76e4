// Package galaxy provides the star map grid, suns, planets and anomalies.
// Coordinates are plain (x, y) cells; fleets may move diagonally.
package galaxy

import (
	"fmt"
	"math"
)

// RealmID is the stable handle of a realm. Realms index into the game's realm list.
type RealmID int

// NoRealm marks an unowned planet or an unclaimed culture sector.
const NoRealm RealmID = -1

// Coord is a single cell of the star map.
type Coord struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// String returns "(x,y)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Distance returns the Euclidean distance between two cells.
func (c Coord) Distance(o Coord) float64 {
	dx := float64(c.X - o.X)
	dy := float64(c.Y - o.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// Steps returns the number of diagonal-capable moves between two cells.
func (c Coord) Steps(o Coord) int {
	dx := abs(c.X - o.X)
	dy := abs(c.Y - o.Y)
	if dx > dy {
		return dx
	}
	return dy
}

// CardinalDirections are the four axis-aligned neighbor offsets (N, E, S, W).
var CardinalDirections = [4]Coord{
	{X: 0, Y: -1},
	{X: 1, Y: 0},
	{X: 0, Y: 1},
	{X: -1, Y: 0},
}

// NeighborDirections are the eight neighbor offsets, cardinal first.
var NeighborDirections = [8]Coord{
	{X: 0, Y: -1},
	{X: 1, Y: 0},
	{X: 0, Y: 1},
	{X: -1, Y: 0},
	{X: 1, Y: -1},
	{X: 1, Y: 1},
	{X: -1, Y: 1},
	{X: -1, Y: -1},
}

// Neighbors4 returns the four cardinal neighbors.
func (c Coord) Neighbors4() [4]Coord {
	var result [4]Coord
	for i, d := range CardinalDirections {
		result[i] = Coord{X: c.X + d.X, Y: c.Y + d.Y}
	}
	return result
}

// Neighbors8 returns all eight adjacent cells.
func (c Coord) Neighbors8() [8]Coord {
	var result [8]Coord
	for i, d := range NeighborDirections {
		result[i] = Coord{X: c.X + d.X, Y: c.Y + d.Y}
	}
	return result
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
