// Package world provides the fixed exploration grid and its zone layout.
package world

import "github.com/samdwyer/wasteland/internal/gamedata"

// GridSize is the width and height of the square exploration grid.
const GridSize = 7

// Position is a grid cell. Valid cells satisfy 0 <= X, Y < GridSize.
type Position struct {
	X, Y int
}

// InBounds returns true if the position lies on the grid.
func (p Position) InBounds() bool {
	return p.X >= 0 && p.X < GridSize && p.Y >= 0 && p.Y < GridSize
}

// Step returns p moved by (dx, dy) with each axis clamped to the grid.
// Movement blocks at the edges rather than wrapping.
func (p Position) Step(dx, dy int) Position {
	return Position{
		X: clampAxis(p.X + dx),
		Y: clampAxis(p.Y + dy),
	}
}

// Distance returns the Manhattan distance between two cells.
func Distance(a, b Position) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

// ZoneIndex returns (x + y*GridSize) mod zoneCount.
func ZoneIndex(p Position, zoneCount int) int {
	if zoneCount <= 0 {
		return 0
	}
	return (p.X + p.Y*GridSize) % zoneCount
}

// ZoneFor returns the zone covering the given cell.
func ZoneFor(catalog *gamedata.Catalog, p Position) gamedata.ZoneDef {
	return catalog.ZoneAt(ZoneIndex(p, catalog.ZoneCount()))
}

// ReachableCells returns every cell within budget Manhattan steps of from,
// in row-major order. A negative budget yields no cells.
func ReachableCells(from Position, budget int) []Position {
	if budget < 0 {
		return nil
	}
	cells := make([]Position, 0, GridSize*GridSize)
	for y := 0; y < GridSize; y++ {
		for x := 0; x < GridSize; x++ {
			cell := Position{X: x, Y: y}
			if Distance(from, cell) <= budget {
				cells = append(cells, cell)
			}
		}
	}
	return cells
}

func clampAxis(v int) int {
	if v < 0 {
		return 0
	}
	if v > GridSize-1 {
		return GridSize - 1
	}
	return v
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
