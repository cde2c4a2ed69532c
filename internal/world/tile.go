package world

import "github.com/samdwyer/wasteland/internal/gamedata"

// Tile is one map cell together with the zone that covers it.
type Tile struct {
	Position
	ZoneIndex int
	Zone      gamedata.ZoneDef
}

// MapTiles returns all GridSize*GridSize tiles in row-major order.
func MapTiles(catalog *gamedata.Catalog) []Tile {
	tiles := make([]Tile, 0, GridSize*GridSize)
	for y := 0; y < GridSize; y++ {
		for x := 0; x < GridSize; x++ {
			p := Position{X: x, Y: y}
			index := ZoneIndex(p, catalog.ZoneCount())
			tiles = append(tiles, Tile{
				Position:  p,
				ZoneIndex: index,
				Zone:      catalog.ZoneAt(index),
			})
		}
	}
	return tiles
}
