package gamedata

import "github.com/gdamore/tcell/v2"

// ZoneCategory tags a zone. It drives the scavenging loot table and the map glyph.
type ZoneCategory string

const (
	CategoryVault       ZoneCategory = "vault"
	CategorySettlement  ZoneCategory = "settlement"
	CategoryRoad        ZoneCategory = "road"
	CategoryRuins       ZoneCategory = "ruins"
	CategoryRadiation   ZoneCategory = "radiation"
	CategoryOutpost     ZoneCategory = "outpost"
	CategoryHighland    ZoneCategory = "highland"
	CategoryUnderground ZoneCategory = "underground"
	CategoryWaterfront  ZoneCategory = "waterfront"
	CategoryDesert      ZoneCategory = "desert"
	CategoryTower       ZoneCategory = "tower"
	CategoryIndustrial  ZoneCategory = "industrial"
)

// ZoneDef defines a themed zone loaded from JSON.
type ZoneDef struct {
	Name        string       `json:"name"`
	Category    ZoneCategory `json:"category"`
	Description string       `json:"description"`
	Glyph       string       `json:"glyph"` // Single character for the map
	Color       string       `json:"color"` // Hex color code
}

// GlyphRune returns the glyph as a rune for rendering.
func (z *ZoneDef) GlyphRune() rune {
	if len(z.Glyph) == 0 {
		return '?'
	}
	return rune(z.Glyph[0])
}

// TCellColor returns the zone color as a tcell.Color.
func (z *ZoneDef) TCellColor() tcell.Color {
	color, err := ParseHexColor(z.Color)
	if err != nil {
		return tcell.ColorWhite
	}
	return color
}

// ZonesFile represents the structure of zones.json.
type ZonesFile struct {
	Zones []ZoneDef `json:"zones"`
}

// LoadZones loads zone definitions from the embedded zones.json file.
func LoadZones() ([]ZoneDef, error) {
	file, err := Load[ZonesFile]("zones.json")
	if err != nil {
		return nil, err
	}
	return file.Zones, nil
}
