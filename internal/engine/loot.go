package engine

import (
	"github.com/samdwyer/wasteland/internal/gamedata"
	"github.com/samdwyer/wasteland/internal/rng"
)

type resource int

const (
	resourceCaps resource = iota
	resourceAmmo
	resourceMedkits
	resourceScrap
)

func (r resource) bundle(n int) gamedata.Bundle {
	switch r {
	case resourceCaps:
		return gamedata.Bundle{Caps: n}
	case resourceAmmo:
		return gamedata.Bundle{Ammo: n}
	case resourceMedkits:
		return gamedata.Bundle{Medkits: n}
	case resourceScrap:
		return gamedata.Bundle{Scrap: n}
	default:
		return gamedata.Bundle{}
	}
}

// lootOutcome grants base + floor(r*spread) of one resource when the table
// roll is below upTo. A zero spread draws no amount roll.
type lootOutcome struct {
	upTo     float64
	resource resource
	base     int
	spread   int
}

// lootTable is a list of outcomes with increasing cumulative thresholds.
// A roll past the last threshold finds nothing.
type lootTable []lootOutcome

var (
	settlementLoot = lootTable{
		{upTo: 0.50, resource: resourceCaps, base: 10, spread: 10},
		{upTo: 0.90, resource: resourceAmmo, base: 2, spread: 4},
	}
	salvageLoot = lootTable{
		{upTo: 0.40, resource: resourceScrap, base: 2, spread: 3},
		{upTo: 0.65, resource: resourceMedkits, base: 1},
		{upTo: 0.90, resource: resourceCaps, base: 5, spread: 8},
	}
	defaultLoot = lootTable{
		{upTo: 0.35, resource: resourceCaps, base: 10, spread: 10},
		{upTo: 0.60, resource: resourceAmmo, base: 2, spread: 4},
		{upTo: 0.80, resource: resourceMedkits, base: 1},
		{upTo: 1.00, resource: resourceScrap, base: 2},
	}
)

// lootTableFor returns the table used when scavenging a zone of category c.
func lootTableFor(c gamedata.ZoneCategory) lootTable {
	switch c {
	case gamedata.CategorySettlement:
		return settlementLoot
	case gamedata.CategoryRuins, gamedata.CategoryIndustrial:
		return salvageLoot
	default:
		return defaultLoot
	}
}

// roll draws one outcome. It returns an empty bundle when nothing is found.
func (t lootTable) roll(src rng.Source) gamedata.Bundle {
	r := src.Float64()
	for _, o := range t {
		if r >= o.upTo {
			continue
		}
		amount := o.base
		if o.spread > 0 {
			amount += rng.IntN(src, o.spread)
		}
		return o.resource.bundle(amount)
	}
	return gamedata.Bundle{}
}
