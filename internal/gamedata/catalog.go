package gamedata

import (
	"errors"
	"fmt"
)

// Catalog is the read-only world reference data: the ordered zone list, the
// enemy templates and the cyclic quest line. Lookups never mutate it, so one
// Catalog can be shared by every engine and renderer in the process.
type Catalog struct {
	zones   []ZoneDef
	enemies []EnemyDef
	quests  []QuestDef
}

// NewCatalog creates a catalog from definitions. The slices are copied.
// Each list must be non-empty because lookups are taken modulo its length.
func NewCatalog(zones []ZoneDef, enemies []EnemyDef, quests []QuestDef) (*Catalog, error) {
	if len(zones) == 0 {
		return nil, errors.New("catalog needs at least one zone")
	}
	if len(enemies) == 0 {
		return nil, errors.New("catalog needs at least one enemy")
	}
	if len(quests) == 0 {
		return nil, errors.New("catalog needs at least one quest")
	}

	seen := make(map[string]bool, len(quests))
	for _, q := range quests {
		if seen[q.ID] {
			return nil, fmt.Errorf("duplicate quest id %q", q.ID)
		}
		seen[q.ID] = true
	}

	return &Catalog{
		zones:   append([]ZoneDef(nil), zones...),
		enemies: append([]EnemyDef(nil), enemies...),
		quests:  append([]QuestDef(nil), quests...),
	}, nil
}

// LoadCatalog builds a catalog from the embedded JSON files.
func LoadCatalog() (*Catalog, error) {
	zones, err := LoadZones()
	if err != nil {
		return nil, err
	}
	enemies, err := LoadEnemies()
	if err != nil {
		return nil, err
	}
	quests, err := LoadQuests()
	if err != nil {
		return nil, err
	}
	return NewCatalog(zones, enemies, quests)
}

// MustLoadCatalog loads the embedded catalog, panicking on error.
func MustLoadCatalog() *Catalog {
	catalog, err := LoadCatalog()
	if err != nil {
		panic(err)
	}
	return catalog
}

// =============================================================================
// Zones
// =============================================================================

// ZoneAt returns the zone at index, wrapping modulo the zone count.
func (c *Catalog) ZoneAt(index int) ZoneDef {
	return c.zones[mod(index, len(c.zones))]
}

// ZoneCount returns the number of zones.
func (c *Catalog) ZoneCount() int {
	return len(c.zones)
}

// =============================================================================
// Enemies
// =============================================================================

// Enemies returns a copy of all enemy templates.
func (c *Catalog) Enemies() []EnemyDef {
	return append([]EnemyDef(nil), c.enemies...)
}

// EnemyAt returns the enemy template at index, wrapping modulo the enemy count.
func (c *Catalog) EnemyAt(index int) EnemyDef {
	return c.enemies[mod(index, len(c.enemies))]
}

// EnemyCount returns the number of enemy templates.
func (c *Catalog) EnemyCount() int {
	return len(c.enemies)
}

// =============================================================================
// Quests
// =============================================================================

// FirstQuest returns the first quest in catalog order.
func (c *Catalog) FirstQuest() QuestDef {
	return c.quests[0]
}

// Quests returns a copy of the quest line.
func (c *Catalog) Quests() []QuestDef {
	return append([]QuestDef(nil), c.quests...)
}

// QuestByID returns the quest with the given ID.
func (c *Catalog) QuestByID(id string) (QuestDef, bool) {
	for _, q := range c.quests {
		if q.ID == id {
			return q, true
		}
	}
	return QuestDef{}, false
}

// NextQuest returns the quest after currentID, wrapping to the first after
// the last. An unknown ID also yields the first quest.
func (c *Catalog) NextQuest(currentID string) QuestDef {
	for i, q := range c.quests {
		if q.ID == currentID {
			return c.quests[(i+1)%len(c.quests)]
		}
	}
	return c.quests[0]
}

func mod(i, n int) int {
	return ((i % n) + n) % n
}
