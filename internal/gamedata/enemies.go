package gamedata

// Bundle is a set of resource quantities. Kinds absent from JSON are zero.
type Bundle struct {
	Caps      int `json:"caps,omitempty"`
	Ammo      int `json:"ammo,omitempty"`
	Medkits   int `json:"medkits,omitempty"`
	Scrap     int `json:"scrap,omitempty"`
	Artifacts int `json:"artifacts,omitempty"`
}

// IsEmpty reports whether the bundle grants nothing.
func (b Bundle) IsEmpty() bool {
	return b == Bundle{}
}

// EnemyDef defines an enemy template loaded from JSON.
type EnemyDef struct {
	ID     string `json:"id"`     // Unique identifier (e.g., "radroamer")
	Name   string `json:"name"`   // Display name (e.g., "Radroamer")
	HP     int    `json:"hp"`     // Base health
	Attack int    `json:"attack"` // Base attack, the fixed part of every enemy hit
	Reward Bundle `json:"reward"` // Credited to the player on a kill
}

// EnemiesFile represents the structure of enemies.json.
type EnemiesFile struct {
	Enemies []EnemyDef `json:"enemies"`
}

// LoadEnemies loads enemy templates from the embedded enemies.json file.
func LoadEnemies() ([]EnemyDef, error) {
	file, err := Load[EnemiesFile]("enemies.json")
	if err != nil {
		return nil, err
	}
	return file.Enemies, nil
}
