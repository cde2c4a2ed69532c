package gamedata

// QuestDef defines a quest loaded from JSON. Quests cycle in file order.
type QuestDef struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Reward string `json:"reward"` // Narrative reward text
}

// QuestsFile represents the structure of quests.json.
type QuestsFile struct {
	Quests []QuestDef `json:"quests"`
}

// LoadQuests loads quest definitions from the embedded quests.json file.
func LoadQuests() ([]QuestDef, error) {
	file, err := Load[QuestsFile]("quests.json")
	if err != nil {
		return nil, err
	}
	return file.Quests, nil
}
