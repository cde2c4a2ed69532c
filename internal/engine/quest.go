package engine

import (
	"fmt"

	"github.com/samdwyer/wasteland/internal/entity"
)

const questReputation = 5

// advanceQuest moves to the next quest in catalog order. The caller gates
// this on QuestReady; the engine advances unconditionally.
func (e *Engine) advanceQuest(s entity.GameState) entity.GameState {
	next := s.Clone()
	next.Quest = e.catalog.NextQuest(s.Quest.ID)
	next.QuestProgress = 0
	next.Reputation = addCount(next.Reputation, questReputation)
	return appendLog(next, fmt.Sprintf("Mission updated: %s.", next.Quest.Title), entity.LogSystem)
}
