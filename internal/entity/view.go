package entity

// Secondary objective thresholds.
const (
	ArtifactGoal   = 5
	RadiationLimit = 75
)

// HealthPercent returns health as a percentage of max health, in [0, 100].
func (s GameState) HealthPercent() int {
	return percent(s.Health, s.MaxHealth)
}

// APPercent returns remaining action points as a percentage of the budget.
func (s GameState) APPercent() int {
	return percent(s.AP, s.MaxAP)
}

// RadiationPercent returns the radiation meter.
func (s GameState) RadiationPercent() int { return percent(s.Radiation, MaxMeter) }

// ThirstPercent returns the thirst meter.
func (s GameState) ThirstPercent() int { return percent(s.Thirst, MaxMeter) }

// HungerPercent returns the hunger meter.
func (s GameState) HungerPercent() int { return percent(s.Hunger, MaxMeter) }

// QuestReady returns true once the active quest may be advanced.
func (s GameState) QuestReady() bool {
	return s.QuestProgress >= MaxQuestProgress
}

// Objective is a side goal shown alongside the quest.
type Objective struct {
	Title string
	Done  bool
}

// Objectives evaluates the secondary objectives against s.
func (s GameState) Objectives() []Objective {
	return []Objective{
		{Title: "Collect 5 pre-war artifacts for the lab", Done: s.Artifacts >= ArtifactGoal},
		{Title: "Keep radiation at or below 75%", Done: s.Radiation <= RadiationLimit},
	}
}

func percent(value, max int) int {
	if max <= 0 {
		return 0
	}
	p := value * 100 / max
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
