package domain

// CategoryUsage tracks how often a category has supplied the active question
// and the global answered-count snapshot at its last selection.
type CategoryUsage struct {
	Count                  int
	LastUsedAtTotalAnswers int
}

// Priority tuning constants. Priorities default to 1.0, decay on skips and
// grow via keyword boost rules. Decay only applies while the priority sits
// above the floor, so it can never reach zero.
const (
	DefaultPriority = 1.0
	PriorityDecay   = 0.9
	PriorityFloor   = 0.5
)

// DecayPriority applies the skip decay, floor-guarded.
func DecayPriority(p float64) float64 {
	if p > PriorityFloor {
		return p * PriorityDecay
	}
	return p
}

// BoostRule boosts related categories when an answer in the source category
// contains the trigger keyword (case-insensitive substring match).
type BoostRule struct {
	Keyword         string
	SourceCategory  string
	BoostCategories []string
	Factor          float64
}
