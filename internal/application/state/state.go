package state

// Phase represents the current phase within a level
type Phase int

const (
	PhaseTransitioning Phase = iota
	PhasePlaying
	PhaseBossEncounter
)

// String returns the string representation of the phase
func (p Phase) String() string {
	switch p {
	case PhaseTransitioning:
		return "Transitioning"
	case PhasePlaying:
		return "Playing"
	case PhaseBossEncounter:
		return "BossEncounter"
	default:
		return "Unknown"
	}
}
