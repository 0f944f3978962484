package board

// Outcome represents where a board stands in its lifecycle.
type Outcome int

const (
	// OutcomePlaying means guesses are still accepted.
	OutcomePlaying Outcome = iota
	// OutcomeWon means every letter of the target has been revealed.
	OutcomeWon
	// OutcomeLost means the miss budget is exhausted.
	OutcomeLost
)

// String returns a human-readable outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomePlaying:
		return "playing"
	case OutcomeWon:
		return "won"
	case OutcomeLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Terminal reports whether the outcome ends the round.
func (o Outcome) Terminal() bool {
	return o == OutcomeWon || o == OutcomeLost
}
