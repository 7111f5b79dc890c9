package game

// Outcome is the result of a round from the human player's point of view.
type Outcome int

const (
	Tie Outcome = iota
	HumanWins
	CPUWins
)

func (o Outcome) String() string {
	switch o {
	case HumanWins:
		return "HumanWins"
	case CPUWins:
		return "CPUWins"
	default:
		return "Tie"
	}
}

// Evaluate compares the human's move against the cpu's move.
func Evaluate(human, cpu Move) Outcome {
	switch {
	case human == cpu:
		return Tie
	case human.Beats(cpu):
		return HumanWins
	default:
		return CPUWins
	}
}
