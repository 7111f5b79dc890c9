package engine

import "rps/game"

// Tally is the running record of a match. Ties are counted but do not
// contribute to the win rate.
type Tally struct {
	Rounds    int
	HumanWins int
	CPUWins   int
	Ties      int
}

func (t *Tally) Record(outcome game.Outcome) {
	t.Rounds++
	switch outcome {
	case game.HumanWins:
		t.HumanWins++
	case game.CPUWins:
		t.CPUWins++
	default:
		t.Ties++
	}
}

// WinRate is the human's share of decided rounds, 0 before any round is decided.
func (t Tally) WinRate() float64 {
	decided := t.HumanWins + t.CPUWins
	if decided == 0 {
		return 0
	}
	return float64(t.HumanWins) / float64(decided)
}
