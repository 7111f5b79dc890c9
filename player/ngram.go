package player

import (
	"fmt"
	"rps/game"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// Window is an ordered run of opponent moves, newest first, used as a table key.
type Window string

func windowOf(moves ...game.Move) Window {
	b := make([]byte, len(moves))
	for i, m := range moves {
		b[i] = byte(m)
	}
	return Window(b)
}

// Moves decodes the window, newest first.
func (w Window) Moves() []game.Move {
	moves := make([]game.Move, len(w))
	for i := 0; i < len(w); i++ {
		moves[i] = game.Move(w[i])
	}
	return moves
}

func (w Window) String() string {
	names := make([]string, len(w))
	for i, m := range w.Moves() {
		names[i] = m.String()
	}
	return strings.Join(names, ",")
}

// Frequency is one entry of the predictor's table.
type Frequency struct {
	Window Window
	Count  int
}

// NGram predicts the opponent's next move from how often each window of n
// consecutive moves has been observed, and plays the move that beats it.
type NGram struct {
	n       int
	rng     *rand.Rand
	history []game.Move // newest first, at most n entries
	table   map[Window]int
}

func NewNGram(n int, rng *rand.Rand) *NGram {
	if n < 1 {
		panic(fmt.Sprintf("window size must be at least 1, got %d", n))
	}
	if rng == nil {
		panic("ngram player needs a randomness source")
	}
	return &NGram{
		n:       n,
		rng:     rng,
		history: make([]game.Move, 0, n+1),
		table:   make(map[Window]int),
	}
}

func (p *NGram) Turn() (game.Move, error) {
	if len(p.history) < p.n {
		log.Debug().Msgf("ngram cold start with %d of %d moves", len(p.history), p.n)
		return game.Random(p.rng), nil
	}

	predicted, err := p.predict()
	if err != nil {
		return 0, err
	}
	log.Debug().Msgf("ngram predicts %v, playing %v", predicted, predicted.LosesTo())
	return predicted.LosesTo(), nil
}

// predict returns the candidate whose window [candidate, last n-1 moves] is most
// frequent. Ties go to the earliest of Rock, Paper, Scissors.
func (p *NGram) predict() (game.Move, error) {
	prefix := p.history[:p.n-1]
	candidates := game.All()

	counts := make([]int, len(candidates))
	maxCount := 0
	for i, m := range candidates {
		counts[i] = p.Count(append([]game.Move{m}, prefix...)...)
		maxCount = max(maxCount, counts[i])
	}

	for i, m := range candidates {
		if counts[i] == maxCount {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%w: no candidate reached max count %d", ErrInvariantViolation, maxCount)
}

func (p *NGram) PostTurn(opponent game.Move, _ game.Outcome) error {
	p.history = append(p.history, 0)
	copy(p.history[1:], p.history)
	p.history[0] = opponent
	if len(p.history) > p.n {
		p.history = p.history[:p.n]
	}

	// The key is the newest n-window, including the move just recorded.
	if len(p.history) == p.n {
		p.table[windowOf(p.history...)]++
	}
	return nil
}

// Window returns the window size n.
func (p *NGram) Window() int {
	return p.n
}

// History returns a copy of the recorded opponent moves, newest first.
func (p *NGram) History() []game.Move {
	return append([]game.Move(nil), p.history...)
}

// Count returns how often the given window (newest first) has been observed.
func (p *NGram) Count(moves ...game.Move) int {
	return p.table[windowOf(moves...)]
}

// Frequencies returns the table ordered by descending count, then by window.
func (p *NGram) Frequencies() []Frequency {
	freqs := make([]Frequency, 0, len(p.table))
	for w, c := range p.table {
		freqs = append(freqs, Frequency{Window: w, Count: c})
	}
	sort.Slice(freqs, func(i, j int) bool {
		if freqs[i].Count != freqs[j].Count {
			return freqs[i].Count > freqs[j].Count
		}
		return freqs[i].Window < freqs[j].Window
	})
	return freqs
}
