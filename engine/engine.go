package engine

import (
	"fmt"
	"rps/game"
	"rps/player"

	"github.com/rs/zerolog/log"
)

// Round is what happened in a single round of the match.
type Round struct {
	Number  int
	Human   game.Move
	CPU     game.Move
	Outcome game.Outcome
	Tally   Tally
}

// Reporter receives per-round summaries for display.
type Reporter interface {
	Round(r Round)
	Frequencies(freqs []player.Frequency)
}

type Option func(e *Engine)

// WithFrequencies reports the source's frequency table after every round.
func WithFrequencies(source player.FrequencySource) Option {
	return func(e *Engine) {
		if source != nil {
			e.frequencies = source
		}
	}
}

// Engine drives repeated rounds between a human seat and a cpu seat.
type Engine struct {
	human       player.Player
	cpu         player.Player
	reporter    Reporter
	frequencies player.FrequencySource
	tally       Tally
}

func New(human, cpu player.Player, reporter Reporter, options ...Option) *Engine {
	if human == nil || cpu == nil {
		panic("engine needs two players")
	}
	if reporter == nil {
		reporter = NewDummyReporter()
	}
	e := &Engine{
		human:    human,
		cpu:      cpu,
		reporter: reporter,
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Run plays rounds until a player fails.
func (e *Engine) Run() error {
	log.Info().Msg("match started")
	for {
		if _, err := e.Play(); err != nil {
			return err
		}
	}
}

// Play executes exactly one round.
func (e *Engine) Play() (Round, error) {
	humanMove, err := e.human.Turn()
	if err != nil {
		return Round{}, fmt.Errorf("human turn: %w", err)
	}
	cpuMove, err := e.cpu.Turn()
	if err != nil {
		return Round{}, fmt.Errorf("cpu turn: %w", err)
	}

	outcome := game.Evaluate(humanMove, cpuMove)
	e.tally.Record(outcome)

	round := Round{
		Number:  e.tally.Rounds,
		Human:   humanMove,
		CPU:     cpuMove,
		Outcome: outcome,
		Tally:   e.tally,
	}
	log.Debug().Msgf("round %d: human=%v cpu=%v outcome=%v", round.Number, humanMove, cpuMove, outcome)
	e.reporter.Round(round)

	if err := e.human.PostTurn(cpuMove, outcome); err != nil {
		return round, fmt.Errorf("human post turn: %w", err)
	}
	if err := e.cpu.PostTurn(humanMove, outcome); err != nil {
		return round, fmt.Errorf("cpu post turn: %w", err)
	}

	if e.frequencies != nil {
		e.reporter.Frequencies(e.frequencies.Frequencies())
	}
	return round, nil
}

// Tally returns the running aggregate so far.
func (e *Engine) Tally() Tally {
	return e.tally
}

type dummyReporter struct{}

func NewDummyReporter() Reporter {
	return &dummyReporter{}
}

func (r *dummyReporter) Round(Round)                          {}
func (r *dummyReporter) Frequencies(freqs []player.Frequency) {}
