package metrics

import (
	"rps/game"
	"time"
)

// AgentConfig describes one side of an experiment match: a scripted bot in the
// human seat against a predictor with the given window.
type AgentConfig struct {
	ID     int
	Bot    string
	Window int
	Rounds int
}

type MatchMetric struct {
	StartTime     time.Time
	Duration      time.Duration
	Rounds        int
	BotWins       int
	PredictorWins int
	Ties          int
}

// WinRate is the predictor's share of decided rounds.
func (m MatchMetric) WinRate() float64 {
	decided := m.BotWins + m.PredictorWins
	if decided == 0 {
		return 0
	}
	return float64(m.PredictorWins) / float64(decided)
}

type Collector interface {
	Start()
	AddRound(outcome game.Outcome)
	Complete() MatchMetric
}

type collector struct {
	startTime time.Time
	metric    MatchMetric
}

func NewCollector() Collector {
	return &collector{}
}

func (c *collector) Start() {
	c.startTime = time.Now()
	c.metric = MatchMetric{StartTime: c.startTime}
}

func (c *collector) AddRound(outcome game.Outcome) {
	c.metric.Rounds++
	switch outcome {
	case game.HumanWins:
		c.metric.BotWins++
	case game.CPUWins:
		c.metric.PredictorWins++
	default:
		c.metric.Ties++
	}
}

func (c *collector) Complete() MatchMetric {
	c.metric.Duration = time.Since(c.startTime)
	return c.metric
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (c *dummyCollector) Start()                {}
func (c *dummyCollector) AddRound(game.Outcome) {}
func (c *dummyCollector) Complete() MatchMetric { return MatchMetric{} }
