package experiments

import (
	"fmt"
	"rps/engine"
	"rps/experiments/metrics"
	"rps/player"
	"sort"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// collectingReporter feeds round outcomes into a metrics collector.
type collectingReporter struct {
	collector metrics.Collector
}

func (r collectingReporter) Round(round engine.Round) {
	r.collector.AddRound(round.Outcome)
}

func (r collectingReporter) Frequencies([]player.Frequency) {}

// Configs pairs every bot with every window.
func Configs(windows []int, rounds int) []metrics.AgentConfig {
	bots := make([]string, 0, len(Bots))
	for name := range Bots {
		bots = append(bots, name)
	}
	sort.Strings(bots)

	configs := []metrics.AgentConfig{}
	for _, bot := range bots {
		for _, window := range windows {
			configs = append(configs, metrics.AgentConfig{
				ID:     len(configs) + 1,
				Bot:    bot,
				Window: window,
				Rounds: rounds,
			})
		}
	}
	return configs
}

// Run plays one match per config and returns the collected records.
func Run(configs []metrics.AgentConfig, seed uint64) ([]metrics.MatchRecord, error) {
	rng := rand.New(rand.NewSource(seed))
	records := []metrics.MatchRecord{}

	log.Info().Msgf("starting %d matches...", len(configs))
	for i, config := range configs {
		log.Info().Msgf("starting match %d of %d: %+v", i+1, len(configs), config)

		metric, err := runMatch(config, rng)
		if err != nil {
			return nil, fmt.Errorf("match %d: %w", config.ID, err)
		}
		records = append(records, metrics.MatchRecord{
			ID:          i + 1,
			Agent:       config.ID,
			MatchMetric: metric,
		})

		log.Info().Msgf("completed match %d of %d with predictor win rate %.3f", i+1, len(configs), metric.WinRate())
	}
	return records, nil
}

// RunAndWrite runs the experiment and stores configs and records under dir.
func RunAndWrite(dir string, configs []metrics.AgentConfig, seed uint64) (string, error) {
	records, err := Run(configs, seed)
	if err != nil {
		return "", err
	}

	writer, err := metrics.NewWriter(dir, "ngram")
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteAgentConfigs(configs); err != nil {
		return "", err
	}
	log.Info().Msg("stored agent configs")
	if err := writer.WriteMatchRecords(records); err != nil {
		return "", err
	}
	log.Info().Msg("stored match records")
	return writer.Dir(), nil
}

func runMatch(config metrics.AgentConfig, rng *rand.Rand) (metrics.MatchMetric, error) {
	newBot, ok := Bots[config.Bot]
	if !ok {
		return metrics.MatchMetric{}, fmt.Errorf("unknown bot %q", config.Bot)
	}

	collector := metrics.NewCollector()
	e := engine.New(newBot(rng), player.NewNGram(config.Window, rng), collectingReporter{collector: collector})

	collector.Start()
	for i := 0; i < config.Rounds; i++ {
		if _, err := e.Play(); err != nil {
			return metrics.MatchMetric{}, err
		}
	}
	return collector.Complete(), nil
}
