package experiments

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"rpsb/engine"
	"rpsb/experiments/metrics"
	"rpsb/game"
	"rpsb/meta"
	"rpsb/opponent"
	"rpsb/player"
	"rpsb/utils"
)

type Option func(e *Experiment)

// Experiment plays every scripted player against every difficulty.
type Experiment struct {
	matches      int
	seed         uint64
	difficulties []game.Difficulty
	players      []metrics.PlayerConfig
}

func WithMatches(matches int) Option {
	return func(e *Experiment) {
		if matches > 0 {
			e.matches = matches
		}
	}
}

func WithSeed(seed uint64) Option {
	return func(e *Experiment) {
		if seed != 0 {
			e.seed = seed
		}
	}
}

func WithDifficulties(difficulties ...game.Difficulty) Option {
	return func(e *Experiment) {
		if len(difficulties) > 0 {
			e.difficulties = difficulties
		}
	}
}

func WithPlayers(kinds ...string) Option {
	return func(e *Experiment) {
		if len(kinds) == 0 {
			return
		}
		e.players = nil
		for i, kind := range kinds {
			e.players = append(e.players, metrics.PlayerConfig{ID: i + 1, Kind: kind})
		}
	}
}

func New(options ...Option) *Experiment {
	e := &Experiment{ // Default values
		matches:      meta.NUM_MATCHES,
		difficulties: game.Difficulties,
	}
	WithPlayers(player.Kinds...)(e)
	for _, option := range options {
		option(e)
	}
	if e.seed == 0 {
		seed, err := utils.NewSeed()
		if err != nil {
			panic(fmt.Sprintf("failed to seed experiment: %v", err))
		}
		e.seed = seed
	}
	return e
}

func (e *Experiment) Seed() uint64 {
	return e.seed
}

// Run plays all matchups and returns one record per match.
func (e *Experiment) Run() ([]metrics.MatchRecord, error) {
	count := 0
	records := []metrics.MatchRecord{}

	log.Info().Msgf("starting difficulty experiment with seed %d...", e.seed)

	for _, difficulty := range e.difficulties {
		profile, err := game.ProfileFor(difficulty)
		if err != nil {
			return nil, err
		}
		for _, config := range e.players {
			log.Info().Msgf("starting matchup %s vs %s...", config.Kind, difficulty)

			for i := 0; i < e.matches; i++ {
				count++
				seed := e.seed + uint64(count)
				opp := opponent.New(profile, opponent.WithSeed(seed))
				p, err := player.New(config.Kind, rand.New(rand.NewSource(^seed)))
				if err != nil {
					return nil, err
				}

				metric, err := runMatch(engine.NewMatch(opp), p)
				if err != nil {
					return nil, fmt.Errorf("matchup %s vs %s: %w", config.Kind, difficulty, err)
				}
				records = append(records, metrics.MatchRecord{
					ID:          count,
					PlayerID:    config.ID,
					MatchMetric: metric,
				})
			}
			log.Info().Msgf("completed matchup %s vs %s", config.Kind, difficulty)
		}
	}

	log.Info().Msgf("completed difficulty experiment with %d matches", count)
	return records, nil
}

// RunAndStore runs the experiment and writes its results under root/name.
func (e *Experiment) RunAndStore(root, name string) ([]metrics.MatchupStat, string, error) {
	records, err := e.Run()
	if err != nil {
		return nil, "", err
	}
	stats := metrics.Summarize(records)

	writer, err := metrics.NewWriter(root, name)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WritePlayerConfigs(e.players); err != nil {
		return nil, "", fmt.Errorf("failed to store player configs: %w", err)
	}
	log.Info().Msg("stored player configs")
	if err := writer.WriteMatchRecords(records); err != nil {
		return nil, "", fmt.Errorf("failed to write match records: %w", err)
	}
	log.Info().Msg("stored match records")
	if err := writer.WriteMatchupStats(stats); err != nil {
		return nil, "", fmt.Errorf("failed to write matchup stats: %w", err)
	}
	log.Info().Msg("stored matchup stats")

	return stats, writer.Dir(), nil
}

func runMatch(m *engine.Match, p player.Player) (metrics.MatchMetric, error) {
	collector := metrics.NewCollector()
	collector.Start(m.Profile().Level, p.Name())
	for !m.IsComplete() {
		u, err := m.Play(p.NextMove(m.History(), m.Record()))
		if err != nil {
			return metrics.MatchMetric{}, err
		}
		collector.AddRound(u)
	}
	return collector.Complete(), nil
}
