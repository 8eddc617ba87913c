package metrics

import (
	"time"

	"rpsb/engine"
	"rpsb/game"
)

// PlayerConfig identifies a scripted player kind in the results.
type PlayerConfig struct {
	ID   int
	Kind string
}

type MatchMetric struct {
	Difficulty game.Difficulty
	Player     string // Scripted player name
	Winner     game.Outcome
	ScoreA     int
	ScoreB     int
	Forfeits   int
	BombRoundA int // 0 if side A never bombed
	BombRoundB int
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
}

type Collector interface {
	Start(difficulty game.Difficulty, player string)
	AddRound(u engine.Update)
	Complete() MatchMetric
}

type collector struct {
	metric MatchMetric
}

func NewCollector() Collector {
	return &collector{}
}

func (c *collector) Start(difficulty game.Difficulty, player string) {
	c.metric = MatchMetric{
		Difficulty: difficulty,
		Player:     player,
		StartTime:  time.Now(),
	}
}

func (c *collector) AddRound(u engine.Update) {
	if u.Forfeit != nil {
		c.metric.Forfeits++
	}
	if u.A == game.Bomb {
		c.metric.BombRoundA = u.Round
	}
	if u.B == game.Bomb {
		c.metric.BombRoundB = u.Round
	}
	c.metric.ScoreA = u.Record.ScoreA
	c.metric.ScoreB = u.Record.ScoreB
	c.metric.Winner = u.Record.Winner()
}

func (c *collector) Complete() MatchMetric {
	c.metric.EndTime = time.Now()
	c.metric.Duration = c.metric.EndTime.Sub(c.metric.StartTime)
	return c.metric
}

// MatchupStat aggregates the matches of one player kind against one difficulty.
type MatchupStat struct {
	Difficulty game.Difficulty
	Player     string
	Matches    int
	WinsA      int
	WinsB      int
	Draws      int
	Forfeits   int
}

// WinRateB is the share of matches the opponent won.
func (s MatchupStat) WinRateB() float64 {
	if s.Matches == 0 {
		return 0
	}
	return float64(s.WinsB) / float64(s.Matches)
}

// Summarize groups match records by difficulty and player, in first-seen order.
func Summarize(records []MatchRecord) []MatchupStat {
	type key struct {
		difficulty game.Difficulty
		player     string
	}
	index := map[key]int{}
	var stats []MatchupStat
	for _, r := range records {
		k := key{r.Difficulty, r.Player}
		i, ok := index[k]
		if !ok {
			i = len(stats)
			index[k] = i
			stats = append(stats, MatchupStat{Difficulty: r.Difficulty, Player: r.Player})
		}
		s := &stats[i]
		s.Matches++
		s.Forfeits += r.Forfeits
		switch r.Winner {
		case game.FirstWins:
			s.WinsA++
		case game.SecondWins:
			s.WinsB++
		default:
			s.Draws++
		}
	}
	return stats
}
