package engine

import (
	"errors"

	"github.com/rs/zerolog/log"

	"rpsb/game"
	"rpsb/opponent"
)

var ErrMatchComplete = errors.New("match is complete - no moves allowed")

type Phase int

const (
	AwaitingMove Phase = iota
	MatchComplete
)

func (p Phase) String() string {
	if p == MatchComplete {
		return "match complete"
	}
	return "awaiting move"
}

// Update describes one resolved round and the record right after it.
type Update struct {
	Round   int
	A       game.Move
	B       game.Move
	Outcome game.Outcome
	Forfeit error // Why side A's input was rejected, nil for a played round
	Record  game.Record
}

// Match runs the three rounds of one game between a human side A and the opponent as side B.
type Match struct {
	record   game.Record
	history  opponent.History
	opponent *opponent.Opponent
	updates  []Update
}

func NewMatch(opp *opponent.Opponent) *Match {
	if opp == nil {
		panic("match needs an opponent")
	}
	return &Match{
		record:   game.NewRecord(),
		opponent: opp,
	}
}

// Reset starts a brand-new match against the same opponent.
func (m *Match) Reset() {
	m.record = game.NewRecord()
	m.history = nil
	m.updates = nil
}

func (m *Match) Phase() Phase {
	if m.record.IsComplete() {
		return MatchComplete
	}
	return AwaitingMove
}

func (m *Match) IsComplete() bool {
	return m.Phase() == MatchComplete
}

func (m *Match) Record() game.Record {
	return m.record
}

func (m *Match) History() opponent.History {
	return append(opponent.History(nil), m.history...)
}

func (m *Match) Updates() []Update {
	return append([]Update(nil), m.updates...)
}

func (m *Match) Profile() game.Profile {
	return m.opponent.Profile()
}

// Winner compares the scores; it is only final once the match is complete.
func (m *Match) Winner() game.Outcome {
	return m.record.Winner()
}

// Play resolves the current round with side A's raw input. Rejected input
// forfeits the round to side B; the round still counts.
func (m *Match) Play(raw string) (Update, error) {
	if m.IsComplete() {
		return Update{}, ErrMatchComplete
	}
	round := m.record.Round

	a, err := game.ValidateMove(raw, m.record.BombUsedA)
	if err != nil {
		m.record.Apply(game.Result{A: game.NoMove, B: game.NoMove, Outcome: game.SecondWins})
		u := Update{Round: round, Outcome: game.SecondWins, Forfeit: err, Record: m.record}
		m.updates = append(m.updates, u)
		log.Debug().Int("round", round).Err(err).Msg("round forfeited")
		return u, nil
	}

	b := m.opponent.ChooseMove(opponent.Situation{
		History:    m.History(),
		Round:      round,
		OwnScore:   m.record.ScoreB,
		RivalScore: m.record.ScoreA,
		BombUsed:   m.record.BombUsedB,
	})

	outcome := game.Resolve(a, b)
	m.record.Apply(game.Result{A: a, B: b, Outcome: outcome})
	m.history = append(m.history, opponent.Exchange{A: a, B: b})

	u := Update{Round: round, A: a, B: b, Outcome: outcome, Record: m.record}
	m.updates = append(m.updates, u)
	log.Debug().Int("round", round).Stringer("a", a).Stringer("b", b).Stringer("outcome", outcome).Msg("round resolved")
	return u, nil
}
