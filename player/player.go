package player

import (
	"fmt"

	"rpsb/game"
	"rpsb/opponent"
)

// Player is a scripted side A used in simulations. It answers with raw text,
// exactly like a human at the terminal.
type Player interface {
	Name() string
	NextMove(history opponent.History, record game.Record) string
}

const (
	ConstantKind = "constant"
	CyclerKind   = "cycler"
	RandomKind   = "random"
	CounterKind  = "counter"
)

// Kinds lists every scripted strategy.
var Kinds = []string{ConstantKind, CyclerKind, RandomKind, CounterKind}

// New builds a scripted player of the given kind. Random players draw from source.
func New(kind string, source opponent.Source) (Player, error) {
	switch kind {
	case ConstantKind:
		return Constant{Move: game.Rock}, nil
	case CyclerKind:
		return Cycler{Moves: []game.Move{game.Rock, game.Paper, game.Scissors}}, nil
	case RandomKind:
		if source == nil {
			return nil, fmt.Errorf("random player needs a source")
		}
		return &Random{source: source, TypoRate: 0.1}, nil
	case CounterKind:
		return Counter{}, nil
	default:
		return nil, fmt.Errorf("unknown player kind %q", kind)
	}
}

// Constant always plays the same move.
type Constant struct {
	Move game.Move
}

func (p Constant) Name() string { return ConstantKind + "-" + p.Move.String() }

func (p Constant) NextMove(_ opponent.History, _ game.Record) string {
	return p.Move.String()
}

// Cycler walks through Moves one round at a time.
type Cycler struct {
	Moves []game.Move
}

func (p Cycler) Name() string { return CyclerKind }

func (p Cycler) NextMove(_ opponent.History, record game.Record) string {
	return p.Moves[record.Played()%len(p.Moves)].String()
}

// Random plays uniformly, spends its bomb at most once, and sometimes mistypes.
type Random struct {
	source   opponent.Source
	TypoRate float64
}

func (p *Random) Name() string { return RandomKind }

func (p *Random) NextMove(_ opponent.History, record game.Record) string {
	if p.source.Float64() < p.TypoRate {
		return "rok"
	}
	moves := game.Moves
	if record.BombUsedA {
		moves = game.Classic
	}
	return moves[p.source.Intn(len(moves))].String()
}

// Counter plays against the opponent's favourite move and bombs to rescue a
// losing final round.
type Counter struct{}

func (p Counter) Name() string { return CounterKind }

func (p Counter) NextMove(history opponent.History, record game.Record) string {
	if !record.BombUsedA && record.Round >= game.MAX_ROUNDS && record.ScoreA <= record.ScoreB {
		return game.Bomb.String()
	}
	ranked := opponent.Rank(history.Own())
	if ranked[0].Count == 0 {
		return game.Paper.String()
	}
	return game.CounterOf(ranked[0].Move).String()
}
