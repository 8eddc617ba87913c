package opponent

import (
	"sort"

	"rpsb/game"
)

// Exchange is the pair of moves played in one resolved round.
type Exchange struct {
	A game.Move // Rival
	B game.Move // Opponent
}

// History is the append-only log of exchanges of the current match.
type History []Exchange

// Rival returns side A's moves in play order.
func (h History) Rival() []game.Move {
	moves := make([]game.Move, len(h))
	for i, e := range h {
		moves[i] = e.A
	}
	return moves
}

// Own returns side B's moves in play order.
func (h History) Own() []game.Move {
	moves := make([]game.Move, len(h))
	for i, e := range h {
		moves[i] = e.B
	}
	return moves
}

// Tally is the number of times a classic move was played.
type Tally struct {
	Move  game.Move
	Count int
}

// Rank tallies the classic moves, most frequent first. Ties keep the
// rock, paper, scissors order. Bombs are not counted.
func Rank(moves []game.Move) []Tally {
	tallies := make([]Tally, len(game.Classic))
	for i, m := range game.Classic {
		tallies[i].Move = m
	}
	for _, m := range moves {
		if m >= game.Rock && m <= game.Scissors {
			tallies[m-game.Rock].Count++
		}
	}
	sort.SliceStable(tallies, func(i, j int) bool {
		return tallies[i].Count > tallies[j].Count
	})
	return tallies
}
