package opponent

import (
	"github.com/rs/zerolog/log"

	"rpsb/game"
)

// Situation is everything the opponent may look at before choosing a move.
type Situation struct {
	History    History
	Round      int
	OwnScore   int
	RivalScore int
	BombUsed   bool
}

// ChooseMove returns side B's move for the coming round. It never modifies
// the history and never returns a bomb once the opponent's bomb is spent.
func (o *Opponent) ChooseMove(s Situation) game.Move {
	if o.source.Float64() > o.profile.Strategic {
		move := o.random(s.BombUsed)
		log.Debug().Str("difficulty", string(o.profile.Level)).Stringer("move", move).Msg("random move")
		return move
	}
	move := o.strategic(s)
	log.Debug().Str("difficulty", string(o.profile.Level)).Stringer("move", move).Msg("strategic move")
	return move
}

func (o *Opponent) random(bombUsed bool) game.Move {
	moves := game.Moves
	if bombUsed {
		moves = game.Classic
	}
	return moves[o.source.Intn(len(moves))]
}

func (o *Opponent) randomClassic() game.Move {
	return game.Classic[o.source.Intn(len(game.Classic))]
}

func (o *Opponent) strategic(s Situation) game.Move {
	// Last chance to catch up
	if !s.BombUsed && s.Round >= game.MAX_ROUNDS && s.OwnScore < s.RivalScore {
		return game.Bomb
	}

	rival := s.History.Rival()
	ranked := Rank(rival)
	if ranked[0].Count == 0 {
		return o.randomClassic()
	}

	target := ranked[0].Move
	if o.profile.PatternDetection {
		if next, ok := predict(rival); ok {
			target = next
		}
	}
	counter := game.CounterOf(target)

	if o.profile.Meta && exploitable(s.History, counter) && o.source.Float64() < o.metaChance {
		for _, t := range ranked {
			if t.Move != target {
				return game.CounterOf(t.Move)
			}
		}
	}
	return counter
}

// exploitable reports whether move is already the opponent's most played move,
// which a rival counting frequencies would be countering.
func exploitable(h History, move game.Move) bool {
	own := Rank(h.Own())
	return own[0].Count > 0 && own[0].Move == move
}
