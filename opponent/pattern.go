package opponent

import "rpsb/game"

// predict guesses the rival's next move from a repeated move or a period-2 cycle.
func predict(moves []game.Move) (game.Move, bool) {
	n := len(moves)
	if n < 2 {
		return game.NoMove, false
	}
	var next game.Move
	switch {
	case moves[n-1] == moves[n-2]: // x, x -> x
		next = moves[n-1]
	case n >= 3 && moves[n-1] == moves[n-3]: // x, y, x -> y
		next = moves[n-2]
	default:
		return game.NoMove, false
	}
	// A bomb cannot be played twice
	if game.CounterOf(next) == game.NoMove {
		return game.NoMove, false
	}
	return next, true
}
