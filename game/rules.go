package game

// beats maps each classic move to the move it defeats.
var beats = map[Move]Move{
	Rock:     Scissors,
	Scissors: Paper,
	Paper:    Rock,
}

// counters maps each classic move to the move that defeats it.
var counters = map[Move]Move{
	Scissors: Rock,
	Paper:    Scissors,
	Rock:     Paper,
}

// Resolve decides a round between side A playing a and side B playing b.
// Both moves must already be valid.
func Resolve(a, b Move) Outcome {
	if a == b {
		return Draw
	}
	if a == Bomb {
		return FirstWins
	}
	if b == Bomb {
		return SecondWins
	}
	if beats[a] == b {
		return FirstWins
	}
	return SecondWins
}

// Beats returns the classic move m defeats, or NoMove for Bomb.
func Beats(m Move) Move {
	return beats[m]
}

// CounterOf returns the classic move that defeats m. Bomb has no classic counter
// and maps to NoMove.
func CounterOf(m Move) Move {
	return counters[m]
}
