package game

// Move is one of the four plays a side can make in a round.
type Move int

const (
	NoMove Move = iota // Forfeited side
	Rock
	Paper
	Scissors
	Bomb
)

// MAX_ROUNDS is the fixed length of a match.
const MAX_ROUNDS = 3

// Moves lists every playable move, in canonical order.
var Moves = []Move{Rock, Paper, Scissors, Bomb}

// Classic lists the moves of the classical cycle (everything but Bomb).
var Classic = []Move{Rock, Paper, Scissors}

var moveNames = []string{"none", "rock", "paper", "scissors", "bomb"}

func (m Move) String() string {
	if m < NoMove || m > Bomb {
		return "unknown"
	}
	return moveNames[m]
}

// IsValid reports whether m is a playable move.
func (m Move) IsValid() bool {
	return m >= Rock && m <= Bomb
}

// Outcome of a single round from the point of view of side A (first) and side B (second).
type Outcome int

const (
	Draw Outcome = iota
	FirstWins
	SecondWins
)

func (o Outcome) String() string {
	switch o {
	case FirstWins:
		return "first"
	case SecondWins:
		return "second"
	default:
		return "draw"
	}
}

// Invert swaps the winning side, draws stay draws.
func (o Outcome) Invert() Outcome {
	switch o {
	case FirstWins:
		return SecondWins
	case SecondWins:
		return FirstWins
	default:
		return Draw
	}
}
