package game

// Result is everything the record needs to know about one resolved round.
// A and B are NoMove for a forfeited side.
type Result struct {
	A       Move
	B       Move
	Outcome Outcome
}

// Record is the score and round state of a single match.
type Record struct {
	Round     int // 1..MAX_ROUNDS while playing, MAX_ROUNDS+1 once complete
	ScoreA    int
	ScoreB    int
	BombUsedA bool
	BombUsedB bool
}

// NewRecord returns the record of a match that has not started yet.
func NewRecord() Record {
	return Record{Round: 1}
}

// IsComplete reports whether all rounds have been played.
func (r Record) IsComplete() bool {
	return r.Round > MAX_ROUNDS
}

// Played is the number of rounds already resolved.
func (r Record) Played() int {
	return r.Round - 1
}

// Apply advances the record by one resolved round. It is a no-op on a complete record.
func (r *Record) Apply(res Result) {
	if r.IsComplete() {
		return
	}
	switch res.Outcome {
	case FirstWins:
		r.ScoreA++
	case SecondWins:
		r.ScoreB++
	}
	if res.A == Bomb {
		r.BombUsedA = true
	}
	if res.B == Bomb {
		r.BombUsedB = true
	}
	r.Round++
}

// Winner compares the scores. Draw means the match (so far) is tied.
func (r Record) Winner() Outcome {
	switch {
	case r.ScoreA > r.ScoreB:
		return FirstWins
	case r.ScoreB > r.ScoreA:
		return SecondWins
	default:
		return Draw
	}
}
