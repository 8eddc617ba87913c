package engine

import (
	"rpsb/game"
	"rpsb/opponent"
)

// Input supplies raw text from the human side. Implementations return io.EOF
// when no more input will arrive.
type Input interface {
	ReadLine(prompt string) (string, error)
}

// Presenter displays the match. It only ever receives copies of match state.
type Presenter interface {
	ShowRules()
	ShowNotice(msg string)
	ShowRound(u Update, player string)
	ShowFinal(s Summary)
}

// NewOpponent builds the opponent for a freshly selected difficulty.
type NewOpponent func(profile game.Profile) *opponent.Opponent
