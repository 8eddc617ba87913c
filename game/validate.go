package game

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"

	"rpsb/utils"
)

var (
	ErrUnrecognizedMove = errors.New("unrecognized move")
	ErrBombUsed         = errors.New("bomb already used")
)

// InvalidMoveError is returned for raw input that cannot be played this round.
type InvalidMoveError struct {
	Input  string
	Reason error
}

func (e *InvalidMoveError) Error() string {
	return fmt.Sprintf("invalid move %q: %v", e.Input, e.Reason)
}

func (e *InvalidMoveError) Unwrap() error {
	return e.Reason
}

// Normalize trims and case-folds raw input into the canonical token form.
func Normalize(raw string) string {
	return cases.Fold().String(strings.TrimSpace(raw))
}

// ParseMove maps a canonical move name to its Move. Abbreviations are not accepted.
func ParseMove(raw string) (Move, bool) {
	i := utils.FindIndex(moveNames, Normalize(raw))
	if i <= int(NoMove) {
		return NoMove, false
	}
	return Move(i), true
}

// ValidateMove checks a side's raw input against the move list and its bomb budget.
func ValidateMove(raw string, bombUsed bool) (Move, error) {
	move, ok := ParseMove(raw)
	if !ok {
		return NoMove, &InvalidMoveError{Input: raw, Reason: ErrUnrecognizedMove}
	}
	if move == Bomb && bombUsed {
		return NoMove, &InvalidMoveError{Input: raw, Reason: ErrBombUsed}
	}
	return move, nil
}
