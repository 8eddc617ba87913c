package engine

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"rpsb/game"
)

// Summary is the final state of a match handed to the presenter.
type Summary struct {
	Player     string
	Difficulty game.Difficulty
	Record     game.Record
	Winner     game.Outcome
	Rounds     []Update
}

// Label names the side that took the round.
func (u Update) Label(player string) string {
	switch {
	case u.Forfeit != nil:
		return "Opponent (invalid move)"
	case u.Outcome == game.FirstWins:
		return player
	case u.Outcome == game.SecondWins:
		return "Opponent"
	default:
		return "Draw"
	}
}

// RunMatch plays m to completion, reading one move per round from in.
func RunMatch(m *Match, in Input, out Presenter, player string) (Summary, error) {
	for !m.IsComplete() {
		prompt := fmt.Sprintf("Round %d/%d - your move (rock, paper, scissors, bomb): ", m.Record().Round, game.MAX_ROUNDS)
		raw, err := in.ReadLine(prompt)
		if err != nil {
			return Summary{}, fmt.Errorf("read move: %w", err)
		}
		u, err := m.Play(raw)
		if err != nil {
			return Summary{}, err
		}
		out.ShowRound(u, player)
	}

	summary := Summary{
		Player:     player,
		Difficulty: m.Profile().Level,
		Record:     m.Record(),
		Winner:     m.Winner(),
		Rounds:     m.Updates(),
	}
	out.ShowFinal(summary)
	log.Info().Str("player", player).Str("difficulty", string(summary.Difficulty)).
		Int("scoreA", summary.Record.ScoreA).Int("scoreB", summary.Record.ScoreB).
		Stringer("winner", summary.Winner).Msg("match complete")
	return summary, nil
}

type SessionOption func(s *Session)

// Session greets the player, picks a difficulty and plays matches until the
// player stops.
type Session struct {
	in          Input
	out         Presenter
	newOpponent NewOpponent
	player      string
	difficulty  string
}

func WithPlayer(name string) SessionOption {
	return func(s *Session) {
		s.player = strings.TrimSpace(name)
	}
}

func WithDifficulty(difficulty string) SessionOption {
	return func(s *Session) {
		s.difficulty = difficulty
	}
}

func NewSession(in Input, out Presenter, newOpponent NewOpponent, options ...SessionOption) *Session {
	s := &Session{in: in, out: out, newOpponent: newOpponent}
	for _, option := range options {
		option(s)
	}
	return s
}

// Run returns the summaries of every completed match.
func (s *Session) Run() ([]Summary, error) {
	player, err := s.readPlayer()
	if err != nil {
		return nil, err
	}
	profile, err := s.readDifficulty()
	if err != nil {
		return nil, err
	}

	match := NewMatch(s.newOpponent(profile))
	var summaries []Summary
	for {
		s.out.ShowRules()
		summary, err := RunMatch(match, s.in, s.out, player)
		if err != nil {
			return summaries, err
		}
		summaries = append(summaries, summary)

		again, err := s.readReplay()
		if err != nil || !again {
			return summaries, err
		}
		match.Reset()
	}
}

func (s *Session) readPlayer() (string, error) {
	if s.player != "" {
		return s.player, nil
	}
	for {
		name, err := s.in.ReadLine("Enter your name: ")
		if err != nil {
			return "", fmt.Errorf("read name: %w", err)
		}
		if name = strings.TrimSpace(name); name != "" {
			return name, nil
		}
		s.out.ShowNotice("Please enter a valid name!")
	}
}

func (s *Session) readDifficulty() (game.Profile, error) {
	if s.difficulty != "" {
		profile, err := game.ParseDifficulty(s.difficulty)
		if err == nil {
			return profile, nil
		}
		log.Warn().Err(err).Msg("ignoring configured difficulty")
	}
	for {
		raw, err := s.in.ReadLine("Select difficulty (1 easy, 2 medium, 3 hard, 4 expert): ")
		if err != nil {
			return game.Profile{}, fmt.Errorf("read difficulty: %w", err)
		}
		profile, err := game.ParseDifficulty(raw)
		if err == nil {
			return profile, nil
		}
		s.out.ShowNotice("Invalid choice! Try again.")
	}
}

func (s *Session) readReplay() (bool, error) {
	for {
		raw, err := s.in.ReadLine("Play again? (1 yes, 2 no): ")
		if err != nil {
			return false, fmt.Errorf("read replay: %w", err)
		}
		switch game.Normalize(raw) {
		case "1", "y", "yes":
			return true, nil
		case "2", "n", "no":
			return false, nil
		}
		s.out.ShowNotice("Invalid choice! Please enter 1 or 2.")
	}
}
