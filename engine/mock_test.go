package engine

import (
	"io"

	"rpsb/game"
	"rpsb/opponent"
)

type mockSource struct {
	floats []float64
	ints   []int
}

func (m *mockSource) Float64() float64 {
	if len(m.floats) == 0 {
		panic("mockSource: no more floats")
	}
	f := m.floats[0]
	m.floats = m.floats[1:]
	return f
}

func (m *mockSource) Intn(n int) int {
	if len(m.ints) == 0 {
		panic("mockSource: no more ints")
	}
	i := m.ints[0]
	m.ints = m.ints[1:]
	return i % n
}

type mockInput struct {
	lines   []string
	prompts []string
}

func (m *mockInput) ReadLine(prompt string) (string, error) {
	m.prompts = append(m.prompts, prompt)
	if len(m.lines) == 0 {
		return "", io.EOF
	}
	line := m.lines[0]
	m.lines = m.lines[1:]
	return line, nil
}

type mockPresenter struct {
	rules   int
	notices []string
	rounds  []Update
	finals  []Summary
}

func (m *mockPresenter) ShowRules()                   { m.rules++ }
func (m *mockPresenter) ShowNotice(msg string)        { m.notices = append(m.notices, msg) }
func (m *mockPresenter) ShowRound(u Update, _ string) { m.rounds = append(m.rounds, u) }
func (m *mockPresenter) ShowFinal(s Summary)          { m.finals = append(m.finals, s) }

// randomOpponent always takes the random branch and plays the scripted indexes
// into game.Moves (or game.Classic once its bomb is spent).
func randomOpponent(d game.Difficulty, picks ...int) *opponent.Opponent {
	profile, err := game.ProfileFor(d)
	if err != nil {
		panic(err)
	}
	floats := make([]float64, len(picks))
	for i := range floats {
		floats[i] = 0.99
	}
	return opponent.New(profile, opponent.WithSource(&mockSource{floats: floats, ints: picks}))
}
