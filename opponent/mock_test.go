package opponent

import "rpsb/game"

// mockSource replays scripted random draws and remembers the last Intn bound.
type mockSource struct {
	floats []float64
	ints   []int
	lastN  int
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
	if i >= n {
		panic("mockSource: scripted int out of range")
	}
	m.lastN = n
	return i
}

func historyOf(rival, own []game.Move) History {
	h := make(History, len(rival))
	for i := range rival {
		h[i] = Exchange{A: rival[i], B: own[i]}
	}
	return h
}
