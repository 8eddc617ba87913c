package opponent

import (
	"testing"

	"github.com/stretchr/testify/require"

	"rpsb/game"
)

func mustProfile(t *testing.T, d game.Difficulty) game.Profile {
	t.Helper()
	p, err := game.ProfileFor(d)
	require.NoError(t, err)
	return p
}

func TestChooseMoveRandom(t *testing.T) {
	t.Run("draws from all four moves while the bomb is unused", func(t *testing.T) {
		source := &mockSource{floats: []float64{0.95}, ints: []int{3}}
		o := New(mustProfile(t, game.Easy), WithSource(source))

		got := o.ChooseMove(Situation{Round: 1})

		require.Equal(t, game.Bomb, got)
		require.Equal(t, 4, source.lastN, "Random draw should include the bomb")
	})

	t.Run("drops the bomb once it is used", func(t *testing.T) {
		source := &mockSource{floats: []float64{0.95}, ints: []int{2}}
		o := New(mustProfile(t, game.Easy), WithSource(source))

		got := o.ChooseMove(Situation{Round: 2, BombUsed: true})

		require.Equal(t, game.Scissors, got)
		require.Equal(t, 3, source.lastN, "Random draw should exclude the bomb")
	})

	t.Run("sample equal to the strategic probability stays strategic", func(t *testing.T) {
		source := &mockSource{floats: []float64{0.6}, ints: []int{0}}
		o := New(mustProfile(t, game.Medium), WithSource(source))

		got := o.ChooseMove(Situation{Round: 1})

		require.Equal(t, game.Rock, got)
		require.Equal(t, 3, source.lastN, "Empty history should fall back to a classic move")
	})
}

func TestChooseMoveStrategic(t *testing.T) {
	t.Run("counters the rival's most frequent move", func(t *testing.T) {
		h := historyOf(
			[]game.Move{game.Rock, game.Paper, game.Rock},
			[]game.Move{game.Rock, game.Rock, game.Rock},
		)
		o := New(mustProfile(t, game.Medium), WithSource(&mockSource{floats: []float64{0.1}}))

		got := o.ChooseMove(Situation{History: h, Round: 4})

		require.Equal(t, game.Paper, got)
	})

	t.Run("ignores rival bombs in the frequency count", func(t *testing.T) {
		h := historyOf([]game.Move{game.Bomb}, []game.Move{game.Rock})
		source := &mockSource{floats: []float64{0.1}, ints: []int{1}}
		o := New(mustProfile(t, game.Medium), WithSource(source))

		got := o.ChooseMove(Situation{History: h, Round: 2, RivalScore: 1})

		require.Equal(t, game.Paper, got, "Only bombs seen should fall back to a random classic move")
	})

	t.Run("repeated move overrides the frequency counter when patterns are enabled", func(t *testing.T) {
		rival := []game.Move{game.Rock, game.Rock, game.Rock, game.Paper, game.Paper}
		own := []game.Move{game.Scissors, game.Scissors, game.Scissors, game.Scissors, game.Scissors}
		h := historyOf(rival, own)

		medium := New(mustProfile(t, game.Medium), WithSource(&mockSource{floats: []float64{0.1}}))
		hard := New(mustProfile(t, game.Hard), WithSource(&mockSource{floats: []float64{0.1}}))

		require.Equal(t, game.Paper, medium.ChooseMove(Situation{History: h, Round: 6}))
		require.Equal(t, game.Scissors, hard.ChooseMove(Situation{History: h, Round: 6}))
	})

	t.Run("period-2 cycle overrides the frequency counter", func(t *testing.T) {
		rival := []game.Move{game.Paper, game.Scissors, game.Paper}
		own := []game.Move{game.Rock, game.Rock, game.Rock}
		h := historyOf(rival, own)
		o := New(mustProfile(t, game.Hard), WithSource(&mockSource{floats: []float64{0.1}}))

		got := o.ChooseMove(Situation{History: h, Round: 4, OwnScore: 1, RivalScore: 1})

		require.Equal(t, game.Rock, got, "Predicted scissors should be countered with rock")
	})

	t.Run("bombs when behind in the final round", func(t *testing.T) {
		h := historyOf(
			[]game.Move{game.Rock, game.Rock},
			[]game.Move{game.Scissors, game.Rock},
		)
		o := New(mustProfile(t, game.Easy), WithSource(&mockSource{floats: []float64{0.1}}))

		got := o.ChooseMove(Situation{History: h, Round: game.MAX_ROUNDS, RivalScore: 1})

		require.Equal(t, game.Bomb, got)
	})

	t.Run("no tactical bomb once the bomb is used", func(t *testing.T) {
		h := historyOf(
			[]game.Move{game.Rock, game.Rock},
			[]game.Move{game.Bomb, game.Scissors},
		)
		o := New(mustProfile(t, game.Easy), WithSource(&mockSource{floats: []float64{0.1}}))

		got := o.ChooseMove(Situation{History: h, Round: game.MAX_ROUNDS, OwnScore: 1, RivalScore: 2, BombUsed: true})

		require.Equal(t, game.Paper, got)
	})

	t.Run("no tactical bomb when not behind", func(t *testing.T) {
		h := historyOf(
			[]game.Move{game.Rock, game.Scissors},
			[]game.Move{game.Paper, game.Paper},
		)
		o := New(mustProfile(t, game.Medium), WithSource(&mockSource{floats: []float64{0.1}}))

		got := o.ChooseMove(Situation{History: h, Round: game.MAX_ROUNDS, OwnScore: 1, RivalScore: 1})

		require.NotEqual(t, game.Bomb, got)
		require.Equal(t, game.Paper, got)
	})
}

func TestChooseMoveMeta(t *testing.T) {
	h := historyOf(
		[]game.Move{game.Rock, game.Rock},
		[]game.Move{game.Paper, game.Paper},
	)
	s := Situation{History: h, Round: game.MAX_ROUNDS, OwnScore: 2}

	t.Run("expert dodges its own predictable counter", func(t *testing.T) {
		o := New(mustProfile(t, game.Expert), WithSource(&mockSource{floats: []float64{0.1, 0.1}}))
		require.Equal(t, game.Scissors, o.ChooseMove(s), "Should counter the rival's second most frequent move")
	})

	t.Run("expert keeps the counter when the meta draw fails", func(t *testing.T) {
		o := New(mustProfile(t, game.Expert), WithSource(&mockSource{floats: []float64{0.1, 0.5}}))
		require.Equal(t, game.Paper, o.ChooseMove(s))
	})

	t.Run("meta chance is configurable", func(t *testing.T) {
		o := New(mustProfile(t, game.Expert),
			WithSource(&mockSource{floats: []float64{0.1, 0.5}}),
			WithMetaChance(0.9))
		require.Equal(t, game.Scissors, o.ChooseMove(s))
	})

	t.Run("hard never applies the meta adjustment", func(t *testing.T) {
		o := New(mustProfile(t, game.Hard), WithSource(&mockSource{floats: []float64{0.1}}))
		require.Equal(t, game.Paper, o.ChooseMove(s))
	})
}

func TestChooseMoveInvariants(t *testing.T) {
	t.Run("never returns a bomb once used", func(t *testing.T) {
		for _, d := range game.Difficulties {
			o := New(mustProfile(t, d), WithSeed(42))
			for i := 0; i < 500; i++ {
				s := Situation{
					History:    historyOf([]game.Move{game.Rock, game.Paper}, []game.Move{game.Bomb, game.Rock}),
					Round:      1 + i%game.MAX_ROUNDS,
					RivalScore: 2,
					BombUsed:   true,
				}
				got := o.ChooseMove(s)
				require.NotEqual(t, game.Bomb, got, "difficulty %s", d)
				require.True(t, got.IsValid())
			}
		}
	})

	t.Run("does not modify the history", func(t *testing.T) {
		h := historyOf([]game.Move{game.Rock, game.Rock}, []game.Move{game.Paper, game.Scissors})
		snapshot := append(History(nil), h...)
		o := New(mustProfile(t, game.Expert), WithSeed(7))

		for i := 0; i < 50; i++ {
			o.ChooseMove(Situation{History: h, Round: 3})
		}

		require.Equal(t, snapshot, h)
	})

	t.Run("same seed, same moves", func(t *testing.T) {
		o1 := New(mustProfile(t, game.Hard), WithSeed(1234))
		o2 := New(mustProfile(t, game.Hard), WithSeed(1234))
		s := Situation{History: historyOf([]game.Move{game.Paper}, []game.Move{game.Rock}), Round: 2}
		for i := 0; i < 20; i++ {
			require.Equal(t, o1.ChooseMove(s), o2.ChooseMove(s))
		}
	})
}

func TestNew(t *testing.T) {
	t.Run("panics with an out-of-range strategic probability", func(t *testing.T) {
		require.Panics(t, func() {
			New(game.Profile{Level: game.Easy, Strategic: 1.5})
		})
	})

	t.Run("defaults to a seeded source", func(t *testing.T) {
		o := New(mustProfile(t, game.Medium))
		require.NotNil(t, o.source)
		require.Equal(t, MetaChance, o.metaChance)
		require.Equal(t, game.Medium, o.Profile().Level)
	})
}
