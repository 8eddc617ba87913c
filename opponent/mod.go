package opponent

import (
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"rpsb/game"
	"rpsb/utils"
)

// Probability that an expert opponent dodges a counter it is predictably playing
const MetaChance = 0.3

// Source is the randomness the opponent draws from. *rand.Rand satisfies it.
type Source interface {
	Float64() float64
	Intn(n int) int
}

type Option func(o *Opponent)

// Opponent picks side B's moves for one difficulty profile.
type Opponent struct {
	profile    game.Profile
	source     Source
	metaChance float64
}

func WithSource(source Source) Option {
	return func(o *Opponent) {
		if source != nil {
			o.source = source
		}
	}
}

func WithSeed(seed uint64) Option {
	return func(o *Opponent) {
		o.source = rand.New(rand.NewSource(seed))
	}
}

func WithMetaChance(chance float64) Option {
	return func(o *Opponent) {
		if chance >= 0 && chance <= 1 {
			o.metaChance = chance
		}
	}
}

func New(profile game.Profile, options ...Option) *Opponent {
	if profile.Strategic < 0 || profile.Strategic > 1 {
		panic("strategic probability must be within [0, 1]")
	}
	o := &Opponent{ // Default values
		profile:    profile,
		metaChance: MetaChance,
	}
	for _, option := range options {
		option(o)
	}
	if o.source == nil {
		o.source = rand.New(rand.NewSource(newSeed()))
	}
	return o
}

func (o *Opponent) Profile() game.Profile {
	return o.profile
}

func newSeed() uint64 {
	seed, err := utils.NewSeed()
	if err != nil {
		log.Warn().Err(err).Msg("falling back to clock seed")
		return uint64(time.Now().UnixNano())
	}
	return seed
}
