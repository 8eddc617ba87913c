package game

import "fmt"

type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
	Expert Difficulty = "expert"
)

// Profile is the immutable opponent configuration picked once per match.
type Profile struct {
	Level            Difficulty
	Strategic        float64 // Probability of a history-informed move
	PatternDetection bool    // Counter repeats and period-2 cycles
	Meta             bool    // Avoid being counter-exploited
}

var profiles = map[Difficulty]Profile{
	Easy:   {Level: Easy, Strategic: 0.3},
	Medium: {Level: Medium, Strategic: 0.6},
	Hard:   {Level: Hard, Strategic: 0.8, PatternDetection: true},
	Expert: {Level: Expert, Strategic: 0.9, PatternDetection: true, Meta: true},
}

// Difficulties in menu order.
var Difficulties = []Difficulty{Easy, Medium, Hard, Expert}

// ProfileFor returns the preset for a difficulty.
func ProfileFor(d Difficulty) (Profile, error) {
	p, ok := profiles[d]
	if !ok {
		return Profile{}, fmt.Errorf("unknown difficulty %q", string(d))
	}
	return p, nil
}

// ParseDifficulty accepts a difficulty name or its menu number (1-4).
func ParseDifficulty(raw string) (Profile, error) {
	token := Normalize(raw)
	switch token {
	case "1", "2", "3", "4":
		return profiles[Difficulties[token[0]-'1']], nil
	}
	return ProfileFor(Difficulty(token))
}
