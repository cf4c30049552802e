package domain

import "fmt"

// Rules tunes how ties are resolved.
type Rules struct {
	// WarDepth is how many cards each player commits to a war, the tied card
	// included. The last of them is the face-up card that decides the war.
	WarDepth int
	// MADOnFaceUpTie turns a war whose face-up cards also tie into mutually
	// assured destruction.
	MADOnFaceUpTie bool
}

const (
	RulesetStandard = "standard"
	RulesetClassic  = "classic"
)

// StandardRules commit four cards per player and compare the fourth.
func StandardRules() Rules {
	return Rules{WarDepth: 4, MADOnFaceUpTie: false}
}

// ClassicRules commit three cards per player, compare the third, and destroy
// everything when the third cards tie as well.
func ClassicRules() Rules {
	return Rules{WarDepth: 3, MADOnFaceUpTie: true}
}

// RulesetByName resolves a named ruleset. The empty name is the standard one.
func RulesetByName(name string) (Rules, error) {
	switch name {
	case "", RulesetStandard:
		return StandardRules(), nil
	case RulesetClassic:
		return ClassicRules(), nil
	default:
		return Rules{}, fmt.Errorf("%w: unknown ruleset %q", ErrInvalidRules, name)
	}
}

// Validate checks that a war has at least one card beneath the tied one.
func (r Rules) Validate() error {
	if r.WarDepth < 2 {
		return fmt.Errorf("%w: war depth %d must be at least 2", ErrInvalidRules, r.WarDepth)
	}
	return nil
}

func (r Rules) faceUpIndex() int {
	return r.WarDepth - 1
}
