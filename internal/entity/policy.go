package entity

import (
	"errors"
	"fmt"
	"strings"
)

// PolicyKind values are persisted as-is, keep them stable.
type PolicyKind int

const (
	PolicyInfinite PolicyKind = iota
	PolicyBestOfRounds
	PolicyFirstToPoints
)

const minThreshold = 1

var ErrUnknownPolicy = errors.New("unknown termination policy")

// TerminationPolicy decides when a session, not a round, is over.
type TerminationPolicy struct {
	Kind      PolicyKind
	Threshold int
}

func Infinite() TerminationPolicy {
	return TerminationPolicy{Kind: PolicyInfinite}
}

func BestOfRounds(rounds int) TerminationPolicy {
	return NewTerminationPolicy(PolicyBestOfRounds, rounds)
}

func FirstToPoints(points int) TerminationPolicy {
	return NewTerminationPolicy(PolicyFirstToPoints, points)
}

// NewTerminationPolicy clamps thresholds below one to one. Unknown kinds fall back to Infinite.
func NewTerminationPolicy(kind PolicyKind, threshold int) TerminationPolicy {
	switch kind {
	case PolicyBestOfRounds, PolicyFirstToPoints:
		return TerminationPolicy{Kind: kind, Threshold: max(threshold, minThreshold)}
	default:
		return Infinite()
	}
}

// ParsePolicyKind accepts the names used in config files.
func ParsePolicyKind(name string) (PolicyKind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "infinite":
		return PolicyInfinite, nil
	case "best-of", "best-of-rounds":
		return PolicyBestOfRounds, nil
	case "first-to", "first-to-points":
		return PolicyFirstToPoints, nil
	default:
		return PolicyInfinite, fmt.Errorf("%w: %q", ErrUnknownPolicy, name)
	}
}

// Reached reports whether the session ends after the given round concluded with the given score.
func (that TerminationPolicy) Reached(round int, score Score) bool {
	switch that.Kind {
	case PolicyBestOfRounds:
		return round == that.Threshold
	case PolicyFirstToPoints:
		return score.A == that.Threshold || score.B == that.Threshold
	default:
		return false
	}
}

func (that TerminationPolicy) String() string {
	switch that.Kind {
	case PolicyBestOfRounds:
		return fmt.Sprintf("best of %d rounds", that.Threshold)
	case PolicyFirstToPoints:
		return fmt.Sprintf("first to %d points", that.Threshold)
	default:
		return "infinite"
	}
}
