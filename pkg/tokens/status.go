package tokens

import "math"

// Status is the health band a 0-100 score falls into.
type Status int

const (
	StatusUnknown Status = iota
	StatusOptimal
	StatusGood
	StatusAttention
	StatusConcern
)

// Band thresholds, inclusive lower bounds.
const (
	OptimalThreshold   = 85.0
	GoodThreshold      = 70.0
	AttentionThreshold = 50.0
)

var statusNames = [...]string{
	StatusUnknown:   "unknown",
	StatusOptimal:   "optimal",
	StatusGood:      "good",
	StatusAttention: "attention",
	StatusConcern:   "concern",
}

// String returns the lowercase band name.
func (s Status) String() string {
	if s >= 0 && int(s) < len(statusNames) {
		return statusNames[s]
	}
	return "unknown"
}

// Role maps the band to the semantic colour that represents it.
func (s Status) Role() Role {
	switch s {
	case StatusOptimal:
		return RoleOptimal
	case StatusGood:
		return RoleGood
	case StatusAttention:
		return RoleAttention
	case StatusConcern:
		return RoleConcern
	default:
		return RoleMuted
	}
}

// Hex is shorthand for resolving the band's role.
func (s Status) Hex() string {
	hex, _ := Resolve(s.Role())
	return hex
}

// StatusFor buckets a score. Scores outside 0-100 are clamped; NaN is
// StatusUnknown.
func StatusFor(score float64) Status {
	if math.IsNaN(score) {
		return StatusUnknown
	}
	score = ClampScore(score)
	switch {
	case score >= OptimalThreshold:
		return StatusOptimal
	case score >= GoodThreshold:
		return StatusGood
	case score >= AttentionThreshold:
		return StatusAttention
	default:
		return StatusConcern
	}
}

// ParseStatus converts a band name; unrecognised names are StatusUnknown.
func ParseStatus(name string) Status {
	for i, n := range statusNames {
		if n == name {
			return Status(i)
		}
	}
	return StatusUnknown
}

// ClampScore limits score to [0, 100].
func ClampScore(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
