// Package dist holds probability distributions over the number of turns left
// to finish a bearoff position.
package dist

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Tolerance when checking that a distribution's mass sums to 1.
const normTolerance = 1e-5

// MoveCountDistribution maps "turns remaining" to probability: entry i is
// the probability of finishing in exactly i more turns. It is a value type;
// all operations return new distributions.
type MoveCountDistribution struct {
	dist []float64
}

// New builds a distribution from explicit entries. With no arguments it
// returns the single-entry zero distribution, matching an uncomputed
// accumulator; use New(1) for the "already finished" distribution.
func New(values ...float64) MoveCountDistribution {
	if len(values) == 0 {
		return MoveCountDistribution{dist: []float64{0}}
	}
	d := make([]float64, len(values))
	copy(d, values)
	return MoveCountDistribution{dist: d}
}

// Values returns a copy of the underlying probabilities.
func (d MoveCountDistribution) Values() []float64 {
	out := make([]float64, len(d.dist))
	copy(out, d.dist)
	return out
}

func (d MoveCountDistribution) Len() int { return len(d.dist) }

func (d MoveCountDistribution) String() string {
	return fmt.Sprintf("MCD(%f, %v)", d.ExpectedValue(), d.dist)
}

func pad(values []float64, n int) []float64 {
	out := make([]float64, n)
	copy(out, values)
	return out
}

// Add sums two distributions elementwise, zero-padding the shorter.
func (d MoveCountDistribution) Add(other MoveCountDistribution) MoveCountDistribution {
	n := max(len(d.dist), len(other.dist))
	out := pad(d.dist, n)
	floats.Add(out, pad(other.dist, n))
	return MoveCountDistribution{dist: out}
}

// Sub subtracts other elementwise, zero-padding the shorter.
func (d MoveCountDistribution) Sub(other MoveCountDistribution) MoveCountDistribution {
	n := max(len(d.dist), len(other.dist))
	out := pad(d.dist, n)
	floats.Sub(out, pad(other.dist, n))
	return MoveCountDistribution{dist: out}
}

// Scale multiplies every entry by c.
func (d MoveCountDistribution) Scale(c float64) MoveCountDistribution {
	out := pad(d.dist, len(d.dist))
	floats.Scale(c, out)
	return MoveCountDistribution{dist: out}
}

// Div divides every entry by c.
func (d MoveCountDistribution) Div(c float64) MoveCountDistribution {
	out := make([]float64, len(d.dist))
	for i, v := range d.dist {
		out[i] = v / c
	}
	return MoveCountDistribution{dist: out}
}

// IncreaseCounts prepends amount zero entries, shifting the whole
// distribution's support up: finishing now takes that many more turns than
// measured from the shifted-from position.
func (d MoveCountDistribution) IncreaseCounts(amount int) MoveCountDistribution {
	out := make([]float64, amount+len(d.dist))
	copy(out[amount:], d.dist)
	return MoveCountDistribution{dist: out}
}

// Append extends the distribution with extra trailing entries.
func (d MoveCountDistribution) Append(values ...float64) MoveCountDistribution {
	out := make([]float64, 0, len(d.dist)+len(values))
	out = append(out, d.dist...)
	out = append(out, values...)
	return MoveCountDistribution{dist: out}
}

// IsNormalized reports whether the total mass is 1 within tolerance.
func (d MoveCountDistribution) IsNormalized() bool {
	return math.Abs(floats.Sum(d.dist)-1) < normTolerance
}

// ExpectedValue is the mean number of turns remaining.
func (d MoveCountDistribution) ExpectedValue() float64 {
	ev := 0.0
	for i, p := range d.dist {
		ev += float64(i) * p
	}
	return ev
}
