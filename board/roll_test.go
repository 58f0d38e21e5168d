package board

import (
	"math"
	"testing"

	"github.com/matryer/is"
)

func TestRolls(t *testing.T) {
	is := is.New(t)
	is.Equal(len(Rolls), 21)

	sum := 0.0
	doubles := 0
	for _, roll := range Rolls {
		sum += roll.Prob
		if len(roll.Dice) == 4 {
			doubles++
			is.Equal(roll.Dice[0], roll.Dice[1])
			is.Equal(roll.Prob, 1.0/36)
		} else {
			is.Equal(len(roll.Dice), 2)
			is.True(roll.Dice[0] != roll.Dice[1])
			is.Equal(roll.Prob, 1.0/18)
		}
	}
	is.Equal(doubles, 6)
	is.True(math.Abs(sum-1) < 1e-12)
}
