package board

// Roll is one of the 21 distinct two-die rolls. Doubles carry four dice
// (each die is played twice) at probability 1/36; the 15 mixed pairs carry
// two dice at 1/18 (either die can come up on either cube).
type Roll struct {
	Dice []int
	Prob float64
}

// Rolls holds the 21 canonical rolls; their probabilities sum to 1.
var Rolls = generateRolls()

func generateRolls() []Roll {
	out := make([]Roll, 0, 21)
	for d1 := 1; d1 <= 6; d1++ {
		for d2 := d1; d2 <= 6; d2++ {
			if d1 == d2 {
				out = append(out, Roll{Dice: []int{d1, d1, d1, d1}, Prob: 1.0 / 36})
			} else {
				out = append(out, Roll{Dice: []int{d1, d2}, Prob: 1.0 / 18})
			}
		}
	}
	return out
}
