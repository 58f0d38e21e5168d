package board

import (
	"fmt"
	"slices"
	"strings"
)

// Board is one state of the endgame. spotCounts has NumSpots+1 entries:
// index 0 is the off-the-board pile, indices 1..NumSpots count markers at
// that distance from home. Boards are logically immutable; every mutating
// operation returns a new Board and shares the GameConfig pointer.
type Board struct {
	config     *GameConfig
	spotCounts []int
}

// New builds a Board from explicit spot counts, validating length and total.
func New(config *GameConfig, spotCounts []int) (*Board, error) {
	if len(spotCounts) != config.NumSpots+1 {
		return nil, fmt.Errorf("%w: bad size for %v, expected %d",
			ErrInvalidSpotCounts, spotCounts, config.NumSpots+1)
	}
	total := 0
	for _, n := range spotCounts {
		if n < 0 {
			return nil, fmt.Errorf("%w: negative count in %v",
				ErrInvalidSpotCounts, spotCounts)
		}
		total += n
	}
	if total != config.NumMarkers {
		return nil, fmt.Errorf("%w: total markers %d in %v not expected number %d",
			ErrInvalidSpotCounts, total, spotCounts, config.NumMarkers)
	}
	return &Board{config: config, spotCounts: slices.Clone(spotCounts)}, nil
}

// FromID decodes a board id. The id's 1 bits are markers, 0 bits advance to
// the next spot, scanning from the low bit up.
func FromID(config *GameConfig, id uint64) (*Board, error) {
	if !config.IsValidID(id) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidID, id)
	}
	spotCounts := make([]int, config.NumSpots+1)
	currentSpot := 0
	currentCount := 0
	for i := 0; i < config.NumMarkers+config.NumSpots; i++ {
		if id&(1<<i) != 0 {
			currentCount++
		} else {
			spotCounts[currentSpot] = currentCount
			currentSpot++
			currentCount = 0
		}
	}
	spotCounts[currentSpot] = currentCount
	return &Board{config: config, spotCounts: spotCounts}, nil
}

func (b *Board) Config() *GameConfig { return b.config }

// SpotCount returns the number of markers on the given spot (0 = off pile).
func (b *Board) SpotCount(spot int) int { return b.spotCounts[spot] }

// SpotCounts returns a copy of the full spot-count slice.
func (b *Board) SpotCounts() []int { return slices.Clone(b.spotCounts) }

func (b *Board) Equal(other *Board) bool {
	return slices.Equal(b.spotCounts, other.spotCounts)
}

func (b *Board) String() string {
	return fmt.Sprintf("Board(%v)", b.spotCounts)
}

// ID is the inverse of FromID: each spot emits its markers as 1 bits followed
// by a 0 separator; the last spot needs no trailing separator.
func (b *Board) ID() uint64 {
	var id uint64
	bitIdx := 0
	for spot := 0; spot <= b.config.NumSpots; spot++ {
		for i := 0; i < b.spotCounts[spot]; i++ {
			id |= 1 << bitIdx
			bitIdx++
		}
		bitIdx++
	}
	return id
}

func (b *Board) IsFinished() bool {
	return b.spotCounts[0] == b.config.NumMarkers
}

// TotalPips is the summed distance-to-home over all markers still in play.
func (b *Board) TotalPips() int {
	pips := 0
	for spot := 1; spot <= b.config.NumSpots; spot++ {
		pips += spot * b.spotCounts[spot]
	}
	return pips
}

func (b *Board) clone() *Board {
	return &Board{config: b.config, spotCounts: slices.Clone(b.spotCounts)}
}

// NextValidBoard returns the board with the next larger id, or false if this
// is the maximum (all markers on the last spot). From the lowest-indexed
// non-empty spot below the last one, a single marker moves up a spot and the
// rest of that spot's markers drop to the off pile.
func (b *Board) NextValidBoard() (*Board, bool) {
	for spotIdx := 0; spotIdx < b.config.NumSpots; spotIdx++ {
		if b.spotCounts[spotIdx] == 0 {
			continue
		}
		out := b.clone()
		n := out.spotCounts[spotIdx]
		out.spotCounts[spotIdx+1]++
		out.spotCounts[spotIdx] = 0
		out.spotCounts[0] = n - 1
		return out, true
	}
	return nil, false
}

// ApplyMove plays a single die and returns the resulting board. A move past
// spot 0 (count > spot) bears the marker off, and is only legal when no
// marker sits on a higher spot.
func (b *Board) ApplyMove(m Move) (*Board, error) {
	if m.Spot < 1 || m.Spot > b.config.NumSpots {
		return nil, fmt.Errorf("%w: bad spot in %v on %v", ErrInvalidMove, m, b)
	}
	if b.spotCounts[m.Spot] < 1 {
		return nil, fmt.Errorf("%w: no marker for %v on %v", ErrInvalidMove, m, b)
	}
	out := b.clone()
	out.spotCounts[m.Spot]--
	if m.Count > m.Spot {
		for i := m.Spot + 1; i <= b.config.NumSpots; i++ {
			if out.spotCounts[i] != 0 {
				return nil, fmt.Errorf(
					"%w: overflow move %v invalid when spot %d still has markers on %v",
					ErrInvalidMove, m, i, b)
			}
		}
		out.spotCounts[0]++
	} else {
		out.spotCounts[m.Spot-m.Count]++
	}
	return out, nil
}

// ApplyMoves folds ApplyMove over the list, failing on the first bad step.
// The receiver is never modified.
func (b *Board) ApplyMoves(moves MoveList) (*Board, error) {
	out := b
	for _, m := range moves {
		var err error
		out, err = out.ApplyMove(m)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

// GenerateMoves returns every legal way to play the roll's dice in index
// order, and additionally in reversed order for non-double rolls, since
// playing the dice in the other order can reach boards the forward order
// cannot. Each MoveList has one move per die unless the board finishes
// early. Different lists may produce identical resulting boards; callers
// dedupe by resulting id.
func (b *Board) GenerateMoves(roll Roll) []MoveList {
	out := b.generateMoves(roll, 0, 1, nil, nil)
	if roll.Dice[0] != roll.Dice[1] {
		out = b.generateMoves(roll, len(roll.Dice)-1, -1, nil, out)
	}
	return out
}

func (b *Board) generateMoves(roll Roll, rollIdx, step int, moves MoveList,
	acc []MoveList) []MoveList {

	if rollIdx < 0 || rollIdx >= len(roll.Dice) || b.IsFinished() {
		return append(acc, slices.Clone(moves))
	}
	die := roll.Dice[rollIdx]
	foundMarkers := false
	for spotIdx := b.config.NumSpots; spotIdx >= 1; spotIdx-- {
		// Once any source has been seen, spots closer to home than the die
		// are no longer legal sources (that would be a blocked overflow).
		if foundMarkers && spotIdx < die {
			break
		}
		if b.spotCounts[spotIdx] > 0 {
			foundMarkers = true
			m := Move{Spot: spotIdx, Count: die}
			next, err := b.ApplyMove(m)
			if err != nil {
				// the scan above only reaches legal sources
				panic(err)
			}
			acc = next.generateMoves(roll, rollIdx+step, step,
				append(slices.Clone(moves), m), acc)
		}
	}
	return acc
}

// PrettyString renders the board one spot per line, optionally with one
// column per move showing its source, path, and destination.
func (b *Board) PrettyString(moves MoveList) string {
	width := slices.Max(b.spotCounts) + 1
	out := make([]string, b.config.NumSpots+1)
	for spot := 0; spot <= b.config.NumSpots; spot++ {
		out[spot] = fmt.Sprintf("%d %d %-*s", spot, b.spotCounts[spot],
			width, strings.Repeat("o", b.spotCounts[spot]))
	}

	for _, m := range moves {
		moveEnd := max(m.Spot-m.Count, 0)
		for spotIdx := b.config.NumSpots; spotIdx >= 0; spotIdx-- {
			var s string
			switch {
			case spotIdx > m.Spot:
				s = "  "
			case spotIdx == m.Spot:
				s = fmt.Sprintf("%d ", m.Count)
			case spotIdx > moveEnd:
				s = "| "
			case spotIdx == m.Spot-m.Count:
				s = "x "
			case spotIdx == moveEnd:
				s = "+ "
			default:
				s = "  "
			}
			out[spotIdx] += s
		}
	}

	return strings.Join(out, "\n") + "\n"
}
