// Package board implements the game state for a generalized backgammon
// bearoff endgame: markers race home over a fixed number of spots and are
// borne off at spot 0.
//
// Board states map to integer ids with a "stars and bars" encoding. A state
// of N markers on M spots (plus the off-the-board pile) becomes a bit string
// of N+M bits: 1 bits are markers, 0 bits separate one spot from the next.
// The off pile is the run of 1s below the first separator, spot 1 the next
// run, and so on. A valid id therefore has exactly N bits set, and the number
// of valid states is C(N+M, M).
//
// The payoff of this encoding is that every legal move shifts markers toward
// lower bit positions, so the resulting id is always strictly smaller than
// the source id. Iterating ids in ascending order then guarantees that every
// position reachable from the current one has already been visited.
package board

import (
	"errors"
	"fmt"
	"math/bits"

	"gonum.org/v1/gonum/stat/combin"
)

var (
	ErrInvalidID         = errors.New("invalid board id")
	ErrInvalidSpotCounts = errors.New("invalid spot counts")
	ErrInvalidMove       = errors.New("invalid move")
)

// GameConfig holds the combinatorial parameters of a bearoff game and the
// derived bounds of its id space. It is constructed once and treated as
// read-only; Boards and stores share a pointer to it.
type GameConfig struct {
	NumMarkers int
	NumSpots   int
	// NumValidBoards is C(NumMarkers+NumSpots, NumSpots).
	NumValidBoards int
	// MinBoardID encodes the all-borne-off state (lowest NumMarkers bits set).
	MinBoardID uint64
	// MaxBoardID is an exclusive upper bound (one past the highest valid id).
	MaxBoardID uint64
}

func NewGameConfig(numMarkers, numSpots int) (*GameConfig, error) {
	if numMarkers < 1 || numSpots < 1 {
		return nil, fmt.Errorf("need at least 1 marker and 1 spot, got %d and %d",
			numMarkers, numSpots)
	}
	if numMarkers+numSpots > 63 {
		return nil, fmt.Errorf("markers+spots must fit in 63 bits, got %d",
			numMarkers+numSpots)
	}
	c := &GameConfig{
		NumMarkers:     numMarkers,
		NumSpots:       numSpots,
		NumValidBoards: combin.Binomial(numMarkers+numSpots, numSpots),
	}
	c.MinBoardID = 1<<numMarkers - 1
	// Highest valid id has all markers on the last spot; add 1 for exclusive.
	c.MaxBoardID = (1<<numMarkers-1)<<numSpots + 1
	return c, nil
}

func (c *GameConfig) IsValidID(id uint64) bool {
	return id >= c.MinBoardID && id < c.MaxBoardID &&
		bits.OnesCount64(id) == c.NumMarkers
}

// NextValidID returns the smallest valid id greater than id, or false if id
// is already the maximum. It is the bit-manipulation twin of
// Board.NextValidBoard: the lowest block of 1s loses its top bit to the next
// separator slot up, and the rest of the block repacks down to bit 0.
func (c *GameConfig) NextValidID(id uint64) (uint64, bool) {
	if id >= c.MaxBoardID-1 {
		return 0, false
	}

	firstOne := bits.TrailingZeros64(id)
	runLen := bits.TrailingZeros64(^(id >> firstOne))
	blockEnd := firstOne + runLen - 1

	// upperMask covers the top bit of the block and everything above it.
	upperMask := ^uint64(0) << blockEnd
	// The xor swaps the 01 at the top of the block, carrying one marker into
	// the next higher spot.
	upper := (id & upperMask) ^ (3 << blockEnd)
	lower := (id &^ upperMask) >> firstOne

	return upper | lower, true
}

// IDIterator enumerates every valid id in ascending order. Each call to
// ValidIDs returns a fresh iterator, so enumeration is restartable.
type IDIterator struct {
	config *GameConfig
	next   uint64
	done   bool
}

func (c *GameConfig) ValidIDs() *IDIterator {
	return &IDIterator{config: c, next: c.MinBoardID}
}

func (it *IDIterator) Next() (uint64, bool) {
	if it.done {
		return 0, false
	}
	id := it.next
	succ, ok := it.config.NextValidID(id)
	if ok {
		it.next = succ
	} else {
		it.done = true
	}
	return id, true
}
