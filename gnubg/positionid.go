// Package gnubg interfaces with GNU Backgammon's bearoff databases, used
// only to cross-validate our own computed stores.
package gnubg

import (
	"encoding/base64"
	"fmt"
	"math/bits"

	"github.com/pfrstg/bgend/board"
)

// PositionIDToBoard converts a Base64 position ID from gnubg to a Board.
//
// gnubg's one-sided encoding is the same stars-and-bars scheme as ours except
// that it omits the bits for markers already borne off. We recover those by
// counting how many markers are missing from the population count, shifting
// the id up past the off pile's separator, and OR-ing the missing markers in
// as low bits. See gnubg's "A technical description of the Position ID" doc
// for the little-endian byte layout.
func PositionIDToBoard(config *board.GameConfig, posIDStr string) (*board.Board, error) {
	data, err := base64.StdEncoding.DecodeString(posIDStr + "==")
	if err != nil {
		return nil, fmt.Errorf("bad position id %q: %w", posIDStr, err)
	}

	var posID uint64
	for i, b := range data {
		if i >= 8 {
			if b != 0 {
				return nil, fmt.Errorf("position id %q does not fit in 64 bits", posIDStr)
			}
			continue
		}
		posID |= uint64(b) << (8 * i)
	}

	missing := config.NumMarkers - bits.OnesCount64(posID)
	if missing < 0 {
		return nil, fmt.Errorf("position id %q has %d markers, expected at most %d",
			posIDStr, bits.OnesCount64(posID), config.NumMarkers)
	}
	modified := posID<<(missing+1) | (1<<missing - 1)

	return board.FromID(config, modified)
}
