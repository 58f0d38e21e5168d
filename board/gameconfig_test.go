package board

import (
	"math/bits"
	"testing"

	"github.com/matryer/is"
)

func TestNewGameConfig3Markers2Spots(t *testing.T) {
	is := is.New(t)
	config, err := NewGameConfig(3, 2)
	is.NoErr(err)
	is.Equal(config.NumValidBoards, 10)
	// 5 total bits, 00111 is the min
	is.Equal(config.MinBoardID, uint64(7))
	// 5 total bits, 11100 is the max, adding 1 for exclusive
	is.Equal(config.MaxBoardID, uint64(29))
}

func TestNewGameConfigErrors(t *testing.T) {
	is := is.New(t)
	_, err := NewGameConfig(0, 3)
	is.True(err != nil)
	_, err = NewGameConfig(3, 0)
	is.True(err != nil)
	_, err = NewGameConfig(40, 30)
	is.True(err != nil)
}

var configCases = []struct {
	numMarkers int
	numSpots   int
}{
	{5, 3},
	{10, 5},
}

func TestIsValidIDCounts(t *testing.T) {
	is := is.New(t)
	for _, c := range configCases {
		config, err := NewGameConfig(c.numMarkers, c.numSpots)
		is.NoErr(err)
		countValid := 0
		for id := config.MinBoardID; id < config.MaxBoardID; id++ {
			if config.IsValidID(id) {
				is.Equal(bits.OnesCount64(id), config.NumMarkers)
				countValid++
			}
		}
		is.Equal(config.NumValidBoards, countValid)
	}
}

func TestValidIDsLength(t *testing.T) {
	is := is.New(t)
	for _, c := range configCases {
		config, err := NewGameConfig(c.numMarkers, c.numSpots)
		is.NoErr(err)
		count := 0
		it := config.ValidIDs()
		for {
			_, ok := it.Next()
			if !ok {
				break
			}
			count++
		}
		is.Equal(config.NumValidBoards, count)
	}
}

// NextValidID must agree with a brute-force scan for the next id with the
// right population count, over the whole id space.
func TestNextValidID(t *testing.T) {
	is := is.New(t)
	for _, c := range configCases {
		config, err := NewGameConfig(c.numMarkers, c.numSpots)
		is.NoErr(err)

		boardID := config.MinBoardID
		for {
			nextID, ok := config.NextValidID(boardID)

			expectedID := boardID + 1
			expectedOK := true
			for !config.IsValidID(expectedID) {
				expectedID++
				if expectedID >= config.MaxBoardID {
					expectedOK = false
					break
				}
			}

			is.Equal(ok, expectedOK)
			if !ok {
				break
			}
			is.Equal(nextID, expectedID)
			is.True(nextID > boardID) // successors ascend
			boardID = nextID
		}
	}
}

func TestValidIDsRestartable(t *testing.T) {
	is := is.New(t)
	config, err := NewGameConfig(3, 2)
	is.NoErr(err)

	first, ok := config.ValidIDs().Next()
	is.True(ok)
	again, ok := config.ValidIDs().Next()
	is.True(ok)
	is.Equal(first, again)
	is.Equal(first, config.MinBoardID)
}
