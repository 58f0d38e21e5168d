package gnubg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pfrstg/bgend/board"
)

func TestPositionIDToBoard(t *testing.T) {
	config, err := board.NewGameConfig(15, 6)
	require.NoError(t, err)

	cases := []struct {
		posID      string
		spotCounts []int
	}{
		// gnubg bearoff position indexes 1, 2, 99, 33333, and 50000
		{"AQAAAAAAAAAAAA", []int{14, 1, 0, 0, 0, 0, 0}},
		{"AgAAAAAAAAAAAA", []int{14, 0, 1, 0, 0, 0, 0}},
		{"YwAAAAAAAAAAAA", []int{11, 2, 0, 0, 2, 0, 0}},
		{"/R8FAAAAAAAAAA", []int{1, 1, 11, 0, 0, 1, 1}},
		{"uX8HAAAAAAAAAA", []int{0, 1, 0, 3, 8, 3, 0}},
	}
	for _, c := range cases {
		b, err := PositionIDToBoard(config, c.posID)
		require.NoError(t, err, "position id %s", c.posID)
		assert.Equal(t, c.spotCounts, b.SpotCounts(), "position id %s", c.posID)
	}
}

func TestPositionIDToBoardErrors(t *testing.T) {
	config, err := board.NewGameConfig(15, 6)
	require.NoError(t, err)

	_, err = PositionIDToBoard(config, "!!!!")
	assert.Error(t, err)

	// more markers than the configuration allows
	_, err = PositionIDToBoard(config, "//////////////")
	assert.Error(t, err)
}
