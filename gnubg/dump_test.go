package gnubg

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pfrstg/bgend/board"
)

const sampleDump = `
 GNU Backgammon  bearoffdump

Position ID: AQAAAAAAAAAAAA

	Rolls	Player	Opponent
	 0	  0.000000	100.000000
	 1	100.000000	  0.000000

Position ID: YwAAAAAAAAAAAA

	Rolls	Player	Opponent
	 0	  0.000000	100.000000
	 1	 50.000000	 25.000000
	 2	 50.000000	 75.000000
`

func TestParseBearoffDump(t *testing.T) {
	records, err := ParseBearoffDump(strings.NewReader(sampleDump))
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "AQAAAAAAAAAAAA", records[0].PositionID)
	assert.InDeltaSlice(t, []float64{0, 1}, records[0].Dist.Values(), 1e-9)

	assert.Equal(t, "YwAAAAAAAAAAAA", records[1].PositionID)
	assert.InDeltaSlice(t, []float64{0, 0.5, 0.5}, records[1].Dist.Values(), 1e-9)
	assert.True(t, records[1].Dist.IsNormalized())
}

func TestParseBearoffDumpOutOfOrder(t *testing.T) {
	bad := `
Position ID: AQAAAAAAAAAAAA

	Rolls	Player	Opponent
	 1	100.000000	  0.000000
`
	_, err := ParseBearoffDump(strings.NewReader(bad))
	assert.Error(t, err)
}

func TestStoreFromDump(t *testing.T) {
	config, err := board.NewGameConfig(15, 6)
	require.NoError(t, err)

	store, err := StoreFromDump(config, strings.NewReader(sampleDump))
	require.NoError(t, err)
	require.Len(t, store.DistributionMap, 2)

	b, err := board.New(config, []int{14, 1, 0, 0, 0, 0, 0})
	require.NoError(t, err)
	d, ok := store.DistributionMap[b.ID()]
	require.True(t, ok)
	assert.InDeltaSlice(t, []float64{0, 1}, d.Values(), 1e-9)
}
