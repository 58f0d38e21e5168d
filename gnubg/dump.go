package gnubg

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"

	"gonum.org/v1/gonum/floats"

	"github.com/pfrstg/bgend/board"
	"github.com/pfrstg/bgend/dist"
	"github.com/pfrstg/bgend/strategy"
)

// DumpRecord is one position from a gnubg bearoffdump text dump: the Base64
// position id and the distribution over rolls to bear off.
type DumpRecord struct {
	PositionID string
	Dist       dist.MoveCountDistribution
}

var (
	positionIDRe = regexp.MustCompile(`Position ID\s*:?\s*([A-Za-z0-9+/]+)`)
	rollsHdrRe   = regexp.MustCompile(`\bRolls\b`)
	rollRowRe    = regexp.MustCompile(`^\s*(\d+)\s+([0-9.]+)`)
)

// ParseBearoffDump extracts position records from bearoffdump output. A
// record is a "Position ID" line followed by a table whose header mentions
// "Rolls"; each table row carries the roll count and the player's
// probability. gnubg prints probabilities in percent; values are rescaled to
// mass 1 when a record's total is near 100.
func ParseBearoffDump(r io.Reader) ([]DumpRecord, error) {
	var records []DumpRecord
	scanner := bufio.NewScanner(r)

	var (
		curID   string
		inTable bool
		values  []float64
	)
	flush := func() {
		if curID == "" || len(values) == 0 {
			return
		}
		if total := floats.Sum(values); total > 50 {
			floats.Scale(1/total, values)
		}
		records = append(records, DumpRecord{
			PositionID: curID,
			Dist:       dist.New(values...),
		})
		curID = ""
		inTable = false
		values = nil
	}

	for scanner.Scan() {
		line := scanner.Text()
		if m := positionIDRe.FindStringSubmatch(line); m != nil {
			flush()
			curID = m[1]
			continue
		}
		if curID == "" {
			continue
		}
		if !inTable {
			if rollsHdrRe.MatchString(line) {
				inTable = true
			}
			continue
		}
		m := rollRowRe.FindStringSubmatch(line)
		if m == nil {
			// table ends at the first non-row line
			flush()
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return nil, err
		}
		p, err := strconv.ParseFloat(m[2], 64)
		if err != nil {
			return nil, err
		}
		if n != len(values) {
			return nil, fmt.Errorf("roll rows out of order: got %d, want %d", n, len(values))
		}
		values = append(values, p)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	flush()
	return records, nil
}

// StoreFromDump builds a DistributionStore from a bearoffdump stream,
// decoding each position id into our board id space.
func StoreFromDump(config *board.GameConfig, r io.Reader) (*strategy.DistributionStore, error) {
	records, err := ParseBearoffDump(r)
	if err != nil {
		return nil, err
	}
	store := strategy.NewDistributionStore(config)
	for _, rec := range records {
		b, err := PositionIDToBoard(config, rec.PositionID)
		if err != nil {
			return nil, err
		}
		store.DistributionMap[b.ID()] = rec.Dist
	}
	return store, nil
}
