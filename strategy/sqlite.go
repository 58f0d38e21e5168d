package strategy

import (
	"database/sql"
	"encoding/binary"
	"fmt"
	"math"
	"os"

	_ "modernc.org/sqlite"

	"github.com/pfrstg/bgend/board"
	"github.com/pfrstg/bgend/dist"
)

// The on-disk store is a SQLite file with the game parameters in a config
// table and one row per board id in distributions. Distribution entries are
// packed as little-endian float64s, so the round trip is bit-exact.

const schema = `
CREATE TABLE config (
	num_markers INTEGER NOT NULL,
	num_spots   INTEGER NOT NULL
);
CREATE TABLE distributions (
	board_id INTEGER PRIMARY KEY,
	dist     BLOB NOT NULL
);
`

func encodeDist(d dist.MoveCountDistribution) []byte {
	values := d.Values()
	out := make([]byte, 8*len(values))
	for i, v := range values {
		binary.LittleEndian.PutUint64(out[8*i:], math.Float64bits(v))
	}
	return out
}

func decodeDist(blob []byte) (dist.MoveCountDistribution, error) {
	if len(blob) == 0 || len(blob)%8 != 0 {
		return dist.New(), fmt.Errorf("bad distribution blob length %d", len(blob))
	}
	values := make([]float64, len(blob)/8)
	for i := range values {
		values[i] = math.Float64frombits(binary.LittleEndian.Uint64(blob[8*i:]))
	}
	return dist.New(values...), nil
}

// SaveSQLite writes the store to path, replacing any existing file.
func (s *DistributionStore) SaveSQLite(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return err
	}
	defer db.Close()

	if _, err := db.Exec(schema); err != nil {
		return err
	}

	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("INSERT INTO config (num_markers, num_spots) VALUES (?, ?)",
		s.Config.NumMarkers, s.Config.NumSpots); err != nil {
		return err
	}

	stmt, err := tx.Prepare("INSERT INTO distributions (board_id, dist) VALUES (?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	for boardID, d := range s.DistributionMap {
		if _, err := stmt.Exec(int64(boardID), encodeDist(d)); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// LoadSQLite reads a store written by SaveSQLite.
func LoadSQLite(path string) (*DistributionStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	var numMarkers, numSpots int
	err = db.QueryRow("SELECT num_markers, num_spots FROM config").
		Scan(&numMarkers, &numSpots)
	if err != nil {
		return nil, fmt.Errorf("reading config from %s: %w", path, err)
	}
	config, err := board.NewGameConfig(numMarkers, numSpots)
	if err != nil {
		return nil, err
	}
	store := NewDistributionStore(config)

	rows, err := db.Query("SELECT board_id, dist FROM distributions")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var boardID int64
		var blob []byte
		if err := rows.Scan(&boardID, &blob); err != nil {
			return nil, err
		}
		d, err := decodeDist(blob)
		if err != nil {
			return nil, err
		}
		store.DistributionMap[uint64(boardID)] = d
	}
	return store, rows.Err()
}
