// Package strategy computes optimal-play move-count distributions for every
// reachable bearoff position via retrograde analysis. The encoding in the
// board package guarantees every move strictly lowers the board id, so a
// single ascending sweep over the id space sees each position only after all
// of its successors are final.
package strategy

import (
	"errors"
	"fmt"

	"github.com/pbnjay/memory"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/pfrstg/bgend/board"
	"github.com/pfrstg/bgend/dist"
)

// ErrUnnormalized means a computed distribution failed its mass check. This
// is an internal invariant violation in move generation or configuration;
// callers must abort rather than persist anything.
var ErrUnnormalized = errors.New("distribution is not normalized")

// DistributionStore maps board ids to their move-count distributions. It is
// authoritative only after a full Compute; a limit-truncated sweep covers a
// prefix of the id space and is diagnostic only.
type DistributionStore struct {
	Config          *board.GameConfig
	DistributionMap map[uint64]dist.MoveCountDistribution
}

func NewDistributionStore(config *board.GameConfig) *DistributionStore {
	return &DistributionStore{
		Config:          config,
		DistributionMap: make(map[uint64]dist.MoveCountDistribution),
	}
}

// ComputeBestMovesForRoll picks the move list whose resulting board has the
// lowest expected turns remaining. Move lists reaching the same resulting
// board are equivalent here, so only the first one seen per id is kept; ties
// between different ids break toward the first encountered in generation
// order. Every resulting board must already be present in the map.
func (s *DistributionStore) ComputeBestMovesForRoll(b *board.Board,
	roll board.Roll) (board.MoveList, error) {

	type candidate struct {
		ev    float64
		moves board.MoveList
	}

	seen := make(map[uint64]bool)
	var candidates []candidate
	for _, moves := range b.GenerateMoves(roll) {
		next, err := b.ApplyMoves(moves)
		if err != nil {
			return nil, err
		}
		nextID := next.ID()
		if seen[nextID] {
			continue
		}
		seen[nextID] = true
		d, ok := s.DistributionMap[nextID]
		if !ok {
			return nil, fmt.Errorf(
				"resulting board %d from %v not yet computed; sweep order violated",
				nextID, b)
		}
		candidates = append(candidates, candidate{ev: d.ExpectedValue(), moves: moves})
	}

	best := lo.MinBy(candidates, func(a, other candidate) bool {
		return a.ev < other.ev
	})
	return best.moves, nil
}

// ComputeDistributionForBoard combines the best play for each of the 21
// rolls into this board's distribution. All successor boards must already be
// in the map.
func (s *DistributionStore) ComputeDistributionForBoard(b *board.Board) (
	dist.MoveCountDistribution, error) {

	out := dist.New()
	for _, roll := range board.Rolls {
		moves, err := s.ComputeBestMovesForRoll(b, roll)
		if err != nil {
			return out, err
		}
		next, err := b.ApplyMoves(moves)
		if err != nil {
			return out, err
		}
		out = out.Add(s.DistributionMap[next.ID()].IncreaseCounts(1).Scale(roll.Prob))
	}

	if !out.IsNormalized() {
		return out, fmt.Errorf("%w: board %v computed %v", ErrUnnormalized, b, out)
	}
	return out, nil
}

// Compute fills the map with a distribution for every valid board id, in
// ascending id order. progressInterval > 0 logs progress every that many
// boards. limit > 0 stops early after that many boards; the resulting store
// is a diagnostic prefix, not a queryable database.
func (s *DistributionStore) Compute(progressInterval, limit int) error {
	clear(s.DistributionMap)

	// Rough footprint: one map entry holding a short float64 slice per board.
	estBytes := uint64(s.Config.NumValidBoards) * 256
	log.Info().
		Int("boards", s.Config.NumValidBoards).
		Uint64("est-bytes", estBytes).
		Uint64("total-memory", memory.TotalMemory()).
		Msg("starting compute")
	if estBytes > memory.TotalMemory() {
		log.Warn().Msg("estimated store size exceeds physical memory")
	}

	progress := NewProgressIndicator(s.Config.NumValidBoards, progressInterval)

	// The minimum board id is the game-ended state.
	s.DistributionMap[s.Config.MinBoardID] = dist.New(1)
	progress.CompleteOne()

	it := s.Config.ValidIDs()
	it.Next() // skip the solved state

	for {
		boardID, ok := it.Next()
		if !ok {
			break
		}
		b, err := board.FromID(s.Config, boardID)
		if err != nil {
			return err
		}
		d, err := s.ComputeDistributionForBoard(b)
		if err != nil {
			return err
		}
		s.DistributionMap[boardID] = d
		progress.CompleteOne()

		if limit > 0 && progress.Done() >= limit {
			log.Info().Msgf("stopping at %d boards, id %d", progress.Done(), boardID)
			break
		}
	}
	return nil
}
