package gnubg

import (
	"encoding/csv"
	"io"
	"math/rand/v2"
	"runtime"
	"slices"
	"strconv"
	"sync"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"github.com/pfrstg/bgend/board"
	"github.com/pfrstg/bgend/strategy"
)

// Disagreement records one roll where our store and a reference store choose
// moves reaching different boards, with each choice valued under both stores.
type Disagreement struct {
	BoardID           uint64
	Roll0, Roll1      int
	OurMoves          board.MoveList
	OurMovesOurEV     float64
	OurMovesTheirEV   float64
	TheirMoves        board.MoveList
	TheirMovesOurEV   float64
	TheirMovesTheirEV float64
}

// FindDisagreements replays best-move selection for every board in ours
// against theirs and collects the rolls where the chosen resulting boards
// differ. sampleEvery > 1 examines a random 1-in-N subset of boards. Both
// stores are read-only during the scan, so boards fan out across workers.
func FindDisagreements(ours, theirs *strategy.DistributionStore,
	sampleEvery int) ([]Disagreement, error) {

	ids := lo.Keys(ours.DistributionMap)
	slices.Sort(ids)
	if sampleEvery > 1 {
		ids = lo.Filter(ids, func(uint64, int) bool {
			return rand.IntN(sampleEvery) == 0
		})
	}
	log.Info().Msgf("examining %d boards", len(ids))

	numWorkers := runtime.NumCPU()
	chunks := lo.Chunk(ids, max(1, (len(ids)+numWorkers-1)/numWorkers))

	var mu sync.Mutex
	var out []Disagreement
	var g errgroup.Group
	for _, chunk := range chunks {
		g.Go(func() error {
			found, err := scanBoards(ours, theirs, chunk)
			if err != nil {
				return err
			}
			mu.Lock()
			out = append(out, found...)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	slices.SortFunc(out, func(a, b Disagreement) int {
		if a.BoardID != b.BoardID {
			if a.BoardID < b.BoardID {
				return -1
			}
			return 1
		}
		return a.Roll0*6 + a.Roll1 - b.Roll0*6 - b.Roll1
	})
	return out, nil
}

func scanBoards(ours, theirs *strategy.DistributionStore,
	ids []uint64) ([]Disagreement, error) {

	var out []Disagreement
	for _, boardID := range ids {
		b, err := board.FromID(ours.Config, boardID)
		if err != nil {
			return nil, err
		}
		if b.IsFinished() {
			continue
		}
		for _, roll := range board.Rolls {
			ourMoves, err := ours.ComputeBestMovesForRoll(b, roll)
			if err != nil {
				return nil, err
			}
			theirMoves, err := theirs.ComputeBestMovesForRoll(b, roll)
			if err != nil {
				return nil, err
			}
			ourBoard, err := b.ApplyMoves(ourMoves)
			if err != nil {
				return nil, err
			}
			theirBoard, err := b.ApplyMoves(theirMoves)
			if err != nil {
				return nil, err
			}
			if ourBoard.ID() == theirBoard.ID() {
				continue
			}
			out = append(out, Disagreement{
				BoardID:           boardID,
				Roll0:             roll.Dice[0],
				Roll1:             roll.Dice[1],
				OurMoves:          ourMoves,
				OurMovesOurEV:     ours.DistributionMap[ourBoard.ID()].ExpectedValue(),
				OurMovesTheirEV:   theirs.DistributionMap[ourBoard.ID()].ExpectedValue(),
				TheirMoves:        theirMoves,
				TheirMovesOurEV:   ours.DistributionMap[theirBoard.ID()].ExpectedValue(),
				TheirMovesTheirEV: theirs.DistributionMap[theirBoard.ID()].ExpectedValue(),
			})
		}
	}
	return out, nil
}

// WriteCSV writes disagreements in the layout of the original analysis
// notebooks: one row per disagreeing roll.
func WriteCSV(w io.Writer, disagreements []Disagreement) error {
	cw := csv.NewWriter(w)
	header := []string{"board_id", "roll0", "roll1",
		"our_moves", "our_moves_our_ev", "our_moves_their_ev",
		"their_moves", "their_moves_our_ev", "their_moves_their_ev"}
	if err := cw.Write(header); err != nil {
		return err
	}
	fl := func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
	for _, d := range disagreements {
		row := []string{
			strconv.FormatUint(d.BoardID, 10),
			strconv.Itoa(d.Roll0),
			strconv.Itoa(d.Roll1),
			board.EncodeMovesString(d.OurMoves),
			fl(d.OurMovesOurEV),
			fl(d.OurMovesTheirEV),
			board.EncodeMovesString(d.TheirMoves),
			fl(d.TheirMovesOurEV),
			fl(d.TheirMovesTheirEV),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
