package board

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Move takes one marker from Spot and plays it Count pips toward home.
type Move struct {
	Spot  int
	Count int
}

func (m Move) String() string {
	return fmt.Sprintf("%d/%d", m.Spot, m.Count)
}

// MoveList is the moves for one roll, in the order they are played.
type MoveList []Move

func (ml MoveList) String() string {
	parts := make([]string, len(ml))
	for i, m := range ml {
		parts[i] = m.String()
	}
	return strings.Join(parts, " ")
}

// EncodeMovesString renders a move list as "[[spot, count], ...]", the format
// used in disagreement reports.
func EncodeMovesString(moves MoveList) string {
	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = fmt.Sprintf("[%d, %d]", m.Spot, m.Count)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// DecodeMovesString parses the EncodeMovesString format.
func DecodeMovesString(s string) (MoveList, error) {
	var raw [][]int
	if err := json.Unmarshal([]byte(s), &raw); err != nil {
		return nil, fmt.Errorf("bad moves string %q: %w", s, err)
	}
	out := make(MoveList, 0, len(raw))
	for _, pair := range raw {
		if len(pair) != 2 {
			return nil, fmt.Errorf("bad element %v in %q", pair, s)
		}
		out = append(out, Move{Spot: pair[0], Count: pair[1]})
	}
	return out, nil
}
