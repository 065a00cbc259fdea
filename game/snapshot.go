package game

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v2"
)

// BoardSnapshot is a serializable picture of a board: the PRNG seed that
// produced it and one character per cell.
//
//	O  covered mine        F  flagged mine
//	#  covered, safe       f  flagged, safe
//	.  uncovered
type BoardSnapshot struct {
	Seed            int64  `yaml:"seed"`
	SerializedBoard string `yaml:"board,flow"`
}

func NewSnapshot(board *Board, seed int64) *BoardSnapshot {
	var grid strings.Builder
	for r := 0; r < board.rows; r++ {
		if r > 0 {
			grid.WriteString("\n")
		}
		for c := 0; c < board.cols; c++ {
			grid.WriteString(board.cells[r][c].serialize())
		}
	}

	return &BoardSnapshot{
		Seed:            seed,
		SerializedBoard: grid.String(),
	}
}

func (snapshot *BoardSnapshot) Serialize() string {
	out, err := yaml.Marshal(snapshot)
	if err != nil {
		panic(err)
	}

	return string(out)
}

func LoadSnapshot(in string) (*BoardSnapshot, error) {
	var snapshot BoardSnapshot
	if err := yaml.Unmarshal([]byte(in), &snapshot); err != nil {
		return nil, err
	}
	return &snapshot, nil
}

// RestoreBoard rebuilds a board from the serialized grid. With fresh set,
// every cell comes back covered and unflagged; the mine layout is kept
// either way, and neighbor counts are rebuilt through SetMine.
func (snapshot *BoardSnapshot) RestoreBoard(fresh bool) (*Board, error) {
	rows := strings.Split(snapshot.SerializedBoard, "\n")
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("empty board snapshot")
	}

	board := NewBoard(len(rows), len(rows[0]))
	for r, row := range rows {
		if len(row) != board.cols {
			return nil, fmt.Errorf("snapshot row %d has %d cells, want %d", r, len(row), board.cols)
		}

		for c := 0; c < len(row); c++ {
			ch := string(row[c])
			if !fresh {
				if ok := board.cells[r][c].deserialize(ch); !ok {
					return nil, fmt.Errorf("invalid snapshot cell %q at (%d, %d)", ch, r, c)
				}
			} else if ch != "O" && ch != "F" && ch != "f" && ch != "." && ch != "#" {
				return nil, fmt.Errorf("invalid snapshot cell %q at (%d, %d)", ch, r, c)
			}

			if ch == "O" || ch == "F" {
				board.SetMine(r, c, true)
			}
		}
	}

	return board, nil
}
