package game

import "fmt"

// Cell is a single square on the board. A flagged cell is always covered;
// Board and Engine enforce that by refusing to flag uncovered cells.
type Cell struct {
	row, col int

	covered, flagged, isMine bool
	neighborMines            int
}

func (cell *Cell) String() string {
	return fmt.Sprintf("Cell(%v, %v)", cell.row, cell.col)
}

func (cell *Cell) Row() int {
	return cell.row
}

func (cell *Cell) Col() int {
	return cell.col
}

func (cell *Cell) Covered() bool {
	return cell.covered
}

func (cell *Cell) Flagged() bool {
	return cell.flagged
}

func (cell *Cell) IsMine() bool {
	return cell.isMine
}

// NeighborMines is the number of mines among the up-to-8 adjacent cells,
// maintained incrementally by Board.SetMine.
func (cell *Cell) NeighborMines() int {
	return cell.neighborMines
}

func (cell *Cell) reset() {
	cell.covered = true
	cell.flagged = false
	cell.isMine = false
	cell.neighborMines = 0
}

func (cell *Cell) serialize() string {
	switch {
	case cell.isMine:
		if cell.flagged {
			return "F"
		}
		return "O"
	case cell.flagged:
		return "f"
	case !cell.covered:
		return "."
	default:
		return "#"
	}
}

// deserialize applies the covered/flagged bits for a snapshot character.
// Mine bits are applied separately through Board.SetMine so neighbor
// counts stay correct.
func (cell *Cell) deserialize(c string) bool {
	switch c {
	case "F", "f":
		cell.flagged = true
	case ".":
		cell.covered = false
	case "O", "#":
	default:
		return false
	}

	return true
}
