package game

import (
	"fmt"
	"math/rand"

	"github.com/they4kman/sweepai/util/collections"
)

// Point addresses a cell by (row, col).
type Point struct {
	Row, Col int
}

// Board owns the grid of cells and the mine layout. It carries no game
// bookkeeping beyond the cells themselves; counters and budgets belong to
// the Engine.
type Board struct {
	rows, cols int
	cells      [][]Cell

	mines collections.Set[Point]
}

func NewBoard(rows, cols int) *Board {
	board := Board{
		rows:  rows,
		cols:  cols,
		cells: make([][]Cell, rows),
		mines: make(collections.Set[Point]),
	}

	for r := 0; r < rows; r++ {
		row := make([]Cell, cols)
		board.cells[r] = row

		for c := 0; c < cols; c++ {
			cell := &board.cells[r][c]
			cell.row, cell.col = r, c
			cell.covered = true
		}
	}

	return &board
}

func (board *Board) Rows() int {
	return board.rows
}

func (board *Board) Cols() int {
	return board.cols
}

func (board *Board) NumCells() int {
	return board.rows * board.cols
}

func (board *Board) InBounds(r, c int) bool {
	return r >= 0 && r < board.rows && c >= 0 && c < board.cols
}

// CellAt returns the cell at (r, c), or nil when out of bounds.
func (board *Board) CellAt(r, c int) *Cell {
	if !board.InBounds(r, c) {
		return nil
	}
	return &board.cells[r][c]
}

// Neighbors returns the in-bounds cells of the 3x3 block around (r, c),
// excluding the center, in row-major order.
func (board *Board) Neighbors(r, c int) []Point {
	neighbors := make([]Point, 0, 8)
	for nr := r - 1; nr <= r+1; nr++ {
		for nc := c - 1; nc <= c+1; nc++ {
			if nr == r && nc == c {
				continue
			}
			if board.InBounds(nr, nc) {
				neighbors = append(neighbors, Point{nr, nc})
			}
		}
	}
	return neighbors
}

// MineCount is the number of mines currently placed.
func (board *Board) MineCount() int {
	return len(board.mines)
}

// Mines returns a copy of the current mine layout.
func (board *Board) Mines() collections.Set[Point] {
	mines := make(collections.Set[Point], len(board.mines))
	for p := range board.mines {
		mines.Add(p)
	}
	return mines
}

// SetMine places or removes a mine at (r, c), adjusting the neighbor
// counts of the surrounding cells. Setting the current value is a no-op.
func (board *Board) SetMine(r, c int, isMine bool) {
	cell := board.CellAt(r, c)
	if cell == nil || cell.isMine == isMine {
		return
	}
	cell.isMine = isMine

	delta := 1
	if isMine {
		board.mines.Add(Point{r, c})
	} else {
		board.mines.Remove(Point{r, c})
		delta = -1
	}

	for _, n := range board.Neighbors(r, c) {
		board.cells[n.Row][n.Col].neighborMines += delta
	}
}

func (board *Board) ToggleMine(r, c int) {
	if cell := board.CellAt(r, c); cell != nil {
		board.SetMine(r, c, !cell.isMine)
	}
}

func (board *Board) clearMines() {
	for r := range board.cells {
		for c := range board.cells[r] {
			cell := &board.cells[r][c]
			cell.isMine = false
			cell.neighborMines = 0
		}
	}
	board.mines.Clear()
}

// PlaceMines clears any prior layout, then places count mines uniformly at
// random among all cells other than excluded (if given). It fails without
// mutating the board when count exceeds the eligible cells.
func (board *Board) PlaceMines(count int, excluded *Point, rng *rand.Rand) error {
	eligible := make([]Point, 0, board.NumCells())
	for r := 0; r < board.rows; r++ {
		for c := 0; c < board.cols; c++ {
			p := Point{r, c}
			if excluded != nil && *excluded == p {
				continue
			}
			eligible = append(eligible, p)
		}
	}

	if count < 0 || count > len(eligible) {
		return fmt.Errorf("cannot place %d mines among %d eligible cells", count, len(eligible))
	}

	board.clearMines()

	rng.Shuffle(len(eligible), func(i, j int) {
		eligible[i], eligible[j] = eligible[j], eligible[i]
	})
	for _, p := range eligible[:count] {
		board.SetMine(p.Row, p.Col, true)
	}

	return nil
}

// Uncover marks the single cell uncovered. Counter bookkeeping is the
// Engine's responsibility.
func (board *Board) Uncover(r, c int) {
	if cell := board.CellAt(r, c); cell != nil {
		cell.covered = false
	}
}

func (board *Board) Cover(r, c int) {
	if cell := board.CellAt(r, c); cell != nil {
		cell.covered = true
	}
}

func (board *Board) SetFlag(r, c int, flagged bool) {
	if cell := board.CellAt(r, c); cell != nil {
		cell.flagged = flagged
	}
}

// Reset returns every cell to covered, unflagged and mine-free.
func (board *Board) Reset() {
	for r := range board.cells {
		for c := range board.cells[r] {
			board.cells[r][c].reset()
		}
	}
	board.mines.Clear()
}
