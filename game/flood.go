package game

import "github.com/gammazero/deque"

// floodUncover uncovers the cell at (row, col) and, whenever a cell has no
// neighboring mines, spreads to its covered, unflagged, non-mine neighbors.
// An explicit worklist keeps arbitrarily large zero-regions off the call
// stack; the covered flag doubles as the visited guard.
func (engine *Engine) floodUncover(row, col int) {
	var worklist deque.Deque[Point]
	worklist.PushBack(Point{row, col})

	for worklist.Len() > 0 {
		p := worklist.PopFront()

		cell := engine.board.CellAt(p.Row, p.Col)
		if !cell.covered {
			continue
		}

		engine.board.Uncover(p.Row, p.Col)
		engine.coveredCount--
		if engine.lastHint != nil && *engine.lastHint == p {
			engine.lastHint = nil
		}

		if cell.neighborMines != 0 {
			continue
		}
		for _, n := range engine.board.Neighbors(p.Row, p.Col) {
			neighbor := engine.board.CellAt(n.Row, n.Col)
			if neighbor.covered && !neighbor.flagged && !neighbor.isMine {
				worklist.PushBack(n)
			}
		}
	}
}
