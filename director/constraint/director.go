package constraint

import (
	"github.com/they4kman/sweepai/director/random"
	"github.com/they4kman/sweepai/game"
)

// maxDeductionSteps bounds a single turn's deduction loop; flags keep the
// loop going and an exhausted budget on a saturated board could otherwise
// cycle.
const maxDeductionSteps = 100

// Director is the deduction tier. It repeatedly applies local constraint
// rules (and, with Patterns set, the 1-2-1 pattern) until an uncover ends
// the turn or nothing fires, then falls back to a random guess. The
// fallback makes the solver fallible on purpose; there is no peeking at
// the mine layout.
type Director struct {
	game.BaseDirector

	// Patterns enables the 1-2-1 pass before the basic rules (hard tier).
	Patterns bool

	engine   *game.Engine
	fallback random.Director
}

func (director *Director) Init(engine *game.Engine) {
	director.engine = engine
	director.fallback.Init(engine)
}

// Act performs deduction steps until one yields an uncover. Flags never
// end the turn: they feed the next step. When deduction stalls, the random
// fallback takes the guess.
func (director *Director) Act() (game.Move, bool) {
	for step := 0; step < maxDeductionSteps; step++ {
		move, ok := director.deductionStep()
		if !ok {
			break
		}
		if move.Kind == game.MoveUncover {
			return move, true
		}
	}

	return director.fallback.Act()
}

func (director *Director) deductionStep() (game.Move, bool) {
	if director.Patterns {
		if move, ok := director.apply121Pattern(); ok {
			return move, true
		}
	}
	return director.applyBasicRules()
}

// applyBasicRules scans revealed numbered cells row-major and applies the
// first actionable local constraint:
//
//	flagged + hidden == n  ->  every hidden neighbor is a mine, flag one
//	flagged == n           ->  every hidden neighbor is safe, uncover one
func (director *Director) applyBasicRules() (game.Move, bool) {
	board := director.engine.Board()

	for r := 0; r < board.Rows(); r++ {
		for c := 0; c < board.Cols(); c++ {
			cell := board.CellAt(r, c)
			if cell.Covered() || cell.NeighborMines() == 0 {
				continue
			}

			var hidden, flagged []game.Point
			for _, n := range board.Neighbors(r, c) {
				neighbor := board.CellAt(n.Row, n.Col)
				if !neighbor.Covered() {
					continue
				}
				if neighbor.Flagged() {
					flagged = append(flagged, n)
				} else {
					hidden = append(hidden, n)
				}
			}

			if len(hidden) > 0 && len(flagged)+len(hidden) == cell.NeighborMines() {
				return director.flag(hidden[0]), true
			}
			if len(flagged) == cell.NeighborMines() && len(hidden) > 0 {
				return director.uncover(hidden[0]), true
			}
		}
	}

	return game.Move{}, false
}

// apply121Pattern looks for three consecutive revealed cells counting
// 1, 2, 1. The cells orthogonally adjacent to the center "2" are safe, the
// outer diagonals next to each "1" are mines. All horizontal triples are
// tried before any vertical one; the first actionable cell in scan order
// wins.
func (director *Director) apply121Pattern() (game.Move, bool) {
	board := director.engine.Board()

	for r := 0; r < board.Rows(); r++ {
		for c := 1; c < board.Cols()-1; c++ {
			if move, ok := director.apply121At(r, c, false); ok {
				return move, true
			}
		}
	}

	for r := 1; r < board.Rows()-1; r++ {
		for c := 0; c < board.Cols(); c++ {
			if move, ok := director.apply121At(r, c, true); ok {
				return move, true
			}
		}
	}

	return game.Move{}, false
}

// apply121At matches a 1-2-1 triple centered at (r, c), running along
// columns or, with vertical set, along rows. Safe middles are taken before
// mine diagonals on each perpendicular side.
func (director *Director) apply121At(r, c int, vertical bool) (game.Move, bool) {
	board := director.engine.Board()

	ar, ac := 0, 1
	if vertical {
		ar, ac = 1, 0
	}

	if !revealedWithCount(board.CellAt(r-ar, c-ac), 1) ||
		!revealedWithCount(board.CellAt(r, c), 2) ||
		!revealedWithCount(board.CellAt(r+ar, c+ac), 1) {
		return game.Move{}, false
	}

	// Perpendicular axis to the triple.
	pr, pc := ac, ar

	for _, side := range []int{-1, 1} {
		middle := game.Point{Row: r + side*pr, Col: c + side*pc}
		if actionable(board.CellAt(middle.Row, middle.Col)) {
			return director.uncover(middle), true
		}

		for _, out := range []int{-1, 1} {
			outer := game.Point{Row: middle.Row + out*ar, Col: middle.Col + out*ac}
			if actionable(board.CellAt(outer.Row, outer.Col)) {
				return director.flag(outer), true
			}
		}
	}

	return game.Move{}, false
}

func (director *Director) uncover(p game.Point) game.Move {
	director.engine.UncoverCell(p.Row, p.Col, game.ActorAI)
	return game.Move{Kind: game.MoveUncover, Row: p.Row, Col: p.Col, Actor: game.ActorAI}
}

func (director *Director) flag(p game.Point) game.Move {
	director.engine.ToggleFlag(p.Row, p.Col, game.ActorAI)
	return game.Move{Kind: game.MoveFlag, Row: p.Row, Col: p.Col, Actor: game.ActorAI}
}

func revealedWithCount(cell *game.Cell, count int) bool {
	return cell != nil && !cell.Covered() && cell.NeighborMines() == count
}

func actionable(cell *game.Cell) bool {
	return cell != nil && cell.Covered() && !cell.Flagged()
}
