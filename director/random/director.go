package random

import (
	"github.com/they4kman/sweepai/game"
)

// Director is the easy tier: it uncovers one covered, unflagged cell
// chosen uniformly at random. It also serves as the fallback guess for the
// constraint director when deduction stalls.
type Director struct {
	game.BaseDirector

	engine *game.Engine
}

func (director *Director) Init(engine *game.Engine) {
	director.engine = engine
}

func (director *Director) Act() (game.Move, bool) {
	board := director.engine.Board()

	candidates := make([]game.Point, 0, board.NumCells())
	for r := 0; r < board.Rows(); r++ {
		for c := 0; c < board.Cols(); c++ {
			cell := board.CellAt(r, c)
			if cell.Covered() && !cell.Flagged() {
				candidates = append(candidates, game.Point{Row: r, Col: c})
			}
		}
	}

	if len(candidates) == 0 {
		return game.Move{}, false
	}

	p := candidates[director.engine.Rand().Intn(len(candidates))]
	director.engine.UncoverCell(p.Row, p.Col, game.ActorAI)

	return game.Move{Kind: game.MoveUncover, Row: p.Row, Col: p.Col, Actor: game.ActorAI}, true
}
