package game

import (
	"math/rand"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

// engineFromGrid builds a started engine from a serialized board, so tests
// control the exact mine layout instead of guessing at PRNG output.
func engineFromGrid(t *testing.T, grid string, mode GameMode) *Engine {
	t.Helper()

	config := NewGameConfig()
	config.Mode = mode
	config.Seed = 1
	config.Logger = quietLogger()
	config.Snapshot = &BoardSnapshot{Seed: 1, SerializedBoard: grid}
	config.LoadSnapshotFresh = false

	engine, err := NewGame(config)
	require.NoError(t, err)
	engine.StartGame()
	return engine
}

func TestNewGameValidation(t *testing.T) {
	tests := []struct {
		name       string
		rows, cols int
		mines      int
	}{
		{"zero rows", 0, 10, 10},
		{"zero cols", 10, 0, 10},
		{"zero mines", 10, 10, 0},
		{"mines fill board", 3, 3, 9},
		{"mines exceed board", 3, 3, 12},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			config := NewGameConfig()
			config.Rows, config.Cols, config.NumMines = test.rows, test.cols, test.mines
			config.Logger = quietLogger()

			_, err := NewGame(config)
			assert.Error(t, err)
		})
	}
}

func TestFirstUncoverIsAlwaysSafe(t *testing.T) {
	targets := rand.New(rand.NewSource(99))

	for seed := int64(1); seed <= 50; seed++ {
		config := NewGameConfig()
		config.Rows, config.Cols, config.NumMines = 5, 5, 5
		config.Seed = seed
		config.Logger = quietLogger()

		engine, err := NewGame(config)
		require.NoError(t, err)
		engine.StartGame()

		r, c := targets.Intn(5), targets.Intn(5)
		require.True(t, engine.UncoverCell(r, c, ActorHuman))

		assert.False(t, engine.Board().CellAt(r, c).IsMine(), "seed %d mined the first click", seed)
		assert.False(t, engine.Board().CellAt(r, c).Covered())
		assert.NotEqual(t, EndLose, engine.State())
		assert.Equal(t, 5, engine.Board().MineCount(), "seed %d broke the mine count", seed)
	}
}

func TestUncoverMineLoses(t *testing.T) {
	engine := engineFromGrid(t, "###\n###\n##O", HumanOnly)

	assert.True(t, engine.UncoverCell(2, 2, ActorHuman))
	assert.Equal(t, EndLose, engine.State())

	// Terminal until reset; further moves have no effect.
	assert.False(t, engine.UncoverCell(0, 0, ActorHuman))
}

func TestVersusLossAttribution(t *testing.T) {
	engine := engineFromGrid(t, "###\n###\n##O", Versus)
	assert.True(t, engine.UncoverCell(2, 2, ActorHuman))
	assert.Equal(t, EndLose, engine.State(), "human exposing a mine loses")

	engine = engineFromGrid(t, "###\n###\n##O", Versus)
	assert.True(t, engine.UncoverCell(2, 2, ActorAI))
	assert.Equal(t, EndWin, engine.State(), "ai exposing a mine awards the human the win")
}

func TestSwitchTurn(t *testing.T) {
	engine := engineFromGrid(t, "###\n###\n##O", Versus)

	assert.Equal(t, ActorHuman, engine.CurrentTurn())
	engine.SwitchTurn()
	assert.Equal(t, ActorAI, engine.CurrentTurn())
	engine.SwitchTurn()
	assert.Equal(t, ActorHuman, engine.CurrentTurn())

	// Meaningless outside versus mode.
	solo := engineFromGrid(t, "###\n###\n##O", HumanOnly)
	solo.SwitchTurn()
	assert.Equal(t, ActorHuman, solo.CurrentTurn())

	// And after the game has ended.
	engine.UncoverCell(2, 2, ActorHuman)
	engine.SwitchTurn()
	assert.Equal(t, ActorHuman, engine.CurrentTurn())
}

func TestFloodFillUncoversRegionAndBorder(t *testing.T) {
	// Mines wall off columns 5-6; the flood from (0,0) must take the
	// zero-region (cols 0-2), its numbered border (col 3), and nothing
	// beyond.
	engine := engineFromGrid(t, "####O##\n####O##", HumanOnly)

	assert.True(t, engine.UncoverCell(0, 0, ActorHuman))
	assert.Equal(t, Playing, engine.State())

	board := engine.Board()
	for r := 0; r < board.Rows(); r++ {
		for c := 0; c < board.Cols(); c++ {
			if c <= 3 {
				assert.False(t, board.CellAt(r, c).Covered(), "(%d, %d) should be flooded", r, c)
			} else {
				assert.True(t, board.CellAt(r, c).Covered(), "(%d, %d) is beyond the region", r, c)
			}
		}
	}
	assert.Equal(t, 6, engine.CoveredCount())
}

func TestFloodFillSkipsFlaggedCells(t *testing.T) {
	engine := engineFromGrid(t, "#f##O", HumanOnly)

	assert.True(t, engine.UncoverCell(0, 0, ActorHuman))

	board := engine.Board()
	assert.False(t, board.CellAt(0, 0).Covered())
	assert.True(t, board.CellAt(0, 1).Covered(), "flagged cell must survive the flood")
	assert.True(t, board.CellAt(0, 2).Covered())
	assert.Equal(t, Playing, engine.State())
}

func TestWinDetectionExact(t *testing.T) {
	engine := engineFromGrid(t, "O##\n###\n##O", HumanOnly)

	// (0,2) floods the upper-right zero pocket and its border.
	assert.True(t, engine.UncoverCell(0, 2, ActorHuman))
	assert.Equal(t, Playing, engine.State())
	assert.Greater(t, engine.CoveredCount(), engine.TotalMines())

	// (2,0) collapses the rest; exactly the mines stay covered.
	assert.True(t, engine.UncoverCell(2, 0, ActorHuman))
	assert.Equal(t, 2, engine.CoveredCount())
	assert.Equal(t, EndWin, engine.State())
}

func TestSingleFloodWin(t *testing.T) {
	// The spec's 3x3 scenario: one mine in the corner, the whole safe
	// area collapses in one flood.
	engine := engineFromGrid(t, "###\n###\n##O", HumanOnly)

	assert.True(t, engine.UncoverCell(0, 0, ActorHuman))
	assert.Equal(t, EndWin, engine.State())
	assert.Equal(t, 1, engine.CoveredCount())
	assert.True(t, engine.Board().CellAt(2, 2).Covered())
}

func TestUncoverNoOps(t *testing.T) {
	engine := engineFromGrid(t, "O####\n#####", HumanOnly)

	assert.False(t, engine.UncoverCell(-1, 0, ActorHuman))
	assert.False(t, engine.UncoverCell(0, 9, ActorHuman))

	engine.ToggleFlag(1, 0, ActorHuman)
	assert.False(t, engine.UncoverCell(1, 0, ActorHuman), "flagged cell")

	require.True(t, engine.UncoverCell(0, 2, ActorHuman))
	assert.False(t, engine.UncoverCell(0, 2, ActorHuman), "already uncovered")

	fresh := NewGameConfig()
	fresh.Logger = quietLogger()
	notStarted, err := NewGame(fresh)
	require.NoError(t, err)
	assert.False(t, notStarted.UncoverCell(0, 0, ActorHuman), "engine still in Start")
}

func TestFlagBudget(t *testing.T) {
	engine := engineFromGrid(t, "O####", HumanOnly)
	require.Equal(t, 1, engine.FlagsRemaining())

	engine.ToggleFlag(0, 1, ActorHuman)
	assert.True(t, engine.Board().CellAt(0, 1).Flagged())
	assert.Equal(t, 0, engine.FlagsRemaining())

	// Budget exhausted: silently refused, state unchanged.
	engine.ToggleFlag(0, 2, ActorHuman)
	assert.False(t, engine.Board().CellAt(0, 2).Flagged())
	assert.Equal(t, 0, engine.FlagsRemaining())

	// Toggling off restores the budget, never past the total.
	engine.ToggleFlag(0, 1, ActorHuman)
	assert.False(t, engine.Board().CellAt(0, 1).Flagged())
	assert.Equal(t, 1, engine.FlagsRemaining())
	engine.ToggleFlag(0, 1, ActorHuman)
	engine.ToggleFlag(0, 1, ActorHuman)
	assert.Equal(t, 1, engine.FlagsRemaining())
}

func TestRefusedFlagStillJournaled(t *testing.T) {
	engine := engineFromGrid(t, "O####", HumanOnly)

	engine.ToggleFlag(0, 1, ActorHuman)
	engine.ToggleFlag(0, 2, ActorAI) // refused: budget is 0

	moves := engine.Moves()
	require.Len(t, moves, 2)
	assert.Equal(t, Move{MoveFlag, 0, 1, ActorHuman}, moves[0])
	assert.Equal(t, Move{MoveFlag, 0, 2, ActorAI}, moves[1])
}

func TestFlagOnUncoveredCellNotJournaled(t *testing.T) {
	engine := engineFromGrid(t, "O###.", HumanOnly)

	engine.ToggleFlag(0, 4, ActorHuman)

	assert.False(t, engine.Board().CellAt(0, 4).Flagged())
	assert.Empty(t, engine.Moves())
}

func TestMoveJournalOrder(t *testing.T) {
	engine := engineFromGrid(t, "O##\n###\n###", HumanOnly)

	engine.ToggleFlag(0, 0, ActorHuman)
	engine.UncoverCell(2, 2, ActorAI)

	moves := engine.Moves()
	require.Len(t, moves, 2)
	assert.Equal(t, Move{MoveFlag, 0, 0, ActorHuman}, moves[0])
	assert.Equal(t, Move{MoveUncover, 2, 2, ActorAI}, moves[1])
}

func TestHints(t *testing.T) {
	engine := engineFromGrid(t, "O###\n####", HumanOnly)
	require.Equal(t, NumHints, engine.HintsRemaining())

	for i := 0; i < NumHints; i++ {
		hint, ok := engine.UseHint()
		require.True(t, ok)

		cell := engine.Board().CellAt(hint.Row, hint.Col)
		assert.True(t, cell.Covered())
		assert.False(t, cell.Flagged())
		assert.False(t, cell.IsMine())

		last, ok := engine.LastHint()
		require.True(t, ok)
		assert.Equal(t, hint, last)
		assert.Equal(t, NumHints-i-1, engine.HintsRemaining())
	}

	_, ok := engine.UseHint()
	assert.False(t, ok, "hint budget exhausted")
}

func TestHintWithNoSafeCellsKeepsBudget(t *testing.T) {
	engine := engineFromGrid(t, "O.\n..", HumanOnly)

	_, ok := engine.UseHint()
	assert.False(t, ok)
	assert.Equal(t, NumHints, engine.HintsRemaining(), "undelivered hint must not be spent")
}

func TestLastHintClearedByUncover(t *testing.T) {
	engine := engineFromGrid(t, "O###\n####", HumanOnly)

	hint, ok := engine.UseHint()
	require.True(t, ok)

	engine.UncoverCell(hint.Row, hint.Col, ActorHuman)
	_, ok = engine.LastHint()
	assert.False(t, ok)
}

func TestLastHintClearedAtGameEnd(t *testing.T) {
	engine := engineFromGrid(t, "O###\n####", HumanOnly)

	_, ok := engine.UseHint()
	require.True(t, ok)

	engine.UncoverCell(0, 0, ActorHuman) // mine
	require.Equal(t, EndLose, engine.State())
	_, ok = engine.LastHint()
	assert.False(t, ok)
}

func TestReset(t *testing.T) {
	engine := engineFromGrid(t, "O##\n###\n###", HumanOnly)

	engine.ToggleFlag(0, 0, ActorHuman)
	engine.UncoverCell(2, 2, ActorHuman)
	engine.UseHint()

	engine.Reset()

	assert.Equal(t, Start, engine.State())
	assert.Equal(t, engine.Board().NumCells(), engine.CoveredCount())
	assert.Equal(t, engine.TotalMines(), engine.FlagsRemaining())
	assert.Equal(t, NumHints, engine.HintsRemaining())
	assert.Equal(t, ActorHuman, engine.CurrentTurn())
	assert.Empty(t, engine.Moves())
	assert.Equal(t, 0, engine.Board().MineCount(), "next first uncover places a fresh layout")
	_, ok := engine.LastHint()
	assert.False(t, ok)
	assert.Zero(t, engine.Elapsed())

	// The engine is reusable: a whole new game runs after reset.
	engine.StartGame()
	assert.True(t, engine.UncoverCell(1, 1, ActorHuman))
	assert.Equal(t, engine.TotalMines(), engine.Board().MineCount())
}

func TestElapsedFreezesAtGameEnd(t *testing.T) {
	engine := engineFromGrid(t, "###\n###\n##O", HumanOnly)

	engine.UncoverCell(2, 2, ActorHuman)
	require.Equal(t, EndLose, engine.State())

	frozen := engine.Elapsed()
	assert.Equal(t, frozen, engine.Elapsed())
}
