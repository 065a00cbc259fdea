package random

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/they4kman/sweepai/game"
)

func engineFromGrid(t *testing.T, grid string) *game.Engine {
	t.Helper()

	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)

	config := game.NewGameConfig()
	config.Mode = game.AIOnly
	config.Seed = 1
	config.Logger = log
	config.Snapshot = &game.BoardSnapshot{Seed: 1, SerializedBoard: grid}
	config.LoadSnapshotFresh = false

	engine, err := game.NewGame(config)
	require.NoError(t, err)
	engine.StartGame()
	return engine
}

func TestActUncoversOneCell(t *testing.T) {
	engine := engineFromGrid(t, "O##\n###\n###")
	director := &Director{}
	director.Init(engine)

	move, ok := director.Act()
	require.True(t, ok)
	assert.Equal(t, game.MoveUncover, move.Kind)
	assert.Equal(t, game.ActorAI, move.Actor)

	moves := engine.Moves()
	require.Len(t, moves, 1)
	assert.Equal(t, move, moves[0])

	// The pick went through the engine: either a safe cell got uncovered
	// or the mine ended the game.
	if engine.State() == game.Playing {
		assert.False(t, engine.Board().CellAt(move.Row, move.Col).Covered())
	} else {
		assert.Equal(t, game.EndLose, engine.State())
	}
}

func TestActSkipsFlaggedCells(t *testing.T) {
	engine := engineFromGrid(t, "O#")
	engine.ToggleFlag(0, 0, game.ActorAI)
	director := &Director{}
	director.Init(engine)

	move, ok := director.Act()
	require.True(t, ok)
	assert.Equal(t, game.Point{Row: 0, Col: 1}, game.Point{Row: move.Row, Col: move.Col})
	assert.Equal(t, game.EndWin, engine.State(), "only safe cell uncovered")
}

func TestActWithNoCandidates(t *testing.T) {
	engine := engineFromGrid(t, "O.")
	engine.ToggleFlag(0, 0, game.ActorAI)
	director := &Director{}
	director.Init(engine)

	_, ok := director.Act()
	assert.False(t, ok)
}
