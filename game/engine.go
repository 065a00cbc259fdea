package game

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"
)

type GameConfig struct {
	Rows, Cols int
	NumMines   int
	Mode       GameMode

	// Seed for the engine's PRNG; 0 picks a time-based seed.
	Seed int64

	// Snapshot to load the board layout from instead of random placement
	Snapshot *BoardSnapshot
	// Whether to set all cells as covered when loading the Snapshot
	LoadSnapshotFresh bool

	// Logger is caller-owned; nil falls back to logrus.StandardLogger().
	Logger *logrus.Logger
}

func NewGameConfig() GameConfig {
	return GameConfig{
		Rows:              10,
		Cols:              10,
		NumMines:          10,
		Mode:              HumanOnly,
		LoadSnapshotFresh: true,
	}
}

// Move is one journaled action: what was attempted, where, and by whom.
type Move struct {
	Kind     MoveKind
	Row, Col int
	Actor    Actor
}

// Engine is the turn/state machine wrapping a Board. All mutation happens
// through its entry points; it holds no process-wide state, so multiple
// engines can run side by side.
type Engine struct {
	board *Board
	mode  GameMode
	rng   *rand.Rand
	seed  int64
	log   *logrus.Logger

	state          GameState
	totalMines     int
	flagsRemaining int
	coveredCount   int
	minesPlaced    bool
	currentTurn    Actor
	hintsRemaining int
	lastHint       *Point
	moves          []Move

	startTime time.Time
	endTime   time.Time
}

// NewGame validates the configuration and builds an engine in the Start
// state. An over-capacity mine count is a configuration violation and is
// rejected here, never clamped.
func NewGame(config GameConfig) (*Engine, error) {
	log := config.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}

	engine := Engine{
		mode:        config.Mode,
		log:         log,
		state:       Start,
		currentTurn: ActorHuman,
	}

	if config.Snapshot != nil {
		board, err := config.Snapshot.RestoreBoard(config.LoadSnapshotFresh)
		if err != nil {
			return nil, err
		}
		engine.board = board
		engine.totalMines = board.MineCount()
		engine.minesPlaced = true

		if config.Seed == 0 {
			config.Seed = config.Snapshot.Seed
		}
	} else {
		if config.Rows < 1 || config.Cols < 1 {
			return nil, fmt.Errorf("invalid board dimensions %dx%d", config.Rows, config.Cols)
		}
		if config.NumMines < 1 || config.NumMines > config.Rows*config.Cols-1 {
			return nil, fmt.Errorf(
				"cannot place %d mines on a %dx%d board",
				config.NumMines, config.Rows, config.Cols,
			)
		}
		engine.board = NewBoard(config.Rows, config.Cols)
		engine.totalMines = config.NumMines
	}

	if engine.totalMines < 1 || engine.totalMines > engine.board.NumCells()-1 {
		return nil, fmt.Errorf(
			"snapshot holds %d mines on a %dx%d board",
			engine.totalMines, engine.board.Rows(), engine.board.Cols(),
		)
	}

	if config.Seed == 0 {
		config.Seed = time.Now().UnixNano()
	}
	engine.seed = config.Seed
	engine.rng = rand.New(rand.NewSource(config.Seed))

	engine.resetCounters()
	return &engine, nil
}

// resetCounters derives the engine counters from the board, so snapshot
// boards with cells already uncovered or flagged start consistent.
func (engine *Engine) resetCounters() {
	covered, flagged := 0, 0
	for r := 0; r < engine.board.Rows(); r++ {
		for c := 0; c < engine.board.Cols(); c++ {
			cell := engine.board.CellAt(r, c)
			if cell.covered {
				covered++
			}
			if cell.flagged {
				flagged++
			}
		}
	}

	engine.coveredCount = covered
	engine.flagsRemaining = engine.totalMines - flagged
	if engine.flagsRemaining < 0 {
		engine.flagsRemaining = 0
	}
	engine.hintsRemaining = NumHints
	engine.currentTurn = ActorHuman
	engine.lastHint = nil
	engine.moves = nil
	engine.startTime = time.Time{}
	engine.endTime = time.Time{}
}

// StartGame moves the engine from Start to Playing and records the start
// timestamp. Mine placement stays deferred until the first uncover so the
// first click is provably safe.
func (engine *Engine) StartGame() {
	if engine.state != Start {
		return
	}
	engine.state = Playing
	engine.startTime = time.Now()

	engine.log.WithFields(logrus.Fields{
		"rows":  engine.board.Rows(),
		"cols":  engine.board.Cols(),
		"mines": engine.totalMines,
		"mode":  engine.mode,
		"seed":  engine.seed,
	}).Info("game started")
}

// Reset reinitializes the board and every counter back to the Start state,
// regardless of the prior game's outcome. The configured mine count
// survives; the next first uncover places a fresh layout.
func (engine *Engine) Reset() {
	engine.board.Reset()
	engine.state = Start
	engine.minesPlaced = false
	engine.resetCounters()

	engine.log.Info("game reset")
}

// UncoverCell attempts to uncover (row, col) for the given actor and
// reports whether it had any effect. Out-of-bounds, already-uncovered and
// flagged targets are no-ops, not errors.
func (engine *Engine) UncoverCell(row, col int, actor Actor) bool {
	if engine.state != Playing {
		return false
	}
	cell := engine.board.CellAt(row, col)
	if cell == nil || !cell.covered || cell.flagged {
		return false
	}

	engine.record(MoveUncover, row, col, actor)

	if !engine.minesPlaced {
		excluded := Point{row, col}
		if err := engine.board.PlaceMines(engine.totalMines, &excluded, engine.rng); err != nil {
			// Unreachable with a validated config; surfaced for direct
			// Board tampering.
			engine.log.WithError(err).Error("mine placement failed")
			return false
		}
		engine.minesPlaced = true
	}

	if cell.isMine {
		if engine.mode == Versus && actor == ActorAI {
			engine.endGame(EndWin)
		} else {
			engine.endGame(EndLose)
		}
		return true
	}

	engine.floodUncover(row, col)

	if engine.coveredCount == engine.totalMines {
		engine.endGame(EndWin)
	}
	return true
}

// ToggleFlag toggles the flag on a covered cell. Toggling off restores one
// flag to the budget; toggling on consumes one and is silently refused at
// zero remaining. Refused attempts are still journaled.
func (engine *Engine) ToggleFlag(row, col int, actor Actor) {
	if engine.state != Playing {
		return
	}
	cell := engine.board.CellAt(row, col)
	if cell == nil || !cell.covered {
		return
	}

	engine.record(MoveFlag, row, col, actor)

	if cell.flagged {
		engine.board.SetFlag(row, col, false)
		engine.flagsRemaining++
	} else if engine.flagsRemaining > 0 {
		engine.board.SetFlag(row, col, true)
		engine.flagsRemaining--
	}
}

// UseHint picks a covered, unflagged, non-mine cell uniformly at random.
// The budget is only spent when a hint is actually delivered; the board is
// never mutated, acting on the hint is the caller's move.
func (engine *Engine) UseHint() (Point, bool) {
	if engine.hintsRemaining <= 0 {
		return Point{}, false
	}

	safe := make([]Point, 0, engine.board.NumCells())
	for r := 0; r < engine.board.Rows(); r++ {
		for c := 0; c < engine.board.Cols(); c++ {
			cell := engine.board.CellAt(r, c)
			if cell.covered && !cell.flagged && !cell.isMine {
				safe = append(safe, Point{r, c})
			}
		}
	}
	if len(safe) == 0 {
		return Point{}, false
	}

	engine.hintsRemaining--
	hint := safe[engine.rng.Intn(len(safe))]
	engine.lastHint = &hint
	return hint, true
}

// SwitchTurn flips the current mover between human and AI. Only meaningful
// in versus mode while Playing; callers check the game state after a move
// before switching.
func (engine *Engine) SwitchTurn() {
	if engine.mode != Versus || engine.state != Playing {
		return
	}
	if engine.currentTurn == ActorHuman {
		engine.currentTurn = ActorAI
	} else {
		engine.currentTurn = ActorHuman
	}
}

func (engine *Engine) endGame(state GameState) {
	engine.state = state
	engine.endTime = time.Now()
	engine.lastHint = nil

	engine.log.WithFields(logrus.Fields{
		"result":   state,
		"duration": engine.Elapsed().Round(time.Second),
		"moves":    len(engine.moves),
	}).Info("game over")
}

func (engine *Engine) record(kind MoveKind, row, col int, actor Actor) {
	engine.moves = append(engine.moves, Move{Kind: kind, Row: row, Col: col, Actor: actor})

	engine.log.WithFields(logrus.Fields{
		"kind":  kind,
		"row":   row,
		"col":   col,
		"actor": actor,
	}).Debug("move")
}

func (engine *Engine) Board() *Board {
	return engine.board
}

func (engine *Engine) Mode() GameMode {
	return engine.mode
}

func (engine *Engine) Rand() *rand.Rand {
	return engine.rng
}

func (engine *Engine) State() GameState {
	return engine.state
}

func (engine *Engine) TotalMines() int {
	return engine.totalMines
}

func (engine *Engine) FlagsRemaining() int {
	return engine.flagsRemaining
}

func (engine *Engine) CoveredCount() int {
	return engine.coveredCount
}

func (engine *Engine) HintsRemaining() int {
	return engine.hintsRemaining
}

func (engine *Engine) LastHint() (Point, bool) {
	if engine.lastHint == nil {
		return Point{}, false
	}
	return *engine.lastHint, true
}

func (engine *Engine) CurrentTurn() Actor {
	return engine.currentTurn
}

// Moves returns a copy of the move journal, oldest first.
func (engine *Engine) Moves() []Move {
	moves := make([]Move, len(engine.moves))
	copy(moves, engine.moves)
	return moves
}

// Elapsed is the wall-clock duration of the current game, frozen once the
// game ends and zero before it starts.
func (engine *Engine) Elapsed() time.Duration {
	if engine.startTime.IsZero() {
		return 0
	}
	if !engine.endTime.IsZero() {
		return engine.endTime.Sub(engine.startTime)
	}
	return time.Since(engine.startTime)
}

// Snapshot captures the current board and seed for audit or replay.
func (engine *Engine) Snapshot() *BoardSnapshot {
	return NewSnapshot(engine.board, engine.seed)
}
