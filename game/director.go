package game

// Director drives AI play against an Engine. Implementations route every
// mutation through Engine entry points (UncoverCell, ToggleFlag) and keep
// no board state of their own beyond what the engine exposes.
type Director interface {
	/**
	 * Bind the director to an engine before its first Act
	 */
	Init(*Engine)

	/**
	 * Perform at most one turn-ending move through the engine and return
	 * it; ok is false when no move was possible
	 */
	Act() (move Move, ok bool)

	/**
	 * Release the director once the game is over
	 */
	End()
}

// BaseDirector provides no-op lifecycle methods for directors that don't
// need them.
type BaseDirector struct{}

func (director *BaseDirector) Init(*Engine) {}

func (director *BaseDirector) End() {}
