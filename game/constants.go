package game

type GameState int

const (
	Start GameState = iota
	Playing
	EndWin
	EndLose
)

func (state GameState) String() string {
	switch state {
	case Start:
		return "start"
	case Playing:
		return "playing"
	case EndWin:
		return "win"
	case EndLose:
		return "lose"
	}
	return "unknown"
}

// Ended reports whether the state is terminal. Terminal states only leave
// via Engine.Reset.
func (state GameState) Ended() bool {
	return state == EndWin || state == EndLose
}

type GameMode int

const (
	HumanOnly GameMode = iota
	AIOnly
	Versus
)

func (mode GameMode) String() string {
	switch mode {
	case HumanOnly:
		return "human"
	case AIOnly:
		return "ai"
	case Versus:
		return "versus"
	}
	return "unknown"
}

type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
)

func (difficulty Difficulty) String() string {
	switch difficulty {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	}
	return "unknown"
}

type Actor int

const (
	ActorHuman Actor = iota
	ActorAI
)

func (actor Actor) String() string {
	if actor == ActorAI {
		return "ai"
	}
	return "human"
}

type MoveKind int

const (
	MoveUncover MoveKind = iota
	MoveFlag
)

func (kind MoveKind) String() string {
	if kind == MoveFlag {
		return "flag"
	}
	return "uncover"
}

// NumHints is the per-game hint budget.
const NumHints = 3
