package cmd

import (
	"fmt"

	"github.com/they4kman/sweepai/game"
)

type gameModeValue game.GameMode

func newGameModeValue(val game.GameMode, p *game.GameMode) *gameModeValue {
	*p = val
	return (*gameModeValue)(p)
}

var gameModes = map[string]game.GameMode{
	"human":  game.HumanOnly,
	"ai":     game.AIOnly,
	"versus": game.Versus,
}

func (modeVal *gameModeValue) String() string {
	for name, mode := range gameModes {
		if mode == game.GameMode(*modeVal) {
			return name
		}
	}
	return fmt.Sprint(*modeVal)
}

func (modeVal *gameModeValue) Set(value string) error {
	if mode, isValid := gameModes[value]; isValid {
		*modeVal = gameModeValue(mode)
		return nil
	}
	return fmt.Errorf("invalid game mode")
}

func (modeVal *gameModeValue) Type() string {
	return "game.GameMode"
}

type difficultyValue game.Difficulty

func newDifficultyValue(val game.Difficulty, p *game.Difficulty) *difficultyValue {
	*p = val
	return (*difficultyValue)(p)
}

var difficulties = map[string]game.Difficulty{
	"easy":   game.Easy,
	"medium": game.Medium,
	"hard":   game.Hard,
}

func (difficultyVal *difficultyValue) String() string {
	for name, difficulty := range difficulties {
		if difficulty == game.Difficulty(*difficultyVal) {
			return name
		}
	}
	return fmt.Sprint(*difficultyVal)
}

func (difficultyVal *difficultyValue) Set(value string) error {
	if difficulty, isValid := difficulties[value]; isValid {
		*difficultyVal = difficultyValue(difficulty)
		return nil
	}
	return fmt.Errorf("invalid difficulty")
}

func (difficultyVal *difficultyValue) Type() string {
	return "game.Difficulty"
}
