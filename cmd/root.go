package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/they4kman/sweepai/director/constraint"
	"github.com/they4kman/sweepai/director/random"
	"github.com/they4kman/sweepai/game"
)

var gameConfig = game.NewGameConfig()
var difficulty = game.Easy
var moveDelay = 500 * time.Millisecond
var verbose = false

var rootCmd = &cobra.Command{
	Use:   "sweepai",
	Short: "Play Minesweeper solo, watch the AI, or face it in turns",
	Long: `sweepai is a Minesweeper engine with a rule-based AI solver.

Play manually
	sweepai

Watch the AI play
	sweepai --mode ai --difficulty hard

Alternate turns with the AI on a shared board
	sweepai --mode versus --difficulty medium
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// The engine only enforces the physical bound; the reference UI
		// range lives here.
		if gameConfig.NumMines < 10 || gameConfig.NumMines > 20 {
			return fmt.Errorf("mine count must be between 10 and 20")
		}

		if verbose {
			logrus.SetLevel(logrus.DebugLevel)
		}
		gameConfig.Logger = logrus.StandardLogger()

		engine, err := game.NewGame(gameConfig)
		if err != nil {
			return err
		}

		var director game.Director
		if gameConfig.Mode != game.HumanOnly {
			director = newDirector(difficulty)
			director.Init(engine)
			defer director.End()
		}

		return run(engine, director)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newDirector(difficulty game.Difficulty) game.Director {
	switch difficulty {
	case game.Medium:
		return &constraint.Director{}
	case game.Hard:
		return &constraint.Director{Patterns: true}
	default:
		return &random.Director{}
	}
}

func run(engine *game.Engine, director game.Director) error {
	engine.StartGame()
	input := bufio.NewScanner(os.Stdin)

	for engine.State() == game.Playing {
		aiTurn := engine.Mode() == game.AIOnly ||
			(engine.Mode() == game.Versus && engine.CurrentTurn() == game.ActorAI)

		if aiTurn {
			time.Sleep(moveDelay)
			move, ok := director.Act()
			if !ok {
				logrus.Warn("AI has no move available")
				break
			}
			fmt.Printf("ai: %s (%d, %d)\n", move.Kind, move.Row, move.Col)
		} else {
			fmt.Print(view(engine))
			if !humanTurn(engine, input) {
				return nil
			}
		}

		if engine.State() == game.Playing {
			engine.SwitchTurn()
		}
	}

	fmt.Print(view(engine))
	fmt.Printf("%s in %s\n", engine.State(), engine.Elapsed().Round(time.Second))
	logrus.Debug("final board\n" + engine.Snapshot().Serialize())
	return nil
}

// humanTurn reads commands until one ends the human's turn. Returns false
// on quit or EOF.
func humanTurn(engine *game.Engine, input *bufio.Scanner) bool {
	for {
		fmt.Print("> ")
		if !input.Scan() {
			return false
		}

		fields := strings.Fields(input.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "q", "quit":
			return false

		case "reset":
			engine.Reset()
			engine.StartGame()
			fmt.Print(view(engine))

		case "h", "hint":
			if hint, ok := engine.UseHint(); ok {
				fmt.Printf("hint: try (%d, %d), %d left\n", hint.Row, hint.Col, engine.HintsRemaining())
			} else {
				fmt.Println("no hint available")
			}

		case "u", "f":
			r, c, ok := parseCoords(fields)
			if !ok || !engine.Board().InBounds(r, c) {
				fmt.Println("usage: u <row> <col> / f <row> <col>")
				continue
			}

			if fields[0] == "u" {
				if !engine.UncoverCell(r, c, game.ActorHuman) {
					fmt.Println("no effect")
					continue
				}
			} else {
				engine.ToggleFlag(r, c, game.ActorHuman)
			}
			return true

		default:
			fmt.Println("commands: u <row> <col>, f <row> <col>, hint, reset, quit")
		}
	}
}

func parseCoords(fields []string) (r, c int, ok bool) {
	if len(fields) != 3 {
		return 0, 0, false
	}
	r, errR := strconv.Atoi(fields[1])
	c, errC := strconv.Atoi(fields[2])
	return r, c, errR == nil && errC == nil
}

// view renders the player's picture of the board; mines only show once the
// game has ended.
func view(engine *game.Engine) string {
	board := engine.Board()
	ended := engine.State().Ended()

	var b strings.Builder
	fmt.Fprintf(&b, "flags: %d/%d  hints: %d\n", engine.FlagsRemaining(), engine.TotalMines(), engine.HintsRemaining())

	for r := 0; r < board.Rows(); r++ {
		for c := 0; c < board.Cols(); c++ {
			cell := board.CellAt(r, c)
			switch {
			case ended && cell.IsMine():
				b.WriteString("* ")
			case cell.Flagged():
				b.WriteString("F ")
			case cell.Covered():
				b.WriteString("# ")
			case cell.NeighborMines() == 0:
				b.WriteString(". ")
			default:
				fmt.Fprintf(&b, "%d ", cell.NeighborMines())
			}
		}
		b.WriteString("\n")
	}

	return b.String()
}

func init() {
	rootCmd.Flags().IntVarP(&gameConfig.Rows, "rows", "r", 10, "Height of game board, in cells")
	rootCmd.Flags().IntVarP(&gameConfig.Cols, "cols", "c", 10, "Width of game board, in cells")
	rootCmd.Flags().IntVarP(&gameConfig.NumMines, "mines", "m", 10, "Number of mines to place in the game board (10-20)")
	rootCmd.Flags().Var(newGameModeValue(game.HumanOnly, &gameConfig.Mode), "mode", `Game mode.
human: you play every turn
ai: the AI plays every turn
versus: you and the AI alternate turns on one board`)
	rootCmd.Flags().VarP(newDifficultyValue(game.Easy, &difficulty), "difficulty", "d", `AI difficulty.
easy: random uncovers
medium: local constraint deduction
hard: deduction plus the 1-2-1 pattern`)
	rootCmd.Flags().Int64Var(&gameConfig.Seed, "seed", 0, "PRNG seed (0 uses the current time)")
	rootCmd.Flags().DurationVar(&moveDelay, "delay", 500*time.Millisecond, "Pause between AI moves")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}
