package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/gomines/gomines/director"
	"github.com/gomines/gomines/director/random"
	"github.com/gomines/gomines/director/singlepoint"
	"github.com/gomines/gomines/game"
)

var (
	difficulty     = game.Difficulty{Height: 16, Width: 30, Mines: 99}
	difficultyName string
	presetsPath    string
	seed           int64
	useDirector    = false
	formatMode     = game.Plain
)

var rootCmd = &cobra.Command{
	Use:   "gomines",
	Short: "Play manual or computer-driven Minesweeper in the terminal",
	Long: `gomines drives a Minesweeper board engine from the terminal.

Run with no arguments to play manually
	gomines

Use the director flag to make the computer play for you
	gomines --director
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		log := logrus.WithField("seed", seed)

		if err := resolveDifficulty(); err != nil {
			return err
		}

		board, err := difficulty.New(game.NewRandMineSource(seed))
		if err != nil {
			return err
		}
		log.WithFields(logrus.Fields{
			"height": board.Height(),
			"width":  board.Width(),
			"mines":  board.NumMines(),
		}).Info("board created")

		if useDirector {
			runDirector(board, log)
		} else {
			runInteractive(board)
		}

		log.WithField("status", board.Status()).Info("game over")
		return nil
	},
}

// resolveDifficulty folds the difficulty name and preset file flags into the
// explicit height/width/mines flags.
func resolveDifficulty() error {
	if difficultyName == "" {
		return nil
	}

	switch difficultyName {
	case "easy":
		difficulty = game.Easy()
		return nil
	case "medium":
		difficulty = game.Medium()
		return nil
	case "hard":
		difficulty = game.Hard()
		return nil
	}

	if presetsPath == "" {
		return fmt.Errorf("unknown difficulty %q", difficultyName)
	}
	in, err := os.ReadFile(presetsPath)
	if err != nil {
		return err
	}
	presets, err := game.LoadPresets(in)
	if err != nil {
		return err
	}
	preset, found := presets[difficultyName]
	if !found {
		return fmt.Errorf("difficulty %q not found in %s", difficultyName, presetsPath)
	}
	difficulty = preset
	return nil
}

func runDirector(board *game.Board, log *logrus.Entry) {
	directors := []director.Director{
		singlepoint.New(),
		random.New(seed),
	}
	for _, d := range directors {
		d.Init(board)
	}

	moves := 0
	for board.Status() == game.Ongoing {
		for _, d := range directors {
			if d.Act() {
				moves++
				break
			}
		}
		fmt.Println(board.Render(formatMode))
	}
	log.WithField("moves", moves).Info("director finished")
}

func runInteractive(board *game.Board) {
	scanner := bufio.NewScanner(os.Stdin)

	for board.Status() == game.Ongoing {
		fmt.Println(board.Render(formatMode))
		fmt.Printf("%d mines, %d flags > ", board.NumMines(), board.NumFlags())
		if !scanner.Scan() {
			return
		}

		var row, col int
		input := strings.TrimSpace(scanner.Text())
		switch {
		case input == "quit":
			return
		case sscan(input, "open %d %d", &row, &col):
			result, err := board.Open(game.Coord{Row: row, Col: col})
			if err != nil {
				fmt.Println(err)
			} else if result.Outcome != game.Opened {
				fmt.Println(result.Outcome)
			}
		case sscan(input, "flag %d %d", &row, &col):
			if _, err := board.ToggleFlag(game.Coord{Row: row, Col: col}); err != nil {
				fmt.Println(err)
			}
		default:
			fmt.Println("commands: open ROW COL | flag ROW COL | quit")
		}
	}

	fmt.Println(board.Render(formatMode))
}

func sscan(input, format string, args ...any) bool {
	n, err := fmt.Sscanf(input, format, args...)
	return err == nil && n == len(args)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logrus.Fatal(err)
	}
}

type formatModeValue game.FormatMode

func newFormatModeValue(val game.FormatMode, p *game.FormatMode) *formatModeValue {
	*p = val
	return (*formatModeValue)(p)
}

func (modeVal *formatModeValue) String() string {
	return game.FormatMode(*modeVal).String()
}

func (modeVal *formatModeValue) Set(value string) error {
	for _, mode := range game.FormatModes {
		if mode.String() == value {
			*modeVal = formatModeValue(mode)
			return nil
		}
	}
	return fmt.Errorf("invalid format mode")
}

func (modeVal *formatModeValue) Type() string {
	return "game.FormatMode"
}

func init() {
	// Define our root --help without a shorthand, as we'll use -h for --height
	// Ref: https://github.com/spf13/cobra/issues/291
	rootCmd.Flags().Bool("help", false, "Help for this command")

	rootCmd.Flags().IntVarP(&difficulty.Width, "width", "w", 30, "Width of game board, in cells")
	rootCmd.Flags().IntVarP(&difficulty.Height, "height", "h", 16, "Height of game board, in cells")
	rootCmd.Flags().IntVarP(&difficulty.Mines, "mines", "m", 99, "Number of mines to place in the game board")
	rootCmd.Flags().StringVar(&difficultyName, "difficulty", "", "Difficulty name: easy, medium, hard, or a name from --presets")
	rootCmd.Flags().StringVar(&presetsPath, "presets", "", "Path to a yaml file of named difficulty presets")
	rootCmd.Flags().Int64Var(&seed, "seed", 0, "Mine placement seed (0 uses the current time)")
	rootCmd.Flags().Var(newFormatModeValue(game.Plain, &formatMode), "format", "Board rendering: plain, numeric, decorative or annotated")
	rootCmd.Flags().BoolVarP(&useDirector, "director", "d", false, "Make the computer play")
}
