package cmd

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

func newRunCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run ROWS COLS ROUNDS",
		Short: "Print the board every round for ROUNDS rounds",
		Long: `Run reads ROWS*COLS whitespace-separated 0/1 values from stdin and prints the
board once per round, stepping it after each print.`,
		Example: `  printf '0 0 0 0 0\n0 0 0 0 0\n0 1 1 1 0\n0 0 0 0 0\n0 0 0 0 0\n' | golife run 5 5 3
  golife run 20 40 200 --pattern glider --renderer block --frame-rate 100ms`,
		Args: cobra.ExactArgs(3),
		RunE: a.runGame,
	}

	addBoardFlags(cmd)
	cmd.Flags().StringP("renderer", "r", "", "output style: text or block")
	cmd.Flags().Duration("frame-rate", 0, "delay between rounds")
	cmd.Flags().Int("max-generations", 0, "upper bound on ROUNDS, 0 for none")
	cmd.Flags().Bool("stop-on-stagnation", false, "stop once the board settles into a still life or short cycle")
	cmd.Flags().Int("stagnation-threshold", 0, "consecutive stagnant rounds before stopping")
	return cmd
}

func (a *app) runGame(cmd *cobra.Command, args []string) error {
	dims, err := parseDims(args, "ROWS", "COLS", "ROUNDS")
	if err != nil {
		return err
	}
	rows, cols, rounds := dims[0], dims[1], dims[2]
	if rounds < 0 {
		return errors.Wrapf(model.ErrInvalidGoal, "[runGame] ROUNDS=%d", rounds)
	}
	if a.cfg.MaxGenerations > 0 && rounds > a.cfg.MaxGenerations {
		a.log.Warn("capping rounds at max_generations", "rounds", rounds, "max_generations", a.cfg.MaxGenerations)
		rounds = a.cfg.MaxGenerations
	}

	renderer, err := model.NewRenderer(a.cfg.Renderer)
	if err != nil {
		return err
	}
	grid, err := a.loadBoard(cmd, rows, cols)
	if err != nil {
		return err
	}

	var (
		ctx           = cmd.Context()
		out           = cmd.OutOrStdout()
		engine        = model.NewEngine(nil)
		history       = model.NewHistory(0)
		stats         = utils.NewStats()
		stagnantCount = 0
		lastFrameTime = time.Now()
	)
	defer engine.Release()

	for generation := range rounds {
		frameStart := time.Now()
		livingCells := grid.CountLivingCells()

		renderer.Clear(out)
		header := ""
		if a.cfg.Renderer == model.RendererBlock {
			header = fmt.Sprintf("Gen: %d | Living: %d | Density: %.1f%%",
				generation, livingCells, float64(livingCells)/float64(rows*cols)*100)
		}
		if err := renderer.Display(out, grid, header); err != nil {
			return err
		}
		stats.Update(generation+1, livingCells, frameStart.Sub(lastFrameTime))
		lastFrameTime = frameStart

		history.Update(grid)
		engine.Step(grid)

		if history.IsStagnant(grid) {
			stagnantCount++
		} else {
			stagnantCount = 0
		}
		if a.cfg.StopOnStagnation && stagnantCount >= a.cfg.StagnationThreshold {
			a.log.Info("board stagnant, stopping", "generation", generation+1)
			break
		}

		if err := sleepContext(ctx, a.cfg.FrameRate); err != nil {
			a.log.Info("interrupted, shutting down gracefully", "generation", generation+1)
			break
		}
	}

	a.log.Info("run finished", "summary", stats.Summary())
	return nil
}
