package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/runner"
)

func newBatchCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch FILE",
		Short: "Simulate the boards listed in a YAML file in parallel",
		Long: `Batch reads a YAML document with a top-level "boards" list and simulates every
board independently, printing one summary line per board. Use "-" to read stdin.

  boards:
    - name: blinker
      generations: 10
      cells: ["00000", "00000", "01110", "00000", "00000"]
    - name: glider
      generations: 40
      height: 20
      width: 20
      pattern: glider
      at: [1, 1]`,
		Args: cobra.ExactArgs(1),
		RunE: a.batch,
	}
	cmd.Flags().IntP("workers", "w", 0, "boards simulated at once")
	cmd.Flags().Bool("stop-on-stagnation", false, "stop a board once it settles into a still life or short cycle")
	cmd.Flags().Int("stagnation-threshold", 0, "consecutive stagnant generations before stopping")
	cmd.Flags().Bool("print", false, "print each final board after its summary")
	cmd.Flags().StringP("renderer", "r", "", "output style for --print: text or block")
	return cmd
}

func (a *app) batch(cmd *cobra.Command, args []string) error {
	var in io.Reader = cmd.InOrStdin()
	if args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return errors.Wrapf(err, "[batch] failed to open batch file: %s", args[0])
		}
		defer f.Close()
		in = f
	}

	jobs, err := runner.LoadJobs(in)
	if err != nil {
		return err
	}
	a.log.Info("batch loaded", "boards", len(jobs), "workers", a.cfg.Workers)

	results, err := runner.Run(cmd.Context(), jobs, runner.Options{
		Workers:             a.cfg.Workers,
		StopOnStagnation:    a.cfg.StopOnStagnation,
		StagnationThreshold: a.cfg.StagnationThreshold,
		Logger:              a.log,
	})
	if err != nil {
		return err
	}

	printBoards, _ := cmd.Flags().GetBool("print")
	renderer, err := model.NewRenderer(a.cfg.Renderer)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, res := range results {
		fmt.Fprintf(out, "%-16s generations=%d population=%d stagnant=%v\n",
			res.Name, res.Generations, res.Population, res.Stagnant)
		a.log.Debug("board timing", "board", res.Name, "elapsed", res.Elapsed)
		if printBoards {
			if err := renderer.Display(out, res.Final, ""); err != nil {
				return err
			}
		}
	}
	return nil
}
