package cmd

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

// addBoardFlags registers the flags that choose where the initial board comes from
func addBoardFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("pattern", "p", "",
		"seed the board with a named pattern instead of reading stdin ("+strings.Join(model.PatternNames(), ", ")+")")
	cmd.Flags().IntSlice("at", []int{1, 1}, "row,col of the pattern origin")
	cmd.Flags().Bool("random", false, "fill the board at random instead of reading stdin")
	cmd.Flags().Float64("density", 0, "live cell density for --random (default from config)")
	cmd.Flags().Int64("seed", 0, "random seed for --random (default from config)")
}

// parseDims parses positional integer arguments, naming the offending one on failure
func parseDims(args []string, names ...string) ([]int, error) {
	out := make([]int, len(names))
	for i, name := range names {
		n, err := strconv.Atoi(args[i])
		if err != nil {
			return nil, errors.Wrapf(err, "[parseDims] %s must be an integer, got %q", name, args[i])
		}
		out[i] = n
	}
	return out, nil
}

// loadBoard builds the starting grid from stdin, a pattern, or a random fill
func (a *app) loadBoard(cmd *cobra.Command, rows, cols int) (*model.Grid, error) {
	pattern, _ := cmd.Flags().GetString("pattern")
	random, _ := cmd.Flags().GetBool("random")

	if pattern == "" && !random {
		a.log.Debug("reading board from stdin", "rows", rows, "cols", cols)
		return utils.ReadGrid(cmd.InOrStdin(), rows, cols)
	}

	g, err := model.NewEmptyGrid(rows, cols)
	if err != nil {
		return nil, err
	}
	if random {
		model.Randomize(g, a.cfg.RandomDensity, a.cfg.Seed)
	}
	if pattern != "" {
		at, _ := cmd.Flags().GetIntSlice("at")
		if len(at) != 2 {
			return nil, errors.Errorf("[loadBoard] --at needs row,col, got %v", at)
		}
		if err := model.PlacePattern(g, pattern, at[0], at[1]); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// sleepContext waits for d or until ctx is done
func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
