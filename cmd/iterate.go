package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/sheikhrachel/go-life/model"
)

func newIterateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "iterate ROWS COLS GOAL",
		Short: "Emit GOAL successive generations as JSON arrays of rows",
		Long: `Iterate steps the board GOAL times and prints each resulting generation as a
JSON array of rows, one generation per line. The initial board is not printed.`,
		Args: cobra.ExactArgs(3),
		RunE: a.iterate,
	}
	addBoardFlags(cmd)
	return cmd
}

func (a *app) iterate(cmd *cobra.Command, args []string) error {
	dims, err := parseDims(args, "ROWS", "COLS", "GOAL")
	if err != nil {
		return err
	}

	grid, err := a.loadBoard(cmd, dims[0], dims[1])
	if err != nil {
		return err
	}
	cursor, err := model.NewCursor(grid, dims[2])
	if err != nil {
		return err
	}
	defer cursor.Close()

	out := cmd.OutOrStdout()
	for generation, rows := range cursor.All() {
		if err := cmd.Context().Err(); err != nil {
			a.log.Info("interrupted", "generation", generation)
			return nil
		}
		line, err := json.Marshal(toIntRows(rows))
		if err != nil {
			return errors.Wrapf(err, "[iterate] failed to encode generation %d", generation)
		}
		if _, err := fmt.Fprintln(out, string(line)); err != nil {
			return errors.Wrap(err, "[iterate] failed to write generation")
		}
	}
	a.log.Debug("cursor exhausted", "generations", cursor.Current())
	return nil
}

// toIntRows widens cells so encoding/json writes numbers instead of base64 byte strings
func toIntRows(rows [][]uint8) [][]int {
	out := make([][]int, len(rows))
	for r, row := range rows {
		out[r] = make([]int, len(row))
		for c, v := range row {
			out[r][c] = int(v)
		}
	}
	return out
}
