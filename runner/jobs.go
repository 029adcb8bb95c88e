package runner

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/sheikhrachel/go-life/model"
)

// BoardSpec describes one board in a batch file. A board is given either by explicit
// Cells rows ("0110") or by Height/Width plus an optional Pattern and/or random fill.
type BoardSpec struct {
	Name        string   `yaml:"name"`
	Generations int      `yaml:"generations"`
	Cells       []string `yaml:"cells,omitempty"`
	Height      int      `yaml:"height,omitempty"`
	Width       int      `yaml:"width,omitempty"`
	Pattern     string   `yaml:"pattern,omitempty"`
	At          []int    `yaml:"at,omitempty"`
	Density     float64  `yaml:"density,omitempty"`
	Seed        int64    `yaml:"seed,omitempty"`
}

// BatchFile is the top-level document read by LoadJobs
type BatchFile struct {
	Boards []BoardSpec `yaml:"boards"`
}

// LoadJobs decodes a YAML batch file into jobs, building each board's grid
func LoadJobs(r io.Reader) ([]Job, error) {
	var file BatchFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		return nil, errors.Wrap(err, "[LoadJobs] failed to decode batch file")
	}

	jobs := make([]Job, 0, len(file.Boards))
	for i, spec := range file.Boards {
		if spec.Name == "" {
			spec.Name = fmt.Sprintf("board-%d", i+1)
		}
		g, err := spec.Build()
		if err != nil {
			return nil, errors.Wrapf(err, "[LoadJobs] board %q", spec.Name)
		}
		if spec.Generations < 0 {
			return nil, errors.Wrapf(model.ErrInvalidGoal, "[LoadJobs] board %q generations=%d", spec.Name, spec.Generations)
		}
		jobs = append(jobs, Job{Name: spec.Name, Grid: g, Generations: spec.Generations})
	}
	return jobs, nil
}

// Build creates the grid a BoardSpec describes
func (s BoardSpec) Build() (*model.Grid, error) {
	if len(s.Cells) > 0 {
		return parseRows(s.Cells)
	}

	g, err := model.NewEmptyGrid(s.Height, s.Width)
	if err != nil {
		return nil, err
	}
	if s.Density > 0 {
		model.Randomize(g, s.Density, s.Seed)
	}
	if s.Pattern != "" {
		row, col := 1, 1
		if len(s.At) == 2 {
			row, col = s.At[0], s.At[1]
		}
		if err := model.PlacePattern(g, s.Pattern, row, col); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// parseRows turns strings of '0'/'1' characters into a grid
func parseRows(lines []string) (*model.Grid, error) {
	rows := make([][]uint8, len(lines))
	for r, line := range lines {
		rows[r] = make([]uint8, len(line))
		for c, ch := range []byte(line) {
			switch ch {
			case '0':
			case '1':
				rows[r][c] = 1
			default:
				return nil, errors.Wrapf(model.ErrInvalidCellValue, "[parseRows] %q at row %d col %d", ch, r, c)
			}
		}
	}
	return model.NewGridFromRows(rows)
}
