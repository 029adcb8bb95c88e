package runner

import (
	"context"
	"runtime"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-life/logging"
	"github.com/sheikhrachel/go-life/model"
)

// Job is one independent board to simulate. The runner steps Grid in place.
type Job struct {
	Name        string
	Grid        *model.Grid
	Generations int
}

// Result summarizes a finished job
type Result struct {
	Name        string
	Final       *model.Grid
	Generations int
	Population  int
	Stagnant    bool
	Elapsed     time.Duration
}

// Options tunes a batch run
type Options struct {
	// Workers caps the number of boards simulated at once; defaults to runtime.NumCPU()
	Workers int
	// StopOnStagnation ends a job early once it has been stagnant for StagnationThreshold generations
	StopOnStagnation    bool
	StagnationThreshold int
	Logger              *logging.Logger
}

// Run simulates every job concurrently and returns their results in job order.
// Each board is stepped by its own cursor; boards share only the snapshot pool.
// The first failing job cancels the rest.
func Run(ctx context.Context, jobs []Job, opts Options) ([]Result, error) {
	var (
		results = make([]Result, len(jobs))
		pool    = model.NewSnapshotPool()
		log     = opts.Logger
	)
	if log == nil {
		log = logging.NopLogger()
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)

	for i, job := range jobs {
		eg.Go(func() error {
			res, err := runJob(ctx, job, pool, opts, log.WithBoard(job.Name))
			if err != nil {
				return errors.Wrapf(err, "[Run] board %q", job.Name)
			}
			results[i] = res
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func runJob(ctx context.Context, job Job, pool *model.SnapshotPool, opts Options, log *logging.Logger) (Result, error) {
	cursor, err := model.NewPooledCursor(job.Grid, job.Generations, pool)
	if err != nil {
		return Result{}, err
	}
	defer cursor.Close()

	var (
		start         = time.Now()
		history       = model.NewHistory(0)
		stagnantCount = 0
	)

	log.Debug("board started", "rows", job.Grid.Rows(), "cols", job.Grid.Cols(), "goal", job.Generations)

	for !cursor.Exhausted() {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}

		history.Update(job.Grid)
		cursor.Next()

		if history.IsStagnant(job.Grid) {
			stagnantCount++
		} else {
			stagnantCount = 0
		}
		if opts.StopOnStagnation && stagnantCount >= max(opts.StagnationThreshold, 1) {
			log.Info("board stagnant, stopping early", "generation", cursor.Current())
			break
		}
	}

	res := Result{
		Name:        job.Name,
		Final:       job.Grid,
		Generations: cursor.Current(),
		Population:  job.Grid.CountLivingCells(),
		Stagnant:    stagnantCount > 0,
		Elapsed:     time.Since(start),
	}
	log.Debug("board finished", "generations", res.Generations, "population", res.Population)
	return res, nil
}
