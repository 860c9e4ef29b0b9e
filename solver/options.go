package solver

import (
	"fmt"
	"runtime"

	"github.com/rs/zerolog"

	"github.com/solvium/sudoku/logger"
)

// Option defines an option for altering the behavior of Solve. See the
// descriptions of functions returning instances of this type for implemented
// options.
type Option func(*Config) error

// Config is the solver configuration with the options applied.
type Config struct {
	Logger        zerolog.Logger      // defaults to logger.Logger()
	NbTasks       int                 // parallel branch expansion workers, defaults to runtime.NumCPU()
	MaxBranches   uint64              // search step budget, 0 means unbounded
	ProgressEvery uint64              // heartbeat interval in popped branches, 0 disables
	Progress      func(Progress)      // heartbeat observer
}

// WithLogger specifies a zerolog.Logger as the destination for solver logs.
// By default the global logger package logger is used. zerolog.Nop() will
// disable logging.
func WithLogger(l zerolog.Logger) Option {
	return func(opt *Config) error {
		opt.Logger = l
		return nil
	}
}

// WithNbTasks sets the number of parallel workers used when expanding a
// search frontier. If not set, the number of workers is set to
// runtime.NumCPU(). Popping and propagation stay sequential, so the result
// does not depend on this value.
func WithNbTasks(nbTasks int) Option {
	return func(opt *Config) error {
		if nbTasks <= 0 {
			return fmt.Errorf("invalid number of tasks: %d", nbTasks)
		}
		if nbTasks > 512 {
			// avoid saturating the runtime scheduler with a frontier
			// expansion fan-out larger than it can service.
			nbTasks = 512
		}
		opt.NbTasks = nbTasks
		return nil
	}
}

// WithMaxBranches bounds the number of branches the search may pop before
// giving up with ErrBudget. The frontier can grow combinatorially on
// adversarial inputs; a budget turns that into a clean failure.
func WithMaxBranches(n uint64) Option {
	return func(opt *Config) error {
		opt.MaxBranches = n
		return nil
	}
}

// WithProgress registers fn to be called every interval popped branches.
// The callback observes solving, it cannot influence it.
func WithProgress(interval uint64, fn func(Progress)) Option {
	return func(opt *Config) error {
		if interval == 0 {
			return fmt.Errorf("progress interval must be positive")
		}
		if fn == nil {
			return fmt.Errorf("progress callback must not be nil")
		}
		opt.ProgressEvery = interval
		opt.Progress = fn
		return nil
	}
}

// NewConfig returns a default Config with the given options applied.
func NewConfig(opts ...Option) (Config, error) {
	opt := Config{
		Logger:  logger.Logger(),
		NbTasks: runtime.NumCPU(),
	}
	for _, option := range opts {
		if err := option(&opt); err != nil {
			return Config{}, err
		}
	}
	return opt, nil
}
