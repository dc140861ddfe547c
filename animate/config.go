package animate

import (
	"fmt"
	"io"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/juju/clock"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/primstep/core"
	"github.com/katalvlaran/primstep/prim_kruskal"
)

const (
	// MinInterval is the shortest allowed delay between two steps.
	MinInterval = time.Second

	// MaxInterval is the longest allowed delay between two steps.
	MaxInterval = 10 * time.Second

	// DefaultInterval is used when Config.Interval is left at zero.
	DefaultInterval = 5 * time.Second
)

// Engine is the stepwise MST engine driven by a Player.
// *prim_kruskal.Stepper satisfies it.
type Engine interface {
	// Initialize loads a new run on g rooted at start.
	Initialize(g *core.Graph, start int) error

	// Step settles one vertex and describes the outcome.
	Step() (prim_kruskal.StepResult, error)

	// Reset discards the loaded run.
	Reset()
}

// Renderer receives every StepResult produced during a run, in order.
type Renderer interface {
	Render(res prim_kruskal.StepResult) error
}

// RendererFunc adapts a plain function to the Renderer interface.
type RendererFunc func(res prim_kruskal.StepResult) error

// Render calls f(res).
func (f RendererFunc) Render(res prim_kruskal.StepResult) error { return f(res) }

// Config defines the configuration for a Player.
type Config struct {
	// The engine to drive. If not specified, a default
	// prim_kruskal.Stepper will be used instead.
	Engine Engine

	// The graph to run on. The player owns it for the duration of Run.
	Graph *core.Graph

	// The vertex the run is rooted at.
	Start int

	// Receives every step result.
	Renderer Renderer

	// A clock instance for pacing the steps. If not specified,
	// the default wall-clock will be used instead.
	Clock clock.Clock

	// The delay before each step. Zero selects DefaultInterval; other
	// values must lie in [MinInterval, MaxInterval].
	Interval time.Duration

	// The logger to use. If not defined an output-discarding logger will
	// be used instead.
	Logger *logrus.Entry
}

func (config *Config) validate() error {
	var err error

	if config.Graph == nil {
		err = multierror.Append(err, fmt.Errorf("graph not provided"))
	} else if !config.Graph.HasVertex(config.Start) {
		err = multierror.Append(err, fmt.Errorf("start vertex %d not in graph", config.Start))
	}

	if config.Renderer == nil {
		err = multierror.Append(err, fmt.Errorf("renderer not provided"))
	}

	if config.Engine == nil {
		config.Engine = prim_kruskal.NewStepper()
	}

	if config.Clock == nil {
		config.Clock = clock.WallClock
	}

	if config.Interval == 0 {
		config.Interval = DefaultInterval
	}
	if config.Interval < MinInterval || config.Interval > MaxInterval {
		err = multierror.Append(err, fmt.Errorf(
			"invalid value for interval %s, must be within [%s, %s]",
			config.Interval, MinInterval, MaxInterval,
		))
	}

	if config.Logger == nil {
		config.Logger = logrus.NewEntry(&logrus.Logger{Out: io.Discard})
	}

	return err
}
