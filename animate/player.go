package animate

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/primstep/prim_kruskal"
)

// Player paces an Engine over a graph, one step per interval, and pushes
// every result to a Renderer.
type Player struct {
	config Config

	mu      sync.Mutex
	last    prim_kruskal.StepResult
	hasLast bool
}

// New creates and returns a fully configured Player.
func New(config Config) (*Player, error) {
	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("animate: config validation failed: %w", err)
	}

	return &Player{config: config}, nil
}

// Interval returns the effective delay between steps.
func (p *Player) Interval() time.Duration { return p.config.Interval }

// Last returns the most recently rendered result. It is safe to call
// while Run is in progress.
func (p *Player) Last() (prim_kruskal.StepResult, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.last, p.hasLast
}

// Run initializes the engine and blocks, stepping once per interval, until
// the run is done, the context gets cancelled or an error occurs.
// Cancellation resets the engine and is not an error. A failed step or
// render also resets the engine before the error is returned.
func (p *Player) Run(ctx context.Context) error {
	logger := p.config.Logger.WithFields(logrus.Fields{
		"run_id": uuid.New().String(),
		"start":  p.config.Start,
	})

	p.mu.Lock()
	p.last, p.hasLast = prim_kruskal.StepResult{}, false
	p.mu.Unlock()

	if err := p.config.Engine.Initialize(p.config.Graph, p.config.Start); err != nil {
		return fmt.Errorf("animate: initialize: %w", err)
	}
	logger.WithField("interval", p.config.Interval.String()).Info("started run")

	for {
		select {
		case <-ctx.Done():
			p.config.Engine.Reset()
			logger.Info("stopped run")

			return nil
		case <-p.config.Clock.After(p.config.Interval):
			res, err := p.config.Engine.Step()
			if err != nil {
				p.config.Engine.Reset()
				logger.WithField("err", err).Error("step failed")

				return fmt.Errorf("animate: step: %w", err)
			}

			p.mu.Lock()
			p.last, p.hasLast = res, true
			p.mu.Unlock()

			logger.WithFields(logrus.Fields{
				"step":     res.Step,
				"settled":  res.SettledVertexID,
				"next":     res.NextVertexID,
				"frontier": len(res.FrontierVertexIDs),
			}).Debug("stepped")

			if err := p.config.Renderer.Render(res); err != nil {
				p.config.Engine.Reset()
				logger.WithField("err", err).Error("render failed")

				return fmt.Errorf("animate: render step %d: %w", res.Step, err)
			}

			if res.Done {
				logger.WithField("steps", res.Step).Info("finished run")

				return nil
			}
		}
	}
}
