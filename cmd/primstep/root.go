package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/juju/clock"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/primstep/animate"
	"github.com/katalvlaran/primstep/core"
	"github.com/katalvlaran/primstep/prim_kruskal"
)

const appName = "primstep"

type options struct {
	vertices  int
	shape     string
	seed      int64
	maxWeight int64
	edges     []string
	start     int
	interval  time.Duration
	play      bool
	verify    bool
	verbose   bool

	// clock paces --play; nil means the wall clock.
	clock clock.Clock
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           appName,
		Short:         "Step through Prim's minimum spanning tree one vertex at a time",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := run(cmd.Context(), cmd.OutOrStdout(), opts)
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), "error:", err)
			}

			return err
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&opts.vertices, "vertices", 0, "number of vertices, created with IDs 1..N")
	flags.StringVar(&opts.shape, "shape", "", "fixture graph as kind:n (path, cycle, star, wheel, complete)")
	flags.Int64Var(&opts.seed, "seed", 1, "seed for --shape edge weights")
	flags.Int64Var(&opts.maxWeight, "max-weight", 20, "--shape edge weights are drawn from [1, max-weight]")
	flags.StringArrayVar(&opts.edges, "edge", nil, "undirected edge as a,b,weight (repeatable)")
	flags.IntVar(&opts.start, "start", 1, "start vertex ID")
	flags.DurationVar(&opts.interval, "interval", animate.DefaultInterval, "delay between steps with --play")
	flags.BoolVar(&opts.play, "play", false, "pace the steps instead of fast-forwarding")
	flags.BoolVar(&opts.verify, "verify", false, "compare the tree weight with Kruskal's algorithm")
	flags.BoolVar(&opts.verbose, "verbose", false, "log every step")

	return cmd
}

func run(ctx context.Context, out io.Writer, opts *options) error {
	if ctx == nil {
		ctx = context.Background()
	}

	logger := newLogger(opts.verbose)

	g, err := buildGraph(opts)
	if err != nil {
		return err
	}

	stepper := prim_kruskal.NewStepper()
	r := &textRenderer{out: out, g: g, stepper: stepper}

	finished := true
	if opts.play {
		finished, err = play(ctx, g, stepper, r, opts, logger)
	} else {
		err = fastForward(g, stepper, r, opts.start)
	}
	if err != nil {
		return err
	}
	if !finished {
		fmt.Fprintln(out, "playback interrupted before the tree was complete")
		return nil
	}

	fmt.Fprintf(out, "total weight: %d (%d tree edges)\n", stepper.TotalWeight(), len(stepper.Tree()))

	if opts.verify {
		return verify(out, g, stepper)
	}

	return nil
}

func newLogger(verbose bool) *logrus.Entry {
	rootLogger := logrus.New()
	rootLogger.SetOutput(os.Stderr)
	if verbose {
		rootLogger.SetLevel(logrus.DebugLevel)
	} else {
		rootLogger.SetLevel(logrus.WarnLevel)
	}

	return rootLogger.WithField("app", appName)
}

// play paces the run with an animate.Player until it finishes or the
// process receives SIGINT/SIGTERM. finished is false when playback was
// stopped before the last step; the stepper has been reset by then.
func play(ctx context.Context, g *core.Graph, s *prim_kruskal.Stepper, r animate.Renderer, opts *options, logger *logrus.Entry) (finished bool, err error) {
	ctx, cancelFn := context.WithCancel(ctx)
	defer cancelFn()

	go func() {
		signalChan := make(chan os.Signal, 1)
		signal.Notify(signalChan, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(signalChan)

		select {
		case sig := <-signalChan:
			logger.WithField("signal", sig.String()).Info("stopping playback")
			cancelFn()
		case <-ctx.Done():
		}
	}()

	player, err := animate.New(animate.Config{
		Engine:   s,
		Graph:    g,
		Start:    opts.start,
		Renderer: r,
		Clock:    opts.clock,
		Interval: opts.interval,
		Logger:   logger,
	})
	if err != nil {
		return false, err
	}
	if err := player.Run(ctx); err != nil {
		return false, err
	}

	return s.State() == prim_kruskal.StateFinished, nil
}

func fastForward(g *core.Graph, s *prim_kruskal.Stepper, r animate.Renderer, start int) error {
	if err := s.Initialize(g, start); err != nil {
		return err
	}
	for {
		res, err := s.Step()
		if err != nil {
			return err
		}
		if err := r.Render(res); err != nil {
			return err
		}
		if res.Done {
			return nil
		}
	}
}

// verify compares the stepped tree weight with Kruskal's. A disconnected
// graph is reported and not compared.
func verify(out io.Writer, g *core.Graph, s *prim_kruskal.Stepper) error {
	_, want, err := prim_kruskal.Kruskal(g)
	if errors.Is(err, prim_kruskal.ErrDisconnected) {
		fmt.Fprintln(out, "verify: graph is disconnected, spanning forest not compared")
		return nil
	}
	if err != nil {
		return errors.Wrap(err, "verify")
	}
	if got := s.TotalWeight(); got != want {
		return errors.Errorf("verify: prim weight %d, kruskal weight %d", got, want)
	}
	fmt.Fprintf(out, "verify: ok, kruskal weight %d\n", want)

	return nil
}

// textRenderer prints one block per step.
type textRenderer struct {
	out     io.Writer
	g       *core.Graph
	stepper *prim_kruskal.Stepper
}

func (t *textRenderer) Render(res prim_kruskal.StepResult) error {
	line := fmt.Sprintf("step %d: settled %d via %s; next %s via %s; frontier %v",
		res.Step, res.SettledVertexID, formatEdge(res.SettledEdge),
		formatVertex(res.NextVertexID), formatEdge(res.NextEdge), res.FrontierVertexIDs)
	if _, err := fmt.Fprintln(t.out, line); err != nil {
		return err
	}

	roles := make([]string, 0, t.g.VertexCount())
	for _, id := range t.g.VertexIDs() {
		roles = append(roles, fmt.Sprintf("%d=%s", id, t.stepper.VertexRole(id)))
	}
	_, err := fmt.Fprintf(t.out, "  roles: %s\n", strings.Join(roles, " "))

	return err
}

func formatEdge(e *core.Edge) string {
	if e == nil {
		return "-"
	}

	return fmt.Sprintf("%d-%d (%d)", e.V1, e.V2, e.Weight)
}

func formatVertex(id int) string {
	if id == core.NoVertex {
		return "-"
	}

	return fmt.Sprint(id)
}
