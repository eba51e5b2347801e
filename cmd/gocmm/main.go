package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/philipparndt/gocmm/internal/logging"
	"github.com/philipparndt/gocmm/pkg/analysis"
	"github.com/philipparndt/gocmm/pkg/delaunay"
	"github.com/philipparndt/gocmm/pkg/watcher"
	"github.com/philipparndt/gocmm/version"
)

const watchDebounce = 200 * time.Millisecond

// rootOptions holds the flags shared by all commands
type rootOptions struct {
	logLevel string
	epsilon  float64
	watch    bool

	logger *zap.SugaredLogger
}

func (o *rootOptions) analysisOptions(withHull bool) analysis.Options {
	return analysis.Options{
		Tetrahedralizer: delaunay.New(
			delaunay.WithEpsilon(o.epsilon),
			delaunay.WithLogger(o.logger),
		),
		Logger: o.logger,
		Hull:   withHull,
	}
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "gocmm <file>",
		Short: "Measure the volume and surface area of a marker point cloud",
		Long: `gocmm tetrahedralizes the markers of a .cmm marker file (or the vertices of an
STL file) and reports the enclosed volume and the area of the outer surface.`,
		Version:       version.GetFullVersion(),
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.epsilon <= 0 {
				return errors.Errorf("--epsilon must be positive, got %g", opts.epsilon)
			}
			logger, err := newLogger(cmd.ErrOrStderr(), opts.logLevel)
			if err != nil {
				return err
			}
			opts.logger = logger
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.watch {
				return watch(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), args[0], opts)
			}
			return report(cmd.Context(), cmd.OutOrStdout(), args[0], opts)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	flags.Float64Var(&opts.epsilon, "epsilon", 1e-10, "Relative tolerance of the tetrahedralizer")
	cmd.Flags().BoolVarP(&opts.watch, "watch", "w", false, "Recompute whenever the file changes")

	cmd.AddCommand(
		newInfoCmd(opts),
		newFacetsCmd(opts),
		newTetraCmd(opts),
		newExportCmd(opts),
	)
	return cmd
}

func newLogger(w io.Writer, level string) (*zap.SugaredLogger, error) {
	if w == os.Stderr {
		return logging.NewLogger(level)
	}
	return logging.NewWriterLogger(w, level)
}

// report prints the volume and surface area of the points in path. The
// convex hull is checked too, so a mismatch is logged as a warning.
func report(ctx context.Context, out io.Writer, path string, opts *rootOptions) error {
	result, _, err := analyzeFile(ctx, path, opts, true)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, analysis.FormatVolume(result.Volume))
	fmt.Fprintln(out, analysis.FormatSurfaceArea(result.SurfaceArea))
	return nil
}

// watch reports once and again after every change of path until ctx is done.
// Failures are printed and do not stop watching.
func watch(ctx context.Context, out, errOut io.Writer, path string, opts *rootOptions) error {
	var (
		mu     sync.Mutex
		closed bool
	)
	run := func() {
		mu.Lock()
		defer mu.Unlock()
		if closed {
			return
		}
		rerun(ctx, out, errOut, path, opts)
	}

	fw, err := watcher.NewFileWatcher(watchDebounce, opts.logger)
	if err != nil {
		return err
	}
	if err := fw.Watch([]string{path}, func(string) { run() }); err != nil {
		fw.Close()
		return err
	}
	fw.Start()
	opts.logger.Infow("watching for changes", "path", path)

	run()
	<-ctx.Done()

	err = fw.Close()
	<-fw.Done()
	mu.Lock()
	closed = true
	mu.Unlock()
	return err
}

// rerun reports path and prints a failure to errOut. A failure caused by
// ctx ending is not printed.
func rerun(ctx context.Context, out, errOut io.Writer, path string, opts *rootOptions) {
	err := report(ctx, out, path, opts)
	if err != nil && ctx.Err() == nil {
		fmt.Fprintf(errOut, "Error: %v\n", err)
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
