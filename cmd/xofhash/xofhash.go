// Package xofhash contains the xofhash command tree.
package xofhash

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	cmdp "github.com/spacemeshos/go-xofhash/cmd"
	"github.com/spacemeshos/go-xofhash/config"
	"github.com/spacemeshos/go-xofhash/log"
	"github.com/spacemeshos/go-xofhash/metrics"
)

const pushJob = "xofhash"

type app struct {
	fs     afero.Fs
	clock  clockwork.Clock
	conf   *config.Config
	logger *zap.Logger

	stopMetrics context.CancelFunc
}

// Opt configures the command tree.
type Opt func(*app)

// WithFs sets the filesystem files are read from.
func WithFs(fs afero.Fs) Opt {
	return func(a *app) {
		a.fs = fs
	}
}

// WithClock sets the clock used to time hashing.
func WithClock(clock clockwork.Clock) Opt {
	return func(a *app) {
		a.clock = clock
	}
}

// New returns the root command.
func New(opts ...Opt) *cobra.Command {
	def := config.DefaultConfig()
	a := &app{
		fs:     afero.NewOsFs(),
		clock:  clockwork.NewRealClock(),
		conf:   &def,
		logger: log.NewNop(),
	}
	for _, opt := range opts {
		opt(a)
	}

	root := &cobra.Command{
		Use:               "xofhash",
		Short:             "BLAKE3 digests with extendable, seekable output",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRunE: func(c *cobra.Command, _ []string) error {
			return a.teardown(c.Context())
		},
	}
	cmdp.AddFlags(root.PersistentFlags(), &def)
	root.AddCommand(a.sumCmd(&def), a.checkCmd(&def), versionCmd())
	return root
}

func (a *app) setup(c *cobra.Command, _ []string) error {
	conf, err := cmdp.ParseConfig(c.Flags())
	if err != nil {
		return err
	}
	logger, err := cmdp.NewLogger(conf, c.ErrOrStderr())
	if err != nil {
		return err
	}
	a.conf = conf
	a.logger = logger.Named(c.Name())

	if conf.CollectMetrics {
		ctx, cancel := context.WithCancel(c.Context())
		addr, err := metrics.StartCollectingMetrics(ctx, conf.MetricsAddr, a.logger)
		if err != nil {
			cancel()
			return log.ErrStartMetrics(err)
		}
		a.stopMetrics = cancel
		a.logger.Info("serving metrics", zap.Stringer("addr", addr))
	}
	a.logger.Debug("config loaded",
		zap.String("engine", conf.HASH.Engine),
		zap.Int("jobs", conf.HASH.Jobs),
		zap.String("config", conf.ConfigFile),
	)
	return nil
}

func (a *app) teardown(ctx context.Context) error {
	if a.stopMetrics != nil {
		a.stopMetrics()
	}
	if a.conf.MetricsPush != "" {
		if err := metrics.PushMetrics(ctx, a.conf.MetricsPush, pushJob, uuid.NewString(), a.logger); err != nil {
			a.logger.Warn("failed to push metrics", zap.Error(err))
		}
	}
	_ = a.logger.Sync()
	return nil
}

// run logs fatal errors with their code before handing them to cobra.
func (a *app) run(fn func(*cobra.Command, []string) error) func(*cobra.Command, []string) error {
	return func(c *cobra.Command, args []string) error {
		err := fn(c, args)
		var fe *log.FatalError
		if errors.As(err, &fe) {
			a.logger.Error("fatal error", zap.Object("fatal", fe))
		}
		return err
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version info",
		Args:  cobra.NoArgs,
		Run: func(c *cobra.Command, _ []string) {
			printVersion(c.OutOrStdout())
		},
	}
}

func printVersion(w io.Writer) {
	fmt.Fprint(w, cmdp.Version)
	if cmdp.Commit != "" {
		fmt.Fprintf(w, "+%s", cmdp.Commit)
	}
	fmt.Fprintln(w)
}
