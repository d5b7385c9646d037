package cli

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/release-info/pkg/cli/config"
	"github.com/m-mizutani/release-info/pkg/domain/interfaces"
	"github.com/m-mizutani/release-info/pkg/domain/types"
	"github.com/m-mizutani/release-info/pkg/infra/actions"
	"github.com/urfave/cli/v3"
)

// options holds dependencies that can be replaced, mainly for testing
type options struct {
	githubClient interfaces.GitHubClient
	reporter     interfaces.FailureReporter
	logWriter    io.Writer
	writer       io.Writer
	errWriter    io.Writer
}

// Option is a functional option for Run
type Option func(*options)

// WithGitHubClient uses the given client instead of building one from flags
func WithGitHubClient(client interfaces.GitHubClient) Option {
	return func(o *options) {
		o.githubClient = client
	}
}

// WithReporter replaces the GitHub Actions failure reporter
func WithReporter(reporter interfaces.FailureReporter) Option {
	return func(o *options) {
		o.reporter = reporter
	}
}

// WithLogWriter sets the destination of logs
func WithLogWriter(w io.Writer) Option {
	return func(o *options) {
		o.logWriter = w
	}
}

// WithOutput sets the destination of help and usage messages
func WithOutput(w, errW io.Writer) Option {
	return func(o *options) {
		o.writer = w
		o.errWriter = errW
	}
}

// Run runs the CLI application. Any error is reported once through the
// failure reporter and returned.
func Run(ctx context.Context, args []string, opts ...Option) error {
	o := &options{
		logWriter: os.Stdout,
		writer:    os.Stdout,
		errWriter: os.Stderr,
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.reporter == nil {
		o.reporter = actions.NewReporter()
	}

	var (
		loggerCfg config.Logger
		sentryCfg config.Sentry
		repoCfg   config.Repository
		githubCfg config.GitHub
		logger    *slog.Logger
	)

	var flags []cli.Flag
	flags = append(flags, loggerCfg.Flags()...)
	flags = append(flags, sentryCfg.Flags()...)
	flags = append(flags, repoCfg.Flags()...)
	flags = append(flags, githubCfg.Flags()...)

	app := &cli.Command{
		Name:      "release-info",
		Usage:     "Fetch the latest release of a GitHub repository",
		Version:   types.Version,
		Flags:     flags,
		Writer:    o.writer,
		ErrWriter: o.errWriter,
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			var err error
			logger, err = loggerCfg.New(o.logWriter)
			if err != nil {
				return nil, err
			}

			logger = logger.With(slog.String("invocation_id", uuid.NewString()))
			if runID := os.Getenv("GITHUB_RUN_ID"); runID != "" {
				logger = logger.With(slog.String("run_id", runID))
			}

			slog.SetDefault(logger)
			ctx = ctxlog.With(ctx, logger)

			if err := sentryCfg.Configure(); err != nil {
				return nil, err
			}

			return ctx, nil
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return runLatest(ctx, &repoCfg, &githubCfg, o.githubClient)
		},
	}

	if err := app.Run(ctx, args); err != nil {
		if logger == nil {
			logger = slog.Default()
		}
		logger.Error("CLI execution failed", slog.Any("error", err))
		o.reporter.Fail(ctx, err)
		sentryCfg.Capture(err)
		return err
	}

	return nil
}
