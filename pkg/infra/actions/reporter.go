package actions

import (
	"context"
	"io"
	"os"
	"sync"

	"github.com/fatih/color"
	"github.com/sethvargo/go-githubactions"
)

// Reporter reports failures to the GitHub Actions runner. Inside a workflow
// it emits the ::error:: workflow command, which marks the step as failed
// and shows the message as an annotation.
type Reporter struct {
	w        io.Writer
	annotate bool

	mu     sync.Mutex
	failed bool
}

// Option is a functional option for Reporter
type Option func(*Reporter)

// WithWriter sets the destination of reports. The runner reads workflow
// commands from stdout, which is the default.
func WithWriter(w io.Writer) Option {
	return func(r *Reporter) {
		r.w = w
	}
}

// WithAnnotation forces workflow command output on or off
func WithAnnotation(enabled bool) Option {
	return func(r *Reporter) {
		r.annotate = enabled
	}
}

// NewReporter creates a Reporter. Workflow command output is enabled when
// GITHUB_ACTIONS=true.
func NewReporter(opts ...Option) *Reporter {
	r := &Reporter{
		w:        os.Stdout,
		annotate: InActions(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// InActions reports whether the process runs inside a GitHub Actions job
func InActions() bool {
	return os.Getenv("GITHUB_ACTIONS") == "true"
}

// Fail reports err as a failure. The report carries err.Error() as its message.
func (r *Reporter) Fail(ctx context.Context, err error) {
	if err == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.failed = true

	if r.annotate {
		githubactions.New(githubactions.WithWriter(r.w)).Errorf("%s", err.Error())
		return
	}

	_, _ = color.New(color.FgRed).Fprintf(r.w, "Error: %s\n", err.Error())
}

// Failed reports whether Fail has been called
func (r *Reporter) Failed() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.failed
}
