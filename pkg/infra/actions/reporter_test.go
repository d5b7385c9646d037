package actions_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"

	"github.com/m-mizutani/release-info/pkg/infra/actions"
)

func TestReporter_Fail_Annotation(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "plain message",
			err:      errors.New("Not Found"),
			expected: "::error::Not Found\n",
		},
		{
			name:     "multi-line message",
			err:      errors.New("first line\nsecond line\r\n"),
			expected: "::error::first line%0Asecond line%0D%0A\n",
		},
		{
			name:     "percent sign",
			err:      errors.New("100% broken"),
			expected: "::error::100%25 broken\n",
		},
		{
			name:     "wrapped error",
			err:      goerr.Wrap(errors.New("401 Bad credentials"), "failed to get latest release"),
			expected: "::error::failed to get latest release: 401 Bad credentials\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			reporter := actions.NewReporter(
				actions.WithWriter(&buf),
				actions.WithAnnotation(true),
			)

			gt.False(t, reporter.Failed())
			reporter.Fail(context.Background(), tt.err)

			gt.True(t, reporter.Failed())
			gt.Value(t, buf.String()).Equal(tt.expected)
		})
	}
}

func TestReporter_Fail_Console(t *testing.T) {
	var buf bytes.Buffer
	reporter := actions.NewReporter(
		actions.WithWriter(&buf),
		actions.WithAnnotation(false),
	)

	reporter.Fail(context.Background(), errors.New("repository not found"))

	gt.True(t, reporter.Failed())
	gt.String(t, buf.String()).Contains("Error: repository not found")
	gt.Number(t, strings.Count(buf.String(), "\n")).Equal(1)
}

func TestReporter_Fail_NilError(t *testing.T) {
	var buf bytes.Buffer
	reporter := actions.NewReporter(
		actions.WithWriter(&buf),
		actions.WithAnnotation(true),
	)

	reporter.Fail(context.Background(), nil)

	gt.False(t, reporter.Failed())
	gt.Value(t, buf.Len()).Equal(0)
}

func TestNewReporter_DetectsActions(t *testing.T) {
	t.Setenv("GITHUB_ACTIONS", "true")

	var buf bytes.Buffer
	reporter := actions.NewReporter(actions.WithWriter(&buf))
	reporter.Fail(context.Background(), errors.New("boom"))

	gt.Value(t, buf.String()).Equal("::error::boom\n")
}
