package interfaces

import (
	"context"

	"github.com/m-mizutani/release-info/pkg/domain/model"
)

// ReleaseUseCase defines operations for release lookup
type ReleaseUseCase interface {
	// LatestRelease fetches the latest release of the repository and logs it
	LatestRelease(ctx context.Context, ref *model.RepositoryRef) (*model.Release, error)
}

// FailureReporter reports a failure to the calling CI framework
type FailureReporter interface {
	Fail(ctx context.Context, err error)
}
