package usecase

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/release-info/pkg/domain/interfaces"
	"github.com/m-mizutani/release-info/pkg/domain/model"
)

type releaseUseCase struct {
	githubClient interfaces.GitHubClient
}

// NewRelease creates a new instance of ReleaseUseCase
func NewRelease(githubClient interfaces.GitHubClient) interfaces.ReleaseUseCase {
	return &releaseUseCase{
		githubClient: githubClient,
	}
}

// LatestRelease fetches the latest release of the repository and emits it to the log.
// Exactly one record is logged on success and none on failure.
func (uc *releaseUseCase) LatestRelease(ctx context.Context, ref *model.RepositoryRef) (*model.Release, error) {
	if ref == nil {
		return nil, goerr.New("repository reference is required")
	}

	// The client error already names the call and carries owner/repo
	release, err := uc.githubClient.GetLatestRelease(ctx, ref.Owner, ref.Repo)
	if err != nil {
		return nil, err
	}

	ctxlog.From(ctx).Info("Latest release",
		slog.String("repository", ref.FullName()),
		slog.Any("release", release),
	)

	return release, nil
}
