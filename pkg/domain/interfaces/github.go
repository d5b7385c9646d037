package interfaces

import (
	"context"

	"github.com/m-mizutani/release-info/pkg/domain/model"
)

// GitHubClient defines operations for interacting with GitHub API
type GitHubClient interface {
	// GetLatestRelease returns the latest published, non-draft, non-prerelease release
	GetLatestRelease(ctx context.Context, owner, repo string) (*model.Release, error)
}
