package cli

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/release-info/pkg/cli/config"
	"github.com/m-mizutani/release-info/pkg/domain/interfaces"
	"github.com/m-mizutani/release-info/pkg/usecase"
)

func runLatest(ctx context.Context, repoCfg *config.Repository, githubCfg *config.GitHub, client interfaces.GitHubClient) error {
	logger := ctxlog.From(ctx)

	if err := repoCfg.Validate(); err != nil {
		return err
	}

	logger.Debug("Loaded configuration",
		slog.Any("repository", *repoCfg),
		slog.Any("github", *githubCfg),
	)

	if client == nil {
		if err := githubCfg.Validate(); err != nil {
			return err
		}

		c, err := githubCfg.NewClient()
		if err != nil {
			return err
		}
		client = c
	}

	_, err := usecase.NewRelease(client).LatestRelease(ctx, repoCfg.Ref())
	return err
}
