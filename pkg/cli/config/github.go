package config

import (
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/release-info/pkg/domain/interfaces"
	"github.com/m-mizutani/release-info/pkg/domain/types"
	githubinfra "github.com/m-mizutani/release-info/pkg/infra/github"
	"github.com/urfave/cli/v3"
)

// GitHub holds GitHub configuration
type GitHub struct {
	Token          string
	APIURL         string
	AppID          int64
	InstallationID int64
	PrivateKey     string
}

// Flags returns CLI flags for GitHub configuration
func (c *GitHub) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "github-token",
			Usage:       "GitHub token to read releases",
			Destination: &c.Token,
			Sources:     envVars("INPUT_GITHUB-TOKEN", "RELEASE_INFO_GITHUB_TOKEN", "GITHUB_TOKEN"),
		},
		&cli.StringFlag{
			Name:        "github-api-url",
			Usage:       "GitHub API URL (set for GitHub Enterprise Server)",
			Value:       types.DefaultGitHubAPIURL,
			Destination: &c.APIURL,
			Sources:     envVars("RELEASE_INFO_GITHUB_API_URL", "GITHUB_API_URL"),
		},
		&cli.Int64Flag{
			Name:        "github-app-id",
			Usage:       "GitHub App ID, used instead of a token",
			Destination: &c.AppID,
			Sources:     envVars("RELEASE_INFO_GITHUB_APP_ID"),
		},
		&cli.Int64Flag{
			Name:        "github-app-installation-id",
			Usage:       "GitHub App installation ID",
			Destination: &c.InstallationID,
			Sources:     envVars("RELEASE_INFO_GITHUB_APP_INSTALLATION_ID"),
		},
		&cli.StringFlag{
			Name:        "github-app-private-key",
			Usage:       "GitHub App private key (PEM)",
			Destination: &c.PrivateKey,
			Sources:     envVars("RELEASE_INFO_GITHUB_APP_PRIVATE_KEY"),
		},
	}
}

func (c *GitHub) hasApp() bool {
	return c.AppID != 0 || c.InstallationID != 0 || c.PrivateKey != ""
}

// Validate checks that exactly one authentication method is configured
func (c *GitHub) Validate() error {
	c.Token = strings.TrimSpace(c.Token)

	switch {
	case c.Token != "" && c.hasApp():
		return goerr.New("github-token and GitHub App credentials are mutually exclusive")
	case c.Token != "":
		return nil
	case c.hasApp():
		if c.AppID == 0 || c.InstallationID == 0 || c.PrivateKey == "" {
			return goerr.New("github-app-id, github-app-installation-id and github-app-private-key must be set together")
		}
		return nil
	default:
		return goerr.New("github-token is required")
	}
}

// NewClient creates a GitHub client with the configured authentication
func (c *GitHub) NewClient() (interfaces.GitHubClient, error) {
	opts := []githubinfra.Option{
		githubinfra.WithBaseURL(c.APIURL),
	}

	if c.Token != "" {
		opts = append(opts, githubinfra.WithToken(types.GitHubToken(c.Token)))
	} else {
		opts = append(opts, githubinfra.WithApp(c.AppID, c.InstallationID, []byte(c.PrivateKey)))
	}

	client, err := githubinfra.NewClient(opts...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create GitHub client")
	}
	return client, nil
}
