package config

import (
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/release-info/pkg/domain/model"
	"github.com/urfave/cli/v3"
)

// Repository holds the target repository configuration. Values can be given
// as GitHub Actions inputs (INPUT_<NAME>).
type Repository struct {
	Owner   string
	Repo    string
	OutPath string
}

// Flags returns CLI flags for repository configuration
func (c *Repository) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "owner",
			Usage:       "Owner of the repository",
			Destination: &c.Owner,
			Sources:     envVars("INPUT_OWNER", "RELEASE_INFO_OWNER"),
		},
		&cli.StringFlag{
			Name:        "repo",
			Usage:       "Name of the repository",
			Destination: &c.Repo,
			Sources:     envVars("INPUT_REPO", "RELEASE_INFO_REPO"),
		},
		&cli.StringFlag{
			Name:        "out-path",
			Usage:       "Output path of the release information",
			Destination: &c.OutPath,
			Sources:     envVars("INPUT_OUT-PATH", "RELEASE_INFO_OUT_PATH"),
		},
	}
}

// Validate normalizes and checks the values. Surrounding whitespace is
// trimmed in the same way as the Actions toolkit does for inputs.
func (c *Repository) Validate() error {
	c.Owner = strings.TrimSpace(c.Owner)
	c.Repo = strings.TrimSpace(c.Repo)
	c.OutPath = strings.TrimSpace(c.OutPath)

	if c.Owner == "" {
		return goerr.New("owner is required")
	}
	if c.Repo == "" {
		return goerr.New("repo is required")
	}

	// Both are single path segments of /repos/{owner}/{repo}
	if strings.ContainsAny(c.Owner, "/ \t\r\n") {
		return goerr.New("invalid owner", goerr.V("owner", c.Owner))
	}
	if strings.ContainsAny(c.Repo, "/ \t\r\n") {
		return goerr.New("invalid repo", goerr.V("repo", c.Repo))
	}

	return nil
}

// Ref returns the repository reference
func (c *Repository) Ref() *model.RepositoryRef {
	return &model.RepositoryRef{
		Owner: c.Owner,
		Repo:  c.Repo,
	}
}
