package github

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/bradleyfalzon/ghinstallation/v2"
	"github.com/google/go-github/v75/github"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/release-info/pkg/domain/interfaces"
	"github.com/m-mizutani/release-info/pkg/domain/model"
	"github.com/m-mizutani/release-info/pkg/domain/types"
)

// config holds internal GitHub client configuration
type config struct {
	token      types.GitHubToken
	app        *appAuth
	baseURL    string
	httpClient *http.Client
}

type appAuth struct {
	appID          int64
	installationID int64
	privateKey     []byte
}

// Option is a functional option for client configuration
type Option func(*config)

// WithToken authenticates requests with a personal access token or GITHUB_TOKEN
func WithToken(token types.GitHubToken) Option {
	return func(c *config) {
		c.token = token
	}
}

// WithApp authenticates requests as a GitHub App installation
func WithApp(appID, installationID int64, privateKey []byte) Option {
	return func(c *config) {
		c.app = &appAuth{
			appID:          appID,
			installationID: installationID,
			privateKey:     privateKey,
		}
	}
}

// WithBaseURL sets the API root, e.g. https://ghe.example.com/api/v3
func WithBaseURL(baseURL string) Option {
	return func(c *config) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *config) {
		c.httpClient = httpClient
	}
}

type client struct {
	githubClient *github.Client
}

// NewClient creates a new GitHub client
func NewClient(opts ...Option) (interfaces.GitHubClient, error) {
	cfg := &config{
		baseURL: types.DefaultGitHubAPIURL,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.token != "" && cfg.app != nil {
		return nil, goerr.New("token and GitHub App credentials are mutually exclusive")
	}

	baseURL, err := parseBaseURL(cfg.baseURL)
	if err != nil {
		return nil, err
	}

	httpClient := cfg.httpClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	if cfg.app != nil {
		transport := httpClient.Transport
		if transport == nil {
			transport = http.DefaultTransport
		}

		// Create GitHub App transport
		itr, err := ghinstallation.New(transport, cfg.app.appID, cfg.app.installationID, cfg.app.privateKey)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to create GitHub App transport",
				goerr.V("app_id", cfg.app.appID),
				goerr.V("installation_id", cfg.app.installationID),
			)
		}
		// Installation tokens must be issued by the same API root
		itr.BaseURL = strings.TrimSuffix(baseURL.String(), "/")

		httpClient = &http.Client{
			Transport: itr,
			Timeout:   httpClient.Timeout,
		}
	}

	githubClient := github.NewClient(httpClient)
	if cfg.token != "" {
		githubClient = githubClient.WithAuthToken(cfg.token.String())
	}
	githubClient.BaseURL = baseURL

	return &client{
		githubClient: githubClient,
	}, nil
}

func parseBaseURL(raw string) (*url.URL, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, goerr.Wrap(err, "invalid GitHub API URL", goerr.V("url", raw))
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, goerr.New("GitHub API URL must be http or https", goerr.V("url", raw))
	}

	// go-github requires a trailing slash on BaseURL
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}

	return u, nil
}

// GetLatestRelease fetches the latest release of owner/repo
func (c *client) GetLatestRelease(ctx context.Context, owner, repo string) (*model.Release, error) {
	release, resp, err := c.githubClient.Repositories.GetLatestRelease(ctx, owner, repo)
	if err != nil {
		opts := []goerr.Option{
			goerr.V("owner", owner),
			goerr.V("repo", repo),
		}
		if resp != nil {
			opts = append(opts, goerr.V("status", resp.StatusCode))
		}

		var rateErr *github.RateLimitError
		if errors.As(err, &rateErr) {
			opts = append(opts, goerr.V("rate_reset", rateErr.Rate.Reset.Time))
		}

		return nil, goerr.Wrap(err, "failed to get latest release", opts...)
	}

	return toRelease(release), nil
}

func toRelease(r *github.RepositoryRelease) *model.Release {
	release := &model.Release{
		ID:              r.GetID(),
		TagName:         r.GetTagName(),
		Name:            r.GetName(),
		TargetCommitish: r.GetTargetCommitish(),
		HTMLURL:         r.GetHTMLURL(),
		Draft:           r.GetDraft(),
		Prerelease:      r.GetPrerelease(),
		Author:          r.GetAuthor().GetLogin(),
		CreatedAt:       r.GetCreatedAt().Time,
		PublishedAt:     r.GetPublishedAt().Time,
	}

	for _, a := range r.Assets {
		release.Assets = append(release.Assets, model.ReleaseAsset{
			ID:                 a.GetID(),
			Name:               a.GetName(),
			ContentType:        a.GetContentType(),
			Size:               a.GetSize(),
			DownloadCount:      a.GetDownloadCount(),
			BrowserDownloadURL: a.GetBrowserDownloadURL(),
		})
	}

	return release
}
