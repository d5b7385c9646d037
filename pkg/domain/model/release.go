package model

import (
	"log/slog"
	"time"
)

// RepositoryRef identifies a repository on GitHub
type RepositoryRef struct {
	Owner string // Repository owner
	Repo  string // Repository name
}

// FullName returns "owner/repo"
func (r RepositoryRef) FullName() string {
	return r.Owner + "/" + r.Repo
}

// Release represents a release descriptor returned by the GitHub API
type Release struct {
	ID              int64
	TagName         string
	Name            string
	TargetCommitish string
	HTMLURL         string
	Draft           bool
	Prerelease      bool
	Author          string
	CreatedAt       time.Time
	PublishedAt     time.Time
	Assets          []ReleaseAsset
}

// ReleaseAsset represents a file attached to a release
type ReleaseAsset struct {
	ID                 int64
	Name               string
	ContentType        string
	Size               int
	DownloadCount      int
	BrowserDownloadURL string
}

// LogValue implements slog.LogValuer
func (r *Release) LogValue() slog.Value {
	if r == nil {
		return slog.Value{}
	}

	assets := make([]any, 0, len(r.Assets))
	for _, a := range r.Assets {
		assets = append(assets, slog.Group(a.Name,
			slog.Int64("id", a.ID),
			slog.String("content_type", a.ContentType),
			slog.Int("size", a.Size),
			slog.Int("download_count", a.DownloadCount),
			slog.String("url", a.BrowserDownloadURL),
		))
	}

	return slog.GroupValue(
		slog.Int64("id", r.ID),
		slog.String("tag_name", r.TagName),
		slog.String("name", r.Name),
		slog.String("target_commitish", r.TargetCommitish),
		slog.String("html_url", r.HTMLURL),
		slog.Bool("draft", r.Draft),
		slog.Bool("prerelease", r.Prerelease),
		slog.String("author", r.Author),
		slog.Time("created_at", r.CreatedAt),
		slog.Time("published_at", r.PublishedAt),
		slog.Group("assets", assets...),
	)
}
