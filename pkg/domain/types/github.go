package types

// GitHubToken is a credential for the GitHub API. Values of this type are
// redacted by the logger.
type GitHubToken string

// String returns the raw token
func (t GitHubToken) String() string {
	return string(t)
}

// DefaultGitHubAPIURL is the API root of github.com
const DefaultGitHubAPIURL = "https://api.github.com"
