package entities

import (
	"fmt"
	"strings"
)

const githubHost = "github.com"

// ParseRemoteURL extracts the owner and repository name from a GitHub
// remote URL. Both SSH ("git@github.com:owner/repo.git") and HTTPS
// ("https://github.com/owner/repo.git") shapes are supported.
func ParseRemoteURL(rawURL string) (string, string, error) {
	cleaned := strings.TrimSuffix(strings.TrimSpace(rawURL), ".git")

	if !strings.Contains(cleaned, githubHost) {
		return "", "", fmt.Errorf("remote %q is not a GitHub URL", rawURL)
	}

	var pathPart string
	switch {
	case strings.HasPrefix(cleaned, "git@"):
		_, after, ok := strings.Cut(cleaned, ":")
		if !ok {
			return "", "", fmt.Errorf("invalid SSH remote URL: %s", rawURL)
		}
		pathPart = after
	default:
		_, after, ok := strings.Cut(cleaned, githubHost)
		if !ok {
			return "", "", fmt.Errorf("hostname not found in remote URL: %s", rawURL)
		}
		pathPart = strings.TrimPrefix(strings.TrimPrefix(after, ":"), "/")
	}

	segments := strings.Split(pathPart, "/")
	if len(segments) < 2 || segments[0] == "" || segments[1] == "" {
		return "", "", fmt.Errorf("cannot extract owner/repo from remote URL: %s", rawURL)
	}

	return segments[0], segments[1], nil
}
