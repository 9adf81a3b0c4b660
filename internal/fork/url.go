package fork

import (
	"fmt"
	"net/url"
	"path"
	"regexp"
	"strings"
)

var (
	shorthandPattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9-]*/[A-Za-z0-9._-]+$`)
	scpPattern       = regexp.MustCompile(`^[A-Za-z0-9._-]+@[A-Za-z0-9.-]+:[A-Za-z0-9._/-]+$`)
)

// ParseRepoURL normalizes a repository reference into something git can
// clone. A user/repo shorthand becomes https://github.com/user/repo.git.
func ParseRepoURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	switch {
	case raw == "":
		return "", fmt.Errorf("%w: empty", ErrInvalidURL)
	case shorthandPattern.MatchString(raw):
		return "https://github.com/" + strings.TrimSuffix(raw, ".git") + ".git", nil
	case scpPattern.MatchString(raw):
		return raw, nil
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrInvalidURL, raw, err)
	}
	switch u.Scheme {
	case "https", "http", "ssh", "git", "file":
	default:
		return "", fmt.Errorf("%w: %s", ErrInvalidURL, raw)
	}
	if u.Scheme != "file" && u.Host == "" {
		return "", fmt.Errorf("%w: %s: missing host", ErrInvalidURL, raw)
	}
	if strings.Trim(u.Path, "/") == "" {
		return "", fmt.Errorf("%w: %s: missing repository path", ErrInvalidURL, raw)
	}
	return raw, nil
}

// RepoName returns the repository name from a normalized URL: the last
// path element without a trailing .git.
func RepoName(repoURL string) string {
	p := repoURL
	if i := strings.LastIndex(p, ":"); i >= 0 && !strings.Contains(p, "://") {
		p = p[i+1:]
	}
	if u, err := url.Parse(p); err == nil && u.Path != "" {
		p = u.Path
	}
	name := path.Base(strings.TrimRight(p, "/"))
	return strings.TrimSuffix(name, ".git")
}
