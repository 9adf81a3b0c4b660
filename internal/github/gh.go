package github

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"regexp"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
)

// gh is looked up on PATH once per process.
var (
	ghBinOnce sync.Once
	ghBinPath string
	ghBinErr  error
)

// GitHubHost is the host checked by IsAuthenticated.
const GitHubHost = "github.com"

var (
	versionPattern = regexp.MustCompile(`gh version (\S+)`)
	repoURLPattern = regexp.MustCompile(`https://github\.com/\S+`)
)

// Visibility is the visibility of a created repository.
type Visibility string

const (
	// Public repositories are visible to everyone.
	Public Visibility = "public"

	// Private repositories are visible to collaborators only.
	Private Visibility = "private"
)

// RepoCreateOptions holds parameters for creating a repository from a
// local working tree.
type RepoCreateOptions struct {
	Name        string
	Description string
	Visibility  Visibility // Defaults to Public.
	Source      string     // Local working tree to push.
	Remote      string     // Remote name, defaults to "origin".
	Push        bool
}

// GHClient publishes projects through the gh command line tool.
type GHClient interface {
	// Version returns the installed gh version. Returns ErrGHNotFound when
	// gh is missing.
	Version(ctx context.Context) (string, error)

	// IsAuthenticated checks whether gh is logged in to github.com.
	IsAuthenticated(ctx context.Context) error

	// RepoCreate creates a repository and returns its URL when gh prints one.
	RepoCreate(ctx context.Context, opts RepoCreateOptions) (string, error)
}

// execFunc runs gh in dir with extra environment entries.
type execFunc func(ctx context.Context, dir string, env []string, args ...string) (string, error)

type ghClient struct {
	root   string
	token  string
	logger *log.Logger
	execFn execFunc // nil means execGH
}

var _ GHClient = (*ghClient)(nil)

// Option configures a ghClient.
type Option func(*ghClient)

// WithToken passes a token to gh through GH_TOKEN instead of relying on
// the stored gh login.
func WithToken(token string) Option {
	return func(c *ghClient) {
		c.token = token
	}
}

// WithLogger sets the client logger.
func WithLogger(logger *log.Logger) Option {
	return func(c *ghClient) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewGHClient returns a client that runs gh inside root.
func NewGHClient(root string, opts ...Option) GHClient {
	c := &ghClient{root: root, logger: log.New(io.Discard)}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func newGHClientWithExec(root string, fn execFunc, opts ...Option) *ghClient {
	c := NewGHClient(root, opts...).(*ghClient)
	c.execFn = fn
	return c
}

func (c *ghClient) exec(ctx context.Context, args ...string) (string, error) {
	var env []string
	if c.token != "" {
		env = append(env, "GH_TOKEN="+c.token)
	}
	if c.execFn != nil {
		return c.execFn(ctx, c.root, env, args...)
	}
	return execGH(ctx, c.root, env, args...)
}

// Version returns the installed gh version.
func (c *ghClient) Version(ctx context.Context) (string, error) {
	out, err := c.exec(ctx, "--version")
	if err != nil {
		return "", fmt.Errorf("gh version: %w", err)
	}
	if m := versionPattern.FindStringSubmatch(out); m != nil {
		return m[1], nil
	}
	first, _, _ := strings.Cut(out, "\n")
	return strings.TrimSpace(first), nil
}

// IsAuthenticated runs gh auth status against GitHubHost.
func (c *ghClient) IsAuthenticated(ctx context.Context) error {
	if _, err := c.exec(ctx, "auth", "status", "-h", GitHubHost); err != nil {
		c.logger.Debug("gh auth status failed", "error", err)
		return fmt.Errorf("check auth: %w", ErrGHNotAuthenticated)
	}
	return nil
}

// RepoCreate creates a repository from the local working tree.
func (c *ghClient) RepoCreate(ctx context.Context, opts RepoCreateOptions) (string, error) {
	if opts.Name == "" {
		return "", fmt.Errorf("%w: repository name is required", ErrRepoCreate)
	}
	visibility := opts.Visibility
	if visibility == "" {
		visibility = Public
	}
	remote := opts.Remote
	if remote == "" {
		remote = "origin"
	}

	args := []string{"repo", "create", opts.Name, "--" + string(visibility)}
	if opts.Source != "" {
		args = append(args, "--source="+opts.Source, "--remote="+remote)
		if opts.Push {
			args = append(args, "--push")
		}
	}
	if opts.Description != "" {
		args = append(args, "--description", opts.Description)
	}

	c.logger.Info("creating repository", "name", opts.Name, "visibility", visibility)
	out, err := c.exec(ctx, args...)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrRepoCreate, err)
	}
	return repoURLPattern.FindString(out), nil
}

// execGH runs gh with prompts disabled and returns its combined output.
func execGH(ctx context.Context, dir string, env []string, args ...string) (string, error) {
	ghBinOnce.Do(func() {
		ghBinPath, ghBinErr = exec.LookPath("gh")
	})
	if ghBinErr != nil {
		return "", fmt.Errorf("gh lookup: %w", ErrGHNotFound)
	}

	cmd := exec.CommandContext(ctx, ghBinPath, args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(), "GH_PROMPT_DISABLED=1")
	cmd.Env = append(cmd.Env, env...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		errMsg := strings.TrimSpace(stderr.String())
		if errMsg == "" {
			errMsg = err.Error()
		}
		if len(args) == 0 {
			return "", fmt.Errorf("gh: %s: %w", errMsg, err)
		}
		return "", fmt.Errorf("gh %s: %s: %w", args[0], errMsg, err)
	}

	// gh repo create prints the URL on stderr when stdout is not a terminal.
	return strings.TrimRight(stdout.String()+stderr.String(), "\n\r"), nil
}
