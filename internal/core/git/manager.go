package git

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

// InitialCommitMessage is the message of the first commit of a new project.
const InitialCommitMessage = "Initial commit from BlazeStart"

// Repository is a local git working tree.
type Repository interface {
	// Root is the absolute top-level directory.
	Root() string

	// AddAll stages every change in the working tree.
	AddAll(ctx context.Context) error

	// Commit records the staged changes. Returns ErrNothingToCommit when
	// the tree is clean.
	Commit(ctx context.Context, message string) error

	// IsClean reports whether the working tree has no uncommitted changes.
	IsClean(ctx context.Context) (bool, error)

	// CurrentBranch returns the name of the checked-out branch.
	CurrentBranch(ctx context.Context) (string, error)
}

var _ Repository = (*gitManager)(nil)

// gitManager shells out to the system git.
type gitManager struct {
	root   string
	logger *log.Logger
}

func discardIfNil(logger *log.Logger) *log.Logger {
	if logger == nil {
		return log.New(io.Discard)
	}
	return logger
}

// Available reports whether a git binary is on PATH.
func Available() bool {
	_, err := exec.LookPath("git")
	return err == nil
}

// Init creates a new repository in dir and opens it.
func Init(ctx context.Context, dir string, logger *log.Logger) (Repository, error) {
	absPath, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve path %s: %w", dir, err)
	}
	if _, err := execGit(ctx, absPath, "init", "--quiet"); err != nil {
		return nil, fmt.Errorf("init %s: %w", absPath, err)
	}
	discardIfNil(logger).Debug("repository initialized", "root", absPath)
	return Open(ctx, absPath, logger)
}

// Open opens the repository containing path. Returns ErrNotRepository if
// the path is not inside a git repository.
func Open(ctx context.Context, path string, logger *log.Logger) (Repository, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve path %s: %w", path, err)
	}

	if _, err := execGit(ctx, absPath, "rev-parse", "--git-dir"); err != nil {
		if errors.Is(err, ErrSystemGitNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("open repository at %s: %w", absPath, ErrNotRepository)
	}

	root, err := execGit(ctx, absPath, "rev-parse", "--show-toplevel")
	if err != nil {
		return nil, fmt.Errorf("get repository root: %w", err)
	}

	return &gitManager{
		root:   filepath.Clean(root),
		logger: discardIfNil(logger),
	}, nil
}

// Clone clones url into dest. dest must not exist yet.
func Clone(ctx context.Context, url, dest string, logger *log.Logger) error {
	absDest, err := filepath.Abs(dest)
	if err != nil {
		return fmt.Errorf("resolve path %s: %w", dest, err)
	}
	if _, err := os.Stat(absDest); err == nil {
		return fmt.Errorf("%w: %s", ErrDestinationExists, absDest)
	}

	discardIfNil(logger).Info("cloning repository", "url", url, "dest", absDest)
	if _, err := execGit(ctx, filepath.Dir(absDest), "clone", "--quiet", url, absDest); err != nil {
		return fmt.Errorf("clone %s: %w", url, err)
	}
	return nil
}

func (m *gitManager) Root() string {
	return m.root
}

func (m *gitManager) AddAll(ctx context.Context) error {
	m.logger.Debug("staging all changes", "root", m.root)
	if _, err := execGit(ctx, m.root, "add", "-A"); err != nil {
		return fmt.Errorf("add: %w", err)
	}
	return nil
}

func (m *gitManager) Commit(ctx context.Context, message string) error {
	staged, err := execGit(ctx, m.root, "diff", "--cached", "--name-only")
	if err != nil {
		return fmt.Errorf("list staged changes: %w", err)
	}
	if staged == "" {
		return ErrNothingToCommit
	}

	if _, err := execGit(ctx, m.root, "commit", "--quiet", "-m", message); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	m.logger.Debug("committed", "message", message, "files", strings.Count(staged, "\n")+1)
	return nil
}

func (m *gitManager) IsClean(ctx context.Context) (bool, error) {
	out, err := execGit(ctx, m.root, "status", "--porcelain")
	if err != nil {
		return false, fmt.Errorf("check working tree: %w", err)
	}
	return out == "", nil
}

func (m *gitManager) CurrentBranch(ctx context.Context) (string, error) {
	out, err := execGit(ctx, m.root, "symbolic-ref", "--short", "HEAD")
	if err != nil {
		return "", fmt.Errorf("current branch: %w", err)
	}
	return out, nil
}

// execGit runs git in dir without terminal prompts and with the C locale.
func execGit(ctx context.Context, dir string, args ...string) (string, error) {
	gitPath, err := exec.LookPath("git")
	if err != nil {
		return "", fmt.Errorf("system git lookup: %w", ErrSystemGitNotFound)
	}

	cmd := exec.CommandContext(ctx, gitPath, args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(),
		"GIT_TERMINAL_PROMPT=0",
		"LC_ALL=C",
	)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		stderrStr := strings.TrimSpace(stderr.String())
		if len(args) > 0 {
			return "", fmt.Errorf("git %s: %s: %w", args[0], stderrStr, err)
		}
		return "", fmt.Errorf("git: %s: %w", stderrStr, err)
	}

	return strings.TrimRight(stdout.String(), "\n\r"), nil
}
