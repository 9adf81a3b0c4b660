package git

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func requireGit(t *testing.T) {
	t.Helper()
	if !Available() {
		t.Skip("git not installed")
	}
}

func writeTestFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

// initTestRepo creates a repository with a local identity so commits work
// on machines without a global git config.
func initTestRepo(t *testing.T) Repository {
	t.Helper()
	requireGit(t)
	ctx := context.Background()
	dir := t.TempDir()

	repo, err := Init(ctx, dir, nil)
	if err != nil {
		t.Fatalf("Init(%q) error: %v", dir, err)
	}
	for _, kv := range [][2]string{
		{"user.name", "Test User"},
		{"user.email", "test@example.com"},
		{"commit.gpgsign", "false"},
	} {
		if _, err := execGit(ctx, repo.Root(), "config", kv[0], kv[1]); err != nil {
			t.Fatal(err)
		}
	}
	return repo
}

func TestInit_CreatesRepository(t *testing.T) {
	repo := initTestRepo(t)

	if _, err := os.Stat(filepath.Join(repo.Root(), ".git")); err != nil {
		t.Errorf(".git missing after Init: %v", err)
	}
	clean, err := repo.IsClean(context.Background())
	if err != nil {
		t.Fatalf("IsClean() error: %v", err)
	}
	if !clean {
		t.Error("new repository should be clean")
	}
}

func TestOpen_NotRepository(t *testing.T) {
	requireGit(t)
	dir := t.TempDir()

	repo, err := Open(context.Background(), dir, nil)
	if !errors.Is(err, ErrNotRepository) {
		t.Errorf("Open() error = %v, want ErrNotRepository", err)
	}
	if repo != nil {
		t.Error("expected nil repo on error")
	}
}

func TestAddAllAndCommit(t *testing.T) {
	repo := initTestRepo(t)
	ctx := context.Background()
	writeTestFile(t, filepath.Join(repo.Root(), "src", "main.go"), "package main\n")

	if err := repo.AddAll(ctx); err != nil {
		t.Fatalf("AddAll() error: %v", err)
	}
	if err := repo.Commit(ctx, InitialCommitMessage); err != nil {
		t.Fatalf("Commit() error: %v", err)
	}

	clean, err := repo.IsClean(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if !clean {
		t.Error("tree should be clean after commit")
	}

	log, err := execGit(ctx, repo.Root(), "log", "--format=%s")
	if err != nil {
		t.Fatal(err)
	}
	if log != InitialCommitMessage {
		t.Errorf("log = %q, want %q", log, InitialCommitMessage)
	}
}

func TestCommit_NothingToCommit(t *testing.T) {
	repo := initTestRepo(t)

	err := repo.Commit(context.Background(), "empty")
	if !errors.Is(err, ErrNothingToCommit) {
		t.Errorf("Commit() error = %v, want ErrNothingToCommit", err)
	}
}

func TestClone_Local(t *testing.T) {
	src := initTestRepo(t)
	ctx := context.Background()
	writeTestFile(t, filepath.Join(src.Root(), "README.md"), "# upstream\n")
	if err := src.AddAll(ctx); err != nil {
		t.Fatal(err)
	}
	if err := src.Commit(ctx, "upstream"); err != nil {
		t.Fatal(err)
	}

	dest := filepath.Join(t.TempDir(), "copy")
	if err := Clone(ctx, src.Root(), dest, nil); err != nil {
		t.Fatalf("Clone() error: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(dest, "README.md"))
	if err != nil {
		t.Fatalf("cloned README missing: %v", err)
	}
	if string(data) != "# upstream\n" {
		t.Errorf("README = %q", data)
	}

	if err := Clone(ctx, src.Root(), dest, nil); !errors.Is(err, ErrDestinationExists) {
		t.Errorf("second Clone() error = %v, want ErrDestinationExists", err)
	}
}

func TestExecGit_ErrorIncludesStderr(t *testing.T) {
	requireGit(t)
	_, err := execGit(context.Background(), t.TempDir(), "rev-parse", "--verify", "no-such-ref")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.HasPrefix(err.Error(), "git rev-parse") {
		t.Errorf("error = %q, want git rev-parse prefix", err)
	}
}
