package github

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"testing"
)

// newTestGHClient creates a ghClient with a mock exec function for testing.
func newTestGHClient(fn execFunc, opts ...Option) *ghClient {
	return newGHClientWithExec("/tmp/test-repo", fn, opts...)
}

func TestGHClient_Version(t *testing.T) {
	t.Parallel()

	client := newTestGHClient(func(_ context.Context, _ string, _ []string, args ...string) (string, error) {
		if !slices.Equal(args, []string{"--version"}) {
			return "", fmt.Errorf("unexpected args: %v", args)
		}
		return "gh version 2.40.1 (2023-12-13)\nhttps://github.com/cli/cli/releases/tag/v2.40.1", nil
	})

	got, err := client.Version(context.Background())
	if err != nil {
		t.Fatalf("Version() error = %v", err)
	}
	if got != "2.40.1" {
		t.Errorf("Version() = %q, want %q", got, "2.40.1")
	}
}

func TestGHClient_Version_NotFound(t *testing.T) {
	t.Parallel()

	client := newTestGHClient(func(context.Context, string, []string, ...string) (string, error) {
		return "", fmt.Errorf("gh lookup: %w", ErrGHNotFound)
	})

	if _, err := client.Version(context.Background()); !errors.Is(err, ErrGHNotFound) {
		t.Errorf("Version() error = %v, want ErrGHNotFound", err)
	}
}

func TestGHClient_IsAuthenticated(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		execErr error
		wantErr error
	}{
		{name: "logged_in"},
		{name: "logged_out", execErr: errors.New("exit status 1"), wantErr: ErrGHNotAuthenticated},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var gotArgs []string
			client := newTestGHClient(func(_ context.Context, _ string, _ []string, args ...string) (string, error) {
				gotArgs = args
				return "", tt.execErr
			})

			err := client.IsAuthenticated(context.Background())
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("IsAuthenticated() error = %v, want %v", err, tt.wantErr)
			}
			want := []string{"auth", "status", "-h", "github.com"}
			if !slices.Equal(gotArgs, want) {
				t.Errorf("args = %v, want %v", gotArgs, want)
			}
		})
	}
}

func TestGHClient_RepoCreate(t *testing.T) {
	t.Parallel()

	var gotArgs, gotEnv []string
	client := newTestGHClient(func(_ context.Context, _ string, env []string, args ...string) (string, error) {
		gotArgs, gotEnv = args, env
		return "✓ Created repository owner/demo on GitHub\n  https://github.com/owner/demo", nil
	}, WithToken("secret"))

	url, err := client.RepoCreate(context.Background(), RepoCreateOptions{
		Name:   "demo",
		Source: "/work/demo",
		Push:   true,
	})
	if err != nil {
		t.Fatalf("RepoCreate() error = %v", err)
	}
	if url != "https://github.com/owner/demo" {
		t.Errorf("url = %q", url)
	}

	want := []string{"repo", "create", "demo", "--public", "--source=/work/demo", "--remote=origin", "--push"}
	if !slices.Equal(gotArgs, want) {
		t.Errorf("args = %v, want %v", gotArgs, want)
	}
	if !slices.Equal(gotEnv, []string{"GH_TOKEN=secret"}) {
		t.Errorf("env = %v, want GH_TOKEN", gotEnv)
	}
}

func TestGHClient_RepoCreate_PrivateWithDescription(t *testing.T) {
	t.Parallel()

	var gotArgs []string
	client := newTestGHClient(func(_ context.Context, _ string, _ []string, args ...string) (string, error) {
		gotArgs = args
		return "", nil
	})

	_, err := client.RepoCreate(context.Background(), RepoCreateOptions{
		Name:        "secret",
		Description: "internal tool",
		Visibility:  Private,
	})
	if err != nil {
		t.Fatalf("RepoCreate() error = %v", err)
	}
	want := []string{"repo", "create", "secret", "--private", "--description", "internal tool"}
	if !slices.Equal(gotArgs, want) {
		t.Errorf("args = %v, want %v", gotArgs, want)
	}
}

func TestGHClient_RepoCreate_Errors(t *testing.T) {
	t.Parallel()

	client := newTestGHClient(func(context.Context, string, []string, ...string) (string, error) {
		return "", errors.New("name already exists on this account")
	})

	if _, err := client.RepoCreate(context.Background(), RepoCreateOptions{Name: "dup"}); !errors.Is(err, ErrRepoCreate) {
		t.Errorf("RepoCreate() error = %v, want ErrRepoCreate", err)
	}
	if _, err := client.RepoCreate(context.Background(), RepoCreateOptions{}); !errors.Is(err, ErrRepoCreate) {
		t.Errorf("RepoCreate() without name error = %v, want ErrRepoCreate", err)
	}
}
