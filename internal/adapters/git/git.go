package git

import (
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	"vaultsync/internal/domain"
)

// Client implements ports.CommitSource by shelling out to the git binary.
type Client struct {
	dir string
}

// NewClient creates a git client running in dir. An empty dir uses the
// process working directory.
func NewClient(dir string) *Client {
	return &Client{dir: dir}
}

// run executes one git command and returns its trimmed stdout.
func (c *Client) run(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = c.dir

	output, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok && len(exitErr.Stderr) > 0 {
			return "", fmt.Errorf("git %s: %s", args[0], strings.TrimSpace(string(exitErr.Stderr)))
		}
		return "", fmt.Errorf("git %s: %w", args[0], err)
	}
	return strings.TrimSpace(string(output)), nil
}

// Head returns metadata for the most recent commit. Every field degrades to
// "unknown" independently; an unborn branch or missing repo degrades all of
// them and reports the underlying error.
func (c *Client) Head(ctx context.Context) (domain.CommitMetadata, error) {
	output, err := c.run(ctx, "log", "-1", "--format=%H%n%an%n%aI%n%s")
	if err != nil {
		return domain.UnknownCommit(), fmt.Errorf("failed to read HEAD: %w", err)
	}

	meta := domain.UnknownCommit()
	lines := strings.SplitN(output, "\n", 4)
	if len(lines) > 0 && lines[0] != "" {
		meta.Hash = lines[0]
	}
	if len(lines) > 1 && lines[1] != "" {
		meta.Author = lines[1]
	}
	if len(lines) > 2 && lines[2] != "" {
		meta.Timestamp = lines[2]
	}
	if len(lines) > 3 && lines[3] != "" {
		meta.Message = lines[3]
	}
	return meta, nil
}

// StagedFiles lists the staged paths relative to the repository root,
// excluding deletions.
func (c *Client) StagedFiles(ctx context.Context) ([]string, error) {
	output, err := c.run(ctx, "diff", "--cached", "--name-only", "--diff-filter=d")
	if err != nil {
		return nil, fmt.Errorf("failed to list staged files: %w", err)
	}
	if output == "" {
		return nil, nil
	}
	return strings.Split(output, "\n"), nil
}

// Root returns the absolute path of the repository working tree.
func (c *Client) Root(ctx context.Context) (string, error) {
	root, err := c.run(ctx, "rev-parse", "--show-toplevel")
	if err != nil {
		return "", fmt.Errorf("failed to locate repository root: %w", err)
	}
	return root, nil
}

// HooksDir returns the directory git reads hooks from, honoring
// core.hooksPath.
func (c *Client) HooksDir(ctx context.Context) (string, error) {
	dir, err := c.run(ctx, "rev-parse", "--git-path", "hooks")
	if err != nil {
		return "", fmt.Errorf("failed to locate hooks dir: %w", err)
	}
	return c.abs(dir), nil
}

// GitDir returns the repository's .git directory.
func (c *Client) GitDir(ctx context.Context) (string, error) {
	dir, err := c.run(ctx, "rev-parse", "--git-dir")
	if err != nil {
		return "", fmt.Errorf("failed to locate git dir: %w", err)
	}
	return c.abs(dir), nil
}

// Available reports whether git is installed and the directory is inside a
// work tree.
func (c *Client) Available() bool {
	cmd := exec.Command("git", "rev-parse", "--is-inside-work-tree")
	cmd.Dir = c.dir
	return cmd.Run() == nil
}

// IsGitInstalled checks if git is installed at all, repository or not.
func IsGitInstalled() bool {
	cmd := exec.Command("git", "--version")
	return cmd.Run() == nil
}

// abs anchors git's cwd-relative output to the client directory.
func (c *Client) abs(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.dir, path)
}
