package git

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kballard/go-shellquote"
)

const (
	markerBegin = "# >>> vaultsync hook >>>"
	markerEnd   = "# <<< vaultsync hook <<<"
	shebang     = "#!/bin/sh"

	// ErrorLogName is the transient error log the hook points sync at. The
	// log lives inside .git so it never pollutes the work tree.
	ErrorLogName = "vaultsync-error.log"
)

// HookOptions configures the generated hook block.
type HookOptions struct {
	// Hook is the hook file name, post-commit by default.
	Hook string

	// ConfigPath is passed through as --config when set.
	ConfigPath string

	// Executable overrides the vaultsync binary name in the generated line.
	Executable string
}

func (o HookOptions) hookName() string {
	if o.Hook == "" {
		return "post-commit"
	}
	return o.Hook
}

func (o HookOptions) executable() string {
	if o.Executable == "" {
		return "vaultsync"
	}
	return o.Executable
}

// InstallHook writes or refreshes the marker-delimited block in the chosen
// hook file and returns the file path. Foreign hook content is preserved;
// an existing vaultsync block is replaced, never duplicated.
func (c *Client) InstallHook(ctx context.Context, opts HookOptions) (string, error) {
	hooksDir, err := c.HooksDir(ctx)
	if err != nil {
		return "", err
	}

	logPath, err := c.ErrorLogPath(ctx)
	if err != nil {
		return "", err
	}

	args := []string{opts.executable(), "sync", "--quiet", "--error-log", logPath}
	if opts.ConfigPath != "" {
		args = append(args, "--config", opts.ConfigPath)
	}
	block := markerBegin + "\n" + shellquote.Join(args...) + "\n" + markerEnd + "\n"

	path := filepath.Join(hooksDir, opts.hookName())

	existing, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		if err := os.MkdirAll(hooksDir, 0755); err != nil {
			return "", fmt.Errorf("failed to create hooks dir: %w", err)
		}
		content := shebang + "\n\n" + block
		if err := os.WriteFile(path, []byte(content), 0755); err != nil {
			return "", fmt.Errorf("failed to write hook %s: %w", path, err)
		}
		return path, nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read hook %s: %w", path, err)
	}

	content := stripBlock(string(existing))
	if !strings.HasSuffix(content, "\n") && content != "" {
		content += "\n"
	}
	content += "\n" + block

	if err := os.WriteFile(path, []byte(content), 0755); err != nil {
		return "", fmt.Errorf("failed to write hook %s: %w", path, err)
	}
	return path, nil
}

// UninstallHook removes the vaultsync block from the hook file. The file
// itself is deleted only when nothing executable remains. Returns whether a
// block was removed.
func (c *Client) UninstallHook(ctx context.Context, hook string) (bool, error) {
	path, installed, err := c.HookInstalled(ctx, hook)
	if err != nil || !installed {
		return false, err
	}

	existing, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("failed to read hook %s: %w", path, err)
	}

	remaining := stripBlock(string(existing))
	if onlyBoilerplate(remaining) {
		if err := os.Remove(path); err != nil {
			return false, fmt.Errorf("failed to remove hook %s: %w", path, err)
		}
		return true, nil
	}

	if err := os.WriteFile(path, []byte(remaining), 0755); err != nil {
		return false, fmt.Errorf("failed to write hook %s: %w", path, err)
	}
	return true, nil
}

// HookInstalled reports whether the hook file carries a vaultsync block.
func (c *Client) HookInstalled(ctx context.Context, hook string) (string, bool, error) {
	hooksDir, err := c.HooksDir(ctx)
	if err != nil {
		return "", false, err
	}

	opts := HookOptions{Hook: hook}
	path := filepath.Join(hooksDir, opts.hookName())

	content, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return path, false, nil
	}
	if err != nil {
		return path, false, fmt.Errorf("failed to read hook %s: %w", path, err)
	}
	return path, strings.Contains(string(content), markerBegin), nil
}

// ErrorLogPath returns the transient error log location inside .git.
func (c *Client) ErrorLogPath(ctx context.Context) (string, error) {
	gitDir, err := c.GitDir(ctx)
	if err != nil {
		return "", err
	}
	return filepath.Join(gitDir, ErrorLogName), nil
}

// stripBlock drops the marker-delimited vaultsync lines, leaving everything
// else untouched.
func stripBlock(content string) string {
	lines := strings.Split(content, "\n")
	out := make([]string, 0, len(lines))
	inBlock := false
	for _, line := range lines {
		switch strings.TrimSpace(line) {
		case markerBegin:
			inBlock = true
		case markerEnd:
			inBlock = false
		default:
			if !inBlock {
				out = append(out, line)
			}
		}
	}
	return strings.Join(out, "\n")
}

// onlyBoilerplate reports whether content has no executable lines left,
// only the shebang, comments, and blanks.
func onlyBoilerplate(content string) bool {
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		return false
	}
	return true
}
