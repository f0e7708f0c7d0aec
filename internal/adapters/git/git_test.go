package git

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"vaultsync/internal/domain"
)

func TestClient_Head(t *testing.T) {
	dir := setupGitRepo(t)
	commitFile(t, dir, "readme.md", "# Hello\n", "initial commit")

	client := NewClient(dir)
	meta, err := client.Head(context.Background())
	if err != nil {
		t.Fatalf("Head failed: %v", err)
	}

	if len(meta.Hash) != 40 {
		t.Errorf("expected full commit hash, got %q", meta.Hash)
	}
	if meta.Author != "Test" {
		t.Errorf("expected author Test, got %q", meta.Author)
	}
	if meta.Message != "initial commit" {
		t.Errorf("expected commit message, got %q", meta.Message)
	}
	if _, err := time.Parse(time.RFC3339, meta.Timestamp); err != nil {
		t.Errorf("expected ISO-8601 timestamp, got %q: %v", meta.Timestamp, err)
	}
}

func TestClient_Head_EmptyRepo(t *testing.T) {
	dir := setupGitRepo(t)

	client := NewClient(dir)
	meta, err := client.Head(context.Background())
	if err == nil {
		t.Fatal("expected error for repo without commits")
	}
	if meta != domain.UnknownCommit() {
		t.Errorf("expected unknown placeholders, got %+v", meta)
	}
}

func TestClient_Head_NotARepo(t *testing.T) {
	if !IsGitInstalled() {
		t.Skip("git not installed")
	}

	client := NewClient(t.TempDir())
	meta, err := client.Head(context.Background())
	if err == nil {
		t.Fatal("expected error outside a repository")
	}
	if meta.Hash != domain.UnknownValue {
		t.Errorf("expected unknown hash, got %q", meta.Hash)
	}
}

func TestClient_StagedFiles(t *testing.T) {
	dir := setupGitRepo(t)
	commitFile(t, dir, "readme.md", "# Hello\n", "initial commit")

	writeAndStage(t, dir, "docs/new.md", "new\n")
	writeAndStage(t, dir, "script.py", "print('hi')\n")

	client := NewClient(dir)
	files, err := client.StagedFiles(context.Background())
	if err != nil {
		t.Fatalf("StagedFiles failed: %v", err)
	}

	if len(files) != 2 {
		t.Fatalf("expected 2 staged files, got %v", files)
	}
	joined := strings.Join(files, ",")
	if !strings.Contains(joined, "docs/new.md") || !strings.Contains(joined, "script.py") {
		t.Errorf("unexpected staged files: %v", files)
	}
}

func TestClient_StagedFiles_Empty(t *testing.T) {
	dir := setupGitRepo(t)
	commitFile(t, dir, "readme.md", "# Hello\n", "initial commit")

	client := NewClient(dir)
	files, err := client.StagedFiles(context.Background())
	if err != nil {
		t.Fatalf("StagedFiles failed: %v", err)
	}
	if len(files) != 0 {
		t.Errorf("expected no staged files, got %v", files)
	}
}

func TestClient_Available(t *testing.T) {
	dir := setupGitRepo(t)

	if !NewClient(dir).Available() {
		t.Error("expected repo to be available")
	}
	if NewClient(t.TempDir()).Available() {
		t.Error("expected plain dir to be unavailable")
	}
}

func TestClient_HooksDir(t *testing.T) {
	dir := setupGitRepo(t)

	hooksDir, err := NewClient(dir).HooksDir(context.Background())
	if err != nil {
		t.Fatalf("HooksDir failed: %v", err)
	}
	if filepath.Base(hooksDir) != "hooks" {
		t.Errorf("expected a hooks dir, got %s", hooksDir)
	}
	if !filepath.IsAbs(hooksDir) {
		t.Errorf("expected absolute path, got %s", hooksDir)
	}
}

func TestClient_ErrorLogPath(t *testing.T) {
	dir := setupGitRepo(t)

	logPath, err := NewClient(dir).ErrorLogPath(context.Background())
	if err != nil {
		t.Fatalf("ErrorLogPath failed: %v", err)
	}
	if filepath.Base(logPath) != ErrorLogName {
		t.Errorf("expected %s, got %s", ErrorLogName, logPath)
	}
	if !strings.Contains(logPath, ".git") {
		t.Errorf("expected log inside .git, got %s", logPath)
	}
}

func writeAndStage(t *testing.T, dir, name, content string) {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("failed to create dir for %s: %v", name, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	gitRun(t, dir, "add", name)
}
