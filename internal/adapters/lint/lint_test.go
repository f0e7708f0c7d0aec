package lint

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

func TestExecLinter_Supports(t *testing.T) {
	l := NewExecLinter("flake8", nil, ".py")

	tests := []struct {
		file string
		want bool
	}{
		{"script.py", true},
		{"SCRIPT.PY", true},
		{"script.sh", false},
		{"script", false},
		{"dir/module.py", true},
	}

	for _, tt := range tests {
		if got := l.Supports(tt.file); got != tt.want {
			t.Errorf("Supports(%q) = %v, want %v", tt.file, got, tt.want)
		}
	}
}

func TestExecLinter_Available(t *testing.T) {
	if !NewExecLinter("sh", nil, ".sh").Available() {
		t.Error("expected sh to be available")
	}
	if NewExecLinter("definitely-not-a-real-linter", nil, ".py").Available() {
		t.Error("expected unknown tool to be unavailable")
	}
}

func TestExecLinter_Run(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not installed")
	}

	pass := NewExecLinter("sh", []string{"-c", "exit 0"}, ".any")
	result, err := pass.Run(context.Background(), "ignored")
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if !result.Passed {
		t.Errorf("expected pass, got %+v", result)
	}

	fail := NewExecLinter("sh", []string{"-c", "echo line 1: problem; exit 1"}, ".any")
	result, err = fail.Run(context.Background(), "ignored")
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if result.Passed {
		t.Errorf("expected failure, got %+v", result)
	}
	if !strings.Contains(result.Output, "line 1: problem") {
		t.Errorf("expected diagnostics preserved, got %q", result.Output)
	}
}

func TestExecLinter_Run_MissingBinary(t *testing.T) {
	l := NewExecLinter("definitely-not-a-real-linter", nil, ".py")

	_, err := l.Run(context.Background(), "a.py")
	if err == nil {
		t.Fatal("expected error for missing binary")
	}
}

func TestMarkdownLinter_Run(t *testing.T) {
	dir := t.TempDir()

	if err := os.WriteFile(filepath.Join(dir, "exists.md"), []byte("# here\n"), 0644); err != nil {
		t.Fatalf("failed to write: %v", err)
	}

	content := "# Note\n" +
		"[good](exists.md)\n" +
		"[gone](missing.md)\n" +
		"[site](https://example.com/page)\n" +
		"[anchor](#section)\n" +
		"![img](images/logo.png)\n"
	note := filepath.Join(dir, "note.md")
	if err := os.WriteFile(note, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write: %v", err)
	}

	l := NewMarkdownLinter()
	result, err := l.Run(context.Background(), note)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if result.Passed {
		t.Fatalf("expected broken links to fail, got %+v", result)
	}
	if !strings.Contains(result.Output, "broken link: missing.md") {
		t.Errorf("expected missing.md reported, got %q", result.Output)
	}
	if !strings.Contains(result.Output, "broken link: images/logo.png") {
		t.Errorf("expected missing image reported, got %q", result.Output)
	}
	if strings.Contains(result.Output, "exists.md") {
		t.Errorf("valid link reported: %q", result.Output)
	}
	if strings.Contains(result.Output, "example.com") {
		t.Errorf("external link reported: %q", result.Output)
	}
}

func TestMarkdownLinter_Run_CleanFile(t *testing.T) {
	dir := t.TempDir()

	note := filepath.Join(dir, "note.md")
	if err := os.WriteFile(note, []byte("# Note\n\nNo links here.\n"), 0644); err != nil {
		t.Fatalf("failed to write: %v", err)
	}

	result, err := NewMarkdownLinter().Run(context.Background(), note)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if !result.Passed || result.Output != "" {
		t.Errorf("expected clean pass, got %+v", result)
	}
}

func TestMarkdownLinter_Supports(t *testing.T) {
	l := NewMarkdownLinter()

	if !l.Supports("note.md") || !l.Supports("NOTE.MD") {
		t.Error("expected markdown files supported")
	}
	if l.Supports("script.py") {
		t.Error("expected non-markdown unsupported")
	}
	if !l.Available() {
		t.Error("native linter must always be available")
	}
}

func TestDefault_CoversConfiguredTools(t *testing.T) {
	linters := Default()

	names := make(map[string]bool)
	for _, l := range linters {
		names[l.Name()] = true
	}

	for _, want := range []string{"black", "isort", "flake8", "mypy", "pylint", "shellcheck", "markdown-links"} {
		if !names[want] {
			t.Errorf("expected %s in default set", want)
		}
	}

	// Python files hit the Python tools, shell files only shellcheck.
	var pyCount, shCount int
	for _, l := range linters {
		if l.Supports("script.py") {
			pyCount++
		}
		if l.Supports("script.sh") {
			shCount++
		}
	}
	if pyCount != 5 {
		t.Errorf("expected 5 python linters, got %d", pyCount)
	}
	if shCount != 1 {
		t.Errorf("expected 1 shell linter, got %d", shCount)
	}
}
