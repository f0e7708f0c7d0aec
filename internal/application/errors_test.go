package application

import (
	"errors"
	"fmt"
	"testing"
)

func TestValidationError_Message(t *testing.T) {
	err := &ValidationError{Field: "file", Message: "file path is required"}
	if got := err.Error(); got != "file: file path is required" {
		t.Errorf("unexpected message: %q", got)
	}
}

func TestDependencyError_IsMissingDependency(t *testing.T) {
	err := fmt.Errorf("lint run: %w", &DependencyError{Tool: "shellcheck", Hint: "needed to lint deploy.sh"})

	if !errors.Is(err, ErrMissingDependency) {
		t.Error("expected DependencyError to match ErrMissingDependency")
	}
	want := "lint run: required tool shellcheck is not installed (needed to lint deploy.sh)"
	if err.Error() != want {
		t.Errorf("expected %q, got %q", want, err.Error())
	}

	var depErr *DependencyError
	if !errors.As(err, &depErr) || depErr.Tool != "shellcheck" {
		t.Error("expected errors.As to recover the DependencyError")
	}
}

func TestDependencyError_NoHint(t *testing.T) {
	err := &DependencyError{Tool: "black"}
	if got := err.Error(); got != "required tool black is not installed" {
		t.Errorf("unexpected message: %q", got)
	}
}

func TestCollisionError_IsCollision(t *testing.T) {
	err := &CollisionError{
		Target:  "/vault/notes/readme.md",
		Sources: []string{"a/readme.md", "b/readme.md"},
	}

	if !errors.Is(err, ErrCollision) {
		t.Error("expected CollisionError to match ErrCollision")
	}
	want := "mappings collide on /vault/notes/readme.md (sources: a/readme.md, b/readme.md)"
	if err.Error() != want {
		t.Errorf("expected %q, got %q", want, err.Error())
	}
	if errors.Is(err, ErrMissingDependency) {
		t.Error("expected CollisionError not to match ErrMissingDependency")
	}
}
