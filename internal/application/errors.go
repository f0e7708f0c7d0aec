package application

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common conditions
var (
	ErrMissingDependency = errors.New("missing dependency")
	ErrCollision         = errors.New("target collision")
	ErrLintFailed        = errors.New("lint failed")
	ErrSyncIncomplete    = errors.New("sync incomplete")
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// DependencyError reports an external tool that is required but not
// installed on this host
type DependencyError struct {
	Tool string
	Hint string
}

func (e *DependencyError) Error() string {
	if e.Hint != "" {
		return fmt.Sprintf("required tool %s is not installed (%s)", e.Tool, e.Hint)
	}
	return fmt.Sprintf("required tool %s is not installed", e.Tool)
}

func (e *DependencyError) Is(target error) bool {
	return target == ErrMissingDependency
}

// CollisionError reports two mappings resolving different sources to the
// same vault path while strictCollisions is on
type CollisionError struct {
	Target  string
	Sources []string
}

func (e *CollisionError) Error() string {
	return fmt.Sprintf("mappings collide on %s (sources: %s)", e.Target, strings.Join(e.Sources, ", "))
}

func (e *CollisionError) Is(target error) bool {
	return target == ErrCollision
}
