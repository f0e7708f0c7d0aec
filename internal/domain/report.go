package domain

import "time"

// CopyPair is one resolved source→target copy, ready for the engine.
type CopyPair struct {
	Source string
	Target string
	// MappingIndex records which configuration mapping produced the pair,
	// preserving last-write-wins ordering in reports.
	MappingIndex int
}

// SyncPlan is the resolved work list for a run before any copy happens.
type SyncPlan struct {
	Pairs []CopyPair
	// FilesFound counts distinct source files across all mappings; a file
	// reachable through two mappings produces two pairs but counts once.
	FilesFound int
	// Warnings carries non-fatal discovery diagnostics (missing sources).
	Warnings []string
}

// FileOutcome reports one copy attempt.
type FileOutcome struct {
	Source   string
	Target   string
	Injected bool
	Err      error
}

// SyncReport aggregates a full run.
type SyncReport struct {
	FilesFound int
	Copied     int
	Failed     int
	Outcomes   []FileOutcome
	Warnings   []string
	Commit     CommitMetadata
	Duration   time.Duration
}

// Ok reports whether the run completed without per-file failures.
func (r *SyncReport) Ok() bool {
	return r.Failed == 0
}

// TargetState classifies a vault file against its repository source.
type TargetState int

const (
	TargetMissing TargetState = iota
	TargetStale
	TargetCurrent
)

func (s TargetState) String() string {
	switch s {
	case TargetStale:
		return "stale"
	case TargetCurrent:
		return "up-to-date"
	default:
		return "missing"
	}
}

// StatusEntry describes one resolved pair's vault-side condition.
type StatusEntry struct {
	Source string
	Target string
	State  TargetState
	// SyncedCommit is the git-commit recorded in the target's provenance
	// frontmatter, empty when the target carries none.
	SyncedCommit string
}

// StatusReport summarizes the vault against the current working tree.
type StatusReport struct {
	Entries []StatusEntry
	Missing int
	Stale   int
	Current int
}

// LintResult is the outcome of one linter over one batch invocation.
type LintResult struct {
	Tool   string
	File   string
	Passed bool
	Cached bool
	Output string
}

// LintReport aggregates a lint run.
type LintReport struct {
	Results []LintResult
	Failed  int
	// Skipped counts tool invocations skipped because the tool is not
	// installed.
	Skipped  int
	Duration time.Duration
}

// Ok reports whether every linted file passed.
func (r *LintReport) Ok() bool {
	return r.Failed == 0
}
