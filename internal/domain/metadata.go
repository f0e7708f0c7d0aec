package domain

import (
	"fmt"
	"strings"
	"time"
)

// UnknownValue is the placeholder recorded for any commit field the
// version-control query could not produce.
const UnknownValue = "unknown"

// CommitMetadata captures the repository HEAD at invocation time. It is
// computed once per run and reused for every injected file.
type CommitMetadata struct {
	Hash      string
	Author    string
	Timestamp string
	Message   string
}

// UnknownCommit returns metadata with every field set to UnknownValue,
// the degraded result for detached or uninitialized repositories.
func UnknownCommit() CommitMetadata {
	return CommitMetadata{
		Hash:      UnknownValue,
		Author:    UnknownValue,
		Timestamp: UnknownValue,
		Message:   UnknownValue,
	}
}

// ProvenanceBlock renders the metadata header prepended to synchronized
// Markdown files: an opening marker, the selected provenance lines, a
// closing marker, and a blank separator line. Callers prepend the result
// to the original content unchanged.
func ProvenanceBlock(meta CommitMetadata, opts MetadataOptions, now time.Time) string {
	var b strings.Builder
	b.WriteString("---\n")
	if opts.AddGitMetadata {
		fmt.Fprintf(&b, "git-commit: %s\n", meta.Hash)
		fmt.Fprintf(&b, "git-author: %s\n", meta.Author)
		fmt.Fprintf(&b, "git-timestamp: %s\n", meta.Timestamp)
		fmt.Fprintf(&b, "git-message: %s\n", meta.Message)
	}
	if opts.AddSyncTimestamp {
		fmt.Fprintf(&b, "sync-timestamp: %s\n", now.Format(time.RFC3339))
	}
	b.WriteString("---\n\n")
	return b.String()
}
