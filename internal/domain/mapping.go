package domain

import (
	"fmt"
	"path/filepath"
	"strings"
)

// FoldedDirName is the directory name that is always preserved on the vault
// side when a directory mapping's target omits it. The common configuration
// maps a fixed source folder into a per-project target without repeating the
// folder name, but the synchronized tree must stay recognizable in the vault.
const FoldedDirName = "memory-bank"

// SourceKind classifies what a mapping's source path points at on disk.
type SourceKind int

const (
	SourceMissing SourceKind = iota // does not exist, or is neither file nor directory
	SourceDir
	SourceFile
)

func (k SourceKind) String() string {
	switch k {
	case SourceDir:
		return "directory"
	case SourceFile:
		return "file"
	default:
		return "missing"
	}
}

// Mapping pairs one repository-side source (a directory or a single file)
// with a directory base relative to the vault root. Mappings are processed
// in configuration order; on a target collision the later mapping wins.
type Mapping struct {
	Source string
	Target string

	// PreserveDirName applies the same folding rule as FoldedDirName to any
	// directory source's base name. The FoldedDirName rule applies regardless.
	PreserveDirName bool
}

// MetadataOptions selects which provenance lines the injected block carries.
type MetadataOptions struct {
	AddGitMetadata   bool
	AddSyncTimestamp bool
}

// SyncOptions controls a synchronization run.
type SyncOptions struct {
	AddMetadata bool
	Metadata    MetadataOptions

	// StrictCollisions rejects two different source files resolving to the
	// same target instead of letting the later mapping overwrite.
	StrictCollisions bool
}

// IsMarkdown reports whether path has a Markdown extension. The match is
// case-insensitive, so notes named README.MD on case-insensitive
// filesystems still synchronize.
func IsMarkdown(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".md")
}

// ResolveTarget maps a discovered source file to its absolute destination
// under vaultRoot. kind must describe what m.Source is on disk; sourceFile
// must be an absolute path beneath (or equal to) m.Source.
//
// Directory sources keep the file's path relative to the source directory.
// Single-file sources keep the base name only. Directory sources named
// FoldedDirName (or any directory source when m.PreserveDirName is set) have
// their base name appended to the target unless the target already ends in
// that segment.
func ResolveTarget(vaultRoot string, m Mapping, kind SourceKind, sourceFile string) (string, error) {
	targetDir := filepath.Join(vaultRoot, m.Target)

	switch kind {
	case SourceFile:
		return filepath.Join(targetDir, filepath.Base(sourceFile)), nil

	case SourceDir:
		srcRoot := filepath.Clean(m.Source)
		base := filepath.Base(srcRoot)
		if (base == FoldedDirName || m.PreserveDirName) && !endsWithSegment(targetDir, base) {
			targetDir = filepath.Join(targetDir, base)
		}

		rel, err := filepath.Rel(srcRoot, sourceFile)
		if err != nil {
			return "", fmt.Errorf("failed to relativize %s against %s: %w", sourceFile, srcRoot, err)
		}
		if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			return "", fmt.Errorf("source file %s is outside mapping source %s", sourceFile, m.Source)
		}
		return filepath.Join(targetDir, rel), nil

	default:
		return "", fmt.Errorf("mapping source %s does not exist", m.Source)
	}
}

// endsWithSegment reports whether the final path component of path equals
// segment. Comparison happens on the cleaned path, so trailing separators
// in configuration values do not matter.
func endsWithSegment(path, segment string) bool {
	return filepath.Base(filepath.Clean(path)) == segment
}
