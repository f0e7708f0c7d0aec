package filesystem

import (
	"context"
	"path/filepath"
	"testing"

	"vaultsync/internal/domain"
)

func TestSyncer_Status_States(t *testing.T) {
	repo := t.TempDir()
	vault := t.TempDir()

	writeFile(t, filepath.Join(repo, "docs", "current.md"), "same\n")
	writeFile(t, filepath.Join(repo, "docs", "stale.md"), "new content\n")
	writeFile(t, filepath.Join(repo, "docs", "missing.md"), "never synced\n")

	writeFile(t, filepath.Join(vault, "Docs", "current.md"), "same\n")
	writeFile(t, filepath.Join(vault, "Docs", "stale.md"), "old content\n")

	s := NewSyncer(vault, []domain.Mapping{
		{Source: filepath.Join(repo, "docs"), Target: "Docs/"},
	}, domain.SyncOptions{})

	report, err := s.Status(context.Background())
	if err != nil {
		t.Fatalf("Status failed: %v", err)
	}

	if report.Current != 1 || report.Stale != 1 || report.Missing != 1 {
		t.Errorf("expected 1/1/1, got current=%d stale=%d missing=%d",
			report.Current, report.Stale, report.Missing)
	}

	states := make(map[string]domain.TargetState)
	for _, e := range report.Entries {
		states[filepath.Base(e.Source)] = e.State
	}
	if states["current.md"] != domain.TargetCurrent {
		t.Errorf("expected current.md current, got %s", states["current.md"])
	}
	if states["stale.md"] != domain.TargetStale {
		t.Errorf("expected stale.md stale, got %s", states["stale.md"])
	}
	if states["missing.md"] != domain.TargetMissing {
		t.Errorf("expected missing.md missing, got %s", states["missing.md"])
	}
}

func TestSyncer_Status_AfterMetadataSync(t *testing.T) {
	repo := t.TempDir()
	vault := t.TempDir()

	writeFile(t, filepath.Join(repo, "docs", "note.md"), "# Note\n\nbody\n")

	opts := domain.SyncOptions{
		AddMetadata: true,
		Metadata: domain.MetadataOptions{
			AddGitMetadata:   true,
			AddSyncTimestamp: true,
		},
	}
	s := NewSyncer(vault, []domain.Mapping{
		{Source: filepath.Join(repo, "docs"), Target: "Docs/"},
	}, opts)

	meta := domain.CommitMetadata{
		Hash:      "abc123",
		Author:    "Dev",
		Timestamp: "2024-05-01T10:00:00+02:00",
		Message:   "sync notes",
	}
	if _, err := s.Sync(context.Background(), meta); err != nil {
		t.Fatalf("Sync failed: %v", err)
	}

	report, err := s.Status(context.Background())
	if err != nil {
		t.Fatalf("Status failed: %v", err)
	}

	if report.Current != 1 {
		t.Fatalf("expected injected target to read as current, got %+v", report.Entries)
	}
	if report.Entries[0].SyncedCommit != "abc123" {
		t.Errorf("expected recorded commit abc123, got %q", report.Entries[0].SyncedCommit)
	}
}

func TestSyncer_Status_SourceFrontmatterUntouched(t *testing.T) {
	repo := t.TempDir()
	vault := t.TempDir()

	// A note whose own frontmatter has none of the provenance keys must be
	// compared as-is.
	content := "---\ntitle: My Note\ntags: [a, b]\n---\nbody\n"
	writeFile(t, filepath.Join(repo, "docs", "note.md"), content)
	writeFile(t, filepath.Join(vault, "Docs", "note.md"), content)

	s := NewSyncer(vault, []domain.Mapping{
		{Source: filepath.Join(repo, "docs"), Target: "Docs/"},
	}, domain.SyncOptions{})

	report, err := s.Status(context.Background())
	if err != nil {
		t.Fatalf("Status failed: %v", err)
	}

	if report.Current != 1 {
		t.Errorf("expected note with its own frontmatter to be current, got %+v", report.Entries)
	}
	if report.Entries[0].SyncedCommit != "" {
		t.Errorf("expected no recorded commit, got %q", report.Entries[0].SyncedCommit)
	}
}

func TestStripProvenance(t *testing.T) {
	injected := []byte("---\n" +
		"git-commit: abc123\n" +
		"git-author: Dev\n" +
		"git-timestamp: 2024-05-01T10:00:00+02:00\n" +
		"git-message: update\n" +
		"sync-timestamp: 2024-05-01T10:30:00Z\n" +
		"---\n" +
		"\n" +
		"# Title\n")

	body, commit := stripProvenance(injected)
	if string(body) != "# Title\n" {
		t.Errorf("expected stripped body, got %q", body)
	}
	if commit != "abc123" {
		t.Errorf("expected commit abc123, got %q", commit)
	}

	plain := []byte("# Title\n")
	body, commit = stripProvenance(plain)
	if string(body) != "# Title\n" || commit != "" {
		t.Errorf("expected plain content untouched, got %q / %q", body, commit)
	}
}
