package commands

import (
	"context"
	"errors"
	"strings"
	"testing"

	"vaultsync/internal/domain"
)

// fakeSyncer implements ports.Syncer for command tests.
type fakeSyncer struct {
	plan    *domain.SyncPlan
	report  *domain.SyncReport
	status  *domain.StatusReport
	pairs   []domain.CopyPair
	err     error
	gotMeta domain.CommitMetadata
}

func (f *fakeSyncer) Plan(ctx context.Context) (*domain.SyncPlan, error) {
	return f.plan, f.err
}

func (f *fakeSyncer) Sync(ctx context.Context, meta domain.CommitMetadata) (*domain.SyncReport, error) {
	f.gotMeta = meta
	return f.report, f.err
}

func (f *fakeSyncer) Status(ctx context.Context) (*domain.StatusReport, error) {
	return f.status, f.err
}

func (f *fakeSyncer) Resolve(file string) ([]domain.CopyPair, error) {
	return f.pairs, f.err
}

// fakeCommitSource implements ports.CommitSource for command tests.
type fakeCommitSource struct {
	meta      domain.CommitMetadata
	err       error
	available bool
	headCalls int
}

func (f *fakeCommitSource) Head(ctx context.Context) (domain.CommitMetadata, error) {
	f.headCalls++
	return f.meta, f.err
}

func (f *fakeCommitSource) StagedFiles(ctx context.Context) ([]string, error) { return nil, nil }
func (f *fakeCommitSource) Root(ctx context.Context) (string, error)          { return "", nil }
func (f *fakeCommitSource) HooksDir(ctx context.Context) (string, error)      { return "", nil }
func (f *fakeCommitSource) Available() bool                                   { return f.available }

func metadataOptions() domain.SyncOptions {
	return domain.SyncOptions{
		AddMetadata: true,
		Metadata:    domain.MetadataOptions{AddGitMetadata: true},
	}
}

func TestSyncCommand_Execute_DryRun(t *testing.T) {
	syncer := &fakeSyncer{
		plan: &domain.SyncPlan{
			Pairs:      []domain.CopyPair{{Source: "/repo/a.md", Target: "/vault/a.md"}},
			FilesFound: 1,
		},
	}

	cmd := NewSyncCommand(syncer, nil, domain.SyncOptions{})
	cmd.DryRun = true

	result, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if result.Plan == nil {
		t.Fatal("expected a plan for dry run")
	}
	if result.Report != nil {
		t.Error("dry run must not produce a report")
	}
	if !strings.Contains(result.Message, "Would copy 1 files") {
		t.Errorf("unexpected message: %q", result.Message)
	}
}

func TestSyncCommand_Execute_PassesCommitMetadata(t *testing.T) {
	syncer := &fakeSyncer{report: &domain.SyncReport{FilesFound: 1, Copied: 1}}
	commits := &fakeCommitSource{
		available: true,
		meta: domain.CommitMetadata{
			Hash:      "abc123",
			Author:    "Dev",
			Timestamp: "2024-05-01T10:00:00+02:00",
			Message:   "change",
		},
	}

	cmd := NewSyncCommand(syncer, commits, metadataOptions())

	if _, err := cmd.Execute(context.Background()); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if syncer.gotMeta.Hash != "abc123" {
		t.Errorf("expected commit hash passed through, got %q", syncer.gotMeta.Hash)
	}
	if commits.headCalls != 1 {
		t.Errorf("expected one Head call, got %d", commits.headCalls)
	}
}

func TestSyncCommand_Execute_SkipsGitWhenNotConfigured(t *testing.T) {
	syncer := &fakeSyncer{report: &domain.SyncReport{}}
	commits := &fakeCommitSource{available: true, meta: domain.CommitMetadata{Hash: "abc"}}

	cmd := NewSyncCommand(syncer, commits, domain.SyncOptions{})

	if _, err := cmd.Execute(context.Background()); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if commits.headCalls != 0 {
		t.Errorf("expected git untouched when metadata is off, got %d Head calls", commits.headCalls)
	}
	if syncer.gotMeta != domain.UnknownCommit() {
		t.Errorf("expected unknown commit placeholders, got %+v", syncer.gotMeta)
	}
}

func TestSyncCommand_Execute_DegradesWhenGitFails(t *testing.T) {
	syncer := &fakeSyncer{report: &domain.SyncReport{}}
	commits := &fakeCommitSource{available: true, err: errors.New("not a git repository")}

	cmd := NewSyncCommand(syncer, commits, metadataOptions())

	if _, err := cmd.Execute(context.Background()); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if syncer.gotMeta != domain.UnknownCommit() {
		t.Errorf("expected unknown commit placeholders on git failure, got %+v", syncer.gotMeta)
	}
}

func TestSyncCommand_Execute_NilCommitSource(t *testing.T) {
	syncer := &fakeSyncer{report: &domain.SyncReport{}}

	cmd := NewSyncCommand(syncer, nil, metadataOptions())

	if _, err := cmd.Execute(context.Background()); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if syncer.gotMeta != domain.UnknownCommit() {
		t.Errorf("expected unknown commit placeholders without a commit source, got %+v", syncer.gotMeta)
	}
}

func TestSyncCommand_Execute_ReportsFailures(t *testing.T) {
	syncer := &fakeSyncer{report: &domain.SyncReport{FilesFound: 3, Copied: 2, Failed: 1}}

	cmd := NewSyncCommand(syncer, nil, domain.SyncOptions{})

	result, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if !strings.Contains(result.Message, "Synced 2 of 3 files (1 failed)") {
		t.Errorf("unexpected message: %q", result.Message)
	}
}

func TestSyncCommand_Execute_SyncError(t *testing.T) {
	syncer := &fakeSyncer{err: errors.New("vault unwritable")}

	cmd := NewSyncCommand(syncer, nil, domain.SyncOptions{})

	_, err := cmd.Execute(context.Background())
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "failed to sync") {
		t.Errorf("unexpected error: %v", err)
	}
}
