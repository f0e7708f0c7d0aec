package filesystem

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"vaultsync/internal/application"
	"vaultsync/internal/domain"
)

// Syncer implements ports.Syncer against the local filesystem. A run is a
// pure function of the mappings, the discovered files, and the commit
// metadata; nothing is persisted between runs.
type Syncer struct {
	vaultRoot string
	mappings  []domain.Mapping
	opts      domain.SyncOptions

	now func() time.Time
}

// NewSyncer creates a new Syncer rooted at vaultRoot.
func NewSyncer(vaultRoot string, mappings []domain.Mapping, opts domain.SyncOptions) *Syncer {
	return &Syncer{
		vaultRoot: vaultRoot,
		mappings:  mappings,
		opts:      opts,
		now:       time.Now,
	}
}

// Plan discovers every mapping source and resolves the full copy list
// without touching the vault.
func (s *Syncer) Plan(ctx context.Context) (*domain.SyncPlan, error) {
	plan := &domain.SyncPlan{}
	unique := make(map[string]struct{})
	claimed := make(map[string]string)

	for i, m := range s.mappings {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		m, kind := s.statMapping(m)
		if kind == domain.SourceMissing {
			plan.Warnings = append(plan.Warnings,
				fmt.Sprintf("mapping source %s does not exist, skipping", m.Source))
			continue
		}

		files, err := discover(m.Source, kind)
		if err != nil {
			plan.Warnings = append(plan.Warnings,
				fmt.Sprintf("failed to read mapping source %s: %v", m.Source, err))
			continue
		}

		for _, file := range files {
			target, err := domain.ResolveTarget(s.vaultRoot, m, kind, file)
			if err != nil {
				return nil, fmt.Errorf("failed to resolve %s: %w", file, err)
			}

			if prev, ok := claimed[target]; ok && prev != file {
				if s.opts.StrictCollisions {
					return nil, &application.CollisionError{
						Target:  target,
						Sources: []string{prev, file},
					}
				}
			}
			claimed[target] = file

			unique[file] = struct{}{}
			plan.Pairs = append(plan.Pairs, domain.CopyPair{
				Source:       file,
				Target:       target,
				MappingIndex: i,
			})
		}
	}

	plan.FilesFound = len(unique)
	return plan, nil
}

// Sync executes the plan sequentially. Per-file failures are collected in
// the report; only context cancellation and strict collisions abort the run.
func (s *Syncer) Sync(ctx context.Context, meta domain.CommitMetadata) (*domain.SyncReport, error) {
	start := s.now()

	plan, err := s.Plan(ctx)
	if err != nil {
		return nil, err
	}

	report := &domain.SyncReport{
		FilesFound: plan.FilesFound,
		Warnings:   plan.Warnings,
		Commit:     meta,
	}

	for _, pair := range plan.Pairs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		outcome := s.copyPair(pair, meta)
		report.Outcomes = append(report.Outcomes, outcome)
		if outcome.Err != nil {
			report.Failed++
		} else {
			report.Copied++
		}
	}

	report.Duration = time.Since(start)
	return report, nil
}

// copyPair copies one file and injects the provenance block when
// configured. The copy stands even when injection fails afterwards.
func (s *Syncer) copyPair(pair domain.CopyPair, meta domain.CommitMetadata) domain.FileOutcome {
	outcome := domain.FileOutcome{Source: pair.Source, Target: pair.Target}

	content, err := os.ReadFile(pair.Source)
	if err != nil {
		outcome.Err = fmt.Errorf("failed to read %s: %w", pair.Source, err)
		return outcome
	}

	if err := os.MkdirAll(filepath.Dir(pair.Target), 0755); err != nil {
		outcome.Err = fmt.Errorf("failed to create %s: %w", filepath.Dir(pair.Target), err)
		return outcome
	}

	if err := os.WriteFile(pair.Target, content, 0644); err != nil {
		outcome.Err = fmt.Errorf("failed to write %s: %w", pair.Target, err)
		return outcome
	}

	if !s.opts.AddMetadata || !domain.IsMarkdown(pair.Target) {
		return outcome
	}

	block := domain.ProvenanceBlock(meta, s.opts.Metadata, s.now())
	injected := append([]byte(block), content...)
	if err := os.WriteFile(pair.Target, injected, 0644); err != nil {
		outcome.Err = fmt.Errorf("failed to inject metadata into %s: %w", pair.Target, err)
		return outcome
	}

	outcome.Injected = true
	return outcome
}

// Resolve returns the vault paths file would be copied to, one per mapping
// that covers it, in configuration order.
func (s *Syncer) Resolve(file string) ([]domain.CopyPair, error) {
	abs, err := filepath.Abs(file)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path %s: %w", file, err)
	}
	if !domain.IsMarkdown(abs) {
		return nil, nil
	}

	var pairs []domain.CopyPair
	for i, m := range s.mappings {
		m, kind := s.statMapping(m)

		switch kind {
		case domain.SourceFile:
			if abs == m.Source {
				target, err := domain.ResolveTarget(s.vaultRoot, m, kind, abs)
				if err != nil {
					return nil, err
				}
				pairs = append(pairs, domain.CopyPair{Source: abs, Target: target, MappingIndex: i})
			}
		case domain.SourceDir:
			rel, err := filepath.Rel(m.Source, abs)
			if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
				continue
			}
			target, err := domain.ResolveTarget(s.vaultRoot, m, kind, abs)
			if err != nil {
				continue
			}
			pairs = append(pairs, domain.CopyPair{Source: abs, Target: target, MappingIndex: i})
		}
	}
	return pairs, nil
}

// statMapping makes the mapping source absolute and classifies it.
func (s *Syncer) statMapping(m domain.Mapping) (domain.Mapping, domain.SourceKind) {
	if abs, err := filepath.Abs(m.Source); err == nil {
		m.Source = abs
	}

	info, err := os.Stat(m.Source)
	switch {
	case err != nil:
		return m, domain.SourceMissing
	case info.IsDir():
		return m, domain.SourceDir
	default:
		return m, domain.SourceFile
	}
}

// discover lists the Markdown files under a mapping source, sorted, as
// absolute paths.
func discover(source string, kind domain.SourceKind) ([]string, error) {
	if kind == domain.SourceFile {
		if !domain.IsMarkdown(source) {
			return nil, nil
		}
		return []string{source}, nil
	}

	var files []string
	err := filepath.WalkDir(source, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() || !domain.IsMarkdown(path) {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}
