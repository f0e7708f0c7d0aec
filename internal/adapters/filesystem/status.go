package filesystem

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/adrg/frontmatter"

	"vaultsync/internal/domain"
)

// provenanceEnvelope matches the keys of the injected provenance block.
type provenanceEnvelope struct {
	GitCommit     string `yaml:"git-commit"`
	SyncTimestamp string `yaml:"sync-timestamp"`
}

// Status resolves every pair and classifies its vault target as missing,
// stale, or current. Read-only.
func (s *Syncer) Status(ctx context.Context) (*domain.StatusReport, error) {
	plan, err := s.Plan(ctx)
	if err != nil {
		return nil, err
	}

	report := &domain.StatusReport{}
	for _, pair := range plan.Pairs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		entry, err := classify(pair)
		if err != nil {
			return nil, err
		}

		report.Entries = append(report.Entries, entry)
		switch entry.State {
		case domain.TargetMissing:
			report.Missing++
		case domain.TargetStale:
			report.Stale++
		case domain.TargetCurrent:
			report.Current++
		}
	}
	return report, nil
}

// classify compares one pair. A target that carries an injected provenance
// block is compared against the source with the block stripped, so metadata
// injection does not read as permanent staleness.
func classify(pair domain.CopyPair) (domain.StatusEntry, error) {
	entry := domain.StatusEntry{Source: pair.Source, Target: pair.Target}

	targetContent, err := os.ReadFile(pair.Target)
	if os.IsNotExist(err) {
		entry.State = domain.TargetMissing
		return entry, nil
	}
	if err != nil {
		return entry, fmt.Errorf("failed to read %s: %w", pair.Target, err)
	}

	sourceContent, err := os.ReadFile(pair.Source)
	if err != nil {
		return entry, fmt.Errorf("failed to read %s: %w", pair.Source, err)
	}

	comparable, commit := stripProvenance(targetContent)
	entry.SyncedCommit = commit

	if bytes.Equal(comparable, sourceContent) {
		entry.State = domain.TargetCurrent
	} else {
		entry.State = domain.TargetStale
	}
	return entry, nil
}

// stripProvenance removes the injected provenance block from target content
// when one is present, returning the remaining body and the recorded commit
// hash. Content without our keys is returned untouched, so notes with their
// own frontmatter are not mangled.
func stripProvenance(content []byte) ([]byte, string) {
	var env provenanceEnvelope
	body, err := frontmatter.Parse(bytes.NewReader(content), &env)
	if err != nil {
		return content, ""
	}
	if env.GitCommit == "" && env.SyncTimestamp == "" {
		return content, ""
	}

	// The injected block ends with a blank line separating it from the body.
	body = bytes.TrimPrefix(body, []byte("\n"))
	return body, env.GitCommit
}
