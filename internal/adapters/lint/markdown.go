package lint

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"

	"vaultsync/internal/domain"
)

// MarkdownLinter checks Markdown files for relative links and images that
// point at files which do not exist. It runs natively, no external tool.
type MarkdownLinter struct {
	md goldmark.Markdown
}

// NewMarkdownLinter creates the Markdown link checker.
func NewMarkdownLinter() *MarkdownLinter {
	return &MarkdownLinter{
		md: goldmark.New(goldmark.WithExtensions(extension.GFM)),
	}
}

// Name returns the linter name.
func (l *MarkdownLinter) Name() string { return "markdown-links" }

// Available always holds: the checker ships with the binary.
func (l *MarkdownLinter) Available() bool { return true }

// Supports matches Markdown files.
func (l *MarkdownLinter) Supports(file string) bool {
	return domain.IsMarkdown(file)
}

// Run parses the file and reports every link destination that resolves to a
// missing local file.
func (l *MarkdownLinter) Run(ctx context.Context, file string) (domain.LintResult, error) {
	result := domain.LintResult{Tool: l.Name(), File: file}

	source, err := os.ReadFile(file)
	if err != nil {
		return domain.LintResult{}, fmt.Errorf("failed to read %s: %w", file, err)
	}

	doc := l.md.Parser().Parse(text.NewReader(source))

	var broken []string
	walkErr := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if err := ctx.Err(); err != nil {
			return ast.WalkStop, err
		}

		var dest string
		switch node := n.(type) {
		case *ast.Link:
			dest = string(node.Destination)
		case *ast.Image:
			dest = string(node.Destination)
		default:
			return ast.WalkContinue, nil
		}

		if target, ok := localTarget(file, dest); ok {
			if _, err := os.Stat(target); err != nil {
				broken = append(broken, fmt.Sprintf("broken link: %s", dest))
			}
		}
		return ast.WalkContinue, nil
	})
	if walkErr != nil {
		return domain.LintResult{}, walkErr
	}

	result.Passed = len(broken) == 0
	result.Output = strings.Join(broken, "\n")
	return result, nil
}

// localTarget resolves a link destination to a checkable filesystem path.
// External URLs, anchors, and empty destinations are not checkable.
func localTarget(file, dest string) (string, bool) {
	if dest == "" || strings.HasPrefix(dest, "#") {
		return "", false
	}

	u, err := url.Parse(dest)
	if err != nil || u.Scheme != "" || u.Host != "" {
		return "", false
	}

	path := u.Path
	if path == "" {
		return "", false
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(filepath.Dir(file), path)
	}
	return path, true
}
