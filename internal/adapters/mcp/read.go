package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"vaultsync/internal/domain"
	"vaultsync/internal/ports"
)

// RegisterReadTools adds the read-only sync inspection tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, syncer ports.Syncer) {
	s.AddTool(statusTool(), statusHandler(syncer))
	s.AddTool(planTool(), planHandler(syncer))
	s.AddTool(resolveTool(), resolveHandler(syncer))
}

// --- status ---

func statusTool() mcp.Tool {
	return mcp.NewTool("status",
		mcp.WithDescription("Compare the vault against the repository. Reports each mapped file as up-to-date, stale, or missing from the vault."),
	)
}

func statusHandler(syncer ports.Syncer) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		report, err := syncer.Status(ctx)
		if err != nil {
			return toolError(err)
		}

		if len(report.Entries) == 0 {
			return mcp.NewToolResultText("No files are mapped."), nil
		}

		var sb strings.Builder
		fmt.Fprintf(&sb, "%d current, %d stale, %d missing\n\n",
			report.Current, report.Stale, report.Missing)
		for _, e := range report.Entries {
			fmt.Fprintf(&sb, "%-10s  %s -> %s", e.State, e.Source, e.Target)
			if e.SyncedCommit != "" {
				fmt.Fprintf(&sb, "  (commit %s)", shortCommit(e.SyncedCommit))
			}
			sb.WriteByte('\n')
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- plan ---

func planTool() mcp.Tool {
	return mcp.NewTool("plan",
		mcp.WithDescription("List the copies a sync would perform, without writing anything."),
	)
}

func planHandler(syncer ports.Syncer) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		plan, err := syncer.Plan(ctx)
		if err != nil {
			return toolError(err)
		}

		var sb strings.Builder
		fmt.Fprintf(&sb, "Would copy %d files (%d found)\n", len(plan.Pairs), plan.FilesFound)
		writePairs(&sb, plan.Pairs)
		for _, w := range plan.Warnings {
			fmt.Fprintf(&sb, "warning: %s\n", w)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- resolve ---

func resolveTool() mcp.Tool {
	return mcp.NewTool("resolve",
		mcp.WithDescription("Map a repository file path to its vault destination(s). Paths are resolved relative to the server's working directory."),
		mcp.WithString("file",
			mcp.Description("Repository file path to resolve"),
			mcp.Required(),
		),
	)
}

func resolveHandler(syncer ports.Syncer) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		file := req.GetString("file", "")
		if file == "" {
			return toolError(fmt.Errorf("file is required"))
		}

		pairs, err := syncer.Resolve(file)
		if err != nil {
			return toolError(err)
		}

		if len(pairs) == 0 {
			return mcp.NewToolResultText(fmt.Sprintf("%s is not covered by any mapping", file)), nil
		}

		var sb strings.Builder
		writePairs(&sb, pairs)
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

func writePairs(sb *strings.Builder, pairs []domain.CopyPair) {
	for _, p := range pairs {
		fmt.Fprintf(sb, "%s -> %s\n", p.Source, p.Target)
	}
}

func shortCommit(hash string) string {
	if len(hash) > 7 {
		return hash[:7]
	}
	return hash
}
