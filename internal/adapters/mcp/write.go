package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"vaultsync/internal/application/commands"
	"vaultsync/internal/domain"
	"vaultsync/internal/ports"
)

// RegisterSyncTools adds the tools that write to the vault.
func RegisterSyncTools(s *server.MCPServer, syncer ports.Syncer, commits ports.CommitSource, opts domain.SyncOptions) {
	s.AddTool(syncTool(), syncHandler(syncer, commits, opts))
}

// --- sync ---

func syncTool() mcp.Tool {
	return mcp.NewTool("sync",
		mcp.WithDescription("Copy every mapped Markdown file from the repository into the vault, injecting provenance frontmatter when configured."),
		mcp.WithBoolean("dry_run",
			mcp.Description("Plan the copies without writing anything"),
		),
	)
}

func syncHandler(syncer ports.Syncer, commits ports.CommitSource, opts domain.SyncOptions) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewSyncCommand(syncer, commits, opts)
		cmd.DryRun = req.GetBool("dry_run", false)

		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		var sb strings.Builder
		sb.WriteString(result.Message)
		sb.WriteByte('\n')

		if result.Plan != nil {
			writePairs(&sb, result.Plan.Pairs)
		}
		if result.Report != nil {
			for _, w := range result.Report.Warnings {
				fmt.Fprintf(&sb, "warning: %s\n", w)
			}
			for _, o := range result.Report.Outcomes {
				if o.Err != nil {
					fmt.Fprintf(&sb, "failed: %s: %v\n", o.Source, o.Err)
				}
			}
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}
