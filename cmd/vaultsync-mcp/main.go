package main

import (
	"context"
	"flag"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"vaultsync/internal/adapters/filesystem"
	"vaultsync/internal/adapters/git"
	mcpadapter "vaultsync/internal/adapters/mcp"
	"vaultsync/internal/config"
)

func main() {
	configFlag := flag.String("config", "", "path to the sync config file")
	flag.Parse()

	path := *configFlag
	if path == "" {
		var err error
		path, err = config.DefaultPath(".")
		if err != nil {
			log.Fatalf("vaultsync-mcp: %v", err)
		}
	}

	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("vaultsync-mcp: %v", err)
	}

	syncer := filesystem.NewSyncer(cfg.TargetVault, cfg.DomainMappings(), cfg.DomainOptions())

	mcpServer := server.NewMCPServer(
		"vaultsync-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check — returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterReadTools(mcpServer, syncer)
	mcpadapter.RegisterSyncTools(mcpServer, syncer, git.NewClient(""), cfg.DomainOptions())

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("vaultsync-mcp: %v", err)
	}
}
