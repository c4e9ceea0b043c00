package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/server"

	"tableflip.dev/write/pkg/app"
	"tableflip.dev/write/pkg/logging"
)

// Runner coordinates MCP server startup over stdio.
type Runner struct {
	Journal   *app.Journal
	Directory string
	Name      string
	Version   string
	Log       logging.Logger
}

// NewServer builds the MCP server with every tool and resource registered.
func (r Runner) NewServer() (*server.MCPServer, error) {
	if r.Journal == nil {
		return nil, errors.New("mcp runner requires a journal")
	}
	name := r.Name
	if name == "" {
		name = "write"
	}
	version := r.Version
	if version == "" {
		version = "dev"
	}

	srv := server.NewMCPServer(
		fmt.Sprintf("%s MCP", name),
		version,
		server.WithResourceCapabilities(false, false),
		server.WithToolCapabilities(false),
		server.WithInstructions("List, read, write and reply to plain text journal entries via MCP."),
		server.WithRecovery(),
	)

	svc := NewService(r.Journal, r.Directory)
	registerResources(srv, svc)
	registerTools(srv, svc)
	return srv, nil
}

// Do executes the runner.
func (r Runner) Do(ctx context.Context) error {
	srv, err := r.NewServer()
	if err != nil {
		return err
	}
	if r.Log != nil {
		r.Log.Info(ctx, "serving mcp over stdio", "directory", r.Directory)
	}
	return server.ServeStdio(srv)
}
