package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"tableflip.dev/write/pkg/entry"
)

func registerTools(srv *server.MCPServer, svc *Service) {
	registerListEntriesTool(srv, svc)
	registerReadEntryTool(srv, svc)
	registerWriteEntryTool(srv, svc)
	registerReplyEntryTool(srv, svc)
}

func registerListEntriesTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"list_entries",
		mcp.WithDescription("List journal entries grouped by day, newest first, with their replies."),
	)

	srv.AddTool(tool, func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		groups, err := svc.ListEntries(ctx)
		if err != nil {
			return toolError(err), nil
		}
		return toJSONResult(map[string]any{
			"directory": svc.Directory,
			"groups":    groups,
			"count":     len(groups),
		})
	})
}

func registerReadEntryTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"read_entry",
		mcp.WithDescription("Read an entry and its replies. A reply name opens its parent thread."),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("File name of the entry, for example 240102-100000.txt."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		name, err := request.RequireString("name")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		dto, err := svc.ReadEntry(ctx, name)
		if err != nil {
			return toolError(err), nil
		}
		return toJSONResult(dto)
	})
}

func registerWriteEntryTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"write_entry",
		mcp.WithDescription("Write a new journal entry named after the current time."),
		mcp.WithString("content",
			mcp.Required(),
			mcp.Description("Body of the entry."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			Content string `json:"content"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}

		dto, err := svc.WriteEntry(ctx, args.Content)
		if err != nil {
			return toolError(err), nil
		}
		return toJSONResult(dto)
	})
}

func registerReplyEntryTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"reply_entry",
		mcp.WithDescription("Reply to an existing entry. Replies to a reply attach to the same root."),
		mcp.WithString("parent",
			mcp.Required(),
			mcp.Description("File name of the entry being replied to."),
		),
		mcp.WithString("content",
			mcp.Required(),
			mcp.Description("Body of the reply."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			Parent  string `json:"parent"`
			Content string `json:"content"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}

		dto, err := svc.ReplyEntry(ctx, args.Parent, args.Content)
		if err != nil {
			return toolError(err), nil
		}
		return toJSONResult(dto)
	})
}

func toolError(err error) *mcp.CallToolResult {
	return mcp.NewToolResultError(fmt.Sprintf("%s: %v", entry.CodeOf(err), err))
}

func toJSONResult(data any) (*mcp.CallToolResult, error) {
	b, err := json.Marshal(data)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("marshal error: %v", err)), nil
	}
	return mcp.NewToolResultText(string(b)), nil
}
