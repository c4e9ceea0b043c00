package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func registerResources(srv *server.MCPServer, svc *Service) {
	registerEntriesResource(srv, svc)
	registerEntryTemplate(srv, svc)
}

func registerEntriesResource(srv *server.MCPServer, svc *Service) {
	resource := mcp.NewResource(
		"write://entries",
		"Entries",
		mcp.WithResourceDescription("Journal entries grouped by day, newest first."),
		mcp.WithMIMEType("application/json"),
	)

	srv.AddResource(resource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		groups, err := svc.ListEntries(ctx)
		if err != nil {
			return nil, err
		}
		return encodeResourceJSON(request.Params.URI, map[string]any{
			"directory": svc.Directory,
			"groups":    groups,
		})
	})
}

func registerEntryTemplate(srv *server.MCPServer, svc *Service) {
	template := mcp.NewResourceTemplate(
		"write://entries/{name}",
		"Entry",
		mcp.WithTemplateDescription("A single entry thread with its replies."),
		mcp.WithTemplateMIMEType("application/json"),
	)

	srv.AddResourceTemplate(template, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		name := templateArg(request.Params.Arguments["name"])
		if name == "" {
			return nil, fmt.Errorf("entry name is required")
		}

		dto, err := svc.ReadEntry(ctx, name)
		if err != nil {
			return nil, err
		}
		return encodeResourceJSON(request.Params.URI, map[string]any{"entry": dto})
	})
}

// templateArg accepts both the plain string and the single element slice
// forms that template matching can produce.
func templateArg(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case []string:
		if len(t) > 0 {
			return t[0]
		}
	}
	return ""
}

func encodeResourceJSON(uri string, payload any) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
