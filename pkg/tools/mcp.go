package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	errors "github.com/theapemachine/mcp-server-gravatar/pkg/errors"
	"github.com/theapemachine/mcp-server-gravatar/pkg/metrics"
	"github.com/theapemachine/mcp-server-gravatar/pkg/service"
)

/*
Tool is a single MCP tool: its definition and the handler behind it.
*/
type Tool interface {
	Definition() mcp.Tool
	Handle(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error)
}

/*
All returns every Gravatar tool bound to svc, in registration order.
*/
func All(svc *service.Service) []Tool {
	return []Tool{
		&ProfileByEmailTool{svc: svc},
		&ProfileByHashTool{svc: svc},
		&ProfileFieldWithHashTool{svc: svc},
		&ProfileFieldWithEmailTool{svc: svc},
		&AvatarsTool{svc: svc},
		&AvatarsAsImagesTool{svc: svc},
		&SelectedAvatarImageTool{svc: svc},
	}
}

/*
Acquire returns the tool registered under name.
*/
func Acquire(name string, svc *service.Service) (Tool, error) {
	for _, tool := range All(svc) {
		if tool.Definition().Name == name {
			return tool, nil
		}
	}

	return nil, fmt.Errorf("tool not found: %s", name)
}

/*
Register adds the tools to srv. Each call is logged with its own call id and
recorded in calls, which may be nil.
*/
func Register(srv *server.MCPServer, calls *metrics.CallMetrics, tools ...Tool) {
	for _, tool := range tools {
		srv.AddTool(tool.Definition(), instrument(tool, calls))
	}
}

func instrument(tool Tool, calls *metrics.CallMetrics) server.ToolHandlerFunc {
	name := tool.Definition().Name

	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		callID := uuid.NewString()
		start := time.Now()

		log.Info("tool call", "tool", name, "call", callID)

		res, err := tool.Handle(ctx, req)
		calls.RecordCall(name, err != nil || (res != nil && res.IsError), time.Since(start))

		switch {
		case err != nil:
			log.Error("tool call failed", "tool", name, "call", callID, "error", err)
		case res != nil && res.IsError:
			log.Warn("tool call returned error", "tool", name, "call", callID, "duration", time.Since(start))
		default:
			log.Info("tool call done", "tool", name, "call", callID, "duration", time.Since(start))
		}

		return res, err
	}
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	buf, err := json.Marshal(v)
	if err != nil {
		return mcp.NewToolResultError("failed to marshal result to JSON: " + err.Error()), nil
	}

	return mcp.NewToolResultText(string(buf)), nil
}

/*
errorResult turns a failure into an MCP error result so the calling agent sees
the message instead of a partial success.
*/
func errorResult(action string, err error) (*mcp.CallToolResult, error) {
	if errors.KindOf(err) == errors.KindInvalidInput {
		return mcp.NewToolResultError("invalid input: " + err.Error()), nil
	}

	return mcp.NewToolResultError(fmt.Sprintf("failed to %s: %s", action, err.Error())), nil
}

func stringArg(req mcp.CallToolRequest, key string) string {
	v, _ := req.GetArguments()[key].(string)
	return v
}
