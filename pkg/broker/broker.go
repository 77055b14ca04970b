/*
Package broker assembles the Gravatar MCP server and serves it over stdio or
SSE.
*/
package broker

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/charmbracelet/log"
	"github.com/mark3labs/mcp-go/server"
	"github.com/theapemachine/mcp-server-gravatar/pkg/metrics"
	"github.com/theapemachine/mcp-server-gravatar/pkg/prompts"
	"github.com/theapemachine/mcp-server-gravatar/pkg/resources"
	"github.com/theapemachine/mcp-server-gravatar/pkg/service"
	"github.com/theapemachine/mcp-server-gravatar/pkg/tools"
)

const (
	ServerName    = "gravatar"
	ServerVersion = "1.0.0"
)

type Transport string

const (
	TransportStdio Transport = "stdio"
	TransportSSE   Transport = "sse"
)

/*
MCPBroker owns the MCP server with every Gravatar tool, resource template and
prompt registered on it.
*/
type MCPBroker struct {
	srv   *server.MCPServer
	calls *metrics.CallMetrics
}

func NewMCPBroker(svc *service.Service) *MCPBroker {
	mcpSrv := server.NewMCPServer(
		ServerName,
		ServerVersion,
		server.WithLogging(),
		server.WithResourceCapabilities(false, false),
		server.WithPromptCapabilities(false),
		server.WithToolCapabilities(false),
	)

	calls := metrics.NewCallMetrics()
	tools.Register(mcpSrv, calls, tools.All(svc)...)

	manager := resources.NewGravatarManager(svc)
	manager.Register(mcpSrv)
	prompts.NewManager(manager).Register(mcpSrv)

	return &MCPBroker{srv: mcpSrv, calls: calls}
}

func (b *MCPBroker) MCPServer() *server.MCPServer {
	return b.srv
}

func (b *MCPBroker) Metrics() *metrics.CallMetrics {
	return b.calls
}

/*
Serve blocks on the chosen transport until ctx is cancelled or the transport
fails.
*/
func (b *MCPBroker) Serve(ctx context.Context, transport Transport, addr string) error {
	defer func() {
		for _, stats := range b.calls.GetMetrics() {
			log.Info("tool metrics", "tool", stats["tool"], "calls", stats["calls"], "failures", stats["failures"])
		}
	}()

	switch transport {
	case TransportStdio, "":
		return b.ServeStdio(ctx, os.Stdin, os.Stdout)
	case TransportSSE:
		return b.ServeSSE(ctx, addr)
	default:
		return fmt.Errorf("unsupported transport: %s", transport)
	}
}

func (b *MCPBroker) ServeStdio(ctx context.Context, in io.Reader, out io.Writer) error {
	log.Info("serving mcp over stdio", "server", ServerName)
	return server.NewStdioServer(b.srv).Listen(ctx, in, out)
}

func (b *MCPBroker) ServeSSE(ctx context.Context, addr string) error {
	sseSrv := server.NewSSEServer(b.srv)
	errs := make(chan error, 1)

	go func() {
		log.Info("serving mcp over sse", "server", ServerName, "addr", addr)
		errs <- sseSrv.Start(addr)
	}()

	select {
	case err := <-errs:
		if stderrors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		log.Info("shutting down sse server", "addr", addr)
		return sseSrv.Shutdown(context.Background())
	}
}
