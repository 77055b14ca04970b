package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/theapemachine/mcp-server-gravatar/pkg/broker"
	"github.com/theapemachine/mcp-server-gravatar/pkg/config"
	"github.com/theapemachine/mcp-server-gravatar/pkg/gravatar"
	"github.com/theapemachine/mcp-server-gravatar/pkg/service"
)

var (
	transportFlag string
	addrFlag      string

	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Serve the Gravatar MCP server",
		Long:  longServe,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				log.Fatal("configuration error", "error", err)
			}

			ctx, stop := signal.NotifyContext(contextOf(cmd), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return broker.NewMCPBroker(svc).Serve(
				ctx,
				broker.Transport(viper.GetString("server.transport")),
				viper.GetString("server.addr"),
			)
		},
	}
)

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVarP(&transportFlag, "transport", "t", "stdio", "Transport to serve on (stdio or sse)")
	serveCmd.Flags().StringVarP(&addrFlag, "addr", "a", "0.0.0.0:3210", "Address to bind the sse transport to")

	_ = viper.BindPFlag("server.transport", serveCmd.Flags().Lookup("transport"))
	_ = viper.BindPFlag("server.addr", serveCmd.Flags().Lookup("addr"))
}

/*
newService wires the Gravatar client from configuration. A missing token is
returned as a configuration error.
*/
func newService() (*service.Service, error) {
	settings, err := config.Load(viper.GetViper())
	if err != nil {
		return nil, err
	}

	client := gravatar.NewClient(
		settings.Token,
		gravatar.WithBaseURL(settings.BaseURL),
		gravatar.WithUserAgent(settings.UserAgent),
		gravatar.WithTimeout(settings.Timeout),
	)

	log.Debug("gravatar client ready", "baseURL", client.BaseURL())
	return service.NewFromClient(client), nil
}

func contextOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}

	return context.Background()
}

var longServe = `
Serve the Gravatar MCP server.

Examples:
  # Serve over stdio, for MCP clients that spawn the server
  gravatar-mcp serve

  # Serve over SSE on port 3210
  gravatar-mcp serve --transport sse --addr 0.0.0.0:3210
`
