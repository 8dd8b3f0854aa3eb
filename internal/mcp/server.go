package mcp

import (
	"context"
	"log/slog"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/rpggio/polyglot/internal/domain/activity"
	"github.com/rpggio/polyglot/internal/domain/message"
	"github.com/rpggio/polyglot/internal/domain/session"
)

// MessageService defines message operations needed by MCP.
type MessageService interface {
	Submit(ctx context.Context, text string) (message.Message, bool)
	RequestSummary(ctx context.Context, id int64, text string) (message.Message, error)
	RequestTranslation(ctx context.Context, id int64, text, target string) (message.Message, error)
	SelectLanguage(ctx context.Context, lang string) (string, error)
	SelectedLanguage() string
	Get(id int64) (message.Message, error)
	List() message.Snapshot
	Session() session.Info
}

// ActivityService defines activity operations needed by MCP.
type ActivityService interface {
	GetRecentActivity(ctx context.Context, opts activity.ListActivityOptions) ([]activity.ActivityEntry, error)
}

// Services contains all domain services needed by MCP.
type Services struct {
	Messages MessageService
	Activity ActivityService
}

// Config contains server configuration.
type Config struct {
	Services Services
	Version  string
	Logger   *slog.Logger
}

// NewServer creates and configures an MCP server with all tools and middleware.
func NewServer(cfg Config) *sdkmcp.Server {
	version := cfg.Version
	if version == "" {
		version = "0.1.0"
	}

	server := sdkmcp.NewServer(&sdkmcp.Implementation{
		Name:    "polyglot",
		Version: version,
	}, &sdkmcp.ServerOptions{
		Instructions: serverInstructions,
		Logger:       cfg.Logger,
	})

	registerDocResources(server)

	server.AddReceivingMiddleware(
		sessionMiddleware(cfg.Services.Messages),
		trafficLoggingMiddleware(cfg.Logger, "inbound"),
	)
	server.AddSendingMiddleware(trafficLoggingMiddleware(cfg.Logger, "outbound"))

	registerTools(server, cfg.Services)

	return server
}
