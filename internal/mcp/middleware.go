package mcp

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

type contextKey int

const (
	sessionIDKey contextKey = iota
)

// getSessionID extracts the polyglot session ID from context.
func getSessionID(ctx context.Context) string {
	v, _ := ctx.Value(sessionIDKey).(string)
	return v
}

// sessionMiddleware tags every request with the polyglot session it acts on.
// All MCP connections share the one session the process serves.
func sessionMiddleware(messages MessageService) sdkmcp.Middleware {
	return func(next sdkmcp.MethodHandler) sdkmcp.MethodHandler {
		return func(ctx context.Context, method string, req sdkmcp.Request) (sdkmcp.Result, error) {
			if messages != nil {
				ctx = context.WithValue(ctx, sessionIDKey, messages.Session().ID)
			}
			return next(ctx, method, req)
		}
	}
}
