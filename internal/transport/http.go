package transport

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/rpggio/polyglot/internal/domain/activity"
	"github.com/rpggio/polyglot/internal/domain/message"
	"github.com/rpggio/polyglot/internal/domain/session"
)

// MessageService defines the message operations the HTTP API exposes.
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

// ActivityService defines activity operations needed by the HTTP API.
type ActivityService interface {
	GetRecentActivity(ctx context.Context, opts activity.ListActivityOptions) ([]activity.ActivityEntry, error)
}

// Services contains the domain services behind the HTTP API.
type Services struct {
	Messages MessageService
	Activity ActivityService
}

// Server wires HTTP handlers.
type Server struct {
	messages MessageService
	activity ActivityService
	logger   *slog.Logger
}

// NewServer creates an HTTP server router with middleware. mcpHandler, when
// non-nil, is mounted at /mcp.
func NewServer(services Services, mcpHandler http.Handler, logger *slog.Logger) *chi.Mux {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(RequestLogger(logger))

	srv := &Server{
		messages: services.Messages,
		activity: services.Activity,
		logger:   logger,
	}

	r.Get("/health", srv.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Get("/session", srv.handleSession)

		r.Route("/messages", func(r chi.Router) {
			r.Get("/", srv.handleListMessages)
			r.Post("/", srv.handleSubmit)
			r.Get("/{id}", srv.handleGetMessage)
			r.Post("/{id}/summarize", srv.handleSummarize)
			r.Post("/{id}/translate", srv.handleTranslate)
		})

		r.Get("/language", srv.handleGetLanguage)
		r.Put("/language", srv.handleSelectLanguage)
		r.Get("/languages", srv.handleListLanguages)
		r.Get("/activity", srv.handleActivity)
	})

	if mcpHandler != nil {
		r.Handle("/mcp", mcpHandler)
	}

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
