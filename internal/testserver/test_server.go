package testserver

import (
	"net/http"
	"net/http/httptest"
	"testing"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/require"

	"github.com/rpggio/polyglot/internal/domain/activity"
	"github.com/rpggio/polyglot/internal/domain/message"
	"github.com/rpggio/polyglot/internal/domain/session"
	"github.com/rpggio/polyglot/internal/gtranslate"
	"github.com/rpggio/polyglot/internal/mcp"
	"github.com/rpggio/polyglot/internal/sqlite"
	"github.com/rpggio/polyglot/internal/summarize"
	"github.com/rpggio/polyglot/internal/transport"
)

// Options points the stack at fake upstreams.
type Options struct {
	TranslateURL string
	// SummarizerURL and SummarizerToken enable the remote tier when both are set.
	SummarizerURL   string
	SummarizerToken string
	// Capability is the on-device tier; nil leaves it out.
	Capability summarize.Capability
}

// TestServer is the full HTTP stack, including /mcp, over an in-memory
// activity log.
type TestServer struct {
	Server   *httptest.Server
	DB       *sqlite.DB
	Messages *message.Service
	Activity *activity.Service
	Session  *session.Session
}

func New(t *testing.T, opts Options) *TestServer {
	t.Helper()

	db, err := sqlite.New(":memory:")
	require.NoError(t, err)
	require.NoError(t, db.RunMigrations())

	activitySvc := activity.NewService(sqlite.NewActivityRepository(db), nil)

	var model summarize.Model
	if opts.SummarizerURL != "" && opts.SummarizerToken != "" {
		model = summarize.NewRemoteModel(opts.SummarizerURL, opts.SummarizerToken, nil)
	}
	summarizer := summarize.New(opts.Capability, model, nil)
	translator := gtranslate.NewClient(opts.TranslateURL)

	sess := session.New()
	messageSvc := message.NewService(message.NewStore(), sess, translator, summarizer, translator, activitySvc, nil)

	mcpServer := mcp.NewServer(mcp.Config{
		Services: mcp.Services{Messages: messageSvc, Activity: activitySvc},
	})
	mcpHandler := sdkmcp.NewStreamableHTTPHandler(func(*http.Request) *sdkmcp.Server { return mcpServer }, nil)

	server := httptest.NewServer(transport.NewServer(transport.Services{
		Messages: messageSvc,
		Activity: activitySvc,
	}, mcpHandler, nil))

	t.Cleanup(func() {
		server.Close()
		_ = db.Close()
	})

	return &TestServer{
		Server:   server,
		DB:       db,
		Messages: messageSvc,
		Activity: activitySvc,
		Session:  sess,
	}
}

// URL returns the server URL joined with path.
func (ts *TestServer) URL(path string) string {
	return ts.Server.URL + path
}
