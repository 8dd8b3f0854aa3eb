package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/rpggio/polyglot/internal/config"
	"github.com/rpggio/polyglot/internal/domain/activity"
	"github.com/rpggio/polyglot/internal/domain/message"
	"github.com/rpggio/polyglot/internal/domain/session"
	"github.com/rpggio/polyglot/internal/gtranslate"
	"github.com/rpggio/polyglot/internal/logging"
	"github.com/rpggio/polyglot/internal/mcp"
	"github.com/rpggio/polyglot/internal/sqlite"
	"github.com/rpggio/polyglot/internal/summarize"
	"github.com/rpggio/polyglot/internal/transport"
)

var version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	// Use stderr for logs in stdio mode to keep stdout clean for JSON-RPC.
	logWriter := io.Writer(os.Stdout)
	if cfg.Transport.Mode == config.ModeStdio {
		logWriter = os.Stderr
	}
	if cfg.Log.Path != "" {
		fileWriter, err := logging.OpenFile(cfg.Log.Path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "log file error: %v\n", err)
		} else {
			defer fileWriter.Close()
			logWriter = fileWriter
		}
	}
	logger := logging.New(cfg.Log, logWriter)

	// The activity log lives only as long as the process.
	db, err := sqlite.New(":memory:")
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.RunMigrations(); err != nil {
		logger.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	activitySvc := activity.NewService(sqlite.NewActivityRepository(db), logger)
	translator := gtranslate.NewClient(cfg.Translate.BaseURL,
		gtranslate.WithHTTPClient(&http.Client{Timeout: 15 * time.Second}),
		gtranslate.WithLogger(logger),
	)
	summarizer := newSummarizer(cfg.Summarize, logger)

	sess := session.New()
	messageSvc := message.NewService(message.NewStore(), sess, translator, summarizer, translator, activitySvc, logger)
	logger.Info("session started", "session_id", sess.ID, "target", sess.Target.Get())

	mcpServer := mcp.NewServer(mcp.Config{
		Services: mcp.Services{
			Messages: messageSvc,
			Activity: activitySvc,
		},
		Version: version,
		Logger:  logger,
	})

	if cfg.Transport.Mode == config.ModeStdio {
		runStdioMode(logger, mcpServer)
		return
	}

	router := transport.NewServer(transport.Services{
		Messages: messageSvc,
		Activity: activitySvc,
	}, newMCPHandler(mcpServer), logger)
	runHTTPMode(logger, router, cfg.Server.Host, cfg.Server.Port)
}

// newSummarizer wires the tiers that are configured. Unconfigured tiers stay
// nil interfaces so the summarizer skips them.
func newSummarizer(cfg config.SummarizeConfig, logger *slog.Logger) *summarize.Summarizer {
	var capability summarize.Capability
	if cfg.OnDevice.Model != "" {
		llm, err := summarize.NewOllamaCapability(cfg.OnDevice.ServerURL, cfg.OnDevice.Model)
		if err != nil {
			logger.Warn("on-device summarizer unavailable", "model", cfg.OnDevice.Model, "error", err)
		} else {
			capability = llm
		}
	}

	var model summarize.Model
	if cfg.Remote.Token != "" {
		model = summarize.NewRemoteModel(cfg.Remote.URL, cfg.Remote.Token, &http.Client{Timeout: 30 * time.Second})
	}

	logger.Info("summarizer configured", "on_device", capability != nil, "remote", model != nil)
	return summarize.New(capability, model, logger)
}

func newMCPHandler(mcpServer *sdkmcp.Server) http.Handler {
	return sdkmcp.NewStreamableHTTPHandler(
		func(r *http.Request) *sdkmcp.Server { return mcpServer },
		&sdkmcp.StreamableHTTPOptions{
			Stateless:      false,
			SessionTimeout: 30 * time.Minute,
		},
	)
}

func runStdioMode(logger *slog.Logger, mcpServer *sdkmcp.Server) {
	logger.Info("starting stdio transport")

	stdio := &sdkmcp.StdioTransport{}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-stop
		logger.Info("shutting down")
		cancel()
	}()

	// Run blocks until stdin closes or context is canceled
	if err := mcpServer.Run(ctx, stdio); err != nil && ctx.Err() == nil {
		logger.Error("stdio server error", "error", err)
		os.Exit(1)
	}
}

func runHTTPMode(logger *slog.Logger, handler http.Handler, host string, port int) {
	addr := fmt.Sprintf("%s:%d", host, port)
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
		}
	}()

	waitForShutdown(logger, httpServer)
}

func waitForShutdown(logger *slog.Logger, server *http.Server) {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	logger.Info("shutting down")
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("shutdown error", "error", err)
	}
}
