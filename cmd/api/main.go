package main

import (
	"context"
	"embed"
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"load-relay/internal/analytics"
	"load-relay/internal/config"
	"load-relay/internal/fmcsa"
	"load-relay/internal/httpapi"
	"load-relay/internal/loads"
	"load-relay/internal/workflow"
	"load-relay/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

//go:embed templates/*.html
var templateFS embed.FS

func main() {
	// Root context that cancels on shutdown
	rootCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Local convenience; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("config load failed", "err", err)
		os.Exit(1)
	}

	log := logger.New(cfg.App.Env)
	slog.SetDefault(log)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Relay state is owned here and injected; it lives for the process
	// lifetime and is discarded on exit.
	tracker := loads.NewTracker()
	verifier := fmcsa.NewClient(fmcsa.Config{
		BaseURL: cfg.FMCSA.BaseURL,
		WebKey:  cfg.FMCSA.WebKey,
		Timeout: cfg.FMCSA.Timeout,
	})
	forwarder := workflow.NewClient(workflow.Config{
		URL:    cfg.Workflow.URL,
		APIKey: cfg.Workflow.APIKey,
	})

	h := httpapi.Handlers{
		Loads:          loads.NewService(verifier, forwarder, tracker),
		Analytics:      analytics.NewService(analytics.NewMemoryRepo()),
		DashboardToken: cfg.Dashboard.Token,
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.Middleware(log))
	r.SetHTMLTemplate(template.Must(template.ParseFS(templateFS, "templates/*.html")))

	registerRoutes(r, h, cfg.Auth.APIKey)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info("relay listening", "addr", srv.Addr, "env", cfg.App.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("http server failed", "err", err)
			stop()
		}
	}()

	<-rootCtx.Done()
	log.Info("shutdown initiated")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("http shutdown failed", "err", err)
	}
}
