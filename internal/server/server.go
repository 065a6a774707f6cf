// Package server wires the generation services behind an HTTP API with
// config-driven providers and hot reload.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/DISIA-TECH/tool-content-backend/internal/agent"
	"github.com/DISIA-TECH/tool-content-backend/internal/api"
	"github.com/DISIA-TECH/tool-content-backend/internal/calllog"
	"github.com/DISIA-TECH/tool-content-backend/internal/config"
	"github.com/DISIA-TECH/tool-content-backend/internal/home"
	"github.com/DISIA-TECH/tool-content-backend/internal/ingest"
	"github.com/DISIA-TECH/tool-content-backend/internal/prompts"
	"github.com/DISIA-TECH/tool-content-backend/internal/providers"
	"github.com/DISIA-TECH/tool-content-backend/internal/server/endpoints"
	"github.com/DISIA-TECH/tool-content-backend/internal/svcctx"
)

// Server is the main toolcontent HTTP server.
type Server struct {
	httpServer *http.Server
	registry   *providers.Registry
	configMgr  *config.Manager
	provider   string
	logger     *slog.Logger

	// services holds all core services for context enrichment
	services *svcctx.Services

	// endpoints registry for HTTP routes
	endpointRegistry *api.Registry

	mu      sync.RWMutex
	running bool
}

// Config holds server configuration.
type Config struct {
	// Host is the address to bind to (default: 127.0.0.1)
	Host string
	// Port is the port to listen on (default: 8000)
	Port string
	// Home is the toolcontent home directory
	Home *home.Dir
	// ConfigManager provides configuration with hot-reload support
	ConfigManager *config.Manager
	// Logger is the structured logger to use
	Logger *slog.Logger
}

// New creates a new Server with the given configuration.
func New(cfg Config) (*Server, error) {
	if cfg.Host == "" {
		cfg.Host = "127.0.0.1"
	}
	if cfg.Port == "" {
		cfg.Port = "8000"
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.Home == nil {
		h, err := home.New("")
		if err != nil {
			return nil, fmt.Errorf("failed to resolve home directory: %w", err)
		}
		cfg.Home = h
	}

	appCfg := config.DefaultConfig()
	if cfg.ConfigManager != nil {
		appCfg = cfg.ConfigManager.Get()
	}

	// Create provider registry
	registry := providers.NewRegistry()
	registry.SetLogger(cfg.Logger)
	registry.Reload(appCfg.ToProviderRegistryConfig())

	// Watch for config changes
	if cfg.ConfigManager != nil {
		cfg.ConfigManager.OnChange(func(c *config.Config) {
			registry.Reload(c.ToProviderRegistryConfig())
			cfg.Logger.Info("provider registry reloaded from config")
		})
	}

	provider := appCfg.Defaults.Provider
	if provider == "" {
		provider = providers.OpenAIName
	}

	calls := calllog.NewStore(appCfg.CallLog.Capacity)

	agentCfg := agent.Config{
		Client:      &registryClient{registry: registry, name: provider},
		Model:       appCfg.Defaults.Model,
		Temperature: appCfg.Defaults.Temperature,
		Personas:    mergePersonas(appCfg.Personas),
		Calls:       calls,
		Logger:      cfg.Logger,
	}

	s := &Server{
		registry:  registry,
		configMgr: cfg.ConfigManager,
		provider:  provider,
		logger:    cfg.Logger,
		services: &svcctx.Services{
			Blog:      agent.NewBlogService(agentCfg, ingest.NewFetcher()),
			LinkedIn:  agent.NewLinkedInService(agentCfg),
			Registry:  registry,
			ConfigMgr: cfg.ConfigManager,
			Calls:     calls,
			Home:      cfg.Home,
			Logger:    cfg.Logger,
		},
	}

	// Create endpoint registry and register all endpoints
	s.endpointRegistry = api.NewRegistry()
	for _, ep := range endpoints.All(endpoints.Config{SwaggerSpecPath: endpoints.GetSwaggerSpecPath()}) {
		s.endpointRegistry.Register(ep)
	}

	// Set up HTTP server
	mux := http.NewServeMux()
	s.endpointRegistry.RegisterRoutes(mux, s.requireProvider)

	s.httpServer = &http.Server{
		Addr:         net.JoinHostPort(cfg.Host, cfg.Port),
		Handler:      s.withServices(mux),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 5 * time.Minute, // Generation calls are slow
		IdleTimeout:  120 * time.Second,
	}

	return s, nil
}

// Start starts the server. It blocks until the context is cancelled or an
// error occurs.
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return errors.New("server already running")
	}
	s.running = true
	s.mu.Unlock()

	if err := s.services.Home.EnsureExists(); err != nil {
		s.setNotRunning()
		return fmt.Errorf("failed to create home directory: %w", err)
	}

	if s.configMgr != nil {
		s.configMgr.WatchConfig()
	}

	// Start HTTP server in goroutine
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("starting HTTP server", "addr", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	// Wait for context cancellation or error
	select {
	case <-ctx.Done():
		s.logger.Info("shutdown signal received")
	case err := <-errCh:
		if err != nil {
			s.setNotRunning()
			return fmt.Errorf("HTTP server error: %w", err)
		}
	}

	return s.shutdown()
}

// shutdown performs graceful shutdown of the HTTP server.
func (s *Server) shutdown() error {
	s.logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		s.logger.Error("HTTP server shutdown error", "error", err)
	}

	s.setNotRunning()
	s.logger.Info("server stopped")
	return nil
}

func (s *Server) setNotRunning() {
	s.mu.Lock()
	s.running = false
	s.mu.Unlock()
}

// IsRunning returns whether the server is currently running.
func (s *Server) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.running
}

// Addr returns the server's listen address.
func (s *Server) Addr() string {
	return s.httpServer.Addr
}

// Registry returns the provider registry.
func (s *Server) Registry() *providers.Registry {
	return s.registry
}

// Handler returns the server's root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// withServices wraps a handler to enrich the request context with services.
func (s *Server) withServices(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if s.services != nil {
			ctx = svcctx.WithServices(ctx, s.services)
		}
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireProvider is middleware that ensures the default chat provider is
// registered. Returns 503 Service Unavailable until a provider is configured.
func (s *Server) requireProvider(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !s.registry.Has(s.provider) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte(`{"error":"chat provider not configured"}`))
			return
		}
		next(w, r)
	}
}

// registryClient resolves the chat client from the registry on every call,
// so provider hot-reloads apply to in-flight agents.
type registryClient struct {
	registry *providers.Registry
	name     string
}

func (c *registryClient) Invoke(ctx context.Context, req *providers.ChatRequest) (*providers.ChatResult, error) {
	client, err := c.registry.Get(c.name)
	if err != nil {
		return nil, err
	}
	return client.Invoke(ctx, req)
}

func (c *registryClient) Name() string { return c.name }

// mergePersonas fills in built-in style instructions for personas the config
// declares only a model for.
func mergePersonas(configured map[string]agent.Persona) map[string]agent.Persona {
	personas := make(map[string]agent.Persona, len(configured))
	for id, p := range configured {
		if p.Instructions == "" {
			p.Instructions = prompts.PersonaInstructions[id]
		}
		personas[id] = p
	}
	return personas
}
