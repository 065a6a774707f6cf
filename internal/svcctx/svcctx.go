// Package svcctx provides service context for dependency injection via context.
// This package is separate from server to avoid import cycles with endpoints.
package svcctx

import (
	"context"
	"log/slog"

	"github.com/DISIA-TECH/tool-content-backend/internal/agent"
	"github.com/DISIA-TECH/tool-content-backend/internal/calllog"
	"github.com/DISIA-TECH/tool-content-backend/internal/config"
	"github.com/DISIA-TECH/tool-content-backend/internal/home"
	"github.com/DISIA-TECH/tool-content-backend/internal/providers"
)

// Services holds all core services that flow through context.
// Components extract what they need via the individual extractors.
type Services struct {
	Blog      *agent.BlogService
	LinkedIn  *agent.LinkedInService
	Registry  *providers.Registry
	ConfigMgr *config.Manager
	Calls     *calllog.Store
	Home      *home.Dir
	Logger    *slog.Logger
}

type servicesKey struct{}

// WithServices returns a new context with services attached.
func WithServices(ctx context.Context, s *Services) context.Context {
	return context.WithValue(ctx, servicesKey{}, s)
}

// ServicesFrom extracts the full Services struct from context.
// Returns nil if not present.
func ServicesFrom(ctx context.Context) *Services {
	s, _ := ctx.Value(servicesKey{}).(*Services)
	return s
}

// BlogFrom extracts the blog generation service from context.
func BlogFrom(ctx context.Context) *agent.BlogService {
	if s := ServicesFrom(ctx); s != nil {
		return s.Blog
	}
	return nil
}

// LinkedInFrom extracts the LinkedIn generation service from context.
func LinkedInFrom(ctx context.Context) *agent.LinkedInService {
	if s := ServicesFrom(ctx); s != nil {
		return s.LinkedIn
	}
	return nil
}

// RegistryFrom extracts the provider registry from context.
func RegistryFrom(ctx context.Context) *providers.Registry {
	if s := ServicesFrom(ctx); s != nil {
		return s.Registry
	}
	return nil
}

// ConfigMgrFrom extracts the config manager from context.
func ConfigMgrFrom(ctx context.Context) *config.Manager {
	if s := ServicesFrom(ctx); s != nil {
		return s.ConfigMgr
	}
	return nil
}

// CallsFrom extracts the generation call store from context.
func CallsFrom(ctx context.Context) *calllog.Store {
	if s := ServicesFrom(ctx); s != nil {
		return s.Calls
	}
	return nil
}

// HomeFrom extracts the home directory from context.
func HomeFrom(ctx context.Context) *home.Dir {
	if s := ServicesFrom(ctx); s != nil {
		return s.Home
	}
	return nil
}

// LoggerFrom extracts the logger from context.
func LoggerFrom(ctx context.Context) *slog.Logger {
	if s := ServicesFrom(ctx); s != nil {
		return s.Logger
	}
	return nil
}
