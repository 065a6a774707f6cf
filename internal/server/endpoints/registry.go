package endpoints

import (
	"github.com/DISIA-TECH/tool-content-backend/internal/api"
)

// Config holds dependencies needed by some endpoints.
type Config struct {
	SwaggerSpecPath string
}

// All returns all endpoint instances.
func All(cfg Config) []api.Endpoint {
	return []api.Endpoint{
		// Health endpoints
		&HealthEndpoint{},
		&StatusEndpoint{},

		// Blog endpoints
		&GeneralInterestEndpoint{},
		&SuccessCaseEndpoint{},
		&CustomizationEndpoint{},

		// LinkedIn endpoints
		&LinkedInPostEndpoint{},
		&ListStylesEndpoint{},
		&ListPersonasEndpoint{},

		// Generation call history
		&ListGenerationsEndpoint{},

		// Export
		&ExportHTMLEndpoint{},

		// Swagger/OpenAPI endpoints
		&SwaggerEndpoint{SpecPath: cfg.SwaggerSpecPath},
		&SwaggerUIEndpoint{},
	}
}

// BlogCommands returns endpoints for blog operations.
// This groups blog-related commands under "blog" subcommand.
func BlogCommands() []api.Endpoint {
	return []api.Endpoint{
		&GeneralInterestEndpoint{},
		&SuccessCaseEndpoint{},
		&CustomizationEndpoint{},
	}
}

// LinkedInCommands returns endpoints for LinkedIn operations.
// This groups linkedin-related commands under "linkedin" subcommand.
func LinkedInCommands() []api.Endpoint {
	return []api.Endpoint{
		&LinkedInPostEndpoint{},
		&ListStylesEndpoint{},
		&ListPersonasEndpoint{},
	}
}
