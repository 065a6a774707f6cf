package config

import "github.com/DISIA-TECH/tool-content-backend/internal/agent"

// Config holds toolcontent configuration.
// Stored at: ~/.toolcontent/config.yaml
type Config struct {
	ChatProviders map[string]ChatProviderCfg `mapstructure:"chat_providers" yaml:"chat_providers"`
	Defaults      DefaultsCfg                `mapstructure:"defaults" yaml:"defaults"`
	Personas      map[string]agent.Persona   `mapstructure:"personas" yaml:"personas"`
	Server        ServerCfg                  `mapstructure:"server" yaml:"server"`
	CallLog       CallLogCfg                 `mapstructure:"call_log" yaml:"call_log"`
}

// ChatProviderCfg configures a chat provider.
type ChatProviderCfg struct {
	Type    string `mapstructure:"type" yaml:"type"`       // "openai"
	Model   string `mapstructure:"model" yaml:"model"`     // Default model id
	APIKey  string `mapstructure:"api_key" yaml:"api_key"` // API key (supports ${ENV_VAR} syntax)
	Enabled bool   `mapstructure:"enabled" yaml:"enabled"`
}

// DefaultsCfg specifies the default generation settings.
type DefaultsCfg struct {
	Provider    string  `mapstructure:"provider" yaml:"provider"`       // Default chat provider
	Model       string  `mapstructure:"model" yaml:"model"`             // Default model id
	Temperature float64 `mapstructure:"temperature" yaml:"temperature"` // Default sampling temperature
}

// ServerCfg holds HTTP server settings.
type ServerCfg struct {
	Addr string `mapstructure:"addr" yaml:"addr"`
}

// CallLogCfg holds generation call log settings.
type CallLogCfg struct {
	Capacity int `mapstructure:"capacity" yaml:"capacity"`
}

// DefaultConfig returns configuration with sensible defaults, including
// the two built-in personas and their fine-tuned models.
func DefaultConfig() *Config {
	return &Config{
		ChatProviders: map[string]ChatProviderCfg{
			"openai": {
				Type:    "openai",
				Model:   "gpt-4",
				APIKey:  "${OPENAI_API_KEY}",
				Enabled: true,
			},
		},
		Defaults: DefaultsCfg{
			Provider:    "openai",
			Model:       "gpt-4",
			Temperature: 0.7,
		},
		Personas: map[string]agent.Persona{
			"pablo": {Model: "ft:gpt-4o-pablo-linkedin-20250320"},
			"aitor": {Model: "ft:gpt-4o-aitor-linkedin-20250325"},
		},
		Server: ServerCfg{
			Addr: ":8000",
		},
		CallLog: CallLogCfg{
			Capacity: 256,
		},
	}
}

// GetChatProvider returns a chat provider config by name.
func (c *Config) GetChatProvider(name string) (ChatProviderCfg, bool) {
	cfg, ok := c.ChatProviders[name]
	return cfg, ok
}

// EnabledChatProviders returns all enabled chat providers.
func (c *Config) EnabledChatProviders() map[string]ChatProviderCfg {
	result := make(map[string]ChatProviderCfg)
	for name, cfg := range c.ChatProviders {
		if cfg.Enabled {
			result[name] = cfg
		}
	}
	return result
}
