package mcpsrv

import (
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/qyinm/nearby/config"
)

type Config struct {
	Port           string
	AllowedOrigins []string
	Stateless      bool
	APIKey         string
	RPS            float64
	Burst          int
	SessionTimeout time.Duration
}

func LoadConfig() Config {
	cfg := Config{
		Port:           config.String("PORT", "8080"),
		AllowedOrigins: config.CSV("NEARBY_MCP_ALLOWED_ORIGINS"),
		Stateless:      config.Bool("NEARBY_MCP_STATELESS", false),
		APIKey:         config.String("NEARBY_MCP_API_KEY", ""),
		RPS:            config.Float("NEARBY_MCP_RPS", 2),
		Burst:          config.Int("NEARBY_MCP_BURST", 5),
		SessionTimeout: config.Duration("NEARBY_MCP_SESSION_TIMEOUT", 15*time.Minute),
	}

	if cfg.RPS <= 0 {
		cfg.RPS = 2
	}
	if cfg.Burst <= 0 {
		cfg.Burst = 5
	}

	return cfg
}

func StreamableOptions(cfg Config) *mcp.StreamableHTTPOptions {
	return &mcp.StreamableHTTPOptions{
		Stateless:      cfg.Stateless,
		SessionTimeout: cfg.SessionTimeout,
	}
}
