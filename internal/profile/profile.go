package profile

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// Profile is the configuration to start the main server.
type Profile struct {
	// Mode can be "prod" or "dev"
	Mode string
	// Addr is the binding address for server
	Addr string
	// Port is the binding port for server
	Port int
	// Data is the directory holding the events file
	Data string
	// Version is the current version of server
	Version string

	// AI configuration for the LLM inference fallback
	AIEnabled bool   // NHACVIEC_AI_ENABLED
	AIAPIKey  string // NHACVIEC_AI_API_KEY
	AIBaseURL string // NHACVIEC_AI_BASE_URL (default: https://api.openai.com/v1)
	AIModel   string // NHACVIEC_AI_MODEL (default: gpt-4o-mini)
}

func (p *Profile) IsDev() bool {
	return p.Mode != "prod"
}

// IsAIEnabled returns true if the LLM fallback is enabled and configured.
func (p *Profile) IsAIEnabled() bool {
	return p.AIEnabled && p.AIAPIKey != ""
}

// EventsFile returns the path of the JSON events file.
func (p *Profile) EventsFile() string {
	return filepath.Join(p.Data, "events.json")
}

// getEnvOrDefault returns the environment variable value or the default value.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// FromEnv loads configuration from environment variables.
func (p *Profile) FromEnv() {
	p.AIEnabled = os.Getenv("NHACVIEC_AI_ENABLED") == "true"
	p.AIAPIKey = os.Getenv("NHACVIEC_AI_API_KEY")
	p.AIBaseURL = getEnvOrDefault("NHACVIEC_AI_BASE_URL", "https://api.openai.com/v1")
	p.AIModel = getEnvOrDefault("NHACVIEC_AI_MODEL", "gpt-4o-mini")
}

// Validate checks the profile and prepares the data directory.
func (p *Profile) Validate() error {
	if p.Mode != "prod" && p.Mode != "dev" {
		p.Mode = "dev"
	}
	if p.Data == "" {
		p.Data = "data"
	}

	dataDir, err := filepath.Abs(p.Data)
	if err != nil {
		return errors.Wrapf(err, "unable to resolve data directory %q", p.Data)
	}
	if err := os.MkdirAll(dataDir, 0o750); err != nil {
		return errors.Wrapf(err, "unable to create data directory %q", dataDir)
	}
	p.Data = dataDir

	return nil
}

func (p *Profile) String() string {
	return fmt.Sprintf("mode=%s addr=%s port=%d data=%s ai=%t", p.Mode, p.Addr, p.Port, p.Data, p.IsAIEnabled())
}
