package config

import (
	"os"

	"projectpad/internal/client/session"
)

// Config for the CLI client: where the server lives and where the session
// file sits. Env vars override the defaults.
type Config struct {
	ServerURL   string
	SessionPath string
}

func Load() (*Config, error) {
	sessionPath, err := session.DefaultPath()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		ServerURL:   "http://localhost:5000",
		SessionPath: sessionPath,
	}

	if v, ok := os.LookupEnv("PROJECTPAD_SERVER"); ok && v != "" {
		cfg.ServerURL = v
	}
	if v, ok := os.LookupEnv("PROJECTPAD_SESSION_FILE"); ok && v != "" {
		cfg.SessionPath = v
	}
	return cfg, nil
}
