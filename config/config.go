package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config carries everything the server needs at startup. Values come from an
// optional config.yaml, overridden by environment variables; the API key is
// environment-only so it never lands in a checked-in file.
type Config struct {
	Port           string   `yaml:"port"`
	DocumentsDir   string   `yaml:"documents_dir"`
	GeminiModel    string   `yaml:"gemini_model"`
	MaxPromptChars int      `yaml:"max_prompt_chars"`
	AllowOrigins   []string `yaml:"allow_origins"`

	GeminiAPIKey string `yaml:"-"`
}

// Load reads the yaml file at path (missing file is fine), applies env
// overrides and fills in defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	if v := os.Getenv("PORT"); v != "" {
		cfg.Port = v
	}
	if v := os.Getenv("DOCUMENTS_DIR"); v != "" {
		cfg.DocumentsDir = v
	}
	if v := os.Getenv("GEMINI_MODEL"); v != "" {
		cfg.GeminiModel = v
	}
	cfg.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")

	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.DocumentsDir == "" {
		cfg.DocumentsDir = "./documents"
	}
	if len(cfg.AllowOrigins) == 0 {
		cfg.AllowOrigins = []string{"http://localhost:5173", "http://127.0.0.1:5173"}
	}

	return cfg, nil
}
