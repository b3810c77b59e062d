package config

import (
	"errors"
	"os"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

const defaultServerURL = "http://127.0.0.1:8787"

const (
	defaultSearchDebounceMS = 350
	defaultSearchMinLength  = 2
)

// Base URL resolution order: EnvServerURL, then EnvServerURLFallback, then the
// config file's server.url, then defaultServerURL.
const (
	EnvServerURL         = "NOTED_API_URL"
	EnvServerURLFallback = "NOTES_API_URL"
)

type Config struct {
	Server  ServerConfig  `toml:"server"`
	Search  SearchConfig  `toml:"search"`
	Logging LoggingConfig `toml:"logging"`
}

type ServerConfig struct {
	URL string `toml:"url"`
}

type SearchConfig struct {
	DebounceMS int `toml:"debounce_ms"`
	MinLength  int `toml:"min_length"`
}

type LoggingConfig struct {
	Level string `toml:"level"`
}

func Default() Config {
	return Config{
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

func Load() (Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return Config{}, err
	}
	return loadFromPath(path)
}

// ServerBaseURL resolves the backend base URL, with trailing slashes stripped.
func (c Config) ServerBaseURL() string {
	candidates := []string{
		os.Getenv(EnvServerURL),
		os.Getenv(EnvServerURLFallback),
		c.Server.URL,
	}
	for _, raw := range candidates {
		if url := strings.TrimRight(strings.TrimSpace(raw), "/"); url != "" {
			return url
		}
	}
	return defaultServerURL
}

func (c Config) SearchDebounce() time.Duration {
	ms := c.Search.DebounceMS
	if ms <= 0 {
		ms = defaultSearchDebounceMS
	}
	return time.Duration(ms) * time.Millisecond
}

func (c Config) SearchMinLength() int {
	if c.Search.MinLength <= 0 {
		return defaultSearchMinLength
	}
	return c.Search.MinLength
}

func (c Config) LogLevel() string {
	level := strings.TrimSpace(c.Logging.Level)
	if level == "" {
		return "info"
	}
	return level
}

func loadFromPath(path string) (Config, error) {
	cfg := Default()
	if err := readTOML(path, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func readTOML(path string, out any) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return errors.New("path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil
	}
	return toml.Unmarshal(data, out)
}
