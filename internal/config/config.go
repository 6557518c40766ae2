package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config represents the application configuration. The user key lives here,
// outside the client library: the library never searches for credentials
// itself.
type Config struct {
	API struct {
		UserKey string `koanf:"user_key"`
		BaseURL string `koanf:"base_url"`
	} `koanf:"api"`

	Log struct {
		Level string `koanf:"level"`
	} `koanf:"log"`
}

// legacyKeyFiles are home-directory files older tooling stored the user key
// in, checked as a last resort.
var legacyKeyFiles = []string{".disqus", ".disqus_key", ".disqus_user_api_key"}

// LoadConfig loads the configuration: defaults, then a TOML file, then
// DISQUS_* environment variables. If no user key is configured anywhere, the
// legacy key files are consulted.
func LoadConfig(configPath string) (*Config, error) {
	var k = koanf.New(".")

	// Set up default configuration
	k.Load(confmap.Provider(map[string]interface{}{
		"api.base_url": "http://disqus.com/api",
		"log.level":    "info",
	}, "."), nil)

	// Load from TOML file if it exists
	if configPath != "" {
		if err := k.Load(file.Provider(configPath), toml.Parser()); err != nil {
			return nil, fmt.Errorf("error loading config: %w", err)
		}
	} else {
		defaultPaths := []string{"./disqussion.toml", "$HOME/.disqussion.toml"}
		for _, path := range defaultPaths {
			path = os.ExpandEnv(path)
			if _, err := os.Stat(path); err == nil {
				if err := k.Load(file.Provider(path), toml.Parser()); err == nil {
					break
				}
			}
		}
	}

	// Load from environment variables with prefix DISQUS_
	k.Load(env.Provider("DISQUS_", ".", func(s string) string {
		return strings.Replace(strings.ToLower(strings.TrimPrefix(s, "DISQUS_")), "_", ".", 1)
	}), nil)

	var config Config
	if err := k.Unmarshal("", &config); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	if config.API.UserKey == "" {
		config.API.UserKey = DiscoverUserKey()
	}

	return &config, nil
}

// DiscoverUserKey reads the user key from the legacy home-directory files.
// Returns an empty string when none exists.
func DiscoverUserKey() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	for _, name := range legacyKeyFiles {
		data, err := os.ReadFile(filepath.Join(home, name))
		if err != nil {
			continue
		}
		if key := strings.TrimSpace(string(data)); key != "" {
			return key
		}
	}
	return ""
}

// InitConfig initializes a new configuration file
func InitConfig(configPath string) error {
	if _, err := os.Stat(configPath); err == nil {
		return fmt.Errorf("configuration file already exists at %s", configPath)
	}

	sampleConfig := `# Disqussion Configuration

[api]
user_key = "your-user-api-key"
base_url = "http://disqus.com/api"

[log]
level = "info"
`

	return os.WriteFile(configPath, []byte(sampleConfig), 0644)
}

// Validate validates the configuration
func Validate(config *Config) error {
	if config.API.UserKey == "" {
		return fmt.Errorf("api user_key is required (set it in the config file, DISQUS_API_USER_KEY, or ~/.disqus)")
	}
	if config.API.BaseURL == "" {
		return fmt.Errorf("api base_url is required")
	}
	return nil
}
