// internal/config/config.go
//
// Configuration for the gridctl toolkit. Settings live in
// ~/.gridctl/config.yaml, with environment variables (optionally loaded
// from a .env file) taking precedence for credentials.

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	// GridctlDir is the per-user directory holding config and logs.
	GridctlDir = ".gridctl"

	// EnvHome overrides the location of the gridctl directory.
	EnvHome = "GRIDCTL_HOME"

	EnvAPIURL    = "GRIDCTL_API_URL"
	EnvAPIKey    = "GRIDCTL_API_KEY"
	EnvAPISecret = "GRIDCTL_API_SECRET"
	EnvNamespace = "GRIDCTL_NAMESPACE"
)

const defaultConfigYAML = `# gridctl configuration
version: 1

platform:
  # API root of the compute platform.
  url: https://portal.example.com/api
  # Application credentials. Prefer GRIDCTL_API_KEY / GRIDCTL_API_SECRET
  # (or a .env file) over storing them here.
  key: ""
  secret: ""

# Default namespace for resource listings.
namespace: default
`

// PlatformConfig holds the remote API endpoint and credentials.
type PlatformConfig struct {
	URL    string `yaml:"url"`
	Key    string `yaml:"key,omitempty"`
	Secret string `yaml:"secret,omitempty"`
}

// FileConfig models config.yaml.
type FileConfig struct {
	Version   int            `yaml:"version"`
	Platform  PlatformConfig `yaml:"platform"`
	Namespace string         `yaml:"namespace,omitempty"`
}

// Config is the resolved runtime configuration.
type Config struct {
	// Dir is the gridctl home directory (config, logs).
	Dir  string
	File FileConfig
}

// InitDir creates the gridctl directory structure and a commented default
// config file on first run.
func InitDir(dir string) error {
	for _, sub := range []string{dir, filepath.Join(dir, "logs")} {
		if err := os.MkdirAll(sub, 0o755); err != nil {
			return fmt.Errorf("config: ensure %s: %w", sub, err)
		}
	}
	return ensureConfigFile(filepath.Join(dir, "config.yaml"))
}

// New loads configuration from disk and the environment. A missing config
// file is fine; missing credentials are caught later by Validate.
func New() (*Config, error) {
	dir, err := homeDir()
	if err != nil {
		return nil, err
	}
	if err := InitDir(dir); err != nil {
		return nil, err
	}

	cfg := &Config{Dir: dir, File: defaultFileConfig()}
	if err := cfg.load(); err != nil {
		return nil, err
	}
	cfg.applyEnv()
	cfg.File.normalize()
	return cfg, nil
}

func homeDir() (string, error) {
	if dir := strings.TrimSpace(os.Getenv(EnvHome)); dir != "" {
		return filepath.Clean(dir), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: resolve home directory: %w", err)
	}
	return filepath.Join(home, GridctlDir), nil
}

// ConfigPath returns the on-disk location of config.yaml.
func (c *Config) ConfigPath() string {
	return filepath.Join(c.Dir, "config.yaml")
}

// LogsDir returns the directory holding the toolkit logbook.
func (c *Config) LogsDir() string {
	return filepath.Join(c.Dir, "logs")
}

// APIURL returns the platform API root.
func (c *Config) APIURL() string { return c.File.Platform.URL }

// Credentials returns the application key and secret.
func (c *Config) Credentials() (key, secret string) {
	return c.File.Platform.Key, c.File.Platform.Secret
}

// Namespace returns the configured default namespace.
func (c *Config) Namespace() string { return c.File.Namespace }

// Validate checks that everything a platform call needs is present.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.File.Platform.URL) == "" {
		return fmt.Errorf("config: platform.url is required (or set %s)", EnvAPIURL)
	}
	if strings.TrimSpace(c.File.Platform.Key) == "" {
		return fmt.Errorf("config: platform.key is required (or set %s)", EnvAPIKey)
	}
	if strings.TrimSpace(c.File.Platform.Secret) == "" {
		return fmt.Errorf("config: platform.secret is required (or set %s)", EnvAPISecret)
	}
	return nil
}

func (c *Config) load() error {
	path := c.ConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	var parsed FileConfig
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}
	parsed.applyDefaults()
	c.File = parsed
	return nil
}

// applyEnv overlays environment variables on top of the file values. A .env
// file in the working directory is honored first, without clobbering
// variables already exported.
func (c *Config) applyEnv() {
	_ = godotenv.Load()
	if v := strings.TrimSpace(os.Getenv(EnvAPIURL)); v != "" {
		c.File.Platform.URL = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvAPIKey)); v != "" {
		c.File.Platform.Key = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvAPISecret)); v != "" {
		c.File.Platform.Secret = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvNamespace)); v != "" {
		c.File.Namespace = v
	}
}

func defaultFileConfig() FileConfig {
	return FileConfig{Version: 1, Namespace: "default"}
}

func (fc *FileConfig) applyDefaults() {
	if fc.Version == 0 {
		fc.Version = 1
	}
	if strings.TrimSpace(fc.Namespace) == "" {
		fc.Namespace = "default"
	}
}

func (fc *FileConfig) normalize() {
	fc.Platform.URL = strings.TrimRight(strings.TrimSpace(fc.Platform.URL), "/")
	fc.Platform.Key = strings.TrimSpace(fc.Platform.Key)
	fc.Platform.Secret = strings.TrimSpace(fc.Platform.Secret)
	fc.Namespace = strings.TrimSpace(fc.Namespace)
}

func ensureConfigFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}
