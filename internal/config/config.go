// Package config resolves CLI configuration from defaults, an optional
// clinix.yaml file and environment variables, in increasing precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ConfigFilename is looked up in the working directory.
const ConfigFilename = "clinix.yaml"

// Config is the resolved CLI configuration.
type Config struct {
	StateDir  string `yaml:"state_dir"`  // directory holding the state document
	StateFile string `yaml:"state_file"` // override of the state file name
	Location  string `yaml:"location"`   // default location stamped on new appointments
}

func defaults() Config {
	dir := "."
	if home, err := os.UserHomeDir(); err == nil {
		dir = filepath.Join(home, ".clinix")
	}
	return Config{
		StateDir: dir,
		Location: "Clinix Central",
	}
}

// Load resolves the configuration. A .env file in the working directory is
// honored if present.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := defaults()

	data, err := os.ReadFile(ConfigFilename)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("invalid %s: %w", ConfigFilename, err)
		}
	case !errors.Is(err, fs.ErrNotExist):
		return Config{}, fmt.Errorf("failed to read %s: %w", ConfigFilename, err)
	}

	if v := os.Getenv("CLINIX_STATE_DIR"); v != "" {
		cfg.StateDir = v
	}
	if v := os.Getenv("CLINIX_STATE_FILE"); v != "" {
		cfg.StateFile = v
	}
	if v := os.Getenv("CLINIX_LOCATION"); v != "" {
		cfg.Location = v
	}

	return cfg, nil
}
