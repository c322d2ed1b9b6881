package cmd

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config remembers the last used database path, so `dictcc haus` works
// without repeating --database on every invocation.
type Config struct {
	LastDatabasePath string `yaml:"last_database_path"`
}

func configFilename() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "dictcc", "config.yaml"), nil
}

func loadConfig() (Config, bool, error) {
	var config Config

	filename, err := configFilename()
	if err != nil {
		return Config{}, false, err
	}
	raw, err := os.ReadFile(filename)
	if os.IsNotExist(err) {
		return Config{}, false, nil
	}
	if err != nil {
		return Config{}, false, err
	}
	if err := yaml.Unmarshal(raw, &config); err != nil {
		return Config{}, false, err
	}
	return config, true, nil
}

func (c Config) write() error {
	filename, err := configFilename()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(filename), 0o755); err != nil {
		return err
	}
	raw, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, raw, 0o644)
}

// resolveDatabasePath returns the database path to use: an explicitly given
// path wins and is remembered; otherwise the remembered one is used.
func resolveDatabasePath(flagValue string) (string, error) {
	config, found, err := loadConfig()
	if err != nil {
		return "", err
	}

	if flagValue != "" {
		abs, err := filepath.Abs(flagValue)
		if err != nil {
			return "", err
		}
		config.LastDatabasePath = abs
		if err := config.write(); err != nil {
			return "", err
		}
		return abs, nil
	}

	if !found || config.LastDatabasePath == "" {
		return "", errors.New("no database path was specified as an option or in previous usage")
	}
	return config.LastDatabasePath, nil
}
