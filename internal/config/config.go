package config

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

type Config struct {
	DataDir   string `toml:"data_dir"`   // Hidden directory for the records file
	DataFile  string `toml:"data_file"`  // Relative names resolve against data_dir
	ExportDir string `toml:"export_dir"` // Directory for XLSX exports
	LogDir    string `toml:"log_dir"`
	LogLevel  string `toml:"log_level"` // debug, info, warn or error
}

func DefaultConfig() Config {
	homeDir, _ := os.UserHomeDir()
	configBase := filepath.Join(homeDir, ".config", "cbraapps")

	return Config{
		DataDir:   filepath.Join(configBase, ".cbrarecords"),
		DataFile:  "students.txt",
		ExportDir: filepath.Join(configBase, "cbrarecords", "exports"),
		LogDir:    filepath.Join(configBase, "cbrarecords", "logs"),
		LogLevel:  "info",
	}
}

func ConfigPath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".config", "cbraapps", "cbrarecords.toml")
}

func Load() (Config, error) {
	return LoadFrom(ConfigPath())
}

// LoadFrom reads the config at path. A missing file is created with the
// defaults.
func LoadFrom(path string) (Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		cfg := DefaultConfig()
		if err := SaveTo(path, cfg); err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}

	// Ensure defaults for empty fields
	defaults := DefaultConfig()
	if cfg.DataDir == "" {
		cfg.DataDir = defaults.DataDir
	}
	if cfg.DataFile == "" {
		cfg.DataFile = defaults.DataFile
	}
	if cfg.ExportDir == "" {
		cfg.ExportDir = defaults.ExportDir
	}
	if cfg.LogDir == "" {
		cfg.LogDir = defaults.LogDir
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = defaults.LogLevel
	}

	return cfg, nil
}

func Save(cfg Config) error {
	return SaveTo(ConfigPath(), cfg)
}

func SaveTo(path string, cfg Config) error {
	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

func (c Config) EnsureDirectories() error {
	dirs := []string{c.DataDir, c.ExportDir, c.LogDir}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return nil
}

// DataPath returns the records file location
func (c Config) DataPath() string {
	if filepath.IsAbs(c.DataFile) {
		return c.DataFile
	}
	return filepath.Join(c.DataDir, c.DataFile)
}

// ExportPath returns the location of an export file within export_dir
func (c Config) ExportPath(name string) string {
	return filepath.Join(c.ExportDir, name)
}
