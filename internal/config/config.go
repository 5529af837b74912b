package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/funhouse-atelier/vuegen/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Recognized keys.
const (
	KeyRoot     = "root"
	KeyLogLevel = "log_level"
	KeyColor    = "color"
	KeyForce    = "force"
)

// Keys lists every recognized key in display order.
var Keys = []string{KeyRoot, KeyLogLevel, KeyColor, KeyForce}

// Settings is a typed snapshot of the loaded configuration.
type Settings struct {
	Root     string
	LogLevel string
	Color    string
	Force    bool
}

// Dir returns the path to the config directory (~/.vuegen/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.vuegen/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	viper.SetDefault(KeyRoot, ".")
	viper.SetDefault(KeyLogLevel, "warn")
	viper.SetDefault(KeyColor, "auto")
	viper.SetDefault(KeyForce, false)

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Current returns the loaded settings.
func Current() Settings {
	return Settings{
		Root:     viper.GetString(KeyRoot),
		LogLevel: viper.GetString(KeyLogLevel),
		Color:    viper.GetString(KeyColor),
		Force:    viper.GetBool(KeyForce),
	}
}

// IsKnown reports whether key is a recognized setting.
func IsKnown(key string) bool {
	for _, k := range Keys {
		if k == key {
			return true
		}
	}
	return false
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if !IsKnown(key) {
		return fmt.Errorf("unknown key %q (known keys: %s)", key, strings.Join(Keys, ", "))
	}
	if err := validate(key, value); err != nil {
		return err
	}
	if err := EnsureDir(); err != nil {
		return err
	}

	if key == KeyForce {
		viper.Set(key, value == "true")
	} else {
		viper.Set(key, value)
	}

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

func validate(key, value string) error {
	switch key {
	case KeyColor:
		switch value {
		case "auto", "always", "never":
			return nil
		}
		return fmt.Errorf("color must be auto, always or never, got %q", value)
	case KeyLogLevel:
		switch value {
		case "debug", "info", "warn", "error":
			return nil
		}
		return fmt.Errorf("log_level must be debug, info, warn or error, got %q", value)
	case KeyForce:
		if value != "true" && value != "false" {
			return fmt.Errorf("force must be true or false, got %q", value)
		}
	}
	return nil
}
