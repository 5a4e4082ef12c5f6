package config

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

type DocsConfig struct {
	Path string `mapstructure:"path"`
}

type GenerateConfig struct {
	Command string   `mapstructure:"command"`
	Args    []string `mapstructure:"args"`
	Flags   []string `mapstructure:"flags"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type Config struct {
	Docs     DocsConfig     `mapstructure:"docs"`
	Generate GenerateConfig `mapstructure:"generate"`
	Log      LogConfig      `mapstructure:"log"`
}

// cacheBase returns the base cache directory for ferrisdoc.
// Checks XDG_CACHE_HOME, then ~/.cache, then /tmp/ferrisdoc as fallback.
func cacheBase() string {
	if dir := os.Getenv("XDG_CACHE_HOME"); dir != "" {
		return filepath.Join(dir, "ferrisdoc")
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".cache", "ferrisdoc")
	}
	return filepath.Join(os.TempDir(), "ferrisdoc")
}

// LogPath returns the path to the MCP server's log file.
func LogPath() string {
	return filepath.Join(cacheBase(), "server.log")
}

func InitializeViper() error {
	viper.SetConfigName("config")
	viper.SetConfigType("toml")

	viper.AddConfigPath(".")
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		viper.AddConfigPath(filepath.Join(xdg, "ferrisdoc"))
	} else if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(filepath.Join(home, ".config", "ferrisdoc"))
	}

	viper.SetDefault("docs.path", "target/doc")
	viper.SetDefault("generate.command", "cargo")
	viper.SetDefault("generate.args", []string{"doc"})
	viper.SetDefault("generate.flags", []string{})
	viper.SetDefault("log.level", "info")

	viper.SetEnvPrefix("FERRISDOC")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}
	return nil
}

// stringToFieldsHookFunc lets list settings such as generate.flags be given
// as one whitespace-separated string, which is how they arrive from the
// environment.
func stringToFieldsHookFunc() mapstructure.DecodeHookFunc {
	return func(f, t reflect.Type, data interface{}) (interface{}, error) {
		if f.Kind() != reflect.String || t != reflect.TypeOf([]string{}) {
			return data, nil
		}
		return strings.Fields(data.(string)), nil
	}
}

func Load() (*Config, error) {
	if err := InitializeViper(); err != nil {
		return nil, err
	}
	return decode(viper.AllSettings())
}

func decode(settings map[string]interface{}) (*Config, error) {
	var config Config
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: stringToFieldsHookFunc(),
		Result:     &config,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create decoder: %w", err)
	}

	if err := decoder.Decode(settings); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if config.Docs.Path == "" {
		return nil, fmt.Errorf("docs.path must not be empty")
	}
	if config.Generate.Command == "" {
		return nil, fmt.Errorf("generate.command must not be empty")
	}

	return &config, nil
}
