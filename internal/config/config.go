package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Transport modes.
const (
	ModeHTTP  = "http"
	ModeStdio = "stdio"
)

// Log formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatTint = "tint"
)

// Config defines server configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Transport TransportConfig `yaml:"transport"`
	Log       LogConfig       `yaml:"log"`
	Translate TranslateConfig `yaml:"translate"`
	Summarize SummarizeConfig `yaml:"summarize"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

type TransportConfig struct {
	Mode string `yaml:"mode"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Path   string `yaml:"path"`
}

type TranslateConfig struct {
	BaseURL string `yaml:"base_url"`
}

type SummarizeConfig struct {
	Remote   RemoteConfig   `yaml:"remote"`
	OnDevice OnDeviceConfig `yaml:"ondevice"`
}

// RemoteConfig points at the hosted summarization model. An empty token
// disables the remote tier.
type RemoteConfig struct {
	URL   string `yaml:"url"`
	Token string `yaml:"token"`
}

// OnDeviceConfig points at a local Ollama server. An empty model disables
// the on-device tier.
type OnDeviceConfig struct {
	ServerURL string `yaml:"server_url"`
	Model     string `yaml:"model"`
}

// Default returns the configuration used when nothing overrides it.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8080,
		},
		Transport: TransportConfig{
			Mode: ModeHTTP,
		},
		Log: LogConfig{
			Level:  "info",
			Format: FormatText,
		},
		Translate: TranslateConfig{
			BaseURL: "https://translate.googleapis.com/translate_a/single",
		},
		Summarize: SummarizeConfig{
			Remote: RemoteConfig{
				URL: "https://api-inference.huggingface.co/models/facebook/bart-large-cnn",
			},
			OnDevice: OnDeviceConfig{
				ServerURL: "http://localhost:11434",
			},
		},
	}
}

// Load reads configuration from a .env file, an optional YAML file and
// environment variables, in that order of increasing precedence.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	cfg := Default()

	if path := os.Getenv("POLYGLOT_CONFIG_PATH"); path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	if host := os.Getenv("POLYGLOT_SERVER_HOST"); host != "" {
		cfg.Server.Host = host
	}
	if portStr := os.Getenv("POLYGLOT_SERVER_PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return fmt.Errorf("invalid POLYGLOT_SERVER_PORT: %w", err)
		}
		cfg.Server.Port = port
	}
	if mode := os.Getenv("POLYGLOT_TRANSPORT"); mode != "" {
		cfg.Transport.Mode = mode
	}
	if level := os.Getenv("POLYGLOT_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}
	if format := os.Getenv("POLYGLOT_LOG_FORMAT"); format != "" {
		cfg.Log.Format = format
	}
	if path := os.Getenv("POLYGLOT_LOG_PATH"); path != "" {
		cfg.Log.Path = path
	}
	if url := os.Getenv("POLYGLOT_TRANSLATE_URL"); url != "" {
		cfg.Translate.BaseURL = url
	}
	if url := os.Getenv("POLYGLOT_SUMMARIZER_URL"); url != "" {
		cfg.Summarize.Remote.URL = url
	}
	if token := os.Getenv("POLYGLOT_SUMMARIZER_TOKEN"); token != "" {
		cfg.Summarize.Remote.Token = token
	}
	if url := os.Getenv("POLYGLOT_ONDEVICE_URL"); url != "" {
		cfg.Summarize.OnDevice.ServerURL = url
	}
	if model := os.Getenv("POLYGLOT_ONDEVICE_MODEL"); model != "" {
		cfg.Summarize.OnDevice.Model = model
	}
	return nil
}

// Validate reports the first unusable setting.
func (c Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port %d", c.Server.Port)
	}
	switch c.Transport.Mode {
	case ModeHTTP, ModeStdio:
	default:
		return fmt.Errorf("invalid transport mode %q", c.Transport.Mode)
	}
	switch c.Log.Format {
	case FormatText, FormatJSON, FormatTint:
	default:
		return fmt.Errorf("invalid log format %q", c.Log.Format)
	}
	if c.Translate.BaseURL == "" {
		return errors.New("translate base url is required")
	}
	return nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}
