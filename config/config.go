package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Movi Operations Console specifics
	Transit   TransitConfig
	Assistant AssistantConfig
	Ops       OpsConfig
	Speech    SpeechConfig
	RateLimit RateLimitConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// TransitConfig points at the transport backend consumed by the dispatcher
// and the dashboard reads.
type TransitConfig struct {
	URL     string
	Timeout time.Duration
}

// AssistantConfig tunes the conversation session store and dispatch path.
type AssistantConfig struct {
	SessionTTL      time.Duration
	SessionCap      int
	DispatchTimeout time.Duration
}

// OpsConfig tunes the dashboard read snapshot cache.
type OpsConfig struct {
	CacheTTL time.Duration
}

// SpeechConfig configures the text-to-speech collaborator. Speech is optional:
// when CredentialsPath is empty the assistant runs silent.
type SpeechConfig struct {
	Enabled         bool
	CredentialsPath string
	Language        string
	Voice           string
}

type RateLimitConfig struct {
	PerMin int
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Transit backend
	cfg.Transit.URL = viper.GetString("transit.url")
	cfg.Transit.Timeout = viper.GetDuration("transit.timeout")
	if transitURL := viper.GetString("transit_url"); transitURL != "" {
		cfg.Transit.URL = transitURL
	}
	if cfg.Transit.URL == "" {
		return nil, fmt.Errorf("transit.url is required - set the transport backend base URL in config.yaml")
	}

	// Assistant
	cfg.Assistant.SessionTTL = viper.GetDuration("assistant.session_ttl")
	cfg.Assistant.SessionCap = viper.GetInt("assistant.session_cap")
	cfg.Assistant.DispatchTimeout = viper.GetDuration("assistant.dispatch_timeout")

	// Ops dashboard reads
	cfg.Ops.CacheTTL = viper.GetDuration("ops.cache_ttl")

	// Speech
	cfg.Speech.Enabled = viper.GetBool("speech.enabled")
	cfg.Speech.CredentialsPath = viper.GetString("speech.credentials_path")
	cfg.Speech.Language = viper.GetString("speech.language")
	cfg.Speech.Voice = viper.GetString("speech.voice")
	if speechCreds := viper.GetString("speech_credentials"); speechCreds != "" {
		cfg.Speech.CredentialsPath = speechCreds
	}

	// Rate limiting
	cfg.RateLimit.PerMin = viper.GetInt("rate_limit.per_min")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("transit.timeout", "10s")
	viper.SetDefault("assistant.session_ttl", "30m")
	viper.SetDefault("assistant.session_cap", 1000)
	viper.SetDefault("assistant.dispatch_timeout", "30s")
	viper.SetDefault("ops.cache_ttl", "5m")
	viper.SetDefault("speech.enabled", false)
	viper.SetDefault("speech.language", "en-IN")
	viper.SetDefault("rate_limit.per_min", 120)
}
