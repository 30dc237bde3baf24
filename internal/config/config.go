package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/oshokin/httplog/internal/constants"
	"github.com/oshokin/httplog/internal/logger"
	http_transport "github.com/oshokin/httplog/internal/transport/http"
	"github.com/oshokin/httplog/internal/utils"
)

// Config holds all configuration settings.
type Config struct {
	// LogLevel specifies the application logging verbosity level.
	LogLevel string `mapstructure:"log_level" yaml:"log_level"`
	// TraceLevel specifies how much of each HTTP exchange is traced: none, basic, headers or body.
	// Empty means "derive from Debug".
	TraceLevel string `mapstructure:"trace_level" yaml:"trace_level"`
	// Debug selects the default trace level when TraceLevel is empty: body when true, none otherwise.
	Debug bool `mapstructure:"debug" yaml:"debug"`
	// Timeout is the overall timeout of a single HTTP request (e.g., "30s").
	Timeout string `mapstructure:"timeout" yaml:"timeout"`
	// UserAgent is injected into requests that do not set one.
	UserAgent string `mapstructure:"user_agent" yaml:"user_agent"`
	// ProtocolCacheSize is the number of hosts whose negotiated protocol is remembered.
	ProtocolCacheSize int `mapstructure:"protocol_cache_size" yaml:"protocol_cache_size"`
	// RedactHeaders lists headers whose values are hidden in traces.
	RedactHeaders []string `mapstructure:"redact_headers" yaml:"redact_headers"`
	// RequestIDHeader is filled with a random UUID on every request. Empty disables it.
	RequestIDHeader string `mapstructure:"request_id_header" yaml:"request_id_header"`
	// OutputPath is the directory where response bodies are saved. Empty means stdout.
	OutputPath string `mapstructure:"output_path" yaml:"output_path"`
	// ReplaceFiles indicates whether existing output files are overwritten.
	ReplaceFiles bool `mapstructure:"replace_files" yaml:"replace_files"`
	// MetricsFile is the path where request metrics are written after all requests finish.
	// Empty disables metrics.
	MetricsFile string `mapstructure:"metrics_file" yaml:"metrics_file"`
	// ParsedLogLevel is the parsed zap log level.
	ParsedLogLevel zapcore.Level `yaml:"-"`
	// ParsedTraceLevel is the parsed trace level.
	ParsedTraceLevel http_transport.Level `yaml:"-"`
	// ParsedTimeout is the parsed request timeout.
	ParsedTimeout time.Duration `yaml:"-"`
}

const (
	// DefaultConfigFilename is the default name of the configuration file.
	DefaultConfigFilename = ".httplog.yaml"

	// DefaultLogLevel is the default application log level.
	DefaultLogLevel = "info"
)

// Static error definitions for better error handling.
var (
	// ErrUnknownLogLevel indicates that the log level is not recognized.
	ErrUnknownLogLevel = errors.New("unknown log level")
	// ErrUnknownTraceLevel indicates that the trace level is not recognized.
	ErrUnknownTraceLevel = errors.New("unknown trace level")
	// ErrInvalidTimeout indicates that the request timeout is invalid.
	ErrInvalidTimeout = errors.New("timeout must be positive")
	// ErrInvalidProtocolCacheSize indicates that the protocol cache size is negative.
	ErrInvalidProtocolCacheSize = errors.New("protocol_cache_size cannot be negative")
	// ErrConfigFileExists indicates that a configuration file would be overwritten.
	ErrConfigFileExists = errors.New("configuration file already exists")
)

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		LogLevel:          DefaultLogLevel,
		Timeout:           http_transport.DefaultTimeout.String(),
		UserAgent:         http_transport.DefaultUserAgent,
		ProtocolCacheSize: http_transport.DefaultProtocolCacheSize,
		RedactHeaders:     []string{"Authorization", "Cookie", "Set-Cookie"},
		RequestIDHeader:   http_transport.DefaultRequestIDHeader,
	}
}

// LoadConfig loads configuration settings from a YAML file.
// An empty filename selects DefaultConfigFilename, which may be absent;
// an explicitly named file must exist.
func LoadConfig(configFilename string) (*Config, error) {
	isDefaultFile := configFilename == ""
	if isDefaultFile {
		configFilename = DefaultConfigFilename
	}

	defaults := DefaultConfig()

	v := viper.New()
	v.SetConfigFile(configFilename)
	v.SetConfigType("yaml")
	v.SetDefault("log_level", defaults.LogLevel)
	v.SetDefault("timeout", defaults.Timeout)
	v.SetDefault("user_agent", defaults.UserAgent)
	v.SetDefault("protocol_cache_size", defaults.ProtocolCacheSize)
	v.SetDefault("redact_headers", defaults.RedactHeaders)
	v.SetDefault("request_id_header", defaults.RequestIDHeader)

	if err := v.ReadInConfig(); err != nil {
		if !isDefaultFile || !isNotExist(err) {
			return nil, fmt.Errorf("failed to read config from file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// ValidateConfig checks the configuration for validity and sets derived fields.
func ValidateConfig(cfg *Config) error {
	parsedLogLevel, isLogLevelCorrect := logger.ParseLogLevel(cfg.LogLevel)
	if !(isLogLevelCorrect) {
		return fmt.Errorf("%w: '%s'", ErrUnknownLogLevel, cfg.LogLevel)
	}

	cfg.ParsedLogLevel = parsedLogLevel

	if strings.TrimSpace(cfg.TraceLevel) == "" {
		cfg.ParsedTraceLevel = http_transport.DefaultLevel(cfg.Debug)
	} else {
		parsedTraceLevel, err := http_transport.ParseLevel(cfg.TraceLevel)
		if err != nil {
			return fmt.Errorf("%w: '%s'", ErrUnknownTraceLevel, cfg.TraceLevel)
		}

		cfg.ParsedTraceLevel = parsedTraceLevel
	}

	if strings.TrimSpace(cfg.Timeout) == "" {
		cfg.ParsedTimeout = http_transport.DefaultTimeout
	} else {
		parsedTimeout, err := time.ParseDuration(cfg.Timeout)
		if err != nil {
			return fmt.Errorf("failed to parse timeout: %w", err)
		}

		if parsedTimeout <= 0 {
			return ErrInvalidTimeout
		}

		cfg.ParsedTimeout = parsedTimeout
	}

	if cfg.ProtocolCacheSize < 0 {
		return ErrInvalidProtocolCacheSize
	}

	if strings.TrimSpace(cfg.UserAgent) == "" {
		cfg.UserAgent = http_transport.DefaultUserAgent
	}

	return nil
}

// WriteDefaultConfig writes DefaultConfig to configFilename as YAML.
// An existing file is never overwritten.
func WriteDefaultConfig(configFilename string) error {
	if configFilename == "" {
		configFilename = DefaultConfigFilename
	}

	exists, err := utils.IsFileExist(configFilename)
	if err != nil {
		return fmt.Errorf("failed to check config file: %w", err)
	}

	if exists {
		return fmt.Errorf("%w: %s", ErrConfigFileExists, configFilename)
	}

	content, err := yaml.Marshal(DefaultConfig())
	if err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}

	if err = os.WriteFile(configFilename, content, constants.DefaultFilePermissions); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// isNotExist reports whether err means the config file is missing.
func isNotExist(err error) bool {
	var notFound viper.ConfigFileNotFoundError

	return errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist)
}
