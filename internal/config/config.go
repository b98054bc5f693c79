// Package config loads the configuration from environment variables
// and an optional configuration file.
package config

import (
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

var (
	ErrInvalidAPIURL    = errors.New("API_URL must be an absolute URL")
	ErrInvalidGinMode   = errors.New("GIN_MODE must be one of debug, release, test")
	ErrInvalidLogFormat = errors.New("LOG_FORMAT must be one of human, json")
	ErrInvalidLogLevel  = errors.New("LOG_LEVEL is not a valid log level")
	ErrInvalidPort      = errors.New("PORT must be between 1 and 65535")
)

// Config is the configuration of the application.
type Config struct {
	APIURL           *url.URL
	Port             int
	GinMode          string
	LogFormat        string
	LogLevel         zerolog.Level
	CORSAllowOrigins []string
	EnablePprof      bool
}

// Debug reports whether gin runs in debug mode.
func (c Config) Debug() bool {
	return c.GinMode == gin.DebugMode
}

// New returns a viper instance with all defaults set that reads
// the environment variables.
func New() *viper.Viper {
	v := viper.New()

	v.SetDefault("api_url", "http://localhost:8080")
	v.SetDefault("port", 8080)

	// gin uses debug as the default mode, we use release for
	// security reasons
	v.SetDefault("gin_mode", gin.ReleaseMode)
	v.SetDefault("log_format", "")
	v.SetDefault("log_level", "")
	v.SetDefault("cors_allow_origins", "")
	v.SetDefault("enable_pprof", false)

	// Environment variables have the same name as the keys,
	// but uppercase: api_url is read from API_URL
	v.AutomaticEnv()

	return v
}

// ReadFile reads the configuration file at path into v.
// An empty path is ignored.
func ReadFile(v *viper.Viper, path string) error {
	if path == "" {
		return nil
	}

	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return nil
}

// Load parses and validates the configuration in v.
func Load(v *viper.Viper) (Config, error) {
	apiURL, err := url.Parse(v.GetString("api_url"))
	if err != nil || !apiURL.IsAbs() {
		return Config{}, fmt.Errorf("%w: %q", ErrInvalidAPIURL, v.GetString("api_url"))
	}

	// Links are built by appending to the URL
	apiURL.Path = strings.TrimSuffix(apiURL.Path, "/")

	port := v.GetInt("port")
	if port < 1 || port > 65535 {
		return Config{}, fmt.Errorf("%w: %d", ErrInvalidPort, port)
	}

	ginMode := v.GetString("gin_mode")
	switch ginMode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
	default:
		return Config{}, fmt.Errorf("%w: %q", ErrInvalidGinMode, ginMode)
	}

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	logFormat := v.GetString("log_format")
	switch logFormat {
	case "human", "json":
	case "":
		logFormat = "json"
		if ginMode == gin.DebugMode {
			logFormat = "human"
		}
	default:
		return Config{}, fmt.Errorf("%w: %q", ErrInvalidLogFormat, logFormat)
	}

	logLevel := zerolog.InfoLevel
	if ginMode == gin.DebugMode {
		logLevel = zerolog.DebugLevel
	}

	if l := v.GetString("log_level"); l != "" {
		logLevel, err = zerolog.ParseLevel(l)
		if err != nil {
			return Config{}, fmt.Errorf("%w: %q", ErrInvalidLogLevel, l)
		}
	}

	return Config{
		APIURL:           apiURL,
		Port:             port,
		GinMode:          ginMode,
		LogFormat:        logFormat,
		LogLevel:         logLevel,
		CORSAllowOrigins: strings.Fields(v.GetString("cors_allow_origins")),
		EnablePprof:      v.GetBool("enable_pprof"),
	}, nil
}

// SetupLogging configures gin and the global logger.
func SetupLogging(c Config) {
	gin.SetMode(c.GinMode)

	output := io.Writer(os.Stdout)
	if c.LogFormat == "human" {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(c.LogLevel)
	log.Logger = log.Output(output).With().Timestamp().Logger()
}
