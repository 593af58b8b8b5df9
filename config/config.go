package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	Port      int
	UserAgent string

	LogLevel  log.Level
	LogFormat LogFormat
}

type LogFormat string

const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

const (
	DefaultPort = 5173
	// A common desktop browser; the video site serves the hydrated page to browsers only
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/131.0.0.0 Safari/537.36"
)

type EnvfileKey string

const (
	// Port the API server listens on
	EnvfileKeyPort = "PORT"
	// User-Agent sent when fetching video pages
	EnvfileKeyUserAgent = "USER_AGENT"

	// Log level (e.g. "debug", "info", "warn", "error")
	EnvfileKeyLogLevel = "LOG_LEVEL"
	// Log output format (e.g. "text", "json")
	EnvfileKeyLogFormat = "LOG_FORMAT"
)

// FromEnvfile reads configuration from the process environment, falling back to a .env
// file in the working directory. Unlike a deployed bot, every key here has a default, so
// a missing .env is fine.
func FromEnvfile() Config {
	viper.AddConfigPath(".")
	viper.SetConfigName(".env")
	viper.SetConfigType("dotenv")

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || os.IsNotExist(err) {
			log.Debug("no .env file found, using environment only")
		} else {
			log.Fatalf("error reading config: %v", err)
		}
	}

	port := getConfigInt(EnvfileKeyPort)
	if port <= 0 {
		port = DefaultPort
	}

	userAgent := getConfigString(EnvfileKeyUserAgent)
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}

	logLevel := log.InfoLevel
	if raw := getConfigString(EnvfileKeyLogLevel); raw != "" {
		parsed, err := log.ParseLevel(raw)
		if err != nil {
			// Default to info level but log a warning
			log.Warnf("unable to parse log level: %v", err)
		} else {
			logLevel = parsed
		}
	}

	var logFormat LogFormat = LogFormatText
	if raw := getConfigString(EnvfileKeyLogFormat); raw != "" {
		parsed, err := parseLogFormat(raw)
		if err != nil {
			// Default to text formatter but log a warning
			log.Warnf("unable to parse log format: %v", err)
		} else {
			logFormat = parsed
		}
	}

	return Config{
		Port:      port,
		UserAgent: userAgent,
		LogLevel:  logLevel,
		LogFormat: logFormat,
	}
}

// ConfigureLogging applies the level and formatter to the global logger.
func (c Config) ConfigureLogging() {
	log.SetLevel(c.LogLevel)
	switch c.LogFormat {
	case LogFormatJSON:
		log.SetFormatter(&log.JSONFormatter{})
	default:
		log.SetFormatter(&log.TextFormatter{})
	}
}

func parseLogFormat(raw string) (LogFormat, error) {
	switch strings.ToLower(raw) {
	case LogFormatJSON:
		return LogFormatJSON, nil
	case LogFormatText:
		return LogFormatText, nil
	default:
		return "", fmt.Errorf("unidentified log format: %s", raw)
	}
}

// Gets a config value as a string from env vars or a .env file
func getConfigString(key string) string {
	value := os.Getenv(key)
	if value == "" {
		value = viper.GetString(key)
	}
	return value
}

// Gets a config value as an int from env vars or a .env file
func getConfigInt(key string) int {
	envVarValue := os.Getenv(key)
	if envVarValue == "" {
		return viper.GetInt(key)
	}
	value, err := strconv.Atoi(envVarValue)
	if err != nil {
		return 0
	}
	return value
}
