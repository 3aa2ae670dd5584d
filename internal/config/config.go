package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Default vedur.is endpoints.
const (
	DefaultVedurBaseURL = "https://xmlweather.vedur.is"
	DefaultAlertFeedURL = "https://api.vedur.is/cap/v1/capbroker/active/feed/met"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	StationID     string
	StationName   string
	AlertLanguage string

	ForecastURL    string
	ObservationURL string
	AlertFeedURL   string

	PollInterval    time.Duration
	RequestTimeout  time.Duration
	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration

	// Optional snapshot publishing.
	KafkaBrokers []string
	KafkaTopic   string
	KafkaEnabled bool
}

// Load reads configuration from the environment, applying defaults where
// unset. A .env file in the working directory is merged in first, without
// overriding variables already set.
func Load() (*Config, error) {
	_ = godotenv.Load()

	stationID := os.Getenv("STATION_ID")
	if stationID == "" {
		return nil, errors.New("STATION_ID is required")
	}

	alertLanguage := envOrDefault("ALERT_LANGUAGE", "is")
	if len(alertLanguage) != 2 {
		return nil, fmt.Errorf("invalid ALERT_LANGUAGE %q: want a two-letter code", alertLanguage)
	}

	pollInterval, err := parseDuration("POLL_INTERVAL", "10m")
	if err != nil {
		return nil, err
	}
	requestTimeout, err := parseDuration("REQUEST_TIMEOUT", "15s")
	if err != nil {
		return nil, err
	}
	shutdownTimeout, err := parseDuration("SHUTDOWN_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}

	baseURL := strings.TrimRight(envOrDefault("VEDUR_BASE_URL", DefaultVedurBaseURL), "/")

	brokers := parseBrokers(os.Getenv("KAFKA_BROKERS"))
	kafkaEnabled := len(brokers) > 0
	if v := os.Getenv("KAFKA_ENABLED"); v != "" {
		kafkaEnabled = v == "true"
	}
	if kafkaEnabled && len(brokers) == 0 {
		return nil, errors.New("KAFKA_ENABLED is true but KAFKA_BROKERS is not set")
	}

	cfg := &Config{
		StationID:     stationID,
		StationName:   envOrDefault("STATION_NAME", "Station "+stationID),
		AlertLanguage: strings.ToLower(alertLanguage),

		ForecastURL:    FeedURL(baseURL, "forec", stationID),
		ObservationURL: FeedURL(baseURL, "obs", stationID),
		AlertFeedURL:   envOrDefault("ALERT_FEED_URL", DefaultAlertFeedURL),

		PollInterval:    pollInterval,
		RequestTimeout:  requestTimeout,
		HTTPAddr:        envOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:        envOrDefault("LOG_LEVEL", "info"),
		LogFormat:       envOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout: shutdownTimeout,

		KafkaBrokers: brokers,
		KafkaTopic:   envOrDefault("KAFKA_TOPIC", "weather-snapshots"),
		KafkaEnabled: kafkaEnabled,
	}

	return cfg, nil
}

// FeedURL builds an xmlweather.vedur.is query URL for one feed type.
func FeedURL(baseURL, feedType, stationID string) string {
	params := url.Values{
		"op_w": {"xml"},
		"type": {feedType},
		"lang": {"en"},
		"view": {"xml"},
		"ids":  {stationID},
	}
	return baseURL + "/?" + params.Encode()
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseDuration(key, fallback string) (time.Duration, error) {
	s := envOrDefault(key, fallback)
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("invalid %s %q", key, s)
	}
	return d, nil
}

func parseBrokers(s string) []string {
	if s == "" {
		return nil
	}
	var brokers []string
	for _, b := range strings.Split(s, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}
