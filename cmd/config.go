package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"time"

	"foodjourney/internal/core/application/usecases/commands"
	"foodjourney/internal/jobs"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort                 string
	LogLevel                 slog.Level
	RegionFile               string
	CompletionDelay          time.Duration
	StatsSpec                string
	KafkaBrokers             []string
	KafkaJourneyChangedTopic string
}

// KafkaEnabled reports whether journey changes are published to Kafka.
func (c Config) KafkaEnabled() bool {
	return len(c.KafkaBrokers) > 0 && c.KafkaJourneyChangedTopic != ""
}

// LoadConfig reads the environment, after loading .env files when they exist.
// Missing variables fall back to defaults.
func LoadConfig(envFiles ...string) (Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load env file: %w", err)
	}

	config := Config{
		HTTPPort:                 getEnv("HTTP_PORT", "8080"),
		RegionFile:               getEnv("REGION_FILE", ""),
		StatsSpec:                getEnv("STATS_SPEC", jobs.DefaultStatsSpec),
		KafkaBrokers:             splitList(getEnv("KAFKA_HOST", "")),
		KafkaJourneyChangedTopic: getEnv("KAFKA_JOURNEY_CHANGED_TOPIC", ""),
	}

	delay, err := time.ParseDuration(getEnv("COMPLETION_DELAY", commands.DefaultCompletionDelay.String()))
	if err != nil {
		return Config{}, fmt.Errorf("COMPLETION_DELAY: %w", err)
	}
	if delay <= 0 {
		return Config{}, fmt.Errorf("COMPLETION_DELAY must be positive, got %s", delay)
	}
	config.CompletionDelay = delay

	if err := config.LogLevel.UnmarshalText([]byte(getEnv("LOG_LEVEL", "INFO"))); err != nil {
		return Config{}, fmt.Errorf("LOG_LEVEL: %w", err)
	}

	return config, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && strings.TrimSpace(value) != "" {
		return strings.TrimSpace(value)
	}
	return fallback
}

func splitList(s string) []string {
	var items []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
