// ABOUTME: Centralized configuration for the DeepRead knowledge store
// ABOUTME: Loads from environment variables with validation and defaults
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config holds all configuration for the knowledge store
type Config struct {
	// Storage settings
	DataDir string

	// OpenAI settings
	OpenAIKey      string
	EmbeddingModel string
	EmbedTimeout   time.Duration
	MaxRetries     int
	RetryDelay     time.Duration

	// Knowledge store settings
	VectorDimension int

	// Relationship discovery settings. The window size and probe template
	// are heuristic tuning knobs, not contracts.
	RelatedWindow  int
	RelatedProbe   string
	SampleConcepts int
}

// DefaultRelatedProbe is the synthetic query template used to collect a
// book's neighborhood; %s is replaced by the book title.
const DefaultRelatedProbe = "the core ideas and concepts of %s"

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		DataDir:         getEnv("DEEPREAD_DATA_DIR", defaultDataDir()),
		OpenAIKey:       os.Getenv("OPENAI_API_KEY"),
		EmbeddingModel:  getEnv("DEEPREAD_EMBEDDING_MODEL", "text-embedding-3-small"),
		EmbedTimeout:    getEnvDuration("DEEPREAD_EMBED_TIMEOUT", 30*time.Second),
		MaxRetries:      getEnvInt("OPENAI_MAX_RETRIES", 3),
		RetryDelay:      getEnvDuration("OPENAI_RETRY_DELAY", 2*time.Second),
		VectorDimension: getEnvInt("DEEPREAD_VECTOR_DIMENSION", 1536),
		RelatedWindow:   getEnvInt("DEEPREAD_RELATED_WINDOW", 20),
		RelatedProbe:    getEnv("DEEPREAD_RELATED_PROBE", DefaultRelatedProbe),
		SampleConcepts:  getEnvInt("DEEPREAD_SAMPLE_CONCEPTS", 5),
	}

	return cfg, cfg.Validate()
}

// Validate checks configuration invariants
func (c *Config) Validate() error {
	if c.VectorDimension <= 0 {
		return fmt.Errorf("DEEPREAD_VECTOR_DIMENSION must be positive, got %d", c.VectorDimension)
	}
	if c.MaxRetries < 0 || c.MaxRetries > 10 {
		return fmt.Errorf("OPENAI_MAX_RETRIES must be 0-10, got %d", c.MaxRetries)
	}
	if c.RelatedWindow <= 0 {
		return fmt.Errorf("DEEPREAD_RELATED_WINDOW must be positive, got %d", c.RelatedWindow)
	}
	if c.SampleConcepts <= 0 {
		return fmt.Errorf("DEEPREAD_SAMPLE_CONCEPTS must be positive, got %d", c.SampleConcepts)
	}
	return nil
}

// DBPath returns the SQLite database path under the data directory
func (c *Config) DBPath() string {
	return filepath.Join(c.DataDir, "knowledge.db")
}

// defaultDataDir returns the XDG-compliant default data directory
func defaultDataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".local/share/deepread"
		}
		dataHome = filepath.Join(homeDir, ".local", "share")
	}
	return filepath.Join(dataHome, "deepread")
}

// Helper functions
func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultVal
}
