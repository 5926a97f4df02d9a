// ABOUTME: Shared utility functions for CLI commands
// ABOUTME: Store setup plus small formatting helpers
package commands

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/liyoubang97-hub/deepread-app/internal/config"
	"github.com/liyoubang97-hub/deepread-app/internal/knowledge"
	"github.com/liyoubang97-hub/deepread-app/internal/llm"
)

// openStore loads configuration, builds the shared embedding client, and
// opens the knowledge store. The caller owns the returned store.
func openStore() (*knowledge.KnowledgeStore, error) {
	// Load .env for API keys
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}

	embedder, err := llm.NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("initializing embedding client: %w", err)
	}

	store, err := knowledge.Open(cfg, embedder)
	if err != nil {
		return nil, fmt.Errorf("opening knowledge store: %w", err)
	}
	return store, nil
}

// truncate shortens a string to maxLen runes, adding "..." if truncated
func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}

// validatePositiveInt returns an error if n is not positive
func validatePositiveInt(n int, name string) error {
	if n <= 0 {
		return fmt.Errorf("%s must be positive, got %d", name, n)
	}
	return nil
}
