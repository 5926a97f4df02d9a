// ABOUTME: Retrieval quality metrics for search benchmark scenarios
// ABOUTME: Deterministic scoring against ground-truth relevant cards

package retrieval

import "fmt"

// MetricsCalculator computes retrieval scores for benchmark scenarios
type MetricsCalculator struct{}

// NewMetricsCalculator creates a new metrics calculator
func NewMetricsCalculator() *MetricsCalculator {
	return &MetricsCalculator{}
}

// RecallAtK computes the fraction of relevant ids found within the top k
// retrieved ids (0.0-1.0)
func (m *MetricsCalculator) RecallAtK(retrieved, relevant []string, k int) (float64, string) {
	if len(relevant) == 0 {
		return 1.0, "No relevant cards defined; trivially satisfied"
	}
	if k > len(retrieved) {
		k = len(retrieved)
	}

	top := make(map[string]bool, k)
	for _, id := range retrieved[:k] {
		top[id] = true
	}

	found := 0
	for _, id := range relevant {
		if top[id] {
			found++
		}
	}

	score := float64(found) / float64(len(relevant))
	return score, fmt.Sprintf("Found %d of %d relevant cards in top %d", found, len(relevant), k)
}

// PrecisionAtK computes the fraction of the top k retrieved ids that are
// relevant (0.0-1.0)
func (m *MetricsCalculator) PrecisionAtK(retrieved, relevant []string, k int) (float64, string) {
	if k > len(retrieved) {
		k = len(retrieved)
	}
	if k == 0 {
		return 0.0, "Nothing retrieved"
	}

	relevantSet := make(map[string]bool, len(relevant))
	for _, id := range relevant {
		relevantSet[id] = true
	}

	hits := 0
	for _, id := range retrieved[:k] {
		if relevantSet[id] {
			hits++
		}
	}

	score := float64(hits) / float64(k)
	return score, fmt.Sprintf("%d of top %d retrieved cards are relevant", hits, k)
}

// ReciprocalRank returns 1/rank of the first relevant id in the retrieved
// list, or 0.0 when none appears
func (m *MetricsCalculator) ReciprocalRank(retrieved, relevant []string) (float64, string) {
	relevantSet := make(map[string]bool, len(relevant))
	for _, id := range relevant {
		relevantSet[id] = true
	}

	for i, id := range retrieved {
		if relevantSet[id] {
			return 1.0 / float64(i+1), fmt.Sprintf("First relevant card at rank %d", i+1)
		}
	}
	return 0.0, "No relevant card retrieved"
}
