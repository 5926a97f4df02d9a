// ABOUTME: In-memory flat vector index with cosine distance search
// ABOUTME: Preserves insertion order so equal-distance ties rank deterministically
package storage

import (
	"fmt"
	"math"
	"sort"
)

// FlatIndex is a brute-force nearest-neighbor index over fixed-dimension
// vectors. Entries are kept in insertion order; a stable sort during
// search keeps ranking deterministic when distances tie.
//
// FlatIndex is not safe for concurrent use on its own; the knowledge
// store serializes access with its reader/writer lock.
type FlatIndex struct {
	dim     int
	entries []indexEntry
}

type indexEntry struct {
	id     string
	vector []float64
}

// IndexResult is one nearest-neighbor hit
type IndexResult struct {
	ID       string
	Distance float64
}

// NewFlatIndex creates an empty index for vectors of the given dimension
func NewFlatIndex(dim int) *FlatIndex {
	return &FlatIndex{dim: dim}
}

// Dimension returns the fixed vector dimensionality of the index
func (idx *FlatIndex) Dimension() int {
	return idx.dim
}

// Len returns the number of indexed vectors
func (idx *FlatIndex) Len() int {
	return len(idx.entries)
}

// Insert adds a vector under the given id. Dimensionality is enforced at
// the boundary so every vector in the index has the same length.
func (idx *FlatIndex) Insert(id string, vector []float64) error {
	if len(vector) != idx.dim {
		return fmt.Errorf("invalid vector dimension: expected %d, got %d", idx.dim, len(vector))
	}
	idx.entries = append(idx.entries, indexEntry{id: id, vector: vector})
	return nil
}

// Search returns up to k entries nearest to the query vector by cosine
// distance, ascending. If filter is non-nil, only ids it accepts
// participate. Filtering happens before the cut so k survivors are
// returned whenever enough qualify.
func (idx *FlatIndex) Search(query []float64, k int, filter func(id string) bool) ([]IndexResult, error) {
	if len(query) != idx.dim {
		return nil, fmt.Errorf("invalid query dimension: expected %d, got %d", idx.dim, len(query))
	}
	if k <= 0 {
		return nil, nil
	}

	var results []IndexResult
	for _, entry := range idx.entries {
		if filter != nil && !filter(entry.id) {
			continue
		}
		results = append(results, IndexResult{
			ID:       entry.id,
			Distance: CosineDistance(query, entry.vector),
		})
	}

	// Stable: ties keep insertion order
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Distance < results[j].Distance
	})

	if len(results) > k {
		results = results[:k]
	}
	return results, nil
}

// CosineDistance returns 1 minus the cosine similarity of a and b.
// Mismatched or zero vectors get the maximum distance instead of NaN.
func CosineDistance(a, b []float64) float64 {
	return 1.0 - CosineSimilarity(a, b)
}

// CosineSimilarity calculates cosine similarity between two vectors
func CosineSimilarity(a, b []float64) float64 {
	if len(a) != len(b) {
		return 0.0
	}

	var dotProduct, normA, normB float64
	for i := range a {
		dotProduct += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}

	if normA == 0 || normB == 0 {
		return 0.0
	}

	return dotProduct / (math.Sqrt(normA) * math.Sqrt(normB))
}
