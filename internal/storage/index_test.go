// ABOUTME: Tests for the flat cosine-distance vector index
// ABOUTME: Covers ranking, stable ties, filtering, and dimension checks
package storage

import (
	"math"
	"testing"
)

func TestFlatIndexInsertDimensionCheck(t *testing.T) {
	idx := NewFlatIndex(3)

	if err := idx.Insert("ok", []float64{1, 0, 0}); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}
	if err := idx.Insert("short", []float64{1, 0}); err == nil {
		t.Error("Insert() with wrong dimension should fail")
	}
	if idx.Len() != 1 {
		t.Errorf("Len() = %d, want 1", idx.Len())
	}
}

func TestFlatIndexSearchRanking(t *testing.T) {
	idx := NewFlatIndex(2)
	// Angles from the x axis: 0, 45, 90 degrees
	_ = idx.Insert("far", []float64{0, 1})
	_ = idx.Insert("mid", []float64{1, 1})
	_ = idx.Insert("near", []float64{1, 0})

	results, err := idx.Search([]float64{1, 0}, 3, nil)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("Search() count = %d, want 3", len(results))
	}

	wantOrder := []string{"near", "mid", "far"}
	for i, want := range wantOrder {
		if results[i].ID != want {
			t.Errorf("results[%d].ID = %q, want %q", i, results[i].ID, want)
		}
	}

	if results[0].Distance > 1e-12 {
		t.Errorf("identical direction distance = %v, want ~0", results[0].Distance)
	}
	if math.Abs(results[2].Distance-1.0) > 1e-12 {
		t.Errorf("orthogonal distance = %v, want 1", results[2].Distance)
	}
}

func TestFlatIndexSearchStableTies(t *testing.T) {
	idx := NewFlatIndex(2)
	// All three vectors point the same way: identical distances
	_ = idx.Insert("first", []float64{1, 0})
	_ = idx.Insert("second", []float64{2, 0})
	_ = idx.Insert("third", []float64{3, 0})

	for run := 0; run < 5; run++ {
		results, err := idx.Search([]float64{1, 0}, 3, nil)
		if err != nil {
			t.Fatalf("Search() error = %v", err)
		}

		wantOrder := []string{"first", "second", "third"}
		for i, want := range wantOrder {
			if results[i].ID != want {
				t.Fatalf("run %d: results[%d].ID = %q, want %q (insertion order must break ties)",
					run, i, results[i].ID, want)
			}
		}
	}
}

func TestFlatIndexSearchFilter(t *testing.T) {
	idx := NewFlatIndex(2)
	_ = idx.Insert("keep_1", []float64{1, 0})
	_ = idx.Insert("drop_1", []float64{1, 0.1})
	_ = idx.Insert("keep_2", []float64{0, 1})

	keep := map[string]bool{"keep_1": true, "keep_2": true}
	results, err := idx.Search([]float64{1, 0}, 2, func(id string) bool { return keep[id] })
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}

	// Filtering happens before the cut: both keepers qualify
	if len(results) != 2 {
		t.Fatalf("Search() count = %d, want 2", len(results))
	}
	if results[0].ID != "keep_1" || results[1].ID != "keep_2" {
		t.Errorf("results = %v, %v; want keep_1, keep_2", results[0].ID, results[1].ID)
	}
}

func TestFlatIndexSearchBounds(t *testing.T) {
	idx := NewFlatIndex(2)
	_ = idx.Insert("only", []float64{1, 0})

	// k = 0 yields nothing
	results, err := idx.Search([]float64{1, 0}, 0, nil)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(results) != 0 {
		t.Errorf("Search(k=0) count = %d, want 0", len(results))
	}

	// k beyond size yields at most size
	results, err = idx.Search([]float64{1, 0}, 10, nil)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(results) != 1 {
		t.Errorf("Search(k=10) count = %d, want 1", len(results))
	}

	// Wrong query dimension is an error
	if _, err := idx.Search([]float64{1, 0, 0}, 1, nil); err == nil {
		t.Error("Search() with wrong query dimension should fail")
	}
}

func TestCosineSimilarityEdgeCases(t *testing.T) {
	if got := CosineSimilarity([]float64{1, 0}, []float64{1, 0, 0}); got != 0 {
		t.Errorf("mismatched lengths similarity = %v, want 0", got)
	}
	if got := CosineSimilarity([]float64{0, 0}, []float64{1, 0}); got != 0 {
		t.Errorf("zero vector similarity = %v, want 0", got)
	}
	if got := CosineDistance([]float64{0, 0}, []float64{1, 0}); got != 1 {
		t.Errorf("zero vector distance = %v, want 1", got)
	}
}
