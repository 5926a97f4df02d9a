// ABOUTME: Tests for retrieval benchmark metrics
// ABOUTME: Verifies recall, precision, and reciprocal rank scoring

package retrieval

import "testing"

func TestRecallAtK(t *testing.T) {
	m := NewMetricsCalculator()

	tests := []struct {
		name      string
		retrieved []string
		relevant  []string
		k         int
		want      float64
	}{
		{
			name:      "all relevant in top k",
			retrieved: []string{"a", "b", "c"},
			relevant:  []string{"a", "b"},
			k:         3,
			want:      1.0,
		},
		{
			name:      "half found",
			retrieved: []string{"a", "x", "y"},
			relevant:  []string{"a", "b"},
			k:         3,
			want:      0.5,
		},
		{
			name:      "relevant below the cut",
			retrieved: []string{"x", "y", "a"},
			relevant:  []string{"a"},
			k:         2,
			want:      0.0,
		},
		{
			name:      "no relevant defined",
			retrieved: []string{"a"},
			relevant:  nil,
			k:         1,
			want:      1.0,
		},
		{
			name:      "k beyond retrieved length",
			retrieved: []string{"a"},
			relevant:  []string{"a"},
			k:         10,
			want:      1.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := m.RecallAtK(tt.retrieved, tt.relevant, tt.k)
			if got != tt.want {
				t.Errorf("RecallAtK() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPrecisionAtK(t *testing.T) {
	m := NewMetricsCalculator()

	tests := []struct {
		name      string
		retrieved []string
		relevant  []string
		k         int
		want      float64
	}{
		{
			name:      "all hits",
			retrieved: []string{"a", "b"},
			relevant:  []string{"a", "b", "c"},
			k:         2,
			want:      1.0,
		},
		{
			name:      "one of two",
			retrieved: []string{"a", "x"},
			relevant:  []string{"a"},
			k:         2,
			want:      0.5,
		},
		{
			name:      "nothing retrieved",
			retrieved: nil,
			relevant:  []string{"a"},
			k:         5,
			want:      0.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := m.PrecisionAtK(tt.retrieved, tt.relevant, tt.k)
			if got != tt.want {
				t.Errorf("PrecisionAtK() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestReciprocalRank(t *testing.T) {
	m := NewMetricsCalculator()

	tests := []struct {
		name      string
		retrieved []string
		relevant  []string
		want      float64
	}{
		{
			name:      "first position",
			retrieved: []string{"a", "b"},
			relevant:  []string{"a"},
			want:      1.0,
		},
		{
			name:      "third position",
			retrieved: []string{"x", "y", "a"},
			relevant:  []string{"a"},
			want:      1.0 / 3.0,
		},
		{
			name:      "never retrieved",
			retrieved: []string{"x", "y"},
			relevant:  []string{"a"},
			want:      0.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := m.ReciprocalRank(tt.retrieved, tt.relevant)
			if got != tt.want {
				t.Errorf("ReciprocalRank() = %v, want %v", got, tt.want)
			}
		})
	}
}
