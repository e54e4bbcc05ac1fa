package analytics

import (
	"testing"

	"storefront-dashboard/internal/models"
)

func reviewsWithRatings(ratings ...float64) []models.Review {
	reviews := make([]models.Review, len(ratings))
	for i, r := range ratings {
		reviews[i] = models.Review{ID: "r", Rating: r}
	}
	return reviews
}

func TestRatingHistogram(t *testing.T) {
	tests := []struct {
		name       string
		ratings    []float64
		wantCounts [5]int
	}{
		{
			name:       "rounds half up before bucketing",
			ratings:    []float64{4.6, 4.4, 1.0},
			wantCounts: [5]int{1, 0, 0, 1, 1},
		},
		{
			name:       "exact half rounds up",
			ratings:    []float64{4.5, 2.5},
			wantCounts: [5]int{0, 0, 1, 0, 1},
		},
		{
			name:       "out of range ratings dropped",
			ratings:    []float64{0, 0.2, -1, 6, 5.6},
			wantCounts: [5]int{0, 0, 0, 0, 0},
		},
		{
			name:       "upper edge kept",
			ratings:    []float64{5.4},
			wantCounts: [5]int{0, 0, 0, 0, 1},
		},
		{
			name:       "empty input",
			ratings:    nil,
			wantCounts: [5]int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buckets := RatingHistogram(reviewsWithRatings(tt.ratings...))

			if len(buckets) != 5 {
				t.Fatalf("RatingHistogram() returned %d buckets, want 5", len(buckets))
			}

			for i, bucket := range buckets {
				if bucket.Stars != i+1 {
					t.Errorf("buckets[%d].Stars = %v, want %v", i, bucket.Stars, i+1)
				}
				if bucket.Count != tt.wantCounts[i] {
					t.Errorf("buckets[%d].Count = %v, want %v", i, bucket.Count, tt.wantCounts[i])
				}
			}
		})
	}
}
