package analytics

import (
	"math"

	"storefront-dashboard/internal/models"
)

// RatingBucket is one bar of the review star-rating histogram.
type RatingBucket struct {
	Stars int `json:"stars"`
	Count int `json:"count"`
}

// RatingHistogram buckets reviews into the five whole-star bins. Ratings are
// rounded half-up to the nearest integer first; anything rounding outside
// 1..5 is excluded from every bucket rather than erroring. The result always
// has exactly five buckets, in order 1 through 5.
func RatingHistogram(reviews []models.Review) []RatingBucket {
	var counts [5]int
	for _, r := range reviews {
		stars := int(math.Floor(r.Rating + 0.5))
		if stars < 1 || stars > 5 {
			continue
		}
		counts[stars-1]++
	}

	buckets := make([]RatingBucket, 5)
	for i := range buckets {
		buckets[i] = RatingBucket{Stars: i + 1, Count: counts[i]}
	}
	return buckets
}
