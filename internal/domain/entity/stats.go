// Package entity contains the core business objects of the project.
package entity

// PlatformStats is the read-only rollup served by the base-info endpoint.
// It is computed live over the persisted ledgers on every call.
type PlatformStats struct {
	ReviewCount          int64   // Total number of reviews.
	AverageRating        float64 // Mean rating rounded to one decimal, 0 when no reviews exist.
	BusinessProfileCount int64   // Number of business-role profiles.
	OfferCount           int64   // Total number of offers.
}
