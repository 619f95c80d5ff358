package dto

// RateResourceDTO is the body of POST /resources/:id/rate.
type RateResourceDTO struct {
	Value int `json:"value" binding:"required,min=1,max=5"`
}

// RateResponse returns the freshly recalculated aggregates plus the score
// the caller just recorded.
type RateResponse struct {
	AverageRating float64 `json:"average_rating"`
	RatingsCount  int64   `json:"ratings_count"`
	UserRating    int     `json:"user_rating"`
}

// FavoriteToggleResponse reports the new membership state after a toggle.
type FavoriteToggleResponse struct {
	IsFavorite bool `json:"is_favorite"`
}
