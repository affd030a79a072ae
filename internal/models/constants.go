package models

const (
	DefaultOpenTime  = "11:00"
	DefaultCloseTime = "22:00"

	DefaultCuisine     = "Indian"
	DefaultRating      = 4.0
	DefaultDescription = "Authentic cuisine and excellent service"

	// DefaultSyntheticRadius is in degrees, roughly 15km around the base.
	DefaultSyntheticRadius = 0.15
)

// HoustonCenter is the base city center used for synthetic placement and as
// the resolver fallback.
var HoustonCenter = Location{Lat: 29.7604, Lon: -95.3698}
