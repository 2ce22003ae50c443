package services

import (
	"math"

	"github.com/quicklist/backend/internal/models"
)

// DistanceMiles calculates the great-circle distance between two points in
// miles (Haversine formula).
func DistanceMiles(lat1, lon1, lat2, lon2 float64) float64 {
	const earthRadiusMiles = 3959.0

	lat1Rad := lat1 * math.Pi / 180
	lat2Rad := lat2 * math.Pi / 180
	deltaLat := (lat2 - lat1) * math.Pi / 180
	deltaLon := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(deltaLon/2)*math.Sin(deltaLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMiles * c
}

// WithinRadius reports whether a listing location falls within radiusMi of the
// user. A user without resolved coordinates never excludes anything; location
// filtering is only active once an external geocoder has filled in lat/lng.
func WithinRadius(user models.UserLocation, loc models.Location, radiusMi float64) bool {
	if !user.Resolved() {
		return true
	}
	return DistanceMiles(*user.Latitude, *user.Longitude, loc.Latitude, loc.Longitude) <= radiusMi
}
