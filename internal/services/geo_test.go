package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/quicklist/backend/internal/models"
)

const (
	sfLat = 37.7749
	sfLng = -122.4194
	laLat = 34.0522
	laLng = -118.2437
)

func ptr(f float64) *float64 { return &f }

func TestDistanceMiles_ZeroForIdenticalCoordinates(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0.0, DistanceMiles(sfLat, sfLng, sfLat, sfLng))
}

func TestDistanceMiles_Symmetric(t *testing.T) {
	t.Parallel()

	there := DistanceMiles(sfLat, sfLng, laLat, laLng)
	back := DistanceMiles(laLat, laLng, sfLat, sfLng)
	assert.Equal(t, there, back)
}

func TestDistanceMiles_SanFranciscoToLosAngeles(t *testing.T) {
	t.Parallel()

	d := DistanceMiles(sfLat, sfLng, laLat, laLng)
	assert.InDelta(t, 347, d, 2)
}

func TestWithinRadius(t *testing.T) {
	t.Parallel()

	sf := models.Location{Latitude: sfLat, Longitude: sfLng}
	la := models.Location{Latitude: laLat, Longitude: laLng}
	userSF := models.UserLocation{Latitude: ptr(sfLat), Longitude: ptr(sfLng)}

	assert.True(t, WithinRadius(userSF, sf, 25), "identical coordinates within any positive radius")
	assert.False(t, WithinRadius(userSF, la, 0), "distinct coordinates never within radius 0")
	assert.False(t, WithinRadius(userSF, la, 100))
	assert.True(t, WithinRadius(userSF, la, 400))
}

func TestWithinRadius_UnresolvedUserNeverExcludes(t *testing.T) {
	t.Parallel()

	la := models.Location{Latitude: laLat, Longitude: laLng}

	assert.True(t, WithinRadius(models.UserLocation{}, la, 0))
	assert.True(t, WithinRadius(models.UserLocation{ZipCode: "94102"}, la, 5))
	assert.True(t, WithinRadius(models.UserLocation{Latitude: ptr(sfLat)}, la, 5), "one coordinate is not resolved")
}
