package utils

import (
	"testing"

	"github.com/saferide/saferide/internal/pkg/models"
	"github.com/stretchr/testify/assert"
)

func TestCalculateDistance_SamePoint(t *testing.T) {
	points := []models.GeoLocation{
		{Latitude: 0, Longitude: 0},
		{Latitude: -6.175392, Longitude: 106.827153},
		{Latitude: 90, Longitude: 0},
		{Latitude: -45.5, Longitude: 179.9},
	}

	for _, p := range points {
		assert.Equal(t, 0.0, CalculateDistance(p, p))
	}
}

func TestCalculateDistance_Symmetric(t *testing.T) {
	a := models.GeoLocation{Latitude: 28.6139, Longitude: 77.2090}
	b := models.GeoLocation{Latitude: 28.6200, Longitude: 77.2500}

	assert.InDelta(t, CalculateDistance(a, b), CalculateDistance(b, a), 1e-12)
}

func TestCalculateDistance_KnownDistances(t *testing.T) {
	tests := []struct {
		name       string
		point1     models.GeoLocation
		point2     models.GeoLocation
		expectedKm float64
		toleranceKm float64
	}{
		{
			name:        "Jakarta Monas to Ragunan",
			point1:      models.GeoLocation{Latitude: -6.175392, Longitude: 106.827153},
			point2:      models.GeoLocation{Latitude: -6.302446, Longitude: 106.820617},
			expectedKm:  14.1,
			toleranceKm: 0.5,
		},
		{
			name:        "Delhi short hop",
			point1:      models.GeoLocation{Latitude: 28.6139, Longitude: 77.2090},
			point2:      models.GeoLocation{Latitude: 28.6200, Longitude: 77.2500},
			expectedKm:  4.1,
			toleranceKm: 0.5,
		},
		{
			name:        "One degree of latitude on the equator",
			point1:      models.GeoLocation{Latitude: 0, Longitude: 0},
			point2:      models.GeoLocation{Latitude: 1, Longitude: 0},
			expectedKm:  111.2,
			toleranceKm: 0.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateDistance(tt.point1, tt.point2)
			assert.InDelta(t, tt.expectedKm, got, tt.toleranceKm)
		})
	}
}

func TestMinDistanceToRoute(t *testing.T) {
	route := []models.GeoLocation{
		{Latitude: 0, Longitude: 0},
		{Latitude: 0, Longitude: 0.1},
		{Latitude: 0, Longitude: 0.2},
	}

	// The second waypoint is the closest one
	min, ok := MinDistanceToRoute(models.GeoLocation{Latitude: 0.01, Longitude: 0.1}, route)
	assert.True(t, ok)
	assert.InDelta(t, CalculateDistance(
		models.GeoLocation{Latitude: 0.01, Longitude: 0.1},
		models.GeoLocation{Latitude: 0, Longitude: 0.1},
	), min, 1e-12)
}

func TestMinDistanceToRoute_EmptyRoute(t *testing.T) {
	_, ok := MinDistanceToRoute(models.GeoLocation{Latitude: 1, Longitude: 1}, nil)
	assert.False(t, ok)
}

func TestEncodeLocation(t *testing.T) {
	hash := EncodeLocation(models.GeoLocation{Latitude: -6.175392, Longitude: 106.827153}, GeohashPrecision)
	assert.Len(t, hash, GeohashPrecision)

	lat, lng := DecodeGeohash(hash)
	assert.InDelta(t, -6.175392, lat, 0.01)
	assert.InDelta(t, 106.827153, lng, 0.01)
}

func TestValidateCoordinates(t *testing.T) {
	assert.True(t, ValidateCoordinates(0, 0))
	assert.True(t, ValidateCoordinates(-90, 180))
	assert.True(t, ValidateCoordinates(90, -180))
	assert.False(t, ValidateCoordinates(90.1, 0))
	assert.False(t, ValidateCoordinates(0, 180.1))
	assert.False(t, ValidateCoordinates(-91, -181))
}
