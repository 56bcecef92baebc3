package utils

import (
	"math"

	"github.com/mmcloughlin/geohash"
	"github.com/saferide/saferide/internal/pkg/models"
)

// GeohashPrecision is the precision used when tagging published locations.
// 7 characters is roughly a 150m cell, enough for ride-level grouping.
const GeohashPrecision = 7

// CalculateDistance calculates the great-circle distance between two points
// in kilometers using the Haversine formula. The formula and the 6371 km
// earth radius must stay in sync with any persisted or displayed distances.
func CalculateDistance(point1, point2 models.GeoLocation) float64 {
	// Earth's radius in kilometers
	const earthRadius = 6371.0

	// Convert latitude and longitude from degrees to radians
	lat1 := point1.Latitude * math.Pi / 180.0
	lon1 := point1.Longitude * math.Pi / 180.0
	lat2 := point2.Latitude * math.Pi / 180.0
	lon2 := point2.Longitude * math.Pi / 180.0

	// Haversine formula
	dLat := lat2 - lat1
	dLon := lon2 - lon1
	a := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadius * c
}

// MinDistanceToRoute returns the minimum great-circle distance in kilometers
// from a point to any point of a planned route. Returns false when the route
// is empty.
func MinDistanceToRoute(point models.GeoLocation, route []models.GeoLocation) (float64, bool) {
	if len(route) == 0 {
		return 0, false
	}

	min := math.Inf(1)
	for _, rp := range route {
		if d := CalculateDistance(point, rp); d < min {
			min = d
		}
	}
	return min, true
}

// EncodeLocation converts a location to a geohash string
func EncodeLocation(location models.GeoLocation, precision uint) string {
	return geohash.EncodeWithPrecision(location.Latitude, location.Longitude, precision)
}

// DecodeGeohash converts a geohash string to latitude and longitude
func DecodeGeohash(hash string) (latitude, longitude float64) {
	return geohash.Decode(hash)
}

// ValidateCoordinates checks that a coordinate pair is on the globe
func ValidateCoordinates(latitude, longitude float64) bool {
	return latitude >= -90 && latitude <= 90 && longitude >= -180 && longitude <= 180
}
