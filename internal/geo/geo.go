// Package geo provides great-circle math on a spherical Earth.
package geo

import (
	"math"

	"github.com/charan-271/ISS-Tracker/internal/models"
)

// EarthRadiusKm is the mean Earth radius used by the haversine formula.
const EarthRadiusKm = 6371.0

func deg2rad(deg float64) float64 {
	return deg * (math.Pi / 180.0)
}

// DistanceKm returns the great-circle distance between a and b in kilometers,
// computed with the haversine formula. The result is always >= 0.
func DistanceKm(a, b models.Coordinate) float64 {
	dLat := deg2rad(b.Latitude - a.Latitude)
	dLon := deg2rad(b.Longitude - a.Longitude)
	lat1 := deg2rad(a.Latitude)
	lat2 := deg2rad(b.Latitude)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Sin(dLon/2)*math.Sin(dLon/2)*math.Cos(lat1)*math.Cos(lat2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return EarthRadiusKm * c
}
