// Package geo provides great-circle distance on a spherical Earth model.
package geo

import (
	"math"

	"github.com/paulmach/orb"
)

// EarthRadiusMeters is the mean Earth radius used by the haversine formula.
const EarthRadiusMeters = 6371000

// Distance returns the haversine great-circle distance between two points in
// meters. It is symmetric, returns zero for coincident points, and propagates
// NaN/Inf inputs without checking them.
func Distance(a, b orb.Point) float64 {
	phi1 := toRadians(a.Lat())
	phi2 := toRadians(b.Lat())
	deltaPhi := toRadians(b.Lat() - a.Lat())
	deltaLambda := toRadians(b.Lon() - a.Lon())

	h := math.Sin(deltaPhi/2)*math.Sin(deltaPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*
			math.Sin(deltaLambda/2)*math.Sin(deltaLambda/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return EarthRadiusMeters * c
}

func toRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
