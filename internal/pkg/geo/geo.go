package geo

import "math"

// EarthRadiusKm is the mean Earth radius used for great-circle math.
const EarthRadiusKm = 6371.0

// Point is a WGS84 coordinate pair in degrees.
type Point struct {
	Latitude  float64
	Longitude float64
}

// Valid reports whether the point is finite and within coordinate ranges.
func (p Point) Valid() bool {
	if math.IsNaN(p.Latitude) || math.IsInf(p.Latitude, 0) {
		return false
	}
	if math.IsNaN(p.Longitude) || math.IsInf(p.Longitude, 0) {
		return false
	}
	return p.Latitude >= -90 && p.Latitude <= 90 && p.Longitude >= -180 && p.Longitude <= 180
}

// Distance returns the haversine great-circle distance between a and b in
// kilometers.
func Distance(a, b Point) float64 {
	dLat := toRadians(b.Latitude - a.Latitude)
	dLon := toRadians(b.Longitude - a.Longitude)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(a.Latitude))*math.Cos(toRadians(b.Latitude))*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return EarthRadiusKm * c
}

// InBounds reports whether p falls within the bounding box. Boxes crossing
// the antimeridian are not supported.
func InBounds(p Point, north, south, east, west float64) bool {
	return p.Latitude <= north && p.Latitude >= south &&
		p.Longitude <= east && p.Longitude >= west
}

func toRadians(degrees float64) float64 {
	return degrees * (math.Pi / 180)
}
