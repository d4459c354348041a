package utils

import "math"

// EarthRadiusKm is the mean Earth radius used by Haversine.
const EarthRadiusKm = 6371.0

// Haversine returns the great-circle distance in kilometres between two
// points given in decimal degrees. Inputs are not validated; NaN in gives NaN out.
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := degToRad(lat2 - lat1)
	dLon := degToRad(lon2 - lon1)

	sinLat := math.Sin(dLat / 2)
	sinLon := math.Sin(dLon / 2)

	a := sinLat*sinLat + math.Cos(degToRad(lat1))*math.Cos(degToRad(lat2))*sinLon*sinLon

	return 2 * EarthRadiusKm * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

// BoundingBox returns the lat/lng window that contains every point within
// radiusKm of (lat, lon). It is only a prefilter for Haversine.
func BoundingBox(lat, lon, radiusKm float64) (minLat, maxLat, minLon, maxLon float64) {
	delta := radiusKm / EarthRadiusKm
	dLat := delta * 180 / math.Pi

	dLon := 180.0
	if x := math.Sin(delta) / math.Cos(degToRad(lat)); x < 1 {
		dLon = math.Asin(x) * 180 / math.Pi
	}
	return lat - dLat, lat + dLat, lon - dLon, lon + dLon
}

func ValidCoordinate(lat, lon float64) bool {
	if math.IsNaN(lat) || math.IsNaN(lon) || math.IsInf(lat, 0) || math.IsInf(lon, 0) {
		return false
	}
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}

func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}
