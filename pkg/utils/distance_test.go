package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHaversine_KnownDistance(t *testing.T) {
	// Seoul City Hall -> Busan City Hall is roughly 325 km as the crow flies.
	d := Haversine(37.5663, 126.9779, 35.1798, 129.0750)
	assert.InDelta(t, 325.0, d, 5.0)

	// One degree of longitude on the equator.
	assert.InDelta(t, 111.19, Haversine(0, 0, 0, 1), 0.01)
}

func TestHaversine_SymmetricAndZero(t *testing.T) {
	points := [][2]float64{
		{0, 0}, {37.5, 127.0}, {-33.86, 151.2}, {89.9, -179.9}, {-45, 45},
	}
	for _, a := range points {
		require.Equal(t, 0.0, Haversine(a[0], a[1], a[0], a[1]))
		for _, b := range points {
			ab := Haversine(a[0], a[1], b[0], b[1])
			ba := Haversine(b[0], b[1], a[0], a[1])
			assert.InDelta(t, ab, ba, 1e-9)
			assert.GreaterOrEqual(t, ab, 0.0)
		}
	}
}

func TestHaversine_NaNPropagates(t *testing.T) {
	assert.True(t, math.IsNaN(Haversine(math.NaN(), 0, 0, 0)))
}

func TestValidCoordinate(t *testing.T) {
	assert.True(t, ValidCoordinate(0, 0))
	assert.True(t, ValidCoordinate(-90, 180))
	assert.False(t, ValidCoordinate(90.1, 0))
	assert.False(t, ValidCoordinate(0, -180.5))
	assert.False(t, ValidCoordinate(math.NaN(), 0))
	assert.False(t, ValidCoordinate(0, math.Inf(1)))
}

func TestBoundingBox_ContainsRadius(t *testing.T) {
	lat, lon, r := 37.5, 127.0, 10.0
	minLat, maxLat, minLon, maxLon := BoundingBox(lat, lon, r)

	assert.InDelta(t, r, Haversine(lat, lon, maxLat, lon), 1e-6)
	assert.InDelta(t, r, Haversine(lat, lon, minLat, lon), 1e-6)
	assert.GreaterOrEqual(t, Haversine(lat, lon, lat, maxLon), r-1e-6)
	assert.GreaterOrEqual(t, Haversine(lat, lon, lat, minLon), r-1e-6)
}

func TestDaysBetweenInclusive(t *testing.T) {
	start := StartOfDayKST(mustParse(t, "2026-05-01T10:00:00+09:00"))
	end := mustParse(t, "2026-05-03T08:00:00+09:00")

	assert.Equal(t, 3, DaysBetweenInclusive(start, end))
	assert.Equal(t, 1, DaysBetweenInclusive(start, start))
	assert.Equal(t, 0, DaysBetweenInclusive(end, start))
}
