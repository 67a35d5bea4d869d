package hotspots

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKMeansSeparatedGroups(t *testing.T) {
	var points []Point
	for i := 0; i < 20; i++ {
		jitter := float64(i%5) * 0.001
		points = append(points, Point{Lat: 25.0 + jitter, Lon: 55.0 + jitter})
		points = append(points, Point{Lat: 26.0 + jitter, Lon: 56.0 + jitter})
	}
	centers := KMeans(points, 2, 50, rand.New(rand.NewSource(1)))
	require.Len(t, centers, 2)

	// One centroid per group, in either order.
	near := func(c Point, lat, lon float64) bool {
		return math.Abs(c.Lat-lat) < 0.01 && math.Abs(c.Lon-lon) < 0.01
	}
	found25 := near(centers[0], 25.002, 55.002) || near(centers[1], 25.002, 55.002)
	found26 := near(centers[0], 26.002, 56.002) || near(centers[1], 26.002, 56.002)
	assert.True(t, found25, "missing centroid near (25, 55): %+v", centers)
	assert.True(t, found26, "missing centroid near (26, 56): %+v", centers)
}

func TestKMeansDeterministicWithSeed(t *testing.T) {
	points := []Point{{1, 1}, {1.1, 1.1}, {5, 5}, {5.1, 5.1}, {9, 9}}
	a := KMeans(points, 3, 50, rand.New(rand.NewSource(7)))
	b := KMeans(points, 3, 50, rand.New(rand.NewSource(7)))
	assert.Equal(t, a, b)
}

func TestKMeansClampsKToPointCount(t *testing.T) {
	points := []Point{{1, 1}, {2, 2}}
	centers := KMeans(points, 10, 50, rand.New(rand.NewSource(1)))
	assert.Len(t, centers, 2)
}

func TestKMeansEmptyInput(t *testing.T) {
	assert.Nil(t, KMeans(nil, 3, 50, rand.New(rand.NewSource(1))))
	assert.Nil(t, KMeans([]Point{{1, 1}}, 0, 50, rand.New(rand.NewSource(1))))
}

func TestKMeansSinglePoint(t *testing.T) {
	centers := KMeans([]Point{{25, 55}}, 1, 50, rand.New(rand.NewSource(1)))
	require.Len(t, centers, 1)
	assert.Equal(t, Point{25, 55}, centers[0])
}
