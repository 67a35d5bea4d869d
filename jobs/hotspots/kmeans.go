package hotspots

import (
	"math/rand"

	"gonum.org/v1/gonum/floats"
)

// Point is a trip-start coordinate in degrees.
type Point struct {
	Lat float64
	Lon float64
}

// KMeans partitions points into k clusters and returns the cluster
// centroids. Standard Lloyd iterations with random initial centers drawn
// from the input; rng makes runs reproducible. k is clamped to len(points).
// Iteration stops when assignments are stable or maxIter is reached.
func KMeans(points []Point, k, maxIter int, rng *rand.Rand) []Point {
	if len(points) == 0 || k <= 0 {
		return nil
	}
	if k > len(points) {
		k = len(points)
	}

	centers := make([][]float64, k)
	for i, idx := range rng.Perm(len(points))[:k] {
		centers[i] = []float64{points[idx].Lat, points[idx].Lon}
	}

	assign := make([]int, len(points))
	for i := range assign {
		assign[i] = -1
	}
	for iter := 0; iter < maxIter; iter++ {
		changed := false
		for i, p := range points {
			best := nearest(p, centers)
			if best != assign[i] {
				assign[i] = best
				changed = true
			}
		}
		if !changed && iter > 0 {
			break
		}
		recompute(points, assign, centers, rng)
	}

	out := make([]Point, k)
	for i, c := range centers {
		out[i] = Point{Lat: c[0], Lon: c[1]}
	}
	return out
}

func nearest(p Point, centers [][]float64) int {
	coord := []float64{p.Lat, p.Lon}
	best, bestDist := 0, floats.Distance(coord, centers[0], 2)
	for i := 1; i < len(centers); i++ {
		if d := floats.Distance(coord, centers[i], 2); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// recompute replaces each center with the mean of its members. An empty
// cluster is reseeded from a random point so k centroids survive.
func recompute(points []Point, assign []int, centers [][]float64, rng *rand.Rand) {
	sums := make([][]float64, len(centers))
	counts := make([]int, len(centers))
	for i := range sums {
		sums[i] = []float64{0, 0}
	}
	for i, p := range points {
		c := assign[i]
		sums[c][0] += p.Lat
		sums[c][1] += p.Lon
		counts[c]++
	}
	for i := range centers {
		if counts[i] == 0 {
			p := points[rng.Intn(len(points))]
			centers[i] = []float64{p.Lat, p.Lon}
			continue
		}
		centers[i] = []float64{sums[i][0] / float64(counts[i]), sums[i][1] / float64(counts[i])}
	}
}
