// Package extract produces representative colour palettes from pixel
// samples using k-means clustering in CIE LAB space.
package extract

import (
	"math"
	"math/rand"
	"sort"

	"github.com/colorcraft/colorcraft/internal/colour"
)

const (
	// restarts is how many times clustering is re-run from fresh
	// initial centroids. The lowest-inertia run wins, which damps the
	// local-minimum instability of a single k-means run.
	restarts = 20

	// maxIterations bounds a single Lloyd iteration loop.
	maxIterations = 300

	// convergence stops iterating once average centroid movement falls
	// below this LAB distance.
	convergence = 0.01
)

// clustering is the result of one k-means run.
type clustering struct {
	points      []colour.Lab
	assignments []int
	k           int
	inertia     float64
}

// members groups the points by cluster, in cluster index order.
func (c *clustering) members() [][]colour.Lab {
	groups := make([][]colour.Lab, c.k)
	for i, a := range c.assignments {
		groups[a] = append(groups[a], c.points[i])
	}
	return groups
}

// runKMeans clusters points into k groups, keeping the lowest-inertia
// result across multiple seeded restarts. All randomness comes from the
// single rng, so the whole run is a pure function of (points, k, seed).
func runKMeans(points []colour.Lab, k int, seed int64) *clustering {
	rng := rand.New(rand.NewSource(seed))

	var best *clustering
	for run := 0; run < restarts; run++ {
		result := lloyd(points, k, rng)
		if best == nil || result.inertia < best.inertia {
			best = result
		}
	}
	return best
}

// lloyd performs one k-means run: k-means++ initialisation followed by
// Lloyd iterations until convergence or maxIterations.
func lloyd(points []colour.Lab, k int, rng *rand.Rand) *clustering {
	centroids := initKMeansPlusPlus(points, k, rng)
	assignments := make([]int, len(points))

	for iter := 0; iter < maxIterations; iter++ {
		for i, p := range points {
			assignments[i] = nearestCentroid(p, centroids)
		}

		next := recomputeCentroids(points, assignments, k, rng)

		movement := 0.0
		for i := range centroids {
			movement += labDistance(centroids[i], next[i])
		}
		centroids = next

		if movement/float64(k) < convergence {
			break
		}
	}

	// Final assignment against the converged centroids.
	inertia := 0.0
	for i, p := range points {
		assignments[i] = nearestCentroid(p, centroids)
		d := labDistance(p, centroids[assignments[i]])
		inertia += d * d
	}

	return &clustering{
		points:      points,
		assignments: assignments,
		k:           k,
		inertia:     inertia,
	}
}

// initKMeansPlusPlus picks initial centroids with probability
// proportional to squared distance from the nearest centroid so far.
func initKMeansPlusPlus(points []colour.Lab, k int, rng *rand.Rand) []colour.Lab {
	centroids := make([]colour.Lab, 0, k)
	centroids = append(centroids, points[rng.Intn(len(points))])

	distances := make([]float64, len(points))
	for len(centroids) < k {
		total := 0.0
		for i, p := range points {
			minDist := math.MaxFloat64
			for _, c := range centroids {
				if d := labDistance(p, c); d < minDist {
					minDist = d
				}
			}
			distances[i] = minDist * minDist
			total += distances[i]
		}

		if total == 0 {
			// Remaining points coincide with existing centroids; any
			// pick is equivalent.
			centroids = append(centroids, points[rng.Intn(len(points))])
			continue
		}

		target := rng.Float64() * total
		cumulative := 0.0
		for i, d := range distances {
			cumulative += d
			if cumulative >= target {
				centroids = append(centroids, points[i])
				break
			}
		}
	}

	return centroids
}

// nearestCentroid returns the index of the centroid closest to p.
func nearestCentroid(p colour.Lab, centroids []colour.Lab) int {
	nearest := 0
	minDist := math.MaxFloat64
	for i, c := range centroids {
		if d := labDistance(p, c); d < minDist {
			minDist = d
			nearest = i
		}
	}
	return nearest
}

// recomputeCentroids averages the points assigned to each cluster.
// Empty clusters are reseeded from a random point.
func recomputeCentroids(points []colour.Lab, assignments []int, k int, rng *rand.Rand) []colour.Lab {
	sums := make([]colour.Lab, k)
	counts := make([]int, k)

	for i, p := range points {
		c := assignments[i]
		sums[c].L += p.L
		sums[c].A += p.A
		sums[c].B += p.B
		counts[c]++
	}

	centroids := make([]colour.Lab, k)
	for i := range centroids {
		if counts[i] > 0 {
			n := float64(counts[i])
			centroids[i] = colour.Lab{L: sums[i].L / n, A: sums[i].A / n, B: sums[i].B / n}
		} else {
			centroids[i] = points[rng.Intn(len(points))]
		}
	}
	return centroids
}

// medianLab returns the per-channel median of the cluster members. The
// median keeps the representative close to colours that actually occur
// and is robust to outliers such as anti-aliased edge pixels.
func medianLab(members []colour.Lab) colour.Lab {
	ls := make([]float64, len(members))
	as := make([]float64, len(members))
	bs := make([]float64, len(members))
	for i, m := range members {
		ls[i], as[i], bs[i] = m.L, m.A, m.B
	}
	return colour.Lab{
		L: medianFloat(ls),
		A: medianFloat(as),
		B: medianFloat(bs),
	}
}

func medianFloat(values []float64) float64 {
	sort.Float64s(values)
	n := len(values)
	if n%2 == 1 {
		return values[n/2]
	}
	return (values[n/2-1] + values[n/2]) / 2
}

func labDistance(a, b colour.Lab) float64 {
	dl := a.L - b.L
	da := a.A - b.A
	db := a.B - b.B
	return math.Sqrt(dl*dl + da*da + db*db)
}
