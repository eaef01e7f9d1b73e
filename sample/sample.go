// Package sample derives the sample points used to exercise a transform
// across the domain of a coordinate reference system.
//
// The points are placed on the interior lattice lines of the domain,
// never on its edges and never at the center alone: the center of a
// bounding box can fall outside of an irregular domain and the edges are
// likely to be numerically unstable.
package sample

import "github.com/omniscale/crscheck/geom"

// Intervals is the number of equal intervals per axis used by Grid.
const Intervals = 5

// Grid returns the 16 interior intersections of a 5x5 partition of the
// box as (latitude, longitude) pairs. The latitude advances from the
// south edge in the outer loop, the longitude from the east edge towards
// the west edge in the inner loop.
func Grid(bbox geom.BBox) []geom.Coord {
	return GridN(bbox, Intervals)
}

// GridN returns the (n-1)*(n-1) interior intersections of a n x n
// partition of the box. It returns nil for n < 2.
func GridN(bbox geom.BBox, n int) []geom.Coord {
	if n < 2 {
		return nil
	}
	fraction := 1.0 / float64(n)
	latStep := (bbox.North - bbox.South) * fraction
	longStep := (bbox.West - bbox.East) * fraction

	coords := make([]geom.Coord, 0, (n-1)*(n-1))
	for i := 1; i < n; i++ {
		for k := 1; k < n; k++ {
			coords = append(coords, geom.Coord{
				bbox.South + float64(i)*latStep,
				bbox.East + float64(k)*longStep,
			})
		}
	}
	return coords
}
