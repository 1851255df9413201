package shape

import "math"

// Wireframe paths traversed by the mesh oscillators. Coordinates are
// normalized to the +-2047 range. A path visits every edge of its wireframe;
// where no connected unvisited edge remains it jumps to the nearest endpoint
// of one, so jump chords are part of the drawing.

// cubePath walks the 12 cube edges with three jump chords.
var cubePath = []Point3D{
	{-2047, -2047, -2047},
	{2047, -2047, -2047},
	{2047, 2047, -2047},
	{-2047, 2047, -2047},
	{-2047, -2047, -2047},
	{-2047, -2047, 2047},
	{2047, -2047, 2047},
	{2047, 2047, 2047},
	{-2047, 2047, 2047},
	{-2047, -2047, 2047},
	{2047, -2047, -2047}, // jump
	{2047, -2047, 2047},
	{2047, 2047, -2047}, // jump
	{2047, 2047, 2047},
	{-2047, 2047, -2047}, // jump
	{-2047, 2047, 2047},
}

var (
	conePath      = buildConePath()
	icospherePath = buildIcospherePath()
)

const coneSides = 12

// buildConePath draws the spokes as an apex zigzag, then the base rim.
func buildConePath() []Point3D {
	base := make([]Point3D, coneSides)
	for i := range base {
		a := 2 * math.Pi * float64(i) / coneSides
		base[i] = Point3D{
			X: int16(math.Round(2047 * math.Cos(a))),
			Y: -2047,
			Z: int16(math.Round(2047 * math.Sin(a))),
		}
	}
	apex := Point3D{X: 0, Y: 2047, Z: 0}

	path := make([]Point3D, 0, 3*coneSides)
	for i := 0; i < coneSides; i++ {
		path = append(path, base[i], apex)
	}
	// rim loop; the wrap back to path[0] closes the final rim edge
	path = append(path, base...)
	return path
}

// buildIcospherePath walks all 30 icosahedron edges, jumping to the nearest
// unvisited edge endpoint when the walk gets stuck.
func buildIcospherePath() []Point3D {
	phi := (1 + math.Sqrt(5)) / 2
	verts := [][3]float64{
		{-1, phi, 0}, {1, phi, 0}, {-1, -phi, 0}, {1, -phi, 0},
		{0, -1, phi}, {0, 1, phi}, {0, -1, -phi}, {0, 1, -phi},
		{phi, 0, -1}, {phi, 0, 1}, {-phi, 0, -1}, {-phi, 0, 1},
	}

	distSq := func(a, b [3]float64) float64 {
		dx, dy, dz := a[0]-b[0], a[1]-b[1], a[2]-b[2]
		return dx*dx + dy*dy + dz*dz
	}

	type edge struct{ a, b int }
	var edges []edge
	for i := range verts {
		for j := i + 1; j < len(verts); j++ {
			// icosahedron edge length is 2 in these coordinates
			if math.Abs(distSq(verts[i], verts[j])-4) < 1e-9 {
				edges = append(edges, edge{i, j})
			}
		}
	}

	used := make([]bool, len(edges))
	remaining := len(edges)
	current := edges[0].a
	path := []int{current}

	for remaining > 0 {
		next := -1
		for k, e := range edges {
			if used[k] {
				continue
			}
			if e.a == current {
				next = e.b
			} else if e.b == current {
				next = e.a
			} else {
				continue
			}
			used[k] = true
			remaining--
			break
		}

		if next >= 0 {
			path = append(path, next)
			current = next
			continue
		}

		// stuck: jump to the nearest endpoint of an unvisited edge
		bestDist := math.Inf(1)
		bestEdge, bestStart, bestEnd := -1, -1, -1
		for k, e := range edges {
			if used[k] {
				continue
			}
			if d := distSq(verts[current], verts[e.a]); d < bestDist {
				bestDist, bestEdge, bestStart, bestEnd = d, k, e.a, e.b
			}
			if d := distSq(verts[current], verts[e.b]); d < bestDist {
				bestDist, bestEdge, bestStart, bestEnd = d, k, e.b, e.a
			}
		}
		used[bestEdge] = true
		remaining--
		path = append(path, bestStart, bestEnd)
		current = bestEnd
	}

	scale := 2047 / phi
	out := make([]Point3D, len(path))
	for i, vi := range path {
		out[i] = Point3D{
			X: int16(math.Round(verts[vi][0] * scale)),
			Y: int16(math.Round(verts[vi][1] * scale)),
			Z: int16(math.Round(verts[vi][2] * scale)),
		}
	}
	return out
}
