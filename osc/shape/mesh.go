package shape

import "github.com/cwbudde/algo-osc/osc/fixp"

// Point3D is one vertex of a closed wireframe path, coordinates in signed
// Q12 (normalized to about +-2047).
type Point3D struct {
	X, Y, Z int16
}

// Mesh traces a closed 3D wireframe path by phase, rotates the interpolated
// point about the vertical axis and projects it isometrically onto the
// stereo output plane. The same code serves every mesh; only the bound path
// table differs.
type Mesh struct {
	path  []Point3D
	phRot uint32
}

// NewCube returns a mesh oscillator tracing the cube wireframe.
func NewCube() *Mesh {
	return &Mesh{path: cubePath}
}

// NewCone returns a mesh oscillator tracing the cone wireframe.
func NewCone() *Mesh {
	return &Mesh{path: conePath}
}

// NewIcosphere returns a mesh oscillator tracing the icosphere wireframe.
func NewIcosphere() *Mesh {
	return &Mesh{path: icospherePath}
}

// Compute renders one sample of the projected wireframe. mod1 grows the
// figure, mod2 sets the rotation rate around the center of its range.
func (o *Mesh) Compute(ph uint32, mod1, mod2 int32) (int32, int32) {
	ph = rescalePhase(ph, growScale(mod1))

	o.phRot += uint32(mod2-modCenter) << 10

	n := uint32(len(o.path))
	prod := uint64(ph) * uint64(n-1)
	segment := uint32(prod >> 32)
	frac := int32((prod & 0xFFFFFFFF) >> 22)

	p1 := o.path[segment%n]
	p2 := o.path[(segment+1)%n]

	x := int32(p1.X) + ((int32(p2.X)-int32(p1.X))*frac)>>10
	y := int32(p1.Y) + ((int32(p2.Y)-int32(p1.Y))*frac)>>10
	z := int32(p1.Z) + ((int32(p2.Z)-int32(p1.Z))*frac)>>10

	s := fixp.Sine(o.phRot)
	c := fixp.Sine(o.phRot - fixp.QuarterCycle)

	rx := (x*c - z*s) >> 11
	ry := y
	rz := (x*s + z*c) >> 11

	// isometric projection, 30 degrees
	u := rx
	v := (rz >> 1) + (ry*3547)>>12

	return u >> 1, v >> 1
}
