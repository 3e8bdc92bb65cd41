// Package scene reads node orientations from glTF files as quaternions.
package scene

import (
	"fmt"
	"math"

	"github.com/qmuntal/gltf"

	"github.com/taigrr/quaternions/pkg/math3d"
)

// NodeRotation is the local rotation of one glTF node.
type NodeRotation struct {
	Index    int
	Name     string
	Rotation math3d.Quaternion
}

// Loader converts glTF node rotations into quaternions.
type Loader struct {
	// Normalize divides each rotation by its norm. glTF requires unit
	// quaternions but exporters round, so this defaults to true.
	Normalize bool
}

// NewLoader creates a loader with default options.
func NewLoader() *Loader {
	return &Loader{
		Normalize: true,
	}
}

// LoadRotations reads every node rotation from a .gltf or .glb file.
func LoadRotations(path string) ([]NodeRotation, error) {
	return NewLoader().Load(path)
}

// Load opens a glTF or GLB file and returns its node rotations.
func (l *Loader) Load(path string) ([]NodeRotation, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open gltf: %w", err)
	}
	return l.Rotations(doc), nil
}

// Rotations converts the rotation of every node in doc, in node order.
// A node with a non-identity Matrix takes its rotation from the matrix, with
// scale divided out; otherwise Rotation is used.
func (l *Loader) Rotations(doc *gltf.Document) []NodeRotation {
	out := make([]NodeRotation, 0, len(doc.Nodes))
	for i, n := range doc.Nodes {
		r := n.Rotation
		if m, ok := matrixRotation(n.Matrix); ok {
			r = m
		}
		out = append(out, NodeRotation{
			Index:    i,
			Name:     n.Name,
			Rotation: l.convert(r),
		})
	}
	return out
}

// convert maps glTF's (x, y, z, w) order onto the raw-component builder.
// An all-zero rotation means the field was never set and becomes identity.
func (l *Loader) convert(r [4]float64) math3d.Quaternion {
	if r == [4]float64{} {
		return math3d.Identity()
	}
	return math3d.NewWXYZ().
		W(r[3]).
		X(r[0]).
		Y(r[1]).
		Z(r[2]).
		Normalized(l.Normalize).
		Build()
}

var identityMatrix = [16]float64{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1}

// matrixRotation extracts the rotation of a column-major TRS matrix in glTF's
// (x, y, z, w) order. Unset, identity and degenerate matrices report false.
// Mirroring (negative determinant) is not separated out.
func matrixRotation(m [16]float64) ([4]float64, bool) {
	if m == [16]float64{} || m == identityMatrix {
		return [4]float64{}, false
	}

	var cols [3][3]float64
	for c := range 3 {
		sx, sy, sz := m[c*4], m[c*4+1], m[c*4+2]
		scale := math.Sqrt(sx*sx + sy*sy + sz*sz)
		if scale == 0 {
			return [4]float64{}, false
		}
		cols[c] = [3]float64{sx / scale, sy / scale, sz / scale}
	}
	// r reads the unscaled rotation by row and column.
	r := func(row, col int) float64 { return cols[col][row] }

	var w, x, y, z float64
	switch trace := r(0, 0) + r(1, 1) + r(2, 2); {
	case trace > 0:
		s := math.Sqrt(trace+1) * 2
		w = s / 4
		x = (r(2, 1) - r(1, 2)) / s
		y = (r(0, 2) - r(2, 0)) / s
		z = (r(1, 0) - r(0, 1)) / s
	case r(0, 0) > r(1, 1) && r(0, 0) > r(2, 2):
		s := math.Sqrt(1+r(0, 0)-r(1, 1)-r(2, 2)) * 2
		w = (r(2, 1) - r(1, 2)) / s
		x = s / 4
		y = (r(0, 1) + r(1, 0)) / s
		z = (r(0, 2) + r(2, 0)) / s
	case r(1, 1) > r(2, 2):
		s := math.Sqrt(1+r(1, 1)-r(0, 0)-r(2, 2)) * 2
		w = (r(0, 2) - r(2, 0)) / s
		x = (r(0, 1) + r(1, 0)) / s
		y = s / 4
		z = (r(1, 2) + r(2, 1)) / s
	default:
		s := math.Sqrt(1+r(2, 2)-r(0, 0)-r(1, 1)) * 2
		w = (r(1, 0) - r(0, 1)) / s
		x = (r(0, 2) + r(2, 0)) / s
		y = (r(1, 2) + r(2, 1)) / s
		z = s / 4
	}
	return [4]float64{x, y, z, w}, true
}

// Find returns the rotation of the first node called name.
func Find(rs []NodeRotation, name string) (math3d.Quaternion, bool) {
	for _, r := range rs {
		if r.Name == name {
			return r.Rotation, true
		}
	}
	return math3d.Quaternion{}, false
}
