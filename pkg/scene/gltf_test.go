package scene

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/qmuntal/gltf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taigrr/quaternions/pkg/math3d"
)

const eps = 1e-9

func quarterTurnY() [4]float64 {
	s := math.Sin(math.Pi / 4)
	c := math.Cos(math.Pi / 4)
	return [4]float64{0, s, 0, c}
}

func TestLoadRotationsInvalidPath(t *testing.T) {
	_, err := LoadRotations("/nonexistent/path.glb")
	assert.Error(t, err)
}

func TestNewLoader(t *testing.T) {
	loader := NewLoader()
	require.NotNil(t, loader)
	assert.True(t, loader.Normalize, "Normalize should default to true")
}

func TestRotationsComponentOrder(t *testing.T) {
	doc := &gltf.Document{
		Nodes: []*gltf.Node{
			{Name: "turn", Rotation: quarterTurnY()},
			{Name: "unset"},
		},
	}

	rs := NewLoader().Rotations(doc)
	require.Len(t, rs, 2)

	q := rs[0].Rotation
	assert.Equal(t, 0, rs[0].Index)
	assert.Equal(t, "turn", rs[0].Name)
	assert.InDelta(t, math.Cos(math.Pi/4), q.W(), eps)
	assert.InDelta(t, math.Sin(math.Pi/4), q.Y(), eps)
	assert.InDelta(t, 0.0, q.X(), eps)

	v := math3d.V3(1, 0, 0).Rotate(q)
	assert.InDelta(t, -1.0, v.Z(), eps)

	id := rs[1].Rotation
	assert.Equal(t, 1, rs[1].Index)
	assert.Equal(t, 1.0, id.W())
	assert.Zero(t, id.X())
}

func TestRotationsNormalize(t *testing.T) {
	doc := &gltf.Document{
		Nodes: []*gltf.Node{{Name: "scaled", Rotation: [4]float64{0, 0, 0.5, 0.5}}},
	}

	normalized := NewLoader().Rotations(doc)[0].Rotation
	assert.InDelta(t, math.Sqrt2/2, normalized.W(), eps)
	assert.InDelta(t, math.Sqrt2/2, normalized.Z(), eps)
	assert.InDelta(t, math.Sqrt2/2, normalized.Norm(), eps)

	raw := (&Loader{}).Rotations(doc)[0].Rotation
	assert.Equal(t, 0.5, raw.W())
	assert.Equal(t, 0.5, raw.Z())
}

func TestRotationsFromMatrix(t *testing.T) {
	doc := &gltf.Document{
		Nodes: []*gltf.Node{
			// Quarter turn about Y, x scaled by 2, translated.
			{Name: "matrix", Matrix: [16]float64{0, 0, -2, 0, 0, 1, 0, 0, 1, 0, 0, 0, 3, 4, 5, 1}},
			// Half turn about X takes the non-positive trace branch.
			{Name: "flip", Matrix: [16]float64{1, 0, 0, 0, 0, -1, 0, 0, 0, 0, -1, 0, 0, 0, 0, 1}},
			{Name: "identity", Matrix: identityMatrix, Rotation: quarterTurnY()},
		},
	}

	rs := NewLoader().Rotations(doc)
	require.Len(t, rs, 3)

	q := rs[0].Rotation
	assert.InDelta(t, math.Cos(math.Pi/4), q.W(), eps)
	assert.InDelta(t, math.Sin(math.Pi/4), q.Y(), eps)
	assert.InDelta(t, 0.0, q.X(), eps)
	assert.InDelta(t, 0.0, q.Z(), eps)
	v := math3d.V3(1, 0, 0).Rotate(q)
	assert.InDelta(t, -1.0, v.Z(), eps)

	flip := rs[1].Rotation
	assert.InDelta(t, 0.0, flip.W(), eps)
	assert.InDelta(t, 1.0, flip.X(), eps)
	v = math3d.V3(0, 1, 0).Rotate(flip)
	assert.InDelta(t, -1.0, v.Y(), eps)

	// An identity matrix defers to the Rotation field.
	assert.InDelta(t, math.Sin(math.Pi/4), rs[2].Rotation.Y(), eps)
}

func TestFind(t *testing.T) {
	rs := []NodeRotation{
		{Index: 0, Name: "a", Rotation: math3d.Identity()},
		{Index: 1, Name: "b", Rotation: math3d.NewWXYZ().Z(1).Build()},
	}

	q, ok := Find(rs, "b")
	assert.True(t, ok)
	assert.Equal(t, 1.0, q.Z())

	_, ok = Find(rs, "missing")
	assert.False(t, ok)
}

func TestLoadRotationsRoundTrip(t *testing.T) {
	doc := gltf.NewDocument()
	doc.Nodes = append(doc.Nodes, &gltf.Node{Name: "arm", Rotation: quarterTurnY()})

	path := filepath.Join(t.TempDir(), "arm.gltf")
	require.NoError(t, gltf.Save(doc, path))

	rs, err := LoadRotations(path)
	require.NoError(t, err)

	q, ok := Find(rs, "arm")
	require.True(t, ok)
	assert.InDelta(t, math.Sin(math.Pi/4), q.Y(), eps)
	assert.InDelta(t, math.Cos(math.Pi/4), q.W(), eps)
}
