package vec3

import "math"

// AABB is an axis-aligned bounding box. An empty box holds inverted
// extremes so the first AddPoint establishes real bounds.
type AABB struct {
	Min Vec3
	Max Vec3
}

// EmptyAABB returns a box with no volume, ready for AddPoint/AddBox folds.
func EmptyAABB() AABB {
	inf := float32(math.MaxFloat32)
	return AABB{Min: Vec3{inf, inf, inf}, Max: Vec3{-inf, -inf, -inf}}
}

// AddPoint grows the box to include p.
func (b AABB) AddPoint(p Vec3) AABB {
	return AABB{Min: Min(b.Min, p), Max: Max(b.Max, p)}
}

// AddBox grows the box to include other.
func (b AABB) AddBox(other AABB) AABB {
	return AABB{Min: Min(b.Min, other.Min), Max: Max(b.Max, other.Max)}
}

// Center returns the midpoint of the box.
func (b AABB) Center() Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// Dimensions returns the box's extents, clamped to non-negative.
func (b AABB) Dimensions() Vec3 {
	d := b.Max.Sub(b.Min)
	return Max(d, Vec3{})
}
