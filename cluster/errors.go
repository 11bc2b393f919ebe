package cluster

import "errors"

// ErrIndicesNotTriangulated is returned when mesh.Indices' length is not a
// multiple of 3.
var ErrIndicesNotTriangulated = errors.New("cluster: indices length must be a multiple of 3")

// ErrMaterialCountMismatch is returned when a non-empty MaterialIndexes
// doesn't have exactly one entry per triangle.
var ErrMaterialCountMismatch = errors.New("cluster: material_indexes length must equal triangle count or be empty")
