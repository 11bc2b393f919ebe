// Package edgehash identifies pairs of half-edges that share the same pair
// of vertex positions in opposite winding order — the two sides of a shared
// triangle edge — using bitwise-exact position hashing (no epsilon).
//
// Half-edge e addresses the directed edge from indices[e] to
// indices[Cycle3(e)]; owning triangle is e/3. Positions are hashed with a
// MurmurHash3-32 finalize mix; two half-edges match iff their
// endpoint positions compare bitwise-equal in swapped order.
//
// Callers must weld coincident vertex positions upstream: this package
// compares positions, not vertex indices, and never applies tolerance.
package edgehash
