// Package adjacency stores per-half-edge neighbor relations: one fast
// direct slot for the common manifold case (exactly one opposite half-edge)
// plus an overflow multimap for non-manifold edges matched by more than one
// opposite half-edge.
//
// direct[e] is one of:
//
//	-1  unlinked
//	-2  complex (more than one candidate seen; resolved later via extended)
//	e'  the single direct neighbor
//
// Link keeps direct[e] == e' implies direct[e'] == e; extended holds
// symmetric pairs with no duplicate value per key (see AddUnique). Callers
// that write Direct themselves can break the first rule: the cluster
// orchestrator sets direct[e] = e' for a single-match edge even when e' is
// Complex, and Link then also records e in extended[e'] and e' in
// extended[e], so ForAll(e) visits e' twice.
package adjacency
