// Package parallelfor implements a data-parallel work-unit driver: it
// invokes a body callback once per index in [0, N) in unspecified order
// across a bounded worker pool, then returns once every index has run.
//
// Built on golang.org/x/sync/errgroup over a closed task channel. Body
// callbacks here never fail, so the errgroup is used purely for its bounded
// worker pool and Wait() barrier, not for error propagation.
package parallelfor
