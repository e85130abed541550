// Package pswarm minimizes multivariate functions over box bounds with
// particle-swarm optimization.
//
// 🚀 What is particle swarm?
//
//	A population heuristic: particles fly through the search box, each
//	pulled toward the best point it has seen itself (cognitive term) and
//	the best point the whole swarm has seen (social term), with inertia
//	carrying momentum between sweeps:
//
//	  v ← ω·v + c1·r1·(pbest − x) + c2·r2·(gbest − x)
//	  x ← clamp(x + v, lb, ub)
//
//	r1 and r2 are fresh uniform draws per dimension from a seeded xorwow
//	stream, so a run is fully reproducible from (inputs, seed).
//
// ✨ Key contracts:
//   - Derivative-free and global-ish: no bracket, no gradient, just bounds.
//   - Deterministic per seed; evaluations are strictly sequential.
//   - Exhausting MaxIter is NOT an error — the swarm best comes back
//     silently, like Nelder–Mead and unlike Halley/Ridder.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvlopt/pswarm"
//
//	res, err := pswarm.Minimize(sphere,
//	    []float64{-5, -5}, []float64{5, 5}, nil)
//
// Errors: validation only — ErrNilObjective, ErrBadBounds, ErrBadSwarmSize,
// ErrBadTolerance, ErrBadMaxIter.
//
// Performance: O(MaxIter·Particles) objective evaluations,
// O(Particles·dim) memory.
package pswarm
