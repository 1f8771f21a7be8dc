// SPDX-License-Identifier: MIT

// Package distance computes all-pairs shortest step counts over a core.Network.
//
// What
//
//   - AllPairs(net, opts...) returns an immutable n×n Matrix where At(u, v) is the
//     minimum number of links from u to v.
//   - At(v, v) == 0 for every v.
//   - Pairs with no route hold Unreachable, a sentinel larger than any real
//     distance; check Reachable before doing arithmetic with At.
//
// Methods
//
//   - Relaxation (default): for every source, a depth-first walk that lowers
//     d[src][v] whenever it finds a shorter route and only then continues from v.
//     With uniform edge weights every improvement strictly shortens a path, so the
//     walk terminates and converges to the same result as BFS.
//   - BreadthFirst: a queue-driven layer walk per source. Produces the identical
//     matrix; useful as an independent cross-check and on dense graphs where the
//     relaxation revisits vertices many times.
//
// Complexity (V = nodes, E = links)
//
//   - BreadthFirst: O(V·(V + E)) time.
//   - Relaxation:   O(V·(V + E)) typical, worse on adversarial link orders.
//   - Memory:       O(V²) for the matrix.
//
// Options
//
//   - WithMethod(m)    select Relaxation or BreadthFirst.
//   - WithContext(ctx) cancellation, checked between sources.
//
// Errors
//
//   - ErrNilNetwork       if net is nil.
//   - ErrOptionViolation  for an unknown Method.
//   - ctx.Err()           if the context is done.
package distance
