// SPDX-License-Identifier: MIT

package distance

import "github.com/katalvlaran/timebound/core"

// AllPairs computes the shortest step count between every pair of nodes in net.
// The returned Matrix is never mutated afterwards.
func AllPairs(net *core.Network, opts ...Option) (*Matrix, error) {
	if net == nil {
		return nil, ErrNilNetwork
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	m := newMatrix(net.Len())
	var fill func(src int)
	switch o.Method {
	case BreadthFirst:
		w := &layerWalker{net: net, m: m, queue: make([]int, 0, net.Len())}
		fill = w.walk
	default:
		r := &relaxer{net: net, m: m}
		fill = r.walk
	}

	for src := 0; src < net.Len(); src++ {
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}
		fill(src)
	}

	return m, nil
}

// relaxer lowers d[src][·] by depth-first relax-and-recurse.
type relaxer struct {
	net *core.Network
	m   *Matrix
	src int
}

func (r *relaxer) walk(src int) {
	r.src = src
	r.relax(src, 0)
}

// relax tries every link out of cur with path length steps+1. A neighbor is
// only revisited when its recorded distance strictly drops, which bounds the
// recursion by the number of distinct distance values.
func (r *relaxer) relax(cur, steps int) {
	next := steps + 1
	for _, v := range r.net.Links(cur) {
		if next < r.m.At(r.src, v) {
			r.m.set(r.src, v, next)
			r.relax(v, next)
		}
	}
}

// layerWalker fills d[src][·] in non-decreasing distance order.
type layerWalker struct {
	net   *core.Network
	m     *Matrix
	queue []int
}

func (w *layerWalker) walk(src int) {
	w.queue = append(w.queue[:0], src)
	for head := 0; head < len(w.queue); head++ {
		cur := w.queue[head]
		next := w.m.At(src, cur) + 1
		for _, v := range w.net.Links(cur) {
			if w.m.Reachable(src, v) {
				continue
			}
			w.m.set(src, v, next)
			w.queue = append(w.queue, v)
		}
	}
}
