// SPDX-License-Identifier: MIT

// File: cookbook.go
// Role: Recipe set construction and read-only queries.
//
// Determinism:
//   - Resource indices follow first-seen order over recipes (output, then inputs)
//     and then initial-rate options.
//   - Recipe(i) preserves input order.
//
// Concurrency:
//   - A Cookbook is immutable after NewCookbook returns.
package core

import "fmt"

// Resources is a per-resource quantity vector indexed by Cookbook resource index.
type Resources [MaxResources]int64

// Covers reports whether r holds at least cost of every resource.
func (r Resources) Covers(cost Resources) bool {
	for i := range r {
		if r[i] < cost[i] {
			return false
		}
	}

	return true
}

// AddScaled returns r + k·o.
func (r Resources) AddScaled(o Resources, k int64) Resources {
	for i := range r {
		r[i] += k * o[i]
	}

	return r
}

// Sub returns r − o.
func (r Resources) Sub(o Resources) Resources {
	for i := range r {
		r[i] -= o[i]
	}

	return r
}

// Cookbook is an immutable, indexed set of recipes with a scored target resource.
type Cookbook struct {
	id        int
	names     []string
	index     map[string]int
	target    int
	outputs   []int
	costs     []Resources
	initial   Resources
	maxNeeded Resources
}

// NewCookbook validates recipes and builds a Cookbook scored on target.
//
// id is an opaque caller-chosen identifier (the blueprint number in batch runs).
// Initial production defaults to zero for every resource; use WithInitialRate.
//
// Errors: ErrNoRecipes, ErrEmptyResourceID, ErrBadQuantity, ErrTooManyResources,
// ErrTargetNotProduced.
func NewCookbook(id int, target string, recipes []Recipe, opts ...CookbookOption) (*Cookbook, error) {
	if len(recipes) == 0 {
		return nil, ErrNoRecipes
	}
	var cfg cookbookConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	cb := &Cookbook{
		id:      id,
		index:   make(map[string]int, MaxResources),
		outputs: make([]int, len(recipes)),
		costs:   make([]Resources, len(recipes)),
	}

	for i, rc := range recipes {
		out, err := cb.register(rc.Output)
		if err != nil {
			return nil, fmt.Errorf("recipe #%d: %w", i, err)
		}
		cb.outputs[i] = out
		for _, ing := range rc.Inputs {
			in, err := cb.register(ing.Resource)
			if err != nil {
				return nil, fmt.Errorf("recipe #%d: %w", i, err)
			}
			if ing.Quantity <= 0 || ing.Quantity > MaxQuantity {
				return nil, fmt.Errorf("%w: recipe #%d needs %d %s", ErrBadQuantity, i, ing.Quantity, ing.Resource)
			}
			cb.costs[i][in] += int64(ing.Quantity)
			if cb.costs[i][in] > MaxQuantity {
				return nil, fmt.Errorf("%w: recipe #%d needs %d %s in total", ErrBadQuantity, i, cb.costs[i][in], ing.Resource)
			}
		}
	}

	for _, name := range cfg.order {
		rate := cfg.initial[name]
		if rate <= 0 || rate > MaxQuantity {
			return nil, fmt.Errorf("%w: initial rate %d for %s", ErrBadQuantity, rate, name)
		}
		idx, err := cb.register(name)
		if err != nil {
			return nil, err
		}
		cb.initial[idx] = int64(rate)
	}

	t, ok := cb.index[target]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrTargetNotProduced, target)
	}
	cb.target = t
	// target is registered only through outputs or initial rates; make sure a recipe builds it.
	produced := false
	for _, out := range cb.outputs {
		if out == t {
			produced = true
			break
		}
	}
	if !produced {
		return nil, fmt.Errorf("%w: %q", ErrTargetNotProduced, target)
	}

	for _, cost := range cb.costs {
		for r := range cost {
			if cost[r] > cb.maxNeeded[r] {
				cb.maxNeeded[r] = cost[r]
			}
		}
	}

	return cb, nil
}

// register returns the index of name, allocating one on first sight.
func (cb *Cookbook) register(name string) (int, error) {
	if name == "" {
		return 0, ErrEmptyResourceID
	}
	if i, ok := cb.index[name]; ok {
		return i, nil
	}
	if len(cb.names) == MaxResources {
		return 0, fmt.Errorf("%w: %q would be resource #%d (max %d)", ErrTooManyResources, name, len(cb.names)+1, MaxResources)
	}
	cb.index[name] = len(cb.names)
	cb.names = append(cb.names, name)

	return len(cb.names) - 1, nil
}

// ID returns the caller-chosen identifier.
func (cb *Cookbook) ID() int { return cb.id }

// Target returns the index of the scored resource.
func (cb *Cookbook) Target() int { return cb.target }

// NumResources returns the number of registered resources.
func (cb *Cookbook) NumResources() int { return len(cb.names) }

// ResourceName returns the name of resource i.
func (cb *Cookbook) ResourceName(i int) string { return cb.names[i] }

// ResourceIndex returns the index of name, or false if unknown.
func (cb *Cookbook) ResourceIndex(name string) (int, bool) {
	i, ok := cb.index[name]
	return i, ok
}

// NumRecipes returns the number of recipes.
func (cb *Cookbook) NumRecipes() int { return len(cb.outputs) }

// Recipe returns the output resource index and the cost vector of recipe i.
func (cb *Cookbook) Recipe(i int) (output int, cost Resources) {
	return cb.outputs[i], cb.costs[i]
}

// Initial returns the production rate vector at the start of a search.
func (cb *Cookbook) Initial() Resources { return cb.initial }

// MaxRequired returns, per resource, the largest amount any single recipe consumes.
// Production beyond this rate can never be spent.
func (cb *Cookbook) MaxRequired() Resources { return cb.maxNeeded }
