// SPDX-License-Identifier: MIT

// Package core defines the immutable inputs of the time-bounded search:
// flow networks (nodes with a rate and unweighted links), cookbooks
// (recipes that buy one more unit of production for a resource), and the
// fixed-width value types used as canonical search keys.
//
// The model is built once, validated eagerly, and never mutated afterwards,
// so a *Network or *Cookbook can be shared read-only across goroutines.
//
// Network:
//
//	NewNetwork(nodes []Node) (*Network, error)
//
//	  – Nodes are indexed densely in input order (Index, ID).
//	  – Links are resolved to indices; a link to an undeclared node is fatal.
//	  – Eligible() lists the positive-rate nodes, the only ones worth opening.
//
// Cookbook:
//
//	NewCookbook(id int, target string, recipes []Recipe, opts ...CookbookOption) (*Cookbook, error)
//
//	  – Resources are registered in first-seen order (outputs, then inputs), at most MaxResources.
//	  – Target is the scored resource; at least one recipe must produce it.
//	  – MaxRequired()[r] is the largest single requirement of r across all recipes.
//
// Value types:
//
//	Mask       – uint64 bit set; O(1) equality and hashing, usable as a map key.
//	Resources  – [MaxResources]int64 per-resource vector; comparable.
//
// Errors:
//
//	ErrEmptyNodeID       - node ID is the empty string.
//	ErrDuplicateNode     - two nodes share an ID.
//	ErrUnknownNode       - a link or lookup names an undeclared node.
//	ErrNegativeRate      - a node declares a negative rate.
//	ErrTooManyNodes      - more eligible nodes than a Mask can hold.
//	ErrEmptyResourceID   - resource name is the empty string.
//	ErrBadQuantity       - a recipe input quantity or initial rate is outside 1..MaxQuantity.
//	ErrTooManyResources  - more than MaxResources distinct resources.
//	ErrTargetNotProduced - no recipe outputs the target resource.
//	ErrNoRecipes         - the cookbook has no recipes.
package core
