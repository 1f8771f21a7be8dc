// SPDX-License-Identifier: MIT

// File: types.go
// Role: Sentinel errors, limits and input value types of the core model.
package core

import (
	"errors"
	"math"
)

// Sentinel errors for network construction.
var (
	// ErrEmptyNodeID indicates that a Node has an empty ID.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrDuplicateNode indicates that two nodes were declared with the same ID.
	ErrDuplicateNode = errors.New("core: duplicate node")

	// ErrUnknownNode indicates a reference to a node that was never declared.
	ErrUnknownNode = errors.New("core: unknown node")

	// ErrNegativeRate indicates a node with a negative rate.
	ErrNegativeRate = errors.New("core: negative rate")

	// ErrTooManyNodes indicates more eligible nodes than a Mask can address.
	ErrTooManyNodes = errors.New("core: too many eligible nodes for a 64-bit mask")
)

// Sentinel errors for cookbook construction.
var (
	// ErrEmptyResourceID indicates that a resource name is empty.
	ErrEmptyResourceID = errors.New("core: resource ID is empty")

	// ErrBadQuantity indicates an ingredient quantity or initial rate outside 1..MaxQuantity.
	ErrBadQuantity = errors.New("core: quantity out of range")

	// ErrTooManyResources indicates more than MaxResources distinct resources.
	ErrTooManyResources = errors.New("core: too many resources")

	// ErrTargetNotProduced indicates that no recipe outputs the target resource.
	ErrTargetNotProduced = errors.New("core: target resource is not produced by any recipe")

	// ErrNoRecipes indicates an empty recipe list.
	ErrNoRecipes = errors.New("core: cookbook has no recipes")
)

// MaxResources bounds the number of distinct resources in a Cookbook.
// It fixes the width of Resources so that search states stay comparable.
const MaxResources = 8

// MaxQuantity bounds every ingredient quantity and initial rate.
const MaxQuantity = math.MaxInt32

// MaxMaskBits is the number of elements a Mask can address.
const MaxMaskBits = 64

// Node is one vertex of a flow network.
//
// Rate is the value released per minute once the node is opened.
// Links name the nodes reachable in one step.
type Node struct {
	// ID uniquely identifies this Node within its Network.
	ID string

	// Rate is the per-minute value gained after activation. Zero-rate nodes
	// are pass-through only.
	Rate int

	// Links lists the IDs of directly connected nodes.
	Links []string
}

// Ingredient is one input requirement of a Recipe.
type Ingredient struct {
	// Resource names the consumed resource.
	Resource string

	// Quantity is the amount consumed per build, in 1..MaxQuantity.
	Quantity int
}

// Recipe adds one unit of production rate for Output in exchange for Inputs.
type Recipe struct {
	// Output names the resource whose rate increases by one.
	Output string

	// Inputs lists the stock consumed by one build. May be empty.
	Inputs []Ingredient
}

// CookbookOption configures optional Cookbook properties.
type CookbookOption func(*cookbookConfig)

type cookbookConfig struct {
	initial map[string]int
	order   []string
}

// WithInitialRate sets the production rate of resource at the start of a search.
// Calling it twice for the same resource keeps the last value.
func WithInitialRate(resource string, rate int) CookbookOption {
	return func(c *cookbookConfig) {
		if c.initial == nil {
			c.initial = make(map[string]int)
		}
		if _, seen := c.initial[resource]; !seen {
			c.order = append(c.order, resource)
		}
		c.initial[resource] = rate
	}
}
