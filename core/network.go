// SPDX-License-Identifier: MIT

// File: network.go
// Role: Flow network construction and read-only queries.
//
// Determinism:
//   - Node indices follow input order; Links(i) preserves declaration order.
//   - Eligible() is sorted ascending by index.
//
// Concurrency:
//   - A Network is immutable after NewNetwork returns; all methods are safe
//     for concurrent use without locks.
package core

import "fmt"

// Network is an immutable flow network.
//
// ids[i] is the ID of node i, rates[i] its rate, links[i] its resolved
// neighbor indices. index maps an ID back to its position.
type Network struct {
	ids      []string
	rates    []int
	links    [][]int
	index    map[string]int
	eligible []int
}

// NewNetwork validates nodes and builds an indexed Network.
//
// Implementation:
//   - Stage 1: Register every node ID (ErrEmptyNodeID, ErrDuplicateNode, ErrNegativeRate).
//   - Stage 2: Resolve links to indices (ErrUnknownNode names both endpoints).
//   - Stage 3: Collect positive-rate nodes (ErrTooManyNodes past MaxMaskBits).
//
// Complexity:
//   - Time O(V + E), Space O(V + E).
func NewNetwork(nodes []Node) (*Network, error) {
	n := len(nodes)
	net := &Network{
		ids:   make([]string, n),
		rates: make([]int, n),
		links: make([][]int, n),
		index: make(map[string]int, n),
	}

	var (
		i    int
		node Node
	)
	for i, node = range nodes {
		if node.ID == "" {
			return nil, fmt.Errorf("%w: node #%d", ErrEmptyNodeID, i)
		}
		if _, dup := net.index[node.ID]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateNode, node.ID)
		}
		if node.Rate < 0 {
			return nil, fmt.Errorf("%w: %q has rate %d", ErrNegativeRate, node.ID, node.Rate)
		}
		net.index[node.ID] = i
		net.ids[i] = node.ID
		net.rates[i] = node.Rate
	}

	for i, node = range nodes {
		row := make([]int, 0, len(node.Links))
		for _, to := range node.Links {
			j, ok := net.index[to]
			if !ok {
				return nil, fmt.Errorf("%w: %q linked from %q", ErrUnknownNode, to, node.ID)
			}
			row = append(row, j)
		}
		net.links[i] = row
	}

	for i = 0; i < n; i++ {
		if net.rates[i] > 0 {
			net.eligible = append(net.eligible, i)
		}
	}
	if len(net.eligible) > MaxMaskBits {
		return nil, fmt.Errorf("%w: %d", ErrTooManyNodes, len(net.eligible))
	}

	return net, nil
}

// Len returns the number of nodes.
func (n *Network) Len() int { return len(n.ids) }

// Index returns the position of id, or false if id is not declared.
func (n *Network) Index(id string) (int, bool) {
	i, ok := n.index[id]
	return i, ok
}

// MustIndex is like Index but reports ErrUnknownNode.
func (n *Network) MustIndex(id string) (int, error) {
	i, ok := n.index[id]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownNode, id)
	}

	return i, nil
}

// ID returns the identifier of node i.
func (n *Network) ID(i int) string { return n.ids[i] }

// Rate returns the rate of node i.
func (n *Network) Rate(i int) int { return n.rates[i] }

// Links returns the neighbor indices of node i. The slice must not be modified.
func (n *Network) Links(i int) []int { return n.links[i] }

// Eligible returns the indices of positive-rate nodes in ascending order.
// The slice must not be modified.
func (n *Network) Eligible() []int { return n.eligible }

// TotalRate sums the rates of all nodes.
func (n *Network) TotalRate() int {
	var sum int
	for _, r := range n.rates {
		sum += r
	}

	return sum
}
