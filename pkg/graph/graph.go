// Package graph holds the deduplicated dependency graph of a texture build
// and the machinery that constructs and executes it.
//
// # Structure
//
// A [Graph] contains one [Node] per structurally distinct task
// specification. Nodes are registered children-first by the [Builder], so
// the insertion order is already a topological order and shared sub-trees
// collapse to a single node no matter how many catalogue entries reference
// them. Producers and consumers are wired through string asset bindings: a
// node publishes its output under "<display>::output" and each consumer slot
// claims "<display>::<slot>". A binding claimed twice means two distinct
// nodes produced the same display form, which is a deduplication bug and
// rejected at registration time.
//
// # Execution
//
// [Execute] drives the graph with a bounded worker group. Every node's body
// runs behind a [lazy.Task], so a result demanded by several consumers is
// rendered exactly once and shared; failures propagate to dependents as
// dependency errors while unrelated branches keep going.
package graph

import (
	"context"
	"errors"

	"github.com/tilesmith/tilesmith/pkg/pixel"
	"github.com/tilesmith/tilesmith/pkg/taskspec"
)

var (
	// ErrNoneSpec is returned by [Builder.AddTo] when the none placeholder
	// reaches the graph. This is a catalogue bug, not a user error.
	ErrNoneSpec = errors.New("cannot add the none placeholder to a graph")

	// ErrInvalidTileWidth is returned by [Builder.AddTo] when the
	// configured tile width is not positive.
	ErrInvalidTileWidth = errors.New("tile width must be positive")

	// ErrDuplicateNode is returned by [Graph.AddNode] when a node with the
	// same structural key is registered twice. The builder's visited set
	// should make this impossible; seeing it means the dedup walk is
	// broken.
	ErrDuplicateNode = errors.New("duplicate node key")

	// ErrDuplicateBinding is returned by [Graph.AddNode] when an asset
	// binding string is claimed by two nodes.
	ErrDuplicateBinding = errors.New("duplicate asset binding")

	// ErrUnknownInput is returned by [Graph.AddNode] when a node declares
	// an input whose producer has not been registered. Children must be
	// added before their dependents.
	ErrUnknownInput = errors.New("unknown input node")
)

// NodeFunc is the executable body of a node. It receives the rendered
// outputs of the node's dependencies keyed by slot name and returns the
// node's own output buffer. Bodies must not mutate their inputs.
type NodeFunc func(ctx context.Context, inputs map[string]*pixel.Pixmap) (*pixel.Pixmap, error)

// Node is one registered computation in the build graph.
type Node struct {
	// Key is the structural identity of the spec, unique per graph.
	Key string
	// Spec is the task specification this node was built from.
	Spec taskspec.Spec
	// Display is the human-readable form used in asset bindings, logs,
	// and DOT exports.
	Display string
	// Inputs maps slot names to the keys of producer nodes.
	Inputs map[string]string
	// Sink marks terminal nodes with externally visible output.
	Sink bool
	// Retain keeps the node's inputs and output out of buffer recycling.
	// Set for nodes that memoize buffers across executions of the graph.
	Retain bool
	// Destinations holds the resolved output paths of a sink node.
	Destinations []string
	// Run is the node body.
	Run NodeFunc
}

// OutputAsset returns the asset string under which the node publishes its
// result.
func (n *Node) OutputAsset() string { return n.Display + "::output" }

// Graph is a mutable dependency graph under construction. It is not safe
// for concurrent mutation; build it single-threaded, then execute.
type Graph struct {
	nodes  map[string]*Node
	order  []string
	assets map[string]string // asset binding -> owning node key
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{
		nodes:  make(map[string]*Node),
		assets: make(map[string]string),
	}
}

// AddNode registers a node. Its inputs must already be present, its key must
// be new, and every asset binding it claims must be unclaimed.
func (g *Graph) AddNode(n *Node) error {
	if _, exists := g.nodes[n.Key]; exists {
		return ErrDuplicateNode
	}
	for slot, depKey := range n.Inputs {
		if _, ok := g.nodes[depKey]; !ok {
			return errors.Join(ErrUnknownInput, errors.New("slot "+slot))
		}
	}

	bindings := []string{n.OutputAsset()}
	for slot := range n.Inputs {
		bindings = append(bindings, n.Display+"::"+slot)
	}
	for _, b := range bindings {
		if owner, taken := g.assets[b]; taken {
			return errors.Join(ErrDuplicateBinding,
				errors.New("binding "+b+" already owned by node "+owner))
		}
	}
	for _, b := range bindings {
		g.assets[b] = n.Key
	}

	g.nodes[n.Key] = n
	g.order = append(g.order, n.Key)
	return nil
}

// Node returns the node with the given structural key.
func (g *Graph) Node(key string) (*Node, bool) {
	n, ok := g.nodes[key]
	return n, ok
}

// NodeCount returns the number of registered nodes.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of input edges across all nodes.
func (g *Graph) EdgeCount() int {
	edges := 0
	for _, key := range g.order {
		edges += len(g.nodes[key].Inputs)
	}
	return edges
}

// TopoOrder returns the nodes in dependency-before-dependent order.
// The slice is freshly allocated; the nodes are shared.
func (g *Graph) TopoOrder() []*Node {
	out := make([]*Node, len(g.order))
	for i, key := range g.order {
		out[i] = g.nodes[key]
	}
	return out
}

// Sinks returns the terminal nodes in registration order.
func (g *Graph) Sinks() []*Node {
	var sinks []*Node
	for _, key := range g.order {
		if n := g.nodes[key]; n.Sink {
			sinks = append(sinks, n)
		}
	}
	return sinks
}

// Consumers returns how many registered nodes consume each node's output,
// keyed by producer key. Nodes absent from the map have no consumers.
func (g *Graph) Consumers() map[string]int {
	counts := make(map[string]int)
	for _, key := range g.order {
		for _, depKey := range g.nodes[key].Inputs {
			counts[depKey]++
		}
	}
	return counts
}
