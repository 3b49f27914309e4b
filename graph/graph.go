// Package graph implements the undirected graph store backing the layout
// engine and the all-pairs shortest-distance oracle derived from it.
//
// Vertices are identified by a contiguous range [0, VertexCount()).
// Removing a vertex compacts the range: every id greater than the removed
// one shifts down by one. Callers that keep per-vertex arrays must apply
// the same compaction in the same operation.
package graph

import (
	"errors"
	"fmt"
	"iter"
)

var (
	// ErrIndexOutOfRange is returned when an operation references a vertex
	// id outside [0, VertexCount()).
	ErrIndexOutOfRange = errors.New("graph: vertex index out of range")

	// ErrSelfLoop is returned when an edge would connect a vertex to itself.
	ErrSelfLoop = errors.New("graph: self-loop edge not allowed")

	// ErrEmptyGraph is returned when a removal is requested on a graph with
	// no vertices.
	ErrEmptyGraph = errors.New("graph: operation on empty graph")
)

// Store is an adjacency-list undirected graph with contiguous vertex ids.
// The zero value is an empty graph ready for use.
type Store struct {
	adj [][]int
}

// New creates a graph with n isolated vertices.
func New(n int) *Store {
	return &Store{adj: make([][]int, n)}
}

// VertexCount returns the number of live vertices.
func (s *Store) VertexCount() int {
	return len(s.adj)
}

// AddVertex appends a new isolated vertex and returns its id, which is
// always the previous VertexCount.
func (s *Store) AddVertex() int {
	s.adj = append(s.adj, nil)
	return len(s.adj) - 1
}

// AddEdge connects u and v. Adding an edge that already exists is a no-op.
func (s *Store) AddEdge(u, v int) error {
	if u < 0 || u >= len(s.adj) || v < 0 || v >= len(s.adj) {
		return fmt.Errorf("%w: edge {%d, %d} with %d vertices", ErrIndexOutOfRange, u, v, len(s.adj))
	}
	if u == v {
		return fmt.Errorf("%w: {%d, %d}", ErrSelfLoop, u, v)
	}
	if s.Adjacent(u, v) {
		return nil
	}
	s.adj[u] = append(s.adj[u], v)
	s.adj[v] = append(s.adj[v], u)
	return nil
}

// RemoveVertex deletes vertex id and every incident edge, then compacts the
// id range: all ids greater than id shift down by one.
func (s *Store) RemoveVertex(id int) error {
	if len(s.adj) == 0 {
		return ErrEmptyGraph
	}
	if id < 0 || id >= len(s.adj) {
		return fmt.Errorf("%w: remove %d with %d vertices", ErrIndexOutOfRange, id, len(s.adj))
	}
	s.adj = append(s.adj[:id], s.adj[id+1:]...)
	for u, nbrs := range s.adj {
		kept := nbrs[:0]
		for _, v := range nbrs {
			switch {
			case v == id:
				// incident edge dropped
			case v > id:
				kept = append(kept, v-1)
			default:
				kept = append(kept, v)
			}
		}
		s.adj[u] = kept
	}
	return nil
}

// Resize truncates or extends the vertex range from the high end. Extending
// adds isolated vertices; truncating drops the removed vertices' edges.
func (s *Store) Resize(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: resize to %d", ErrIndexOutOfRange, n)
	}
	for len(s.adj) > n {
		if err := s.RemoveVertex(len(s.adj) - 1); err != nil {
			return err
		}
	}
	for len(s.adj) < n {
		s.AddVertex()
	}
	return nil
}

// Adjacent reports whether an edge {u, v} exists. Out-of-range ids are
// simply not adjacent to anything.
func (s *Store) Adjacent(u, v int) bool {
	if u < 0 || u >= len(s.adj) {
		return false
	}
	for _, n := range s.adj[u] {
		if n == v {
			return true
		}
	}
	return false
}

// Degree returns the number of edges incident to id.
func (s *Store) Degree(id int) (int, error) {
	if id < 0 || id >= len(s.adj) {
		return 0, fmt.Errorf("%w: degree of %d with %d vertices", ErrIndexOutOfRange, id, len(s.adj))
	}
	return len(s.adj[id]), nil
}

// Neighbors returns the ids adjacent to id in insertion order. The returned
// slice is live graph state; callers must not modify it.
func (s *Store) Neighbors(id int) ([]int, error) {
	if id < 0 || id >= len(s.adj) {
		return nil, fmt.Errorf("%w: neighbors of %d with %d vertices", ErrIndexOutOfRange, id, len(s.adj))
	}
	return s.adj[id], nil
}

// Edges yields each undirected edge exactly once as (u, v) with u < v.
func (s *Store) Edges() iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		for u, nbrs := range s.adj {
			for _, v := range nbrs {
				if u < v {
					if !yield(u, v) {
						return
					}
				}
			}
		}
	}
}

// EdgeCount returns the number of undirected edges.
func (s *Store) EdgeCount() int {
	total := 0
	for _, nbrs := range s.adj {
		total += len(nbrs)
	}
	return total / 2
}
