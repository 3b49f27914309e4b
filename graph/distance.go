package graph

// Unreachable is the DistanceMatrix sentinel for vertex pairs in different
// connected components.
const Unreachable = -1

// DistanceMatrix holds unweighted all-pairs shortest distances in edge
// count. It is a point-in-time snapshot: a topology mutation invalidates it
// and callers must request a fresh one via AllPairsDistance.
type DistanceMatrix struct {
	n int
	d []int
}

// Size returns the number of vertices the matrix covers.
func (m *DistanceMatrix) Size() int {
	return m.n
}

// At returns the shortest distance between u and v, or Unreachable if they
// are in different components. At(u, u) is 0 for every live vertex.
func (m *DistanceMatrix) At(u, v int) int {
	return m.d[u*m.n+v]
}

func (m *DistanceMatrix) set(u, v, dist int) {
	m.d[u*m.n+v] = dist
}

// AllPairsDistance recomputes the full distance matrix with a breadth-first
// search from every vertex, O(V*(V+E)).
//
// The matrix is always rebuilt in full. Patching it incrementally after a
// single edge mutation is possible but deliberately not attempted: the
// oracle runs once per topology change, not per tick, so a full rebuild
// keeps the implementation simple at no per-tick cost.
func (s *Store) AllPairsDistance() *DistanceMatrix {
	n := len(s.adj)
	m := &DistanceMatrix{n: n, d: make([]int, n*n)}
	for i := range m.d {
		m.d[i] = Unreachable
	}

	queue := make([]int, 0, n)
	for src := 0; src < n; src++ {
		m.set(src, src, 0)
		queue = append(queue[:0], src)
		for len(queue) > 0 {
			u := queue[0]
			queue = queue[1:]
			du := m.At(src, u)
			for _, v := range s.adj[u] {
				if m.At(src, v) == Unreachable {
					m.set(src, v, du+1)
					queue = append(queue, v)
				}
			}
		}
	}
	return m
}
