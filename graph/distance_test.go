package graph

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistancePathGraph(t *testing.T) {
	s := New(5)
	for v := 1; v < 5; v++ {
		require.NoError(t, s.AddEdge(v-1, v))
	}

	m := s.AllPairsDistance()
	require.Equal(t, 5, m.Size())
	for u := 0; u < 5; u++ {
		for v := 0; v < 5; v++ {
			want := u - v
			if want < 0 {
				want = -want
			}
			assert.Equal(t, want, m.At(u, v), "distance %d-%d", u, v)
		}
	}
}

func TestDistanceDisconnectedComponents(t *testing.T) {
	s := New(4)
	require.NoError(t, s.AddEdge(0, 1))
	require.NoError(t, s.AddEdge(2, 3))

	m := s.AllPairsDistance()
	assert.Equal(t, 1, m.At(0, 1))
	assert.Equal(t, 1, m.At(2, 3))
	assert.Equal(t, Unreachable, m.At(0, 2))
	assert.Equal(t, Unreachable, m.At(1, 3))
}

func TestDistanceEmptyGraph(t *testing.T) {
	m := New(0).AllPairsDistance()
	assert.Equal(t, 0, m.Size())
}

// bruteDistance is an independent single-source BFS used as the reference.
func bruteDistance(s *Store, src int) []int {
	dist := make([]int, s.VertexCount())
	for i := range dist {
		dist[i] = Unreachable
	}
	dist[src] = 0
	queue := []int{src}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		nbrs, _ := s.Neighbors(u)
		for _, v := range nbrs {
			if dist[v] == Unreachable {
				dist[v] = dist[u] + 1
				queue = append(queue, v)
			}
		}
	}
	return dist
}

func TestDistanceMatchesBruteForceOnRandomGraphs(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 13))
	for trial := 0; trial < 50; trial++ {
		n := rng.IntN(20) + 1
		s := New(n)
		edges := rng.IntN(2 * n)
		for i := 0; i < edges; i++ {
			u, v := rng.IntN(n), rng.IntN(n)
			if u != v {
				require.NoError(t, s.AddEdge(u, v))
			}
		}

		m := s.AllPairsDistance()
		for u := 0; u < n; u++ {
			want := bruteDistance(s, u)
			for v := 0; v < n; v++ {
				require.Equal(t, want[v], m.At(u, v), "n=%d trial=%d pair %d-%d", n, trial, u, v)
				// symmetry
				require.Equal(t, m.At(u, v), m.At(v, u))
			}
			require.Equal(t, 0, m.At(u, u))
		}
	}
}
