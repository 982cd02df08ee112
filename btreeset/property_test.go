package btreeset

import (
	"fmt"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

// model is a plain map-backed reference set checked against
// the tree after every operation, in the style of
// npillmayer/cords' extension_property_test.go.
type model struct {
	present map[int]bool
}

func newModel() *model { return &model{present: map[int]bool{}} }

func (m *model) insert(k int) bool {
	if m.present[k] {
		return false
	}
	m.present[k] = true
	return true
}

func (m *model) remove(k int) bool {
	if !m.present[k] {
		return false
	}
	delete(m.present, k)
	return true
}

func (m *model) sorted() []int {
	out := make([]int, 0, len(m.present))
	for k := range m.present {
		out = append(out, k)
	}
	sort.Ints(out)
	return out
}

func assertTreeMatchesModel(t *testing.T, tr *Tree[int], m *model) {
	t.Helper()
	require.NoError(t, checkInvariants(tr))
	require.Equal(t, len(m.present), tr.Len())
	require.Equal(t, m.sorted(), inOrder(tr))
	for k := range m.present {
		require.Truef(t, tr.Contains(k), "model has %d but tree does not", k)
	}
}

func TestRandomizedInsertRemoveMatchesModel(t *testing.T) {
	for _, degree := range []int{1, 2, 3, 5, 8} {
		degree := degree
		t.Run(fmt.Sprintf("degree=%d", degree), func(t *testing.T) {
			r := rand.New(rand.NewSource(int64(1000 + degree)))
			tr := New[int](degree)
			m := newModel()

			const ops = 600
			const keyspace = 200
			for i := 0; i < ops; i++ {
				k := r.Intn(keyspace) - keyspace/2
				if r.Intn(3) == 0 && len(m.present) > 0 {
					// bias toward removing a key known to be present
					keys := m.sorted()
					k = keys[r.Intn(len(keys))]
					require.Equal(t, m.remove(k), tr.Remove(k))
				} else {
					require.Equal(t, m.insert(k), tr.Insert(k))
				}
				assertTreeMatchesModel(t, tr, m)
			}
		})
	}
}
