package graph_test

import (
	"strings"
	"testing"

	"dsu_tool/pkg/errorutil"
	"dsu_tool/pkg/graph"
	"dsu_tool/pkg/unionfind"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDOT = `graph G {
	a; b; c; d; e; f; lonely;
	a -- b [weight=4];
	b -- c [weight=1];
	a -- c [weight=2];
	d -- e [weight=7];
	e -- f [weight=3];
	d -- f [weight=3];
}`

func mustParse(t *testing.T, src string) *graph.Graph {
	t.Helper()
	g, err := graph.ParseDOT([]byte(src))
	require.NoError(t, err)
	return g
}

func TestComponents(t *testing.T) {
	g := mustParse(t, sampleDOT)
	comps, ds, err := graph.Components(g)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"a", "b", "c"}, {"d", "e", "f"}, {"lonely"}}, comps)
	assert.Equal(t, 3, ds.Count())
}

func TestFindCycleEdge(t *testing.T) {
	tests := []struct {
		name      string
		src       string
		wantCycle bool
		wantEdge  string
	}{
		{"triangle", sampleDOT, true, "a -- c (2)"},
		{"path", `graph G { x -- y; y -- z; }`, false, ""},
		{"self loop", `graph G { x -- x; }`, true, "x -- x (1)"},
		{"directed back edge", `digraph G { p -> q; q -> p; }`, true, "q -- p (1)"},
		{"empty", `graph G {}`, false, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, found, err := graph.FindCycleEdge(mustParse(t, tt.src))
			require.NoError(t, err)
			assert.Equal(t, tt.wantCycle, found)
			if tt.wantCycle {
				assert.Equal(t, tt.wantEdge, e.String())
			}
		})
	}
}

func TestKruskal(t *testing.T) {
	g := mustParse(t, sampleDOT)
	forest, total, err := graph.Kruskal(g)
	require.NoError(t, err)

	var got []string
	for _, e := range forest {
		got = append(got, e.String())
	}
	// 权重 3 的两条边按输入顺序，先 e--f 再 d--f
	assert.Equal(t, []string{"b -- c (1)", "a -- c (2)", "e -- f (3)", "d -- f (3)"}, got)
	assert.Equal(t, 9.0, total)

	dot, err := graph.ForestToDOT(g, forest)
	require.NoError(t, err)
	t.Log("\n" + dot)
	back := mustParse(t, dot)
	assert.Equal(t, 7, back.Names.Len())
	assert.Len(t, back.Edges, 4)
}

func TestMinimumSpanningForestIntWeights(t *testing.T) {
	edges := []graph.Edge[int]{
		{From: 0, To: 1, Weight: 5},
		{From: 1, To: 2, Weight: 5},
		{From: 0, To: 2, Weight: 1},
		{From: 2, To: 3, Weight: 9},
	}
	forest, total, err := graph.MinimumSpanningForest(4, edges)
	require.NoError(t, err)
	assert.Equal(t, 15, total)
	assert.Equal(t, []graph.Edge[int]{edges[2], edges[0], edges[3]}, forest)

	_, _, err = graph.MinimumSpanningForest(2, []graph.Edge[int]{{From: 0, To: 5, Weight: 1}})
	assert.ErrorIs(t, err, unionfind.ErrOutOfRange)

	_, _, err = graph.MinimumSpanningForest[int](-1, nil)
	assert.ErrorIs(t, err, unionfind.ErrInvalidSize)
}

func TestParseDOTErrors(t *testing.T) {
	_, err := graph.ParseDOT([]byte(`graph G { a -- `))
	assert.Equal(t, errorutil.CodeInvalidData, errorutil.ExitCodeFromError(err))

	_, err = graph.ParseDOT([]byte(`graph G { a -- b [weight=heavy]; }`))
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "weight"))

	_, err = graph.LoadDOT("/nonexistent/graph.dot")
	assert.Equal(t, errorutil.CodeMissingInput, errorutil.ExitCodeFromError(err))
}
