package graph

import (
	"fmt"

	"dsu_tool/pkg/unionfind"

	"github.com/awalterschulze/gographviz"
	"github.com/emirpasic/gods/queues/priorityqueue"
	"github.com/emirpasic/gods/utils"
	"golang.org/x/exp/constraints"
)

// Number 是边权可以使用的类型
type Number interface {
	constraints.Integer | constraints.Float
}

// Edge 是按编号表示的无向边
type Edge[W Number] struct {
	From   int
	To     int
	Weight W
}

// NamedEdge 是按节点名表示的无向边
type NamedEdge struct {
	From   string
	To     string
	Weight float64
}

func (e NamedEdge) String() string {
	return fmt.Sprintf("%s -- %s (%g)", e.From, e.To, e.Weight)
}

func (g *Graph) named(e Edge[float64]) NamedEdge {
	return NamedEdge{From: g.name(e.From), To: g.name(e.To), Weight: e.Weight}
}

// MinimumSpanningForest 用 Kruskal 算法求 n 个节点上的最小生成森林
//
// 边按权重从小到大出队，权重相同时按输入顺序。返回选中的边（按选中顺序）和总权重。
// 端点不在 [0, n) 内时返回并查集的越界错误。
func MinimumSpanningForest[W Number](n int, edges []Edge[W]) ([]Edge[W], W, error) {
	var total W
	ds, err := unionfind.New(n)
	if err != nil {
		return nil, total, err
	}

	// 队列里放边的下标，比较时先比权重再比下标
	pq := priorityqueue.NewWith(func(a, b interface{}) int {
		i, j := a.(int), b.(int)
		switch {
		case edges[i].Weight < edges[j].Weight:
			return -1
		case edges[i].Weight > edges[j].Weight:
			return 1
		}
		return utils.IntComparator(i, j)
	})
	for i := range edges {
		pq.Enqueue(i)
	}

	var forest []Edge[W]
	for len(forest) < n-1 {
		v, ok := pq.Dequeue()
		if !ok {
			break
		}
		e := edges[v.(int)]
		merged, err := ds.Union(e.From, e.To)
		if err != nil {
			return nil, total, err
		}
		if merged {
			forest = append(forest, e)
			total += e.Weight
		}
	}
	return forest, total, nil
}

// Kruskal 对 DOT 图求最小生成森林，边权取 weight 属性
func Kruskal(g *Graph) ([]NamedEdge, float64, error) {
	forest, total, err := MinimumSpanningForest(g.Names.Len(), g.Edges)
	if err != nil {
		return nil, 0, err
	}
	out := make([]NamedEdge, len(forest))
	for i, e := range forest {
		out[i] = g.named(e)
	}
	return out, total, nil
}

// ForestToDOT 把生成森林写回 DOT，保留原图所有节点
func ForestToDOT(g *Graph, forest []NamedEdge) (string, error) {
	const name = "MSF"
	out := gographviz.NewGraph()
	if err := out.SetName(name); err != nil {
		return "", err
	}
	if err := out.SetDir(false); err != nil {
		return "", err
	}
	for _, n := range g.Names.Names() {
		if err := out.AddNode(name, n, nil); err != nil {
			return "", err
		}
	}
	for _, e := range forest {
		attrs := map[string]string{"weight": fmt.Sprintf(`"%g"`, e.Weight)}
		if err := out.AddEdge(e.From, e.To, false, attrs); err != nil {
			return "", err
		}
	}
	return out.String(), nil
}
