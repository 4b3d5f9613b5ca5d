// Package graph 把并查集用在无向图上：连通分量、成环检测和最小生成森林（Kruskal）。
//
// 输入是 DOT 格式的图，有向边也按无向边处理。节点名到编号的映射由 labels.Interner 完成，
// 编号按节点在文件里第一次出现的顺序分配。
package graph

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"dsu_tool/pkg/errorutil"
	"dsu_tool/pkg/labels"
	"dsu_tool/pkg/unionfind"

	"github.com/awalterschulze/gographviz"
)

// DefaultWeight 边上没有 weight 属性时使用的权重
const DefaultWeight = 1.0

// Graph 是解析好的 DOT 图加上节点编号
type Graph struct {
	Dot   *gographviz.Graph
	Names *labels.Interner
	Edges []Edge[float64]
}

// ParseDOT 解析 DOT 文本
func ParseDOT(data []byte) (*Graph, error) {
	graphAst, err := gographviz.Parse(data)
	if err != nil {
		return nil, errorutil.NewExitErrorWithMessage(errorutil.CodeInvalidData, "无法解析 DOT 输入", err)
	}
	dot := gographviz.NewGraph()
	if err := gographviz.Analyse(graphAst, dot); err != nil {
		return nil, errorutil.NewExitErrorWithMessage(errorutil.CodeInvalidData, "无法分析 DOT 图", err)
	}

	g := &Graph{Dot: dot, Names: labels.NewInterner()}
	// 先登记孤立节点，保证没有边的节点也有编号
	for _, n := range dot.Nodes.Nodes {
		g.Names.Intern(n.Name)
	}
	for i, e := range dot.Edges.Edges {
		w := DefaultWeight
		if raw, ok := e.Attrs["weight"]; ok {
			w, err = strconv.ParseFloat(strings.Trim(raw, `"`), 64)
			if err != nil {
				return nil, errorutil.NewExitErrorWithMessage(errorutil.CodeInvalidData,
					fmt.Sprintf("第 %d 条边 %s -- %s 的 weight=%s 不是数字", i+1, e.Src, e.Dst, raw), err)
			}
		}
		g.Edges = append(g.Edges, Edge[float64]{
			From:   g.Names.Intern(e.Src),
			To:     g.Names.Intern(e.Dst),
			Weight: w,
		})
	}
	return g, nil
}

// LoadDOT 从文件读取 DOT 图
func LoadDOT(path string) (*Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errorutil.NewExitErrorWithMessage(errorutil.CodeMissingInput,
			fmt.Sprintf("无法读取 DOT 文件 %s", path), err)
	}
	return ParseDOT(data)
}

func (g *Graph) name(id int) string {
	name, _ := g.Names.Name(id)
	return name
}

// Components 返回所有连通分量，分量内按节点编号排序，分量之间按最小编号排序
func Components(g *Graph) ([][]string, *unionfind.DisjointSet, error) {
	ds, err := unionfind.New(g.Names.Len())
	if err != nil {
		return nil, nil, err
	}
	for _, e := range g.Edges {
		if _, err := ds.Union(e.From, e.To); err != nil {
			return nil, nil, err
		}
	}
	var out [][]string
	for _, group := range ds.Groups() {
		names := make([]string, len(group))
		for i, id := range group {
			names[i] = g.name(id)
		}
		out = append(out, names)
	}
	return out, ds, nil
}

// FindCycleEdge 按输入顺序加边，返回第一条让无向图成环的边
//
// 一条边的两端已经连通时 Union 返回 false，这条边就闭合了一个环；自环也算。
func FindCycleEdge(g *Graph) (NamedEdge, bool, error) {
	ds, err := unionfind.New(g.Names.Len())
	if err != nil {
		return NamedEdge{}, false, err
	}
	for _, e := range g.Edges {
		merged, err := ds.Union(e.From, e.To)
		if err != nil {
			return NamedEdge{}, false, err
		}
		if !merged {
			return g.named(e), true, nil
		}
	}
	return NamedEdge{}, false, nil
}
