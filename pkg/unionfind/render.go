package unionfind

import (
	"fmt"

	"dsu_tool/pkg/treeprinter"
)

// Render 按 parent 指针原样画出森林，不做路径压缩
//
// 根按编号升序，孩子也按编号升序，每个节点后面带秩，比如 "3(r=1)"。
func Render(d *DisjointSet, style int) string {
	nodes := make([]*treeprinter.MultiNode, d.Len())
	for i := range nodes {
		nodes[i] = &treeprinter.MultiNode{Data: i}
	}
	var roots []*treeprinter.MultiNode
	for i, p := range d.parent {
		if p == i {
			roots = append(roots, nodes[i])
			continue
		}
		nodes[p].Children = append(nodes[p].Children, nodes[i])
	}
	return treeprinter.PrintForest(roots, style, func(n *treeprinter.MultiNode) string {
		id := n.Data.(int)
		return fmt.Sprintf("%d(r=%d)", id, d.rank[id])
	})
}
