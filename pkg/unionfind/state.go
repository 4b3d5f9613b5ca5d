package unionfind

import (
	"errors"
	"fmt"

	"dsu_tool/pkg/errorutil"

	"github.com/mohae/deepcopy"
)

// ErrCorruptState 导入的 parent/rank 不满足并查集的不变量
var ErrCorruptState = errors.New("并查集状态已损坏")

// State 是并查集内部两个数组的导出形式
type State struct {
	Parent []int
	Rank   []int
}

// State 导出当前 parent/rank 的副本，之后修改并查集不会影响返回值
func (d *DisjointSet) State() State {
	return deepcopy.Copy(State{Parent: d.parent, Rank: d.rank}).(State)
}

func corrupt(format string, args ...any) error {
	return errorutil.NewExitErrorWithMessage(errorutil.CodeCorruptState,
		fmt.Sprintf(format, args...), ErrCorruptState)
}

// FromState 从导出的数组重建并查集
//
// 非根节点的秩必须严格小于父节点的秩。按秩合并和路径压缩都保持这一点，
// 同时它保证沿 parent 走一定会停在某个根上，Find 不会死循环。
// size 和 count 由 parent 重新计算，parent 本身原样保留。
func FromState(s State) (*DisjointSet, error) {
	n := len(s.Parent)
	if len(s.Rank) != n {
		return nil, corrupt("parent 长度 %d 与 rank 长度 %d 不一致", n, len(s.Rank))
	}
	for i, p := range s.Parent {
		if p < 0 || p >= n {
			return nil, corrupt("parent[%d]=%d 不在 [0, %d) 内", i, p, n)
		}
		if s.Rank[i] < 0 {
			return nil, corrupt("rank[%d]=%d 不能为负数", i, s.Rank[i])
		}
		if p != i && s.Rank[i] >= s.Rank[p] {
			return nil, corrupt("rank[%d]=%d 不小于父节点 rank[%d]=%d", i, s.Rank[i], p, s.Rank[p])
		}
	}

	cp := deepcopy.Copy(s).(State)
	d := &DisjointSet{
		parent: cp.Parent,
		rank:   cp.Rank,
		size:   make([]int, n),
	}
	// 传入 nil 切片时拷贝出来也是 nil，统一成空切片
	if d.parent == nil {
		d.parent, d.rank = []int{}, []int{}
	}
	// 不能用 find：导入后树的形状要和快照里一模一样
	roots := make([]int, n)
	for i := range roots {
		roots[i] = -1
	}
	var path []int
	for i := range d.parent {
		path = path[:0]
		x := i
		for roots[x] < 0 && d.parent[x] != x {
			path = append(path, x)
			x = d.parent[x]
		}
		root := x
		if roots[x] >= 0 {
			root = roots[x]
		}
		roots[x] = root
		for _, p := range path {
			roots[p] = root
		}
		d.size[root]++
		if root == i {
			d.count++
		}
	}
	return d, nil
}
