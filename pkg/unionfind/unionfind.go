// Package unionfind 实现固定大小的并查集（disjoint set），元素编号为 [0, N)。
//
// 查找使用路径压缩，合并使用按秩合并，摊还复杂度接近常数。
// DisjointSet 不是并发安全的：Find 也会改写内部的 parent 数组，
// 多个 goroutine 同时使用时由调用方加锁，或者直接用 Locked 包装。
package unionfind

import (
	"errors"
	"fmt"
	"sort"

	"dsu_tool/pkg/errorutil"
)

var (
	// ErrOutOfRange 元素编号不在 [0, N) 内
	ErrOutOfRange = errors.New("元素编号越界")
	// ErrInvalidSize 构造时给了负数大小
	ErrInvalidSize = errors.New("非法的并查集大小")
)

// DisjointSet 是并查集结构，支持路径压缩和按秩合并
type DisjointSet struct {
	parent []int // parent[i] == i 表示 i 是根
	rank   []int // 树高的上界，只对根有意义
	size   []int // 集合元素个数，只对根有意义
	count  int   // 当前不相交集合的个数
}

// New 初始化并查集，每个元素单独成一个集合
func New(size int) (*DisjointSet, error) {
	if size < 0 {
		return nil, errorutil.NewExitErrorWithMessage(errorutil.CodeInvalidSize,
			fmt.Sprintf("大小 %d 不能为负数", size), ErrInvalidSize)
	}
	d := &DisjointSet{
		parent: make([]int, size),
		rank:   make([]int, size),
		size:   make([]int, size),
		count:  size,
	}
	for i := range d.parent {
		d.parent[i] = i
		d.size[i] = 1
	}
	return d, nil
}

// MustNew 和 New 一样，大小非法时 panic
func MustNew(size int) *DisjointSet {
	d, err := New(size)
	if err != nil {
		panic(err)
	}
	return d
}

func (d *DisjointSet) check(x int) error {
	if x < 0 || x >= len(d.parent) {
		return errorutil.NewExitErrorWithMessage(errorutil.CodeOutOfRange,
			fmt.Sprintf("元素 %d 不在 [0, %d) 内", x, len(d.parent)), ErrOutOfRange)
	}
	return nil
}

// Len 返回元素总数 N
func (d *DisjointSet) Len() int {
	return len(d.parent)
}

// Count 返回当前不相交集合的个数
func (d *DisjointSet) Count() int {
	return d.count
}

// Find 返回 x 所在集合的根，并把路径上的节点直接挂到根上
func (d *DisjointSet) Find(x int) (int, error) {
	if err := d.check(x); err != nil {
		return 0, err
	}
	return d.find(x), nil
}

// find 不做越界检查。两遍循环：先走到根，再把沿途节点改指向根
func (d *DisjointSet) find(x int) int {
	root := x
	for d.parent[root] != root {
		root = d.parent[root]
	}
	for d.parent[x] != root {
		next := d.parent[x]
		d.parent[x] = root
		x = next
	}
	return root
}

// Union 合并 x 和 y 所在的集合，已经在同一集合时返回 false
//
// 秩相同时总是把 y 的根挂到 x 的根下面，x 的根秩加一。
func (d *DisjointSet) Union(x, y int) (bool, error) {
	// 两个参数都校验通过之后才允许修改
	if err := d.check(x); err != nil {
		return false, err
	}
	if err := d.check(y); err != nil {
		return false, err
	}

	rootX := d.find(x)
	rootY := d.find(y)
	if rootX == rootY {
		return false, nil
	}

	switch {
	case d.rank[rootX] < d.rank[rootY]:
		d.attach(rootX, rootY)
	case d.rank[rootX] > d.rank[rootY]:
		d.attach(rootY, rootX)
	default:
		d.attach(rootY, rootX)
		d.rank[rootX]++
	}
	d.count--
	return true, nil
}

// attach 把根 child 挂到根 root 下面
func (d *DisjointSet) attach(child, root int) {
	d.parent[child] = root
	d.size[root] += d.size[child]
}

// Connected 判断两个元素是否在同一个集合
func (d *DisjointSet) Connected(x, y int) (bool, error) {
	if err := d.check(x); err != nil {
		return false, err
	}
	if err := d.check(y); err != nil {
		return false, err
	}
	return d.find(x) == d.find(y), nil
}

// SetSize 返回 x 所在集合的元素个数
func (d *DisjointSet) SetSize(x int) (int, error) {
	if err := d.check(x); err != nil {
		return 0, err
	}
	return d.size[d.find(x)], nil
}

// Rank 返回 x 所在集合的根的秩
func (d *DisjointSet) Rank(x int) (int, error) {
	if err := d.check(x); err != nil {
		return 0, err
	}
	return d.rank[d.find(x)], nil
}

// Roots 返回所有根，升序
func (d *DisjointSet) Roots() []int {
	roots := make([]int, 0, d.count)
	for i, p := range d.parent {
		if p == i {
			roots = append(roots, i)
		}
	}
	return roots
}

// Groups 返回所有集合，集合内部升序，集合之间按最小元素升序
func (d *DisjointSet) Groups() [][]int {
	byRoot := make(map[int][]int, d.count)
	for i := range d.parent {
		root := d.find(i)
		byRoot[root] = append(byRoot[root], i)
	}
	groups := make([][]int, 0, len(byRoot))
	for _, g := range byRoot {
		// i 是升序遍历的，组内已经有序
		groups = append(groups, g)
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i][0] < groups[j][0] })
	return groups
}
