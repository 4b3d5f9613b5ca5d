// Package report 汇总并查集当前的划分情况，给命令行打印用。
package report

import (
	"fmt"
	"strings"

	"dsu_tool/pkg/unionfind"

	"github.com/dustin/go-humanize"
	"github.com/google/btree"
)

// Group 是一个集合的摘要
type Group struct {
	Root    int
	Members []int
}

// Summary 是整个并查集的摘要，Groups 按大小降序，大小相同按最小元素升序
type Summary struct {
	Elements int
	Sets     int
	Groups   []Group
}

func groupLess(a, b Group) bool {
	if len(a.Members) != len(b.Members) {
		return len(a.Members) > len(b.Members)
	}
	return a.Members[0] < b.Members[0]
}

// Summarize 生成摘要，会触发路径压缩
func Summarize(ds *unionfind.DisjointSet) Summary {
	tree := btree.NewG(8, groupLess)
	for _, members := range ds.Groups() {
		root, _ := ds.Find(members[0])
		tree.ReplaceOrInsert(Group{Root: root, Members: members})
	}

	s := Summary{Elements: ds.Len(), Sets: ds.Count()}
	tree.Ascend(func(g Group) bool {
		s.Groups = append(s.Groups, g)
		return true
	})
	return s
}

// Largest 返回最大的 k 个集合
func (s Summary) Largest(k int) []Group {
	if k > len(s.Groups) {
		k = len(s.Groups)
	}
	return s.Groups[:k]
}

// Format 生成给人看的文本，最多列出 limit 个集合，limit<=0 表示全部列出
func (s Summary) Format(limit int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "元素: %s  集合: %s\n", humanize.Comma(int64(s.Elements)), humanize.Comma(int64(s.Sets)))
	shown := s.Groups
	if limit > 0 {
		shown = s.Largest(limit)
	}
	for i, g := range shown {
		fmt.Fprintf(&b, "%s 集合 root=%d size=%s members=%s\n",
			humanize.Ordinal(i+1), g.Root, humanize.Comma(int64(len(g.Members))), formatMembers(g.Members))
	}
	if rest := len(s.Groups) - len(shown); rest > 0 {
		fmt.Fprintf(&b, "... 其余 %s 个集合未列出\n", humanize.Comma(int64(rest)))
	}
	return b.String()
}

// 成员太多时只显示头尾
func formatMembers(members []int) string {
	const maxShown = 8
	parts := make([]string, 0, maxShown+1)
	if len(members) <= maxShown {
		for _, m := range members {
			parts = append(parts, fmt.Sprint(m))
		}
	} else {
		for _, m := range members[:maxShown/2] {
			parts = append(parts, fmt.Sprint(m))
		}
		parts = append(parts, "...")
		for _, m := range members[len(members)-maxShown/2:] {
			parts = append(parts, fmt.Sprint(m))
		}
	}
	return "[" + strings.Join(parts, " ") + "]"
}
