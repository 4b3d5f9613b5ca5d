// Package labels 把任意字符串名字映射成并查集需要的稠密编号 [0, N)。
package labels

import (
	"sort"

	"github.com/armon/go-radix"
)

// Interner 按首次出现的顺序给名字分配编号
type Interner struct {
	tree  *radix.Tree
	names []string
}

func NewInterner() *Interner {
	return &Interner{tree: radix.New()}
}

// Intern 返回 name 的编号，第一次见到时分配一个新编号
func (in *Interner) Intern(name string) int {
	if v, ok := in.tree.Get(name); ok {
		return v.(int)
	}
	id := len(in.names)
	in.tree.Insert(name, id)
	in.names = append(in.names, name)
	return id
}

// ID 查询已有名字的编号
func (in *Interner) ID(name string) (int, bool) {
	v, ok := in.tree.Get(name)
	if !ok {
		return -1, false
	}
	return v.(int), true
}

// Name 返回编号对应的名字
func (in *Interner) Name(id int) (string, bool) {
	if id < 0 || id >= len(in.names) {
		return "", false
	}
	return in.names[id], true
}

// Names 按编号顺序返回所有名字
func (in *Interner) Names() []string {
	return append([]string(nil), in.names...)
}

func (in *Interner) Len() int {
	return len(in.names)
}

// WithPrefix 返回所有以 prefix 开头的名字的编号，升序
func (in *Interner) WithPrefix(prefix string) []int {
	var ids []int
	in.tree.WalkPrefix(prefix, func(_ string, v interface{}) bool {
		ids = append(ids, v.(int))
		return false
	})
	sort.Ints(ids)
	return ids
}
