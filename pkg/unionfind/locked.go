package unionfind

import "sync"

// Locked 用一把互斥锁把 DisjointSet 的所有操作串行化
//
// 没有用读写锁：Find 的路径压缩也会写 parent。
type Locked struct {
	mu sync.Mutex
	ds *DisjointSet
}

// NewLocked 创建一个并发安全的并查集
func NewLocked(size int) (*Locked, error) {
	ds, err := New(size)
	if err != nil {
		return nil, err
	}
	return &Locked{ds: ds}, nil
}

// WrapLocked 包装一个已有的并查集，之后不要再直接使用 ds
func WrapLocked(ds *DisjointSet) *Locked {
	return &Locked{ds: ds}
}

func (l *Locked) Find(x int) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.ds.Find(x)
}

func (l *Locked) Union(x, y int) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.ds.Union(x, y)
}

func (l *Locked) Connected(x, y int) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.ds.Connected(x, y)
}

func (l *Locked) Count() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.ds.Count()
}

// Do 在持锁状态下执行 fn，用于需要多步原子操作的场景
func (l *Locked) Do(fn func(ds *DisjointSet) error) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return fn(l.ds)
}
