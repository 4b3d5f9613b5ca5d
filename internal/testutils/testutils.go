package testutils

import "math/rand"

// RandomPairs 用固定种子生成 k 对 [0, n) 内的元素，保证测试可复现
func RandomPairs(seed int64, n, k int) [][2]int {
	if n == 0 {
		return nil
	}
	r := rand.New(rand.NewSource(seed))
	pairs := make([][2]int, k)
	for i := range pairs {
		pairs[i] = [2]int{r.Intn(n), r.Intn(n)}
	}
	return pairs
}

// ComponentLabels 是朴素的参照实现：把每条边当成无向边，BFS 给每个连通分量编号
//
// 返回值 labels[i] 是 i 所在分量中最小的元素编号。
func ComponentLabels(n int, edges [][2]int) []int {
	adj := make([][]int, n)
	for _, e := range edges {
		adj[e[0]] = append(adj[e[0]], e[1])
		adj[e[1]] = append(adj[e[1]], e[0])
	}

	labels := make([]int, n)
	for i := range labels {
		labels[i] = -1
	}
	for start := 0; start < n; start++ {
		if labels[start] != -1 {
			continue
		}
		// start 是第一次碰到的元素，也就是分量里最小的
		labels[start] = start
		queue := []int{start}
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			for _, next := range adj[cur] {
				if labels[next] == -1 {
					labels[next] = start
					queue = append(queue, next)
				}
			}
		}
	}
	return labels
}

// CountDistinct 统计切片里不同值的个数
func CountDistinct(vals []int) int {
	seen := make(map[int]struct{}, len(vals))
	for _, v := range vals {
		seen[v] = struct{}{}
	}
	return len(seen)
}
