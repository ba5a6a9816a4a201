// Package forest 把带 parent 引用的扁平记录组装成多根树
package forest

// Item 扁平输入
type Item struct {
	ID       int64
	ParentID *int64
	Name     string
}

// Node 树节点
type Node struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Children []*Node `json:"children"`
}

// Build 组装森林
// parent 为空或指向不存在的 id 的记录成为根；子节点保持输入顺序。
// 处在 parent 环上的记录（含自引用）不进入森林，其 id 按输入顺序放入 cycles。
// 仅挂在环下方的记录同样无法到达根，一并计入 cycles。
func Build(items []Item) (roots []*Node, cycles []int64) {
	nodes := make(map[int64]*Node, len(items))
	parent := make(map[int64]int64, len(items))
	for _, it := range items {
		if _, dup := nodes[it.ID]; dup {
			continue
		}
		nodes[it.ID] = &Node{ID: it.ID, Name: it.Name, Children: []*Node{}}
		if it.ParentID != nil {
			parent[it.ID] = *it.ParentID
		}
	}

	// 0 未访问，1 访问中，2 可达根，3 不可达
	state := make(map[int64]int, len(items))
	var resolve func(id int64) bool
	resolve = func(id int64) bool {
		switch state[id] {
		case 1:
			return false
		case 2:
			return true
		case 3:
			return false
		}
		pid, hasParent := parent[id]
		if !hasParent {
			state[id] = 2
			return true
		}
		if _, ok := nodes[pid]; !ok {
			state[id] = 2
			return true
		}
		state[id] = 1
		if resolve(pid) {
			state[id] = 2
			return true
		}
		state[id] = 3
		return false
	}

	seen := make(map[int64]bool, len(items))
	for _, it := range items {
		if seen[it.ID] {
			continue
		}
		seen[it.ID] = true

		if !resolve(it.ID) {
			cycles = append(cycles, it.ID)
			continue
		}
		n := nodes[it.ID]
		pid, hasParent := parent[it.ID]
		if p, ok := nodes[pid]; hasParent && ok {
			p.Children = append(p.Children, n)
		} else {
			roots = append(roots, n)
		}
	}
	return roots, cycles
}
