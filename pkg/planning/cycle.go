package planning

// detectCycle runs a depth-first search over the dependency graph and
// returns one cycle as a closed walk of task IDs (first element equal to
// last), or nil when the graph is acyclic.
//
// Edges are traversed from TaskID to DependsOn. Roots are visited in
// task insertion order and neighbors in edge order, so the same input
// always reports the same cycle.
func detectCycle(ids []string, deps []Dependency) []string {
	if len(ids) == 0 {
		return nil
	}

	adjacency := make(map[string][]string, len(ids))
	for _, id := range ids {
		adjacency[id] = nil
	}

	for _, dep := range deps {
		adjacency[dep.TaskID] = append(adjacency[dep.TaskID], dep.DependsOn)
	}

	visited := make(map[string]bool, len(ids))
	onStack := make(map[string]bool, len(ids))

	var path []string

	var dfs func(node string) []string
	dfs = func(node string) []string {
		visited[node] = true
		onStack[node] = true
		path = append(path, node)

		for _, neighbor := range adjacency[node] {
			if !visited[neighbor] {
				if cycle := dfs(neighbor); cycle != nil {
					return cycle
				}

				continue
			}

			if onStack[neighbor] {
				// Back-edge: the cycle is the path suffix starting at
				// the repeated node, closed by repeating it at the end.
				start := 0

				for i, id := range path {
					if id == neighbor {
						start = i

						break
					}
				}

				cycle := make([]string, 0, len(path)-start+1)
				cycle = append(cycle, path[start:]...)
				cycle = append(cycle, neighbor)

				return cycle
			}
		}

		path = path[:len(path)-1]
		onStack[node] = false

		return nil
	}

	for _, id := range ids {
		if visited[id] {
			continue
		}

		if cycle := dfs(id); cycle != nil {
			return cycle
		}
	}

	return nil
}
