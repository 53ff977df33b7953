package itinerary

import "maps"

// SimplePaths enumerates every simple path (no repeated location code) from
// origin to destination by exhaustive depth-first search. maxLen bounds the
// number of nodes in a path; branches longer than that are cut off so a dense
// graph cannot blow up the enumeration.
//
// Each branch carries its own copy of the visited set and path, so sibling
// branches never observe each other's state. origin == destination is treated
// as invalid input and yields no paths; the caller enforces that precondition
// before reaching this point.
func (g Graph) SimplePaths(origin, destination string, maxLen int) [][]string {
	if origin == destination {
		return nil
	}

	if !g.HasNode(origin) || !g.HasNode(destination) {
		return nil
	}

	visited := map[string]struct{}{origin: {}}

	return g.walk(origin, destination, []string{origin}, visited, maxLen)
}

func (g Graph) walk(current, destination string,
	path []string, visited map[string]struct{}, maxLen int,
) [][]string {
	if current == destination {
		found := make([]string, len(path))
		copy(found, path)

		return [][]string{found}
	}

	if len(path) >= maxLen {
		return nil
	}

	var paths [][]string

	for _, next := range g.outNeighbors(current) {
		if _, seen := visited[next]; seen {
			continue
		}

		branchVisited := maps.Clone(visited)
		branchVisited[next] = struct{}{}

		branchPath := append(append([]string{}, path...), next)

		paths = append(paths, g.walk(next, destination, branchPath, branchVisited, maxLen)...)
	}

	return paths
}

// outNeighbors returns the distinct destination codes reachable by at least
// one edge from the given code. Parallel edges collapse to one neighbor here;
// the combination expander picks the concrete flight per hop later.
func (g Graph) outNeighbors(code string) []string {
	var neighbors []string

	seen := make(map[string]struct{})

	for _, edge := range g.OutEdges(code) {
		if _, ok := seen[edge.To]; ok {
			continue
		}

		seen[edge.To] = struct{}{}
		neighbors = append(neighbors, edge.To)
	}

	return neighbors
}
