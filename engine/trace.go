package engine

import (
	"sort"
)

// Trace returns the node IDs reachable from the focal node over the
// adopted analyzer adjacency, focal node included, sorted. maxHops
// bounds the expansion; a non-positive value falls back to the
// configured TRACE_MAX_HOPS, and zero there means unbounded. A focal
// node the analyzer does not know yields nil.
func (e *Engine) Trace(focal string, maxHops int) []string {
	if _, ok := e.nodesConnections[focal]; !ok {
		return nil
	}
	if maxHops <= 0 {
		maxHops = e.cfg.TraceMaxHops
	}

	type queueItem struct {
		id    string
		depth int
	}

	visited := map[string]int{focal: 0}
	queue := []queueItem{{id: focal, depth: 0}}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		if maxHops > 0 && cur.depth >= maxHops {
			continue
		}

		for _, next := range e.nodesConnections[cur.id] {
			if _, seen := visited[next]; seen {
				continue
			}
			visited[next] = cur.depth + 1
			queue = append(queue, queueItem{id: next, depth: cur.depth + 1})
		}
	}

	out := make([]string, 0, len(visited))
	for id := range visited {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
