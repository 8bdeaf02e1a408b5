// File: bfs.go
// Role: bounded breadth-first search used to find, for a single source
// node, every node within h hops and its exact distance. A plain
// queue-and-visited-map walker, cut down to what the assembler needs:
// no hooks, no path reconstruction, just a distance map capped at h.
package assemble

import "context"

// boundedDistances returns dist[n] = shortest-path distance from start to
// n, for every n reachable within h hops (dist[start] == 0). neighbors
// must return the node ids adjacent to its argument within one graph.
func boundedDistances(ctx context.Context, start, h int, neighbors func(int) ([]int, error)) (map[int]int, error) {
	dist := map[int]int{start: 0}
	queue := []int{start}

	for len(queue) > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		cur := queue[0]
		queue = queue[1:]
		d := dist[cur]
		if d == h {
			continue // do not expand past the hop budget
		}

		nbrs, err := neighbors(cur)
		if err != nil {
			return nil, err
		}
		for _, n := range nbrs {
			if _, seen := dist[n]; seen {
				continue
			}
			dist[n] = d + 1
			queue = append(queue, n)
		}
	}

	return dist, nil
}
