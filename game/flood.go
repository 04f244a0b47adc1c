package game

import "github.com/gammazero/deque"

type NeighborGetter func(int) []int
type Visitor func(int) bool

// flood visits start and then every cell reachable from it. visit reports
// whether the flood should continue through the visited cell; each index is
// visited at most once.
func flood(start int, visit Visitor, getNeighbors NeighborGetter) {
	visited := make(map[int]struct{})
	var visitQueue deque.Deque

	enqueue := func(index int) {
		// Don't visit, if already visited
		if _, alreadyVisited := visited[index]; alreadyVisited {
			return
		}

		visited[index] = struct{}{}
		visitQueue.PushBack(index)
	}

	enqueue(start)
	for visitQueue.Len() > 0 {
		index := visitQueue.PopFront().(int)

		if visit(index) {
			for _, neighbor := range getNeighbors(index) {
				enqueue(neighbor)
			}
		}
	}
}
