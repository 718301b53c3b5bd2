package catalog

import "github.com/emirpasic/gods/queues/linkedlistqueue"

// DirectPath follows Parent edges from to up to the root, then reverses the
// result so it reads root-to-to, to included.
func DirectPath(commits map[int64]Commit, to int64) ([]int64, error) {
	var path []int64
	cur := to

	for {
		commit, ok := commits[cur]
		if !ok {
			return nil, &ErrGraphInconsistent{CommitID: to, Reference: cur}
		}

		path = append(path, cur)

		if commit.Parent == 0 {
			break
		}

		cur = commit.Parent
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// ShortestPaths runs a single breadth-first traversal from head over Parent
// and MergeFrom edges (parent visited before merge_from, FIFO dequeue) and
// returns, per requested target, the path [target, ..., head].
func ShortestPaths(commits map[int64]Commit, head int64, targets []int64) (map[int64][]int64, error) {
	fromTo := make(map[int64]int64, len(commits))
	visited := map[int64]bool{head: true}

	remaining := make(map[int64]bool, len(targets))

	for _, t := range targets {
		if t != head {
			remaining[t] = true
		}
	}

	queue := linkedlistqueue.New()
	queue.Enqueue(head)

	for !queue.Empty() && len(remaining) > 0 {
		v, _ := queue.Dequeue()
		cur := v.(int64)

		commit, ok := commits[cur]
		if !ok {
			return nil, &ErrGraphInconsistent{CommitID: head, Reference: cur}
		}

		for _, next := range [2]int64{commit.Parent, commit.MergeFrom} {
			if next == 0 || visited[next] {
				continue
			}

			visited[next] = true
			fromTo[next] = cur
			queue.Enqueue(next)
			delete(remaining, next)
		}
	}

	result := make(map[int64][]int64, len(targets))

	for _, t := range targets {
		path := []int64{t}
		cur := t

		for {
			next, ok := fromTo[cur]
			if !ok {
				break
			}

			path = append(path, next)
			cur = next
		}

		result[t] = path
	}

	return result, nil
}
