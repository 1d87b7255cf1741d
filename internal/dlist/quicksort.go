package dlist

// Partition orders the closed node range [low, high] around the payload of
// high and returns the node where that pivot value settles. Every payload
// left of the returned node compares <= pivot under cmp; every payload to
// its right compares > pivot. Only payloads move; links are unchanged.
//
// high must be reachable from low by following Next.
func Partition[T any](l *List[T], low, high NodeID, cmp func(a, b T) int) NodeID {
	pivot, _ := l.Value(high)

	// i trails one node behind the next swap target; it starts just before
	// low so the first advance lands on low itself.
	i := l.Prev(low)
	advance := func() {
		if i == None {
			i = low
			return
		}
		i = l.Next(i)
	}

	for j := low; j != high && j != None; j = l.Next(j) {
		v, _ := l.Value(j)
		if cmp(v, pivot) <= 0 {
			advance()
			l.Swap(i, j)
		}
	}

	advance()
	l.Swap(i, high)
	return i
}

// Quicksort sorts the payloads of the closed node range [low, high] in
// non-decreasing order under cmp. The sort is not stable: the relative
// order of payloads that compare equal is whatever partitioning leaves.
//
// An empty range (low or high is None, or low == Next(high)) and a single
// node range are left alone.
func Quicksort[T any](l *List[T], low, high NodeID, cmp func(a, b T) int) {
	if low == None || high == None || low == high || low == l.Next(high) {
		return
	}

	p := Partition(l, low, high, cmp)
	Quicksort(l, low, l.Prev(p), cmp)
	Quicksort(l, l.Next(p), high, cmp)
}
