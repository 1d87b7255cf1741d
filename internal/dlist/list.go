// Package dlist implements a generic doubly linked list whose nodes live in
// an arena of slots, plus a quicksort that reorders node payloads in place.
//
// Nodes are addressed by NodeID, a stable handle into the arena. A NodeID
// stays valid until its node is removed or the list is cleared; removing a
// node never invalidates the IDs of its neighbours. Released slots are
// recycled by later appends, so a stale NodeID must not be reused.
package dlist

import "iter"

// NodeID is a handle to a node of a List. The zero value, None, is the
// absent reference.
type NodeID int

// None is the absent node reference.
const None NodeID = 0

type slot[T any] struct {
	value T
	prev  NodeID
	next  NodeID
	live  bool
}

// List is a doubly linked list of T. The zero value is an empty list ready
// to use. A List is not safe for concurrent use.
type List[T any] struct {
	// slots[id-1] holds the node addressed by id.
	slots []slot[T]
	free  []NodeID
	head  NodeID
	tail  NodeID
	len   int
}

// New returns an empty List.
func New[T any]() *List[T] {
	return &List[T]{}
}

// node returns the live slot for id, or nil.
func (l *List[T]) node(id NodeID) *slot[T] {
	if id <= None || int(id) > len(l.slots) {
		return nil
	}
	s := &l.slots[id-1]
	if !s.live {
		return nil
	}
	return s
}

// Append adds v at the tail and returns the new node.
func (l *List[T]) Append(v T) NodeID {
	var id NodeID
	if n := len(l.free); n > 0 {
		id = l.free[n-1]
		l.free = l.free[:n-1]
	} else {
		l.slots = append(l.slots, slot[T]{})
		id = NodeID(len(l.slots))
	}

	l.slots[id-1] = slot[T]{value: v, prev: l.tail, live: true}
	if l.head == None {
		l.head = id
	} else {
		l.slots[l.tail-1].next = id
	}
	l.tail = id
	l.len++
	return id
}

// Remove unlinks the node and releases its slot, returning the value it
// held. Removing None or an already released node is a no-op that reports
// false.
func (l *List[T]) Remove(id NodeID) (T, bool) {
	var zero T
	n := l.node(id)
	if n == nil {
		return zero, false
	}

	switch {
	case id == l.head && id == l.tail:
		l.head = None
		l.tail = None
	case id == l.head:
		l.head = n.next
		l.slots[l.head-1].prev = None
	case id == l.tail:
		l.tail = n.prev
		l.slots[l.tail-1].next = None
	default:
		l.slots[n.prev-1].next = n.next
		l.slots[n.next-1].prev = n.prev
	}

	v := n.value
	*n = slot[T]{}
	l.free = append(l.free, id)
	l.len--
	return v, true
}

// Clear releases every node. All outstanding NodeIDs become invalid.
func (l *List[T]) Clear() {
	l.slots = nil
	l.free = nil
	l.head = None
	l.tail = None
	l.len = 0
}

// Len returns the number of nodes.
func (l *List[T]) Len() int {
	return l.len
}

// Head returns the first node, or None when the list is empty.
func (l *List[T]) Head() NodeID {
	return l.head
}

// Tail returns the last node, or None when the list is empty.
func (l *List[T]) Tail() NodeID {
	return l.tail
}

// Next returns the node after id, or None.
func (l *List[T]) Next(id NodeID) NodeID {
	if n := l.node(id); n != nil {
		return n.next
	}
	return None
}

// Prev returns the node before id, or None.
func (l *List[T]) Prev(id NodeID) NodeID {
	if n := l.node(id); n != nil {
		return n.prev
	}
	return None
}

// Contains reports whether id addresses a live node of l.
func (l *List[T]) Contains(id NodeID) bool {
	return l.node(id) != nil
}

// Value returns the payload of id.
func (l *List[T]) Value(id NodeID) (T, bool) {
	if n := l.node(id); n != nil {
		return n.value, true
	}
	var zero T
	return zero, false
}

// Set overwrites the payload of id.
func (l *List[T]) Set(id NodeID, v T) bool {
	n := l.node(id)
	if n == nil {
		return false
	}
	n.value = v
	return true
}

// Swap exchanges the payloads of a and b. Links are not touched.
func (l *List[T]) Swap(a, b NodeID) bool {
	na, nb := l.node(a), l.node(b)
	if na == nil || nb == nil {
		return false
	}
	na.value, nb.value = nb.value, na.value
	return true
}

// FindFirst scans from the head and returns the first node whose payload
// satisfies match.
func (l *List[T]) FindFirst(match func(T) bool) (NodeID, bool) {
	for id := l.head; id != None; id = l.slots[id-1].next {
		if match(l.slots[id-1].value) {
			return id, true
		}
	}
	return None, false
}

// At returns the node at the 0-based position index.
func (l *List[T]) At(index int) (NodeID, bool) {
	if index < 0 || index >= l.len {
		return None, false
	}
	id := l.head
	for ; index > 0; index-- {
		id = l.slots[id-1].next
	}
	return id, true
}

// Nodes returns a forward traversal of the node IDs from head to tail.
// The list must not be modified while the sequence is being consumed.
func (l *List[T]) Nodes() iter.Seq[NodeID] {
	return func(yield func(NodeID) bool) {
		for id := l.head; id != None; id = l.slots[id-1].next {
			if !yield(id) {
				return
			}
		}
	}
}

// Values returns a forward traversal of the payloads from head to tail.
// The list must not be modified while the sequence is being consumed.
func (l *List[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for id := l.head; id != None; id = l.slots[id-1].next {
			if !yield(l.slots[id-1].value) {
				return
			}
		}
	}
}
