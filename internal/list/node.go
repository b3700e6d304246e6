package list

// Node is a singly linked list cell. It owns one value and a link to its
// successor (nil for the last node).
//
// A node is allocated once when its value is inserted; relocations only
// rewrite links, so a *Node stays valid and keeps its value until the value is
// removed from the list.
type Node[T any] struct {
	val  T
	next *Node[T]
}

// Value returns the value held by the node.
func (n *Node[T]) Value() T { return n.val }

// Next returns the successor node, or nil at the tail.
func (n *Node[T]) Next() *Node[T] { return n.next }
