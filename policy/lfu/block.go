package lfu

import "strconv"

// Block pairs a resident address with the number of accesses since it was
// loaded. Blocks order by count and match by address.
type Block struct {
	addr  string
	count int
}

func newBlock(addr string) *Block { return &Block{addr: addr, count: 1} }

// Addr returns the cached address.
func (b *Block) Addr() string { return b.addr }

// Count returns the access count (>= 1).
func (b *Block) Count() int { return b.count }

// String renders the block as <addr,count>.
func (b *Block) String() string {
	return "<" + b.addr + "," + strconv.Itoa(b.count) + ">"
}

func byCount(a, b *Block) int { return a.count - b.count }

func sameAddr(a, b *Block) bool { return a.addr == b.addr }
