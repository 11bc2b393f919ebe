package htable

import (
	"fmt"
	"sync/atomic"
)

// Sentinel marks the end of a bucket's chain (and an absent list head).
const Sentinel uint32 = ^uint32(0)

// ErrInvalidHashSize is the condition name surfaced by the panic in New
// when hashSize is zero or not a power of two. It is not returned as an
// error: construction failures here are programmer errors,
// so New panics instead of returning it, but the sentinel is exported for
// callers that want to recognize the panic's message by name.
var ErrInvalidHashSize = fmt.Errorf("htable: hash_size must be a non-zero power of two")

// Table is an open-addressed bucket-to-linked-index multimap.
//
// head[b] is the index of the most recently inserted element in bucket b,
// or Sentinel if the bucket is empty. next[i] is the index that was the
// bucket head at the moment i was inserted (head-insert, so iteration order
// is most-recent-first). key-to-bucket is key & (hashMask).
//
// Next[i] is written exactly once, by whichever goroutine inserts i, so
// concurrent AddConcurrent calls for distinct indices never race on next;
// only head[b] is ever contended, and that contention is resolved with a
// single atomic exchange per insertion.
type Table struct {
	hashSize uint32
	hashMask uint32
	head     []uint32
	next     []uint32
}

// New constructs a Table sized for hashSize buckets (must be a power of two,
// non-zero) and an initial index capacity of indexSize. Panics with a
// diagnostic if hashSize is zero or not a power of two.
func New(hashSize, indexSize uint32) *Table {
	if hashSize == 0 || hashSize&(hashSize-1) != 0 {
		panic(fmt.Errorf("htable.New: %w, got %d", ErrInvalidHashSize, hashSize))
	}

	t := &Table{
		hashSize: hashSize,
		hashMask: hashSize - 1,
		head:     make([]uint32, hashSize),
	}
	for i := range t.head {
		t.head[i] = Sentinel
	}
	if indexSize > 0 {
		t.next = make([]uint32, nextPow2(maxU32(32, indexSize)))
	}
	return t
}

// HashSize returns the number of buckets.
func (t *Table) HashSize() uint32 { return t.hashSize }

// IndexSize returns the current capacity of the chain array.
func (t *Table) IndexSize() uint32 { return uint32(len(t.next)) }

// First returns the head of key's bucket, or Sentinel if empty.
func (t *Table) First(key uint32) uint32 {
	return t.head[key&t.hashMask]
}

// Next returns the chain successor of i. Panics if i is out of range or
// self-referential; both indicate a corrupted chain, not a recoverable
// condition.
func (t *Table) Next(i uint32) uint32 {
	if i >= uint32(len(t.next)) {
		panic(fmt.Sprintf("htable.Next: index %d out of range [0,%d)", i, len(t.next)))
	}
	n := t.next[i]
	if n == i {
		panic(fmt.Sprintf("htable.Next: self-loop detected at index %d", i))
	}
	return n
}

// IsValid reports whether idx is not the sentinel (end-of-chain) value.
func IsValid(idx uint32) bool { return idx != Sentinel }

// grow ensures the chain array can hold index i, resizing (and
// zero-extending) as needed.
func (t *Table) grow(i uint32) {
	if i < uint32(len(t.next)) {
		return
	}
	newSize := nextPow2(maxU32(32, i+1))
	grown := make([]uint32, newSize)
	copy(grown, t.next)
	t.next = grown
}

// Add performs a non-concurrent head-insert of index i under key,
// growing the chain array first if necessary.
func (t *Table) Add(key, i uint32) {
	t.grow(i)
	b := key & t.hashMask
	t.next[i] = t.head[b]
	t.head[b] = i
}

// AddConcurrent performs a lock-free head-insert of index i under key via an
// atomic exchange on the bucket head. Safe for many goroutines inserting
// distinct i values concurrently. Requires i < IndexSize(); the chain array
// is never resized concurrently, so callers must pre-size Table via New.
func (t *Table) AddConcurrent(key, i uint32) {
	if i >= uint32(len(t.next)) {
		panic(fmt.Sprintf("htable.AddConcurrent: index %d out of range [0,%d)", i, len(t.next)))
	}
	b := key & t.hashMask
	prev := atomic.SwapUint32(&t.head[b], i)
	t.next[i] = prev
}

// Remove unlinks index i from key's bucket. A no-op if i is not present.
func (t *Table) Remove(key, i uint32) {
	if i >= uint32(len(t.next)) {
		return
	}
	b := key & t.hashMask
	if t.head[b] == i {
		t.head[b] = t.next[i]
		return
	}
	for cur := t.head[b]; IsValid(cur); cur = t.next[cur] {
		if t.next[cur] == i {
			t.next[cur] = t.next[i]
			return
		}
	}
}

// Clear resets every bucket head to the sentinel, in O(HashSize()).
func (t *Table) Clear() {
	for i := range t.head {
		t.head[i] = Sentinel
	}
}

func nextPow2(v uint32) uint32 {
	if v == 0 {
		return 1
	}
	v--
	v |= v >> 1
	v |= v >> 2
	v |= v >> 4
	v |= v >> 8
	v |= v >> 16
	v++
	return v
}

func maxU32(a, b uint32) uint32 {
	if a > b {
		return a
	}
	return b
}
