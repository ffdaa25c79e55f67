// Package hashtab implements a generic hash table with separate chaining.  The
// table grows through a fixed sequence of prime sizes, each the largest prime
// below a power of two, before an insertion would push its load factor past
// the configured maximum.
package hashtab

import (
	"errors"
	"fmt"
	"io"
)

// HashFunc hashes a key into the range [0, size).
type HashFunc[K any] func(key K, size uint) uint

// CompareFunc compares two keys, returning a negative number, zero, or a
// positive number if a is less than, equal to, or greater than b.
type CompareFunc[K any] func(a, b K) int

var (
	ErrInvalidLoadFactor = errors.New("maximum load factor must be greater than zero")
	ErrMissingFunc       = errors.New("hash and compare functions are required")
	ErrNilTable          = errors.New("hash table is nil")
	ErrReleased          = errors.New("hash table has been released")
	ErrKeyExists         = errors.New("key already exists")
)

// delta holds the differences between each power of two and the largest prime
// less than that power of two: 2^i - delta[i] is prime for 2 <= i < 32.
var delta = [...]uint{
	0, 0, 1, 1, 3, 1, 3, 1, 5, 3, 3, 9, 3, 1, 3, 19,
	15, 1, 5, 1, 3, 9, 3, 15, 3, 39, 5, 39, 57, 3, 35, 1,
}

// initialDeltaIndex selects the initial table size: 2^4 - 3 = 13.
const initialDeltaIndex = 4

// entry is a single key-value pair in a bucket chain.
type entry[K, V any] struct {
	key   K
	value V
	next  *entry[K, V]
}

// Table is a hash table from keys of type K to values of type V.  A table owns
// its entries until it is released.  It is not safe for concurrent use.
type Table[K, V any] struct {
	// buckets is the underlying bucket array.  It is nil once the table has
	// been released.
	buckets []*entry[K, V]

	// count is the current number of entries.
	count uint

	// maxLoadFactor is the load factor that triggers a resize when an
	// insertion would exceed it.
	maxLoadFactor float64

	// idx is the index into delta of the current size.
	idx int

	hash HashFunc[K]
	cmp  CompareFunc[K]
}

// New creates a new hash table.  It fails if the maximum load factor is not
// positive or if either function is missing.
func New[K, V any](maxLoadFactor float64, hash HashFunc[K], cmp CompareFunc[K]) (*Table[K, V], error) {
	if maxLoadFactor <= 0 {
		return nil, ErrInvalidLoadFactor
	}

	if hash == nil || cmp == nil {
		return nil, ErrMissingFunc
	}

	return &Table[K, V]{
		buckets:       make([]*entry[K, V], sizeAt(initialDeltaIndex)),
		maxLoadFactor: maxLoadFactor,
		idx:           initialDeltaIndex,
		hash:          hash,
		cmp:           cmp,
	}, nil
}

// sizeAt returns the table size for the given delta index.
func sizeAt(idx int) uint {
	return (1 << uint(idx)) - delta[idx]
}

// -----------------------------------------------------------------------------

// Insert associates key with value.  If an equal key is already present, the
// table is left untouched and ErrKeyExists is returned.
func (t *Table[K, V]) Insert(key K, value V) error {
	if t == nil {
		return ErrNilTable
	} else if t.buckets == nil {
		return ErrReleased
	}

	h := t.bucketOf(key)
	for e := t.buckets[h]; e != nil; e = e.next {
		if t.cmp(key, e.key) == 0 {
			return ErrKeyExists
		}
	}

	// Grow before inserting so that the load factor never exceeds the
	// maximum.  If the table cannot grow any further, it keeps its size.
	if float64(t.count+1)/float64(len(t.buckets)) > t.maxLoadFactor {
		if t.rehash() {
			h = t.bucketOf(key)
		}
	}

	t.buckets[h] = &entry[K, V]{key: key, value: value, next: t.buckets[h]}
	t.count++

	return nil
}

// Search returns the value associated with key.
func (t *Table[K, V]) Search(key K) (V, bool) {
	var zero V
	if t == nil || t.buckets == nil {
		return zero, false
	}

	for e := t.buckets[t.bucketOf(key)]; e != nil; e = e.next {
		if t.cmp(key, e.key) == 0 {
			return e.value, true
		}
	}

	return zero, false
}

// Free releases every entry in the table, calling freeKey and freeVal on each
// key and value if they are not nil.  The table cannot be used afterwards.
func (t *Table[K, V]) Free(freeKey func(K), freeVal func(V)) error {
	if t == nil {
		return ErrNilTable
	} else if t.buckets == nil {
		return ErrReleased
	}

	for i, e := range t.buckets {
		for e != nil {
			next := e.next

			if freeKey != nil {
				freeKey(e.key)
			}

			if freeVal != nil {
				freeVal(e.value)
			}

			e.next = nil
			e = next
		}

		t.buckets[i] = nil
	}

	t.buckets = nil
	t.count = 0
	return nil
}

// -----------------------------------------------------------------------------

// Len returns the number of entries in the table.
func (t *Table[K, V]) Len() uint {
	return t.count
}

// Size returns the number of buckets in the table.
func (t *Table[K, V]) Size() uint {
	return uint(len(t.buckets))
}

// LoadFactor returns the current ratio of entries to buckets.
func (t *Table[K, V]) LoadFactor() float64 {
	if len(t.buckets) == 0 {
		return 0
	}

	return float64(t.count) / float64(len(t.buckets))
}

// Print writes the table to w one bucket per line, converting each entry to a
// string with kv2str.
func (t *Table[K, V]) Print(w io.Writer, kv2str func(key K, value V) string) {
	if t == nil || kv2str == nil {
		return
	}

	for i, e := range t.buckets {
		fmt.Fprintf(w, "bucket[%2d]", i)
		for ; e != nil; e = e.next {
			fmt.Fprintf(w, " --> %s", kv2str(e.key, e.value))
		}
		fmt.Fprintln(w, " --> NULL")
	}
}

// -----------------------------------------------------------------------------

// bucketOf returns the bucket index of key under the current size.
func (t *Table[K, V]) bucketOf(key K) uint {
	return t.hash(key, uint(len(t.buckets))) % uint(len(t.buckets))
}

// rehash moves every entry into a bucket array of the next size in the delta
// sequence.  It returns false if the table is already at its largest size.
func (t *Table[K, V]) rehash() bool {
	if t.idx+1 >= len(delta) {
		return false
	}

	t.idx++
	newSize := sizeAt(t.idx)
	newBuckets := make([]*entry[K, V], newSize)

	for _, e := range t.buckets {
		for e != nil {
			next := e.next

			h := t.hash(e.key, newSize) % newSize
			e.next = newBuckets[h]
			newBuckets[h] = e

			e = next
		}
	}

	t.buckets = newBuckets
	return true
}
