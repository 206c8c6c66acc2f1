// Package refcount provides a counting multimap: for each tag it tracks how many
// contributors currently reference each value.
package refcount

// Index maps a tag to the values reachable under it, counting the contributors
// of every value. A tag is dropped as soon as its last value reaches a count of
// zero, so a present tag always has at least one value.
//
// The zero value is an empty index ready to use. Index is not safe for
// concurrent use.
type Index[T comparable, V comparable] struct {
	counts map[T]map[V]int
}

// New creates an index sized for the given number of tags.
func New[T comparable, V comparable](capacity int) *Index[T, V] {
	return &Index[T, V]{counts: make(map[T]map[V]int, capacity)}
}

// Add increments the count of value under tag and returns the new count.
func (idx *Index[T, V]) Add(tag T, value V) int {
	if idx.counts == nil {
		idx.counts = map[T]map[V]int{}
	}

	values, ok := idx.counts[tag]
	if !ok {
		values = map[V]int{}
		idx.counts[tag] = values
	}

	values[value]++
	return values[value]
}

// Release decrements the count of value under tag and returns the remaining
// count. The value is dropped when its count reaches zero and the tag is dropped
// when it has no values left. Releasing an unknown pair is a no-op returning 0.
func (idx *Index[T, V]) Release(tag T, value V) int {
	values, ok := idx.counts[tag]
	if !ok {
		return 0
	}

	count, ok := values[value]
	if !ok {
		return 0
	}

	if count > 1 {
		values[value] = count - 1
		return count - 1
	}

	delete(values, value)
	if len(values) == 0 {
		delete(idx.counts, tag)
	}
	return 0
}

// Count returns the number of contributors of value under tag.
func (idx *Index[T, V]) Count(tag T, value V) int {
	return idx.counts[tag][value]
}

// Has returns true if the tag has at least one value.
func (idx *Index[T, V]) Has(tag T) bool {
	_, ok := idx.counts[tag]
	return ok
}

// Values returns the distinct values under tag and whether the tag exists.
func (idx *Index[T, V]) Values(tag T) ([]V, bool) {
	values, ok := idx.counts[tag]
	if !ok {
		return nil, false
	}

	out := make([]V, 0, len(values))
	for v := range values {
		out = append(out, v)
	}
	return out, true
}

// Tags returns every tag present in the index.
func (idx *Index[T, V]) Tags() []T {
	out := make([]T, 0, len(idx.counts))
	for t := range idx.counts {
		out = append(out, t)
	}
	return out
}

// Each calls fn for every (tag, value, count) triple until fn returns false.
func (idx *Index[T, V]) Each(fn func(tag T, value V, count int) bool) {
	for t, values := range idx.counts {
		for v, c := range values {
			if !fn(t, v, c) {
				return
			}
		}
	}
}

// Len returns the number of tags.
func (idx *Index[T, V]) Len() int { return len(idx.counts) }

// Clear drops every tag.
func (idx *Index[T, V]) Clear() {
	idx.counts = map[T]map[V]int{}
}
