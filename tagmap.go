package tagmap

import (
	mapset "github.com/deckarep/golang-set/v2"

	"github.com/davidroman0O/tagmap/internal/refcount"
)

// TagMap is a key/value map where each key also carries a set of tags, and
// values can be looked up by any of the tags of their keys.
//
// The zero value is an empty map ready to use. A TagMap must not be copied
// after first use and is not safe for concurrent use.
type TagMap[K comparable, T comparable, V comparable] struct {
	values  map[K]V
	tags    map[K]mapset.Set[T]
	reverse refcount.Index[T, V]

	logger   Logger
	observer Observer
}

// New creates an empty TagMap configured by opts.
func New[K comparable, T comparable, V comparable](opts ...Option) *TagMap[K, T, V] {
	o := buildOptions(opts)
	return &TagMap[K, T, V]{
		values:   make(map[K]V, o.capacity),
		tags:     make(map[K]mapset.Set[T], o.capacity),
		reverse:  *refcount.New[T, V](o.capacity),
		logger:   o.logger,
		observer: o.observer,
	}
}

// Put associates key with value and with every tag in tags, returning the
// value previously associated with key, if any. Any prior association of key is
// torn down first, so the key ends up with exactly the given tags. Duplicate
// tags count once; nil or empty tags leave the key untagged.
func (m *TagMap[K, T, V]) Put(key K, tags []T, value V) (V, bool) {
	return m.putLogged(key, mapset.NewThreadUnsafeSet(tags...), value)
}

// PutSet is like Put but takes the tags as a set. The set is copied; later
// changes to it do not affect the map.
func (m *TagMap[K, T, V]) PutSet(key K, tags mapset.Set[T], value V) (V, bool) {
	return m.putLogged(key, copySet(tags), value)
}

// Replace behaves like Put, but only if key is currently present. Otherwise it
// does nothing and returns false.
func (m *TagMap[K, T, V]) Replace(key K, tags []T, value V) (V, bool) {
	if !m.ContainsKey(key) {
		var zero V
		return zero, false
	}
	return m.replaceLogged(key, mapset.NewThreadUnsafeSet(tags...), value)
}

// ReplaceSet is like Replace but takes the tags as a set.
func (m *TagMap[K, T, V]) ReplaceSet(key K, tags mapset.Set[T], value V) (V, bool) {
	if !m.ContainsKey(key) {
		var zero V
		return zero, false
	}
	return m.replaceLogged(key, copySet(tags), value)
}

// Remove deletes key and all of its tag associations, returning the value it
// held. Removing an unknown key is a no-op returning false.
func (m *TagMap[K, T, V]) Remove(key K) (V, bool) {
	removed, ok := m.remove(key)
	if !ok {
		return removed, false
	}

	m.log().Debug("tagmap: remove key=%v", key)
	m.notify(OpRemove)
	return removed, true
}

// Clear removes every entry.
func (m *TagMap[K, T, V]) Clear() {
	removed := len(m.values)
	m.clear()
	m.log().Debug("tagmap: clear removed=%d", removed)
	m.notify(OpClear)
}

func (m *TagMap[K, T, V]) putLogged(key K, tags mapset.Set[T], value V) (V, bool) {
	previous, replaced := m.put(key, tags, value)
	m.log().Debug("tagmap: put key=%v tags=%d replaced=%t", key, tags.Cardinality(), replaced)
	m.notify(OpPut)
	return previous, replaced
}

func (m *TagMap[K, T, V]) replaceLogged(key K, tags mapset.Set[T], value V) (V, bool) {
	previous, _ := m.put(key, tags, value)
	m.log().Debug("tagmap: replace key=%v tags=%d", key, tags.Cardinality())
	m.notify(OpReplace)
	return previous, true
}

// put is the single write path: teardown of the existing association, then a
// full build of the new one.
func (m *TagMap[K, T, V]) put(key K, tags mapset.Set[T], value V) (V, bool) {
	previous, existed := m.remove(key)

	if m.values == nil {
		m.values = map[K]V{}
		m.tags = map[K]mapset.Set[T]{}
	}

	m.values[key] = value
	for _, tag := range tags.ToSlice() {
		m.reverse.Add(tag, value)
	}
	m.tags[key] = tags

	return previous, existed
}

func (m *TagMap[K, T, V]) remove(key K) (V, bool) {
	value, ok := m.values[key]
	if !ok {
		var zero V
		return zero, false
	}

	delete(m.values, key)
	tags := m.tags[key]
	delete(m.tags, key)

	if tags != nil {
		for _, tag := range tags.ToSlice() {
			m.reverse.Release(tag, value)
		}
	}

	return value, true
}

func (m *TagMap[K, T, V]) clear() {
	m.values = map[K]V{}
	m.tags = map[K]mapset.Set[T]{}
	m.reverse.Clear()
}

func (m *TagMap[K, T, V]) log() Logger {
	if m.logger == nil {
		return NewDefaultLogger()
	}
	return m.logger
}

func (m *TagMap[K, T, V]) notify(op Op) {
	if m.observer == nil {
		return
	}
	m.observer.Observe(op, m.stats())
}

func (m *TagMap[K, T, V]) stats() Stats {
	return Stats{Keys: len(m.values), Tags: m.reverse.Len()}
}

func copySet[T comparable](s mapset.Set[T]) mapset.Set[T] {
	if s == nil {
		return mapset.NewThreadUnsafeSet[T]()
	}
	return mapset.NewThreadUnsafeSet(s.ToSlice()...)
}
