package tagmap

import (
	"iter"

	mapset "github.com/deckarep/golang-set/v2"
)

// GetByKey returns the value associated with key.
func (m *TagMap[K, T, V]) GetByKey(key K) (V, bool) {
	value, ok := m.values[key]
	return value, ok
}

// GetByTag returns the distinct values reachable under tag. It returns false
// when no live key carries the tag.
func (m *TagMap[K, T, V]) GetByTag(tag T) (mapset.Set[V], bool) {
	values, ok := m.reverse.Values(tag)
	if !ok {
		return nil, false
	}
	return mapset.NewThreadUnsafeSet(values...), true
}

// TagsOf returns the tags currently attached to key.
func (m *TagMap[K, T, V]) TagsOf(key K) (mapset.Set[T], bool) {
	tags, ok := m.tags[key]
	if !ok {
		return nil, false
	}
	return copySet(tags), true
}

// CountOf returns how many live keys associate value with tag.
func (m *TagMap[K, T, V]) CountOf(tag T, value V) int {
	return m.reverse.Count(tag, value)
}

// KeysByTag returns all keys whose tag set contains tag.
func (m *TagMap[K, T, V]) KeysByTag(tag T) []K {
	var keys []K
	for k, tags := range m.tags {
		if tags.Contains(tag) {
			keys = append(keys, k)
		}
	}
	return keys
}

// GetByAllTags returns the values reachable under every one of tags. No tags
// yields an empty set.
func (m *TagMap[K, T, V]) GetByAllTags(tags ...T) mapset.Set[V] {
	if len(tags) == 0 {
		return mapset.NewThreadUnsafeSet[V]()
	}

	result, ok := m.GetByTag(tags[0])
	if !ok {
		return mapset.NewThreadUnsafeSet[V]()
	}

	for _, tag := range tags[1:] {
		values, ok := m.GetByTag(tag)
		if !ok {
			return mapset.NewThreadUnsafeSet[V]()
		}
		result = result.Intersect(values)
	}
	return result
}

// GetByAnyTag returns the values reachable under at least one of tags.
func (m *TagMap[K, T, V]) GetByAnyTag(tags ...T) mapset.Set[V] {
	result := mapset.NewThreadUnsafeSet[V]()
	for _, tag := range tags {
		if values, ok := m.reverse.Values(tag); ok {
			result.Append(values...)
		}
	}
	return result
}

// ContainsKey returns true if key is present.
func (m *TagMap[K, T, V]) ContainsKey(key K) bool {
	_, ok := m.values[key]
	return ok
}

// ContainsTag returns true if at least one live key carries tag.
func (m *TagMap[K, T, V]) ContainsTag(tag T) bool {
	return m.reverse.Has(tag)
}

// ContainsValue returns true if at least one key currently holds value.
func (m *TagMap[K, T, V]) ContainsValue(value V) bool {
	for _, v := range m.values {
		if v == value {
			return true
		}
	}
	return false
}

// Size returns the number of keys.
func (m *TagMap[K, T, V]) Size() int { return len(m.values) }

// IsEmpty returns true if the map holds no keys.
func (m *TagMap[K, T, V]) IsEmpty() bool { return len(m.values) == 0 }

// KeySet returns the keys of the map.
func (m *TagMap[K, T, V]) KeySet() mapset.Set[K] {
	keys := mapset.NewThreadUnsafeSetWithSize[K](len(m.values))
	for k := range m.values {
		keys.Add(k)
	}
	return keys
}

// TagSet returns the tags that have at least one value.
func (m *TagMap[K, T, V]) TagSet() mapset.Set[T] {
	return mapset.NewThreadUnsafeSet(m.reverse.Tags()...)
}

// Values returns the value of every key. A value held by several keys appears
// once per key.
func (m *TagMap[K, T, V]) Values() []V {
	values := make([]V, 0, len(m.values))
	for _, v := range m.values {
		values = append(values, v)
	}
	return values
}

// All iterates over the key/value pairs in no particular order. The map must
// not be modified during iteration.
func (m *TagMap[K, T, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for k, v := range m.values {
			if !yield(k, v) {
				return
			}
		}
	}
}
