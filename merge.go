package tagmap

import (
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"
)

// Clone creates a new TagMap holding the same entries. The clone shares the
// logger and observer of m but no index state.
func (m *TagMap[K, T, V]) Clone() *TagMap[K, T, V] {
	clone := &TagMap[K, T, V]{
		values:   make(map[K]V, len(m.values)),
		tags:     make(map[K]mapset.Set[T], len(m.tags)),
		logger:   m.logger,
		observer: m.observer,
	}

	for k, v := range m.values {
		clone.put(k, copySet(m.tags[k]), v)
	}
	return clone
}

// FindKeyCollisions returns the keys present in both m and other.
func (m *TagMap[K, T, V]) FindKeyCollisions(other *TagMap[K, T, V]) []K {
	var collisions []K
	for k := range m.values {
		if other.ContainsKey(k) {
			collisions = append(collisions, k)
		}
	}
	return collisions
}

// Merge copies the entries of other into m, tags included, handling keys
// present in both according to strategy. It returns the colliding keys.
//
// With the Error strategy, collisions are detected before anything is written:
// m is left untouched and the error wraps ErrKeyCollision.
func (m *TagMap[K, T, V]) Merge(other *TagMap[K, T, V], strategy MergeStrategy) ([]K, error) {
	if other == nil || other == m {
		return nil, nil
	}

	collisions := other.FindKeyCollisions(m)
	if strategy == Error && len(collisions) > 0 {
		m.log().Warn("tagmap: merge aborted, %d colliding keys", len(collisions))
		return collisions, fmt.Errorf("%w: %v", ErrKeyCollision, collisions[0])
	}

	written := 0
	for k, v := range other.values {
		if strategy == Skip && m.ContainsKey(k) {
			continue
		}

		m.put(k, copySet(other.tags[k]), v)
		written++
	}

	m.log().Debug("tagmap: merge strategy=%s written=%d collisions=%d", strategy, written, len(collisions))
	if written > 0 {
		m.notify(OpMerge)
	}
	return collisions, nil
}
