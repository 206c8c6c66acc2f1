package tagmap

import (
	"errors"
	"fmt"
)

// Validate checks that the primary, membership and reverse indices agree. It
// returns nil for any map reached through the exported operations; a non-nil
// error wraps ErrInconsistent once per violation found.
func (m *TagMap[K, T, V]) Validate() error {
	var errs []error

	if len(m.values) != len(m.tags) {
		errs = append(errs, fmt.Errorf("%w: %d keys with values, %d keys with tag sets",
			ErrInconsistent, len(m.values), len(m.tags)))
	}

	type pair struct {
		tag   T
		value V
	}
	expected := map[pair]int{}

	for k, v := range m.values {
		tags, ok := m.tags[k]
		if !ok {
			errs = append(errs, fmt.Errorf("%w: key %v has no tag set", ErrInconsistent, k))
			continue
		}
		for _, t := range tags.ToSlice() {
			expected[pair{t, v}]++
		}
	}

	for k := range m.tags {
		if _, ok := m.values[k]; !ok {
			errs = append(errs, fmt.Errorf("%w: key %v has a tag set but no value", ErrInconsistent, k))
		}
	}

	seen := 0
	m.reverse.Each(func(tag T, value V, count int) bool {
		seen++
		if want := expected[pair{tag, value}]; count != want {
			errs = append(errs, fmt.Errorf("%w: tag %v value %v counted %d, expected %d",
				ErrInconsistent, tag, value, count, want))
		}
		return true
	})

	if seen != len(expected) {
		errs = append(errs, fmt.Errorf("%w: reverse index holds %d tag/value pairs, expected %d",
			ErrInconsistent, seen, len(expected)))
	}

	return errors.Join(errs...)
}
