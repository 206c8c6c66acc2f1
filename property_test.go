package tagmap

import (
	"testing"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

type modelEntry struct {
	value string
	tags  mapset.Set[string]
}

// expectedByTag rebuilds the reverse index from the model.
func expectedByTag(model map[int]modelEntry) map[string]mapset.Set[string] {
	out := map[string]mapset.Set[string]{}
	for _, e := range model {
		for _, tag := range e.tags.ToSlice() {
			if _, ok := out[tag]; !ok {
				out[tag] = mapset.NewThreadUnsafeSet[string]()
			}
			out[tag].Add(e.value)
		}
	}
	return out
}

func TestOperationSequences(t *testing.T) {
	keyGen := rapid.IntRange(0, 6)
	valueGen := rapid.SampledFrom([]string{"abc", "def", "ghi"})
	tagsGen := rapid.SliceOfN(rapid.SampledFrom([]string{"a", "b", "c", "d"}), 0, 5)

	rapid.Check(t, func(t *rapid.T) {
		m := New[int, string, string]()
		model := map[int]modelEntry{}

		t.Repeat(map[string]func(*rapid.T){
			"put": func(t *rapid.T) {
				key := keyGen.Draw(t, "key")
				tags := tagsGen.Draw(t, "tags")
				value := valueGen.Draw(t, "value")

				previous, ok := m.Put(key, tags, value)
				old, existed := model[key]
				require.Equal(t, existed, ok)
				if existed {
					require.Equal(t, old.value, previous)
				}
				model[key] = modelEntry{value: value, tags: mapset.NewThreadUnsafeSet(tags...)}
			},
			"replace": func(t *rapid.T) {
				key := keyGen.Draw(t, "key")
				tags := tagsGen.Draw(t, "tags")
				value := valueGen.Draw(t, "value")

				_, ok := m.Replace(key, tags, value)
				_, existed := model[key]
				require.Equal(t, existed, ok)
				if existed {
					model[key] = modelEntry{value: value, tags: mapset.NewThreadUnsafeSet(tags...)}
				}
			},
			"remove": func(t *rapid.T) {
				key := keyGen.Draw(t, "key")

				removed, ok := m.Remove(key)
				old, existed := model[key]
				require.Equal(t, existed, ok)
				if existed {
					require.Equal(t, old.value, removed)
				}
				delete(model, key)
			},
			"clear": func(t *rapid.T) {
				m.Clear()
				model = map[int]modelEntry{}
			},
			"": func(t *rapid.T) {
				require.NoError(t, m.Validate())
				require.Equal(t, len(model), m.Size())

				for key, e := range model {
					v, ok := m.GetByKey(key)
					require.True(t, ok)
					require.Equal(t, e.value, v)
				}

				expected := expectedByTag(model)
				require.Equal(t, len(expected), m.TagSet().Cardinality())
				for tag, values := range expected {
					got, ok := m.GetByTag(tag)
					require.True(t, ok, "tag %s", tag)
					require.True(t, values.Equal(got), "tag %s: want %v got %v", tag, values, got)
				}
			},
		})
	})
}
