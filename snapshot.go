package tagmap

import (
	"encoding/json"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/invopop/jsonschema"
)

// Entry is a key with its value and tags, as exported by Entries.
type Entry[K comparable, T comparable, V comparable] struct {
	Key   K   `json:"key"`
	Tags  []T `json:"tags"`
	Value V   `json:"value"`
}

// Entries returns every entry of the map in no particular order.
func (m *TagMap[K, T, V]) Entries() []Entry[K, T, V] {
	entries := make([]Entry[K, T, V], 0, len(m.values))
	for k, v := range m.values {
		tags := []T{}
		if s, ok := m.tags[k]; ok {
			tags = s.ToSlice()
		}
		entries = append(entries, Entry[K, T, V]{Key: k, Tags: tags, Value: v})
	}
	return entries
}

// MarshalJSON encodes the map as a JSON array of entries.
func (m *TagMap[K, T, V]) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.Entries())
}

// UnmarshalJSON replaces the content of the map with the decoded entries. A key
// listed more than once keeps its last entry. On error the map is unchanged.
func (m *TagMap[K, T, V]) UnmarshalJSON(data []byte) error {
	var entries []Entry[K, T, V]
	if err := json.Unmarshal(data, &entries); err != nil {
		return err
	}

	m.clear()
	for _, e := range entries {
		m.put(e.Key, mapset.NewThreadUnsafeSet(e.Tags...), e.Value)
	}

	m.log().Debug("tagmap: loaded %d entries", len(entries))
	m.notify(OpLoad)
	return nil
}

// EntrySchema returns the JSON schema of a single entry of the array produced
// by MarshalJSON.
func EntrySchema[K comparable, T comparable, V comparable]() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		ExpandedStruct:            true,
		DoNotReference:            true,
		AllowAdditionalProperties: false,
	}
	return reflector.Reflect(&Entry[K, T, V]{})
}
