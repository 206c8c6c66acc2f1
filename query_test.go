package tagmap

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newQueryFixture() *TagMap[string, string, string] {
	m := New[string, string, string]()
	m.Put("page1", []string{"foo", "bar", "baz"}, "https://www.example.org/page1")
	m.Put("page2", []string{"foo", "bar", "qux"}, "https://www.example.org/page2")
	m.Put("page3", []string{"bar", "baz", "qux"}, "https://www.example.org/page3")
	m.Put("mirror", []string{"foo"}, "https://www.example.org/page1")
	return m
}

func TestViews(t *testing.T) {
	m := newQueryFixture()

	assert.ElementsMatch(t, []string{"page1", "page2", "page3", "mirror"}, m.KeySet().ToSlice())
	assert.ElementsMatch(t, []string{"foo", "bar", "baz", "qux"}, m.TagSet().ToSlice())
	assert.ElementsMatch(t, []string{
		"https://www.example.org/page1",
		"https://www.example.org/page2",
		"https://www.example.org/page3",
		"https://www.example.org/page1",
	}, m.Values())

	foo, ok := m.GetByTag("foo")
	require.True(t, ok)
	assert.ElementsMatch(t, []string{
		"https://www.example.org/page1",
		"https://www.example.org/page2",
	}, foo.ToSlice())
	assert.Equal(t, 2, m.CountOf("foo", "https://www.example.org/page1"))
}

func TestViewsAreDetached(t *testing.T) {
	m := newQueryFixture()

	keys := m.KeySet()
	keys.Add("injected")
	keys.Remove("page1")
	assert.False(t, m.ContainsKey("injected"))
	assert.True(t, m.ContainsKey("page1"))

	tags := m.TagSet()
	tags.Clear()
	assert.True(t, m.ContainsTag("foo"))

	foo, _ := m.GetByTag("foo")
	foo.Add("https://www.example.org/other")
	again, _ := m.GetByTag("foo")
	assert.False(t, again.Contains("https://www.example.org/other"))

	own, _ := m.TagsOf("page1")
	own.Add("extra")
	assert.False(t, m.ContainsTag("extra"))

	values := m.Values()
	values[0] = "changed"
	assert.False(t, m.ContainsValue("changed"))
	require.NoError(t, m.Validate())
}

func TestContains(t *testing.T) {
	m := newQueryFixture()

	assert.True(t, m.ContainsKey("page1"))
	assert.False(t, m.ContainsKey("page4"))

	assert.True(t, m.ContainsTag("qux"))
	assert.False(t, m.ContainsTag("quux"))

	assert.True(t, m.ContainsValue("https://www.example.org/page3"))
	assert.False(t, m.ContainsValue("https://www.example.org/page4"))

	m.Put("untagged", nil, "https://www.example.org/page4")
	assert.True(t, m.ContainsValue("https://www.example.org/page4"))
}

func TestTagsOf(t *testing.T) {
	m := newQueryFixture()

	tags, ok := m.TagsOf("page2")
	require.True(t, ok)
	assert.ElementsMatch(t, []string{"foo", "bar", "qux"}, tags.ToSlice())

	_, ok = m.TagsOf("missing")
	assert.False(t, ok)
}

func TestKeysByTag(t *testing.T) {
	m := newQueryFixture()

	assert.ElementsMatch(t, []string{"page1", "page2", "mirror"}, m.KeysByTag("foo"))
	assert.Empty(t, m.KeysByTag("quux"))
}

func TestGetByAllTags(t *testing.T) {
	m := newQueryFixture()

	assert.ElementsMatch(t, []string{
		"https://www.example.org/page1",
		"https://www.example.org/page2",
	}, m.GetByAllTags("foo", "bar").ToSlice())

	assert.ElementsMatch(t, []string{
		"https://www.example.org/page3",
	}, m.GetByAllTags("baz", "qux").ToSlice())

	assert.Equal(t, 0, m.GetByAllTags("foo", "quux").Cardinality())
	assert.Equal(t, 0, m.GetByAllTags("quux").Cardinality())
	assert.Equal(t, 0, m.GetByAllTags().Cardinality())
}

func TestGetByAnyTag(t *testing.T) {
	m := newQueryFixture()

	assert.ElementsMatch(t, []string{
		"https://www.example.org/page1",
		"https://www.example.org/page2",
		"https://www.example.org/page3",
	}, m.GetByAnyTag("foo", "baz", "quux").ToSlice())

	assert.Equal(t, 0, m.GetByAnyTag().Cardinality())
}

func TestAll(t *testing.T) {
	m := newQueryFixture()

	seen := map[string]string{}
	for k, v := range m.All() {
		seen[k] = v
	}
	assert.Len(t, seen, 4)
	assert.Equal(t, "https://www.example.org/page2", seen["page2"])

	count := 0
	for range m.All() {
		count++
		break
	}
	assert.Equal(t, 1, count)
}

func TestArrayKeys(t *testing.T) {
	m := New[uuid.UUID, string, int]()
	first, second := uuid.New(), uuid.New()

	m.Put(first, []string{"even"}, 2)
	m.Put(second, []string{"even"}, 2)

	assert.Equal(t, 2, m.CountOf("even", 2))
	assert.True(t, m.KeySet().Contains(first, second))

	m.Remove(first)
	assert.Equal(t, 1, m.CountOf("even", 2))
	assert.ElementsMatch(t, []uuid.UUID{second}, m.KeysByTag("even"))
}
