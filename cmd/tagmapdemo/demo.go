package main

import (
	"cmp"
	"encoding/json"
	"fmt"
	"io"
	"slices"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/rs/zerolog/log"

	"github.com/davidroman0O/tagmap"
)

const (
	formatText = "text"
	formatJSON = "json"
)

type demoMap = tagmap.TagMap[int, string, string]

type step struct {
	name  string
	apply func(m *demoMap)
}

var referenceSteps = []step{
	{"put 1 {a,b,c} abc", func(m *demoMap) { m.Put(1, []string{"a", "b", "c"}, "abc") }},
	{"put 2 {a,b} abc", func(m *demoMap) { m.Put(2, []string{"a", "b"}, "abc") }},
	{"put 2 {a,c} abc", func(m *demoMap) { m.Put(2, []string{"a", "c"}, "abc") }},
	{"remove 1", func(m *demoMap) { m.Remove(1) }},
	{"remove 2", func(m *demoMap) { m.Remove(2) }},
}

func runScenario(w io.Writer, m *demoMap, format string) error {
	var write func(io.Writer, *demoMap) error
	switch format {
	case formatText:
		write = writeText
	case formatJSON:
		write = writeJSON
	default:
		return fmt.Errorf("unknown format %q", format)
	}

	for _, s := range referenceSteps {
		log.Info().Str("step", s.name).Msg("applying")
		s.apply(m)
		if err := write(w, m); err != nil {
			return err
		}
	}
	return nil
}

// writeText prints the key and tag views, sorted for stable output.
func writeText(w io.Writer, m *demoMap) error {
	var lines []string
	lines = append(lines, "===============", "== Key to Value")
	for _, key := range mapset.Sorted(m.KeySet()) {
		value, _ := m.GetByKey(key)
		lines = append(lines, fmt.Sprintf("%d\t%s", key, value))
	}

	lines = append(lines, "== Tag to Value")
	for _, tag := range mapset.Sorted(m.TagSet()) {
		values, ok := m.GetByTag(tag)
		if !ok {
			continue
		}
		for _, value := range mapset.Sorted(values) {
			lines = append(lines, fmt.Sprintf("%s\t%s", tag, value))
		}
	}

	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func writeJSON(w io.Writer, m *demoMap) error {
	entries := m.Entries()
	slices.SortFunc(entries, func(a, b tagmap.Entry[int, string, string]) int {
		return cmp.Compare(a.Key, b.Key)
	})
	for i := range entries {
		slices.Sort(entries[i].Tags)
	}

	data, err := json.Marshal(entries)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(data))
	return err
}
