// Package tagmap provides a generic in-memory map whose entries carry tags.
//
// A TagMap associates each key with one value and a set of tags. Values can be
// looked up by key, or by any tag attached to them: a value stays reachable
// under a tag for as long as at least one live key associates it with that tag.
//
// Internally three indices are kept consistent:
//   - Primary index: key to value
//   - Membership index: key to tag set
//   - Reverse index: tag to the distinct values under it, each with the number
//     of keys contributing it
//
// Every update is a full teardown of the old association followed by a full
// build of the new one, even when the tag set does not change.
//
// Query results (sets, slices) are detached copies: modifying them never
// changes the map. A TagMap is not safe for concurrent use; the owner must
// serialize access.
//
// Additional features include tag intersections and unions, cloning, merging
// with a collision strategy, JSON encoding of the entries, pluggable logging
// and an observer hook used by the metrics package.
package tagmap
