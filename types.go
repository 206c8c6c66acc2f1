package tagmap

import "errors"

// MergeStrategy defines how key collisions are handled when merging maps.
type MergeStrategy int

const (
	// Skip keeps the existing entry on collision.
	Skip MergeStrategy = iota
	// Overwrite replaces the existing entry, tags included.
	Overwrite
	// Error aborts the merge before anything is written.
	Error
)

func (s MergeStrategy) String() string {
	switch s {
	case Skip:
		return "skip"
	case Overwrite:
		return "overwrite"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// Op names a mutation reported to an Observer.
type Op string

const (
	// OpPut is reported by Put and PutSet.
	OpPut Op = "put"
	// OpReplace is reported by Replace and ReplaceSet when the key existed.
	OpReplace Op = "replace"
	// OpRemove is reported by Remove when the key existed.
	OpRemove Op = "remove"
	// OpClear is reported by Clear.
	OpClear Op = "clear"
	// OpMerge is reported once per Merge that wrote entries.
	OpMerge Op = "merge"
	// OpLoad is reported by UnmarshalJSON.
	OpLoad Op = "load"
)

var (
	// ErrKeyCollision is returned by Merge with the Error strategy.
	ErrKeyCollision = errors.New("key collision on merge")

	// ErrInconsistent is returned by Validate when the indices disagree.
	ErrInconsistent = errors.New("inconsistent index")
)
