// Package catalog computes upgrade catalogs from a commit DAG. It has no
// knowledge of SQL, HTTP, or process lifecycle: everything it needs comes
// through CommitGraph, and everything it produces is a Catalog value.
package catalog

import "time"

// Commit is one node of the DAG. A zero Parent or MergeFrom means the edge
// is absent (commit ids are assigned starting at 1).
type Commit struct {
	ID        int64
	Parent    int64
	MergeFrom int64
	Comment   string
	Date      time.Time
}

// FileEvent is a single file touched by a commit, in the commit's own
// insertion order.
type FileEvent struct {
	Path     string
	IsDelete bool
}

// Tag names a single commit. Names are unique across a CommitGraph.
type Tag struct {
	Name     string
	CommitID int64
}

// CommitGraph is the read-only snapshot the generator consumes. Callers
// (the storage layer) implement it; the generator never writes through it.
type CommitGraph interface {
	// Commits returns every commit reachable from head via Parent or
	// MergeFrom edges. Order is irrelevant.
	Commits(head int64) ([]Commit, error)

	// Files returns the file events a commit introduces, in original
	// order. A commit that introduces nothing returns an empty slice.
	Files(commitID int64) ([]FileEvent, error)

	// LastTag returns the nearest tag on commitID's Parent chain
	// (commitID included), or ok=false if none exists.
	LastTag(commitID int64) (tag string, ok bool, err error)

	// CommitOf resolves a tag to its commit id. Returns ErrUnknownTag
	// for a tag the graph does not recognize.
	CommitOf(tag string) (commitID int64, err error)
}
