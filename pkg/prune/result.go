package prune

import (
	"time"

	"golang.org/x/text/language"
)

// Status is the outcome of processing one target catalog.
type Status string

const (
	// StatusClean means the target has no extra keys.
	StatusClean Status = "clean"
	// StatusPruned means extra keys were removed and the file was saved.
	StatusPruned Status = "pruned"
	// StatusWouldPrune means extra keys were found in a dry run.
	StatusWouldPrune Status = "would-prune"
	// StatusLoadError means the target could not be read or parsed.
	StatusLoadError Status = "load-error"
	// StatusSaveError means the pruned target could not be written; the file
	// on disk is unchanged.
	StatusSaveError Status = "save-error"
)

// Changed reports whether the status counts as a changed file.
func (s Status) Changed() bool {
	return s == StatusPruned || s == StatusWouldPrune
}

// Failed reports whether the status is an error.
func (s Status) Failed() bool {
	return s == StatusLoadError || s == StatusSaveError
}

// FileResult describes what happened to one target catalog.
type FileResult struct {
	Name   string       // base filename
	Path   string       // full path
	Locale language.Tag // locale parsed from Name, language.Und if none
	Status Status

	// Extras are the key paths found in the target but not in the reference,
	// sorted. Empty for clean files and load errors.
	Extras []string

	// Before and After count key paths in the target before and after
	// pruning. After equals Before when nothing was written.
	Before int
	After  int

	Err error // set for load and save errors
}

// Summary aggregates a complete run.
type Summary struct {
	Reference     string
	ReferenceKeys int
	Files         []FileResult
	FilesChanged  int
	KeysRemoved   int
	DryRun        bool
	Duration      time.Duration
}

// Failed returns the number of files that could not be loaded or saved.
func (s *Summary) Failed() int {
	n := 0
	for _, f := range s.Files {
		if f.Status.Failed() {
			n++
		}
	}
	return n
}
