package catalog

// Options control [Prune].
type Options struct {
	// Keep, if set, exempts matching extra key paths from removal.
	Keep func(path string) bool
}

// Result is the outcome of pruning one target catalog.
type Result struct {
	// Catalog is the pruned catalog. It is the target itself when there was
	// nothing to prune, and a modified deep copy otherwise.
	Catalog *Catalog

	// Extras are the key paths present in the target but not in the
	// reference, sorted.
	Extras []string

	// Removed are the extras that were actually deleted. An extra nested
	// under another extra disappears with its parent and is not listed here.
	Removed []string
}

// Changed reports whether the target had extra keys.
func (r Result) Changed() bool {
	return len(r.Extras) > 0
}

// Extras returns the sorted key paths of target that reference lacks,
// excluding any path accepted by keep. An extra that is an ancestor of a kept
// path is excluded as well, since deleting it would delete the kept path.
func Extras(reference, target *Catalog, keep func(path string) bool) []string {
	diff := NewKeySet(target).Difference(NewKeySet(reference))
	if keep == nil {
		return diff
	}

	protected := make(map[string]struct{})
	for _, p := range diff {
		if !keep(p) {
			continue
		}
		protected[p] = struct{}{}
		for i := len(p) - 1; i > 0; i-- {
			if p[i] == Separator[0] {
				protected[p[:i]] = struct{}{}
			}
		}
	}

	out := diff[:0]
	for _, p := range diff {
		if _, ok := protected[p]; !ok {
			out = append(out, p)
		}
	}
	return out
}

// Prune removes from a copy of target every key path missing from reference.
// Extras are deleted in sorted order, so a parent is always removed before
// its descendants, which then count as already gone.
func Prune(reference, target *Catalog, opts Options) Result {
	extras := Extras(reference, target, opts.Keep)
	if len(extras) == 0 {
		return Result{Catalog: target}
	}

	pruned := target.Clone()
	var removed []string
	for _, p := range extras {
		if DeletePath(pruned, p) {
			removed = append(removed, p)
		}
	}
	return Result{Catalog: pruned, Extras: extras, Removed: removed}
}
