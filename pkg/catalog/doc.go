// Package catalog reads, writes, and prunes nested JSON message catalogs.
//
// # Overview
//
// A message catalog is a JSON object whose values are translation strings or
// nested objects acting as namespaces:
//
//	{
//	  "common": {
//	    "save": "Save",
//	    "cancel": "Cancel"
//	  },
//	  "title": "Files"
//	}
//
// Every node is addressed by a key path: the mapping keys from the root joined
// with dots ("common.save"). A path names internal nodes ("common") as well as
// leaves, and the two are not distinguished when comparing catalogs.
//
// # Ordering
//
// [Catalog] keeps keys in document order so that a load followed by a save
// only changes what was deliberately changed. Numbers are kept in their
// textual form ([encoding/json.Number]) for the same reason.
//
// # Pruning
//
// [Prune] removes from a target catalog every key path that the reference
// catalog does not have. Matching is exact; there is no prefix or wildcard
// semantics unless the caller supplies a keep predicate. Pruning works on a
// deep copy and never removes a mapping just because it became empty.
//
//	ref, _ := catalog.Load("messages/en-US.json")
//	tgt, _ := catalog.Load("messages/fr-FR.json")
//	res := catalog.Prune(ref, tgt, catalog.Options{})
//	if res.Changed() {
//	    _ = catalog.Save("messages/fr-FR.json", res.Catalog)
//	}
//
// # Key paths containing dots
//
// Keys are joined without escaping, so a key that itself contains a dot is
// indistinguishable from a nested path. Such catalogs still load and save
// unchanged; only pruning decisions for those keys may be ambiguous.
package catalog
