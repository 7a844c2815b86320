// Package corpus defines the directed page graph that the pagerank
// estimators consume: a set of uniquely named pages, each with a set of
// outbound links to other pages in the same corpus.
//
// Model:
//
//   - A page is identified by a non-empty, unique string ID.
//   - Links are directed and unweighted; parallel links collapse into one.
//   - Self-links are dropped silently on insertion.
//   - A page with no outbound links is a dangling page; the estimators treat
//     it as linking uniformly to every page in the corpus (itself included).
//
// Link targets are always pages. AddLink registers both of its endpoints, so
// a target that was never added explicitly becomes a page with an empty
// out-link set: a valid dangling page, never a broken reference. This keeps
// the corpus closed under its own links by construction.
//
// Determinism:
//
//   - Pages() and Links() return IDs sorted lexicographically ascending.
//     Algorithms that iterate the corpus through these surfaces produce
//     reproducible outputs regardless of map iteration order.
//
// Concurrency:
//
//   - A Corpus is not safe for concurrent mutation. The intended lifecycle
//     is: build once (crawl or builder), then hand off read-only to the
//     estimators. The estimators never mutate the corpus.
//
// Errors (sentinel):
//
//   - ErrEmptyPageID  if a page or link endpoint has an empty ID.
//   - ErrPageNotFound if a query references a page that does not exist.
package corpus
