// Package overcast turns an Overcast OPML export tree into validated
// playlist, feed, and episode records.
//
// Construction is explicit. Each record kind has a fallible constructor
// that reads a node's attribute bag and reports exactly which required
// attribute is missing or mistyped. Validation failures are recoverable at
// record granularity: the offending record is logged together with its raw
// attributes and dropped, and the walk continues. A feed that fails
// validation takes its whole episode subtree with it, since those episodes
// would have no owner in the result.
//
// When drift reporting is enabled, attribute names no schema models are
// accumulated per record kind, deduplicated in first-seen order, and
// emitted as warnings once the walk finishes. Drift never changes the
// result or the exit status. It exists to catch upstream export-format
// changes early.
package overcast
