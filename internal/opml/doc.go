// Package opml parses OPML outline documents into a generic node tree.
//
// Overcast's export dialect stores playlist, feed, and episode data as
// attributes on nested <outline> elements rather than as element text, and
// the attribute set changes as the upstream format evolves. The tree
// therefore keeps every node as an open-ended attribute bag and leaves
// schema interpretation to callers. Attribute order within a node follows
// document order, which drift reporting depends on.
//
// Load handles the export's quirk of prepending a non-standard declaration
// line that the XML decoder would reject; the first line of the file is
// always discarded.
package opml
