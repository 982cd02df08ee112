// Package btreeset implements an in-memory, generic B-tree set: an ordered
// container of unique keys parameterised by a minimum degree t >= 1.
//
// The two collaborating types are node, which owns an ordered key array and
// a child array and knows how to split, merge, and borrow across its own
// slots, and Tree, which owns the root node and drives top-down descent for
// Contains, Find, Insert, and Remove. Keys must satisfy cmp.Ordered; there
// is no custom comparator and no value payload. Because K is limited to
// cmp.Ordered types, a struct pair cannot be used as a key.
package btreeset
