// Package metrics computes conference aggregates, per-school deltas, the
// traditionalism ranking and rank tables over an immutable song collection.
//
// Every function is pure: it reads the songs it is given and returns a fresh
// result. Values are returned at full precision; rounding belongs to whoever
// renders them.
package metrics
