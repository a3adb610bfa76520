// Package store holds the per-unit in-memory graph: a ContainerStore that
// allocates exactly one Container per (type, coordinates) identity, and a
// ReferenceStore that records directed, optionally role-qualified links.
//
// Both stores are safe for concurrent readers. Writers are expected to be a
// single goroutine replaying one assertion stream.
package store
