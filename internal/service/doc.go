// Package service wraps the core stores in import units with an enforced
// two-phase lifecycle.
//
// # Units
//
// A Unit owns one ContainerStore and one ReferenceStore. During the
// accumulation phase a single goroutine drives GetOrCreate, SetExternalID
// and AddReference from a format reader's callbacks. Consolidate then runs
// the consolidation pipeline exactly once, after which every mutation fails
// with ErrConsolidated and the stores may be read from any number of
// goroutines. Stores are never shared between units, so a batch of files is
// processed in parallel with ConsolidateAll rather than by locking.
//
// # Event System
//
// Units publish lifecycle events (created, consolidated, failed) on an
// optional EventBus. Slow subscribers miss events rather than block.
package service
