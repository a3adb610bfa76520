// Package domain defines the identity and payload types assembled by the
// omegraph core while a bio-imaging file is parsed.
//
// # Identity
//
// EntityID identifies an entity either structurally, by entity type plus the
// ordered positional coordinates it was reached through (image 0, channel 2),
// or opaquely, by a string the source file assigned. Equality and map keys
// always use the canonical rendering "<type>:<c1>[:<c2>...]", so an opaque id
// built from that exact string is the same id as the structural one.
//
// # Entities
//
// The set of entity types is closed. New is the only constructor; unknown
// types fail with ErrUnsupportedEntityType. Each type has a Schema giving its
// coordinate layout and the parent type those coordinates imply, which is
// what consolidation uses to materialize missing ancestors.
//
// Payload fields that may be absent are pointers so "never set" is
// distinguishable from a zero value.
//
// # Vocabularies
//
// Controlled vocabularies (immersion, correction, detector type, ...) are
// typed string enums with canonical label sets, resolved from noisy source
// text by package enums.
package domain
