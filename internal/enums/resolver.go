// Package enums maps noisy free-text vocabulary terms from source files to
// canonical enumeration values.
package enums

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrNoMatch is returned by a strict resolver when no label matches
var ErrNoMatch = errors.New("no matching enumeration value")

// Policy selects what happens when a term matches nothing
type Policy string

const (
	PolicyStrict   Policy = "strict"
	PolicyFallback Policy = "fallback"
)

// ParsePolicy validates a configured policy name
func ParsePolicy(s string) (Policy, error) {
	switch p := Policy(strings.ToLower(strings.TrimSpace(s))); p {
	case PolicyStrict, PolicyFallback:
		return p, nil
	case "":
		return PolicyFallback, nil
	}
	return "", fmt.Errorf("unknown enumeration policy %q", s)
}

// Resolver resolves query against a canonical label set
type Resolver[V any] interface {
	Resolve(set map[string]V, query string) (V, error)
}

// Strict fails with ErrNoMatch when nothing matches
type Strict[V any] struct{}

func (Strict[V]) Resolve(set map[string]V, query string) (V, error) {
	if v, ok := Match(set, query); ok {
		return v, nil
	}
	var zero V
	return zero, fmt.Errorf("%w: %q", ErrNoMatch, strings.TrimSpace(query))
}

// Fallback returns Unknown when nothing matches
type Fallback[V any] struct {
	Unknown V
}

func (f Fallback[V]) Resolve(set map[string]V, query string) (V, error) {
	if v, ok := Match(set, query); ok {
		return v, nil
	}
	return f.Unknown, nil
}

// NewResolver returns the resolver for policy. unknown is only used by the
// fallback policy.
func NewResolver[V any](policy Policy, unknown V) Resolver[V] {
	if policy == PolicyStrict {
		return Strict[V]{}
	}
	return Fallback[V]{Unknown: unknown}
}

// Match trims query and tries, in order: an exact label, a label contained
// in the query or containing it, and a label the query abbreviates (its
// runes appear in the label in order, starting with the first). Ties go to
// the first label in sorted order. An empty query never matches.
func Match[V any](set map[string]V, query string) (V, bool) {
	var zero V
	q := strings.TrimSpace(query)
	if q == "" {
		return zero, false
	}
	if v, ok := set[q]; ok {
		return v, true
	}

	labels := make([]string, 0, len(set))
	for label := range set {
		if label != "" {
			labels = append(labels, label)
		}
	}
	sort.Strings(labels)

	// longest label inside the query, else the tightest label around it
	best := ""
	for _, label := range labels {
		if strings.Contains(q, label) && len(label) > len(best) {
			best = label
		}
	}
	if best == "" {
		for _, label := range labels {
			if strings.Contains(label, q) && (best == "" || len(label) < len(best)) {
				best = label
			}
		}
	}
	if best != "" {
		return set[best], true
	}
	for _, label := range labels {
		if abbreviates(q, label) {
			return set[label], true
		}
	}
	return zero, false
}

func abbreviates(q, label string) bool {
	qr, lr := []rune(q), []rune(label)
	if len(qr) == 0 || len(lr) == 0 || qr[0] != lr[0] {
		return false
	}
	i := 0
	for _, r := range lr {
		if i < len(qr) && qr[i] == r {
			i++
		}
	}
	return i == len(qr)
}
