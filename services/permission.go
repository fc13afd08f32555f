package services

import (
	"fmt"
	"strings"

	userModel "github.com/kodraiti-design/eagles-transportes/models/user"
)

// Capability is a single gated action, e.g. "create_freight".
type Capability string

// CapabilitySet is a flat membership set. There is no hierarchy between
// capabilities; the only special rule is the ADMIN override evaluated
// before set lookup.
type CapabilitySet map[Capability]struct{}

// ParseCapabilities builds a set from the comma-separated list stored on a
// user account. Whitespace and empty segments are ignored.
func ParseCapabilities(csv string) CapabilitySet {
	set := make(CapabilitySet)
	for _, part := range strings.Split(csv, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			set[Capability(trimmed)] = struct{}{}
		}
	}
	return set
}

// NewCapabilitySet builds a set from explicit capability strings.
func NewCapabilitySet(caps ...string) CapabilitySet {
	set := make(CapabilitySet, len(caps))
	for _, c := range caps {
		set[Capability(c)] = struct{}{}
	}
	return set
}

func (s CapabilitySet) Has(cap Capability) bool {
	_, ok := s[cap]
	return ok
}

// Strings returns the member capabilities, for serialization back into the
// stored comma-separated shape.
func (s CapabilitySet) Strings() []string {
	list := make([]string, 0, len(s))
	for c := range s {
		list = append(list, string(c))
	}
	return list
}

// HasCapability is the single permission predicate. ADMIN short-circuits
// to true for every capability, including ones not present in any
// enumerated list; OPERATOR is exact set membership.
func HasCapability(role userModel.Role, set CapabilitySet, cap Capability) bool {
	if role == userModel.RoleAdmin {
		return true
	}
	return set.Has(cap)
}

// ValidateCapabilities checks a stored comma-separated capability list
// against the known registry, so a typo in a grant fails at write time
// instead of silently never matching a gate.
func ValidateCapabilities(csv string, known []string) error {
	knownSet := NewCapabilitySet(known...)
	for c := range ParseCapabilities(csv) {
		if !knownSet.Has(c) {
			return fmt.Errorf("unknown permission: %s", c)
		}
	}
	return nil
}
