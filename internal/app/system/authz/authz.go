// Package authz resolves whether a user holds a named capability.
//
// A capability is granted only when two independent signals agree: the
// user's role column equals the capability name, AND the matching membership
// row exists. The two can drift under partial failures, so neither signal is
// trusted alone; do not collapse this into a single check.
package authz

import (
	"context"
	"strings"
)

// Capability names checked at the authorization layer.
const (
	CapabilityWriter = "writer"
	CapabilityAdmin  = "admin"
)

// MembershipChecker reports whether a capability membership row exists for
// a user. Implemented by the admins and writers stores.
type MembershipChecker interface {
	Exists(ctx context.Context, userID uint) (bool, error)
}

// Resolver answers capability questions against the membership stores.
type Resolver struct {
	admins  MembershipChecker
	writers MembershipChecker
}

// NewResolver creates a Resolver over the two membership stores.
func NewResolver(admins, writers MembershipChecker) *Resolver {
	return &Resolver{admins: admins, writers: writers}
}

// HasCapability reports whether the user identified by (role, userID) holds
// the capability. The role column and the membership row must both match;
// an unknown capability name is never granted.
func (r *Resolver) HasCapability(ctx context.Context, role string, userID uint, capability string) (bool, error) {
	if strings.ToLower(strings.TrimSpace(role)) != capability {
		return false, nil
	}

	var checker MembershipChecker
	switch capability {
	case CapabilityAdmin:
		checker = r.admins
	case CapabilityWriter:
		checker = r.writers
	default:
		return false, nil
	}

	return checker.Exists(ctx, userID)
}
