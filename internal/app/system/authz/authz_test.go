package authz_test

import (
	"context"
	"errors"
	"testing"

	"github.com/dattali18/FSWD-Project-6-Backend/internal/app/system/authz"
)

type fakeChecker struct {
	exists bool
	err    error
}

func (f fakeChecker) Exists(ctx context.Context, userID uint) (bool, error) {
	return f.exists, f.err
}

func TestHasCapability_RequiresRoleAndMembership(t *testing.T) {
	tests := []struct {
		name       string
		role       string
		membership bool
		capability string
		want       bool
	}{
		{"role and membership", "admin", true, authz.CapabilityAdmin, true},
		{"role without membership", "admin", false, authz.CapabilityAdmin, false},
		{"membership without role", "user", true, authz.CapabilityAdmin, false},
		{"neither", "user", false, authz.CapabilityAdmin, false},
		{"writer role and membership", "writer", true, authz.CapabilityWriter, true},
		{"writer role without membership", "writer", false, authz.CapabilityWriter, false},
		{"role case and whitespace folded", " Admin ", true, authz.CapabilityAdmin, true},
		{"admin role checked for writer capability", "admin", true, authz.CapabilityWriter, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checker := fakeChecker{exists: tt.membership}
			resolver := authz.NewResolver(checker, checker)

			got, err := resolver.HasCapability(context.Background(), tt.role, 1, tt.capability)
			if err != nil {
				t.Fatalf("HasCapability() failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("HasCapability(%q, %q): got %v, want %v", tt.role, tt.capability, got, tt.want)
			}
		})
	}
}

func TestHasCapability_UnknownCapability(t *testing.T) {
	checker := fakeChecker{exists: true}
	resolver := authz.NewResolver(checker, checker)

	got, err := resolver.HasCapability(context.Background(), "superuser", 1, "superuser")
	if err != nil {
		t.Fatalf("HasCapability() failed: %v", err)
	}
	if got {
		t.Error("HasCapability() granted an unknown capability")
	}
}

func TestHasCapability_StoreError(t *testing.T) {
	storeErr := errors.New("connection lost")
	checker := fakeChecker{err: storeErr}
	resolver := authz.NewResolver(checker, checker)

	got, err := resolver.HasCapability(context.Background(), "admin", 1, authz.CapabilityAdmin)
	if !errors.Is(err, storeErr) {
		t.Fatalf("HasCapability() error: got %v, want %v", err, storeErr)
	}
	if got {
		t.Error("HasCapability() granted capability despite store error")
	}
}
