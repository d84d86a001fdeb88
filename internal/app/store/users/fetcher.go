// internal/app/store/users/fetcher.go
package userstore

import (
	"context"

	"github.com/dattali18/FSWD-Project-6-Backend/internal/app/system/auth"
	"github.com/dattali18/FSWD-Project-6-Backend/internal/app/system/timeouts"
)

// Fetcher implements auth.UserFetcher: it loads fresh user data on each
// gated request so role changes and deletions take effect immediately.
type Fetcher struct {
	users *Store
}

// NewFetcher creates a UserFetcher that queries the given store.
func NewFetcher(users *Store) *Fetcher {
	return &Fetcher{users: users}
}

// FetchUser resolves a decoded username to a live identity. It returns nil
// if the user is not found or if any error occurs; the caller rejects the
// credential in both cases.
func (f *Fetcher) FetchUser(ctx context.Context, username string) *auth.Identity {
	ctx, cancel := context.WithTimeout(ctx, timeouts.Short())
	defer cancel()

	u, err := f.users.GetByUsername(ctx, username)
	if err != nil {
		return nil
	}
	return &auth.Identity{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Role:     u.Role,
	}
}
