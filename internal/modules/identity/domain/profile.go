package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleAnonymous     Role = "anonymous"
	RoleMember        Role = "member"
	RoleArtist        Role = "artist"
	RoleAdministrator Role = "administrator"
)

// Group names carried in the identity provider's token claims.
const (
	GroupArtist        = "artist"
	GroupAdministrator = "administrator"
)

// Profile is the in-system identity record, linked 1:1 to an external account.
// The account link is immutable; only the display name may change.
type Profile struct {
	ID          uuid.UUID `json:"id" db:"id"`
	AccountID   string    `json:"account_id" db:"account_id"`
	DisplayName string    `json:"display_name" db:"display_name"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// Session is the authenticated caller as asserted by the external identity
// provider's token. A nil *Session means an unauthenticated request.
type Session struct {
	AccountID string
	Admin     bool
	Groups    []string
}

// HasGroup reports whether the session's account belongs to the named group.
func (s *Session) HasGroup(name string) bool {
	for _, g := range s.Groups {
		if g == name {
			return true
		}
	}
	return false
}

// ResolveRole classifies a session into a role. The admin flag (or membership
// in the administrator group) wins over artist membership.
func ResolveRole(sess *Session) Role {
	if sess == nil {
		return RoleAnonymous
	}
	if sess.Admin || sess.HasGroup(GroupAdministrator) {
		return RoleAdministrator
	}
	if sess.HasGroup(GroupArtist) {
		return RoleArtist
	}
	return RoleMember
}

// Identity is the resolved caller: a role plus at most one profile. A profile
// lookup failure for an authenticated account degrades to Profile == nil while
// keeping the resolved role; the policy then treats the caller as owning
// nothing.
type Identity struct {
	Profile *Profile
	Role    Role
}

// Resolver turns a session into an Identity.
type Resolver interface {
	Resolve(ctx context.Context, sess *Session) (Identity, error)
}

type ProfileRepository interface {
	Create(ctx context.Context, profile *Profile) error
	GetByID(ctx context.Context, id uuid.UUID) (*Profile, error)
	GetByAccountID(ctx context.Context, accountID string) (*Profile, error)
	UpdateDisplayName(ctx context.Context, id uuid.UUID, displayName string) error
}
