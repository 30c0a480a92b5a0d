// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// User is a single account, whatever way its owner signs in.
// Users are never mutated after creation.
type User struct {
	ID        uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Username  string    // Globally unique, regardless of account origin.
	Email     string    // Optional contact email.
	Identity  Identity  // How the account authenticates: a local password or an external provider.
	CreatedAt time.Time // Timestamp of when this user account was created.
}

// Identity is the origin of an account. It is either *LocalIdentity or *OAuthIdentity.
type Identity interface {
	isIdentity()
}

// LocalIdentity is an account registered with a username and password.
type LocalIdentity struct {
	PasswordHash string // bcrypt hash of the password.
}

// OAuthIdentity is an account created by an external provider callback.
type OAuthIdentity struct {
	Provider   ProviderType // The provider that vouches for the account.
	ExternalID string       // Provider-scoped user id.
}

func (*LocalIdentity) isIdentity() {}
func (*OAuthIdentity) isIdentity() {}

// PasswordHash returns the stored hash for local accounts.
func (u *User) PasswordHash() (string, bool) {
	local, ok := u.Identity.(*LocalIdentity)
	if !ok || local.PasswordHash == "" {
		return "", false
	}

	return local.PasswordHash, true
}

// OAuth returns the provider identity for federated accounts.
func (u *User) OAuth() (*OAuthIdentity, bool) {
	oauth, ok := u.Identity.(*OAuthIdentity)

	return oauth, ok
}

// SyntheticUsername is the username used when a provider supplies none, or when the
// supplied one already belongs to another account.
func SyntheticUsername(provider ProviderType, externalID string) string {
	return fmt.Sprintf("%s_user_%s", provider, externalID)
}
