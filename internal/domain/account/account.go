// Package account defines the account aggregate: identity, credentials and role.
package account

import (
	"fmt"
	"net/mail"
	"strings"
	"time"
)

// Account is the aggregate root for a platform user (pure domain model
// without persistence concerns).
type Account struct {
	id           uint
	uuid         string
	username     string
	email        string
	passwordHash string
	role         Role
	createdAt    time.Time
	updatedAt    time.Time
}

// PasswordHasher hashes and verifies passwords. Implemented by the
// infrastructure bcrypt hasher.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}

// NewAccount creates a new account aggregate with initial values.
// The password hash must already be computed by the caller.
func NewAccount(username, email, passwordHash string, role Role) (*Account, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, fmt.Errorf("username is required")
	}
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("password hash is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %q", role)
	}

	now := time.Now().UTC()
	return &Account{
		username:     username,
		email:        strings.ToLower(email),
		passwordHash: passwordHash,
		role:         role,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// Reconstruct rebuilds an account from persistence.
func Reconstruct(id uint, uuid, username, email, passwordHash string, role Role, createdAt, updatedAt time.Time) (*Account, error) {
	if id == 0 {
		return nil, fmt.Errorf("account ID cannot be zero")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %q", role)
	}
	return &Account{
		id:           id,
		uuid:         uuid,
		username:     username,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (a *Account) ID() uint             { return a.id }
func (a *Account) UUID() string         { return a.uuid }
func (a *Account) Username() string     { return a.username }
func (a *Account) Email() string        { return a.email }
func (a *Account) PasswordHash() string { return a.passwordHash }
func (a *Account) Role() Role           { return a.role }
func (a *Account) CreatedAt() time.Time { return a.createdAt }
func (a *Account) UpdatedAt() time.Time { return a.updatedAt }

// SetID sets the account ID (only for persistence layer use).
func (a *Account) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("account ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("account ID cannot be zero")
	}
	a.id = id
	return nil
}

// SetUUID sets the public identifier (only for persistence layer use).
func (a *Account) SetUUID(uuid string) {
	if a.uuid == "" {
		a.uuid = uuid
	}
}

// Rename changes the username.
func (a *Account) Rename(username string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return fmt.Errorf("username is required")
	}
	a.username = username
	a.updatedAt = time.Now().UTC()
	return nil
}

// ChangeEmail changes the email address.
func (a *Account) ChangeEmail(email string) error {
	if err := validateEmail(email); err != nil {
		return err
	}
	a.email = strings.ToLower(email)
	a.updatedAt = time.Now().UTC()
	return nil
}

// ChangePassword replaces the stored password hash.
func (a *Account) ChangePassword(password string, hasher PasswordHasher) error {
	if err := ValidatePassword(password); err != nil {
		return err
	}
	hash, err := hasher.Hash(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	a.passwordHash = hash
	a.updatedAt = time.Now().UTC()
	return nil
}

// ChangeRole changes the account role. Role changes are admin-only; the
// access check lives in the use case, not here.
func (a *Account) ChangeRole(role Role) error {
	if !role.IsValid() {
		return fmt.Errorf("invalid role: %q", role)
	}
	a.role = role
	a.updatedAt = time.Now().UTC()
	return nil
}

// VerifyPassword checks the given password against the stored hash.
func (a *Account) VerifyPassword(password string, hasher PasswordHasher) error {
	return hasher.Verify(password, a.passwordHash)
}

// ValidatePassword applies the minimal password policy.
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return fmt.Errorf("password must be at least 8 characters")
	}
	return nil
}

func validateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("email is required")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return fmt.Errorf("invalid email address: %q", email)
	}
	return nil
}
