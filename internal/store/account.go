package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/parlolabs/parlo/ent"
	entaccount "github.com/parlolabs/parlo/ent/account"
)

var (
	// ErrAccountExists is returned when registering a taken username.
	ErrAccountExists = errors.New("store: account already exists")

	// ErrBadCredentials is returned when login fails. The caller cannot tell
	// a missing account from a wrong password.
	ErrBadCredentials = errors.New("store: invalid username or password")
)

// AccountRepo manages local login accounts and the active-account pointer.
type AccountRepo interface {
	// Register creates a new account. Usernames are case-insensitive.
	Register(ctx context.Context, username, password string) error

	// Authenticate checks a username/password pair.
	Authenticate(ctx context.Context, username, password string) error

	// SetActive records which account is signed in across restarts.
	SetActive(ctx context.Context, username string) error

	// Active returns the signed-in username, or "" if nobody is.
	Active(ctx context.Context) (string, error)

	// ClearActive signs the current account out.
	ClearActive(ctx context.Context) error
}

type accountRepo struct {
	client *ent.Client
}

func (r *accountRepo) Register(ctx context.Context, username, password string) error {
	username = normalizeUsername(username)
	if username == "" {
		return errors.New("store: empty username")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	_, err = r.client.Account.Create().
		SetUsername(username).
		SetPasswordHash(string(hash)).
		Save(ctx)
	if ent.IsConstraintError(err) {
		return ErrAccountExists
	}
	if err != nil {
		return fmt.Errorf("register account: %w", err)
	}
	return nil
}

func (r *accountRepo) Authenticate(ctx context.Context, username, password string) error {
	a, err := r.client.Account.Query().
		Where(entaccount.Username(normalizeUsername(username))).
		Only(ctx)
	if ent.IsNotFound(err) {
		return ErrBadCredentials
	}
	if err != nil {
		return fmt.Errorf("query account: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password)) != nil {
		return ErrBadCredentials
	}
	return nil
}

// SetActive replaces the pointer row wholesale; there is at most one.
func (r *accountRepo) SetActive(ctx context.Context, username string) error {
	if _, err := r.client.ActiveAccount.Delete().Exec(ctx); err != nil {
		return fmt.Errorf("clear active account: %w", err)
	}
	_, err := r.client.ActiveAccount.Create().
		SetUsername(normalizeUsername(username)).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("set active account: %w", err)
	}
	return nil
}

func (r *accountRepo) Active(ctx context.Context) (string, error) {
	p, err := r.client.ActiveAccount.Query().First(ctx)
	if ent.IsNotFound(err) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("query active account: %w", err)
	}
	return p.Username, nil
}

func (r *accountRepo) ClearActive(ctx context.Context) error {
	if _, err := r.client.ActiveAccount.Delete().Exec(ctx); err != nil {
		return fmt.Errorf("clear active account: %w", err)
	}
	return nil
}

func normalizeUsername(u string) string {
	return strings.ToLower(strings.TrimSpace(u))
}
