package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/authsystem/authd/internal/auth/domain"
	"github.com/authsystem/authd/internal/auth/store"
	"github.com/authsystem/authd/pkg/cryptox"
	"github.com/authsystem/authd/pkg/idx"
	"github.com/authsystem/authd/pkg/jwtx"
	"github.com/authsystem/authd/pkg/slogx"
)

var (
	// ErrDuplicateEmail is a client error: the email is already registered.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrStoreUnavailable is a transient infrastructure failure, distinct
	// from ErrDuplicateEmail so callers can tell client error from outage.
	ErrStoreUnavailable = errors.New("user store unavailable")

	// ErrInvalidCredentials is deliberately generic: an unknown email and a
	// wrong password are indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// LoginResult is what a successful login returns to the transport layer.
type LoginResult struct {
	Token    string
	Username string
	Email    string
}

// AuthService orchestrates registration and login. It owns no state beyond
// its collaborators, so concurrent invocations only share the store and the
// signer's secret.
type AuthService struct {
	Store    store.Store
	Signer   jwtx.Signer
	Issuer   string
	TokenTTL time.Duration
	Notify   *NotifyDispatcher
}

// Register creates a new account. The write path runs on a context detached
// from request cancellation: once started, registration either fully happens
// or fully doesn't, regardless of the caller's connection. The welcome
// notification is enqueued after persistence and never blocks the result.
func (s *AuthService) Register(
	ctx context.Context,
	username, email, password, phoneNumber string,
) (domain.User, error) {
	log := slogx.FromContext(ctx)
	email = NormalizeEmail(email)

	// 1. Reject known duplicates up front for a friendly fast path. The
	// authoritative check is the unique constraint at insert time.
	exists, err := s.Store.Users().ExistsByEmail(ctx, email)
	if err != nil {
		log.Error("failed to check email availability", slog.Any("error", err))
		return domain.User{}, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	if exists {
		return domain.User{}, ErrDuplicateEmail
	}

	// 2. Hash the password. The plaintext is never persisted.
	passwordHash, err := cryptox.HashPassword(password)
	if err != nil {
		log.Error("failed to hash password", slog.Any("error", err))
		return domain.User{}, err
	}

	user := domain.User{
		ID:           idx.New().String(),
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		PhoneNumber:  phoneNumber,
		CreatedAt:    time.Now().UTC(),
	}

	// 3. Persist. Detached from ctx so a dropped connection cannot cancel a
	// write mid-flight.
	if err := s.Store.Users().CreateUser(context.WithoutCancel(ctx), user); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			// Lost the check-then-insert race to a concurrent registration.
			return domain.User{}, ErrDuplicateEmail
		}
		log.Error("failed to create user", slog.Any("error", err))
		return domain.User{}, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	// 4. Fire-and-forget welcome notification.
	s.Notify.Enqueue(user.Email, user.Username)

	log.Info("user registered",
		slog.String("user_id", user.ID),
		slog.String("username", user.Username),
	)

	return user, nil
}

// Login verifies the credential and issues an identity token bound to the
// user's email. Both "unknown email" and "wrong password" collapse into
// ErrInvalidCredentials so responses cannot be used for enumeration.
func (s *AuthService) Login(ctx context.Context, email, password string) (LoginResult, error) {
	log := slogx.FromContext(ctx)
	email = NormalizeEmail(email)

	user, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return LoginResult{}, ErrInvalidCredentials
		}
		log.Error("failed to fetch user", slog.Any("error", err))
		return LoginResult{}, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		return LoginResult{}, ErrInvalidCredentials
	}

	ttl := s.TokenTTL
	if ttl <= 0 {
		ttl = jwtx.DefaultTokenTTL
	}

	claims := jwtx.NewIdentityClaims(user.Email, user.Username, s.Issuer, ttl, time.Now().UTC())
	token, err := s.Signer.Sign(claims)
	if err != nil {
		log.Error("failed to sign token", slog.Any("error", err))
		return LoginResult{}, err
	}

	log.Info("user logged in", slog.String("user_id", user.ID))

	return LoginResult{
		Token:    token,
		Username: user.Username,
		Email:    user.Email,
	}, nil
}

// NormalizeEmail lowercases and trims an email address. Uniqueness and
// lookups are case-insensitive by policy; the store only ever sees the
// normalized form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
