package usecase

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"dreamjournal/internal/feature/auth/domain/entity"
)

const (
	// minPasswordLength is the minimum accepted password length.
	minPasswordLength = 8
)

// UserRepository abstracts the persistence layer for user entities.
// Following Go convention the interface is defined by the consumer (usecase),
// not the provider (adapters).
type UserRepository interface {
	// Create persists a new user.
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail retrieves the first user matching the email address.
	// Returns ErrUserNotFound when no user exists.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID retrieves a user by ID.
	// Returns ErrUserNotFound when no user exists.
	FindByID(ctx context.Context, id uint) (*entity.User, error)

	// FindOthersByEmail retrieves every user sharing the email address other
	// than the excluded one.
	FindOthersByEmail(ctx context.Context, email string, excludeID uint) ([]*entity.User, error)

	// Delete removes a user by ID.
	Delete(ctx context.Context, id uint) error
}

// JWTGenerator abstracts signed token generation.
type JWTGenerator interface {
	// GenerateToken creates a signed JWT token for the given user.
	GenerateToken(userID uint, email string) (string, error)
}

// authUsecase implements the authentication business logic and the
// verified-caller gate consumed by other features.
type authUsecase struct {
	users        UserRepository
	jwtGenerator JWTGenerator
}

// NewAuthUsecase creates a new authUsecase instance.
func NewAuthUsecase(users UserRepository, jwtGenerator JWTGenerator) *authUsecase {
	return &authUsecase{
		users:        users,
		jwtGenerator: jwtGenerator,
	}
}

// validatePassword checks the password against the security requirements.
func validatePassword(password string) error {
	if len(password) < minPasswordLength {
		return fmt.Errorf("password must be at least %d characters long", minPasswordLength)
	}
	return nil
}

// Signup registers a new password account with a hashed password.
// The address starts unverified; entry creation stays blocked until a
// verification code is redeemed for it.
func (u *authUsecase) Signup(ctx context.Context, email, password string) error {
	if err := validatePassword(password); err != nil {
		return err
	}

	// Email is not unique across providers, but a second password account
	// for the same address is a duplicate.
	if existing, err := u.users.FindByEmail(ctx, email); err == nil && existing.Provider == entity.ProviderPassword {
		return ErrEmailAlreadyExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user := &entity.User{Email: email, Password: string(hashed), Provider: entity.ProviderPassword}
	return u.users.Create(ctx, user)
}

// Login authenticates a user and returns a signed JWT on success.
// A bcrypt comparison runs even when the user does not exist so response
// timing does not reveal which addresses are registered.
func (u *authUsecase) Login(ctx context.Context, email, password string) (string, error) {
	user, err := u.users.FindByEmail(ctx, email)

	// Dummy hash keeps bcrypt.CompareHashAndPassword on the path for
	// unknown addresses.
	passwordHash := "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"
	if err == nil {
		passwordHash = user.Password
	}

	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))

	if err != nil || compareErr != nil {
		return "", ErrInvalidCredentials
	}

	token, tokenErr := u.jwtGenerator.GenerateToken(user.ID, user.Email)
	if tokenErr != nil {
		return "", fmt.Errorf("failed to generate token: %w", tokenErr)
	}

	return token, nil
}

// CurrentUser resolves the caller's account record.
func (u *authUsecase) CurrentUser(ctx context.Context, userID uint) (*entity.User, error) {
	return u.users.FindByID(ctx, userID)
}

// RequireVerified is the verified-caller gate. It fails with
// ErrEmailNotVerified for accounts that have an email address but no
// verification time; accounts without an email always pass.
func (u *authUsecase) RequireVerified(ctx context.Context, userID uint) error {
	user, err := u.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	if !user.Verified() {
		return ErrEmailNotVerified
	}
	return nil
}
