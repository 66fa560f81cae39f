package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"dreamjournal/internal/feature/auth/domain/entity"
)

// mockUserRepository is a UserRepository mock for tests.
type mockUserRepository struct {
	createFn            func(ctx context.Context, user *entity.User) error
	findByEmailFn       func(ctx context.Context, email string) (*entity.User, error)
	findByIDFn          func(ctx context.Context, id uint) (*entity.User, error)
	findOthersByEmailFn func(ctx context.Context, email string, excludeID uint) ([]*entity.User, error)
	deleteFn            func(ctx context.Context, id uint) error
}

func (m *mockUserRepository) Create(ctx context.Context, user *entity.User) error {
	if m.createFn != nil {
		return m.createFn(ctx, user)
	}
	return nil
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	if m.findByEmailFn != nil {
		return m.findByEmailFn(ctx, email)
	}
	return nil, ErrUserNotFound
}

func (m *mockUserRepository) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return nil, ErrUserNotFound
}

func (m *mockUserRepository) FindOthersByEmail(ctx context.Context, email string, excludeID uint) ([]*entity.User, error) {
	if m.findOthersByEmailFn != nil {
		return m.findOthersByEmailFn(ctx, email, excludeID)
	}
	return nil, nil
}

func (m *mockUserRepository) Delete(ctx context.Context, id uint) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

// mockJWTGenerator is a JWTGenerator mock for tests.
type mockJWTGenerator struct {
	token string
	err   error
}

func (m *mockJWTGenerator) GenerateToken(userID uint, email string) (string, error) {
	return m.token, m.err
}

// TestSignup verifies registration hashes the password and stores a
// password-provider account.
func TestSignup(t *testing.T) {
	t.Parallel()

	var saved *entity.User
	repo := &mockUserRepository{
		createFn: func(ctx context.Context, user *entity.User) error {
			saved = user
			return nil
		},
	}
	uc := NewAuthUsecase(repo, &mockJWTGenerator{})

	if err := uc.Signup(context.Background(), "dreamer@example.com", "password123"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved == nil {
		t.Fatal("expected user to be created")
	}
	if saved.Provider != entity.ProviderPassword {
		t.Errorf("expected password provider, got %q", saved.Provider)
	}
	if saved.EmailVerificationTime != nil {
		t.Error("new account must start unverified")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(saved.Password), []byte("password123")); err != nil {
		t.Errorf("stored password does not match: %v", err)
	}
}

// TestSignup_ShortPassword verifies the minimum length policy.
func TestSignup_ShortPassword(t *testing.T) {
	t.Parallel()

	uc := NewAuthUsecase(&mockUserRepository{}, &mockJWTGenerator{})
	if err := uc.Signup(context.Background(), "dreamer@example.com", "short"); err == nil {
		t.Fatal("expected error for short password")
	}
}

// TestSignup_DuplicatePasswordAccount verifies a second password account for
// the same address is rejected while other providers are not.
func TestSignup_DuplicatePasswordAccount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		existing *entity.User
		wantErr  error
	}{
		{
			name:     "existing password account",
			existing: &entity.User{Email: "dreamer@example.com", Provider: entity.ProviderPassword},
			wantErr:  ErrEmailAlreadyExists,
		},
		{
			name:     "existing oauth account",
			existing: &entity.User{Email: "dreamer@example.com", Provider: entity.ProviderOAuth},
			wantErr:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			repo := &mockUserRepository{
				findByEmailFn: func(ctx context.Context, email string) (*entity.User, error) {
					return tt.existing, nil
				},
			}
			uc := NewAuthUsecase(repo, &mockJWTGenerator{})

			err := uc.Signup(context.Background(), "dreamer@example.com", "password123")
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

// TestLogin verifies credential checks and token issuance.
func TestLogin(t *testing.T) {
	t.Parallel()

	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("failed to hash test password: %v", err)
	}
	user := &entity.User{ID: 7, Email: "dreamer@example.com", Password: string(hashed)}

	tests := []struct {
		name     string
		email    string
		password string
		found    bool
		wantErr  error
	}{
		{"valid credentials", "dreamer@example.com", "password123", true, nil},
		{"wrong password", "dreamer@example.com", "wrongpass1", true, ErrInvalidCredentials},
		{"unknown address", "nobody@example.com", "password123", false, ErrInvalidCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			repo := &mockUserRepository{
				findByEmailFn: func(ctx context.Context, email string) (*entity.User, error) {
					if tt.found {
						return user, nil
					}
					return nil, ErrUserNotFound
				},
			}
			uc := NewAuthUsecase(repo, &mockJWTGenerator{token: "signed-token"})

			token, err := uc.Login(context.Background(), tt.email, tt.password)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			if tt.wantErr == nil && token != "signed-token" {
				t.Errorf("expected issued token, got %q", token)
			}
		})
	}
}

// TestRequireVerified verifies the gate's decisions per account state.
func TestRequireVerified(t *testing.T) {
	t.Parallel()

	verifiedAt := time.Now()

	tests := []struct {
		name    string
		user    *entity.User
		findErr error
		wantErr error
	}{
		{
			name:    "verified account passes",
			user:    &entity.User{ID: 1, Email: "a@example.com", EmailVerificationTime: &verifiedAt},
			wantErr: nil,
		},
		{
			name:    "unverified account blocked",
			user:    &entity.User{ID: 2, Email: "b@example.com"},
			wantErr: ErrEmailNotVerified,
		},
		{
			name:    "anonymous account without email passes",
			user:    &entity.User{ID: 3, Provider: entity.ProviderAnonymous},
			wantErr: nil,
		},
		{
			name:    "unknown caller",
			findErr: ErrUserNotFound,
			wantErr: ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			repo := &mockUserRepository{
				findByIDFn: func(ctx context.Context, id uint) (*entity.User, error) {
					if tt.findErr != nil {
						return nil, tt.findErr
					}
					return tt.user, nil
				},
			}
			uc := NewAuthUsecase(repo, &mockJWTGenerator{})

			err := uc.RequireVerified(context.Background(), 1)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}
