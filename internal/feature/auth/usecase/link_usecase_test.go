package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"dreamjournal/internal/feature/auth/domain/entity"
)

// mockEntryTransfer is an EntryTransfer mock for tests.
type mockEntryTransfer struct {
	transferFn func(ctx context.Context, fromUserID, toUserID uint) (int64, error)
}

func (m *mockEntryTransfer) TransferOwnership(ctx context.Context, fromUserID, toUserID uint) (int64, error) {
	if m.transferFn != nil {
		return m.transferFn(ctx, fromUserID, toUserID)
	}
	return 0, nil
}

// TestLinkAccounts verifies verified duplicates are absorbed with their
// entries while unverified ones are left alone.
func TestLinkAccounts(t *testing.T) {
	t.Parallel()

	verifiedAt := time.Now()
	caller := &entity.User{ID: 1, Email: "dreamer@example.com", EmailVerificationTime: &verifiedAt}
	verifiedOther := &entity.User{ID: 2, Email: "dreamer@example.com", EmailVerificationTime: &verifiedAt}
	unverifiedOther := &entity.User{ID: 3, Email: "dreamer@example.com"}

	var deleted []uint
	repo := &mockUserRepository{
		findByIDFn: func(ctx context.Context, id uint) (*entity.User, error) {
			return caller, nil
		},
		findOthersByEmailFn: func(ctx context.Context, email string, excludeID uint) ([]*entity.User, error) {
			return []*entity.User{verifiedOther, unverifiedOther}, nil
		},
		deleteFn: func(ctx context.Context, id uint) error {
			deleted = append(deleted, id)
			return nil
		},
	}
	var transferredFrom []uint
	entries := &mockEntryTransfer{
		transferFn: func(ctx context.Context, fromUserID, toUserID uint) (int64, error) {
			transferredFrom = append(transferredFrom, fromUserID)
			if toUserID != caller.ID {
				t.Errorf("expected transfer to caller %d, got %d", caller.ID, toUserID)
			}
			return 4, nil
		},
	}
	uc := NewLinkUsecase(repo, entries)

	result, err := uc.LinkAccounts(context.Background(), caller.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Linked {
		t.Error("expected linked result")
	}
	if result.TransferredEntries != 4 {
		t.Errorf("expected 4 transferred entries, got %d", result.TransferredEntries)
	}
	if result.Message != "Successfully linked 1 account(s)" {
		t.Errorf("unexpected message %q", result.Message)
	}
	if len(transferredFrom) != 1 || transferredFrom[0] != verifiedOther.ID {
		t.Errorf("expected transfer only from verified duplicate, got %v", transferredFrom)
	}
	if len(deleted) != 1 || deleted[0] != verifiedOther.ID {
		t.Errorf("expected only verified duplicate deleted, got %v", deleted)
	}
}

// TestLinkAccounts_NoCandidates verifies the no-op outcome.
func TestLinkAccounts_NoCandidates(t *testing.T) {
	t.Parallel()

	verifiedAt := time.Now()
	repo := &mockUserRepository{
		findByIDFn: func(ctx context.Context, id uint) (*entity.User, error) {
			return &entity.User{ID: 1, Email: "dreamer@example.com", EmailVerificationTime: &verifiedAt}, nil
		},
	}
	uc := NewLinkUsecase(repo, &mockEntryTransfer{})

	result, err := uc.LinkAccounts(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Linked {
		t.Error("expected no link")
	}
	if result.Message != "No other verified accounts found with this email" {
		t.Errorf("unexpected message %q", result.Message)
	}
}

// TestLinkAccounts_Preconditions verifies the caller needs a verified email.
func TestLinkAccounts_Preconditions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		caller  *entity.User
		wantErr error
	}{
		{"no email", &entity.User{ID: 1, Provider: entity.ProviderAnonymous}, ErrNoEmail},
		{"unverified email", &entity.User{ID: 1, Email: "dreamer@example.com"}, ErrEmailNotVerified},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			repo := &mockUserRepository{
				findByIDFn: func(ctx context.Context, id uint) (*entity.User, error) {
					return tt.caller, nil
				},
			}
			uc := NewLinkUsecase(repo, &mockEntryTransfer{})

			if _, err := uc.LinkAccounts(context.Background(), 1); !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

// TestCheckLinkable verifies the candidate summary.
func TestCheckLinkable(t *testing.T) {
	t.Parallel()

	verifiedAt := time.Now()

	tests := []struct {
		name   string
		caller *entity.User
		others []*entity.User
		want   LinkableAccounts
	}{
		{
			name:   "verified caller with both kinds of duplicates",
			caller: &entity.User{ID: 1, Email: "d@example.com", EmailVerificationTime: &verifiedAt},
			others: []*entity.User{
				{ID: 2, EmailVerificationTime: &verifiedAt},
				{ID: 3},
			},
			want: LinkableAccounts{CurrentUserVerified: true, LinkableAccounts: 1, UnverifiedAccounts: 1, CanLink: true},
		},
		{
			name:   "unverified caller cannot link",
			caller: &entity.User{ID: 1, Email: "d@example.com"},
			others: []*entity.User{{ID: 2, EmailVerificationTime: &verifiedAt}},
			want:   LinkableAccounts{LinkableAccounts: 1},
		},
		{
			name:   "caller without email",
			caller: &entity.User{ID: 1},
			want:   LinkableAccounts{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			repo := &mockUserRepository{
				findByIDFn: func(ctx context.Context, id uint) (*entity.User, error) {
					return tt.caller, nil
				},
				findOthersByEmailFn: func(ctx context.Context, email string, excludeID uint) ([]*entity.User, error) {
					return tt.others, nil
				},
			}
			uc := NewLinkUsecase(repo, &mockEntryTransfer{})

			got, err := uc.CheckLinkable(context.Background(), 1)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if *got != tt.want {
				t.Errorf("expected %+v, got %+v", tt.want, *got)
			}
		})
	}
}
