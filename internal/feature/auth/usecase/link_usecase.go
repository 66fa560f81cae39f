package usecase

import (
	"context"
	"fmt"
)

// EntryTransfer moves journal entries between owners during account linking.
// Implemented by the dreams repository.
type EntryTransfer interface {
	// TransferOwnership reassigns every entry owned by fromUserID to
	// toUserID and returns the number of entries moved.
	TransferOwnership(ctx context.Context, fromUserID, toUserID uint) (int64, error)
}

// LinkResult reports the outcome of an account-linking attempt.
type LinkResult struct {
	Linked             bool
	Message            string
	TransferredEntries int64
}

// LinkableAccounts summarizes how many other accounts share the caller's
// email address.
type LinkableAccounts struct {
	CurrentUserVerified bool
	LinkableAccounts    int
	UnverifiedAccounts  int
	CanLink             bool
}

// linkUsecase merges accounts that share a verified email address.
type linkUsecase struct {
	users   UserRepository
	entries EntryTransfer
}

// NewLinkUsecase creates a new linkUsecase instance.
func NewLinkUsecase(users UserRepository, entries EntryTransfer) *linkUsecase {
	return &linkUsecase{users: users, entries: entries}
}

// LinkAccounts absorbs every other verified account with the caller's email
// address: their entries move to the caller, then the absorbed accounts are
// deleted. The caller must have a verified email.
func (u *linkUsecase) LinkAccounts(ctx context.Context, userID uint) (*LinkResult, error) {
	user, err := u.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.Email == "" {
		return nil, ErrNoEmail
	}
	if user.EmailVerificationTime == nil {
		return nil, ErrEmailNotVerified
	}

	others, err := u.users.FindOthersByEmail(ctx, user.Email, userID)
	if err != nil {
		return nil, err
	}

	var (
		linked      int
		transferred int64
	)
	for _, other := range others {
		if other.EmailVerificationTime == nil {
			continue
		}
		n, err := u.entries.TransferOwnership(ctx, other.ID, userID)
		if err != nil {
			return nil, fmt.Errorf("failed to transfer entries from user %d: %w", other.ID, err)
		}
		transferred += n
		if err := u.users.Delete(ctx, other.ID); err != nil {
			return nil, fmt.Errorf("failed to delete absorbed user %d: %w", other.ID, err)
		}
		linked++
	}

	if linked == 0 {
		return &LinkResult{
			Linked:  false,
			Message: "No other verified accounts found with this email",
		}, nil
	}
	return &LinkResult{
		Linked:             true,
		Message:            fmt.Sprintf("Successfully linked %d account(s)", linked),
		TransferredEntries: transferred,
	}, nil
}

// CheckLinkable counts other accounts sharing the caller's email address,
// split into verified (linkable) and unverified.
func (u *linkUsecase) CheckLinkable(ctx context.Context, userID uint) (*LinkableAccounts, error) {
	user, err := u.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.Email == "" {
		return &LinkableAccounts{}, nil
	}

	others, err := u.users.FindOthersByEmail(ctx, user.Email, userID)
	if err != nil {
		return nil, err
	}

	out := &LinkableAccounts{CurrentUserVerified: user.EmailVerificationTime != nil}
	for _, other := range others {
		if other.EmailVerificationTime != nil {
			out.LinkableAccounts++
		} else {
			out.UnverifiedAccounts++
		}
	}
	out.CanLink = out.CurrentUserVerified && out.LinkableAccounts > 0
	return out, nil
}
