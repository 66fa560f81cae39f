package usecase

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"regexp"
	"strconv"
	"time"

	"dreamjournal/internal/feature/verification/domain/entity"
	"dreamjournal/internal/shared/apperr"
)

const (
	// CodeTTL is how long an issued code remains redeemable.
	CodeTTL = 10 * time.Minute

	// codeMin and codeMax bound the uniform 6-digit draw. The lower bound
	// excludes leading zeros so every code prints as exactly six digits.
	codeMin = 100000
	codeMax = 999999
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	codePattern  = regexp.MustCompile(`^\d{6}$`)
)

// VerificationRepository abstracts the persistence layer for verification
// records. Following Go convention the interface is defined by the consumer.
type VerificationRepository interface {
	// DeleteByEmail removes every record for the address.
	DeleteByEmail(ctx context.Context, email string) error

	// Create persists a new record.
	Create(ctx context.Context, v *entity.EmailVerification) error

	// FindByEmailAndCode retrieves the record exactly matching the pair.
	// Returns ErrCodeNotFound when none exists.
	FindByEmailAndCode(ctx context.Context, email, code string) (*entity.EmailVerification, error)

	// MarkVerified flips the record's verified flag.
	MarkVerified(ctx context.Context, id uint) error
}

// UserDirectory is the slice of the user store the verification flow needs.
type UserDirectory interface {
	// EmailVerifiedAt returns the account ID for the address and the instant
	// its email was verified, nil when unverified.
	// Returns ErrUserNotFound when no account exists.
	EmailVerifiedAt(ctx context.Context, email string) (uint, *time.Time, error)

	// SetEmailVerified stamps the account's email verification time.
	SetEmailVerified(ctx context.Context, userID uint, at time.Time) error
}

// Mailer dispatches a verification code to an address. Implementations live
// in the adapters/mailer package.
type Mailer interface {
	SendVerificationCode(ctx context.Context, to, code string) error
}

// RedeemResult reports the outcome of a successful redemption.
type RedeemResult struct {
	AlreadyVerified bool
}

// verificationUsecase implements the verification code lifecycle.
type verificationUsecase struct {
	codes  VerificationRepository
	users  UserDirectory
	mailer Mailer
	now    func() time.Time
}

// NewVerificationUsecase creates a new verificationUsecase instance.
func NewVerificationUsecase(codes VerificationRepository, users UserDirectory, mailer Mailer) *verificationUsecase {
	return &verificationUsecase{
		codes:  codes,
		users:  users,
		mailer: mailer,
		now:    time.Now,
	}
}

// generateCode draws a uniformly random 6-digit code.
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(codeMax-codeMin+1))
	if err != nil {
		return "", fmt.Errorf("failed to generate verification code: %w", err)
	}
	return strconv.FormatInt(codeMin+n.Int64(), 10), nil
}

// IssueCode generates a fresh code for the address, supersedes every prior
// record for it, stores the new one with a 10-minute expiry and dispatches
// it by mail. A transport failure surfaces as ErrMailDelivery; the stored
// record remains so the state is consistent when the caller retries.
func (u *verificationUsecase) IssueCode(ctx context.Context, email string) error {
	if !emailPattern.MatchString(email) {
		return apperr.NewValidation("Invalid email format")
	}

	code, err := generateCode()
	if err != nil {
		return err
	}

	// Supersede first: at most one live code per address.
	if err := u.codes.DeleteByEmail(ctx, email); err != nil {
		return fmt.Errorf("failed to supersede verification codes: %w", err)
	}
	record := &entity.EmailVerification{
		Email:     email,
		Code:      code,
		ExpiresAt: u.now().Add(CodeTTL),
		Verified:  false,
	}
	if err := u.codes.Create(ctx, record); err != nil {
		return fmt.Errorf("failed to store verification code: %w", err)
	}

	if err := u.mailer.SendVerificationCode(ctx, email, code); err != nil {
		return fmt.Errorf("%w: %v", ErrMailDelivery, err)
	}
	return nil
}

// RedeemCode consumes a code for the address. Redemption is idempotent: an
// already-verified account short-circuits to success so duplicate
// submissions and racing tabs never error.
func (u *verificationUsecase) RedeemCode(ctx context.Context, email, code string) (*RedeemResult, error) {
	if !emailPattern.MatchString(email) {
		return nil, apperr.NewValidation("Invalid email format")
	}
	if !codePattern.MatchString(code) {
		return nil, apperr.NewValidation("Invalid verification code format")
	}

	record, err := u.codes.FindByEmailAndCode(ctx, email, code)
	if err != nil {
		return nil, err
	}
	if record.Expired(u.now()) {
		return nil, apperr.NewValidation("Verification code has expired")
	}

	userID, verifiedAt, err := u.users.EmailVerifiedAt(ctx, email)
	if err != nil {
		return nil, err
	}
	if verifiedAt != nil {
		return &RedeemResult{AlreadyVerified: true}, nil
	}

	// A consumed record with an unstamped user means the previous
	// redemption stopped between the two writes; finish the stamp.
	if record.Verified {
		if err := u.users.SetEmailVerified(ctx, userID, u.now()); err != nil {
			return nil, err
		}
		return &RedeemResult{AlreadyVerified: true}, nil
	}

	if err := u.codes.MarkVerified(ctx, record.ID); err != nil {
		return nil, err
	}
	if err := u.users.SetEmailVerified(ctx, userID, u.now()); err != nil {
		return nil, err
	}
	return &RedeemResult{AlreadyVerified: false}, nil
}

// IsVerified reports whether an account with the address exists and has a
// verified email. Malformed addresses and unknown accounts report false
// without error.
func (u *verificationUsecase) IsVerified(ctx context.Context, email string) (bool, error) {
	if !emailPattern.MatchString(email) {
		return false, nil
	}
	_, verifiedAt, err := u.users.EmailVerifiedAt(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return false, nil
		}
		return false, err
	}
	return verifiedAt != nil, nil
}
