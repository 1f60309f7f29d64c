package services

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/wipetrack/erasure-api/internal/logger"
	"github.com/wipetrack/erasure-api/internal/models"
)

var (
	// ErrInvalidResetCode is returned when no active request matches the
	// presented code or token.
	ErrInvalidResetCode = errors.New("invalid or expired reset code")
	// ErrTooManyResetRequests is returned when an email already has the
	// maximum number of active reset requests.
	ErrTooManyResetRequests = errors.New("too many active reset requests")
)

const (
	resetRequestTTL       = 30 * time.Minute
	maxActiveResetPerMail = 3
)

// ForgotPasswordReader reads active password-reset requests. Implementations
// filter out used and expired rows on every read.
type ForgotPasswordReader interface {
	GetActiveByEmail(ctx context.Context, email string) (*models.ForgotPasswordRequestDB, error)
	GetActiveByToken(ctx context.Context, token string) (*models.ForgotPasswordRequestDB, error)
	GetActiveByEmailAndCode(ctx context.Context, email, code string) (*models.ForgotPasswordRequestDB, error)
	CountActiveByEmail(ctx context.Context, email string) (int64, error)
}

// ForgotPasswordWriter mutates password-reset requests.
type ForgotPasswordWriter interface {
	Save(ctx context.Context, email, otpCode, resetToken string, expiresAt time.Time) (int64, error)
	MarkUsed(ctx context.Context, requestID int64) error
	DeleteExpiredOrUsed(ctx context.Context) (int64, error)
}

// PasswordUpdater replaces a primary account's password hash.
type PasswordUpdater interface {
	UpdatePassword(ctx context.Context, email, passwordHash string) error
}

// ForgotPasswordService manages the password-reset lifecycle: initiation,
// confirmation, and the periodic sweep of dead rows. Only primary accounts
// reset passwords here; subuser credentials are managed by the parent.
type ForgotPasswordService struct {
	users       UserReader
	reader      ForgotPasswordReader
	writer      ForgotPasswordWriter
	updater     PasswordUpdater
	invalidator ContextInvalidator
	audit       AuditPublisher
}

// NewForgotPasswordService creates a ForgotPasswordService.
func NewForgotPasswordService(
	users UserReader,
	reader ForgotPasswordReader,
	writer ForgotPasswordWriter,
	updater PasswordUpdater,
	invalidator ContextInvalidator,
	audit AuditPublisher,
) *ForgotPasswordService {
	return &ForgotPasswordService{
		users:       users,
		reader:      reader,
		writer:      writer,
		updater:     updater,
		invalidator: invalidator,
		audit:       audit,
	}
}

// Initiate creates a reset request for an existing primary account and
// returns its reset token. The one-time code is delivered out of band.
func (s *ForgotPasswordService) Initiate(ctx context.Context, email string) (string, error) {
	email = NormalizeEmail(email)

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to look up account for reset", "email", email, "err", err)
		return "", err
	}
	if user == nil {
		return "", ErrUserDoesNotExist
	}

	count, err := s.reader.CountActiveByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if count >= maxActiveResetPerMail {
		return "", ErrTooManyResetRequests
	}

	code, err := generateOTPCode()
	if err != nil {
		return "", err
	}
	token := uuid.NewString()
	expiresAt := time.Now().Add(resetRequestTTL)

	requestID, err := s.writer.Save(ctx, email, code, token, expiresAt)
	if err != nil {
		logger.Log.Errorw("failed to save reset request", "email", email, "err", err)
		return "", err
	}

	// Mail delivery lives outside this service.
	logger.Log.Infow("password reset initiated", "email", email, "request_id", requestID)

	if s.audit != nil {
		s.audit.Publish(ctx, models.AuditPasswordResetRequested, email, "")
	}
	return token, nil
}

// Reset confirms a reset using the (email, one-time code) pair, replaces the
// password, consumes the request, and invalidates the cached user context.
func (s *ForgotPasswordService) Reset(ctx context.Context, email, code, newPassword string) error {
	email = NormalizeEmail(email)

	req, err := s.reader.GetActiveByEmailAndCode(ctx, email, code)
	if err != nil {
		return err
	}
	if req == nil {
		return ErrInvalidResetCode
	}
	return s.complete(ctx, req, newPassword)
}

// ResetByToken is the reset-link variant of Reset.
func (s *ForgotPasswordService) ResetByToken(ctx context.Context, token, newPassword string) error {
	req, err := s.reader.GetActiveByToken(ctx, token)
	if err != nil {
		return err
	}
	if req == nil {
		return ErrInvalidResetCode
	}
	return s.complete(ctx, req, newPassword)
}

func (s *ForgotPasswordService) complete(ctx context.Context, req *models.ForgotPasswordRequestDB, newPassword string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return err
	}

	if err := s.updater.UpdatePassword(ctx, req.Email, string(hashed)); err != nil {
		logger.Log.Errorw("failed to update password", "email", req.Email, "err", err)
		return err
	}
	if err := s.writer.MarkUsed(ctx, req.RequestID); err != nil {
		logger.Log.Errorw("failed to mark reset request used", "request_id", req.RequestID, "err", err)
		return err
	}
	if err := s.invalidator.Invalidate(ctx, req.Email); err != nil {
		logger.Log.Errorw("failed to invalidate user context", "email", req.Email, "err", err)
	}

	if s.audit != nil {
		s.audit.Publish(ctx, models.AuditPasswordResetCompleted, req.Email, "")
	}
	return nil
}

// Sweep bulk deletes expired or used reset rows and returns how many were
// removed.
func (s *ForgotPasswordService) Sweep(ctx context.Context) (int64, error) {
	deleted, err := s.writer.DeleteExpiredOrUsed(ctx)
	if err != nil {
		logger.Log.Errorw("reset request sweep failed", "err", err)
		return 0, err
	}
	if deleted > 0 {
		logger.Log.Infow("reset request sweep completed", "deleted", deleted)
	}
	return deleted, nil
}

// generateOTPCode produces a zero-padded 6-digit one-time code.
func generateOTPCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
