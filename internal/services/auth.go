package services

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/wipetrack/erasure-api/internal/logger"
	"github.com/wipetrack/erasure-api/internal/models"
)

// Error variables
var (
	ErrUserAlreadyExists  = errors.New("email already registered")
	ErrUserDoesNotExist   = errors.New("account does not exist")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// UserWriter defines write operations for primary accounts.
type UserWriter interface {
	Save(ctx context.Context, email, name, passwordHash string) error
}

// TokenGenerator issues signed tokens for an authenticated principal.
type TokenGenerator interface {
	Generate(ctx context.Context, email, userType string) (string, error)
}

// AuditPublisher publishes account mutation events.
type AuditPublisher interface {
	Publish(ctx context.Context, eventType, email, detail string)
}

// ContextInvalidator clears cached identity state for an email.
type ContextInvalidator interface {
	Invalidate(ctx context.Context, email string) error
}

// AuthService handles registration and login for primary accounts and
// subusers.
type AuthService struct {
	users       UserReader
	subusers    SubuserReader
	writer      UserWriter
	jwt         TokenGenerator
	invalidator ContextInvalidator
	audit       AuditPublisher
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(users UserReader, subusers SubuserReader, writer UserWriter, jwt TokenGenerator, invalidator ContextInvalidator, audit AuditPublisher) *AuthService {
	return &AuthService{
		users:       users,
		subusers:    subusers,
		writer:      writer,
		jwt:         jwt,
		invalidator: invalidator,
		audit:       audit,
	}
}

// Register creates a new primary account. The email must match neither an
// existing account nor a sub-account.
func (svc *AuthService) Register(ctx context.Context, email, name, password string) error {
	email = NormalizeEmail(email)

	user, err := svc.users.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return err
	}
	if user != nil {
		return ErrUserAlreadyExists
	}

	exists, err := svc.subusers.ExistsByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to check subuser exists", "err", err)
		return err
	}
	if exists {
		return ErrUserAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return err
	}

	if err := svc.writer.Save(ctx, email, name, string(hashedPassword)); err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return err
	}

	// Membership changed; a cached "not found" for this email is now stale.
	if err := svc.invalidator.Invalidate(ctx, email); err != nil {
		logger.Log.Errorw("failed to invalidate user context", "email", email, "err", err)
	}

	if svc.audit != nil {
		svc.audit.Publish(ctx, models.AuditUserRegistered, email, "")
	}
	return nil
}

// Login authenticates a primary account or subuser and returns a signed
// token carrying the email and user type.
func (svc *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	email = NormalizeEmail(email)

	user, err := svc.users.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", err
	}
	if user != nil {
		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
			return "", ErrInvalidCredentials
		}
		return svc.jwt.Generate(ctx, email, models.UserTypePrimary)
	}

	subuser, err := svc.subusers.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get subuser", "err", err)
		return "", err
	}
	if subuser != nil {
		if err := bcrypt.CompareHashAndPassword([]byte(subuser.PasswordHash), []byte(password)); err != nil {
			return "", ErrInvalidCredentials
		}
		return svc.jwt.Generate(ctx, email, models.UserTypeSubuser)
	}

	return "", ErrUserDoesNotExist
}
