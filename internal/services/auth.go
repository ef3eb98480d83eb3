package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/sysrai/sysrai-platform/internal/logger"
	"github.com/sysrai/sysrai-platform/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// Error variables
var (
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// AuthUserReader defines read-only operations for users during auth.
type AuthUserReader interface {
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
	GetByReferralCode(ctx context.Context, code string) (*models.UserDB, error)
}

// AuthUserWriter defines write operations for users during auth.
type AuthUserWriter interface {
	Save(ctx context.Context, user *models.UserDB) error
	UpdateLastLogin(ctx context.Context, userID uuid.UUID) error
}

// CreditApplier applies signup and referral bonuses through the ledger.
type CreditApplier interface {
	Apply(ctx context.Context, userID uuid.UUID, delta float64, txType, description string, externalRef *string) (float64, error)
}

// JWTGenerator defines an interface for generating JWT tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, userID uuid.UUID) (string, error)
}

// Bonuses are the signup-time credit grants. ReferredSignup replaces Signup
// when the new user arrives with a valid referral code; Referral goes to the
// owner of that code.
type Bonuses struct {
	Signup         float64 // Credits for a plain signup
	ReferredSignup float64 // Credits for a signup with a valid referral code
	Referral       float64 // Credits paid to the referrer
}

// AuthService handles registration and login.
type AuthService struct {
	reader  AuthUserReader
	writer  AuthUserWriter
	ledger  CreditApplier
	jwt     JWTGenerator
	bonuses Bonuses
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader AuthUserReader, writer AuthUserWriter, ledger CreditApplier, jwt JWTGenerator, bonuses Bonuses) *AuthService {
	return &AuthService{
		reader:  reader,
		writer:  writer,
		ledger:  ledger,
		jwt:     jwt,
		bonuses: bonuses,
	}
}

// Register creates a user, grants the signup bonus through the ledger and
// returns a bearer token. With a valid referral code the new user gets the
// referred-signup bonus instead, and the referrer is paid the referral bonus.
func (svc *AuthService) Register(ctx context.Context, email, password, referralCode string) (token string, userID uuid.UUID, credits float64, err error) {
	existing, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to check email exists", "err", err)
		return "", uuid.Nil, 0, err
	}
	if existing != nil {
		logger.Log.Errorw("email already registered", "email", email)
		return "", uuid.Nil, 0, ErrEmailAlreadyExists
	}

	var referrer *models.UserDB
	if referralCode != "" {
		referrer, err = svc.reader.GetByReferralCode(ctx, referralCode)
		if err != nil {
			logger.Log.Errorw("failed to resolve referral code", "code", referralCode, "err", err)
			return "", uuid.Nil, 0, err
		}
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return "", uuid.Nil, 0, err
	}

	user := &models.UserDB{
		UserID:           uuid.New(),
		Email:            email,
		PasswordHash:     string(hashedPassword),
		SubscriptionTier: models.TierFree,
		ReferralCode:     newReferralCode(),
	}
	if referrer != nil {
		user.ReferredBy = &referralCode
	}
	if err := svc.writer.Save(ctx, user); err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return "", uuid.Nil, 0, err
	}

	// An unresolvable referral code falls back to the plain signup bonus.
	if referrer != nil {
		credits, err = svc.ledger.Apply(ctx, user.UserID, svc.bonuses.ReferredSignup,
			models.TxBonus, "Referred signup bonus", nil)
		if err == nil {
			_, err = svc.ledger.Apply(ctx, referrer.UserID, svc.bonuses.Referral,
				models.TxBonus, fmt.Sprintf("Referral bonus for %s", email), nil)
		}
	} else {
		credits, err = svc.ledger.Apply(ctx, user.UserID, svc.bonuses.Signup,
			models.TxBonus, "Signup bonus", nil)
	}
	if err != nil {
		logger.Log.Errorw("failed to grant signup bonus", "user_id", user.UserID, "err", err)
		return "", uuid.Nil, 0, err
	}

	token, err = svc.jwt.Generate(ctx, user.UserID)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return "", uuid.Nil, 0, err
	}

	return token, user.UserID, credits, nil
}

// Login authenticates a user and returns a JWT token with the current balance.
func (svc *AuthService) Login(ctx context.Context, email, password string) (token string, userID uuid.UUID, credits float64, err error) {
	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", uuid.Nil, 0, err
	}
	if user == nil {
		logger.Log.Errorw("login for unknown email", "email", email)
		return "", uuid.Nil, 0, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Errorw("invalid credentials", "email", email)
		return "", uuid.Nil, 0, ErrInvalidCredentials
	}

	if err := svc.writer.UpdateLastLogin(ctx, user.UserID); err != nil {
		logger.Log.Errorw("failed to stamp last login", "user_id", user.UserID, "err", err)
	}

	token, err = svc.jwt.Generate(ctx, user.UserID)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return "", uuid.Nil, 0, err
	}

	return token, user.UserID, user.Credits, nil
}

// newReferralCode returns a short shareable code.
func newReferralCode() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
}
