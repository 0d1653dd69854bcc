package services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/sbilibin2017/habit-tracker/internal/logger"
	"github.com/sbilibin2017/habit-tracker/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// Error variables
var (
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrInvalidCredentials     = errors.New("invalid email or password")
	ErrEmailRequired          = errors.New("email is required")
	ErrNameRequired           = errors.New("name is required")
	ErrPasswordTooShort       = errors.New("password must be at least 8 characters")
)

// MinPasswordLength is the minimum accepted password length.
const MinPasswordLength = 8

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, email, name, passwordHash string) (*models.UserDB, error)
}

// TokenGenerator defines an interface for generating access tokens.
type TokenGenerator interface {
	Generate(ctx context.Context, userID uuid.UUID, email, name string) (string, error)
}

// AuthService handles registration and login.
type AuthService struct {
	reader UserReader
	writer UserWriter
	jwt    TokenGenerator
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, jwt TokenGenerator) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
		jwt:    jwt,
	}
}

// Register creates a new user and returns a signed token for it.
func (svc *AuthService) Register(ctx context.Context, email, password, name string) (string, *models.AuthUser, error) {
	email = strings.TrimSpace(email)
	name = strings.TrimSpace(name)

	if email == "" {
		return "", nil, ErrEmailRequired
	}
	if name == "" {
		return "", nil, ErrNameRequired
	}
	if len(password) < MinPasswordLength {
		return "", nil, ErrPasswordTooShort
	}

	existing, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return "", nil, err
	}
	if existing != nil {
		logger.Log.Errorw("email already registered", "email", email)
		return "", nil, ErrEmailAlreadyRegistered
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return "", nil, err
	}

	user, err := svc.writer.Save(ctx, email, name, string(hashedPassword))
	if err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return "", nil, err
	}

	token, err := svc.jwt.Generate(ctx, user.UserID, user.Email, user.Name)
	if err != nil {
		logger.Log.Errorw("failed to generate token", "err", err)
		return "", nil, err
	}

	return token, &models.AuthUser{ID: user.UserID, Email: user.Email, Name: user.Name}, nil
}

// Login authenticates a user and returns a signed token.
// Unknown email and wrong password produce the same error so callers
// cannot probe for registered addresses.
func (svc *AuthService) Login(ctx context.Context, email, password string) (string, *models.AuthUser, error) {
	user, err := svc.reader.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", nil, err
	}
	if user == nil {
		logger.Log.Errorw("login failed", "email", email)
		return "", nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Errorw("login failed", "email", email)
		return "", nil, ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, user.UserID, user.Email, user.Name)
	if err != nil {
		logger.Log.Errorw("failed to generate token", "err", err)
		return "", nil, err
	}

	return token, &models.AuthUser{ID: user.UserID, Email: user.Email, Name: user.Name}, nil
}
