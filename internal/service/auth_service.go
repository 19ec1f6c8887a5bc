package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"toolhub/internal/apperr"
	"toolhub/internal/auth"
	"toolhub/internal/model"
	"toolhub/internal/repository"
)

const bcryptCost = 10

// AuthService handles signup, login, federated login and signout.
type AuthService interface {
	Signup(ctx context.Context, fullName, email, password string) (*model.User, error)
	Login(ctx context.Context, email, password string) (token string, user *model.User, err error)
	// FederatedLogin trusts the identity provider's email verification. No
	// password check happens for existing accounts on this path; created
	// reports whether a new account was provisioned.
	FederatedLogin(ctx context.Context, email, fullName, avatar string) (token string, user *model.User, created bool, err error)
	// Signout revokes the presented token if it is still valid. It never
	// fails: signing out without a live session is a no-op.
	Signout(ctx context.Context, rawToken string)
}

type authService struct {
	users         repository.UserRepository
	jwtService    *auth.JWTService
	tokenStore    auth.TokenStoreInterface
	defaultAvatar string
}

// NewAuthService creates a new authentication service.
func NewAuthService(users repository.UserRepository, jwtService *auth.JWTService, tokenStore auth.TokenStoreInterface, defaultAvatar string) AuthService {
	return &authService{
		users:         users,
		jwtService:    jwtService,
		tokenStore:    tokenStore,
		defaultAvatar: defaultAvatar,
	}
}

// Signup creates a new user with a hashed password.
func (s *authService) Signup(ctx context.Context, fullName, email, password string) (*model.User, error) {
	existing, err := s.users.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return nil, apperr.Conflict("User already exists")
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.Internal(err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	user := &model.User{
		FullName: fullName,
		Email:    email,
		Password: string(hashed),
	}
	if err := s.users.Create(ctx, user); err != nil {
		// the unique index closes the find-then-create race
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Conflict("User already exists")
		}
		return nil, apperr.Internal(err)
	}

	return user, nil
}

// Login verifies the credentials and issues a session token.
func (s *authService) Login(ctx context.Context, email, password string) (string, *model.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, apperr.NotFound("user not found")
		}
		return "", nil, apperr.Internal(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, apperr.Unauthorized("Invalid password")
	}

	token, err := s.jwtService.GenerateAccessToken(user.ID, user.Email)
	if err != nil {
		return "", nil, apperr.Internal(err)
	}

	return token, user, nil
}

// FederatedLogin logs an existing user in, or provisions a new account with a
// random never-communicated password.
func (s *authService) FederatedLogin(ctx context.Context, email, fullName, avatar string) (string, *model.User, bool, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil, false, apperr.Internal(err)
	}

	if user != nil {
		token, err := s.jwtService.GenerateAccessToken(user.ID, user.Email)
		if err != nil {
			return "", nil, false, apperr.Internal(err)
		}
		return token, user, false, nil
	}

	// the generated password is never returned anywhere; federated accounts
	// can only sign in through this path until they set one via update
	generated := uuid.NewString() + uuid.NewString()
	hashed, err := bcrypt.GenerateFromPassword([]byte(generated), bcryptCost)
	if err != nil {
		return "", nil, false, apperr.Internal(err)
	}

	if avatar == "" {
		avatar = s.defaultAvatar
	}

	user = &model.User{
		FullName: fullName,
		Email:    email,
		Password: string(hashed),
		Avatar:   avatar,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// lost a create race; treat as login
			return s.federatedRetry(ctx, email)
		}
		return "", nil, false, apperr.Internal(err)
	}

	token, err := s.jwtService.GenerateAccessToken(user.ID, user.Email)
	if err != nil {
		return "", nil, false, apperr.Internal(err)
	}
	return token, user, true, nil
}

func (s *authService) federatedRetry(ctx context.Context, email string) (string, *model.User, bool, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, false, apperr.Internal(err)
	}
	token, err := s.jwtService.GenerateAccessToken(user.ID, user.Email)
	if err != nil {
		return "", nil, false, apperr.Internal(err)
	}
	return token, user, false, nil
}

// Signout blacklists the token for the rest of its lifetime. Garbage or
// expired tokens are ignored.
func (s *authService) Signout(ctx context.Context, rawToken string) {
	if rawToken == "" {
		return
	}
	claims, err := s.jwtService.ValidateToken(rawToken)
	if err != nil || claims.ID == "" || claims.ExpiresAt == nil {
		return
	}
	_ = s.tokenStore.BlacklistToken(ctx, claims.ID, time.Until(claims.ExpiresAt.Time))
}
