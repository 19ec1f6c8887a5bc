package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"toolhub/internal/apperr"
	"toolhub/internal/authz"
	"toolhub/internal/cache"
	"toolhub/internal/model"
	"toolhub/internal/repository"
)

// UserUpdate carries the optional profile fields of an update request.
type UserUpdate struct {
	FullName string
	Email    string
	Password string
	Avatar   string
}

// Empty reports whether no field was provided.
func (u UserUpdate) Empty() bool {
	return u.FullName == "" && u.Email == "" && u.Password == "" && u.Avatar == ""
}

// UserService exposes profile and admin operations.
type UserService interface {
	Update(ctx context.Context, userID uuid.UUID, upd UserUpdate) (*model.User, error)
	Delete(ctx context.Context, userID uuid.UUID) error
	DeleteOther(ctx context.Context, caller *model.User, targetID uuid.UUID) error
	ListAll(ctx context.Context, caller *model.User) ([]model.User, error)
	ToggleAdmin(ctx context.Context, caller *model.User, targetID uuid.UUID) (*model.User, error)
}

type userService struct {
	users  repository.UserRepository
	policy *authz.Policy
	cache  *cache.Client
}

// NewUserService builds a UserService.
func NewUserService(users repository.UserRepository, policy *authz.Policy, cache *cache.Client) UserService {
	return &userService{users: users, policy: policy, cache: cache}
}

// Update applies the provided subset of profile fields.
func (s *userService) Update(ctx context.Context, userID uuid.UUID, upd UserUpdate) (*model.User, error) {
	if upd.Empty() {
		return nil, apperr.Validation("At least one field is required")
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("User not found")
		}
		return nil, apperr.Internal(err)
	}

	if upd.FullName != "" {
		user.FullName = upd.FullName
	}
	if upd.Email != "" {
		user.Email = upd.Email
	}
	if upd.Avatar != "" {
		user.Avatar = upd.Avatar
	}
	if upd.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(upd.Password), bcryptCost)
		if err != nil {
			return nil, apperr.Internal(err)
		}
		user.Password = string(hashed)
	}

	if err := s.users.Update(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Conflict("Email already in use")
		}
		return nil, apperr.Internal(err)
	}

	s.invalidate(ctx, user.ID)
	return user, nil
}

// Delete removes the caller's own account.
func (s *userService) Delete(ctx context.Context, userID uuid.UUID) error {
	rows, err := s.users.Delete(ctx, userID)
	if err != nil {
		return apperr.Internal(err)
	}
	if rows == 0 {
		return apperr.NotFound("user not found")
	}
	s.invalidate(ctx, userID)
	return nil
}

// DeleteOther removes another account; super-admin only.
func (s *userService) DeleteOther(ctx context.Context, caller *model.User, targetID uuid.UUID) error {
	if err := s.policy.Allow(caller, authz.ActionDeleteUser); err != nil {
		return err
	}
	rows, err := s.users.Delete(ctx, targetID)
	if err != nil {
		return apperr.Internal(err)
	}
	if rows == 0 {
		return apperr.NotFound("user not found")
	}
	s.invalidate(ctx, targetID)
	return nil
}

// ListAll returns every account. Password hashes never serialize.
func (s *userService) ListAll(ctx context.Context, caller *model.User) ([]model.User, error) {
	if err := s.policy.Allow(caller, authz.ActionListUsers); err != nil {
		return nil, err
	}
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return users, nil
}

// ToggleAdmin flips the target's admin flag, subject to policy.
func (s *userService) ToggleAdmin(ctx context.Context, caller *model.User, targetID uuid.UUID) (*model.User, error) {
	if err := s.policy.Allow(caller, authz.ActionToggleAdmin); err != nil {
		return nil, err
	}

	user, err := s.users.FindByID(ctx, targetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("User not found")
		}
		return nil, apperr.Internal(err)
	}

	user.IsAdmin = !user.IsAdmin
	if err := s.users.Update(ctx, user); err != nil {
		return nil, apperr.Internal(err)
	}

	s.invalidate(ctx, user.ID)
	return user, nil
}

func (s *userService) invalidate(ctx context.Context, id uuid.UUID) {
	_ = s.cache.Delete(ctx, cache.UserKey(id.String()))
}
