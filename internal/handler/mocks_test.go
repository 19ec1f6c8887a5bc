package handler

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/mock"

	"toolhub/internal/apperr"
	"toolhub/internal/middleware"
	"toolhub/internal/model"
	"toolhub/internal/service"
)

// newTestEcho builds an echo instance with the production validator and
// error handler so envelope shapes match what clients see.
func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = &testValidator{v: validator.New()}
	e.HTTPErrorHandler = apperr.EchoErrorHandler(zerolog.Nop())
	return e
}

type testValidator struct {
	v *validator.Validate
}

func (t *testValidator) Validate(i interface{}) error {
	return t.v.Struct(i)
}

// withUser stands in for the auth gate in handler tests.
func withUser(u *model.User) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			middleware.SetUser(c, u)
			return next(c)
		}
	}
}

// MockAuthService is a mock implementation of service.AuthService.
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Signup(ctx context.Context, fullName, email, password string) (*model.User, error) {
	args := m.Called(ctx, fullName, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (string, *model.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(1) == nil {
		return args.String(0), nil, args.Error(2)
	}
	return args.String(0), args.Get(1).(*model.User), args.Error(2)
}

func (m *MockAuthService) FederatedLogin(ctx context.Context, email, fullName, avatar string) (string, *model.User, bool, error) {
	args := m.Called(ctx, email, fullName, avatar)
	if args.Get(1) == nil {
		return args.String(0), nil, args.Bool(2), args.Error(3)
	}
	return args.String(0), args.Get(1).(*model.User), args.Bool(2), args.Error(3)
}

func (m *MockAuthService) Signout(ctx context.Context, rawToken string) {
	m.Called(ctx, rawToken)
}

// MockUserService is a mock implementation of service.UserService.
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Update(ctx context.Context, userID uuid.UUID, upd service.UserUpdate) (*model.User, error) {
	args := m.Called(ctx, userID, upd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserService) Delete(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockUserService) DeleteOther(ctx context.Context, caller *model.User, targetID uuid.UUID) error {
	args := m.Called(ctx, caller, targetID)
	return args.Error(0)
}

func (m *MockUserService) ListAll(ctx context.Context, caller *model.User) ([]model.User, error) {
	args := m.Called(ctx, caller)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockUserService) ToggleAdmin(ctx context.Context, caller *model.User, targetID uuid.UUID) (*model.User, error) {
	args := m.Called(ctx, caller, targetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

// MockFavoritesService is a mock implementation of service.FavoritesService.
type MockFavoritesService struct {
	mock.Mock
}

func (m *MockFavoritesService) Add(ctx context.Context, userID, toolID uuid.UUID) ([]uuid.UUID, error) {
	args := m.Called(ctx, userID, toolID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uuid.UUID), args.Error(1)
}

func (m *MockFavoritesService) Remove(ctx context.Context, userID, toolID uuid.UUID) ([]uuid.UUID, error) {
	args := m.Called(ctx, userID, toolID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uuid.UUID), args.Error(1)
}

func (m *MockFavoritesService) List(ctx context.Context, userID uuid.UUID) ([]model.Tool, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Tool), args.Error(1)
}

// MockCommentService is a mock implementation of service.CommentService.
type MockCommentService struct {
	mock.Mock
}

func (m *MockCommentService) Create(ctx context.Context, userID, toolID uuid.UUID, content string, parentID *uuid.UUID) (*model.Comment, error) {
	args := m.Called(ctx, userID, toolID, content, parentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Comment), args.Error(1)
}

func (m *MockCommentService) ListByTool(ctx context.Context, toolID uuid.UUID) ([]model.Comment, error) {
	args := m.Called(ctx, toolID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Comment), args.Error(1)
}
