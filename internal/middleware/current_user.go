package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"toolhub/internal/apperr"
	"toolhub/internal/auth"
	"toolhub/internal/cache"
	"toolhub/internal/model"
	"toolhub/internal/repository"
)

const (
	// claimsContextKey is where the JWT gate stores the parsed claims.
	claimsContextKey = "user"
	// currentUserKey is where this middleware stores the resolved account.
	currentUserKey = "currentUser"

	userCacheTTL = 5 * time.Minute
)

// UserCache is the slice of the cache client this middleware needs.
// *cache.Client satisfies it, including as a nil pointer.
type UserCache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// CurrentUser resolves the token claims produced by the JWT gate into the
// caller's account and attaches it to the request context. Revoked tokens and
// deleted accounts are rejected here, before any handler runs.
func CurrentUser(users repository.UserRepository, tokens auth.TokenStoreInterface, cacheClient UserCache) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := c.Get(claimsContextKey).(*auth.Claims)
			if !ok {
				return apperr.Unauthorized("invalid session")
			}

			ctx := c.Request().Context()

			if claims.ID != "" {
				if revoked, _ := tokens.IsTokenBlacklisted(ctx, claims.ID); revoked {
					return apperr.Unauthorized("session expired")
				}
			}

			userID, err := uuid.Parse(claims.UserID)
			if err != nil {
				return apperr.Unauthorized("invalid session")
			}

			key := cache.UserKey(claims.UserID)
			if data, _ := cacheClient.Get(ctx, key); data != nil {
				var cached model.User
				if err := json.Unmarshal(data, &cached); err == nil {
					SetUser(c, &cached)
					return next(c)
				}
			}

			user, err := users.FindByID(ctx, userID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return apperr.Unauthorized("account no longer exists")
				}
				return apperr.Internal(err)
			}

			if payload, err := json.Marshal(user); err == nil {
				_ = cacheClient.Set(ctx, key, payload, userCacheTTL)
			}

			SetUser(c, user)
			return next(c)
		}
	}
}

// SetUser attaches the resolved account to the request context.
func SetUser(c echo.Context, user *model.User) {
	c.Set(currentUserKey, user)
}

// UserFromContext returns the account resolved by CurrentUser, or nil.
func UserFromContext(c echo.Context) *model.User {
	user, _ := c.Get(currentUserKey).(*model.User)
	return user
}
