package auth

import (
	"context"
	"time"

	"toolhub/internal/cache"
)

const blacklistKeyPrefix = "blacklist:access_token:"

// TokenStoreInterface defines the token revocation operations.
type TokenStoreInterface interface {
	BlacklistToken(ctx context.Context, tokenID string, ttl time.Duration) error
	IsTokenBlacklisted(ctx context.Context, tokenID string) (bool, error)
}

// TokenStore records revoked session tokens in Redis until their natural
// expiry. Signout stays idempotent: revoking twice is harmless, and a
// missing Redis degrades to cookie-only signout.
type TokenStore struct {
	cache *cache.Client
}

// Ensure TokenStore implements TokenStoreInterface
var _ TokenStoreInterface = (*TokenStore)(nil)

// NewTokenStore creates a new token store.
func NewTokenStore(cache *cache.Client) *TokenStore {
	return &TokenStore{cache: cache}
}

// BlacklistToken marks a token ID as revoked for the remainder of its life.
func (s *TokenStore) BlacklistToken(ctx context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return s.cache.Set(ctx, blacklistKeyPrefix+tokenID, []byte("1"), ttl)
}

// IsTokenBlacklisted checks whether a token ID has been revoked.
func (s *TokenStore) IsTokenBlacklisted(ctx context.Context, tokenID string) (bool, error) {
	data, err := s.cache.Get(ctx, blacklistKeyPrefix+tokenID)
	if err != nil {
		return false, nil
	}
	return data != nil, nil
}
