package sessions

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Logout cannot invalidate a signed JWT, so revoked access tokens are held in
// a Redis blacklist for the remainder of their lifetime and the auth
// middleware checks membership on every gated request.

const blacklistPrefix = "blacklist:access:"

var blacklistClient *redis.Client

// SetBlacklistClient configures the Redis client used for the blacklist.
// Passing nil disables it (tokens then stay valid until expiry).
func SetBlacklistClient(c *redis.Client) {
	blacklistClient = c
}

// BlacklistAccessToken records the token with the given TTL, which should be
// the token's remaining lifetime. A no-op when no client is configured.
func BlacklistAccessToken(ctx context.Context, token string, ttl time.Duration) error {
	if blacklistClient == nil {
		return nil
	}
	return blacklistClient.Set(ctx, blacklistPrefix+token, "1", ttl).Err()
}

// IsAccessTokenBlacklisted reports whether the token was revoked. Without a
// configured client it always reports false.
func IsAccessTokenBlacklisted(ctx context.Context, token string) (bool, error) {
	if blacklistClient == nil {
		return false, nil
	}
	exists, err := blacklistClient.Exists(ctx, blacklistPrefix+token).Result()
	if err != nil {
		return false, err
	}
	return exists > 0, nil
}
