package redis

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/handylink/marketplace-api/internal/api/metrics"
	"github.com/handylink/marketplace-api/internal/core/domain"
)

const issueAttempts = 3

// sessionCommands is the Redis command surface the store relies on.
// *redis.Client satisfies it.
type sessionCommands interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd
	Get(ctx context.Context, key string) *redis.StringCmd
	GetDel(ctx context.Context, key string) *redis.StringCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// SessionStore implements ports.SessionIssuer on Redis.
//
// Two keys per live session:
//
//	session:token:<token>  -> account id   (resolution)
//	session:account:<id>   -> token        (one live token per account)
//
// Issue claims the per-account key with SETNX, so concurrent issues for the
// same account collapse: one caller mints, the others read the winner's
// token. Sessions have no TTL; they end only on explicit revocation.
type SessionStore struct {
	client sessionCommands
}

// NewSessionStore creates a SessionStore wrapping the given Redis client.
func NewSessionStore(client *redis.Client) *SessionStore {
	return &SessionStore{client: client}
}

// Issue returns the account's live token, minting one if none exists.
// The token binding is written before the account key is claimed, so a
// claimed account key always points at a resolvable token; a half-written
// issue can never lock the account out of future sessions.
func (s *SessionStore) Issue(ctx context.Context, accountID string) (string, error) {
	for attempt := 0; attempt < issueAttempts; attempt++ {
		token, err := newToken()
		if err != nil {
			return "", err
		}

		if err := s.client.Set(ctx, tokenKey(token), accountID, 0).Err(); err != nil {
			return "", fmt.Errorf("bind session token: %w", err)
		}

		claimed, err := s.client.SetNX(ctx, accountKey(accountID), token, 0).Result()
		if err != nil {
			s.client.Del(ctx, tokenKey(token))
			return "", fmt.Errorf("claim session: %w", err)
		}

		if !claimed {
			// Lost the race; discard our binding and return the winner's token.
			s.client.Del(ctx, tokenKey(token))
			existing, err := s.client.Get(ctx, accountKey(accountID)).Result()
			if errors.Is(err, redis.Nil) {
				// A concurrent revoke freed the claim; try again.
				continue
			}
			if err != nil {
				return "", fmt.Errorf("read session: %w", err)
			}
			metrics.SessionTokensIssued.WithLabelValues("reused").Inc()
			return existing, nil
		}

		metrics.SessionTokensIssued.WithLabelValues("new").Inc()
		return token, nil
	}
	return "", fmt.Errorf("issue session: retries exhausted for account %s", accountID)
}

// Resolve returns the account id a token belongs to.
func (s *SessionStore) Resolve(ctx context.Context, token string) (string, error) {
	accountID, err := s.client.Get(ctx, tokenKey(token)).Result()
	if errors.Is(err, redis.Nil) {
		return "", domain.ErrInvalidToken
	}
	if err != nil {
		return "", fmt.Errorf("resolve session: %w", err)
	}
	return accountID, nil
}

// Revoke destroys the token. GETDEL makes the operation atomic, so exactly
// one of two concurrent revocations succeeds and the other observes
// domain.ErrTokenNotFound.
func (s *SessionStore) Revoke(ctx context.Context, token string) error {
	accountID, err := s.client.GetDel(ctx, tokenKey(token)).Result()
	if errors.Is(err, redis.Nil) {
		return domain.ErrTokenNotFound
	}
	if err != nil {
		return fmt.Errorf("revoke session: %w", err)
	}

	// Drop the per-account binding only if it still points at this token,
	// so a newer session issued in between is left intact.
	current, err := s.client.Get(ctx, accountKey(accountID)).Result()
	if err == nil && current == token {
		if err := s.client.Del(ctx, accountKey(accountID)).Err(); err != nil {
			return fmt.Errorf("revoke session: %w", err)
		}
	}
	return nil
}

func newToken() (string, error) {
	b := make([]byte, 20)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("mint token: %w", err)
	}
	return hex.EncodeToString(b), nil
}

func tokenKey(token string) string {
	return "session:token:" + token
}

func accountKey(accountID string) string {
	return "session:account:" + accountID
}
