package auth

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionExpired  = errors.New("session expired")
)

// Checker resolves bearer tokens to user ids.
type Checker struct {
	redisClient *redis.Client
	ttl         time.Duration
	now         func() time.Time
}

func NewChecker(ttl time.Duration, redisClient *redis.Client) *Checker {
	return &Checker{
		ttl:         ttl,
		redisClient: redisClient,
		now:         time.Now,
	}
}

func (c *Checker) UserID(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", ErrSessionNotFound
	}

	fields, err := c.redisClient.HGetAll(ctx, sessionKeyPrefix+token).Result()
	if err != nil {
		return "", err
	}

	userID := fields[sessionFieldUserID]
	if userID == "" {
		return "", ErrSessionNotFound
	}

	createdAtUnix, err := strconv.ParseInt(fields[sessionFieldCreatedAt], 10, 64)
	if err != nil {
		return "", ErrSessionNotFound
	}
	if c.now().Sub(time.Unix(createdAtUnix, 0)) > c.ttl {
		return "", ErrSessionExpired
	}

	return userID, nil
}
