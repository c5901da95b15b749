package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/2beens/forgezone/internal/fitness"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

type leaderboardSource interface {
	Leaderboard(ctx context.Context, limit int) ([]fitness.LeaderboardEntry, error)
}

// LeaderboardCache keeps serialized leaderboards for a short TTL.
// Completions invalidate it so streak changes show up right away.
type LeaderboardCache struct {
	cache      *freecache.Cache
	source     leaderboardSource
	ttlSeconds int
}

func NewLeaderboardCache(source leaderboardSource, sizeMB, ttlSeconds int) *LeaderboardCache {
	return &LeaderboardCache{
		cache:      freecache.NewCache(sizeMB * 1024 * 1024),
		source:     source,
		ttlSeconds: ttlSeconds,
	}
}

func leaderboardKey(limit int) []byte {
	return []byte("leaderboard:" + strconv.Itoa(limit))
}

func (c *LeaderboardCache) Leaderboard(ctx context.Context, limit int) ([]fitness.LeaderboardEntry, error) {
	key := leaderboardKey(limit)

	cached, err := c.cache.Get(key)
	if err == nil {
		var entries []fitness.LeaderboardEntry
		unmarshalErr := json.Unmarshal(cached, &entries)
		if unmarshalErr == nil {
			return entries, nil
		}
		log.Warnf("leaderboard cache: corrupted entry, reloading: %s", unmarshalErr)
	} else if !errors.Is(err, freecache.ErrNotFound) {
		log.Warnf("leaderboard cache get: %s", err)
	}

	entries, err := c.source.Leaderboard(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("load leaderboard: %w", err)
	}

	if encoded, err := json.Marshal(entries); err == nil {
		if err := c.cache.Set(key, encoded, c.ttlSeconds); err != nil {
			log.Warnf("leaderboard cache set: %s", err)
		}
	}

	return entries, nil
}

func (c *LeaderboardCache) Invalidate() {
	c.cache.Clear()
}
