package repository

import (
	"context"
	"errors"
	"time"

	"marketbrief/db"

	"github.com/redis/go-redis/v9"
)

var ErrAlreadySent = errors.New("brief already sent for this date")

const sendGuardTTL = 36 * time.Hour

// SendGuard keeps a scheduler that fires twice from mailing the same day's
// brief twice. It stores one short-lived key per date and nothing else.
type SendGuard struct {
	rdb *redis.Client
}

func NewSendGuard(rdb *redis.Client) *SendGuard {
	return &SendGuard{rdb: rdb}
}

func sentKey(date time.Time) string {
	return db.SentKeyPrefix + date.Format("2006-01-02")
}

// Acquire claims the date for runID, or returns ErrAlreadySent.
func (g *SendGuard) Acquire(ctx context.Context, date time.Time, runID string) error {
	ok, err := g.rdb.SetNX(ctx, sentKey(date), runID, sendGuardTTL).Result()
	if err != nil {
		return err
	}
	if !ok {
		return ErrAlreadySent
	}
	return nil
}

// Release frees the date after a failed delivery so a retry can send.
func (g *SendGuard) Release(ctx context.Context, date time.Time) error {
	return g.rdb.Del(ctx, sentKey(date)).Err()
}
