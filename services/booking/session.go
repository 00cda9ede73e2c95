// File: services/booking/session.go
package booking

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"villamar/models"
	"villamar/utils"

	"github.com/go-redis/redis/v8"
)

// SessionStore holds quoted booking sessions between the quote shown to the
// guest and their confirmation click.
type SessionStore interface {
	Save(ctx context.Context, session models.BookingSession) error
	Get(ctx context.Context, sessionID string) (*models.BookingSession, error)
	Delete(ctx context.Context, sessionID string) error
}

// RedisSessionStore keeps sessions in Redis with a TTL, so abandoned quotes
// clean themselves up.
type RedisSessionStore struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisSessionStore(client *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{Client: client, TTL: utils.BookingSessionTTL}
}

func (s *RedisSessionStore) key(sessionID string) string {
	return utils.BookingSessionPrefix + sessionID
}

func (s *RedisSessionStore) Save(ctx context.Context, session models.BookingSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return s.Client.Set(ctx, s.key(session.SessionID), data, s.TTL).Err()
}

func (s *RedisSessionStore) Get(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	data, err := s.Client.Get(ctx, s.key(sessionID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	var session models.BookingSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *RedisSessionStore) Delete(ctx context.Context, sessionID string) error {
	return s.Client.Del(ctx, s.key(sessionID)).Err()
}
