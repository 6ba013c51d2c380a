// Package redisstore is the TTL-bounded room cache. Rooms live under
// "room:<code>" as one JSON blob; every successful write refreshes the TTL,
// so an active room never expires and an abandoned one is purged.
package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/SkribbLoL/game-service/domain"
)

const keyPrefix = "room:"

type Store struct {
	client *redis.Client
	ttl    time.Duration
}

func New(client *redis.Client, ttl time.Duration) *Store {
	return &Store{client: client, ttl: ttl}
}

// Get fetches and decodes a room. A missing key maps to
// domain.ErrRoomNotFound; transport failures map to
// domain.ErrBackendUnavailable.
func (s *Store) Get(ctx context.Context, code string) (*domain.Room, error) {
	data, err := s.client.Get(ctx, keyPrefix+code).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrRoomNotFound
		}
		return nil, fmt.Errorf("room cache get %q: %w", code, domain.ErrBackendUnavailable)
	}

	var room domain.Room
	if err := json.Unmarshal(data, &room); err != nil {
		return nil, fmt.Errorf("room cache decode %q: %w", code, err)
	}
	return &room, nil
}

// Set persists the full room and refreshes its TTL.
func (s *Store) Set(ctx context.Context, room *domain.Room) error {
	data, err := json.Marshal(room)
	if err != nil {
		return fmt.Errorf("room cache encode %q: %w", room.Code, err)
	}
	if err := s.client.Set(ctx, keyPrefix+room.Code, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("room cache set %q: %w", room.Code, domain.ErrBackendUnavailable)
	}
	return nil
}

// Delete removes a room record.
func (s *Store) Delete(ctx context.Context, code string) error {
	if err := s.client.Del(ctx, keyPrefix+code).Err(); err != nil {
		return fmt.Errorf("room cache delete %q: %w", code, domain.ErrBackendUnavailable)
	}
	return nil
}
