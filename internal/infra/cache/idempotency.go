package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"toolshare/internal/infra"
	"toolshare/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type IdempotencyStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewIdempotencyStore(rdb *redis.Client, ttl time.Duration) *IdempotencyStore {
	return &IdempotencyStore{rdb: rdb, ttl: ttl}
}

func (s *IdempotencyStore) key(key, userID uuid.UUID) string {
	return "idem:reservations:" + userID.String() + ":" + key.String()
}

func (s *IdempotencyStore) Begin(ctx context.Context, key, userID uuid.UUID, requestHash string) (*shared.IdempotencyRecord, error) {
	rec := shared.IdempotencyRecord{Status: shared.IdempotencyProcessing, RequestHash: requestHash}
	val, err := json.Marshal(rec)
	if err != nil {
		return nil, err
	}

	ok, err := s.rdb.SetNX(ctx, s.key(key, userID), val, s.ttl).Result()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to claim idempotency key", err, infra.KindDBFailure)
	}
	if ok {
		return nil, nil
	}

	raw, err := s.rdb.Get(ctx, s.key(key, userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			// expired between SETNX and GET; treat as a fresh claim on retry
			return nil, infra.WrapRepoErr("idempotency key vanished", err, infra.KindConflict)
		}
		return nil, infra.WrapRepoErr("failed to read idempotency key", err, infra.KindDBFailure)
	}

	var existing shared.IdempotencyRecord
	if err := json.Unmarshal(raw, &existing); err != nil {
		return nil, infra.WrapRepoErr("corrupt idempotency record", err, infra.KindDBFailure)
	}
	return &existing, nil
}

func (s *IdempotencyStore) Complete(ctx context.Context, key, userID, reservationID uuid.UUID) error {
	k := s.key(key, userID)

	raw, err := s.rdb.Get(ctx, k).Bytes()
	if err != nil {
		return infra.WrapRepoErr("failed to read idempotency key", err, infra.KindDBFailure)
	}
	var rec shared.IdempotencyRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return infra.WrapRepoErr("corrupt idempotency record", err, infra.KindDBFailure)
	}

	rec.Status = shared.IdempotencyCompleted
	rec.ReservationID = &reservationID
	val, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	if err := s.rdb.Set(ctx, k, val, redis.KeepTTL).Err(); err != nil {
		return infra.WrapRepoErr("failed to complete idempotency key", err, infra.KindDBFailure)
	}
	return nil
}

func (s *IdempotencyStore) Release(ctx context.Context, key, userID uuid.UUID) error {
	if err := s.rdb.Del(ctx, s.key(key, userID)).Err(); err != nil {
		return infra.WrapRepoErr("failed to release idempotency key", err, infra.KindDBFailure)
	}
	return nil
}
