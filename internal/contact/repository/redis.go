package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	submissionKeyPrefix = "contact:submission:"
	submissionIndexKey  = "contact:submissions"
)

// RedisInbox stores each submission as JSON under its own key with a TTL and
// indexes ids in a sorted set scored by submission time.
type RedisInbox struct {
	client    redis.UniversalClient
	retention time.Duration
}

// NewRedisInbox creates an inbox whose entries expire after retention.
func NewRedisInbox(client redis.UniversalClient, retention time.Duration) *RedisInbox {
	return &RedisInbox{client: client, retention: retention}
}

func submissionKey(id uuid.UUID) string {
	return submissionKeyPrefix + id.String()
}

func (r *RedisInbox) Enabled() bool { return true }

// Save writes the submission and adds it to the index, dropping index
// entries older than the retention window.
func (r *RedisInbox) Save(ctx context.Context, s Submission) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode submission: %w", err)
	}

	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, submissionKey(s.ID), data, r.retention)
		pipe.ZAdd(ctx, submissionIndexKey, redis.Z{
			Score:  float64(s.SubmittedAt.UnixMilli()),
			Member: s.ID.String(),
		})
		if r.retention > 0 {
			cutoff := time.Now().Add(-r.retention).UnixMilli()
			pipe.ZRemRangeByScore(ctx, submissionIndexKey, "-inf", "("+strconv.FormatInt(cutoff, 10))
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("save submission: %w", err)
	}
	return nil
}

func (r *RedisInbox) Get(ctx context.Context, id uuid.UUID) (Submission, error) {
	data, err := r.client.Get(ctx, submissionKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return Submission{}, ErrNotFound
	}
	if err != nil {
		return Submission{}, fmt.Errorf("get submission: %w", err)
	}
	return decodeSubmission(data)
}

func (r *RedisInbox) List(ctx context.Context, limit int) ([]Submission, error) {
	if limit <= 0 {
		limit = 50
	}

	ids, err := r.client.ZRevRange(ctx, submissionIndexKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("list submission ids: %w", err)
	}
	if len(ids) == 0 {
		return []Submission{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = submissionKeyPrefix + id
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("load submissions: %w", err)
	}

	out := make([]Submission, 0, len(values))
	for _, v := range values {
		raw, ok := v.(string)
		if !ok {
			// Expired between the index read and the fetch.
			continue
		}
		s, err := decodeSubmission([]byte(raw))
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// MarkHandled stamps the submission under WATCH so concurrent admins do not
// overwrite each other. The key keeps its remaining TTL.
func (r *RedisInbox) MarkHandled(ctx context.Context, id uuid.UUID, by string, at time.Time) (Submission, error) {
	key := submissionKey(id)
	var updated Submission

	err := r.client.Watch(ctx, func(tx *redis.Tx) error {
		data, err := tx.Get(ctx, key).Bytes()
		if errors.Is(err, redis.Nil) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		s, err := decodeSubmission(data)
		if err != nil {
			return err
		}
		if s.HandledAt == nil {
			stamp := at.UTC()
			s.HandledAt = &stamp
			s.HandledBy = by
		}

		encoded, err := json.Marshal(s)
		if err != nil {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.SetArgs(ctx, key, encoded, redis.SetArgs{KeepTTL: true})
			return nil
		})
		if err != nil {
			return err
		}
		updated = s
		return nil
	}, key)
	if errors.Is(err, ErrNotFound) {
		return Submission{}, ErrNotFound
	}
	if err != nil {
		return Submission{}, fmt.Errorf("mark submission handled: %w", err)
	}
	return updated, nil
}

func decodeSubmission(data []byte) (Submission, error) {
	var s Submission
	if err := json.Unmarshal(data, &s); err != nil {
		return Submission{}, fmt.Errorf("decode submission: %w", err)
	}
	return s, nil
}

var _ Inbox = (*RedisInbox)(nil)
