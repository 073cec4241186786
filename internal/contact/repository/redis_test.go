package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestInbox(t *testing.T) (*RedisInbox, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisInbox(client, 24*time.Hour), mr
}

func sampleSubmission(at time.Time) Submission {
	return Submission{
		ID:          uuid.New(),
		FirstName:   "Ada",
		LastName:    "Lovelace",
		Email:       "ada@example.com",
		Message:     "We want to automate our support desk.",
		SubmittedAt: at.UTC(),
	}
}

func TestRedisInboxSaveAndGet(t *testing.T) {
	inbox, mr := newTestInbox(t)
	ctx := context.Background()
	sub := sampleSubmission(time.Now())

	require.NoError(t, inbox.Save(ctx, sub))

	got, err := inbox.Get(ctx, sub.ID)
	require.NoError(t, err)
	assert.Equal(t, sub.Email, got.Email)
	assert.True(t, sub.SubmittedAt.Equal(got.SubmittedAt))
	assert.False(t, got.Handled())
	assert.Equal(t, 24*time.Hour, mr.TTL(submissionKey(sub.ID)))
}

func TestRedisInboxGetMissing(t *testing.T) {
	inbox, _ := newTestInbox(t)
	_, err := inbox.Get(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRedisInboxListNewestFirst(t *testing.T) {
	inbox, mr := newTestInbox(t)
	ctx := context.Background()
	base := time.Now().Add(-time.Hour)

	older := sampleSubmission(base)
	newer := sampleSubmission(base.Add(10 * time.Minute))
	expired := sampleSubmission(base.Add(5 * time.Minute))
	for _, s := range []Submission{older, newer, expired} {
		require.NoError(t, inbox.Save(ctx, s))
	}
	// Simulate a key expiring while its index entry remains.
	mr.Del(submissionKey(expired.ID))

	items, err := inbox.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, newer.ID, items[0].ID)
	assert.Equal(t, older.ID, items[1].ID)

	items, err = inbox.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, newer.ID, items[0].ID)
}

func TestRedisInboxMarkHandledKeepsFirstStamp(t *testing.T) {
	inbox, mr := newTestInbox(t)
	ctx := context.Background()
	sub := sampleSubmission(time.Now())
	require.NoError(t, inbox.Save(ctx, sub))

	first := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	updated, err := inbox.MarkHandled(ctx, sub.ID, "ops@example.com", first)
	require.NoError(t, err)
	require.True(t, updated.Handled())
	assert.Equal(t, "ops@example.com", updated.HandledBy)

	again, err := inbox.MarkHandled(ctx, sub.ID, "someone@example.com", first.Add(time.Hour))
	require.NoError(t, err)
	assert.True(t, first.Equal(*again.HandledAt))
	assert.Equal(t, "ops@example.com", again.HandledBy)
	assert.Positive(t, mr.TTL(submissionKey(sub.ID)), "TTL survives the update")

	_, err = inbox.MarkHandled(ctx, uuid.New(), "ops@example.com", first)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestNoopInbox(t *testing.T) {
	var inbox Inbox = NoopInbox{}
	ctx := context.Background()
	assert.False(t, inbox.Enabled())
	assert.NoError(t, inbox.Save(ctx, sampleSubmission(time.Now())))
	items, err := inbox.List(ctx, 5)
	require.NoError(t, err)
	assert.Empty(t, items)
	_, err = inbox.Get(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}
