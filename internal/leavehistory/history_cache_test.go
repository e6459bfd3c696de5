package leavehistory_test

import (
	"context"
	"encoding/json"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"go-cuti/internal/leavehistory"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
)

type fakeSource struct {
	calls  atomic.Int32
	loadFn func(ctx context.Context, companyID string) (leavehistory.Snapshot, error)
}

func (f *fakeSource) Load(ctx context.Context, companyID string) (leavehistory.Snapshot, error) {
	f.calls.Add(1)
	if f.loadFn != nil {
		return f.loadFn(ctx, companyID)
	}
	return leavehistory.Snapshot{}, nil
}

func fixtureSnapshot() leavehistory.Snapshot {
	return leavehistory.Snapshot{Employees: fixtureEmployees(), Requests: fixtureRequests()}
}

const companyID = "44444444-4444-4444-4444-444444444444"

func TestCachedSource_Load(t *testing.T) {
	ctx := context.Background()
	key := leavehistory.GetSnapshotKey(companyID)
	ttl := 2 * time.Minute

	t.Run("miss loads from source and fills cache", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		snap := fixtureSnapshot()
		payload, err := json.Marshal(snap)
		assert.NoError(t, err)

		mock.ExpectGet(key).RedisNil()
		mock.ExpectSet(key, payload, ttl).SetVal("OK")

		src := &fakeSource{loadFn: func(ctx context.Context, cid string) (leavehistory.Snapshot, error) {
			assert.Equal(t, companyID, cid)
			return snap, nil
		}}
		cached := leavehistory.NewCachedSource(src, leavehistory.NewSnapshotCache(rdb, ttl))

		got, err := cached.Load(ctx, companyID)

		assert.NoError(t, err)
		assert.Equal(t, ids(snap.Requests), ids(got.Requests))
		assert.Equal(t, int32(1), src.calls.Load())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("hit skips source", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		snap := fixtureSnapshot()
		payload, err := json.Marshal(snap)
		assert.NoError(t, err)

		mock.ExpectGet(key).SetVal(string(payload))

		src := &fakeSource{}
		cached := leavehistory.NewCachedSource(src, leavehistory.NewSnapshotCache(rdb, ttl))

		got, err := cached.Load(ctx, companyID)

		assert.NoError(t, err)
		assert.Equal(t, int32(0), src.calls.Load())
		assert.Len(t, got.Employees, 3)
		assert.Equal(t, ids(snap.Requests), ids(got.Requests))
		assert.True(t, snap.Requests[2].StartDate.Equal(got.Requests[2].StartDate))
		if assert.NotNil(t, got.Requests[2].RejectionReason) {
			assert.Equal(t, "Periode tutup buku", *got.Requests[2].RejectionReason)
		}
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("redis failure falls back to source", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		mock.ExpectGet(key).SetErr(errors.New("redis down"))
		mock.ExpectSet(key, []byte(`{"employees":null,"requests":null}`), ttl).SetErr(errors.New("redis down"))

		src := &fakeSource{}
		cached := leavehistory.NewCachedSource(src, leavehistory.NewSnapshotCache(rdb, ttl))

		_, err := cached.Load(ctx, companyID)

		assert.NoError(t, err)
		assert.Equal(t, int32(1), src.calls.Load())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("source error is returned and not cached", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		mock.ExpectGet(key).RedisNil()

		src := &fakeSource{loadFn: func(ctx context.Context, cid string) (leavehistory.Snapshot, error) {
			return leavehistory.Snapshot{}, errors.New("db down")
		}}
		cached := leavehistory.NewCachedSource(src, leavehistory.NewSnapshotCache(rdb, ttl))

		_, err := cached.Load(ctx, companyID)

		assert.EqualError(t, err, "db down")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("nil cache returns the source itself", func(t *testing.T) {
		src := &fakeSource{}
		assert.Same(t, leavehistory.Source(src), leavehistory.NewCachedSource(src, nil))
	})
}

func TestSnapshotCache_Invalidate(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	mock.ExpectDel(leavehistory.GetSnapshotKey(companyID)).SetVal(1)

	cache := leavehistory.NewSnapshotCache(rdb, 0)

	assert.NoError(t, cache.Invalidate(context.Background(), companyID))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetSnapshotKey(t *testing.T) {
	assert.Equal(t, "leave-history:snapshot:"+companyID, leavehistory.GetSnapshotKey(companyID))
}
