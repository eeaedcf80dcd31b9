package locks

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
)

func TestRedisBatchLock_Acquire(t *testing.T) {
	t.Run("free lock is acquired", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		lock := NewRedisBatchLock(client)

		mock.ExpectSetNX("payout:batch:build", "1", 30*time.Second).SetVal(true)

		ok, err := lock.Acquire(context.Background(), "payout:batch:build", 30*time.Second)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !ok {
			t.Fatal("expected lock acquired")
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Fatalf("redis expectations: %v", err)
		}
	})

	t.Run("held lock is reported busy", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		lock := NewRedisBatchLock(client)

		mock.ExpectSetNX("payout:batch:build", "1", 30*time.Second).SetVal(false)

		ok, err := lock.Acquire(context.Background(), "payout:batch:build", 30*time.Second)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ok {
			t.Fatal("expected lock busy")
		}
	})
}

func TestRedisBatchLock_Release(t *testing.T) {
	client, mock := redismock.NewClientMock()
	lock := NewRedisBatchLock(client)

	mock.ExpectDel("payout:batch:build").SetVal(1)

	if err := lock.Release(context.Background(), "payout:batch:build"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("redis expectations: %v", err)
	}
}
