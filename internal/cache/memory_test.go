package cache

import (
	"context"
	"testing"
	"time"
)

func TestMemoryGetMiss(t *testing.T) {
	m := NewMemory()

	_, err := m.Get(context.Background(), "absent")
	if err != ErrMiss {
		t.Errorf("expected ErrMiss, got %v", err)
	}
}

func TestMemorySetGet(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	if err := m.Set(ctx, "k", []byte("v"), time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}

	got, err := m.Get(ctx, "k")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(got) != "v" {
		t.Errorf("expected v, got %s", got)
	}
}

func TestMemoryExpiry(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	now := time.Now()
	m.now = func() time.Time { return now }

	m.Set(ctx, "k", []byte("v"), time.Minute)

	now = now.Add(2 * time.Minute)

	if _, err := m.Get(ctx, "k"); err != ErrMiss {
		t.Errorf("expected ErrMiss after expiry, got %v", err)
	}
}

func TestMemoryZeroTTLNeverExpires(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	now := time.Now()
	m.now = func() time.Time { return now }

	m.Set(ctx, "k", []byte("v"), 0)
	now = now.Add(24 * time.Hour)

	if _, err := m.Get(ctx, "k"); err != nil {
		t.Errorf("expected hit, got %v", err)
	}
}
