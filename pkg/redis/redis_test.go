package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
)

func newTestRedis(t *testing.T) IRedis {
	t.Helper()
	server := miniredis.RunT(t)
	t.Setenv("REDIS_ADDRESS", server.Addr())
	t.Setenv("REDIS_PASSWORD", "")
	t.Setenv("REDIS_DB", "0")
	return New()
}

func TestSharedConfigRoundTrip(t *testing.T) {
	store := newTestRedis(t)
	ctx := context.Background()

	payload := `{"case":"case_skx007","dial":"dial_black"}`
	if err := store.SetSharedConfig(ctx, "abc123", payload, time.Hour); err != nil {
		t.Fatalf("set shared config: %v", err)
	}

	got, err := store.GetSharedConfig(ctx, "abc123")
	if err != nil {
		t.Fatalf("get shared config: %v", err)
	}
	if got != payload {
		t.Fatalf("payload mismatch: got %q", got)
	}
}

func TestSharedConfigMissingCode(t *testing.T) {
	store := newTestRedis(t)

	_, err := store.GetSharedConfig(context.Background(), "missing")
	if !errors.Is(err, ErrShareCodeNotFound) {
		t.Fatalf("expected ErrShareCodeNotFound, got %v", err)
	}
}

func TestSharedConfigDelete(t *testing.T) {
	store := newTestRedis(t)
	ctx := context.Background()

	if err := store.SetSharedConfig(ctx, "gone", "{}", time.Hour); err != nil {
		t.Fatalf("set shared config: %v", err)
	}
	if err := store.DeleteSharedConfig(ctx, "gone"); err != nil {
		t.Fatalf("delete shared config: %v", err)
	}
	if _, err := store.GetSharedConfig(ctx, "gone"); !errors.Is(err, ErrShareCodeNotFound) {
		t.Fatalf("expected ErrShareCodeNotFound after delete, got %v", err)
	}
}
