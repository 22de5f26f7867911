package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hiroy72-cloud/ai-news-dashboard/core/interfaces"
)

func newTestCache() *MemoryCache {
	return NewMemoryCache(time.Minute, time.Minute)
}

func TestNewMemoryCache(t *testing.T) {
	cache := newTestCache()

	if cache == nil {
		t.Error("NewMemoryCache returned nil")
	}
}

func TestMemoryCache_Get_ExistingKey(t *testing.T) {
	cache := newTestCache()
	ctx := context.Background()

	key := "news:LLM:15"
	value := []byte(`{"articles":[]}`)
	if err := cache.Set(ctx, key, value, time.Hour); err != nil {
		t.Fatalf("Failed to set value: %v", err)
	}

	got, err := cache.Get(ctx, key)
	if err != nil {
		t.Errorf("Get returned error: %v", err)
	}
	if string(got) != string(value) {
		t.Errorf("Get returned %s, want %s", string(got), string(value))
	}
}

func TestMemoryCache_Get_NonExistentKey(t *testing.T) {
	cache := newTestCache()

	got, err := cache.Get(context.Background(), "non-existent")

	if !errors.Is(err, interfaces.ErrCacheMiss) {
		t.Errorf("Get error = %v, want ErrCacheMiss", err)
	}
	if got != nil {
		t.Error("Get should return nil value for non-existent key")
	}
}

func TestMemoryCache_Get_ExpiredKey(t *testing.T) {
	cache := newTestCache()
	ctx := context.Background()

	if err := cache.Set(ctx, "short-lived", []byte("v"), 10*time.Millisecond); err != nil {
		t.Fatalf("Failed to set value: %v", err)
	}

	time.Sleep(20 * time.Millisecond)

	got, err := cache.Get(ctx, "short-lived")

	if !errors.Is(err, interfaces.ErrCacheMiss) {
		t.Errorf("Get error = %v, want ErrCacheMiss", err)
	}
	if got != nil {
		t.Error("Get should return nil value for expired key")
	}
}

func TestMemoryCache_Get_ReturnsCopy(t *testing.T) {
	cache := newTestCache()
	ctx := context.Background()

	if err := cache.Set(ctx, "key", []byte("original"), time.Hour); err != nil {
		t.Fatalf("Failed to set value: %v", err)
	}

	first, _ := cache.Get(ctx, "key")
	first[0] = 'X'

	second, _ := cache.Get(ctx, "key")
	if string(second) != "original" {
		t.Errorf("cached value mutated through returned slice: %s", string(second))
	}
}

func TestMemoryCache_Set_CopiesValue(t *testing.T) {
	cache := newTestCache()
	ctx := context.Background()

	value := []byte("original")
	if err := cache.Set(ctx, "key", value, time.Hour); err != nil {
		t.Fatalf("Failed to set value: %v", err)
	}
	value[0] = 'X'

	got, _ := cache.Get(ctx, "key")
	if string(got) != "original" {
		t.Errorf("cached value mutated through caller slice: %s", string(got))
	}
}

func TestMemoryCache_Set_ZeroTTLNeverExpires(t *testing.T) {
	cache := NewMemoryCache(10*time.Millisecond, time.Minute)
	ctx := context.Background()

	if err := cache.Set(ctx, "forever", []byte("v"), 0); err != nil {
		t.Fatalf("Failed to set value: %v", err)
	}

	time.Sleep(20 * time.Millisecond)

	if _, err := cache.Get(ctx, "forever"); err != nil {
		t.Errorf("zero TTL entry should not expire, got %v", err)
	}
}

func TestMemoryCache_Delete(t *testing.T) {
	cache := newTestCache()
	ctx := context.Background()

	if err := cache.Set(ctx, "key", []byte("v"), time.Hour); err != nil {
		t.Fatalf("Failed to set value: %v", err)
	}

	if err := cache.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete returned error: %v", err)
	}

	if _, err := cache.Get(ctx, "key"); !errors.Is(err, interfaces.ErrCacheMiss) {
		t.Errorf("Get after delete error = %v, want ErrCacheMiss", err)
	}
}

func TestMemoryCache_Delete_NonExistentKey(t *testing.T) {
	cache := newTestCache()

	if err := cache.Delete(context.Background(), "missing"); err != nil {
		t.Errorf("Delete of missing key returned error: %v", err)
	}
}

func TestMemoryCache_CancelledContext(t *testing.T) {
	cache := newTestCache()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := cache.Get(ctx, "key"); err == nil {
		t.Error("Get should fail with a cancelled context")
	}
	if err := cache.Set(ctx, "key", []byte("v"), time.Hour); err == nil {
		t.Error("Set should fail with a cancelled context")
	}
	if err := cache.Delete(ctx, "key"); err == nil {
		t.Error("Delete should fail with a cancelled context")
	}
}
