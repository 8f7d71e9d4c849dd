package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestKey(t *testing.T) {
	if got := Key(ReadingsPrefix, 42); got != "bloodSugarReadings:42" {
		t.Errorf("Key() = %q", got)
	}
	if got := Key(DoctorsPrefix); got != "doctors" {
		t.Errorf("Key() without parts = %q", got)
	}
}

func TestMemoryStoreExpiry(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	if err := s.Set(ctx, "k", []byte("v"), time.Second); err != nil {
		t.Fatal(err)
	}
	if v, ok, _ := s.Get(ctx, "k"); !ok || string(v) != "v" {
		t.Fatalf("Get() = %q, %v", v, ok)
	}

	now = now.Add(time.Second)
	if _, ok, _ := s.Get(ctx, "k"); ok {
		t.Error("entry should have expired")
	}
}

func TestMemoryStoreInvalidatePrefix(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	for _, k := range []string{"bloodSugarReadings:1", "bloodSugarReadings:2", "medicineLogs:1"} {
		_ = s.Set(ctx, k, []byte("x"), 0)
	}

	if err := s.Invalidate(ctx, Key(ReadingsPrefix, 1)); err != nil {
		t.Fatal(err)
	}
	if _, ok, _ := s.Get(ctx, "bloodSugarReadings:1"); ok {
		t.Error("user 1 readings should be gone")
	}
	if _, ok, _ := s.Get(ctx, "bloodSugarReadings:2"); !ok {
		t.Error("user 2 readings should survive")
	}

	_ = s.Invalidate(ctx, ReadingsPrefix)
	if _, ok, _ := s.Get(ctx, "bloodSugarReadings:2"); ok {
		t.Error("all readings should be gone")
	}
	if _, ok, _ := s.Get(ctx, "medicineLogs:1"); !ok {
		t.Error("other prefixes must survive")
	}
}

func TestFetchCachesUntilInvalidated(t *testing.T) {
	ctx := context.Background()
	c := New(NewMemoryStore())
	calls := 0
	load := func(context.Context) ([]int, error) {
		calls++
		return []int{calls}, nil
	}

	first, err := Fetch(ctx, c, "k", time.Minute, load)
	if err != nil {
		t.Fatal(err)
	}
	second, _ := Fetch(ctx, c, "k", time.Minute, load)
	if calls != 1 || second[0] != first[0] {
		t.Fatalf("second fetch should hit cache: calls=%d, got %v", calls, second)
	}

	if err := c.Invalidate(ctx, "k"); err != nil {
		t.Fatal(err)
	}
	third, _ := Fetch(ctx, c, "k", time.Minute, load)
	if calls != 2 || third[0] != 2 {
		t.Errorf("fetch after invalidation should reload: calls=%d, got %v", calls, third)
	}
}

func TestFetchDoesNotCacheErrors(t *testing.T) {
	ctx := context.Background()
	c := New(NewMemoryStore())
	boom := errors.New("boom")

	if _, err := Fetch(ctx, c, "k", time.Minute, func(context.Context) (string, error) {
		return "", boom
	}); !errors.Is(err, boom) {
		t.Fatalf("error = %v, want boom", err)
	}

	v, err := Fetch(ctx, c, "k", time.Minute, func(context.Context) (string, error) {
		return "ok", nil
	})
	if err != nil || v != "ok" {
		t.Errorf("Fetch() = %q, %v", v, err)
	}
}

func TestFetchDeduplicatesConcurrentLoads(t *testing.T) {
	ctx := context.Background()
	c := New(NewMemoryStore())

	var calls atomic.Int32
	release := make(chan struct{})
	load := func(context.Context) (int, error) {
		calls.Add(1)
		<-release
		return 7, nil
	}

	const n = 8
	var started, done sync.WaitGroup
	results := make([]int, n)
	started.Add(n)
	done.Add(n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer done.Done()
			started.Done()
			results[i], _ = Fetch(ctx, c, "shared", time.Minute, load)
		}(i)
	}
	started.Wait()
	time.Sleep(20 * time.Millisecond)
	close(release)
	done.Wait()

	for i, r := range results {
		if r != 7 {
			t.Errorf("result[%d] = %d, want 7", i, r)
		}
	}
	// goroutines scheduled after the first load finished read from the cache
	if got := calls.Load(); got != 1 {
		t.Errorf("load ran %d times, want 1", got)
	}
}

type failingStore struct{}

func (failingStore) Get(context.Context, string) ([]byte, bool, error) {
	return nil, false, errors.New("down")
}
func (failingStore) Set(context.Context, string, []byte, time.Duration) error {
	return errors.New("down")
}
func (failingStore) Invalidate(context.Context, string) error { return errors.New("down") }

func TestFetchSurvivesStoreFailure(t *testing.T) {
	c := New(failingStore{})
	v, err := Fetch(context.Background(), c, "k", time.Minute, func(context.Context) (string, error) {
		return "fresh", nil
	})
	if err != nil || v != "fresh" {
		t.Errorf("Fetch() = %q, %v", v, err)
	}
	if err := c.Invalidate(context.Background(), "k"); err == nil {
		t.Error("Invalidate() should report store failure")
	}
}

func TestFetchZeroTTLDoesNotCache(t *testing.T) {
	ctx := context.Background()
	c := New(NewMemoryStore())
	calls := 0
	load := func(context.Context) (int, error) {
		calls++
		return calls, nil
	}

	_, _ = Fetch(ctx, c, "k", 0, load)
	v, _ := Fetch(ctx, c, "k", 0, load)
	if calls != 2 || v != 2 {
		t.Errorf("calls = %d, v = %d; want every fetch to load", calls, v)
	}
}

func TestMemoryStoreDropsExpiredEntries(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	for i := 0; i < 100; i++ {
		_ = s.Set(ctx, Key(DoctorsPrefix, "city", i), []byte("x"), time.Second)
	}
	now = now.Add(time.Hour)

	if _, ok, _ := s.Get(ctx, Key(DoctorsPrefix, "city", 0)); ok {
		t.Fatal("expired entry returned")
	}
	if got := len(s.entries); got != 99 {
		t.Errorf("entries after expired Get = %d, want 99", got)
	}

	_ = s.Set(ctx, "fresh", []byte("y"), time.Second)
	if got := len(s.entries); got != 1 {
		t.Errorf("entries after sweep = %d, want 1", got)
	}
}

func TestInvalidateStopsAtSeparator(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	keys := []string{Key(ReadingsPrefix, 1), Key(ReadingsPrefix, 1, "week"), Key(ReadingsPrefix, 10), Key(ReadingsPrefix, 100)}
	for _, k := range keys {
		_ = s.Set(ctx, k, []byte("x"), 0)
	}

	_ = s.Invalidate(ctx, Key(ReadingsPrefix, 1))

	tests := []struct {
		key  string
		want bool
	}{
		{Key(ReadingsPrefix, 1), false},
		{Key(ReadingsPrefix, 1, "week"), false},
		{Key(ReadingsPrefix, 10), true},
		{Key(ReadingsPrefix, 100), true},
	}
	for _, tt := range tests {
		if _, ok, _ := s.Get(ctx, tt.key); ok != tt.want {
			t.Errorf("%s present = %v, want %v", tt.key, ok, tt.want)
		}
	}
}

func TestFetchCancelledCallerDoesNotFailOthers(t *testing.T) {
	c := New(NewMemoryStore())
	started := make(chan struct{})
	release := make(chan struct{})
	load := func(ctx context.Context) (int, error) {
		close(started)
		<-release
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		return 7, nil
	}

	firstCtx, cancel := context.WithCancel(context.Background())
	firstErr := make(chan error, 1)
	go func() {
		_, err := Fetch(firstCtx, c, "k", time.Minute, load)
		firstErr <- err
	}()
	<-started

	second := make(chan int, 1)
	go func() {
		v, _ := Fetch(context.Background(), c, "k", time.Minute, load)
		second <- v
	}()
	time.Sleep(20 * time.Millisecond)

	cancel()
	if err := <-firstErr; !errors.Is(err, context.Canceled) {
		t.Errorf("cancelled caller error = %v, want context.Canceled", err)
	}
	close(release)
	if v := <-second; v != 7 {
		t.Errorf("waiting caller got %d, want 7", v)
	}
}

func TestFetchDiscardsLoadInvalidatedInFlight(t *testing.T) {
	ctx := context.Background()
	c := New(NewMemoryStore())
	var calls atomic.Int32
	started := make(chan struct{}, 1)
	release := make(chan struct{})
	load := func(context.Context) (int32, error) {
		n := calls.Add(1)
		if n == 1 {
			started <- struct{}{}
			<-release
		}
		return n, nil
	}

	done := make(chan int32, 1)
	go func() {
		v, _ := Fetch(ctx, c, "k", time.Minute, load)
		done <- v
	}()
	<-started

	if err := c.Invalidate(ctx, "k"); err != nil {
		t.Fatal(err)
	}
	close(release)
	if v := <-done; v != 1 {
		t.Fatalf("in-flight load returned %d, want 1", v)
	}

	v, _ := Fetch(ctx, c, "k", time.Minute, load)
	if v != 2 {
		t.Errorf("fetch after invalidation = %d, want a fresh load", v)
	}
}
