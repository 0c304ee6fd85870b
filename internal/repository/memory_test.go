package repository

import (
	"context"
	"sync"
	"testing"
)

func TestMemoryReportStore_GetUnseenHash(t *testing.T) {
	store := NewMemoryReportStore()
	count, err := store.Get(context.Background(), "deadbeef")
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if count != 0 {
		t.Errorf("count = %d, want 0", count)
	}
}

func TestMemoryReportStore_Increment(t *testing.T) {
	store := NewMemoryReportStore()
	ctx := context.Background()

	for want := 1; want <= 3; want++ {
		got, err := store.Increment(ctx, "deadbeef")
		if err != nil {
			t.Fatalf("Increment() error: %v", err)
		}
		if got != want {
			t.Errorf("Increment() = %d, want %d", got, want)
		}
	}

	if count, _ := store.Get(ctx, "deadbeef"); count != 3 {
		t.Errorf("Get() = %d, want 3", count)
	}
	if count, _ := store.Get(ctx, "otherhash"); count != 0 {
		t.Errorf("unrelated hash count = %d, want 0", count)
	}
}

func TestMemoryReportStore_ConcurrentIncrements(t *testing.T) {
	store := NewMemoryReportStore()
	ctx := context.Background()

	const workers = 50
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			if _, err := store.Increment(ctx, "deadbeef"); err != nil {
				t.Errorf("Increment() error: %v", err)
			}
		}()
	}
	wg.Wait()

	if count, _ := store.Get(ctx, "deadbeef"); count != workers {
		t.Errorf("count = %d, want %d (lost updates)", count, workers)
	}
}
