package numerator

import (
	"context"
	"fmt"
	"testing"
	"time"

	corenumerator "borequote/internal/core/numerator"
	"borequote/internal/infrastructure/storage"
	"borequote/internal/infrastructure/storage/memory"
)

var testNow = time.Date(2026, time.June, 1, 12, 0, 0, 0, time.UTC)

func TestNextNumber_Sequence(t *testing.T) {
	svc := New(memory.New())
	ctx := context.Background()
	cfg := corenumerator.DefaultConfig("BQ")

	seen := make(map[string]bool)
	for i := 1; i <= 5; i++ {
		num, err := svc.NextNumber(ctx, cfg, testNow)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := fmt.Sprintf("BQ26%04d", i)
		if num != want {
			t.Errorf("call %d: expected %s, got %s", i, want, num)
		}
		if seen[num] {
			t.Errorf("number %s issued twice", num)
		}
		seen[num] = true
	}
}

func TestNextNumber_SurvivesRestart(t *testing.T) {
	provider := memory.New()
	ctx := context.Background()
	cfg := corenumerator.DefaultConfig("BQ")

	first := New(provider)
	if _, err := first.NextNumber(ctx, cfg, testNow); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := first.NextNumber(ctx, cfg, testNow); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// A fresh service over the same storage continues the sequence.
	second := New(provider)
	num, err := second.NextNumber(ctx, cfg, testNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if num != "BQ260003" {
		t.Errorf("expected BQ260003 after restart, got %s", num)
	}
}

func TestSetNextNumber(t *testing.T) {
	svc := New(memory.New())
	ctx := context.Background()
	cfg := corenumerator.DefaultConfig("BQ")

	if err := svc.SetNextNumber(ctx, 100); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	num, err := svc.NextNumber(ctx, cfg, testNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if num != "BQ260100" {
		t.Errorf("expected BQ260100, got %s", num)
	}

	if err := svc.SetNextNumber(ctx, 0); err == nil {
		t.Error("expected error for non-positive next number")
	}
}

func TestNextNumber_CorruptCounterRestartsAtOne(t *testing.T) {
	provider := memory.New()
	provider.SetRaw(storage.NamespaceCounter, []byte("not a number"))

	svc := New(provider)
	num, err := svc.NextNumber(context.Background(), corenumerator.DefaultConfig("BQ"), testNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if num != "BQ260001" {
		t.Errorf("expected BQ260001, got %s", num)
	}
}

func TestNextNumber_PersistFailure(t *testing.T) {
	provider := memory.New()
	provider.StoreErr = fmt.Errorf("disk full")

	svc := New(provider)
	if _, err := svc.NextNumber(context.Background(), corenumerator.DefaultConfig("BQ"), testNow); err == nil {
		t.Error("expected persistence failure to propagate")
	}
}
