package fanout

import (
	"context"
	"errors"
	"reflect"
	"sync/atomic"
	"testing"
	"time"
)

func TestMapPreservesInputOrder(t *testing.T) {
	// r3 finishes first, r1 last.
	delays := map[string]time.Duration{
		"r1": 60 * time.Millisecond,
		"r2": 30 * time.Millisecond,
		"r3": 0,
	}

	var finished []string
	done := make(chan string, 3)

	got, err := Map(context.Background(), []string{"r1", "r2", "r3"}, func(ctx context.Context, ref string) (string, error) {
		time.Sleep(delays[ref])
		done <- ref
		return "detail(" + ref + ")", nil
	})
	if err != nil {
		t.Fatalf("Map() error: %v", err)
	}
	close(done)
	for ref := range done {
		finished = append(finished, ref)
	}

	want := []string{"detail(r1)", "detail(r2)", "detail(r3)"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Map() = %v, want %v", got, want)
	}
	if finished[0] != "r3" {
		t.Errorf("expected r3 to complete first, completion order was %v", finished)
	}
}

func TestMapStartsAllTasksConcurrently(t *testing.T) {
	const n = 20
	var running, peak atomic.Int32
	release := make(chan struct{})

	go func() {
		deadline := time.After(2 * time.Second)
		for running.Load() < n {
			select {
			case <-deadline:
				close(release)
				return
			default:
				time.Sleep(time.Millisecond)
			}
		}
		close(release)
	}()

	in := make([]int, n)
	_, err := Map(context.Background(), in, func(ctx context.Context, _ int) (int, error) {
		cur := running.Add(1)
		for {
			p := peak.Load()
			if cur <= p || peak.CompareAndSwap(p, cur) {
				break
			}
		}
		<-release
		return 0, nil
	})
	if err != nil {
		t.Fatalf("Map() error: %v", err)
	}
	if peak.Load() != n {
		t.Errorf("peak concurrency = %d, want %d", peak.Load(), n)
	}
}

func TestMapAllOrNothing(t *testing.T) {
	errR2 := errors.New("r2 failed")

	got, err := Map(context.Background(), []string{"r1", "r2", "r3"}, func(ctx context.Context, ref string) (string, error) {
		if ref == "r2" {
			return "", errR2
		}
		return "detail(" + ref + ")", nil
	})
	if !errors.Is(err, errR2) {
		t.Fatalf("Map() error = %v, want %v", err, errR2)
	}
	if got != nil {
		t.Errorf("Map() returned partial results %v", got)
	}
}

func TestMapCancelsSiblingsOnFailure(t *testing.T) {
	var cancelled atomic.Bool

	_, err := Map(context.Background(), []int{1, 2}, func(ctx context.Context, i int) (int, error) {
		if i == 1 {
			return 0, errors.New("fail fast")
		}
		select {
		case <-ctx.Done():
			cancelled.Store(true)
			return 0, ctx.Err()
		case <-time.After(2 * time.Second):
			return i, nil
		}
	})
	if err == nil || err.Error() != "fail fast" {
		t.Fatalf("Map() error = %v, want fail fast", err)
	}
	if !cancelled.Load() {
		t.Error("sibling task was not cancelled")
	}
}

func TestMapEmptyInput(t *testing.T) {
	got, err := Map(context.Background(), []string{}, func(ctx context.Context, s string) (string, error) {
		t.Fatal("fn must not be called")
		return "", nil
	})
	if err != nil {
		t.Fatalf("Map() error: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("Map() = %#v, want empty non-nil slice", got)
	}
}
