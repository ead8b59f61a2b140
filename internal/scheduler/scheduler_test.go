package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Verderen/MoneyHiver/internal/config"
)

func noop(context.Context) error { return nil }

// TestRefreshJobs tests job set composition.
func TestRefreshJobs(t *testing.T) {
	cfg := config.RefreshConfig{
		CryptoInterval:   5 * time.Second,
		CurrencyInterval: 10 * time.Second,
		StockInterval:    30 * time.Second,
		AlertInterval:    5 * time.Second,
	}

	t.Run("includes the sweep when configured", func(t *testing.T) {
		jobs := RefreshJobs(cfg, noop, noop, noop, noop)
		if len(jobs) != 4 {
			t.Fatalf("Expected 4 jobs, got %d", len(jobs))
		}
		if jobs[3].Name != "alert-sweep" {
			t.Errorf("Expected the sweep job last, got %q", jobs[3].Name)
		}
	})

	t.Run("omits the sweep when alerting is disabled", func(t *testing.T) {
		jobs := RefreshJobs(cfg, noop, noop, noop, nil)
		if len(jobs) != 3 {
			t.Fatalf("Expected 3 jobs, got %d", len(jobs))
		}
		for _, job := range jobs {
			if job.Name == "alert-sweep" {
				t.Error("Expected no sweep job")
			}
		}
	})
}

// TestScheduler_Run tests that registered jobs actually fire.
func TestScheduler_Run(t *testing.T) {
	var runs atomic.Int64

	s, err := New([]Job{
		{
			Name:     "tick",
			Interval: 10 * time.Millisecond,
			Run: func(context.Context) error {
				runs.Add(1)
				return nil
			},
		},
		{Name: "disabled", Interval: 0, Run: func(context.Context) error {
			t.Error("Job with zero interval must not run")
			return nil
		}},
	})
	if err != nil {
		t.Fatalf("New() returned unexpected error: %v", err)
	}

	s.Start()
	time.Sleep(60 * time.Millisecond)
	s.Stop()

	if runs.Load() == 0 {
		t.Error("Expected the job to run at least once")
	}
}
