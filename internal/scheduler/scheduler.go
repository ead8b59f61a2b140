// Package scheduler runs the background refresh jobs that keep the quote
// snapshot warm and the alert sweep moving.
package scheduler

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/Verderen/MoneyHiver/internal/config"
)

// Job is one periodic refresh task.
type Job struct {
	Name     string
	Interval time.Duration
	Run      func(ctx context.Context) error
}

// Scheduler wraps a cron runner. Jobs are chained with SkipIfStillRunning
// so a slow provider never stacks concurrent fetches, and Recover so a
// panicking job never takes the process down. Failed runs are logged and
// the next tick fires on schedule.
type Scheduler struct {
	cron *cron.Cron
}

// New creates a scheduler with the given jobs registered. Jobs with a
// non-positive interval are skipped.
func New(jobs []Job) (*Scheduler, error) {
	c := cron.New(cron.WithChain(
		cron.SkipIfStillRunning(cron.DefaultLogger),
		cron.Recover(cron.DefaultLogger),
	))

	for _, job := range jobs {
		if job.Interval <= 0 {
			continue
		}

		spec := fmt.Sprintf("@every %s", job.Interval)
		if _, err := c.AddFunc(spec, runner(job)); err != nil {
			return nil, fmt.Errorf("failed to schedule job %s: %w", job.Name, err)
		}
	}

	return &Scheduler{cron: c}, nil
}

func runner(job Job) func() {
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), job.Interval+30*time.Second)
		defer cancel()

		if err := job.Run(ctx); err != nil {
			log.Printf("job %s: %v", job.Name, err)
		}
	}
}

// Start begins running jobs on their schedules.
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop stops the scheduler and waits for running jobs to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

// RefreshJobs builds the standard job set from the refresh configuration.
// The alert sweep is optional; pass a nil sweep to leave it out.
func RefreshJobs(
	cfg config.RefreshConfig,
	refreshCrypto, refreshCurrency, refreshStocks func(ctx context.Context) error,
	sweep func(ctx context.Context) error,
) []Job {
	jobs := []Job{
		{Name: "crypto-refresh", Interval: cfg.CryptoInterval, Run: refreshCrypto},
		{Name: "currency-refresh", Interval: cfg.CurrencyInterval, Run: refreshCurrency},
		{Name: "stock-refresh", Interval: cfg.StockInterval, Run: refreshStocks},
	}
	if sweep != nil {
		jobs = append(jobs, Job{Name: "alert-sweep", Interval: cfg.AlertInterval, Run: sweep})
	}
	return jobs
}
