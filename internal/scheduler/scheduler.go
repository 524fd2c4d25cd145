package scheduler

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/dkruglov/month-advisor/internal/recommend"
)

// Scheduler periodically prewarms the observation cache for configured
// places so first requests against them are served from memory.
type Scheduler struct {
	scheduler *gocron.Scheduler
	service   *recommend.Service
	places    []string
	year      int
	interval  time.Duration
}

// New creates a new Scheduler.
func New(places []string, year int, interval time.Duration, service *recommend.Service) *Scheduler {
	s := gocron.NewScheduler(time.UTC)
	return &Scheduler{
		scheduler: s,
		service:   service,
		places:    places,
		year:      year,
		interval:  interval,
	}
}

// Start schedules the periodic prewarm job and starts the underlying
// scheduler. With no configured places nothing is scheduled.
func (s *Scheduler) Start() error {
	if len(s.places) == 0 {
		log.Println("scheduler: no prewarm places configured; nothing to schedule")
		return nil
	}

	interval := s.interval
	if interval <= 0 {
		interval = 6 * time.Hour
	}

	_, err := s.scheduler.Every(interval).Do(func() {
		log.Println("scheduler: running cache prewarm job")

		var wg sync.WaitGroup
		for _, place := range s.places {
			place := place
			wg.Add(1)
			go func() {
				defer wg.Done()

				ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
				defer cancel()

				if err := s.service.Prewarm(ctx, place, s.year); err != nil {
					log.Printf("scheduler: prewarm failed for %q: %v", place, err)
				}
			}()
		}
		wg.Wait()
		log.Println("scheduler: completed cache prewarm job")
	})
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	return nil
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}
