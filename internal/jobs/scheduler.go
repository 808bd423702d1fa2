package jobs

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
	"github.com/wrdo/hunt/internal/cache"
	"github.com/wrdo/hunt/internal/marketsession"
	"github.com/wrdo/hunt/internal/services"
	"github.com/wrdo/hunt/internal/ws"
)

// Schedules in exchange-local time. The close job runs after the 16:00
// regular close so the day's final bar is settled.
const (
	closeSchedule  = "30 16 * * MON-FRI"
	newsSchedule   = "*/15 * * * *"
	refreshTimeout = 30 * time.Second
)

// Scheduler runs the recurring maintenance jobs: the post-close rollover and
// the periodic news refresh.
type Scheduler struct {
	cron     *cron.Cron
	memCache *cache.MemoryCache
	newsSvc  *services.NewsService
	hub      *ws.Hub
}

// NewScheduler creates a Scheduler with jobs registered but not started.
func NewScheduler(memCache *cache.MemoryCache, newsSvc *services.NewsService, hub *ws.Hub) (*Scheduler, error) {
	loc, err := time.LoadLocation(marketsession.ExchangeZone)
	if err != nil {
		return nil, err
	}

	s := &Scheduler{
		cron:     cron.New(cron.WithLocation(loc)),
		memCache: memCache,
		newsSvc:  newsSvc,
		hub:      hub,
	}

	if _, err := s.cron.AddFunc(closeSchedule, s.postClose); err != nil {
		return nil, err
	}
	if _, err := s.cron.AddFunc(newsSchedule, s.refreshNews); err != nil {
		return nil, err
	}
	return s, nil
}

// Start launches the cron loop in its own goroutine.
func (s *Scheduler) Start() {
	s.cron.Start()
	log.Info("Job scheduler started")
}

// Stop halts the cron loop and waits for running jobs to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	log.Info("Job scheduler stopped")
}

// postClose rolls the dashboard over to the settled trading day: cached
// intraday state is dropped and clients are told to refetch.
func (s *Scheduler) postClose() {
	log.Info("Running post-close rollover")
	s.memCache.Clear()
	s.hub.Publish(ws.TopicNotifications, "rollover", map[string]string{
		"message": "daily data rolled over, refresh your views",
	})
}

// refreshNews refetches headlines and pushes them to notification clients so
// the feed updates without polling.
func (s *Scheduler) refreshNews() {
	ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
	defer cancel()

	items, degraded := s.newsSvc.Refresh(ctx)
	if degraded {
		log.Warn("News refresh degraded, serving generated headlines")
	}
	if len(items) > 0 {
		s.hub.Publish(ws.TopicNotifications, "news", items)
	}
}
