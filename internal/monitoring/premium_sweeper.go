package monitoring

import (
	"fmt"
	"time"

	"github.com/isdelr/paperdeck-be/internal/services"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

// PremiumSweeper periodically downgrades users whose subscription window has
// passed. Checkout only ever turns the premium flag on; this is the path that
// turns it back off.
type PremiumSweeper struct {
	userSvc  services.UserServiceProvider
	eventSvc services.EventServiceProvider
	schedule cron.Schedule
	ticker   *time.Ticker
	done     chan bool
	nextRun  time.Time
}

// NewPremiumSweeper creates a sweeper gated on the given cron expression.
func NewPremiumSweeper(userSvc services.UserServiceProvider, eventSvc services.EventServiceProvider, cronSpec string) (*PremiumSweeper, error) {
	schedule, err := cron.ParseStandard(cronSpec)
	if err != nil {
		return nil, fmt.Errorf("invalid sweep cron expression %q: %w", cronSpec, err)
	}
	return &PremiumSweeper{
		userSvc:  userSvc,
		eventSvc: eventSvc,
		schedule: schedule,
		done:     make(chan bool),
	}, nil
}

// Run starts the sweeper's ticking loop.
func (s *PremiumSweeper) Run() {
	log.Info().Msg("Starting premium-expiry sweeper...")
	s.ticker = time.NewTicker(1 * time.Minute)
	defer s.ticker.Stop()

	// Run once immediately on start
	s.sweep()
	s.nextRun = s.schedule.Next(time.Now())

	for {
		select {
		case <-s.done:
			log.Info().Msg("Stopping premium-expiry sweeper.")
			return
		case <-s.ticker.C:
			now := time.Now()
			if now.After(s.nextRun) {
				s.sweep()
				s.nextRun = s.schedule.Next(now)
			}
		}
	}
}

// Stop halts the sweeper.
func (s *PremiumSweeper) Stop() {
	s.done <- true
}

// sweep downgrades every user whose premium_until has passed.
func (s *PremiumSweeper) sweep() {
	downgraded, err := s.userSvc.ExpirePremium(time.Now().UTC())
	if err != nil {
		log.Error().Err(err).Msg("Premium-expiry sweep failed")
		return
	}
	if downgraded > 0 {
		log.Info().Int64("users", downgraded).Msg("Expired premium subscriptions")
		msg := fmt.Sprintf("Downgraded %d users with expired premium subscriptions.", downgraded)
		s.eventSvc.CreateEvent("premium.expire", "info", msg, nil)
	}
}
