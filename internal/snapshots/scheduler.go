package snapshots

import (
	"log"
	"time"

	"gorm.io/gorm"
)

// Scheduler runs periodic snapshots in the background
type Scheduler struct {
	Manager  *Manager
	Interval time.Duration
	db       *gorm.DB
	ticker   *time.Ticker
	done     chan bool
	stopChan chan bool
}

// NewScheduler creates a snapshot scheduler
func NewScheduler(manager *Manager, db *gorm.DB, interval time.Duration) *Scheduler {
	if interval <= 0 {
		interval = 24 * time.Hour
	}
	return &Scheduler{
		Manager:  manager,
		Interval: interval,
		db:       db,
		done:     make(chan bool, 1),
		stopChan: make(chan bool, 1),
	}
}

// Start begins the scheduler in a goroutine and returns a done
// channel signalled when the scheduler stops
func (s *Scheduler) Start() chan bool {
	go func() {
		s.ticker = time.NewTicker(s.Interval)
		defer s.ticker.Stop()

		// Run an initial snapshot immediately
		if path, err := s.Manager.CreateSnapshot(s.db); err != nil {
			log.Printf("initial snapshot failed: %v", err)
		} else {
			log.Printf("snapshot written: %s", path)
		}

		for {
			select {
			case <-s.stopChan:
				s.done <- true
				return
			case <-s.ticker.C:
				if path, err := s.Manager.CreateSnapshot(s.db); err != nil {
					log.Printf("scheduled snapshot failed: %v", err)
				} else {
					log.Printf("snapshot written: %s", path)
				}
			}
		}
	}()

	return s.done
}

// Stop stops the scheduler
func (s *Scheduler) Stop() {
	select {
	case s.stopChan <- true:
	default:
	}
}
