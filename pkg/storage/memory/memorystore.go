package memory

import (
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/passgauge/passgauge/pkg/events"
	"github.com/passgauge/passgauge/pkg/models"
	"github.com/sirupsen/logrus"
)

const defaultMaxEvents = 1000

type InMemoryStore struct {
	logger *logrus.Logger

	mutex     sync.RWMutex
	data      []events.CheckEvent
	maxEvents int
}

func (s *InMemoryStore) Init(logger *logrus.Logger, settings map[string]string) error {
	s.logger = logger
	s.maxEvents = defaultMaxEvents

	if raw, ok := settings["max_events"]; ok && raw != "" {
		maxEvents, err := strconv.Atoi(raw)
		if err != nil || maxEvents < 1 {
			return fmt.Errorf("invalid max_events setting: %q", raw)
		}
		s.maxEvents = maxEvents
	}

	return nil
}

func (s *InMemoryStore) AddCheckEvent(event events.CheckEvent) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.data = append(s.data, event)

	// Oldest events roll off once the cap is reached.
	if len(s.data) > s.maxEvents {
		s.data = s.data[len(s.data)-s.maxEvents:]
	}

	s.logger.WithFields(logrus.Fields{
		"prefix":    event.HashPrefix,
		"outcome":   event.Outcome,
		"timestamp": event.Timestamp.Format(time.DateTime),
	}).Debug("recorded check event")

	return nil
}

func (s *InMemoryStore) GetRecentChecks(limit int) ([]events.CheckEvent, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if limit < 1 || limit > len(s.data) {
		limit = len(s.data)
	}

	// Newest first.
	recent := make([]events.CheckEvent, 0, limit)
	for i := len(s.data) - 1; i >= len(s.data)-limit; i-- {
		recent = append(recent, s.data[i])
	}

	return recent, nil
}

func (s *InMemoryStore) GetStats() (models.DashboardStats, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	prefixes := make(map[string]struct{})
	stats := models.DashboardStats{}

	for _, eventEntry := range s.data {
		stats.TotalChecks++

		switch eventEntry.Outcome {
		case events.OutcomeBreached:
			stats.BreachedChecks++
		case events.OutcomeClean:
			stats.CleanChecks++
		case events.OutcomeFailed:
			stats.FailedChecks++
		}

		if eventEntry.HashPrefix != "" {
			prefixes[eventEntry.HashPrefix] = struct{}{}
		}
	}

	stats.UniquePrefixes = len(prefixes)

	return stats, nil
}
