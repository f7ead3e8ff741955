package storage

import (
	"github.com/passgauge/passgauge/pkg/events"
	"github.com/passgauge/passgauge/pkg/models"
	"github.com/sirupsen/logrus"
)

type Driver interface {
	Init(logger *logrus.Logger, settings map[string]string) error
	AddCheckEvent(event events.CheckEvent) error
	GetRecentChecks(limit int) ([]events.CheckEvent, error)
	GetStats() (models.DashboardStats, error)
}
