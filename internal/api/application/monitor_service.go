package application

import (
	"context"

	monitoringdomain "checkhub/internal/monitoring/domain"
)

// MonitorService handles monitor registry queries
type MonitorService struct {
	repo monitoringdomain.MonitorRepository
}

// NewMonitorService creates a new monitor service
func NewMonitorService(repo monitoringdomain.MonitorRepository) *MonitorService {
	return &MonitorService{
		repo: repo,
	}
}

// ListMonitors returns every registered monitor ordered by id
func (s *MonitorService) ListMonitors(ctx context.Context) (Envelope, error) {
	monitors, err := s.repo.ListMonitors(ctx)
	if err != nil {
		return Envelope{}, err
	}
	if monitors == nil {
		monitors = []monitoringdomain.Monitor{}
	}
	return success(MsgMonitorsGet, monitors), nil
}
