package service

import (
	"context"
	"time"

	"blogCPT/internal/repository"
)

type HealthStatus struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

type HealthService interface {
	Check(ctx context.Context) (*HealthStatus, error)
}

type healthService struct {
	healthRepo repository.HealthRepository
}

func NewHealthService(healthRepo repository.HealthRepository) HealthService {
	return &healthService{healthRepo: healthRepo}
}

func (s *healthService) Check(ctx context.Context) (*HealthStatus, error) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := s.healthRepo.Ping(ctx); err != nil {
		return &HealthStatus{Status: "unavailable", Database: "down"}, err
	}

	return &HealthStatus{Status: "ok", Database: "up"}, nil
}
