package dashboard

import (
	"context"
	"time"
)

type Service struct {
	Repository Repository
}

type DashboardResponse struct {
	Counts          *Counts          `json:"counts"`
	Receivables     *Receivables     `json:"receivables"`
	RecentServices  []RecentService  `json:"recentServices"`
	DueInstallments []DueInstallment `json:"dueInstallments"`
}

func (s *Service) GetDashboard(ctx context.Context) (*DashboardResponse, error) {
	counts, err := s.Repository.GetCounts(ctx)
	if err != nil {
		return nil, err
	}

	receivables, err := s.Repository.GetReceivables(ctx)
	if err != nil {
		return nil, err
	}

	recent, err := s.Repository.GetRecentServices(ctx, 5)
	if err != nil {
		return nil, err
	}

	due, err := s.Repository.GetDueInstallments(ctx, time.Now().AddDate(0, 0, 7), 10)
	if err != nil {
		return nil, err
	}

	return &DashboardResponse{
		Counts:          counts,
		Receivables:     receivables,
		RecentServices:  recent,
		DueInstallments: due,
	}, nil
}
