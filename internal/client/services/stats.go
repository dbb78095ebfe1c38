package services

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/geeksadmin/internal/client/client"
	"github.com/dmitrijs2005/geeksadmin/internal/client/models"
)

type statsResponse struct {
	Data struct {
		GeekerCount   int `json:"geekerCount"`
		SeekerCount   int `json:"seekerCount"`
		AcceptedCount int `json:"acceptedCount"`
		PendingCount  int `json:"pendingCount"`
	} `json:"data"`
}

// StatsService reads the dashboard summary.
type StatsService struct {
	client client.Client
}

func NewStatsService(c client.Client) *StatsService {
	return &StatsService{client: c}
}

// Summary returns the counters for the given date range. Zero times leave
// the bound open.
func (s *StatsService) Summary(ctx context.Context, ac models.AuthContext, from, to time.Time) (models.Stats, error) {
	f := models.FilterState{From: from, To: to}

	var resp statsResponse
	if err := s.client.Get(ctx, ac, "/admin/stats", f.DateParams(), &resp); err != nil {
		return models.Stats{}, fmt.Errorf("load stats: %w", err)
	}
	return models.Stats{
		GeekerCount:   resp.Data.GeekerCount,
		SeekerCount:   resp.Data.SeekerCount,
		AcceptedCount: resp.Data.AcceptedCount,
		PendingCount:  resp.Data.PendingCount,
	}, nil
}
