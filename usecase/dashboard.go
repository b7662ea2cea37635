package usecase

import (
	"context"

	"instituteapi/model"
	"instituteapi/repository"
)

// Counter is the slice of a store the dashboard needs
type Counter interface {
	Count(ctx context.Context, filter repository.Filter) (int64, error)
}

type DashboardService struct {
	Events          Counter
	News            Counter
	Publications    Counter
	JournalArticles Counter
	JournalVolumes  Counter
	Staff           Counter
	ResourcePersons Counter
	Users           Counter
}

func (s *DashboardService) Stats(ctx context.Context) (*model.DashboardStats, error) {
	var stats model.DashboardStats
	counts := []struct {
		counter Counter
		filter  repository.Filter
		dest    *int64
	}{
		{s.Events, nil, &stats.Events},
		{s.News, repository.Filter{"status": model.NewsPublished}, &stats.PublishedNews},
		{s.News, repository.Filter{"status": model.NewsDraft}, &stats.DraftNews},
		{s.Publications, nil, &stats.Publications},
		{s.JournalArticles, nil, &stats.JournalArticles},
		{s.JournalVolumes, nil, &stats.JournalVolumes},
		{s.Staff, nil, &stats.Staff},
		{s.ResourcePersons, nil, &stats.ResourcePersons},
		{s.Users, nil, &stats.Users},
	}

	for _, c := range counts {
		if c.counter == nil {
			continue
		}
		n, err := c.counter.Count(ctx, c.filter)
		if err != nil {
			return nil, err
		}
		*c.dest = n
	}
	return &stats, nil
}
