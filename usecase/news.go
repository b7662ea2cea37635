package usecase

import (
	"context"

	"instituteapi/model"
	"instituteapi/repository"
)

type NewsService struct {
	*ContentService[model.NewsBlog, *model.NewsBlog]
}

func NewNewsService(store repository.Store[model.NewsBlog]) *NewsService {
	c := NewContentService[model.NewsBlog, *model.NewsBlog](store, "newsblogs",
		repository.Sort{Field: "createdAt", Desc: true},
	)
	c.DeleteFields = map[string]any{"status": model.NewsDeleted}
	return &NewsService{ContentService: c}
}

// LatestPublished skips drafts
func (s *NewsService) LatestPublished(ctx context.Context, limit int) ([]model.NewsBlog, error) {
	return s.Latest(ctx, repository.Filter{"status": model.NewsPublished}, limit)
}
