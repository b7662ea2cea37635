package usecase

import (
	"context"

	"instituteapi/model"
	"instituteapi/repository"
)

type JournalArticleService struct {
	*ContentService[model.JournalArticle, *model.JournalArticle]
}

func NewJournalArticleService(store repository.Store[model.JournalArticle]) *JournalArticleService {
	return &JournalArticleService{
		ContentService: NewContentService[model.JournalArticle, *model.JournalArticle](store, "journalarticles",
			repository.Sort{Field: "publishedDate", Desc: true},
			repository.Sort{Field: "createdAt", Desc: true},
		),
	}
}

func (s *JournalArticleService) ByVolumeIssue(ctx context.Context, volume, issue int, page Page) (PageResult[model.JournalArticle], error) {
	if volume < 1 {
		return PageResult[model.JournalArticle]{}, invalid("volume", "volume must be a positive number")
	}
	if issue < 1 {
		return PageResult[model.JournalArticle]{}, invalid("issue", "issue must be a positive number")
	}
	return s.List(ctx, repository.Filter{"volume": volume, "issue": issue}, page)
}

func (s *JournalArticleService) Stats(ctx context.Context) (*model.ArticleStats, error) {
	total, err := s.Store.Count(ctx, nil)
	if err != nil {
		return nil, err
	}
	reviewed, err := s.Store.Count(ctx, repository.Filter{"peerReviewed": true})
	if err != nil {
		return nil, err
	}
	byCategory, err := s.Store.CountBy(ctx, "category", nil)
	if err != nil {
		return nil, err
	}
	return &model.ArticleStats{Total: total, PeerReviewed: reviewed, ByCategory: byCategory}, nil
}

type JournalVolumeService struct {
	*ContentService[model.JournalVolume, *model.JournalVolume]
}

func NewJournalVolumeService(store repository.Store[model.JournalVolume]) *JournalVolumeService {
	return &JournalVolumeService{
		ContentService: NewContentService[model.JournalVolume, *model.JournalVolume](store, "journalvolumes",
			repository.Sort{Field: "publishedDate", Desc: true},
			repository.Sort{Field: "volume", Desc: true},
		),
	}
}
