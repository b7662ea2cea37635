package usecase

import (
	"context"
	"errors"
	"time"

	"instituteapi/repository"
	"instituteapi/utils"
)

// PageDocument is a singleton page body
type PageDocument[T any] interface {
	Document[T]
	SetKey(key string)
}

// PageContentService reads and upserts a singleton page document
type PageContentService[T any, PT PageDocument[T]] struct {
	Store    repository.Singleton[T]
	Resource string
	Now      func() time.Time
}

func NewPageContentService[T any, PT PageDocument[T]](store repository.Singleton[T], resource string) *PageContentService[T, PT] {
	return &PageContentService[T, PT]{
		Store:    store,
		Resource: resource,
		Now:      func() time.Time { return time.Now().UTC() },
	}
}

// Get returns an empty document until the page is first saved
func (s *PageContentService[T, PT]) Get(ctx context.Context) (*T, error) {
	doc, err := s.Store.Get(ctx)
	if errors.Is(err, repository.ErrNotFound) {
		return new(T), nil
	}
	return doc, err
}

// Save applies mutate to the current document (or an empty one) and upserts it
func (s *PageContentService[T, PT]) Save(ctx context.Context, mutate func(*T)) (*T, error) {
	doc, err := s.Store.Get(ctx)
	created := errors.Is(err, repository.ErrNotFound)
	if err != nil && !created {
		return nil, err
	}
	if created {
		doc = new(T)
	}

	p := PT(doc)
	meta := *p.Meta()
	mutate(doc)

	now := s.Now()
	p.SetKey(repository.SingletonKey)
	p.Prepare(now)
	if err := validate(p); err != nil {
		return nil, err
	}

	if created {
		p.Meta().Init(now)
	} else {
		base := p.Meta()
		base.ID = meta.ID
		base.CreatedAt = meta.CreatedAt
		base.Touch(now)
	}

	if err := s.Store.Save(ctx, doc); err != nil {
		return nil, err
	}
	utils.TrackContentOperation(s.Resource, "upsert")
	return doc, nil
}
