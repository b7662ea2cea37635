package usecase

import (
	"context"
	"time"

	"instituteapi/model"
	"instituteapi/repository"
	"instituteapi/utils"
)

// Document is what the generic content service needs from a stored type
type Document[T any] interface {
	*T
	Prepare(now time.Time)
	Validate() error
	Meta() *model.Base
}

// ContentService implements the CRUD contract shared by every collection
type ContentService[T any, PT Document[T]] struct {
	Store    repository.Store[T]
	Resource string
	Sort     []repository.Sort
	// DeleteFields are set alongside deletedAt on soft delete
	DeleteFields map[string]any
	Now          func() time.Time
}

func NewContentService[T any, PT Document[T]](store repository.Store[T], resource string, sort ...repository.Sort) *ContentService[T, PT] {
	return &ContentService[T, PT]{
		Store:    store,
		Resource: resource,
		Sort:     sort,
		Now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *ContentService[T, PT]) now() time.Time {
	if s.Now == nil {
		return time.Now().UTC()
	}
	return s.Now()
}

func (s *ContentService[T, PT]) List(ctx context.Context, filter repository.Filter, page Page) (PageResult[T], error) {
	page = page.Normalize()

	total, err := s.Store.Count(ctx, filter)
	if err != nil {
		return PageResult[T]{}, err
	}
	items, err := s.Store.Find(ctx, repository.Query{
		Filter: filter,
		Sort:   s.Sort,
		Skip:   page.skip(),
		Limit:  int64(page.Limit),
	})
	if err != nil {
		return PageResult[T]{}, err
	}
	return PageResult[T]{Items: items, Total: total, Page: page.Page, Limit: page.Limit}, nil
}

// Latest returns at most limit documents in the service's default order
func (s *ContentService[T, PT]) Latest(ctx context.Context, filter repository.Filter, limit int) ([]T, error) {
	return s.Store.Find(ctx, repository.Query{
		Filter: filter,
		Sort:   s.Sort,
		Limit:  int64(LatestLimit(limit)),
	})
}

func (s *ContentService[T, PT]) Get(ctx context.Context, id string) (*T, error) {
	oid, err := ParseID(id)
	if err != nil {
		return nil, err
	}
	doc, err := s.Store.FindByID(ctx, oid)
	return doc, storeErr(err)
}

func (s *ContentService[T, PT]) Create(ctx context.Context, doc *T) (*T, error) {
	now := s.now()
	p := PT(doc)
	p.Prepare(now)
	if err := validate(p); err != nil {
		return nil, err
	}
	p.Meta().Init(now)

	if err := s.Store.Insert(ctx, doc); err != nil {
		return nil, storeErr(err)
	}
	utils.TrackContentOperation(s.Resource, "create")
	return doc, nil
}

// Update loads the live document, applies mutate, re-validates and replaces it.
// Concurrent updates are last-write-wins.
func (s *ContentService[T, PT]) Update(ctx context.Context, id string, mutate func(*T)) (*T, error) {
	doc, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	p := PT(doc)
	meta := *p.Meta()
	mutate(doc)

	now := s.now()
	p.Prepare(now)
	if err := validate(p); err != nil {
		return nil, err
	}
	base := p.Meta()
	base.ID = meta.ID
	base.CreatedAt = meta.CreatedAt
	base.DeletedAt = nil
	base.Touch(now)

	if err := s.Store.Replace(ctx, meta.ID, doc); err != nil {
		return nil, storeErr(err)
	}
	utils.TrackContentOperation(s.Resource, "update")
	return doc, nil
}

func (s *ContentService[T, PT]) Delete(ctx context.Context, id string) error {
	oid, err := ParseID(id)
	if err != nil {
		return err
	}
	if err := s.Store.SoftDelete(ctx, oid, s.now(), s.DeleteFields); err != nil {
		return storeErr(err)
	}
	utils.TrackContentOperation(s.Resource, "delete")
	return nil
}

func (s *ContentService[T, PT]) Count(ctx context.Context, filter repository.Filter) (int64, error) {
	return s.Store.Count(ctx, filter)
}

func (s *ContentService[T, PT]) Categories(ctx context.Context, filter repository.Filter) ([]string, error) {
	return s.Store.Distinct(ctx, "category", filter)
}

func (s *ContentService[T, PT]) ByCategory(ctx context.Context, category string, filter repository.Filter, page Page) (PageResult[T], error) {
	f := repository.Filter{"category": category}
	for k, v := range filter {
		f[k] = v
	}
	return s.List(ctx, f, page)
}
