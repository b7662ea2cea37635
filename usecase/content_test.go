package usecase

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"instituteapi/model"
	"instituteapi/repository"
	"instituteapi/testutils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func sampleNews(title string) *model.NewsBlog {
	return &model.NewsBlog{
		Title:       title,
		Description: "body",
		Category:    "Research",
		Authors:     []model.Author{{Name: "Dr. Rao"}},
	}
}

func TestContentServiceLifecycle(t *testing.T) {
	ctx := context.Background()
	store := testutils.NewMemStore[model.NewsBlog]()
	svc := NewNewsService(store)
	svc.Now = fixedClock(time.Date(2024, 3, 10, 9, 30, 0, 0, time.UTC))

	created, err := svc.Create(ctx, sampleNews("  Annual Report  "))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.ID.IsZero() || created.Title != "Annual Report" {
		t.Fatalf("create did not prepare the document: %+v", created)
	}
	if created.Status != model.NewsDraft || created.Date != "2024-03-10" || created.Time != "09:30" {
		t.Fatalf("defaults not applied: %+v", created)
	}

	id := created.ID.Hex()
	svc.Now = fixedClock(time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC))
	updated, err := svc.Update(ctx, id, func(n *model.NewsBlog) { n.Status = model.NewsPublished })
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Status != model.NewsPublished || updated.Title != "Annual Report" {
		t.Fatalf("partial update lost fields: %+v", updated)
	}
	if !updated.CreatedAt.Equal(created.CreatedAt) || !updated.UpdatedAt.After(created.UpdatedAt) {
		t.Fatalf("timestamps wrong: created=%v updated=%v", updated.CreatedAt, updated.UpdatedAt)
	}

	if err := svc.Delete(ctx, id); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := svc.Get(ctx, id); !errors.Is(err, ErrNotFound) {
		t.Fatalf("soft-deleted doc should be hidden, got %v", err)
	}
	if _, err := svc.Update(ctx, id, func(*model.NewsBlog) {}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("update of deleted doc should 404, got %v", err)
	}
	if err := svc.Delete(ctx, id); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second delete should 404, got %v", err)
	}
	if store.Len() != 1 {
		t.Fatalf("soft delete should keep the document, store has %d", store.Len())
	}
}

func TestContentServiceValidation(t *testing.T) {
	svc := NewNewsService(testutils.NewMemStore[model.NewsBlog]())

	news := sampleNews("No authors")
	news.Authors = nil
	_, err := svc.Create(context.Background(), news)

	var verr *ValidationError
	if !errors.As(err, &verr) || !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if _, ok := verr.Fields["authors"]; !ok {
		t.Fatalf("expected authors error, got %v", verr.Fields)
	}
}

func TestContentServiceUpdateRevalidates(t *testing.T) {
	ctx := context.Background()
	svc := NewEventService(testutils.NewMemStore[model.Event]())

	event, err := svc.Create(ctx, &model.Event{Title: "Seminar", Description: "d", Date: "2024-05-01"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	_, err = svc.Update(ctx, event.ID.Hex(), func(e *model.Event) { e.RegistrationLink = "not a link" })
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}

	stored, _ := svc.Get(ctx, event.ID.Hex())
	if stored.RegistrationLink != "" {
		t.Fatal("invalid update was persisted")
	}
}

func TestGetMalformedID(t *testing.T) {
	svc := NewPublicationService(testutils.NewMemStore[model.Publication]())
	for _, id := range []string{"", "123", "zzzzzzzzzzzzzzzzzzzzzzzz"} {
		if _, err := svc.Get(context.Background(), id); !errors.Is(err, ErrNotFound) {
			t.Errorf("id %q: expected ErrNotFound, got %v", id, err)
		}
	}
	if _, err := svc.Get(context.Background(), primitive.NewObjectID().Hex()); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown id: expected ErrNotFound, got %v", err)
	}
}

func TestListPaginationAndCategories(t *testing.T) {
	ctx := context.Background()
	svc := NewNewsService(testutils.NewMemStore[model.NewsBlog]())

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, cat := range []string{"Research", "Events", "Research", "Outreach", "Research"} {
		svc.Now = fixedClock(base.Add(time.Duration(i) * time.Hour))
		n := sampleNews("item")
		n.Category = cat
		if _, err := svc.Create(ctx, n); err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
	}

	page, err := svc.List(ctx, nil, Page{Page: 2, Limit: 2})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if page.Total != 5 || len(page.Items) != 2 || page.Page != 2 {
		t.Fatalf("unexpected page: total=%d items=%d page=%d", page.Total, len(page.Items), page.Page)
	}
	if !page.Items[0].CreatedAt.After(page.Items[1].CreatedAt) {
		t.Fatal("list should be newest first")
	}

	beyond, err := svc.List(ctx, nil, Page{Page: math.MaxInt, Limit: 2})
	if err != nil {
		t.Fatalf("list beyond the last page: %v", err)
	}
	if len(beyond.Items) != 0 || beyond.Page != MaxPage || beyond.Total != 5 {
		t.Fatalf("huge page should be empty: page=%d items=%d total=%d", beyond.Page, len(beyond.Items), beyond.Total)
	}

	cats, _ := svc.Categories(ctx, nil)
	if len(cats) != 3 || cats[0] != "Events" || cats[2] != "Research" {
		t.Fatalf("unexpected categories %v", cats)
	}

	research, _ := svc.ByCategory(ctx, "Research", nil, Page{})
	if research.Total != 3 || research.Limit != DefaultPageLimit {
		t.Fatalf("unexpected category page: %+v", research)
	}
}

func TestPageNormalize(t *testing.T) {
	tests := []struct {
		in   Page
		want Page
	}{
		{Page{}, Page{Page: 1, Limit: DefaultPageLimit}},
		{Page{Page: 3, Limit: 500}, Page{Page: 3, Limit: MaxPageLimit}},
		{Page{Page: -1, Limit: 10}, Page{Page: 1, Limit: 10}},
		{Page{Page: math.MaxInt, Limit: 100}, Page{Page: MaxPage, Limit: MaxPageLimit}},
	}
	for _, tt := range tests {
		if got := tt.in.Normalize(); got != tt.want {
			t.Errorf("Normalize(%+v) = %+v, want %+v", tt.in, got, tt.want)
		}
	}

	if skip := (Page{Page: math.MaxInt, Limit: math.MaxInt}).Normalize().skip(); skip <= 0 {
		t.Errorf("skip for a huge page = %d, want positive", skip)
	}

	if LatestLimit(0) != DefaultLatestLimit || LatestLimit(500) != MaxLatestLimit || LatestLimit(3) != 3 {
		t.Error("LatestLimit clamping is wrong")
	}
}

func TestStoreErrMapping(t *testing.T) {
	if !errors.Is(storeErr(repository.ErrDuplicate), ErrConflict) {
		t.Error("duplicate should map to conflict")
	}
	if !errors.Is(storeErr(repository.ErrNotFound), ErrNotFound) {
		t.Error("not found should map to not found")
	}
	other := errors.New("boom")
	if storeErr(other) != other {
		t.Error("other errors pass through")
	}
}
