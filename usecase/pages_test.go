package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"instituteapi/model"
	"instituteapi/testutils"
)

func TestPageContentUpsert(t *testing.T) {
	ctx := context.Background()
	svc := NewPageContentService[model.HomeContent, *model.HomeContent](testutils.NewMemSingleton[model.HomeContent](), "homecontents")
	svc.Now = fixedClock(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC))

	empty, err := svc.Get(ctx)
	if err != nil || empty.HeroTitle != "" {
		t.Fatalf("expected empty document, got %+v %v", empty, err)
	}

	first, err := svc.Save(ctx, func(h *model.HomeContent) {
		h.HeroTitle = "Welcome"
		h.About = "About us"
	})
	if err != nil {
		t.Fatalf("first save failed: %v", err)
	}
	if first.ID.IsZero() || first.Key != "singleton" {
		t.Fatalf("first save not initialised: %+v", first)
	}

	svc.Now = fixedClock(time.Date(2024, 2, 2, 0, 0, 0, 0, time.UTC))
	merged, err := svc.Save(ctx, func(h *model.HomeContent) { h.Mission = "Teach" })
	if err != nil {
		t.Fatalf("second save failed: %v", err)
	}
	if merged.HeroTitle != "Welcome" || merged.Mission != "Teach" {
		t.Fatalf("save should merge into the stored document: %+v", merged)
	}
	if merged.ID != first.ID || !merged.CreatedAt.Equal(first.CreatedAt) {
		t.Fatal("identity changed across saves")
	}

	_, err = svc.Save(ctx, func(h *model.HomeContent) { h.HeroImage = "ftp://nope" })
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
