package usecase

import (
	"context"
	"fmt"

	"instituteapi/model"
	"instituteapi/repository"
)

type EventService struct {
	*ContentService[model.Event, *model.Event]
}

func NewEventService(store repository.Store[model.Event]) *EventService {
	c := NewContentService[model.Event, *model.Event](store, "events",
		repository.Sort{Field: "timestamp", Desc: true},
		repository.Sort{Field: "createdAt", Desc: true},
	)
	c.DeleteFields = map[string]any{"status": model.EventDeleted}
	return &EventService{ContentService: c}
}

// SetStatus changes only the status. Setting "deleted" soft-deletes the event.
func (s *EventService) SetStatus(ctx context.Context, id string, status model.EventStatus) (*model.Event, error) {
	if !status.Valid() {
		return nil, invalid("status", fmt.Sprintf("status must be one of: %s %s %s", model.EventActive, model.EventInactive, model.EventDeleted))
	}

	if status == model.EventDeleted {
		event, err := s.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		if err := s.Delete(ctx, id); err != nil {
			return nil, err
		}
		event.Status = model.EventDeleted
		return event, nil
	}

	return s.Update(ctx, id, func(e *model.Event) { e.Status = status })
}
