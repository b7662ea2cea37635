// Package testutils holds in-memory doubles for the repository layer.
package testutils

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"instituteapi/model"
	"instituteapi/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemStore implements repository.Store over bson documents kept in memory.
// Documents go through a bson round trip so field names and omitempty behave like Mongo.
type MemStore[T any] struct {
	mu     sync.RWMutex
	docs   []bson.M
	unique []string
}

var _ repository.Store[model.Event] = (*MemStore[model.Event])(nil)

func NewMemStore[T any](uniqueFields ...string) *MemStore[T] {
	return &MemStore[T]{unique: uniqueFields}
}

func toM(v any) (bson.M, error) {
	raw, err := bson.Marshal(v)
	if err != nil {
		return nil, err
	}
	var m bson.M
	if err := bson.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	return m, nil
}

func fromM[T any](m bson.M) (*T, error) {
	raw, err := bson.Marshal(m)
	if err != nil {
		return nil, err
	}
	var doc T
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// normalize gives a filter value the same representation a stored field has
func normalize(v any) any {
	m, err := toM(bson.M{"v": v})
	if err != nil {
		return v
	}
	return m["v"]
}

func isLive(doc bson.M) bool {
	v, ok := doc["deletedAt"]
	return !ok || v == nil
}

func matches(doc bson.M, filter repository.Filter) bool {
	if !isLive(doc) {
		return false
	}
	for k, want := range filter {
		if fmt.Sprint(doc[k]) != fmt.Sprint(normalize(want)) {
			return false
		}
	}
	return true
}

func less(a, b any) bool {
	switch x := a.(type) {
	case primitive.DateTime:
		y, _ := b.(primitive.DateTime)
		return x < y
	case int32:
		y, _ := b.(int32)
		return x < y
	case int64:
		y, _ := b.(int64)
		return x < y
	case float64:
		y, _ := b.(float64)
		return x < y
	}
	return fmt.Sprint(a) < fmt.Sprint(b)
}

func (s *MemStore[T]) indexOf(id primitive.ObjectID) int {
	for i, d := range s.docs {
		if d["_id"] == id && isLive(d) {
			return i
		}
	}
	return -1
}

func (s *MemStore[T]) duplicate(m bson.M, skip int) bool {
	for _, field := range s.unique {
		for i, d := range s.docs {
			if i != skip && fmt.Sprint(d[field]) == fmt.Sprint(m[field]) {
				return true
			}
		}
	}
	return false
}

func (s *MemStore[T]) Insert(_ context.Context, doc *T) error {
	m, err := toM(doc)
	if err != nil {
		return err
	}
	if _, ok := m["_id"]; !ok {
		return fmt.Errorf("document has no _id")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.duplicate(m, -1) {
		return repository.ErrDuplicate
	}
	s.docs = append(s.docs, m)
	return nil
}

func (s *MemStore[T]) FindByID(ctx context.Context, id primitive.ObjectID) (*T, error) {
	return s.FindOne(ctx, repository.Filter{"_id": id})
}

func (s *MemStore[T]) FindOne(_ context.Context, filter repository.Filter) (*T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, d := range s.docs {
		if matches(d, filter) {
			return fromM[T](d)
		}
	}
	return nil, repository.ErrNotFound
}

func (s *MemStore[T]) Find(_ context.Context, q repository.Query) ([]T, error) {
	s.mu.RLock()
	selected := make([]bson.M, 0)
	for _, d := range s.docs {
		if matches(d, q.Filter) {
			selected = append(selected, d)
		}
	}
	s.mu.RUnlock()

	sort.SliceStable(selected, func(i, j int) bool {
		for _, srt := range q.Sort {
			a, b := selected[i][srt.Field], selected[j][srt.Field]
			if fmt.Sprint(a) == fmt.Sprint(b) {
				continue
			}
			if srt.Desc {
				return less(b, a)
			}
			return less(a, b)
		}
		return false
	})

	if q.Skip > 0 {
		if q.Skip >= int64(len(selected)) {
			selected = nil
		} else {
			selected = selected[q.Skip:]
		}
	}
	if q.Limit > 0 && int64(len(selected)) > q.Limit {
		selected = selected[:q.Limit]
	}

	out := make([]T, 0, len(selected))
	for _, d := range selected {
		doc, err := fromM[T](d)
		if err != nil {
			return nil, err
		}
		out = append(out, *doc)
	}
	return out, nil
}

func (s *MemStore[T]) Count(_ context.Context, filter repository.Filter) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var n int64
	for _, d := range s.docs {
		if matches(d, filter) {
			n++
		}
	}
	return n, nil
}

func (s *MemStore[T]) Replace(_ context.Context, id primitive.ObjectID, doc *T) error {
	m, err := toM(doc)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(id)
	if i < 0 {
		return repository.ErrNotFound
	}
	if s.duplicate(m, i) {
		return repository.ErrDuplicate
	}
	m["_id"] = id
	s.docs[i] = m
	return nil
}

func (s *MemStore[T]) SoftDelete(_ context.Context, id primitive.ObjectID, at time.Time, set map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(id)
	if i < 0 {
		return repository.ErrNotFound
	}
	s.docs[i]["deletedAt"] = normalize(at)
	s.docs[i]["updatedAt"] = normalize(at)
	for k, v := range set {
		s.docs[i][k] = normalize(v)
	}
	return nil
}

func (s *MemStore[T]) Distinct(_ context.Context, field string, filter repository.Filter) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	seen := map[string]bool{}
	values := make([]string, 0)
	for _, d := range s.docs {
		if !matches(d, filter) {
			continue
		}
		if v, ok := d[field].(string); ok && v != "" && !seen[v] {
			seen[v] = true
			values = append(values, v)
		}
	}
	sort.Strings(values)
	return values, nil
}

func (s *MemStore[T]) CountBy(_ context.Context, field string, filter repository.Filter) ([]model.CategoryCount, error) {
	s.mu.RLock()
	counts := map[string]int64{}
	for _, d := range s.docs {
		if matches(d, filter) {
			key, _ := d[field].(string)
			counts[key]++
		}
	}
	s.mu.RUnlock()

	out := make([]model.CategoryCount, 0, len(counts))
	for k, n := range counts {
		out = append(out, model.CategoryCount{Category: k, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Category < out[j].Category
	})
	return out, nil
}

func (s *MemStore[T]) Purge(_ context.Context, before time.Time) (int64, error) {
	cutoff := primitive.NewDateTimeFromTime(before)

	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.docs[:0]
	var removed int64
	for _, d := range s.docs {
		if at, ok := d["deletedAt"].(primitive.DateTime); ok && at <= cutoff {
			removed++
			continue
		}
		kept = append(kept, d)
	}
	s.docs = kept
	return removed, nil
}

// Len counts every stored document, soft-deleted ones included
func (s *MemStore[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.docs)
}

// MemSingleton implements repository.Singleton
type MemSingleton[T any] struct {
	mu  sync.Mutex
	doc bson.M
}

func NewMemSingleton[T any]() *MemSingleton[T] {
	return &MemSingleton[T]{}
}

func (s *MemSingleton[T]) Get(context.Context) (*T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.doc == nil {
		return nil, repository.ErrNotFound
	}
	return fromM[T](s.doc)
}

func (s *MemSingleton[T]) Save(_ context.Context, doc *T) error {
	m, err := toM(doc)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.doc = m
	s.mu.Unlock()
	return nil
}
