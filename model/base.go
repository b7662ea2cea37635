package model

import (
	"regexp"
	"sort"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

var httpURLPattern = regexp.MustCompile(`^https?://.+\..+`)

// IsHTTPURL reports whether s looks like an absolute http(s) URL with a dotted host
func IsHTTPURL(s string) bool {
	return httpURLPattern.MatchString(s)
}

// Base is embedded (inline) in every stored document
type Base struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
	DeletedAt *time.Time         `bson:"deletedAt,omitempty" json:"-"`
}

// Meta exposes the embedded Base through any document pointer
func (b *Base) Meta() *Base { return b }

// Init stamps a fresh document
func (b *Base) Init(now time.Time) {
	if b.ID.IsZero() {
		b.ID = primitive.NewObjectID()
	}
	b.CreatedAt = now
	b.UpdatedAt = now
	b.DeletedAt = nil
}

// Touch marks a modification
func (b *Base) Touch(now time.Time) {
	b.UpdatedAt = now
}

// FieldErrors maps a json field path to a human readable message
type FieldErrors map[string]string

func (fe FieldErrors) Add(field, message string) {
	if _, exists := fe[field]; !exists {
		fe[field] = message
	}
}

// Err returns nil when no field failed
func (fe FieldErrors) Err() error {
	if len(fe) == 0 {
		return nil
	}
	return fe
}

func (fe FieldErrors) Error() string {
	keys := make([]string, 0, len(fe))
	for k := range fe {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+fe[k])
	}
	return strings.Join(parts, "; ")
}

func requireText(fe FieldErrors, field, value string) {
	if strings.TrimSpace(value) == "" {
		fe.Add(field, field+" is required")
	}
}

func optionalURL(fe FieldErrors, field, value string) {
	if value != "" && !IsHTTPURL(value) {
		fe.Add(field, field+" must be a valid http(s) URL")
	}
}

func trimAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if t := strings.TrimSpace(v); t != "" {
			out = append(out, t)
		}
	}
	return out
}
