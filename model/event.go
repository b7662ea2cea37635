package model

import (
	"strings"
	"time"
)

type EventStatus string

const (
	EventActive   EventStatus = "active"
	EventInactive EventStatus = "inactive"
	EventDeleted  EventStatus = "deleted"
)

func (s EventStatus) Valid() bool {
	switch s {
	case EventActive, EventInactive, EventDeleted:
		return true
	}
	return false
}

type Event struct {
	Base             `bson:",inline"`
	Title            string      `bson:"title" json:"title"`
	Description      string      `bson:"description" json:"description"`
	Location         string      `bson:"location,omitempty" json:"location,omitempty"`
	Medium           string      `bson:"medium,omitempty" json:"medium,omitempty"` // online, offline, hybrid
	Status           EventStatus `bson:"status" json:"status"`
	Date             string      `bson:"date" json:"date"`
	Time             string      `bson:"time,omitempty" json:"time,omitempty"`
	Timestamp        time.Time   `bson:"timestamp" json:"timestamp"`
	Authors          []Author    `bson:"authors" json:"authors"`
	Thumbnail        string      `bson:"thumbnail,omitempty" json:"thumbnail,omitempty"`
	RegistrationLink string      `bson:"registrationLink,omitempty" json:"registrationLink,omitempty"`
}

// Prepare trims input, applies defaults and derives Timestamp from Date and Time
func (e *Event) Prepare(now time.Time) {
	e.Title = strings.TrimSpace(e.Title)
	e.Description = strings.TrimSpace(e.Description)
	e.Location = strings.TrimSpace(e.Location)
	e.Medium = strings.ToLower(strings.TrimSpace(e.Medium))
	e.Date = strings.TrimSpace(e.Date)
	e.Time = strings.TrimSpace(e.Time)
	e.Thumbnail = strings.TrimSpace(e.Thumbnail)
	e.RegistrationLink = strings.TrimSpace(e.RegistrationLink)
	e.Authors = normalizeAuthors(e.Authors)
	if e.Status == "" {
		e.Status = EventActive
	}

	clock := e.Time
	if clock == "" {
		clock = "00:00"
	}
	if ts, err := time.ParseInLocation(DateLayout+" "+TimeLayout, e.Date+" "+clock, time.UTC); err == nil {
		e.Timestamp = ts
	} else if e.Timestamp.IsZero() {
		e.Timestamp = now
	}
}

func (e *Event) Validate() error {
	fe := FieldErrors{}
	requireText(fe, "title", e.Title)
	requireText(fe, "description", e.Description)
	if _, err := time.Parse(DateLayout, e.Date); err != nil {
		fe.Add("date", "date must match the format YYYY-MM-DD")
	}
	if e.Time != "" {
		if _, err := time.Parse(TimeLayout, e.Time); err != nil {
			fe.Add("time", "time must match the format HH:MM")
		}
	}
	switch e.Medium {
	case "", "online", "offline", "hybrid":
	default:
		fe.Add("medium", "medium must be one of: online offline hybrid")
	}
	if !e.Status.Valid() {
		fe.Add("status", "status must be one of: active inactive deleted")
	}
	optionalURL(fe, "thumbnail", e.Thumbnail)
	optionalURL(fe, "registrationLink", e.RegistrationLink)
	validateAuthors(fe, e.Authors, false)
	return fe.Err()
}
