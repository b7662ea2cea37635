package model

import (
	"strings"
	"time"
)

type NewsStatus string

const (
	NewsPublished NewsStatus = "Published"
	NewsDraft     NewsStatus = "Draft"
	NewsDeleted   NewsStatus = "deleted"
)

func (s NewsStatus) Valid() bool {
	switch s {
	case NewsPublished, NewsDraft, NewsDeleted:
		return true
	}
	return false
}

type NewsBlog struct {
	Base        `bson:",inline"`
	Title       string     `bson:"title" json:"title"`
	Description string     `bson:"description" json:"description"`
	Category    string     `bson:"category" json:"category"`
	Status      NewsStatus `bson:"status" json:"status"`
	Date        string     `bson:"date" json:"date"`
	Time        string     `bson:"time" json:"time"`
	Authors     []Author   `bson:"authors" json:"authors"`
	Images      []string   `bson:"images" json:"images"`
}

// Prepare fills date and time from now when they are missing
func (n *NewsBlog) Prepare(now time.Time) {
	n.Title = strings.TrimSpace(n.Title)
	n.Description = strings.TrimSpace(n.Description)
	n.Category = strings.TrimSpace(n.Category)
	n.Date = strings.TrimSpace(n.Date)
	n.Time = strings.TrimSpace(n.Time)
	n.Authors = normalizeAuthors(n.Authors)
	n.Images = trimAll(n.Images)
	if n.Status == "" {
		n.Status = NewsDraft
	}
	now = now.UTC()
	if n.Date == "" {
		n.Date = now.Format(DateLayout)
	}
	if n.Time == "" {
		n.Time = now.Format(TimeLayout)
	}
}

func (n *NewsBlog) Validate() error {
	fe := FieldErrors{}
	requireText(fe, "title", n.Title)
	requireText(fe, "description", n.Description)
	requireText(fe, "category", n.Category)
	if !n.Status.Valid() {
		fe.Add("status", "status must be one of: Published Draft deleted")
	}
	if _, err := time.Parse(DateLayout, n.Date); err != nil {
		fe.Add("date", "date must match the format YYYY-MM-DD")
	}
	if _, err := time.Parse(TimeLayout, n.Time); err != nil {
		fe.Add("time", "time must match the format HH:MM")
	}
	validateAuthors(fe, n.Authors, true)
	for _, img := range n.Images {
		if !IsHTTPURL(img) {
			fe.Add("images", "images must contain valid http(s) URLs")
			break
		}
	}
	return fe.Err()
}
