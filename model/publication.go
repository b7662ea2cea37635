package model

import (
	"strings"
	"time"
)

type Publication struct {
	Base        `bson:",inline"`
	Title       string   `bson:"title" json:"title"`
	Description string   `bson:"description,omitempty" json:"description,omitempty"`
	DocumentURL string   `bson:"documentUrl" json:"documentUrl"`
	Category    string   `bson:"category" json:"category"`
	Authors     []Author `bson:"authors" json:"authors"`
	Thumbnail   string   `bson:"thumbnail,omitempty" json:"thumbnail,omitempty"`
	AuthorImage string   `bson:"authorImage,omitempty" json:"authorImage,omitempty"`
}

func (p *Publication) Prepare(time.Time) {
	p.Title = strings.TrimSpace(p.Title)
	p.Description = strings.TrimSpace(p.Description)
	p.DocumentURL = strings.TrimSpace(p.DocumentURL)
	p.Category = strings.TrimSpace(p.Category)
	p.Thumbnail = strings.TrimSpace(p.Thumbnail)
	p.AuthorImage = strings.TrimSpace(p.AuthorImage)
	p.Authors = normalizeAuthors(p.Authors)
}

func (p *Publication) Validate() error {
	fe := FieldErrors{}
	requireText(fe, "title", p.Title)
	requireText(fe, "category", p.Category)
	if p.DocumentURL == "" {
		fe.Add("documentUrl", "documentUrl is required")
	}
	optionalURL(fe, "documentUrl", p.DocumentURL)
	optionalURL(fe, "thumbnail", p.Thumbnail)
	optionalURL(fe, "authorImage", p.AuthorImage)
	validateAuthors(fe, p.Authors, true)
	return fe.Err()
}
